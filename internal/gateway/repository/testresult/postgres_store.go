package testresult

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"

	"careercompass/internal/career"
)

type PostgresStore struct {
	db *sql.DB

	schemaOnce sync.Once
	schemaErr  error
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ensureSchema() error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(`
CREATE TABLE IF NOT EXISTS test_results (
  id SERIAL PRIMARY KEY,
  user_id INTEGER NOT NULL,
  recommended_career TEXT NOT NULL,
  date_taken TEXT NOT NULL,
  full_result JSONB NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_test_results_user_id ON test_results (user_id);
`)
	})
	return s.schemaErr
}

func (s *PostgresStore) Add(ctx context.Context, rec Record) (Record, error) {
	if err := s.ensureSchema(); err != nil {
		return Record{}, err
	}
	full, err := json.Marshal(rec.FullResult)
	if err != nil {
		return Record{}, err
	}
	row := s.db.QueryRowContext(ctx, `
INSERT INTO test_results (user_id, recommended_career, date_taken, full_result)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, recommended_career, date_taken, full_result`,
		rec.UserID, rec.RecommendedCareer, rec.DateTaken, full)

	var stored Record
	var rawFull []byte
	if err := row.Scan(&stored.ID, &stored.UserID, &stored.RecommendedCareer, &stored.DateTaken, &rawFull); err != nil {
		return Record{}, err
	}
	if err := json.Unmarshal(rawFull, &stored.FullResult); err != nil {
		return Record{}, err
	}
	return stored, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Record, error) {
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT tr.id, tr.user_id, u.name, tr.recommended_career, tr.date_taken, tr.full_result
FROM test_results tr
JOIN users u ON tr.user_id = u.id
ORDER BY tr.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Record, 0, 32)
	for rows.Next() {
		var rec Record
		var rawFull []byte
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.UserName, &rec.RecommendedCareer, &rec.DateTaken, &rawFull); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rawFull, &rec.FullResult); err != nil {
			rec.FullResult = career.TestResult{}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CountByCareer(ctx context.Context) (map[string]int, error) {
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT recommended_career, COUNT(*)
FROM test_results
GROUP BY recommended_career`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		out[name] = n
	}
	return out, rows.Err()
}
