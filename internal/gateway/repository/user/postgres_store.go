package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
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
CREATE TABLE IF NOT EXISTS users (
  id SERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password TEXT NOT NULL,
  department TEXT NOT NULL DEFAULT '',
  level TEXT NOT NULL DEFAULT '',
  role TEXT NOT NULL DEFAULT 'student',
  follow_up_status TEXT NOT NULL DEFAULT 'none',
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_users_role ON users (role);
`)
	})
	return s.schemaErr
}

func (s *PostgresStore) Create(ctx context.Context, u User) (User, error) {
	if err := s.ensureSchema(); err != nil {
		return User{}, err
	}
	email := strings.ToLower(strings.TrimSpace(u.Email))

	var exists int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&exists)
	if err == nil {
		return User{}, ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return User{}, err
	}

	row := s.db.QueryRowContext(ctx, `
INSERT INTO users (name, email, password, department, level, role, follow_up_status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, name, email, password, department, level, role, follow_up_status`,
		u.Name, email, u.Password, u.Department, u.Level, u.Role, u.FollowUpStatus)
	return scanUser(row)
}

func (s *PostgresStore) GetByEmail(ctx context.Context, email string) (User, bool, error) {
	if err := s.ensureSchema(); err != nil {
		return User{}, false, err
	}
	row := s.db.QueryRowContext(ctx, `
SELECT id, name, email, password, department, level, role, follow_up_status
FROM users WHERE email = $1`, strings.ToLower(strings.TrimSpace(email)))
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, err
	}
	return u, true, nil
}

func (s *PostgresStore) GetByID(ctx context.Context, id int64) (User, bool, error) {
	if err := s.ensureSchema(); err != nil {
		return User{}, false, err
	}
	row := s.db.QueryRowContext(ctx, `
SELECT id, name, email, password, department, level, role, follow_up_status
FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, err
	}
	return u, true, nil
}

func (s *PostgresStore) ListStudents(ctx context.Context) ([]User, error) {
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, name, email, password, department, level, role, follow_up_status
FROM users WHERE role = 'student'
ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]User, 0, 32)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Department, &u.Level, &u.Role, &u.FollowUpStatus); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *PostgresStore) SetFollowUpStatus(ctx context.Context, id int64, status string) error {
	if err := s.ensureSchema(); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `UPDATE users SET follow_up_status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Department, &u.Level, &u.Role, &u.FollowUpStatus)
	return u, err
}
