package testresult

import (
	"context"

	"careercompass/internal/career"
)

// Record is one stored quiz outcome. UserName is populated on reads by
// joining the users table; it is ignored on writes.
type Record struct {
	ID                int64             `json:"id"`
	UserID            int64             `json:"userId"`
	UserName          string            `json:"userName,omitempty"`
	RecommendedCareer string            `json:"recommendedCareer"`
	DateTaken         string            `json:"dateTaken"`
	FullResult        career.TestResult `json:"fullResult"`
}

type Repository interface {
	Add(ctx context.Context, rec Record) (Record, error)
	// List returns all results with user names attached, newest first.
	List(ctx context.Context) ([]Record, error)
	// CountByCareer aggregates stored results per recommended career for
	// the admin trends view.
	CountByCareer(ctx context.Context) (map[string]int, error)
}
