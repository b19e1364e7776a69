package testresult

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercompass/internal/career"
)

func TestMemoryStoreAddAndList(t *testing.T) {
	names := map[int64]string{7: "Ada"}
	s := NewMemoryStore(func(_ context.Context, id int64) string { return names[id] })
	ctx := context.Background()

	first, err := s.Add(ctx, Record{
		UserID:            7,
		RecommendedCareer: string(career.PathAI),
		DateTaken:         "2025-05-01",
		FullResult:        career.FallbackResult(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	_, err = s.Add(ctx, Record{UserID: 7, RecommendedCareer: string(career.PathCloud), DateTaken: "2025-05-02"})
	require.NoError(t, err)

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, string(career.PathCloud), got[0].RecommendedCareer, "newest first")
	assert.Equal(t, "Ada", got[0].UserName)
}

func TestMemoryStoreCountByCareer(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	for _, c := range []career.PathName{career.PathAI, career.PathAI, career.PathCloud} {
		_, err := s.Add(ctx, Record{UserID: 1, RecommendedCareer: string(c), DateTaken: "2025-05-01"})
		require.NoError(t, err)
	}

	counts, err := s.CountByCareer(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		string(career.PathAI):    2,
		string(career.PathCloud): 1,
	}, counts)
}
