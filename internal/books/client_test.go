package books

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercompass/internal/career"
)

const volumesJSON = `{
	"items": [
		{
			"id": "abc123",
			"volumeInfo": {
				"title": "Clean Code",
				"authors": ["Robert C. Martin"],
				"description": "A handbook of agile software craftsmanship.",
				"infoLink": "https://books.google.com/books?id=abc123",
				"imageLinks": {"thumbnail": "http://books.google.com/thumb/abc123"}
			}
		},
		{
			"id": "def456",
			"volumeInfo": {
				"title": "Anonymous Manual",
				"infoLink": "https://books.google.com/books?id=def456"
			}
		}
	]
}`

func newTestServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(volumesJSON))
	}))
}

func TestSearchMapsVolumes(t *testing.T) {
	var hits atomic.Int64
	srv := newTestServer(t, &hits)
	defer srv.Close()

	c := NewClientWithBase(srv.URL, srv.Client())
	got, err := c.Search(context.Background(), "clean code", "All")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Clean Code", got[0].Title)
	assert.Equal(t, []string{"Robert C. Martin"}, got[0].Authors)
	assert.True(t, strings.HasPrefix(got[0].CoverURL, "https://"), "cover must be https, got %q", got[0].CoverURL)

	assert.Equal(t, []string{"Unknown Author"}, got[1].Authors)
	assert.Empty(t, got[1].CoverURL)
}

func TestSearchCachesPerFinalQuery(t *testing.T) {
	var hits atomic.Int64
	srv := newTestServer(t, &hits)
	defer srv.Close()

	c := NewClientWithBase(srv.URL, srv.Client())
	_, err := c.Search(context.Background(), "golang", "All")
	require.NoError(t, err)
	_, err = c.Search(context.Background(), "golang", "All")
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load(), "second identical search must come from cache")

	_, err = c.Search(context.Background(), "rustlang", "All")
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load())
}

func TestSearchEmptyQueryShortCircuits(t *testing.T) {
	var hits atomic.Int64
	srv := newTestServer(t, &hits)
	defer srv.Close()

	c := NewClientWithBase(srv.URL, srv.Client())
	got, err := c.Search(context.Background(), "   ", "All")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, int64(0), hits.Load())
}

func TestBuildQuery(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		category string
		want     string
	}{
		{"all passthrough", "databases", "All", "databases"},
		{"category browse", "", string(career.PathCloud), categorySearchTerms[career.PathCloud]},
		{"default query browses category", "Computer Science", string(career.PathAI), categorySearchTerms[career.PathAI]},
		{"category and query", "terraform", string(career.PathCloud), categorySearchTerms[career.PathCloud] + " AND terraform"},
		{"unknown category quoted", "", "Quantum Computing", `"Quantum Computing"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, buildQuery(tc.query, tc.category))
		})
	}
}
