package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.UnixMilli(1700000000000)

func TestJobsFullPayload(t *testing.T) {
	raw := `[{
		"title": "Junior DevOps Engineer",
		"company": "Tech Startup",
		"description": "Keep the pipelines green.",
		"location": "Remote",
		"postedDate": "Posted 2 days ago",
		"searchQuery": "Junior DevOps Engineer remote"
	}]`
	jobs, err := jobsAt(raw, testNow)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	j := jobs[0]
	assert.Equal(t, "Junior DevOps Engineer", j.Title)
	assert.Equal(t, "Tech Startup", j.Company)
	assert.Equal(t, "Junior-DevOps-Engineer-0-1700000000000", j.ID)
	assert.Equal(t, "https://www.linkedin.com/jobs/search/?keywords="+url.QueryEscape("Junior DevOps Engineer remote"), j.LinkedInURL)
	assert.Equal(t, "https://www.upwork.com/nx/jobs/search/?q="+url.QueryEscape("Junior DevOps Engineer remote"), j.UpworkURL)
	assert.Equal(t, "https://www.fiverr.com/search/gigs?query="+url.QueryEscape("Junior DevOps Engineer"), j.FiverrURL)
}

func TestJobsDefaultsEveryMissingField(t *testing.T) {
	jobs, err := jobsAt(`[{}]`, testNow)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	j := jobs[0]
	assert.Equal(t, "Untitled Job", j.Title)
	assert.Equal(t, "Unknown Company", j.Company)
	assert.Equal(t, "No description available.", j.Description)
	assert.Equal(t, "Remote", j.Location)
	assert.Equal(t, "Posted recently", j.PostedDate)
	// Search falls through to the generic term, not the defaulted title.
	assert.Equal(t, "https://www.linkedin.com/jobs/search/?keywords="+url.QueryEscape("tech job"), j.LinkedInURL)
	assert.Equal(t, "Untitled-Job-0-1700000000000", j.ID)
}

func TestJobsNoFieldEverEmpty(t *testing.T) {
	raw := `[{"title":"X"},{"company":null},{"description":42},{"location":"  "}]`
	jobs, err := jobsAt(raw, testNow)
	require.NoError(t, err)
	require.Len(t, jobs, 4)
	for i, j := range jobs {
		for name, v := range map[string]string{
			"id": j.ID, "title": j.Title, "company": j.Company,
			"description": j.Description, "location": j.Location,
			"postedDate": j.PostedDate, "linkedInUrl": j.LinkedInURL,
			"upworkUrl": j.UpworkURL, "fiverrUrl": j.FiverrURL,
		} {
			if v == "" {
				t.Fatalf("job %d: field %s is empty", i, name)
			}
		}
	}
}

func TestJobsFenceStrippingMatchesUnfenced(t *testing.T) {
	inner := `[{"title":"X","company":"Y","description":"Z","location":"Remote","postedDate":"Posted 1 week ago","searchQuery":"x remote"}]`
	fenced := "```json\n" + inner + "\n```"

	got, err := jobsAt(fenced, testNow)
	require.NoError(t, err)
	want, err := jobsAt(inner, testNow)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "X", got[0].Title)
}

func TestStripFenceIdempotent(t *testing.T) {
	inner := `{"a":1}`
	once := StripFence("```json\n" + inner + "\n```")
	assert.Equal(t, inner, once)
	assert.Equal(t, once, StripFence(once))
}

func TestJobsEmptyResponse(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t"} {
		_, err := jobsAt(raw, testNow)
		assert.ErrorIs(t, err, ErrEmptyResponse, "input %q", raw)
	}
}

func TestJobsMalformedCarriesRawText(t *testing.T) {
	_, err := jobsAt("sorry, I cannot do that", testNow)
	require.ErrorIs(t, err, ErrMalformedResponse)

	var malformed *MalformedError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "sorry, I cannot do that", malformed.Raw)
}

func TestJobsWrongTopLevelShape(t *testing.T) {
	_, err := jobsAt(`{"title":"X"}`, testNow)
	assert.ErrorIs(t, err, ErrUnexpectedShape)
}

func TestJobsDropsNonObjectElements(t *testing.T) {
	jobs, err := jobsAt(`[{"title":"X"}, "stray", 7]`, testNow)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "X", jobs[0].Title)
}

func TestJobsIdempotentOnNormalizedRecords(t *testing.T) {
	first, err := jobsAt(`[{"title":"Data Analyst","company":"Global Firm","description":"Crunch numbers.","location":"Remote","postedDate":"Posted 3 days ago","searchQuery":"data analyst remote"}]`, testNow)
	require.NoError(t, err)

	encoded, err := json.Marshal(first)
	require.NoError(t, err)

	second, err := jobsAt(string(encoded), testNow)
	require.NoError(t, err)
	require.Len(t, second, 1)
	// No defaults triggered: every carried field survives untouched.
	assert.Equal(t, first[0].Title, second[0].Title)
	assert.Equal(t, first[0].Company, second[0].Company)
	assert.Equal(t, first[0].Description, second[0].Description)
	assert.Equal(t, first[0].Location, second[0].Location)
	assert.Equal(t, first[0].PostedDate, second[0].PostedDate)
}

func TestTitleURLRoundTrip(t *testing.T) {
	title := "C++ & Go Engineer (Remote) 100%"
	jobs, err := jobsAt(fmt.Sprintf(`[{"title":%q}]`, title), testNow)
	require.NoError(t, err)

	encoded := strings.TrimPrefix(jobs[0].FiverrURL, "https://www.fiverr.com/search/gigs?query=")
	decoded, err := url.QueryUnescape(encoded)
	require.NoError(t, err)
	assert.Equal(t, title, decoded)
}

func TestJobIDCollapsesWhitespace(t *testing.T) {
	id := jobID("Senior  Site\tReliability Engineer", 2, testNow)
	assert.Equal(t, "Senior-Site-Reliability-Engineer-2-1700000000000", id)
}
