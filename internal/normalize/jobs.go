package normalize

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Job is a fully-populated, schema-conformant job listing. Every field is
// always set; listings are illustrative, not authoritative records, so a
// missing upstream field is recovered with a default instead of rejected.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Location    string `json:"location"`
	PostedDate  string `json:"postedDate"`
	LinkedInURL string `json:"linkedInUrl"`
	UpworkURL   string `json:"upworkUrl"`
	FiverrURL   string `json:"fiverrUrl"`
}

// jobFieldSpec declares one defaulted field: where it comes from in the raw
// element and what to substitute when it is missing. Keeping the policy in
// one table makes it auditable and testable per field.
type jobFieldSpec struct {
	key      string
	fallback string
	assign   func(*Job, string)
}

var jobFieldSpecs = []jobFieldSpec{
	{key: "title", fallback: "Untitled Job", assign: func(j *Job, v string) { j.Title = v }},
	{key: "company", fallback: "Unknown Company", assign: func(j *Job, v string) { j.Company = v }},
	{key: "description", fallback: "No description available.", assign: func(j *Job, v string) { j.Description = v }},
	{key: "location", fallback: "Remote", assign: func(j *Job, v string) { j.Location = v }},
	{key: "postedDate", fallback: "Posted recently", assign: func(j *Job, v string) { j.PostedDate = v }},
}

// Outbound search templates. URLs are always derived server-side from the
// validated title/searchQuery; a model-supplied URL is untrusted and ignored.
const (
	linkedInSearchURL = "https://www.linkedin.com/jobs/search/?keywords="
	upworkSearchURL   = "https://www.upwork.com/nx/jobs/search/?q="
	fiverrSearchURL   = "https://www.fiverr.com/search/gigs?query="
)

// Jobs normalizes a raw model response into a list of fully-populated
// listings. The top-level value must be a JSON array of objects; elements
// that are not objects are dropped rather than failing the batch.
func Jobs(raw string) ([]Job, error) {
	return jobsAt(raw, time.Now())
}

func jobsAt(raw string, now time.Time) ([]Job, error) {
	var top any
	if err := decode(raw, &top); err != nil {
		return nil, err
	}
	elems, ok := top.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: want array, got %T", ErrUnexpectedShape, top)
	}

	out := make([]Job, 0, len(elems))
	for i, elem := range elems {
		m, ok := elem.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, normalizeJob(m, i, now))
	}
	return out, nil
}

func normalizeJob(m map[string]any, index int, now time.Time) Job {
	var job Job
	for _, spec := range jobFieldSpecs {
		v := stringField(m, spec.key)
		if v == "" {
			v = spec.fallback
		}
		spec.assign(&job, v)
	}

	// The search query prefers the dedicated field, then the raw title,
	// then a generic term; the defaulted "Untitled Job" would make a
	// useless query.
	searchQuery := stringField(m, "searchQuery")
	if searchQuery == "" {
		searchQuery = stringField(m, "title")
	}
	if searchQuery == "" {
		searchQuery = "tech job"
	}

	job.ID = jobID(job.Title, index, now)
	job.LinkedInURL = linkedInSearchURL + url.QueryEscape(searchQuery)
	job.UpworkURL = upworkSearchURL + url.QueryEscape(searchQuery)
	job.FiverrURL = fiverrSearchURL + url.QueryEscape(job.Title)
	return job
}

// jobID builds a stable-enough synthetic id: title with whitespace collapsed
// to hyphens, the element's position, and the batch timestamp.
func jobID(title string, index int, now time.Time) string {
	slug := strings.Join(strings.Fields(title), "-")
	return fmt.Sprintf("%s-%d-%d", slug, index, now.UnixMilli())
}
