package normalize

import (
	"fmt"
	"log"

	"careercompass/internal/career"
)

// Recommendation normalizes a raw model response into a validated
// TestResult. The top-level value must be a JSON object. A recommendation
// whose career falls outside the closed set is not safely usable downstream,
// so the whole record is replaced by the canned fallback instead of patching
// single fields the way job listings are.
func Recommendation(raw string) (career.TestResult, error) {
	var top any
	if err := decode(raw, &top); err != nil {
		return career.TestResult{}, err
	}
	if _, ok := top.(map[string]any); !ok {
		return career.TestResult{}, fmt.Errorf("%w: want object, got %T", ErrUnexpectedShape, top)
	}

	var result career.TestResult
	if err := decode(raw, &result); err != nil {
		return career.TestResult{}, err
	}

	if !career.ValidPath(string(result.RecommendedCareer)) {
		log.Printf("normalize: model returned career outside closed set: %q", result.RecommendedCareer)
		return career.FallbackResult(), nil
	}

	// Lists come back non-nil so the JSON payload never contains null.
	if result.Skills == nil {
		result.Skills = []string{}
	}
	if result.JobRoles == nil {
		result.JobRoles = []string{}
	}
	if result.RelevantBooks == nil {
		result.RelevantBooks = []string{}
	}
	return result, nil
}
