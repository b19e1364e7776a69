package career

import "strings"

// PathName is one of the six career paths the guidance service recommends.
// The set is closed: a recommendation carrying any other value is unusable
// downstream and gets replaced wholesale by FallbackResult.
type PathName string

const (
	PathAI            PathName = "Artificial Intelligence & Data Science"
	PathCybersecurity PathName = "Cybersecurity"
	PathNetworking    PathName = "Networking"
	PathWebDev        PathName = "Web Development"
	PathCloud         PathName = "Cloud Computing"
	PathSoftwareEng   PathName = "Software Engineering"
)

// PathNames lists the closed set in catalog order.
func PathNames() []PathName {
	return []PathName{
		PathAI,
		PathCybersecurity,
		PathNetworking,
		PathWebDev,
		PathCloud,
		PathSoftwareEng,
	}
}

// ValidPath reports whether name is a member of the closed set.
// Matching is exact; prompt constraints instruct the model to echo
// the values verbatim, so no fuzzy matching is attempted here.
func ValidPath(name string) bool {
	for _, p := range PathNames() {
		if string(p) == name {
			return true
		}
	}
	return false
}

// TestResult is a validated career recommendation.
type TestResult struct {
	RecommendedCareer PathName `json:"recommendedCareer"`
	Skills            []string `json:"skills"`
	SalaryRange       string   `json:"salaryRange"`
	JobRoles          []string `json:"jobRoles"`
	RelevantBooks     []string `json:"relevantBooks"`
	Reasoning         string   `json:"reasoning"`
}

// FallbackResult is the canned recommendation substituted when the model
// returns a career outside the closed set, or when no model is configured.
func FallbackResult() TestResult {
	return TestResult{
		RecommendedCareer: PathWebDev,
		Skills: []string{
			"HTML & CSS",
			"JavaScript (ES6+)",
			"React or Vue.js",
			"Node.js & Express",
			"Git & GitHub",
			"API Integration",
		},
		SalaryRange: "₦150,000 - ₦700,000 / month (entry to mid-level)",
		JobRoles:    []string{"Frontend Developer", "Backend Developer", "Full-Stack Developer", "UI/UX Developer"},
		RelevantBooks: []string{
			"Eloquent JavaScript by Marijn Haverbeke",
			"You Don't Know JS series by Kyle Simpson",
			"Designing Web APIs by Brenda Jin et al.",
		},
		Reasoning: "This is a fallback result. Your answers suggest a preference for building tangible, user-facing products and an interest in creative problem-solving, which aligns well with the skills required for modern Web Development.",
	}
}

// Adviser is a named staff adviser for a field of study.
type Adviser struct {
	Name  string `json:"name"`
	Field string `json:"field"`
}

// Advisers returns the adviser roster.
func Advisers() []Adviser {
	return []Adviser{
		{Name: "Mr Maikudi", Field: "Software Engineering & Web Development"},
		{Name: "Mr Alfa", Field: "Cybersecurity & Networking"},
		{Name: "Mr Olayemi D.O", Field: "AI & Data Science"},
		{Name: "Mr Elmamud", Field: "Cloud Computing & DevOps"},
	}
}

// FollowUpStatuses are the values accepted by the users follow-up endpoint.
var FollowUpStatuses = []string{"none", "pending", "contacted"}

func ValidFollowUpStatus(status string) bool {
	status = strings.TrimSpace(status)
	for _, s := range FollowUpStatuses {
		if s == status {
			return true
		}
	}
	return false
}
