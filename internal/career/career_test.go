package career

import "testing"

func TestValidPath(t *testing.T) {
	for _, p := range PathNames() {
		if !ValidPath(string(p)) {
			t.Fatalf("expected %q to be valid", p)
		}
	}
	for _, bad := range []string{"", "Astrology", "web development", "Cybersecurity "} {
		if ValidPath(bad) {
			t.Fatalf("expected %q to be invalid", bad)
		}
	}
}

func TestFallbackResultIsFullyPopulated(t *testing.T) {
	r := FallbackResult()
	if !ValidPath(string(r.RecommendedCareer)) {
		t.Fatalf("fallback career %q not in closed set", r.RecommendedCareer)
	}
	if len(r.Skills) == 0 || len(r.JobRoles) == 0 || len(r.RelevantBooks) == 0 {
		t.Fatalf("fallback result has empty lists: %+v", r)
	}
	if r.SalaryRange == "" || r.Reasoning == "" {
		t.Fatalf("fallback result has empty fields: %+v", r)
	}
}

func TestCatalogMatchesClosedSet(t *testing.T) {
	catalog := Catalog()
	if len(catalog) != len(PathNames()) {
		t.Fatalf("catalog has %d entries, want %d", len(catalog), len(PathNames()))
	}
	for i, entry := range catalog {
		if entry.Name != PathNames()[i] {
			t.Fatalf("catalog[%d] = %q, want %q", i, entry.Name, PathNames()[i])
		}
	}
}

func TestQuickQuestionsAreSubset(t *testing.T) {
	quick := QuickQuestions()
	if len(quick) != 3 {
		t.Fatalf("expected 3 quick questions, got %d", len(quick))
	}
	wantIDs := []string{"q1", "q2", "q4"}
	for i, q := range quick {
		if q.ID != wantIDs[i] {
			t.Fatalf("quick[%d].ID = %q, want %q", i, q.ID, wantIDs[i])
		}
	}
}

func TestValidFollowUpStatus(t *testing.T) {
	for _, s := range []string{"none", "pending", "contacted"} {
		if !ValidFollowUpStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if ValidFollowUpStatus("archived") {
		t.Fatal("expected archived to be invalid")
	}
}
