package strength

import (
	"strings"
	"testing"
)

func buildTestReport(password string, breach BreachResult) StrengthReport {
	profile := Profile(password)
	patterns := DetectPatterns(password)
	words := NewWordlist([]string{"password", "dragon"}).Match(password)
	entropy := EstimateEntropy(profile, patterns, words)
	crack := EstimateCrackTime(entropy.AdjustedBits, DefaultProfiles())
	return BuildReport(password, profile, entropy, crack, patterns, words, breach)
}

func TestEmptyPasswordReport(t *testing.T) {
	report := buildTestReport("", BreachResult{Unknown: true})

	if report.Score != 0 {
		t.Errorf("The empty password should score 0, got %d", report.Score)
	}
	if !hasNoteContaining(report.Notes, "empty password") {
		t.Errorf("Notes should explain the empty input, got %q", report.Notes)
	}
}

func TestShortPasswordNote(t *testing.T) {
	report := buildTestReport("kqz", BreachResult{Unknown: true})
	if !hasNoteContaining(report.Notes, "too short") {
		t.Errorf("Short passwords should carry a length note, got %q", report.Notes)
	}
}

func TestNoteOrderIsFixed(t *testing.T) {
	// Length, composition, pattern kinds, dictionary, breach status: always
	// in that order for the same input.
	first := buildTestReport("qwerty123", BreachResult{Unknown: true})
	second := buildTestReport("qwerty123", BreachResult{Unknown: true})

	if len(first.Notes) != len(second.Notes) {
		t.Fatalf("Note count must be deterministic: %q vs %q", first.Notes, second.Notes)
	}
	for i := range first.Notes {
		if first.Notes[i] != second.Notes[i] {
			t.Errorf("Note %d differs between identical runs: %q vs %q", i, first.Notes[i], second.Notes[i])
		}
	}

	if !strings.Contains(first.Notes[len(first.Notes)-1], "breach status unavailable") {
		t.Errorf("The breach note must come last, got %q", first.Notes)
	}
}

func TestScoreBreakpointsAreMonotone(t *testing.T) {
	prev := -1
	for bits := 0.0; bits <= 120; bits += 2 {
		score := scoreFromBits(bits)
		if score < prev {
			t.Errorf("Score must be non-decreasing in entropy: %.0f bits -> %d (prev %d)", bits, score, prev)
		}
		if score < 0 || score > 10 {
			t.Errorf("Score must stay within 0-10, got %d", score)
		}
		prev = score
	}
}

func TestRatingForScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Weak"},
		{3, "Weak"},
		{4, "Moderate"},
		{6, "Moderate"},
		{7, "Strong"},
		{8, "Strong"},
		{9, "Very Strong"},
		{10, "Very Strong"},
	}
	for _, tt := range tests {
		if got := ratingForScore(tt.score); got != tt.want {
			t.Errorf("ratingForScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestPlacementNotes(t *testing.T) {
	tests := []struct {
		password string
		substr   string
	}{
		{"monkeybar1987", "digits only at the end"},
		{"42monkeybars", "digits only at the start"},
		{"monkeybars!", "symbols only at the end"},
		{"Monkeybars", "first letter is capitalized"},
		{"MONKEYBARS", "all caps"},
	}

	for _, tt := range tests {
		profile := Profile(tt.password)
		notes := placementNotes(tt.password, profile)
		found := false
		for _, note := range notes {
			if strings.Contains(note, tt.substr) {
				found = true
			}
		}
		if !found {
			t.Errorf("%q should carry a note containing %q, got %q", tt.password, tt.substr, notes)
		}
	}

	if notes := placementNotes("m0nk3y!bars", Profile("m0nk3y!bars")); len(notes) != 0 {
		t.Errorf("Mixed placement should produce no placement notes, got %q", notes)
	}
}
