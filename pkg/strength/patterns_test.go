package strength

import "testing"

func findingsOfKind(findings []PatternFinding, kind PatternKind) []PatternFinding {
	var out []PatternFinding
	for _, f := range findings {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}

func hasFinding(findings []PatternFinding, kind PatternKind, match string) bool {
	for _, f := range findings {
		if f.Kind == kind && f.Match == match {
			return true
		}
	}
	return false
}

func TestDetectRepetitionRuns(t *testing.T) {
	findings := findingsOfKind(DetectPatterns("aaaaaa"), PatternRepetition)
	if len(findings) != 1 {
		t.Fatalf("Should find exactly one repetition in 'aaaaaa', found %d", len(findings))
	}
	if findings[0].Match != "aaaaaa" || findings[0].Start != 0 || findings[0].End != 6 {
		t.Errorf("Unexpected finding: %+v", findings[0])
	}
}

func TestDetectRepetitionBlocks(t *testing.T) {
	findings := findingsOfKind(DetectPatterns("xabcabcx"), PatternRepetition)
	if !hasFinding(findings, PatternRepetition, "abcabc") {
		t.Errorf("Should find the repeated block 'abcabc', found %+v", findings)
	}
}

func TestDetectRepetitionNone(t *testing.T) {
	if findings := DetectPatterns("kqzjwp"); len(findings) != 0 {
		t.Errorf("'kqzjwp' should have no findings, found %+v", findings)
	}
}

func TestDetectSequences(t *testing.T) {
	tests := []struct {
		password string
		match    string
	}{
		{"xabcx", "abc"},
		{"x321x", "321"},
		{"abcdef", "abcdef"},
		{"ABCx", "ABC"},
	}

	for _, tt := range tests {
		findings := DetectPatterns(tt.password)
		if !hasFinding(findings, PatternSequence, tt.match) {
			t.Errorf("Should find sequence %q in %q, found %+v", tt.match, tt.password, findings)
		}
	}

	if findings := findingsOfKind(DetectPatterns("xacegix"), PatternSequence); len(findings) != 0 {
		t.Errorf("Non-consecutive characters should not be a sequence, found %+v", findings)
	}
}

func TestDetectSequenceBothDirections(t *testing.T) {
	findings := findingsOfKind(DetectPatterns("abccba"), PatternSequence)
	if len(findings) != 2 {
		t.Fatalf("Should find both the ascending and descending run, found %+v", findings)
	}
}

func TestDetectKeyboardWalks(t *testing.T) {
	tests := []struct {
		password string
		match    string
	}{
		{"qwerty99", "qwerty"},
		{"x.asdfgh.x", "asdfgh"},
		{"ytrewq", "ytrewq"},
		{"1qaz", "1qaz"},
		{"1qazx", "1qazx"},
	}

	for _, tt := range tests {
		findings := DetectPatterns(tt.password)
		if !hasFinding(findings, PatternKeyboardWalk, tt.match) {
			t.Errorf("Should find keyboard walk %q in %q, found %+v", tt.match, tt.password, findings)
		}
	}
}

func TestQwerty123(t *testing.T) {
	findings := DetectPatterns("qwerty123")
	if !hasFinding(findings, PatternKeyboardWalk, "qwerty") {
		t.Errorf("Should find the keyboard walk 'qwerty', found %+v", findings)
	}
	if !hasFinding(findings, PatternSequence, "123") {
		t.Errorf("Should find the sequence '123', found %+v", findings)
	}
}

func TestDetectDates(t *testing.T) {
	tests := []struct {
		password string
		match    string
	}{
		{"summer1987", "1987"},
		{"x2024x", "2024"},
		{"19900615", "19900615"},
		{"15061990", "15061990"},
		{"06151990", "06151990"},
	}

	for _, tt := range tests {
		findings := DetectPatterns(tt.password)
		if !hasFinding(findings, PatternDateLike, tt.match) {
			t.Errorf("Should find date %q in %q, found %+v", tt.match, tt.password, findings)
		}
	}
}

func TestDetectDatesRejectsImplausible(t *testing.T) {
	for _, password := range []string{"x1750x", "x2345x", "x8888x"} {
		if findings := findingsOfKind(DetectPatterns(password), PatternDateLike); len(findings) != 0 {
			t.Errorf("%q should not be date-like, found %+v", password, findings)
		}
	}
}

func TestEightDigitDateIsOneFinding(t *testing.T) {
	findings := findingsOfKind(DetectPatterns("19900615"), PatternDateLike)
	if len(findings) != 1 {
		t.Errorf("A compact date should be one finding, not a date plus its year, found %+v", findings)
	}
}

func TestDetectorsNeverFail(t *testing.T) {
	for _, password := range []string{"", "a", "ab", "日本語のパスワード", "\x00\x01", "😀😀😀"} {
		// Just must not panic. "😀😀😀" is a legitimate repetition run.
		DetectPatterns(password)
	}
}
