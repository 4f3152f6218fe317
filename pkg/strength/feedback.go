package strength

// Placement analysis generates notes only. Predictable placement does not
// shrink the alphabet, so it carries no entropy weight; the penalty list stays
// traceable to pattern and dictionary findings alone.

const (
	placementStart = "start"
	placementEnd   = "end"
	placementMixed = "mixed"
)

// placement reports where the runes matching is sit: a single block at the
// end, a single block at the start, or mixed through the password. Empty
// string when no rune matches.
func placement(runes []rune, is func(rune) bool) string {
	first, last := -1, -1
	for i, r := range runes {
		if is(r) {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		return ""
	}
	for i := first; i <= last; i++ {
		if !is(runes[i]) {
			return placementMixed
		}
	}
	if first == 0 && last < len(runes)-1 {
		return placementStart
	}
	if first > 0 && last == len(runes)-1 {
		return placementEnd
	}
	return placementMixed
}

func placementNotes(password string, profile CharacterProfile) []string {
	runes := []rune(password)
	var notes []string

	switch placement(runes, isDigitRune) {
	case placementEnd:
		notes = append(notes, "digits only at the end: append rules try trailing digits first")
	case placementStart:
		notes = append(notes, "digits only at the start: prepend rules try leading digits first")
	}

	isSymbol := func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') && !isDigitRune(r)
	}
	switch placement(runes, isSymbol) {
	case placementEnd:
		notes = append(notes, "symbols only at the end: a trailing '!' is the first substitution attackers try")
	case placementStart:
		notes = append(notes, "symbols only at the start: still a predictable placement, mix them in")
	}

	switch casePattern(runes, profile) {
	case "first-only":
		notes = append(notes, "only the first letter is capitalized: the default pattern cracking rules test first")
	case "all-caps":
		notes = append(notes, "all caps: easy to detect and costs attackers nothing extra")
	}

	return notes
}

func casePattern(runes []rune, profile CharacterProfile) string {
	if profile.HasUpper && !profile.HasLower {
		return "all-caps"
	}
	if !profile.HasUpper || !profile.HasLower {
		return ""
	}
	upperCount, firstIsUpper := 0, false
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			upperCount++
			if i == 0 {
				firstIsUpper = true
			}
		}
	}
	if firstIsUpper && upperCount == 1 {
		return "first-only"
	}
	return ""
}
