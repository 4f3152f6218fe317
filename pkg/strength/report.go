// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import "fmt"

// BreachResult reports corpus membership. Unknown is set when the lookup
// failed or was skipped, and is never collapsed into "not found".
type BreachResult struct {
	Found   bool  `json:"found"`
	Count   int64 `json:"count"`
	Unknown bool  `json:"unknown"`
}

// StrengthReport is the terminal aggregate of one analysis call, immutable
// once returned.
type StrengthReport struct {
	Score      int               `json:"score"`
	Rating     string            `json:"rating"`
	Profile    CharacterProfile  `json:"profile"`
	Entropy    EntropyEstimate   `json:"entropy"`
	CrackTime  CrackTimeEstimate `json:"crackTime"`
	Patterns   []PatternFinding  `json:"patterns"`
	Dictionary []DictionaryMatch `json:"dictionary"`
	Breach     BreachResult      `json:"breach"`
	Notes      []string          `json:"notes"`
}

// Adjusted-entropy breakpoints for the 0-10 score. Derived against the
// half-keyspace crack time model in cracktime.go; they move together or not
// at all.
var scoreBreakpoints = []float64{10, 18, 26, 34, 42, 50, 60, 70, 85, 100}

// A breach hit or a full dictionary match caps the score here no matter how
// much raw entropy the length buys.
const cappedScore = 2

func scoreFromBits(bits float64) int {
	score := 0
	for _, bp := range scoreBreakpoints {
		if bits >= bp {
			score++
		}
	}
	return score
}

func ratingForScore(score int) string {
	switch {
	case score <= 3:
		return "Weak"
	case score <= 6:
		return "Moderate"
	case score <= 8:
		return "Strong"
	default:
		return "Very Strong"
	}
}

// BuildReport merges every stage's output into the final report. Output is
// deterministic for identical input: note ordering is fixed.
func BuildReport(password string, profile CharacterProfile, entropy EntropyEstimate, crack CrackTimeEstimate, patterns []PatternFinding, words []DictionaryMatch, breach BreachResult) StrengthReport {
	score := scoreFromBits(entropy.AdjustedBits)
	if breach.Found && score > cappedScore {
		score = cappedScore
	}
	if hasFullMatch(words) && score > cappedScore {
		score = cappedScore
	}

	return StrengthReport{
		Score:      score,
		Rating:     ratingForScore(score),
		Profile:    profile,
		Entropy:    entropy,
		CrackTime:  crack,
		Patterns:   patterns,
		Dictionary: words,
		Breach:     breach,
		Notes:      buildNotes(password, profile, patterns, words, breach),
	}
}

func hasFullMatch(words []DictionaryMatch) bool {
	for _, m := range words {
		if m.Full {
			return true
		}
	}
	return false
}

func hasKind(patterns []PatternFinding, kind PatternKind) bool {
	for _, f := range patterns {
		if f.Kind == kind {
			return true
		}
	}
	return false
}

// buildNotes emits notes in a fixed order: length, composition, placement,
// one per pattern kind present, dictionary, breach status.
func buildNotes(password string, profile CharacterProfile, patterns []PatternFinding, words []DictionaryMatch, breach BreachResult) []string {
	var notes []string

	switch {
	case profile.Length == 0:
		notes = append(notes, "empty password: anything at all would be stronger")
	case profile.Length < 8:
		notes = append(notes, "too short: under 8 characters falls to plain brute force in seconds")
	case profile.Length < 12:
		notes = append(notes, "length is acceptable, 12 or more characters would be much stronger")
	}

	notes = append(notes, compositionNote(profile))
	notes = append(notes, placementNotes(password, profile)...)

	if hasKind(patterns, PatternRepetition) {
		notes = append(notes, "contains repeated characters or blocks: repetition collapses the effective search space")
	}
	if hasKind(patterns, PatternSequence) {
		notes = append(notes, "contains a sequence: runs like abc or 321 are generated by cheap rules")
	}
	if hasKind(patterns, PatternKeyboardWalk) {
		notes = append(notes, "contains a keyboard walk: adjacent-key paths are in every cracking wordlist")
	}
	if hasKind(patterns, PatternDateLike) {
		notes = append(notes, "contains a date or year: personal dates are tried early and are easy to research")
	}

	for _, m := range words {
		if m.Full {
			notes = append(notes, fmt.Sprintf("matches the dictionary entry %q exactly: this will be among the first guesses", m.Word))
		} else {
			notes = append(notes, fmt.Sprintf("contains the dictionary word %q: hybrid attacks combine words with common decorations", m.Word))
		}
	}

	switch {
	case breach.Unknown:
		notes = append(notes, "breach status unavailable")
	case breach.Found && breach.Count > 0:
		notes = append(notes, fmt.Sprintf("found in known breaches %d times, do not use this password", breach.Count))
	case breach.Found:
		notes = append(notes, "found in known breaches, do not use this password")
	default:
		notes = append(notes, "not found in known breaches")
	}

	return notes
}

func compositionNote(profile CharacterProfile) string {
	classes := 0
	for _, has := range []bool{profile.HasLower, profile.HasUpper, profile.HasDigit, profile.HasSymbol, profile.HasOther} {
		if has {
			classes++
		}
	}
	return fmt.Sprintf("uses %d of 4 character classes over %d characters (%d distinct), alphabet of %d",
		min4(classes), profile.Length, profile.Distinct, profile.PoolSize())
}

func min4(v int) int {
	if v > 4 {
		return 4
	}
	return v
}
