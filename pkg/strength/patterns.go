// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import "unicode"

// PatternKind names a detector. Each kind carries one fixed penalty weight.
type PatternKind string

const (
	PatternRepetition   PatternKind = "repetition"
	PatternSequence     PatternKind = "sequence"
	PatternKeyboardWalk PatternKind = "keyboard-walk"
	PatternDateLike     PatternKind = "date-like"
)

// Penalty weights in bits. Attackers run rule-based masks over recognizable
// structure, so structure costs far more than its literal characters.
const (
	repetitionPenalty   = 12.0
	sequencePenalty     = 10.0
	keyboardWalkPenalty = 12.0
	dateLikePenalty     = 8.0
)

// PatternFinding is one detected weakness. Start/End are rune offsets,
// End exclusive.
type PatternFinding struct {
	Kind   PatternKind `json:"kind"`
	Match  string      `json:"match"`
	Start  int         `json:"start"`
	End    int         `json:"end"`
	Weight float64     `json:"weight"`
}

// DetectPatterns runs every detector over the whole password. Detectors scan
// independently; findings of different kinds may overlap and each contributes
// its own penalty. Detectors never fail, absence of a pattern just yields no
// finding.
func DetectPatterns(password string) []PatternFinding {
	var findings []PatternFinding
	findings = append(findings, detectRepetition(password)...)
	findings = append(findings, detectSequences(password)...)
	findings = append(findings, detectKeyboardWalks(password)...)
	findings = append(findings, detectDates(password)...)
	return findings
}

func detectRepetition(password string) []PatternFinding {
	runes := []rune(password)
	var findings []PatternFinding

	// Runs of the same character, 3 or longer.
	for i := 0; i < len(runes); {
		j := i + 1
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		if j-i >= 3 {
			findings = append(findings, PatternFinding{
				Kind:   PatternRepetition,
				Match:  string(runes[i:j]),
				Start:  i,
				End:    j,
				Weight: repetitionPenalty,
			})
		}
		i = j
	}

	// Repeated blocks, e.g. "abcabc" or "123123". Single-character blocks are
	// already covered by the run scan above.
	for i := 0; i < len(runes); i++ {
		for size := 2; i+2*size <= len(runes); size++ {
			if allSame(runes[i:i+size]) || !equalRunes(runes[i:i+size], runes[i+size:i+2*size]) {
				continue
			}
			end := i + 2*size
			for end+size <= len(runes) && equalRunes(runes[i:i+size], runes[end:end+size]) {
				end += size
			}
			findings = append(findings, PatternFinding{
				Kind:   PatternRepetition,
				Match:  string(runes[i:end]),
				Start:  i,
				End:    end,
				Weight: repetitionPenalty,
			})
			i = end - 1
			break
		}
	}

	return findings
}

func detectSequences(password string) []PatternFinding {
	orig := []rune(password)
	runes := foldRunes(orig)
	var findings []PatternFinding
	for i := 0; i+2 < len(runes); {
		step := seqStep(runes[i], runes[i+1])
		if step == 0 || seqStep(runes[i+1], runes[i+2]) != step {
			i++
			continue
		}
		j := i + 2
		for j+1 < len(runes) && seqStep(runes[j], runes[j+1]) == step {
			j++
		}
		findings = append(findings, PatternFinding{
			Kind:   PatternSequence,
			Match:  string(orig[i : j+1]),
			Start:  i,
			End:    j + 1,
			Weight: sequencePenalty,
		})
		// The last rune of a run may start one in the other direction.
		i = j
	}
	return findings
}

func detectDates(password string) []PatternFinding {
	runes := []rune(password)
	var findings []PatternFinding
	for i := 0; i < len(runes); {
		if !isDigitRune(runes[i]) {
			i++
			continue
		}
		j := i
		for j < len(runes) && isDigitRune(runes[j]) {
			j++
		}
		findings = append(findings, dateFindings(runes, i, j)...)
		i = j
	}
	return findings
}

// dateFindings scans the digit run runes[start:end). Eight-digit shapes win
// over the bare year they contain so one date is one finding.
func dateFindings(runes []rune, start, end int) []PatternFinding {
	var findings []PatternFinding
	for i := start; i < end; {
		if end-i >= 8 && dateLike(runes[i:i+8]) {
			findings = append(findings, PatternFinding{
				Kind:   PatternDateLike,
				Match:  string(runes[i : i+8]),
				Start:  i,
				End:    i + 8,
				Weight: dateLikePenalty,
			})
			i += 8
			continue
		}
		if end-i >= 4 && plausibleYear(digitsValue(runes[i:i+4])) {
			findings = append(findings, PatternFinding{
				Kind:   PatternDateLike,
				Match:  string(runes[i : i+4]),
				Start:  i,
				End:    i + 4,
				Weight: dateLikePenalty,
			})
			i += 4
			continue
		}
		i++
	}
	return findings
}

// dateLike reports whether 8 digits parse as YYYYMMDD, DDMMYYYY or MMDDYYYY
// with plausible fields.
func dateLike(digits []rune) bool {
	n := func(a, b int) int { return digitsValue(digits[a:b]) }
	if plausibleYear(n(0, 4)) && plausibleMonth(n(4, 6)) && plausibleDay(n(6, 8)) {
		return true
	}
	if plausibleDay(n(0, 2)) && plausibleMonth(n(2, 4)) && plausibleYear(n(4, 8)) {
		return true
	}
	if plausibleMonth(n(0, 2)) && plausibleDay(n(2, 4)) && plausibleYear(n(4, 8)) {
		return true
	}
	return false
}

// Years people actually put in passwords: birth years and recent years.
func plausibleYear(v int) bool { return v >= 1900 && v <= 2099 }

func plausibleMonth(v int) bool { return v >= 1 && v <= 12 }

func plausibleDay(v int) bool { return v >= 1 && v <= 31 }

func digitsValue(digits []rune) int {
	v := 0
	for _, d := range digits {
		v = v*10 + int(d-'0')
	}
	return v
}

func isDigitRune(r rune) bool { return r >= '0' && r <= '9' }

// seqStep returns +1 or -1 when the two runes are consecutive within the same
// ordering space (a-z or 0-9), zero otherwise.
func seqStep(a, b rune) int {
	if !sameOrderingSpace(a, b) {
		return 0
	}
	switch b - a {
	case 1:
		return 1
	case -1:
		return -1
	}
	return 0
}

func sameOrderingSpace(a, b rune) bool {
	alpha := func(r rune) bool { return r >= 'a' && r <= 'z' }
	return (alpha(a) && alpha(b)) || (isDigitRune(a) && isDigitRune(b))
}

// foldRunes lowercases rune by rune so offsets stay aligned with the input.
func foldRunes(runes []rune) []rune {
	folded := make([]rune, len(runes))
	for i, r := range runes {
		folded[i] = unicode.ToLower(r)
	}
	return folded
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func allSame(runes []rune) bool {
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}
	return true
}
