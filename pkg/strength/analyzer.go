// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package strength estimates how resistant a password is to realistic
// guessing attacks. It profiles character composition, detects human-chosen
// structure (repetition, sequences, keyboard walks, dates, dictionary words),
// down-adjusts a heuristic entropy figure for every finding, and projects
// crack times for named attacker rates. The password never leaves the
// process except as a digest prefix through the injected BreachChecker.
package strength

import (
	"context"
	"errors"
	"fmt"
)

// BreachChecker is the boundary to an external breach corpus. Implementations
// must only ever transmit a digest prefix, never the password or its full
// digest, and must be time-bounded.
type BreachChecker interface {
	Check(ctx context.Context, password string) (BreachResult, error)
}

// Options control a single analysis call. The zero value runs the breach
// check against every known attacker profile.
type Options struct {
	// SkipBreachCheck leaves the configured BreachChecker untouched. The
	// report then carries an unknown breach status, not a clean one.
	SkipBreachCheck bool
	// AttackerProfiles selects the crack time columns. Empty means all known
	// profiles; unknown names fail validation before any analysis runs.
	AttackerProfiles []string
}

// DefaultOptions runs the breach check over every known attacker profile.
func DefaultOptions() Options {
	return Options{AttackerProfiles: DefaultProfiles()}
}

// Analyzer is the engine entry point. The wordlist is read-only after
// construction and the breach boundary is injectable, so one Analyzer serves
// concurrent requests without locking.
type Analyzer struct {
	wordlist *Wordlist
	breach   BreachChecker
}

// NewAnalyzer wires the engine together. The wordlist is required; the breach
// checker may be nil, in which case every report carries an unknown breach
// status.
func NewAnalyzer(wordlist *Wordlist, breach BreachChecker) (*Analyzer, error) {
	if wordlist == nil || wordlist.Len() == 0 {
		return nil, errors.New("strength: a non-empty wordlist is required")
	}
	return &Analyzer{wordlist: wordlist, breach: breach}, nil
}

// Analyze runs the full pipeline over one password. Every stage except the
// breach lookup is pure and cannot fail; a failed or skipped lookup degrades
// the report to an unknown breach status instead of erroring.
func (a *Analyzer) Analyze(ctx context.Context, password string, opts Options) (StrengthReport, error) {
	if len(opts.AttackerProfiles) == 0 {
		opts.AttackerProfiles = DefaultProfiles()
	}
	for _, name := range opts.AttackerProfiles {
		if !KnownProfile(name) {
			return StrengthReport{}, fmt.Errorf("strength: unknown attacker profile %q", name)
		}
	}

	profile := Profile(password)
	patterns := DetectPatterns(password)
	words := a.wordlist.Match(password)
	entropy := EstimateEntropy(profile, patterns, words)
	crack := EstimateCrackTime(entropy.AdjustedBits, opts.AttackerProfiles)

	breach := BreachResult{Unknown: true}
	if !opts.SkipBreachCheck && a.breach != nil {
		if res, err := a.breach.Check(ctx, password); err == nil {
			breach = res
		}
	}

	return BuildReport(password, profile, entropy, crack, patterns, words, breach), nil
}
