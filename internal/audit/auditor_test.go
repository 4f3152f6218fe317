// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package audit

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pwd-strength/pkg/strength"
)

func TestAuditor(t *testing.T) {
	wordlist, err := strength.LoadWordlist("../../test/data/wordlist-sample.txt")
	if err != nil {
		t.Fatalf("Should not fail loading the sample wordlist: %s", err)
	}
	analyzer, err := strength.NewAnalyzer(wordlist, nil)
	if err != nil {
		t.Fatalf("Should not fail building the analyzer: %s", err)
	}

	dir := t.TempDir()
	inPath := filepath.Join(dir, "candidates.txt")
	if err = os.WriteFile(inPath, []byte("password\nqwerty123\nkQ7!vmXp2#bZw9&f\n\naaaaaa\n"), 0600); err != nil {
		t.Fatalf("Should not fail writing the fixture: %s", err)
	}

	in, err := os.Open(inPath)
	if err != nil {
		t.Fatalf("Should not fail opening the fixture: %s", err)
	}
	defer in.Close()

	out, err := os.Create(filepath.Join(dir, "results.tsv"))
	if err != nil {
		t.Fatalf("Should not fail creating the results file: %s", err)
	}
	defer out.Close()

	auditor := NewAuditor(analyzer, out, 2)
	if err = auditor.ProcessFile(in); err != nil {
		t.Fatalf("Should not fail the audit: %s", err)
	}

	read, err := os.Open(out.Name())
	if err != nil {
		t.Fatalf("Should not fail reopening the results file: %s", err)
	}
	defer read.Close()

	lines := 0
	scanner := bufio.NewScanner(read)
	for scanner.Scan() {
		line := scanner.Text()
		lines++
		if lines == 1 {
			continue // header
		}
		// Metrics only, the candidate text must never appear.
		for _, candidate := range []string{"password", "qwerty123", "kQ7!vmXp2#bZw9&f", "aaaaaa"} {
			if strings.Contains(line, candidate) {
				t.Errorf("Result rows must not contain the candidate text: %q", line)
			}
		}
	}

	// Header plus one row per non-empty candidate.
	if lines != 5 {
		t.Errorf("Expected 5 result lines, got %d", lines)
	}
}
