// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// Penalty weights in bits. A full match must always cost more than a partial
// one: the whole password is a single wordlist lookup for an attacker.
const (
	fullMatchPenalty    = 20.0
	partialMatchPenalty = 10.0
)

// Entries shorter than this match almost anything and are skipped for
// substring matching.
const minPartialLen = 4

// DictionaryMatch is one wordlist hit. Start/End are rune offsets into the
// password, End exclusive, indexed the same way as PatternFinding.
type DictionaryMatch struct {
	Word   string  `json:"word"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Full   bool    `json:"full"`
	Weight float64 `json:"weight"`
}

// Wordlist is the shared dictionary of known weak words. It is loaded once per
// process and never mutated afterward, so unsynchronized concurrent reads are
// safe.
type Wordlist struct {
	set   map[string]struct{}
	words []string
}

// LoadWordlist reads a newline-delimited wordlist into memory. A missing or
// unreadable file is an initialization error: silently disabling dictionary
// checks would inflate every score.
func LoadWordlist(path string) (*Wordlist, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening wordlist %s: %w", path, err)
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing wordlist file")
		}
	}(file)

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading wordlist %s: %w", path, err)
	}

	wl := NewWordlist(words)
	if wl.Len() == 0 {
		return nil, fmt.Errorf("wordlist %s has no usable entries", path)
	}

	log.Debug().Msgf("loaded %d wordlist entries from %s", wl.Len(), path)
	return wl, nil
}

// NewWordlist builds a Wordlist from entries already in memory. Entries are
// case-folded and deduplicated.
func NewWordlist(words []string) *Wordlist {
	wl := &Wordlist{set: make(map[string]struct{}, len(words))}
	for _, word := range words {
		word = string(foldRunes([]rune(strings.TrimSpace(word))))
		if word == "" {
			continue
		}
		if _, ok := wl.set[word]; ok {
			continue
		}
		wl.set[word] = struct{}{}
		wl.words = append(wl.words, word)
	}
	return wl
}

func (w *Wordlist) Len() int {
	return len(w.words)
}

// Match checks the password against the wordlist, case-insensitively. A
// full-string match is reported alone. Otherwise every start position reports
// at most its longest matching entry, so a single weak token is not penalized
// twice.
func (w *Wordlist) Match(password string) []DictionaryMatch {
	runes := foldRunes([]rune(password))
	if _, ok := w.set[string(runes)]; ok {
		return []DictionaryMatch{{
			Word:   string(runes),
			Start:  0,
			End:    len(runes),
			Full:   true,
			Weight: fullMatchPenalty,
		}}
	}

	var matches []DictionaryMatch
	for i := 0; i < len(runes); i++ {
		rest := string(runes[i:])
		best, bestLen := "", 0
		for _, word := range w.words {
			n := utf8.RuneCountInString(word)
			if n < minPartialLen || n <= bestLen {
				continue
			}
			if strings.HasPrefix(rest, word) {
				best, bestLen = word, n
			}
		}
		if best != "" {
			matches = append(matches, DictionaryMatch{
				Word:   best,
				Start:  i,
				End:    i + bestLen,
				Weight: partialMatchPenalty,
			})
			i += bestLen - 1
		}
	}
	return matches
}
