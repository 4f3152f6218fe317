// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

// Reference layouts for walk detection. Adjacency is symmetric so reversed
// walks ("ytrewq", "654321") match for free.
var qwertyRows = []string{
	"1234567890",
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

var keypadRows = []string{
	"789",
	"456",
	"123",
}

var keyAdjacency = buildAdjacency()

func buildAdjacency() map[rune]map[rune]bool {
	adj := make(map[rune]map[rune]bool)
	link := func(a, b rune) {
		if adj[a] == nil {
			adj[a] = make(map[rune]bool)
		}
		if adj[b] == nil {
			adj[b] = make(map[rune]bool)
		}
		adj[a][b] = true
		adj[b][a] = true
	}
	addLayout := func(layout []string) {
		for r, rowStr := range layout {
			row := []rune(rowStr)
			for c, key := range row {
				if c+1 < len(row) {
					link(key, row[c+1])
				}
				if r+1 < len(layout) {
					// The rows are staggered, a key touches the key at its own
					// column below and the one to that key's left.
					below := []rune(layout[r+1])
					for _, offset := range []int{0, -1} {
						if c+offset >= 0 && c+offset < len(below) {
							link(key, below[c+offset])
						}
					}
				}
			}
		}
	}
	addLayout(qwertyRows)
	addLayout(keypadRows)
	return adj
}

func detectKeyboardWalks(password string) []PatternFinding {
	orig := []rune(password)
	runes := foldRunes(orig)
	var findings []PatternFinding
	for i := 0; i+2 < len(runes); {
		j := i
		for j+1 < len(runes) && keyAdjacency[runes[j]][runes[j+1]] {
			j++
		}
		if j-i+1 >= 3 {
			findings = append(findings, PatternFinding{
				Kind:   PatternKeyboardWalk,
				Match:  string(orig[i : j+1]),
				Start:  i,
				End:    j + 1,
				Weight: keyboardWalkPenalty,
			})
			i = j
		} else {
			i++
		}
	}
	return findings
}
