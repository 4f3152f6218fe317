// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

// CharacterProfile is the composition summary of a single password, derived
// once per analysis and read-only afterward.
type CharacterProfile struct {
	HasUpper  bool `json:"hasUpper"`
	HasLower  bool `json:"hasLower"`
	HasDigit  bool `json:"hasDigit"`
	HasSymbol bool `json:"hasSymbol"`
	HasOther  bool `json:"hasOther"`
	Length    int  `json:"length"`
	Distinct  int  `json:"distinct"`
}

// Profile classifies every rune of the password. It never fails: runes outside
// the four ASCII classes land in the "other" bucket and still count toward
// Length and Distinct. The empty string yields a zero profile.
func Profile(password string) CharacterProfile {
	var p CharacterProfile
	seen := make(map[rune]struct{})
	for _, r := range password {
		p.Length++
		seen[r] = struct{}{}
		switch {
		case r >= 'a' && r <= 'z':
			p.HasLower = true
		case r >= 'A' && r <= 'Z':
			p.HasUpper = true
		case r >= '0' && r <= '9':
			p.HasDigit = true
		case r < 128:
			p.HasSymbol = true
		default:
			p.HasOther = true
		}
	}
	p.Distinct = len(seen)
	return p
}

// PoolSize is the alphabet an attacker has to cover for this composition. Only
// the classes actually present contribute: a lowercase-only password is scored
// against 26 symbols, not a full printable set. Non-ASCII runes are pooled
// like symbols rather than scored as zero.
func (p CharacterProfile) PoolSize() int {
	pool := 0
	if p.HasLower {
		pool += 26
	}
	if p.HasUpper {
		pool += 26
	}
	if p.HasDigit {
		pool += 10
	}
	if p.HasSymbol {
		pool += 32
	}
	if p.HasOther {
		pool += 32
	}
	return pool
}
