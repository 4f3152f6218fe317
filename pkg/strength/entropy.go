// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import "math"

// Penalty ties one applied entropy adjustment back to the finding that caused
// it. The sum of Bits over Penalties always equals BaseBits-AdjustedBits
// before flooring; there are no hidden adjustments.
type Penalty struct {
	Source string  `json:"source"`
	Detail string  `json:"detail"`
	Bits   float64 `json:"bits"`
}

// EntropyEstimate is the heuristic keyspace estimate for one password. The
// figures approximate attacker effort, they are not information-theoretic
// guarantees.
type EntropyEstimate struct {
	BaseBits     float64   `json:"baseBits"`
	AdjustedBits float64   `json:"adjustedBits"`
	Penalties    []Penalty `json:"penalties"`
}

// EstimateEntropy computes length x log2(pool) over the classes the password
// actually uses, then subtracts one penalty per finding, flooring at zero.
// Recognizable structure means wordlists and masks, not brute keyspace search.
func EstimateEntropy(profile CharacterProfile, patterns []PatternFinding, words []DictionaryMatch) EntropyEstimate {
	var est EntropyEstimate
	if pool := profile.PoolSize(); pool > 0 {
		est.BaseBits = round2(float64(profile.Length) * math.Log2(float64(pool)))
	}

	adjusted := est.BaseBits
	for _, f := range patterns {
		est.Penalties = append(est.Penalties, Penalty{
			Source: string(f.Kind),
			Detail: f.Match,
			Bits:   f.Weight,
		})
		adjusted -= f.Weight
	}
	for _, m := range words {
		source := "dictionary-partial"
		if m.Full {
			source = "dictionary-full"
		}
		est.Penalties = append(est.Penalties, Penalty{
			Source: source,
			Detail: m.Word,
			Bits:   m.Weight,
		})
		adjusted -= m.Weight
	}

	if adjusted < 0 {
		adjusted = 0
	}
	est.AdjustedBits = round2(adjusted)
	return est
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
