package strength

import (
	"math"
	"testing"
)

func TestBaseEntropyUsesObservedAlphabet(t *testing.T) {
	// 6 lowercase characters against a 26-symbol space.
	est := EstimateEntropy(Profile("kqzjwp"), nil, nil)
	want := round2(6 * math.Log2(26))
	if est.BaseBits != want {
		t.Errorf("Base entropy = %.2f, want %.2f", est.BaseBits, want)
	}
	if est.AdjustedBits != est.BaseBits {
		t.Errorf("No findings should mean no adjustment")
	}
}

func TestEmptyPassword(t *testing.T) {
	est := EstimateEntropy(Profile(""), nil, nil)
	if est.BaseBits != 0 || est.AdjustedBits != 0 {
		t.Errorf("Empty password should have zero entropy, got %+v", est)
	}
}

func TestRepetitionLowersEntropy(t *testing.T) {
	repeated := EstimateEntropy(Profile("aaaaaa"), DetectPatterns("aaaaaa"), nil)
	random := EstimateEntropy(Profile("kqzjwp"), DetectPatterns("kqzjwp"), nil)

	if repeated.AdjustedBits >= random.BaseBits {
		t.Errorf("'aaaaaa' adjusted (%.2f) must be strictly below the base of a clean 6-char lowercase password (%.2f)",
			repeated.AdjustedBits, random.BaseBits)
	}
}

func TestAdjustedMonotoneNonIncreasing(t *testing.T) {
	profile := Profile("kqzjwpabc123")
	patterns := DetectPatterns("kqzjwpabc123")

	var prev float64 = math.Inf(1)
	for n := 0; n <= len(patterns); n++ {
		est := EstimateEntropy(profile, patterns[:n], nil)
		if est.AdjustedBits > prev {
			t.Errorf("Adjusted entropy increased from %.2f to %.2f with more findings", prev, est.AdjustedBits)
		}
		if est.AdjustedBits < 0 {
			t.Errorf("Adjusted entropy must never be negative, got %.2f", est.AdjustedBits)
		}
		prev = est.AdjustedBits
	}
}

func TestEntropyFloorsAtZero(t *testing.T) {
	// Short and saturated with findings: base 18.8 bits against 32 in penalties.
	est := EstimateEntropy(Profile("aaaa"), DetectPatterns("aaaa"), NewWordlist([]string{"aaaa"}).Match("aaaa"))
	if est.AdjustedBits != 0 {
		t.Errorf("Adjusted entropy must floor at zero, got %.2f", est.AdjustedBits)
	}
}

func TestPenaltiesTraceToFindings(t *testing.T) {
	password := "qwerty123"
	profile := Profile(password)
	patterns := DetectPatterns(password)
	words := NewWordlist([]string{"qwerty"}).Match(password)

	est := EstimateEntropy(profile, patterns, words)
	if len(est.Penalties) != len(patterns)+len(words) {
		t.Fatalf("Every finding must map to exactly one penalty: %d findings, %d penalties",
			len(patterns)+len(words), len(est.Penalties))
	}

	var total float64
	for _, p := range est.Penalties {
		total += p.Bits
	}
	unfloored := est.BaseBits - total
	if unfloored < 0 {
		unfloored = 0
	}
	if math.Abs(est.AdjustedBits-round2(unfloored)) > 1e-9 {
		t.Errorf("Penalty total must account for the whole adjustment: base %.2f, penalties %.2f, adjusted %.2f",
			est.BaseBits, total, est.AdjustedBits)
	}
}
