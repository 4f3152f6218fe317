// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"fmt"
	"math"
	"sort"
)

// Named attacker rates in guesses per second: a throttled online endpoint, a
// single-machine offline attack against a fast hash, and a dedicated GPU rig.
var attackerRates = map[string]float64{
	"online":   1e3,
	"offline":  1e10,
	"fast-gpu": 1e11,
}

// CrackTimeEstimate maps attacker profile names to projected durations.
type CrackTimeEstimate struct {
	Seconds map[string]float64 `json:"seconds"`
	Display map[string]string  `json:"display"`
}

// DefaultProfiles returns every known attacker profile name, sorted.
func DefaultProfiles() []string {
	names := make([]string, 0, len(attackerRates))
	for name := range attackerRates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func KnownProfile(name string) bool {
	_, ok := attackerRates[name]
	return ok
}

// EstimateCrackTime projects the average time to success for each named rate.
// Expected work is half the keyspace: an average-case heuristic, not a
// cryptographic guarantee. The score breakpoints in report.go were derived
// against this model.
func EstimateCrackTime(bits float64, profiles []string) CrackTimeEstimate {
	est := CrackTimeEstimate{
		Seconds: make(map[string]float64, len(profiles)),
		Display: make(map[string]string, len(profiles)),
	}
	for _, name := range profiles {
		rate, ok := attackerRates[name]
		if !ok {
			continue
		}
		seconds := math.Exp2(bits) * 0.5 / rate
		// Exp2 overflows past ~1024 bits, which a long mixed-class password
		// can reach. Clamp so the figure stays finite and serializable.
		if math.IsInf(seconds, 1) {
			seconds = math.MaxFloat64
		}
		est.Seconds[name] = seconds
		est.Display[name] = HumanizeSeconds(seconds)
	}
	return est
}

// HumanizeSeconds renders a duration in the largest sensible unit.
func HumanizeSeconds(seconds float64) string {
	const (
		minute = 60
		hour   = 3600
		day    = 86400
		year   = 31536000
	)
	switch {
	case seconds < 1:
		return "instantly"
	case seconds < minute:
		return plural(int64(seconds), "second")
	case seconds < hour:
		return plural(int64(seconds/minute), "minute")
	case seconds < day:
		return plural(int64(seconds/hour), "hour")
	case seconds < year:
		return plural(int64(seconds/day), "day")
	case seconds < 100*year:
		return plural(int64(seconds/year), "year")
	case seconds < 1000*year:
		return plural(int64(seconds/(100*year)), "century")
	default:
		return "millennia"
	}
}

func plural(v int64, unit string) string {
	if v == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	if unit == "century" {
		return fmt.Sprintf("%d centuries", v)
	}
	return fmt.Sprintf("%d %ss", v, unit)
}
