package strength

import (
	"math"
	"unicode/utf8"
)

// Pool sizes credited for each character class found in checked input.
const (
	upperPool   = 26
	lowerPool   = 26
	digitPool   = 10
	specialPool = 32
)

// ScenarioEstimate is the crack time of an analyzed input under one profile.
type ScenarioEstimate struct {
	Profile          Profile `json:"profile"`
	CrackTimeSeconds float64 `json:"crack_time_seconds"`
	CrackTime        string  `json:"crack_time"`
}

// Analysis describes an arbitrary user-supplied password. It never holds the
// input itself.
type Analysis struct {
	Empty       bool    `json:"empty"`
	Length      int     `json:"length"`
	UniqueChars int     `json:"unique_chars"`
	HasUpper    bool    `json:"has_upper"`
	HasLower    bool    `json:"has_lower"`
	HasDigit    bool    `json:"has_digit"`
	HasSpecial  bool    `json:"has_special"`
	PoolSize    int     `json:"pool_size"`
	EntropyBits float64 `json:"entropy_bits"`
	// Score is a 0–100 summary derived from entropy.
	Score     int                `json:"score"`
	Level     *Level             `json:"level,omitempty"`
	Scenarios []ScenarioEstimate `json:"scenarios"`
}

// ClassCount returns how many character classes the input uses.
func (a Analysis) ClassCount() int {
	n := 0
	for _, has := range []bool{a.HasUpper, a.HasLower, a.HasDigit, a.HasSpecial} {
		if has {
			n++
		}
	}
	return n
}

// Analyze estimates the brute-force resistance of input from the character
// classes it contains. An input without recognised classes is treated as
// lowercase-only. The classification uses profile p; scenario estimates
// cover every profile.
func Analyze(input string, p Profile) Analysis {
	if input == "" {
		return Analysis{Empty: true, Scenarios: []ScenarioEstimate{}}
	}

	a := Analysis{Length: utf8.RuneCountInString(input)}
	seen := make(map[rune]struct{})
	for _, r := range input {
		seen[r] = struct{}{}
		switch {
		case r >= 'A' && r <= 'Z':
			a.HasUpper = true
		case r >= 'a' && r <= 'z':
			a.HasLower = true
		case r >= '0' && r <= '9':
			a.HasDigit = true
		default:
			a.HasSpecial = true
		}
	}
	a.UniqueChars = len(seen)

	if a.HasUpper {
		a.PoolSize += upperPool
	}
	if a.HasLower {
		a.PoolSize += lowerPool
	}
	if a.HasDigit {
		a.PoolSize += digitPool
	}
	if a.HasSpecial {
		a.PoolSize += specialPool
	}
	if a.PoolSize == 0 {
		a.PoolSize = lowerPool
	}

	a.EntropyBits = EntropyBits(a.PoolSize, a.Length)
	a.Score = min(100, int(math.Round(a.EntropyBits*0.8)))

	combinations := Combinations(a.PoolSize, a.Length)
	level := Classify(a.EntropyBits, Years(p.CrackTimeSeconds(combinations)), a.Length, a.ClassCount())
	a.Level = &level

	for _, sp := range profiles {
		secs := sp.CrackTimeSeconds(combinations)
		a.Scenarios = append(a.Scenarios, ScenarioEstimate{
			Profile:          sp,
			CrackTimeSeconds: secs,
			CrackTime:        FormatCrackTime(secs),
		})
	}

	return a
}
