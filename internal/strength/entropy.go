package strength

import "math"

// SecondsPerYear uses a 365-day year.
const SecondsPerYear = 31536000

// Flat per-word entropy bonuses for passphrase suffix options. They are
// credited whether or not a suffix was actually appended to a given word.
const (
	numberSuffixBits  = 3
	specialSuffixBits = 2
)

// EntropyBits returns length * log2(poolSize), or 0 when either value leaves
// nothing to guess.
func EntropyBits(poolSize, length int) float64 {
	if poolSize <= 1 || length <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(poolSize))
}

// PassphraseEntropyBits returns the entropy of wordCount words drawn from a
// list of listSize entries plus the suffix bonuses.
func PassphraseEntropyBits(listSize, wordCount int, numbers, special bool) float64 {
	bits := EntropyBits(listSize, wordCount)
	if wordCount <= 0 {
		return bits
	}
	if numbers {
		bits += float64(wordCount * numberSuffixBits)
	}
	if special {
		bits += float64(wordCount * specialSuffixBits)
	}
	return bits
}

// Combinations returns pool^length. Large inputs overflow to +Inf.
func Combinations(pool, length int) float64 {
	return math.Pow(float64(pool), float64(length))
}

// CrackTimeSeconds is the expected time to find a credential among
// combinations candidates at guessesPerSecond, assuming half the space is
// searched on average.
func CrackTimeSeconds(combinations, guessesPerSecond float64) float64 {
	return combinations / guessesPerSecond / 2
}

// Years converts seconds to 365-day years.
func Years(seconds float64) float64 {
	return seconds / SecondsPerYear
}
