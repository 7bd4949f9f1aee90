package strength

// Assessment is the full strength estimate for one credential configuration.
type Assessment struct {
	EntropyBits      float64 `json:"entropy_bits"`
	Combinations     float64 `json:"-"`
	CrackTimeSeconds float64 `json:"crack_time_seconds"`
	Level
}

// CrackTime returns the formatted crack time.
func (a Assessment) CrackTime() string { return FormatCrackTime(a.CrackTimeSeconds) }

// CombinationsText returns the formatted size of the search space.
func (a Assessment) CombinationsText() string { return FormatCombinations(a.Combinations) }

// Passphrases are classified as if each word were five characters long, with
// two option groups in play.
const (
	passphraseCharsPerWord = 5
	passphraseOptionCount  = 2
)

// AssessPassword estimates a password of length characters from a pool of
// poolSize symbols built from activeOptions categories.
func AssessPassword(poolSize, length, activeOptions int, p Profile) Assessment {
	entropy := EntropyBits(poolSize, length)
	combinations := Combinations(poolSize, length)
	seconds := p.CrackTimeSeconds(combinations)

	return Assessment{
		EntropyBits:      entropy,
		Combinations:     combinations,
		CrackTimeSeconds: seconds,
		Level:            Classify(entropy, Years(seconds), length, activeOptions),
	}
}

// AssessPassphrase estimates wordCount words from a list of listSize entries.
// The suffix options add their flat entropy bonus but do not enlarge the
// search space used for the crack time.
func AssessPassphrase(listSize, wordCount int, numbers, special bool, p Profile) Assessment {
	entropy := PassphraseEntropyBits(listSize, wordCount, numbers, special)
	combinations := Combinations(listSize, wordCount)
	seconds := p.CrackTimeSeconds(combinations)

	return Assessment{
		EntropyBits:      entropy,
		Combinations:     combinations,
		CrackTimeSeconds: seconds,
		Level:            Classify(entropy, Years(seconds), wordCount*passphraseCharsPerWord, passphraseOptionCount),
	}
}

// AssessPin estimates a PIN of length digits. Its level comes from the PIN
// ladder, not from entropy.
func AssessPin(length int, p Profile) Assessment {
	combinations := Combinations(10, length)
	return Assessment{
		EntropyBits:      EntropyBits(10, length),
		Combinations:     combinations,
		CrackTimeSeconds: p.CrackTimeSeconds(combinations),
		Level:            ClassifyPin(length),
	}
}
