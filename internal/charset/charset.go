// Package charset resolves generator options into the universe that
// credentials are drawn from: an alphabet for passwords and PINs, or a word
// list for passphrases.
package charset

import (
	"strings"
	"unicode/utf8"
)

const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	NumberChars    = "0123456789"
	// SpecialChars holds the 32 printable ASCII punctuation characters.
	SpecialChars  = "!@#$%^&*()_+-=[]{}|;:,.<>?/~`\"'\\"
	ExtendedChars = "ÄÖÜäöüß"
	BracketChars  = "()[]{}⟨⟩"
	SpaceChars    = " "

	// SimilarChars are removed when Options.ExcludeSimilar is set.
	SimilarChars = "O0Il1|"

	// FallbackChars is used whenever the selected categories yield nothing.
	FallbackChars = LowercaseChars + UppercaseChars + NumberChars
)

// Category identifies one selectable character class.
type Category int

const (
	CategoryUppercase Category = iota
	CategoryLowercase
	CategoryNumbers
	CategorySpecial
	CategoryExtended
	CategoryBrackets
	CategorySpaces
)

// Categories lists every category in the order their characters are
// concatenated into the alphabet.
var Categories = []Category{
	CategoryUppercase,
	CategoryLowercase,
	CategoryNumbers,
	CategorySpecial,
	CategoryExtended,
	CategoryBrackets,
	CategorySpaces,
}

// Chars returns the characters contributed by the category.
func (c Category) Chars() string {
	switch c {
	case CategoryUppercase:
		return UppercaseChars
	case CategoryLowercase:
		return LowercaseChars
	case CategoryNumbers:
		return NumberChars
	case CategorySpecial:
		return SpecialChars
	case CategoryExtended:
		return ExtendedChars
	case CategoryBrackets:
		return BracketChars
	case CategorySpaces:
		return SpaceChars
	default:
		return ""
	}
}

func (c Category) String() string {
	switch c {
	case CategoryUppercase:
		return "uppercase"
	case CategoryLowercase:
		return "lowercase"
	case CategoryNumbers:
		return "numbers"
	case CategorySpecial:
		return "special"
	case CategoryExtended:
		return "extended"
	case CategoryBrackets:
		return "brackets"
	case CategorySpaces:
		return "spaces"
	default:
		return "unknown"
	}
}

// Options toggles the character categories of a password alphabet.
// ExcludeSimilar is a filter applied after the categories are combined and
// does not count as a category.
type Options struct {
	Uppercase      bool
	Lowercase      bool
	Numbers        bool
	Special        bool
	Extended       bool
	Brackets       bool
	Spaces         bool
	ExcludeSimilar bool
}

// DefaultOptions enables uppercase, lowercase, numbers and special characters.
func DefaultOptions() Options {
	return Options{
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Special:   true,
	}
}

// Enabled reports whether the given category is switched on.
func (o Options) Enabled(c Category) bool {
	switch c {
	case CategoryUppercase:
		return o.Uppercase
	case CategoryLowercase:
		return o.Lowercase
	case CategoryNumbers:
		return o.Numbers
	case CategorySpecial:
		return o.Special
	case CategoryExtended:
		return o.Extended
	case CategoryBrackets:
		return o.Brackets
	case CategorySpaces:
		return o.Spaces
	default:
		return false
	}
}

// ActiveCount returns the number of enabled categories.
func (o Options) ActiveCount() int {
	n := 0
	for _, c := range Categories {
		if o.Enabled(c) {
			n++
		}
	}
	return n
}

// Toggle flips a category and returns the new options. Switching off the last
// enabled category is refused and returns o unchanged.
func (o Options) Toggle(c Category) Options {
	enabled := o.Enabled(c)
	if enabled && o.ActiveCount() == 1 {
		return o
	}
	return o.set(c, !enabled)
}

func (o Options) set(c Category, v bool) Options {
	switch c {
	case CategoryUppercase:
		o.Uppercase = v
	case CategoryLowercase:
		o.Lowercase = v
	case CategoryNumbers:
		o.Numbers = v
	case CategorySpecial:
		o.Special = v
	case CategoryExtended:
		o.Extended = v
	case CategoryBrackets:
		o.Brackets = v
	case CategorySpaces:
		o.Spaces = v
	}
	return o
}

// BuildAlphabet concatenates the enabled categories, drops similar-looking
// characters when requested and returns the alphabet with its size in runes.
// An empty selection falls back to FallbackChars.
func BuildAlphabet(opts Options) (string, int) {
	var b strings.Builder
	for _, c := range Categories {
		if opts.Enabled(c) {
			b.WriteString(c.Chars())
		}
	}

	alphabet := b.String()
	if opts.ExcludeSimilar {
		alphabet = strings.Map(func(r rune) rune {
			if strings.ContainsRune(SimilarChars, r) {
				return -1
			}
			return r
		}, alphabet)
	}

	if alphabet == "" {
		alphabet = FallbackChars
	}

	return alphabet, utf8.RuneCountInString(alphabet)
}
