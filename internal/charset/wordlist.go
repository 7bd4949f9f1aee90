package charset

import (
	"errors"
	"strings"
)

var (
	ErrUnknownLanguage  = errors.New("unknown word list language")
	ErrUnknownSeparator = errors.New("unknown passphrase separator")
)

// Language selects one of the built-in word lists.
type Language int

const (
	LanguageEnglish Language = iota
	LanguageGerman
)

func (l Language) String() string {
	if l == LanguageGerman {
		return "german"
	}
	return "english"
}

// ParseLanguage accepts "english"/"en" and "german"/"de". An empty string
// selects English.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "english", "en":
		return LanguageEnglish, nil
	case "german", "de":
		return LanguageGerman, nil
	default:
		return LanguageEnglish, ErrUnknownLanguage
	}
}

// Separator joins the words of a passphrase.
type Separator int

const (
	SeparatorNone Separator = iota
	SeparatorHyphen
	SeparatorUnderscore
	SeparatorSpace
)

// Join returns the literal placed between words.
func (s Separator) Join() string {
	switch s {
	case SeparatorHyphen:
		return "-"
	case SeparatorUnderscore:
		return "_"
	case SeparatorSpace:
		return " "
	default:
		return ""
	}
}

func (s Separator) String() string {
	switch s {
	case SeparatorHyphen:
		return "hyphen"
	case SeparatorUnderscore:
		return "underscore"
	case SeparatorSpace:
		return "space"
	default:
		return "none"
	}
}

// ParseSeparator accepts the names returned by Separator.String as well as
// the literal separator characters.
func ParseSeparator(s string) (Separator, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return SeparatorNone, nil
	case "hyphen", "-":
		return SeparatorHyphen, nil
	case "underscore", "_":
		return SeparatorUnderscore, nil
	case "space", " ":
		return SeparatorSpace, nil
	default:
		return SeparatorNone, ErrUnknownSeparator
	}
}

// WordlistOptions configures passphrase generation.
type WordlistOptions struct {
	Language      Language
	Capitalize    bool
	AppendNumbers bool
	AppendSpecial bool
	Separator     Separator
}

// DefaultWordlistOptions returns capitalized English words joined by hyphens.
func DefaultWordlistOptions() WordlistOptions {
	return WordlistOptions{
		Language:   LanguageEnglish,
		Capitalize: true,
		Separator:  SeparatorHyphen,
	}
}

// ResolveWordlist returns the word list for the language and its length.
// The returned slice is shared and must not be modified.
func ResolveWordlist(lang Language) ([]string, int) {
	words := englishWords
	if lang == LanguageGerman {
		words = germanWords
	}
	return words, len(words)
}

// Contains reports whether word is in the list for lang, ignoring case.
func Contains(lang Language, word string) bool {
	words, _ := ResolveWordlist(lang)
	for _, w := range words {
		if strings.EqualFold(w, word) {
			return true
		}
	}
	return false
}
