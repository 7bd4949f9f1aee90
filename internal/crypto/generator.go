package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vaultpass/passgen-go/internal/charset"
)

const (
	pinChars    = "0123456789"
	suffixChars = "!@#$%&*"

	// maxNumberSuffix is the exclusive upper bound of appended word numerals.
	maxNumberSuffix = 100
)

var ErrEmptyUniverse = errors.New("nothing to draw from")

// Generator draws credentials from a random source. The zero value is not
// usable; construct one with NewGenerator.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{rand: rand.Reader}
}

// NewGeneratorFromReader returns a Generator reading randomness from r.
// Only tests should pass anything other than crypto/rand.Reader.
func NewGeneratorFromReader(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// DrawCredential picks length characters from alphabet independently and
// uniformly. A non-positive length or an empty alphabet yields "".
func (g *Generator) DrawCredential(alphabet string, length int) (string, error) {
	runes := []rune(alphabet)
	if length <= 0 || len(runes) == 0 {
		return "", nil
	}

	var b strings.Builder
	b.Grow(length * 2)
	for range length {
		i, err := g.intn(len(runes))
		if err != nil {
			return "", err
		}
		b.WriteRune(runes[i])
	}
	return b.String(), nil
}

// DrawPin returns a string of length random decimal digits.
func (g *Generator) DrawPin(length int) (string, error) {
	return g.DrawCredential(pinChars, length)
}

// DrawPassphrase picks wordCount words from words and decorates each one
// according to opts: every word is capitalized or lowercased, then receives a
// numeral suffix and a symbol suffix with independent even odds when those
// options are on.
func (g *Generator) DrawPassphrase(words []string, wordCount int, opts charset.WordlistOptions) (string, error) {
	if wordCount <= 0 {
		return "", nil
	}
	if len(words) == 0 {
		return "", ErrEmptyUniverse
	}

	lang := language.English
	if opts.Language == charset.LanguageGerman {
		lang = language.German
	}
	caser := cases.Lower(lang)
	if opts.Capitalize {
		caser = cases.Title(lang)
	}

	picked := make([]string, wordCount)
	for i := range picked {
		n, err := g.intn(len(words))
		if err != nil {
			return "", err
		}
		word := caser.String(words[n])

		if opts.AppendNumbers {
			word, err = g.maybeAppend(word, func() (string, error) {
				v, err := g.intn(maxNumberSuffix)
				return strconv.Itoa(v), err
			})
			if err != nil {
				return "", err
			}
		}
		if opts.AppendSpecial {
			word, err = g.maybeAppend(word, func() (string, error) {
				return g.DrawCredential(suffixChars, 1)
			})
			if err != nil {
				return "", err
			}
		}
		picked[i] = word
	}

	return strings.Join(picked, opts.Separator.Join()), nil
}

// DrawBatch calls draw n times and collects the results.
func DrawBatch(n int, draw func() (string, error)) ([]string, error) {
	out := make([]string, 0, max(n, 0))
	for range n {
		s, err := draw()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// maybeAppend appends the output of suffix to word with probability 1/2.
func (g *Generator) maybeAppend(word string, suffix func() (string, error)) (string, error) {
	coin, err := g.intn(2)
	if err != nil || coin == 0 {
		return word, err
	}
	s, err := suffix()
	if err != nil {
		return "", err
	}
	return word + s, nil
}

// intn returns a uniform integer in [0, n) using rejection sampling over
// 32-bit draws, so no residue class is favoured.
func (g *Generator) intn(n int) (int, error) {
	if n <= 1 {
		return 0, nil
	}

	bound := uint32(n)
	limit := ^uint32(0) - (^uint32(0)%bound+1)%bound
	var buf [4]byte
	for {
		if _, err := io.ReadFull(g.rand, buf[:]); err != nil {
			return 0, fmt.Errorf("reading random source: %w", err)
		}
		v := binary.LittleEndian.Uint32(buf[:])
		if v <= limit {
			return int(v % bound), nil
		}
	}
}
