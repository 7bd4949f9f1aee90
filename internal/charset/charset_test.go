package charset

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBuildAlphabet(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantSize int
	}{
		{name: "defaults", opts: DefaultOptions(), wantSize: 26 + 26 + 10 + 32},
		{name: "uppercase only", opts: Options{Uppercase: true}, wantSize: 26},
		{name: "lowercase only", opts: Options{Lowercase: true}, wantSize: 26},
		{name: "numbers only", opts: Options{Numbers: true}, wantSize: 10},
		{name: "special only", opts: Options{Special: true}, wantSize: 32},
		{name: "extended only", opts: Options{Extended: true}, wantSize: 7},
		{name: "brackets only", opts: Options{Brackets: true}, wantSize: 8},
		{name: "spaces only", opts: Options{Spaces: true}, wantSize: 1},
		{
			name: "all categories",
			opts: Options{
				Uppercase: true, Lowercase: true, Numbers: true, Special: true,
				Extended: true, Brackets: true, Spaces: true,
			},
			wantSize: 110,
		},
		{name: "uppercase exclude similar", opts: Options{Uppercase: true, ExcludeSimilar: true}, wantSize: 24},
		{name: "lowercase exclude similar", opts: Options{Lowercase: true, ExcludeSimilar: true}, wantSize: 25},
		{name: "numbers exclude similar", opts: Options{Numbers: true, ExcludeSimilar: true}, wantSize: 8},
		{name: "special exclude similar", opts: Options{Special: true, ExcludeSimilar: true}, wantSize: 31},
		{name: "defaults exclude similar", opts: Options{Uppercase: true, Lowercase: true, Numbers: true, Special: true, ExcludeSimilar: true}, wantSize: 94 - 6},
		{name: "nothing selected", opts: Options{}, wantSize: 62},
		{name: "only exclude similar", opts: Options{ExcludeSimilar: true}, wantSize: 62},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alphabet, size := BuildAlphabet(tt.opts)
			if size != tt.wantSize {
				t.Errorf("BuildAlphabet() size = %d, want %d", size, tt.wantSize)
			}
			if got := utf8.RuneCountInString(alphabet); got != size {
				t.Errorf("alphabet has %d runes but size is %d", got, size)
			}
			if alphabet == "" {
				t.Error("BuildAlphabet() returned empty alphabet")
			}
		})
	}
}

func TestBuildAlphabetExcludesSimilar(t *testing.T) {
	opts := Options{
		Uppercase: true, Lowercase: true, Numbers: true, Special: true,
		Extended: true, Brackets: true, Spaces: true, ExcludeSimilar: true,
	}
	alphabet, _ := BuildAlphabet(opts)
	if strings.ContainsAny(alphabet, SimilarChars) {
		t.Errorf("alphabet %q still contains similar characters", alphabet)
	}
}

func TestBuildAlphabetFallback(t *testing.T) {
	alphabet, size := BuildAlphabet(Options{})
	if alphabet != FallbackChars {
		t.Errorf("fallback alphabet = %q, want %q", alphabet, FallbackChars)
	}
	if size != 62 {
		t.Errorf("fallback size = %d, want 62", size)
	}
}

func TestBuildAlphabetCategoryOrder(t *testing.T) {
	alphabet, _ := BuildAlphabet(Options{Numbers: true, Uppercase: true})
	if alphabet != UppercaseChars+NumberChars {
		t.Errorf("alphabet = %q, want uppercase before numbers", alphabet)
	}
}

func TestCategorySizes(t *testing.T) {
	want := map[Category]int{
		CategoryUppercase: 26,
		CategoryLowercase: 26,
		CategoryNumbers:   10,
		CategorySpecial:   32,
		CategoryExtended:  7,
		CategoryBrackets:  8,
		CategorySpaces:    1,
	}
	for c, n := range want {
		if got := utf8.RuneCountInString(c.Chars()); got != n {
			t.Errorf("%s has %d characters, want %d", c, got, n)
		}
	}
}

func TestActiveCount(t *testing.T) {
	if got := DefaultOptions().ActiveCount(); got != 4 {
		t.Errorf("DefaultOptions().ActiveCount() = %d, want 4", got)
	}
	if got := (Options{ExcludeSimilar: true}).ActiveCount(); got != 0 {
		t.Errorf("ExcludeSimilar must not count as a category, got %d", got)
	}
}

func TestToggleRefusesLastCategory(t *testing.T) {
	opts := Options{Numbers: true}
	got := opts.Toggle(CategoryNumbers)
	if !got.Numbers {
		t.Fatal("Toggle() switched off the last active category")
	}

	got = opts.Toggle(CategoryUppercase)
	if !got.Uppercase || !got.Numbers {
		t.Fatalf("Toggle() = %+v, want uppercase and numbers on", got)
	}

	got = got.Toggle(CategoryNumbers)
	if got.Numbers {
		t.Fatal("Toggle() should switch numbers off when another category is active")
	}
}
