package service

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen-go/internal/charset"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/strength"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func newTestGeneratorService() *GeneratorService {
	return NewGeneratorService(crypto.NewGenerator(), strength.DefaultProfile)
}

func TestPassword_Defaults(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Password(model.PasswordRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Passwords, 1)
	assert.Equal(t, DefaultPasswordLength, resp.Length)
	assert.Equal(t, DefaultPasswordLength, utf8.RuneCountInString(resp.Passwords[0]))
	assert.Equal(t, 94, resp.Strength.PoolSize)
	assert.Equal(t, strength.ProfileGPU, resp.Strength.Profile)
	assert.Equal(t, strength.TierExtremelyStrong.String(), resp.Strength.Tier)
}

func TestPassword_CustomOptions(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Password(model.PasswordRequest{
		Length:    32,
		Count:     5,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Special:   boolPtr(false),
	})
	require.NoError(t, err)
	require.Len(t, resp.Passwords, 5)
	assert.Equal(t, 52, resp.Strength.PoolSize)

	for _, p := range resp.Passwords {
		assert.Len(t, p, 32)
		for _, c := range p {
			assert.True(t, (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z'), "unexpected character %q", c)
		}
	}
}

func TestPassword_ExcludeSimilar(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Password(model.PasswordRequest{Length: 128, ExcludeSimilar: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, 88, resp.Strength.PoolSize)
	assert.False(t, strings.ContainsAny(resp.Passwords[0], charset.SimilarChars))
}

func TestPassword_NoCategoriesFallsBack(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Password(model.PasswordRequest{
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Special:   boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, 62, resp.Strength.PoolSize)
}

func TestPassword_Bounds(t *testing.T) {
	svc := newTestGeneratorService()
	for _, req := range []model.PasswordRequest{{Length: 3}, {Length: 200}, {Count: 11}} {
		_, err := svc.Password(req)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	}
}

func TestPassword_Profile(t *testing.T) {
	svc := newTestGeneratorService()

	online, err := svc.Password(model.PasswordRequest{Profile: strength.ProfileOnline})
	require.NoError(t, err)
	gpu, err := svc.Password(model.PasswordRequest{})
	require.NoError(t, err)
	require.NotNil(t, online.Strength.CrackTimeSeconds)
	require.NotNil(t, gpu.Strength.CrackTimeSeconds)
	assert.Greater(t, *online.Strength.CrackTimeSeconds, *gpu.Strength.CrackTimeSeconds)

	_, err = svc.Password(model.PasswordRequest{Profile: "abacus"})
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestPassphrase_Defaults(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Passphrase(model.PassphraseRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Passphrases, 1)
	words := strings.Split(resp.Passphrases[0], "-")
	require.Len(t, words, DefaultWordCount)
	for _, w := range words {
		assert.True(t, charset.Contains(charset.LanguageEnglish, w), "word %q not in list", w)
		first, _ := utf8.DecodeRuneInString(w)
		assert.True(t, first >= 'A' && first <= 'Z', "word %q not capitalized", w)
	}
	assert.Equal(t, 348, resp.Strength.PoolSize)
	assert.Equal(t, "english", resp.Language)
}

func TestPassphrase_Options(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Passphrase(model.PassphraseRequest{
		Words:      6,
		Language:   "de",
		Capitalize: boolPtr(false),
		Separator:  strPtr("space"),
	})
	require.NoError(t, err)

	words := strings.Split(resp.Passphrases[0], " ")
	require.Len(t, words, 6)
	for _, w := range words {
		assert.True(t, charset.Contains(charset.LanguageGerman, w), "word %q not in list", w)
	}
	assert.Equal(t, 300, resp.Strength.PoolSize)
}

func TestPassphrase_EmptySeparator(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Passphrase(model.PassphraseRequest{Separator: strPtr("")})
	require.NoError(t, err)
	assert.NotContains(t, resp.Passphrases[0], "-")
}

func TestPassphrase_SuffixBonus(t *testing.T) {
	svc := newTestGeneratorService()
	plain, err := svc.Passphrase(model.PassphraseRequest{})
	require.NoError(t, err)
	rich, err := svc.Passphrase(model.PassphraseRequest{AppendNumbers: boolPtr(true), AppendSpecial: boolPtr(true)})
	require.NoError(t, err)
	assert.InDelta(t, plain.Strength.EntropyBits+20, rich.Strength.EntropyBits, 1e-9)
}

func TestPassphrase_Invalid(t *testing.T) {
	svc := newTestGeneratorService()
	tests := []model.PassphraseRequest{
		{Words: 2},
		{Words: 11},
		{Language: "klingon"},
		{Separator: strPtr("pipe")},
	}
	for _, req := range tests {
		_, err := svc.Passphrase(req)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	}
}

func TestPin(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Pin(model.PinRequest{Count: 3})
	require.NoError(t, err)
	require.Len(t, resp.Pins, 3)
	for _, p := range resp.Pins {
		assert.Len(t, p, DefaultPinLength)
		assert.Empty(t, strings.Trim(p, "0123456789"))
	}
	assert.Equal(t, strength.TierWeak.String(), resp.Strength.Tier)
	assert.Equal(t, "1.000.000", resp.Strength.Combinations)

	_, err = svc.Pin(model.PinRequest{Length: 3})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestCheck(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Check(model.CheckRequest{Password: "Passw0rd!"})
	require.NoError(t, err)
	assert.Equal(t, 94, resp.PoolSize)
	assert.Equal(t, 9, resp.Length)
	require.NotNil(t, resp.Level)

	empty, err := svc.Check(model.CheckRequest{})
	require.NoError(t, err)
	assert.True(t, empty.Empty)

	_, err = svc.Check(model.CheckRequest{Password: strings.Repeat("a", 129)})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestProfiles(t *testing.T) {
	svc := NewGeneratorService(crypto.NewGenerator(), "no-such-profile")
	resp := svc.Profiles()
	assert.Equal(t, strength.ProfileTableVersion, resp.Version)
	assert.Equal(t, strength.DefaultProfile, resp.DefaultProfile)
	assert.Len(t, resp.Profiles, 5)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerate_SourceFailure(t *testing.T) {
	svc := NewGeneratorService(crypto.NewGeneratorFromReader(failingReader{}), "")
	_, err := svc.Password(model.PasswordRequest{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidRequest)
}
