package service

import (
	"errors"
	"fmt"

	"github.com/vaultpass/passgen-go/internal/charset"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/strength"
)

// Defaults applied to zero-valued request fields.
const (
	DefaultPasswordLength = 22
	DefaultWordCount      = 4
	DefaultPinLength      = 6
	DefaultCount          = 1
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnknownProfile = errors.New("unknown adversary profile")
)

// GeneratorService turns requests into credentials and strength estimates.
// Generated values are returned to the caller only.
type GeneratorService struct {
	gen            *crypto.Generator
	defaultProfile string
}

// NewGeneratorService creates a GeneratorService drawing from gen. Requests
// without a profile are assessed against defaultProfile.
func NewGeneratorService(gen *crypto.Generator, defaultProfile string) *GeneratorService {
	if _, ok := strength.LookupProfile(defaultProfile); !ok {
		defaultProfile = strength.DefaultProfile
	}
	return &GeneratorService{gen: gen, defaultProfile: defaultProfile}
}

// Password generates one or more passwords from the selected categories.
func (s *GeneratorService) Password(req model.PasswordRequest) (model.PasswordResponse, error) {
	if err := model.Validate(req); err != nil {
		return model.PasswordResponse{}, invalid(err)
	}
	profile, err := s.profile(req.Profile)
	if err != nil {
		return model.PasswordResponse{}, err
	}

	opts := charset.Options{
		Uppercase:      boolOrDefault(req.Uppercase, true),
		Lowercase:      boolOrDefault(req.Lowercase, true),
		Numbers:        boolOrDefault(req.Numbers, true),
		Special:        boolOrDefault(req.Special, true),
		Extended:       boolOrDefault(req.Extended, false),
		Brackets:       boolOrDefault(req.Brackets, false),
		Spaces:         boolOrDefault(req.Spaces, false),
		ExcludeSimilar: boolOrDefault(req.ExcludeSimilar, false),
	}
	length := intOrDefault(req.Length, DefaultPasswordLength)
	alphabet, poolSize := charset.BuildAlphabet(opts)

	passwords, err := crypto.DrawBatch(intOrDefault(req.Count, DefaultCount), func() (string, error) {
		return s.gen.DrawCredential(alphabet, length)
	})
	if err != nil {
		return model.PasswordResponse{}, fmt.Errorf("draw password: %w", err)
	}

	a := strength.AssessPassword(poolSize, length, opts.ActiveCount(), profile)
	return model.PasswordResponse{
		Passwords: passwords,
		Length:    length,
		Strength:  model.NewStrengthResponse(a, poolSize, profile.Name),
	}, nil
}

// Passphrase generates one or more passphrases from a built-in word list.
func (s *GeneratorService) Passphrase(req model.PassphraseRequest) (model.PassphraseResponse, error) {
	if err := model.Validate(req); err != nil {
		return model.PassphraseResponse{}, invalid(err)
	}
	profile, err := s.profile(req.Profile)
	if err != nil {
		return model.PassphraseResponse{}, err
	}

	opts := charset.DefaultWordlistOptions()
	if opts.Language, err = charset.ParseLanguage(req.Language); err != nil {
		return model.PassphraseResponse{}, invalid(err)
	}
	if req.Separator != nil {
		if opts.Separator, err = charset.ParseSeparator(*req.Separator); err != nil {
			return model.PassphraseResponse{}, invalid(err)
		}
	}
	opts.Capitalize = boolOrDefault(req.Capitalize, opts.Capitalize)
	opts.AppendNumbers = boolOrDefault(req.AppendNumbers, false)
	opts.AppendSpecial = boolOrDefault(req.AppendSpecial, false)

	words := intOrDefault(req.Words, DefaultWordCount)
	list, size := charset.ResolveWordlist(opts.Language)

	phrases, err := crypto.DrawBatch(intOrDefault(req.Count, DefaultCount), func() (string, error) {
		return s.gen.DrawPassphrase(list, words, opts)
	})
	if err != nil {
		return model.PassphraseResponse{}, fmt.Errorf("draw passphrase: %w", err)
	}

	a := strength.AssessPassphrase(size, words, opts.AppendNumbers, opts.AppendSpecial, profile)
	return model.PassphraseResponse{
		Passphrases: phrases,
		Words:       words,
		Language:    opts.Language.String(),
		Strength:    model.NewStrengthResponse(a, size, profile.Name),
	}, nil
}

// Pin generates one or more numeric PINs.
func (s *GeneratorService) Pin(req model.PinRequest) (model.PinResponse, error) {
	if err := model.Validate(req); err != nil {
		return model.PinResponse{}, invalid(err)
	}
	profile, err := s.profile(req.Profile)
	if err != nil {
		return model.PinResponse{}, err
	}

	length := intOrDefault(req.Length, DefaultPinLength)
	pins, err := crypto.DrawBatch(intOrDefault(req.Count, DefaultCount), func() (string, error) {
		return s.gen.DrawPin(length)
	})
	if err != nil {
		return model.PinResponse{}, fmt.Errorf("draw pin: %w", err)
	}

	return model.PinResponse{
		Pins:     pins,
		Length:   length,
		Strength: model.NewStrengthResponse(strength.AssessPin(length, profile), 10, profile.Name),
	}, nil
}

// Check analyzes a user-supplied password.
func (s *GeneratorService) Check(req model.CheckRequest) (model.CheckResponse, error) {
	if err := model.Validate(req); err != nil {
		return model.CheckResponse{}, invalid(err)
	}
	profile, err := s.profile(req.Profile)
	if err != nil {
		return model.CheckResponse{}, err
	}
	return model.NewCheckResponse(strength.Analyze(req.Password, profile), profile.Name), nil
}

// Profiles returns the adversary profile table.
func (s *GeneratorService) Profiles() model.ProfilesResponse {
	return model.ProfilesResponse{
		Version:        strength.ProfileTableVersion,
		DefaultProfile: s.defaultProfile,
		Profiles:       strength.Profiles(),
	}
}

func (s *GeneratorService) profile(name string) (strength.Profile, error) {
	if name == "" {
		name = s.defaultProfile
	}
	p, ok := strength.LookupProfile(name)
	if !ok {
		return strength.Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p, nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
