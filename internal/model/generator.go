package model

import (
	"math"

	"github.com/vaultpass/passgen-go/internal/strength"
)

// PasswordRequest represents a password generation request.
// Pointer bools distinguish a missing option (nil -> default) from an explicit false.
type PasswordRequest struct {
	Length         int    `json:"length" validate:"omitempty,min=4,max=128"`
	Count          int    `json:"count" validate:"omitempty,min=1,max=10"`
	Uppercase      *bool  `json:"uppercase"`
	Lowercase      *bool  `json:"lowercase"`
	Numbers        *bool  `json:"numbers"`
	Special        *bool  `json:"special"`
	Extended       *bool  `json:"extended"`
	Brackets       *bool  `json:"brackets"`
	Spaces         *bool  `json:"spaces"`
	ExcludeSimilar *bool  `json:"exclude_similar"`
	Profile        string `json:"profile"`
}

// PassphraseRequest represents a passphrase generation request. A nil
// Separator selects the hyphen; an empty one joins the words directly.
type PassphraseRequest struct {
	Words         int     `json:"words" validate:"omitempty,min=3,max=10"`
	Count         int     `json:"count" validate:"omitempty,min=1,max=10"`
	Language      string  `json:"language"`
	Capitalize    *bool   `json:"capitalize"`
	AppendNumbers *bool   `json:"append_numbers"`
	AppendSpecial *bool   `json:"append_special"`
	Separator     *string `json:"separator"`
	Profile       string  `json:"profile"`
}

// PinRequest represents a PIN generation request.
type PinRequest struct {
	Length  int    `json:"length" validate:"omitempty,min=4,max=18"`
	Count   int    `json:"count" validate:"omitempty,min=1,max=10"`
	Profile string `json:"profile"`
}

// StrengthResponse is the strength estimate shared by every generator.
// CrackTimeSeconds is null when the estimate overflows float64.
type StrengthResponse struct {
	Profile          string   `json:"profile"`
	EntropyBits      float64  `json:"entropy_bits"`
	CrackTimeSeconds *float64 `json:"crack_time_seconds"`
	CrackTime        string   `json:"crack_time"`
	Combinations     string   `json:"combinations"`
	PoolSize         int      `json:"pool_size"`
	Tier             string   `json:"tier"`
	Label            string   `json:"label"`
	Color            string   `json:"color"`
	WidthPercent     float64  `json:"width_percent"`
	Special          bool     `json:"special"`
}

// NewStrengthResponse flattens an assessment for the API.
func NewStrengthResponse(a strength.Assessment, poolSize int, profile string) StrengthResponse {
	return StrengthResponse{
		Profile:          profile,
		EntropyBits:      a.EntropyBits,
		CrackTimeSeconds: finite(a.CrackTimeSeconds),
		CrackTime:        a.CrackTime(),
		Combinations:     a.CombinationsText(),
		PoolSize:         poolSize,
		Tier:             a.Tier.String(),
		Label:            a.Label,
		Color:            a.Color,
		WidthPercent:     a.WidthPercent,
		Special:          a.Special,
	}
}

// PasswordResponse represents a password generation response.
type PasswordResponse struct {
	Passwords []string         `json:"passwords"`
	Length    int              `json:"length"`
	Strength  StrengthResponse `json:"strength"`
}

// PassphraseResponse represents a passphrase generation response.
type PassphraseResponse struct {
	Passphrases []string         `json:"passphrases"`
	Words       int              `json:"words"`
	Language    string           `json:"language"`
	Strength    StrengthResponse `json:"strength"`
}

// PinResponse represents a PIN generation response.
type PinResponse struct {
	Pins     []string         `json:"pins"`
	Length   int              `json:"length"`
	Strength StrengthResponse `json:"strength"`
}

// ProfilesResponse lists the adversary profiles.
type ProfilesResponse struct {
	Version        int                `json:"version"`
	DefaultProfile string             `json:"default_profile"`
	Profiles       []strength.Profile `json:"profiles"`
}

// finite returns nil for values encoding/json cannot represent.
func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
