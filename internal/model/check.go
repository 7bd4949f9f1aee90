package model

import "github.com/vaultpass/passgen-go/internal/strength"

// CheckRequest carries a user-supplied password to analyze. The value is
// never logged or returned.
type CheckRequest struct {
	Password string `json:"password" validate:"max=128"`
	Profile  string `json:"profile"`
}

// LevelResponse is a strength tier as displayed.
type LevelResponse struct {
	Tier         string  `json:"tier"`
	Label        string  `json:"label"`
	Color        string  `json:"color"`
	WidthPercent float64 `json:"width_percent"`
	Special      bool    `json:"special"`
}

// ScenarioResponse is the crack time under one adversary profile.
type ScenarioResponse struct {
	Profile          string   `json:"profile"`
	Label            string   `json:"label"`
	CrackTimeSeconds *float64 `json:"crack_time_seconds"`
	CrackTime        string   `json:"crack_time"`
}

// CheckResponse describes an analyzed password without echoing it.
type CheckResponse struct {
	Empty       bool               `json:"empty"`
	Length      int                `json:"length"`
	UniqueChars int                `json:"unique_chars"`
	HasUpper    bool               `json:"has_upper"`
	HasLower    bool               `json:"has_lower"`
	HasDigit    bool               `json:"has_digit"`
	HasSpecial  bool               `json:"has_special"`
	PoolSize    int                `json:"pool_size"`
	EntropyBits float64            `json:"entropy_bits"`
	Score       int                `json:"score"`
	Profile     string             `json:"profile"`
	Level       *LevelResponse     `json:"level,omitempty"`
	Scenarios   []ScenarioResponse `json:"scenarios"`
}

// NewCheckResponse converts an analysis made under profile.
func NewCheckResponse(a strength.Analysis, profile string) CheckResponse {
	resp := CheckResponse{
		Empty:       a.Empty,
		Length:      a.Length,
		UniqueChars: a.UniqueChars,
		HasUpper:    a.HasUpper,
		HasLower:    a.HasLower,
		HasDigit:    a.HasDigit,
		HasSpecial:  a.HasSpecial,
		PoolSize:    a.PoolSize,
		EntropyBits: a.EntropyBits,
		Score:       a.Score,
		Profile:     profile,
		Scenarios:   make([]ScenarioResponse, 0, len(a.Scenarios)),
	}
	if a.Level != nil {
		resp.Level = &LevelResponse{
			Tier:         a.Level.Tier.String(),
			Label:        a.Level.Label,
			Color:        a.Level.Color,
			WidthPercent: a.Level.WidthPercent,
			Special:      a.Level.Special,
		}
	}
	for _, s := range a.Scenarios {
		resp.Scenarios = append(resp.Scenarios, ScenarioResponse{
			Profile:          s.Profile.Name,
			Label:            s.Profile.Label,
			CrackTimeSeconds: finite(s.CrackTimeSeconds),
			CrackTime:        s.CrackTime,
		})
	}
	return resp
}
