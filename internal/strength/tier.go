package strength

import "math"

// Tier is a strength classification. Higher values are stronger.
type Tier int

const (
	TierCritical Tier = iota
	TierVeryWeak
	TierWeak
	TierModerate
	TierMedium
	TierGood
	TierVeryGood
	TierStrong
	TierVeryStrong
	TierExtremelyStrong
	TierExtreme
	// TierExtremeMax is the strongest ordinary tier: past every threshold but
	// without the breadth of options required for TierUnbeatable.
	TierExtremeMax
	TierUnbeatable
)

func (t Tier) String() string {
	switch t {
	case TierCritical:
		return "critical"
	case TierVeryWeak:
		return "very-weak"
	case TierWeak:
		return "weak"
	case TierModerate:
		return "moderate"
	case TierMedium:
		return "medium"
	case TierGood:
		return "good"
	case TierVeryGood:
		return "very-good"
	case TierStrong:
		return "strong"
	case TierVeryStrong:
		return "very-strong"
	case TierExtremelyStrong:
		return "extremely-strong"
	case TierExtreme:
		return "extreme"
	case TierExtremeMax:
		return "extreme-max"
	case TierUnbeatable:
		return "unbeatable"
	default:
		return "unknown"
	}
}

// Level is a tier together with how it is displayed.
type Level struct {
	Tier         Tier    `json:"tier"`
	Label        string  `json:"label"`
	Color        string  `json:"color"`
	WidthPercent float64 `json:"width_percent"`
	// Special marks the terminal tier, which is rendered animated.
	Special bool `json:"special"`
}

// Requirements for TierUnbeatable on top of clearing every threshold.
const (
	unbeatableMinLength  = 64
	unbeatableMinOptions = 7
	unbeatableMinEntropy = 200
)

type threshold struct {
	entropy float64
	years   float64
	level   Level
}

// ladder is checked weakest first; a credential lands in the first step
// where either its entropy or its crack time falls short.
var ladder = []threshold{
	{25, 1e-6, Level{Tier: TierCritical, Label: "Kritisch", Color: "strength-1", WidthPercent: 4}},
	{35, 1e-4, Level{Tier: TierVeryWeak, Label: "Sehr Schwach", Color: "strength-1", WidthPercent: 8}},
	{45, 1e-2, Level{Tier: TierWeak, Label: "Schwach", Color: "strength-2", WidthPercent: 14}},
	{55, 1, Level{Tier: TierModerate, Label: "Mäßig", Color: "strength-3", WidthPercent: 22}},
	{65, 100, Level{Tier: TierMedium, Label: "Mittel", Color: "strength-4", WidthPercent: 30}},
	{75, 1e4, Level{Tier: TierGood, Label: "Gut", Color: "strength-5", WidthPercent: 38}},
	{85, 1e6, Level{Tier: TierVeryGood, Label: "Sehr Gut", Color: "strength-6", WidthPercent: 48}},
	{100, 1e9, Level{Tier: TierStrong, Label: "Stark", Color: "strength-7", WidthPercent: 58}},
	{120, 1e12, Level{Tier: TierVeryStrong, Label: "Sehr Stark", Color: "strength-8", WidthPercent: 68}},
	{150, 1e15, Level{Tier: TierExtremelyStrong, Label: "Extrem Stark", Color: "strength-9", WidthPercent: 78}},
	{200, 1e18, Level{Tier: TierExtreme, Label: "Extrem", Color: "strength-10", WidthPercent: 88}},
}

var (
	extremeMaxLevel = Level{Tier: TierExtremeMax, Label: "Extrem", Color: "strength-11", WidthPercent: 92}
	unbeatableLevel = Level{Tier: TierUnbeatable, Label: "🛡️ Unschlagbar", Color: "strength-12", WidthPercent: 100, Special: true}
)

// Classify maps entropy and crack time onto a strength level. length and
// activeOptions only matter at the very top of the scale.
func Classify(entropyBits, crackYears float64, length, activeOptions int) Level {
	last := len(ladder) - 1
	for i, step := range ladder {
		weak := entropyBits < step.entropy || crackYears < step.years
		if i == last {
			weak = weak || length < unbeatableMinLength
		}
		if weak || math.IsNaN(entropyBits) || math.IsNaN(crackYears) {
			return step.level
		}
	}

	if length >= unbeatableMinLength && activeOptions >= unbeatableMinOptions && entropyBits >= unbeatableMinEntropy {
		return unbeatableLevel
	}
	return extremeMaxLevel
}

var pinLadder = []struct {
	maxLength int
	level     Level
}{
	{4, Level{Tier: TierVeryWeak, Label: "Sehr Schwach", Color: "strength-1", WidthPercent: 10}},
	{6, Level{Tier: TierWeak, Label: "Schwach", Color: "strength-2", WidthPercent: 20}},
	{8, Level{Tier: TierModerate, Label: "Mäßig", Color: "strength-3", WidthPercent: 35}},
	{10, Level{Tier: TierMedium, Label: "Mittel", Color: "strength-4", WidthPercent: 50}},
	{14, Level{Tier: TierGood, Label: "Gut", Color: "strength-5", WidthPercent: 65}},
}

var pinStrongLevel = Level{Tier: TierStrong, Label: "Stark", Color: "strength-6", WidthPercent: 80}

// ClassifyPin rates a PIN purely by its number of digits.
func ClassifyPin(length int) Level {
	for _, step := range pinLadder {
		if length <= step.maxLength {
			return step.level
		}
	}
	return pinStrongLevel
}
