package strength

import "math"

// ProfileTableVersion changes whenever a rate in the profile table changes,
// so stored or compared estimates can tell which table produced them.
const ProfileTableVersion = 1

// Profile names.
const (
	ProfileOnline        = "online"
	ProfileOfflineFast   = "offline-fast"
	ProfileGPU           = "gpu"
	ProfileSupercomputer = "supercomputer"
	ProfileQuantum       = "quantum"
)

// DefaultProfile is used for tier classification unless a caller picks
// another one.
const DefaultProfile = ProfileGPU

// Profile describes an attacker by guess rate. A quantum profile searches
// the square root of the space (Grover), halving effective entropy.
type Profile struct {
	Name             string  `json:"name"`
	Label            string  `json:"label"`
	Description      string  `json:"description"`
	GuessesPerSecond float64 `json:"guesses_per_second"`
	Quantum          bool    `json:"quantum"`
}

var profiles = []Profile{
	{
		Name:             ProfileOnline,
		Label:            "Online-Angriff (gedrosselt)",
		Description:      "Webseiten mit Rate-Limiting",
		GuessesPerSecond: 1e3,
	},
	{
		Name:             ProfileOfflineFast,
		Label:            "Offline-Angriff (schneller Hash)",
		Description:      "MD5/SHA1 Hash auf normalem PC",
		GuessesPerSecond: 1e10,
	},
	{
		Name:             ProfileGPU,
		Label:            "GPU-Cluster (Standard)",
		Description:      "Professioneller Angriff, bcrypt/scrypt",
		GuessesPerSecond: 1e14,
	},
	{
		Name:             ProfileSupercomputer,
		Label:            "Supercomputer / Zukunft",
		Description:      "Staatliche Ressourcen, ~2030",
		GuessesPerSecond: 1e15,
	},
	{
		Name:             ProfileQuantum,
		Label:            "Quantencomputer (theoretisch)",
		Description:      "Grover's Algorithmus halbiert effektive Entropie",
		GuessesPerSecond: 1e15,
		Quantum:          true,
	},
}

// Profiles returns a copy of the profile table, slowest attacker first.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// LookupProfile finds a profile by name. An empty name returns the default.
func LookupProfile(name string) (Profile, bool) {
	if name == "" {
		name = DefaultProfile
	}
	for _, p := range profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// MustProfile is LookupProfile for names known at compile time.
func MustProfile(name string) Profile {
	p, ok := LookupProfile(name)
	if !ok {
		panic("strength: unknown profile " + name)
	}
	return p
}

// CrackTimeSeconds returns the average time this attacker needs to search
// combinations candidates.
func (p Profile) CrackTimeSeconds(combinations float64) float64 {
	if p.Quantum {
		combinations = math.Sqrt(combinations)
	}
	return CrackTimeSeconds(combinations, p.GuessesPerSecond)
}
