package domain

import "strings"

// PaceProfile maps a named trip pace to its daily scheduling targets.
type PaceProfile struct {
	Name         string
	PlacesPerDay int
	StartHour    int
	EndHour      int
}

var paceProfiles = map[string]PaceProfile{
	"slow":   {Name: "slow", PlacesPerDay: 3, StartHour: 11, EndHour: 16},
	"medium": {Name: "medium", PlacesPerDay: 5, StartHour: 9, EndHour: 18},
	"fast":   {Name: "fast", PlacesPerDay: 8, StartHour: 7, EndHour: 20},
}

var paceAliases = map[string]string{
	"chill":    "slow",
	"balanced": "medium",
	"packed":   "fast",
}

// PaceFor resolves a pace name or alias, case-insensitively.
// Unknown names default to medium.
func PaceFor(name string) PaceProfile {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := paceAliases[key]; ok {
		key = canonical
	}
	if p, ok := paceProfiles[key]; ok {
		return p
	}
	return paceProfiles["medium"]
}
