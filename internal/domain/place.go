package domain

// Difficulty is the physical-effort level of a place visit.
// Levels are ordered: Easy < Moderate < Hard.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyModerate Difficulty = "Moderate"
	DifficultyHard     Difficulty = "Hard"
)

// OpeningPeriod is one weekly opening interval.
// Day follows the Google Places convention: 0 = Sunday through 6 = Saturday.
type OpeningPeriod struct {
	Day   int    `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Place is an immutable point of interest read from the place store.
// The engine never writes places; it only denormalizes them into schedules.
type Place struct {
	ID                string
	Name              string
	Coords            Coordinates
	Zone              string
	NearestZone       string
	Difficulty        Difficulty
	AvgVisitMinutes   int
	PopularityRank    int
	Rating            float64
	ReviewCount       int
	ItineraryEligible bool
	OpeningPeriods    []OpeningPeriod
}

// OpenOn reports whether the place has any opening period on the given
// weekday (0 = Sunday). Places without opening data count as always open.
func (p *Place) OpenOn(weekday int) bool {
	if len(p.OpeningPeriods) == 0 {
		return true
	}
	for _, op := range p.OpeningPeriods {
		if op.Day == weekday {
			return true
		}
	}
	return false
}
