package domain

// Warning and removal reasons attached during time-budget simulation.
const (
	// WarningLateSchedule marks a user-forced stop kept past the target end time.
	WarningLateSchedule = "late_schedule"

	// RemovedExceededEndTime is the reason recorded for stops dropped by the
	// overflow policy.
	RemovedExceededEndTime = "exceeded_end_time"
)

// ScheduledStop is a place denormalized into a single day's schedule.
// It is mutated in place during simulation and never shared across days.
type ScheduledStop struct {
	PlaceID             string
	Name                string
	Zone                string
	Difficulty          Difficulty
	Rating              float64
	ReviewCount         int
	AvgVisitMinutes     int
	TravelToNextMinutes int
	ScheduledTime       string
	DepartureTime       string
	HasLunchBefore      bool
	Warning             string
	WarningMessage      string
	IsCircuit           bool
}

// Day is one leg of the built itinerary. Days are created fresh per build
// and renumbered to stay contiguous after splits, merges and removals.
type Day struct {
	Number            int
	Zone              string
	Stops             []*ScheduledStop
	TotalDriveMinutes int
	StartTime         string
	EndTime           string
	TargetEndTime     string
	IsSplit           bool

	// Hotel transfer fields, populated only when a hotel location is supplied.
	HotelToFirstMinutes *int
	LastToHotelMinutes  *int
	HotelDepartureTime  string
	HotelName           string
}

// RemovedPlace records a stop dropped by the overflow policy. Retained for
// reporting only; it never re-enters scheduling.
type RemovedPlace struct {
	ID              string
	Name            string
	Zone            string
	Reason          string
	ReasonText      string
	AvgVisitMinutes int
}

// Suggestion is an unselected, same-zone place surfaced as an optional
// addition. Purely advisory.
type Suggestion struct {
	ID              string
	Name            string
	Zone            string
	Rating          float64
	ReviewCount     int
	AvgVisitMinutes int
	Difficulty      Difficulty
}

// Itinerary is the output of a single build: the planning result plus the
// reporting side channels. It contains no side effects.
type Itinerary struct {
	Days          []*Day
	StartHour     int
	EndHour       int
	Suggestions   []Suggestion
	RemovedPlaces []RemovedPlace
}
