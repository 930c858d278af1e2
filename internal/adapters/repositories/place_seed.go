package repositories

// PlaceSeed mirrors one entry of the place seed JSON file. Field names keep
// the legacy "cluster" terminology of the upstream place catalog.
type PlaceSeed struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Coordinates       seedCoordinates  `json:"coordinates"`
	Zone              string           `json:"cluster_zone"`
	NearestZone       string           `json:"nearest_cluster"`
	Difficulty        string           `json:"difficulty"`
	AvgVisitMinutes   int              `json:"avg_time_spent_minutes"`
	PopularityRank    int              `json:"popularity_rank"`
	Rating            float64          `json:"rating"`
	ReviewCount       int              `json:"review_count"`
	ItineraryEligible bool             `json:"itinerary_eligible"`
	OpeningPeriods    []seedOpenPeriod `json:"opening_periods"`
}

type seedCoordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// seedOpenPeriod uses the Google Places day convention: 0 = Sunday.
type seedOpenPeriod struct {
	Day   int    `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}
