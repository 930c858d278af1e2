package domain

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lng float64
}

// IsZero reports whether the coordinates carry no location data.
// Place records missing coordinates store the zero value.
func (c Coordinates) IsZero() bool { return c.Lat == 0 && c.Lng == 0 }
