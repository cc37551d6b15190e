package models

// Prize is a single entry in the prize pool
type Prize struct {
	// ID is the opaque identifier assigned when the pool was loaded
	ID string `json:"id"`

	// Name is the display name of the prize
	Name string `json:"name"`

	// Drawn is set once the prize has been committed by a draw and
	// stays set until the pool is reset
	Drawn bool `json:"drawn"`
}

// IsAvailable reports whether the prize can still be drawn
func (p Prize) IsAvailable() bool {
	return !p.Drawn
}
