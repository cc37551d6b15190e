package models

import (
	"time"
)

// HistoryEntry records one committed draw
type HistoryEntry struct {
	// Sequence is the 1-based draw number within the current pool lifetime
	Sequence int `json:"sequence"`

	// PrizeID is the ID of the prize that was drawn
	PrizeID string `json:"prize_id"`

	// PrizeName is the name of the prize, copied at draw time
	PrizeName string `json:"prize_name"`

	// DrawnAt is when the draw was committed
	DrawnAt time.Time `json:"drawn_at"`

	// Time is DrawnAt formatted for display
	Time string `json:"time"`
}
