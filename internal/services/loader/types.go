package loader

import (
	"github.com/KirkDiggler/prizedraw/internal/common/uuid"
	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/repositories/prizeconfig"
)

// MaxNameLength is the longest prize name accepted, in characters
const MaxNameLength = 200

// Config holds configuration for the loader service
type Config struct {
	// Source of the prize document
	Source prizeconfig.Source

	// UUID generator for prize ids
	UUID uuid.UUID
}

// LoadOutput contains a freshly built prize list
type LoadOutput struct {
	// Prizes in document order, none drawn
	Prizes []models.Prize

	// Origin is where the document was read from
	Origin string
}

// document is the shape of the prize configuration
type document struct {
	Prizes []string `json:"prizes" yaml:"prizes" validate:"required,dive,required,max=200"`
}
