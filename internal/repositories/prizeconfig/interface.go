package prizeconfig

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/prizedraw/internal/repositories/prizeconfig Source

import (
	"context"
)

// Source retrieves the raw prize configuration document
type Source interface {
	// Fetch reads the current document
	Fetch(ctx context.Context) (*Payload, error)

	// Describe names where the document comes from, for logs
	Describe() string
}
