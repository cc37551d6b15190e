package loader

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/prizedraw/internal/services/loader Service

import (
	"context"
)

// Service turns a prize configuration document into prize records
type Service interface {
	// Load fetches, decodes and validates the document. Every failure is
	// wrapped in ErrLoadFailed.
	Load(ctx context.Context) (*LoadOutput, error)

	// Describe names the configured source
	Describe() string
}
