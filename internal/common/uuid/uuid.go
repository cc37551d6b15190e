package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/prizedraw/internal/common/uuid UUID

// UUID hands out opaque identifiers for prizes, draws and notices
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface with random (v4) UUIDs
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random UUID string
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}
