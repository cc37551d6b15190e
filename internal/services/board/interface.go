package board

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/prizedraw/internal/services/board Service,Confirmer,Publisher

import (
	"context"

	"github.com/KirkDiggler/prizedraw/internal/models"
)

// Service owns the prize board
type Service interface {
	// Load installs the prize configuration at startup
	Load(ctx context.Context) (*LoadOutput, error)

	// Reload replaces the pool with a fresh copy of the configuration
	Reload(ctx context.Context) (*LoadOutput, error)

	// Draw starts a draw. It returns as soon as the winner is fixed; the
	// animation continues on the scheduler.
	Draw(ctx context.Context) (*DrawOutput, error)

	// Reset asks for confirmation and then returns every prize to the pool
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)

	// CloseModal dismisses the win modal
	CloseModal(ctx context.Context) (*CloseModalOutput, error)

	// GetState returns a snapshot of the board
	GetState(ctx context.Context) (*models.BoardState, error)
}

// Confirmer asks a person whether to go ahead with a reset. It may block
// until they answer or ctx is done.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm calls f
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Publisher receives every board event. Publish is called with the board
// lock held and must not block or call back into the board.
type Publisher interface {
	Publish(event models.Event)
}
