package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/prizedraw/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetNoticeMessage returns the text for a transient notice
	GetNoticeMessage(ctx context.Context, input *GetNoticeMessageInput) (*GetNoticeMessageOutput, error)

	// GetWinMessage returns a celebratory line for the win modal
	GetWinMessage(ctx context.Context, input *GetWinMessageInput) (*GetWinMessageOutput, error)

	// GetResetPromptMessage returns the question asked before a reset
	GetResetPromptMessage(ctx context.Context, input *GetResetPromptMessageInput) (*GetResetPromptMessageOutput, error)
}
