package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/picker"
)

// Notice texts are fixed so renderers and tests can rely on them
const (
	PoolExhaustedMessage = "🎁 The prize pool is empty! Reset it to keep drawing"
	ResetMessage         = "✨ The prize pool has been reset"
	LoadFailedMessage    = "Failed to load the prize configuration, check that the prize file exists"
)

// service implements the Service interface
type service struct {
	// Picker for selecting random messages
	picker picker.Picker
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var p picker.Picker
	if config != nil {
		p = config.Picker
	}
	if p == nil {
		p = picker.New(nil)
	}

	return &service{
		picker: p,
	}, nil
}

// GetNoticeMessage returns the text for a transient notice
func (s *service) GetNoticeMessage(ctx context.Context, input *GetNoticeMessageInput) (*GetNoticeMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch input.Kind {
	case models.NoticePoolExhausted:
		message = PoolExhaustedMessage
	case models.NoticeReset:
		message = ResetMessage
	case models.NoticeLoadFailed:
		message = LoadFailedMessage
		if input.Detail != "" {
			message = fmt.Sprintf("%s (%s)", LoadFailedMessage, input.Detail)
		}
	default:
		return nil, fmt.Errorf("unknown notice kind %q", input.Kind)
	}

	return &GetNoticeMessageOutput{
		Message: message,
	}, nil
}

// GetWinMessage returns a celebratory line for the win modal
func (s *service) GetWinMessage(ctx context.Context, input *GetWinMessageInput) (*GetWinMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	// Set default tone if not specified
	tone := input.Tone
	if tone == "" {
		tone = ToneCelebration
	}

	title := "🎉 Congratulations!"
	var messages []string
	switch tone {
	case ToneNeutral:
		title = "Prize drawn"
		messages = []string{
			fmt.Sprintf("You won %s.", input.PrizeName),
			fmt.Sprintf("Prize drawn: %s.", input.PrizeName),
		}
	case ToneFunny:
		title = "🎲 Winner, winner!"
		messages = []string{
			fmt.Sprintf("%s is yours! Try to look surprised.", input.PrizeName),
			fmt.Sprintf("The hat has spoken: %s. No refunds.", input.PrizeName),
			fmt.Sprintf("Against all odds (well, fair odds) you got %s!", input.PrizeName),
			fmt.Sprintf("%s! Somebody call your mom.", input.PrizeName),
		}
	default:
		messages = []string{
			fmt.Sprintf("Congratulations! You won %s! 🎉", input.PrizeName),
			fmt.Sprintf("🎊 %s is yours! 🎊", input.PrizeName),
			fmt.Sprintf("What a draw! %s goes home with you!", input.PrizeName),
			fmt.Sprintf("Lucky you! %s, straight out of the pool!", input.PrizeName),
		}
	}

	// Select a random message
	selectedMessage := messages[s.picker.Intn(len(messages))]

	if input.Remaining == 0 {
		selectedMessage += " That was the last prize!"
	}

	return &GetWinMessageOutput{
		Title:   title,
		Message: selectedMessage,
		Tone:    tone,
	}, nil
}

// GetResetPromptMessage returns the question asked before a reset
func (s *service) GetResetPromptMessage(ctx context.Context, input *GetResetPromptMessageInput) (*GetResetPromptMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	message := "Reset the prize pool? This clears the whole draw history."
	if input.HistoryCount > 0 {
		noun := "draws"
		if input.HistoryCount == 1 {
			noun = "draw"
		}
		message = fmt.Sprintf("Reset the prize pool? This clears %d recorded %s.", input.HistoryCount, noun)
	}

	return &GetResetPromptMessageOutput{
		Message: message,
	}, nil
}
