package messaging

import (
	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/picker"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// IsValid reports whether t is a known tone. The empty tone is valid and
// means the default.
func (t MessageTone) IsValid() bool {
	switch t {
	case "", ToneNeutral, ToneFunny, ToneCelebration:
		return true
	}
	return false
}

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Optional picker used to vary messages; defaults to crypto randomness
	Picker picker.Picker
}

// GetNoticeMessageInput contains parameters for a notice message
type GetNoticeMessageInput struct {
	Kind models.NoticeKind

	// Detail is appended to load failure notices
	Detail string
}

// GetNoticeMessageOutput contains the notice text
type GetNoticeMessageOutput struct {
	Message string
}

// GetWinMessageInput contains parameters for a win message
type GetWinMessageInput struct {
	// PrizeName is the prize that was won
	PrizeName string

	// Remaining is how many prizes are still in the pool
	Remaining int

	// Tone is the preferred tone (optional)
	Tone MessageTone
}

// GetWinMessageOutput contains the modal copy
type GetWinMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetResetPromptMessageInput describes what a reset would throw away
type GetResetPromptMessageInput struct {
	Drawn        int
	HistoryCount int
}

// GetResetPromptMessageOutput contains the confirmation question
type GetResetPromptMessageOutput struct {
	Message string
}
