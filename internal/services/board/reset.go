package board

import (
	"context"

	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/services/messaging"
)

// fallbackResetPrompt is asked when the messaging service has nothing better
const fallbackResetPrompt = "Reset the prize pool? This clears the whole draw history."

// Reset asks for confirmation and then returns every prize to the pool. The
// confirmation wait happens without the board lock.
func (s *service) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil || input.Confirmer == nil {
		return nil, ErrNilConfirmer
	}

	s.mu.Lock()
	if !s.phase.IsIdle() {
		s.mu.Unlock()
		return nil, ErrDrawInProgress
	}

	drawn := s.pool.DrawnCount()
	history := s.ledger.Len()
	if drawn == 0 && history == 0 {
		s.mu.Unlock()
		return &ResetOutput{Noop: true}, nil
	}
	s.mu.Unlock()

	prompt := fallbackResetPrompt
	output, err := s.messages.GetResetPromptMessage(ctx, &messaging.GetResetPromptMessageInput{
		Drawn:        drawn,
		HistoryCount: history,
	})
	if err != nil {
		s.logger.Warn("Failed to get reset prompt", "error", err)
	} else {
		prompt = output.Message
	}

	confirmed, err := input.Confirmer.Confirm(ctx, prompt)
	if err != nil {
		s.logger.Warn("Reset confirmation failed", "error", err)
		return &ResetOutput{Declined: true}, nil
	}
	if !confirmed {
		s.logger.Debug("Reset declined")
		return &ResetOutput{Declined: true}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A draw may have started while we were waiting for an answer
	if !s.phase.IsIdle() {
		return nil, ErrDrawInProgress
	}

	// Another reset may have finished while we were waiting
	if s.pool.DrawnCount() == 0 && s.ledger.Len() == 0 {
		return &ResetOutput{Noop: true}, nil
	}

	s.pool.ClearDrawn()
	s.ledger.Clear()
	s.resetDisplayLocked()
	s.generation++

	s.logger.Info("Prize pool reset",
		"drawn", drawn,
		"history", history)

	s.publishLocked(models.EventBoardReset, "", nil, nil)
	s.showNoticeLocked(models.NoticeReset, "")

	return &ResetOutput{Reset: true}, nil
}
