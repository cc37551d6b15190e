package board

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/services/messaging"
)

// Draw starts a draw. The winner is chosen here, before any preview is
// shown, and the rest of the animation runs on the scheduler.
func (s *service) Draw(ctx context.Context) (*DrawOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.phase.IsIdle() {
		output := &DrawOutput{Ignored: true}
		if s.draw != nil {
			output.DrawID = s.draw.id
		}
		return output, nil
	}

	available := s.pool.Available()
	if len(available) == 0 {
		s.showNoticeLocked(models.NoticePoolExhausted, "")
		return &DrawOutput{Exhausted: true}, nil
	}

	d := &activeDraw{
		id:         s.uuid.NewUUID(),
		generation: s.generation,
		winner:     available[s.picker.Intn(len(available))],
		candidates: available,
		done:       make(chan struct{}),
	}
	s.draw = d
	s.phase = models.DrawPhaseDrawing
	s.tick = 0
	s.modal = models.Modal{}

	s.logger.Debug("Draw started",
		"draw_id", d.id,
		"available", len(available))

	s.publishLocked(models.EventDrawStarted, d.id, nil, nil)

	// The callback blocks on mu until this method returns, so ticker is
	// always set before the first tick reads it
	d.ticker = s.scheduler.Every(s.timing.TickInterval, func() {
		s.onTick(d)
	})

	return &DrawOutput{
		Started: true,
		DrawID:  d.id,
		Done:    d.done,
	}, nil
}

func (s *service) onTick(d *activeDraw) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draw != d || s.phase != models.DrawPhaseDrawing {
		return
	}

	s.tick++
	preview := d.candidates[s.picker.Intn(len(d.candidates))]
	s.current = models.CurrentPrize{
		Name:     preview.Name,
		Emphasis: models.EmphasisRolling,
	}
	s.publishLocked(models.EventDrawTick, d.id, nil, nil)

	if s.tick >= s.timing.TickCount {
		d.ticker.Stop()
		s.commitLocked(d)
	}
}

func (s *service) commitLocked(d *activeDraw) {
	s.phase = models.DrawPhaseCommitting

	if err := s.pool.MarkDrawn(d.winner.ID); err != nil {
		s.logger.Error("Failed to commit draw",
			"draw_id", d.id,
			"prize_id", d.winner.ID,
			"error", err)
		s.settleLocked(d)
		return
	}

	entry := s.ledger.Append(d.winner, s.clock.Now())

	s.logger.Info("Prize drawn",
		"draw_id", d.id,
		"prize", d.winner.Name,
		"sequence", entry.Sequence,
		"remaining", s.pool.AvailableCount())

	s.publishLocked(models.EventDrawCommitted, d.id, nil, nil)

	s.scheduler.After(s.timing.RevealDelay, func() {
		s.onReveal(d)
	})
}

func (s *service) onReveal(d *activeDraw) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draw != d {
		return
	}

	s.current = models.CurrentPrize{
		Name:     d.winner.Name,
		Emphasis: models.EmphasisRevealed,
	}
	s.publishLocked(models.EventDrawRevealed, d.id, nil, nil)

	// Celebration and settle run off the reveal independently of each other
	s.scheduler.After(s.timing.CelebrationDelay, func() {
		s.onCelebrate(d)
	})
	s.scheduler.After(s.timing.SettleDelay, func() {
		s.onSettle(d)
	})
}

func (s *service) onCelebrate(d *activeDraw) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// a newer draw owns the modal now
	if s.generation != d.generation || (s.draw != nil && s.draw != d) {
		return
	}

	s.modal = models.Modal{
		Open:      true,
		Title:     "🎉 Congratulations!",
		PrizeName: d.winner.Name,
		Message:   fmt.Sprintf("You won %s!", d.winner.Name),
	}
	output, err := s.messages.GetWinMessage(context.Background(), &messaging.GetWinMessageInput{
		PrizeName: d.winner.Name,
		Remaining: s.pool.AvailableCount(),
		Tone:      s.winTone,
	})
	if err != nil {
		s.logger.Warn("Failed to get win message", "draw_id", d.id, "error", err)
	} else {
		s.modal.Title = output.Title
		s.modal.Message = output.Message
		s.logger.Debug("Win modal opened", "draw_id", d.id, "tone", output.Tone)
	}
	s.publishLocked(models.EventDrawCelebrate, d.id, nil, &models.Celebration{
		PrizeName: d.winner.Name,
		Particles: s.timing.Particles,
	})
}

func (s *service) onSettle(d *activeDraw) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draw != d {
		return
	}
	s.settleLocked(d)
}

func (s *service) settleLocked(d *activeDraw) {
	s.phase = models.DrawPhaseIdle
	s.tick = 0
	s.draw = nil
	close(d.done)

	s.publishLocked(models.EventDrawSettled, d.id, nil, nil)
}
