package board

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/prizedraw/internal/common/clock"
	"github.com/KirkDiggler/prizedraw/internal/common/uuid"
	"github.com/KirkDiggler/prizedraw/internal/picker"
	"github.com/KirkDiggler/prizedraw/internal/services/loader"
	"github.com/KirkDiggler/prizedraw/internal/services/messaging"
)

// Timing holds the draw animation and notice durations. Zero fields take
// the defaults.
type Timing struct {
	// Number of rolling previews before the winner is committed
	TickCount int

	// Time between rolling previews
	TickInterval time.Duration

	// Time between the commit and the reveal
	RevealDelay time.Duration

	// Time from the reveal until the win modal opens
	CelebrationDelay time.Duration

	// Time from the reveal until a new draw may start
	SettleDelay time.Duration

	// How long notices stay up
	NoticeDuration time.Duration

	// Fade-out hint passed to renderers
	NoticeFade time.Duration

	// Size of the celebration burst
	Particles int
}

// DefaultTiming returns the standard draw timing
func DefaultTiming() Timing {
	return Timing{
		TickCount:        15,
		TickInterval:     80 * time.Millisecond,
		RevealDelay:      200 * time.Millisecond,
		CelebrationDelay: 300 * time.Millisecond,
		SettleDelay:      800 * time.Millisecond,
		NoticeDuration:   2 * time.Second,
		NoticeFade:       300 * time.Millisecond,
		Particles:        100,
	}
}

func (t Timing) withDefaults() Timing {
	d := DefaultTiming()
	if t.TickCount <= 0 {
		t.TickCount = d.TickCount
	}
	if t.TickInterval <= 0 {
		t.TickInterval = d.TickInterval
	}
	if t.RevealDelay <= 0 {
		t.RevealDelay = d.RevealDelay
	}
	if t.CelebrationDelay <= 0 {
		t.CelebrationDelay = d.CelebrationDelay
	}
	if t.SettleDelay <= 0 {
		t.SettleDelay = d.SettleDelay
	}
	if t.NoticeDuration <= 0 {
		t.NoticeDuration = d.NoticeDuration
	}
	if t.NoticeFade <= 0 {
		t.NoticeFade = d.NoticeFade
	}
	if t.Particles <= 0 {
		t.Particles = d.Particles
	}
	return t
}

// Config holds configuration for the board service
type Config struct {
	// Loader builds prize records from the configuration source
	Loader loader.Service

	// Messages supplies notice and modal copy
	Messages messaging.Service

	// Picker chooses winners and rolling previews
	Picker picker.Picker

	// Clock timestamps history entries and notices
	Clock clock.Clock

	// Scheduler drives the draw animation and notice dismissal
	Scheduler clock.Scheduler

	// UUID generator for draw and notice ids
	UUID uuid.UUID

	// Publisher receives every board event
	Publisher Publisher

	Timing Timing

	// TimeLayout formats history timestamps; defaults to 15:04:05
	TimeLayout string

	// WinTone picks the flavour of the win modal copy; empty means celebration
	WinTone messaging.MessageTone

	Logger *slog.Logger
}

// LoadOutput describes the installed pool
type LoadOutput struct {
	// Count is the number of prizes loaded
	Count int

	// Origin is where the configuration was read from
	Origin string
}

// DrawOutput reports what a draw request did
type DrawOutput struct {
	// Started is true when a new draw began
	Started bool

	// Ignored is true when a draw was already running
	Ignored bool

	// Exhausted is true when there was nothing left to draw
	Exhausted bool

	// DrawID identifies the started or running draw
	DrawID string

	// Done is closed when the started draw settles. Nil unless Started.
	Done <-chan struct{}
}

// ResetInput contains parameters for a reset
type ResetInput struct {
	// Confirmer is asked before anything is cleared
	Confirmer Confirmer
}

// ResetOutput reports what a reset request did
type ResetOutput struct {
	// Noop is true when there was nothing to reset; no prompt was shown
	Noop bool

	// Declined is true when the confirmation was refused or failed
	Declined bool

	// Reset is true when the pool and history were cleared
	Reset bool
}

// CloseModalOutput reports whether a modal was closed
type CloseModalOutput struct {
	Closed bool
}
