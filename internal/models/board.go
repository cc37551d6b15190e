package models

import (
	"time"
)

// DrawPhase represents where the board is in the draw cycle
type DrawPhase string

const (
	// DrawPhaseIdle indicates no draw is in progress
	DrawPhaseIdle DrawPhase = "idle"

	// DrawPhaseDrawing indicates the rolling previews are running
	DrawPhaseDrawing DrawPhase = "drawing"

	// DrawPhaseCommitting indicates the winner has been fixed and the result is being revealed
	DrawPhaseCommitting DrawPhase = "committing"
)

// IsIdle returns true when a new draw may start
func (p DrawPhase) IsIdle() bool {
	return p == DrawPhaseIdle || p == ""
}

// Emphasis describes how the current prize should be shown
type Emphasis string

const (
	// EmphasisIdle is the placeholder shown between draws
	EmphasisIdle Emphasis = "idle"

	// EmphasisRolling is a transient preview during the rolling phase
	EmphasisRolling Emphasis = "rolling"

	// EmphasisRevealed is the final result of a draw
	EmphasisRevealed Emphasis = "revealed"
)

// CurrentPrize is what the prize display currently shows
type CurrentPrize struct {
	Name     string   `json:"name"`
	Emphasis Emphasis `json:"emphasis"`
}

// NoticeKind identifies a transient user-facing notice
type NoticeKind string

const (
	// NoticePoolExhausted is shown when a draw is attempted with nothing left
	NoticePoolExhausted NoticeKind = "pool_exhausted"

	// NoticeReset confirms that the pool was reset
	NoticeReset NoticeKind = "reset"

	// NoticeLoadFailed is shown when the prize configuration could not be loaded
	NoticeLoadFailed NoticeKind = "load_failed"
)

// Notice is a toast that dismisses itself after a fixed duration
type Notice struct {
	ID        string     `json:"id"`
	Kind      NoticeKind `json:"kind"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`

	// Fade is how long renderers should take to fade the notice out
	Fade time.Duration `json:"fade"`
}

// Modal is the win acknowledgment shown after a draw
type Modal struct {
	Open      bool   `json:"open"`
	Title     string `json:"title,omitempty"`
	PrizeName string `json:"prize_name,omitempty"`
	Message   string `json:"message,omitempty"`
}

// BoardState is a point-in-time copy of everything the board owns
type BoardState struct {
	// Loaded is true once a prize configuration has been installed
	Loaded bool `json:"loaded"`

	// LoadError holds the last load failure, if any
	LoadError string `json:"load_error,omitempty"`

	// Prizes is the pool in load order
	Prizes []Prize `json:"prizes"`

	// History is the ledger, most recent first
	History []HistoryEntry `json:"history"`

	// Phase is the draw cycle phase
	Phase DrawPhase `json:"phase"`

	// Tick is the number of rolling previews shown so far in the current draw
	Tick int `json:"tick"`

	// TotalTicks is the number of previews a draw rolls through
	TotalTicks int `json:"total_ticks"`

	Current CurrentPrize `json:"current"`
	Modal   Modal        `json:"modal"`
	Notices []Notice     `json:"notices"`
}

// Drawing returns true while a draw is in progress
func (s *BoardState) Drawing() bool {
	return !s.Phase.IsIdle()
}

// Available returns the number of prizes not yet drawn
func (s *BoardState) Available() int {
	count := 0
	for _, p := range s.Prizes {
		if p.IsAvailable() {
			count++
		}
	}
	return count
}

// Drawn returns the number of prizes already drawn
func (s *BoardState) Drawn() int {
	return len(s.Prizes) - s.Available()
}
