package models

import (
	"time"
)

// EventType identifies a board state change
type EventType string

const (
	EventBoardLoaded     EventType = "board.loaded"
	EventBoardLoadFailed EventType = "board.load_failed"
	EventBoardReset      EventType = "board.reset"

	EventDrawStarted   EventType = "draw.started"
	EventDrawTick      EventType = "draw.tick"
	EventDrawCommitted EventType = "draw.committed"
	EventDrawRevealed  EventType = "draw.revealed"
	EventDrawCelebrate EventType = "draw.celebrate"
	EventDrawSettled   EventType = "draw.settled"

	EventNoticeShown     EventType = "notice.shown"
	EventNoticeDismissed EventType = "notice.dismissed"
	EventModalClosed     EventType = "modal.closed"
)

// Celebration asks renderers for a particle burst. Nothing waits on it.
type Celebration struct {
	PrizeName string `json:"prize_name"`
	Particles int    `json:"particles"`
}

// Event is published after every board mutation
type Event struct {
	Type EventType `json:"type"`
	At   time.Time `json:"at"`

	// DrawID ties the events of one draw together
	DrawID string `json:"draw_id,omitempty"`

	// State is a snapshot taken right after the mutation
	State *BoardState `json:"state"`

	Notice      *Notice      `json:"notice,omitempty"`
	Celebration *Celebration `json:"celebration,omitempty"`
}
