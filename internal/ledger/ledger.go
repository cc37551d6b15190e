package ledger

import (
	"time"

	"github.com/KirkDiggler/prizedraw/internal/models"
)

// DefaultTimeLayout renders draw times as wall-clock hours, minutes and seconds
const DefaultTimeLayout = "15:04:05"

// Ledger is the append-only record of committed draws, newest first.
// It is not safe for concurrent use; the board serializes access.
type Ledger struct {
	layout  string
	counter int
	entries []models.HistoryEntry
}

// New creates an empty ledger that formats times with layout
func New(layout string) *Ledger {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return &Ledger{layout: layout}
}

// Append records a draw of prize at the given time and returns the new entry
func (l *Ledger) Append(prize models.Prize, at time.Time) models.HistoryEntry {
	l.counter++
	entry := models.HistoryEntry{
		Sequence:  l.counter,
		PrizeID:   prize.ID,
		PrizeName: prize.Name,
		DrawnAt:   at,
		Time:      at.Format(l.layout),
	}
	l.entries = append([]models.HistoryEntry{entry}, l.entries...)
	return entry
}

// Entries returns a copy of the history, most recent first
func (l *Ledger) Entries() []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Count returns the sequence number of the latest entry
func (l *Ledger) Count() int {
	return l.counter
}

// Len returns the number of entries
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Clear empties the history and restarts numbering
func (l *Ledger) Clear() {
	l.entries = nil
	l.counter = 0
}
