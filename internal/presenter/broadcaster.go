package presenter

import (
	"log/slog"
	"sync"

	"github.com/KirkDiggler/prizedraw/internal/models"
)

// Update is one rendered board event
type Update struct {
	Event models.Event
	View  View
}

// Sink receives rendered updates. Deliver is called synchronously from the
// board and must not block.
type Sink interface {
	Deliver(update Update)
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(update Update)

// Deliver calls f
func (f SinkFunc) Deliver(update Update) {
	f(update)
}

// BroadcasterConfig holds configuration for the broadcaster
type BroadcasterConfig struct {
	Logger *slog.Logger
}

// Broadcaster renders each board event once and hands it to every sink
type Broadcaster struct {
	mu     sync.RWMutex
	sinks  []Sink
	logger *slog.Logger
}

// NewBroadcaster creates a broadcaster with no sinks
func NewBroadcaster(cfg *BroadcasterConfig) *Broadcaster {
	logger := slog.Default()
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}
	return &Broadcaster{
		logger: logger.With("component", "broadcaster"),
	}
}

// Register adds a sink
func (b *Broadcaster) Register(sink Sink) {
	if sink == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sinks = append(b.sinks, sink)
}

// Publish renders the event and delivers it to every sink
func (b *Broadcaster) Publish(event models.Event) {
	update := Update{
		Event: event,
		View:  Render(event.State),
	}

	b.mu.RLock()
	sinks := make([]Sink, len(b.sinks))
	copy(sinks, b.sinks)
	b.mu.RUnlock()

	for _, sink := range sinks {
		b.deliver(sink, update)
	}
}

// deliver recovers a panicking sink so the rest still receive the update
func (b *Broadcaster) deliver(sink Sink, update Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Sink panicked", "event", update.Event.Type, "panic", r)
		}
	}()
	sink.Deliver(update)
}

// LogSink writes every update to a logger at debug level
type LogSink struct {
	Logger *slog.Logger
}

// Deliver logs the update
func (l LogSink) Deliver(update Update) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("Board event",
		"type", update.Event.Type,
		"draw_id", update.Event.DrawID,
		"button", update.View.Button.Label,
		"current", update.View.Current.Text,
		"available", update.View.Available,
		"history", len(update.View.History))
}
