package metrics

import (
	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/presenter"
)

// Sink records board events as metrics
type Sink struct{}

// Deliver counts the event and refreshes the pool gauges
func (Sink) Deliver(update presenter.Update) {
	BoardEvents.WithLabelValues(string(update.Event.Type)).Inc()

	switch update.Event.Type {
	case models.EventBoardLoaded:
		Loads.WithLabelValues(OutcomeSuccess).Inc()
	case models.EventBoardLoadFailed:
		Loads.WithLabelValues(OutcomeFailure).Inc()
	}

	PrizesAvailable.Set(float64(update.View.Available))
	PrizesTotal.Set(float64(update.View.Total))
}

// RecordDraw counts a draw request by outcome
func RecordDraw(outcome string) {
	DrawRequests.WithLabelValues(outcome).Inc()
}

// RecordReset counts a reset request by outcome
func RecordReset(outcome string) {
	ResetRequests.WithLabelValues(outcome).Inc()
}
