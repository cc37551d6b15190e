package sse

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KirkDiggler/prizedraw/internal/metrics"
	"github.com/KirkDiggler/prizedraw/internal/presenter"
)

// SnapshotFunc returns the current board view for newly connected clients
type SnapshotFunc func(ctx context.Context) (presenter.View, error)

// Handler returns an HTTP handler for SSE connections
func Handler(hub *Hub, snapshot SnapshotFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		// Parse event type filters from query param
		var eventTypes []string
		filterParam := r.URL.Query().Get("types")
		if filterParam != "" {
			eventTypes = strings.Split(filterParam, ",")
		}

		client := hub.Register(eventTypes)
		metrics.SSEClients.Inc()
		slog.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes)

		defer func() {
			hub.Unregister(client.ID)
			metrics.SSEClients.Dec()
			slog.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		write := func(event Event) bool {
			msg, err := FormatSSEMessage(event)
			if err != nil {
				slog.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				slog.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		if !write(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload: map[string]any{
				"client_id": client.ID,
				"filters":   eventTypes,
			},
		}) {
			return
		}

		if snapshot != nil {
			view, err := snapshot(r.Context())
			if err != nil {
				slog.Error(LogMsgSnapshotError, "client_id", client.ID, "error", err)
			} else if !write(Event{
				ID:        uuid.New().String(),
				Type:      EventTypeSnapshot,
				Timestamp: time.Now().Unix(),
				Payload:   BoardPayload{View: view},
			}) {
				return
			}
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// Channel closed, hub is shutting down
					return
				}
				if !write(event) {
					return
				}

			case <-ticker.C:
				if !write(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
