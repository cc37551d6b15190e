package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/KirkDiggler/prizedraw/internal/logger"
	"github.com/KirkDiggler/prizedraw/internal/metrics"
	"github.com/KirkDiggler/prizedraw/internal/services/board"
)

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	view, err := s.snapshot(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get board", "error", err)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// handleDraw starts a draw. With ?wait=true the response is held until the
// draw settles so it carries the final board.
func (s *Server) handleDraw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	wait := false
	if raw := r.URL.Query().Get("wait"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:  ErrMsgInvalidRequest,
				Fields: map[string]string{"wait": "Must be true or false"},
			})
			return
		}
		wait = parsed
	}

	output, err := s.board.Draw(ctx)
	if err != nil {
		log.Error("Draw failed", "error", err)
		metrics.RecordDraw(metrics.OutcomeError)
		respondServiceError(w, err)
		return
	}

	switch {
	case output.Started:
		metrics.RecordDraw(metrics.OutcomeStarted)
	case output.Ignored:
		metrics.RecordDraw(metrics.OutcomeIgnored)
	case output.Exhausted:
		metrics.RecordDraw(metrics.OutcomeExhausted)
	}

	if wait && output.Started {
		waitCtx, cancel := context.WithTimeout(ctx, s.drawWaitTimeout)
		select {
		case <-output.Done:
		case <-waitCtx.Done():
			log.Warn("Stopped waiting for draw", "draw_id", output.DrawID, "error", waitCtx.Err())
		}
		cancel()
	}

	view, err := s.snapshot(ctx)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, DrawResponse{
		Started:   output.Started,
		Ignored:   output.Ignored,
		Exhausted: output.Exhausted,
		DrawID:    output.DrawID,
		View:      view,
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req ResetRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}
	if err := s.validator.ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  ErrMsgInvalidRequest,
			Fields: FormatValidationError(err),
		})
		return
	}

	confirmed := *req.Confirmed
	output, err := s.board.Reset(ctx, &board.ResetInput{
		Confirmer: board.ConfirmFunc(func(ctx context.Context, prompt string) (bool, error) {
			log.Debug("Reset prompt answered by client", "prompt", prompt, "confirmed", confirmed)
			return confirmed, nil
		}),
	})
	if err != nil {
		log.Error("Reset failed", "error", err)
		metrics.RecordReset(metrics.OutcomeError)
		respondServiceError(w, err)
		return
	}

	switch {
	case output.Noop:
		metrics.RecordReset(metrics.OutcomeNoop)
	case output.Declined:
		metrics.RecordReset(metrics.OutcomeDeclined)
	case output.Reset:
		metrics.RecordReset(metrics.OutcomeReset)
	}

	view, err := s.snapshot(ctx)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ResetResponse{
		Noop:     output.Noop,
		Declined: output.Declined,
		Reset:    output.Reset,
		View:     view,
	})
}

func (s *Server) handleCloseModal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	output, err := s.board.CloseModal(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Close modal failed", "error", err)
		respondServiceError(w, err)
		return
	}

	view, err := s.snapshot(ctx)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ModalResponse{
		Closed: output.Closed,
		View:   view,
	})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	start := time.Now()
	output, err := s.board.Reload(ctx)
	if err != nil {
		log.Error("Reload failed", "error", err)
		respondServiceError(w, err)
		return
	}
	log.Info("Prize configuration reloaded",
		"count", output.Count,
		"origin", output.Origin,
		"duration_ms", time.Since(start).Milliseconds())

	view, err := s.snapshot(ctx)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ReloadResponse{
		Count:  output.Count,
		Origin: output.Origin,
		View:   view,
	})
}
