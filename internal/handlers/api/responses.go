package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/KirkDiggler/prizedraw/internal/presenter"
	"github.com/KirkDiggler/prizedraw/internal/services/board"
	"github.com/KirkDiggler/prizedraw/internal/services/loader"
)

// User-facing error messages
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgInvalidRequest     = "Invalid request. Please check your inputs."
	ErrMsgDrawInProgress     = "A draw is in progress. Try again when it finishes."
	ErrMsgLoadFailed         = "The prize configuration could not be loaded."
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// DrawResponse is returned by the draw endpoint
type DrawResponse struct {
	Started   bool           `json:"started"`
	Ignored   bool           `json:"ignored"`
	Exhausted bool           `json:"exhausted"`
	DrawID    string         `json:"draw_id,omitempty"`
	View      presenter.View `json:"view"`
}

// ResetRequest is the body of the reset endpoint. Confirmed carries the
// answer the browser already got from its own prompt.
type ResetRequest struct {
	Confirmed *bool `json:"confirmed" validate:"required"`
}

// ResetResponse is returned by the reset endpoint
type ResetResponse struct {
	Noop     bool           `json:"noop"`
	Declined bool           `json:"declined"`
	Reset    bool           `json:"reset"`
	View     presenter.View `json:"view"`
}

// ModalResponse is returned by the modal close endpoint
type ModalResponse struct {
	Closed bool           `json:"closed"`
	View   presenter.View `json:"view"`
}

// ReloadResponse is returned by the reload endpoint
type ReloadResponse struct {
	Count  int            `json:"count"`
	Origin string         `json:"origin"`
	View   presenter.View `json:"view"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps board and loader errors onto HTTP statuses
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, board.ErrDrawInProgress):
		respondError(w, http.StatusConflict, ErrMsgDrawInProgress)
	case errors.Is(err, loader.ErrLoadFailed):
		respondError(w, http.StatusBadGateway, ErrMsgLoadFailed)
	default:
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
	}
}
