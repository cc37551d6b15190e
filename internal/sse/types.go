package sse

import (
	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/presenter"
)

// BoardPayload is the payload of every board event sent to browsers
type BoardPayload struct {
	DrawID      string              `json:"draw_id,omitempty"`
	View        presenter.View      `json:"view"`
	Notice      *models.Notice      `json:"notice,omitempty"`
	Celebration *models.Celebration `json:"celebration,omitempty"`
}
