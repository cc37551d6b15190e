package presenter

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/prizedraw/internal/models"
)

// Button labels
const (
	LabelDraw        = "Draw"
	LabelDrawing     = "Drawing..."
	LabelPoolEmpty   = "Pool empty"
	LabelUnavailable = "Unavailable"
)

// Placeholders shown when no draw result is on display
const (
	PlaceholderReady    = "Ready to draw"
	PlaceholderNoPrizes = "No prizes left"
	EmptyHistoryMessage = "No draws yet"
)

// View is everything a renderer needs to draw the board
type View struct {
	Loaded    bool   `json:"loaded"`
	LoadError string `json:"load_error,omitempty"`

	Phase      models.DrawPhase `json:"phase"`
	Tick       int              `json:"tick"`
	TotalTicks int              `json:"total_ticks"`

	Button  Button  `json:"button"`
	Current Current `json:"current"`

	History []HistoryRow `json:"history"`

	// EmptyMessage is set when there is no history to show
	EmptyMessage string `json:"empty_message,omitempty"`

	Notices []NoticeView `json:"notices"`
	Modal   models.Modal `json:"modal"`

	Available int `json:"available"`
	Drawn     int `json:"drawn"`
	Total     int `json:"total"`
}

// Button is the draw affordance
type Button struct {
	Enabled bool   `json:"enabled"`
	Label   string `json:"label"`
}

// Current is the prize display
type Current struct {
	Text     string          `json:"text"`
	Emphasis models.Emphasis `json:"emphasis"`
}

// HistoryRow is one line of the history list
type HistoryRow struct {
	Number int    `json:"number"`
	Label  string `json:"label"`
	Time   string `json:"time"`
	Name   string `json:"name"`
}

// NoticeView is a toast
type NoticeView struct {
	ID      string            `json:"id"`
	Kind    models.NoticeKind `json:"kind"`
	Message string            `json:"message"`

	// ExpiresAt and FadeMS let browsers run the dismissal animation locally
	ExpiresAt time.Time `json:"expires_at"`
	FadeMS    int64     `json:"fade_ms"`
}

// Render derives the view from a board snapshot. It has no side effects.
func Render(state *models.BoardState) View {
	if state == nil {
		state = &models.BoardState{}
	}

	available := state.Available()
	view := View{
		Loaded:     state.Loaded,
		LoadError:  state.LoadError,
		Phase:      state.Phase,
		Tick:       state.Tick,
		TotalTicks: state.TotalTicks,
		Button:     renderButton(state, available),
		Current:    renderCurrent(state, available),
		History:    make([]HistoryRow, 0, len(state.History)),
		Notices:    make([]NoticeView, 0, len(state.Notices)),
		Modal:      state.Modal,
		Available:  available,
		Drawn:      len(state.Prizes) - available,
		Total:      len(state.Prizes),
	}

	for _, entry := range state.History {
		view.History = append(view.History, HistoryRow{
			Number: entry.Sequence,
			Label:  fmt.Sprintf("Draw #%d", entry.Sequence),
			Time:   entry.Time,
			Name:   entry.PrizeName,
		})
	}
	if len(view.History) == 0 {
		view.EmptyMessage = EmptyHistoryMessage
	}

	for _, notice := range state.Notices {
		view.Notices = append(view.Notices, NoticeView{
			ID:        notice.ID,
			Kind:      notice.Kind,
			Message:   notice.Message,
			ExpiresAt: notice.ExpiresAt,
			FadeMS:    notice.Fade.Milliseconds(),
		})
	}

	return view
}

func renderButton(state *models.BoardState, available int) Button {
	switch {
	case !state.Loaded:
		return Button{Label: LabelUnavailable}
	case state.Drawing():
		return Button{Label: LabelDrawing}
	case available == 0:
		return Button{Label: LabelPoolEmpty}
	default:
		return Button{Enabled: true, Label: LabelDraw}
	}
}

func renderCurrent(state *models.BoardState, available int) Current {
	switch state.Current.Emphasis {
	case models.EmphasisRolling:
		return Current{Text: state.Current.Name, Emphasis: models.EmphasisRolling}
	case models.EmphasisRevealed:
		return Current{Text: "🎊 " + state.Current.Name + " 🎊", Emphasis: models.EmphasisRevealed}
	}

	text := PlaceholderReady
	if state.Loaded && available == 0 {
		text = PlaceholderNoPrizes
	}
	return Current{Text: text, Emphasis: models.EmphasisIdle}
}
