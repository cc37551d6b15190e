package presenter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/prizedraw/internal/models"
)

type RenderTestSuite struct {
	suite.Suite
	state *models.BoardState
}

func (s *RenderTestSuite) SetupTest() {
	s.state = &models.BoardState{
		Loaded: true,
		Prizes: []models.Prize{
			{ID: "1", Name: "A"},
			{ID: "2", Name: "B"},
			{ID: "3", Name: "C"},
		},
		Phase:      models.DrawPhaseIdle,
		TotalTicks: 15,
		Current:    models.CurrentPrize{Emphasis: models.EmphasisIdle},
	}
}

func TestRenderTestSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}

func (s *RenderTestSuite) TestIdleBoard() {
	view := Render(s.state)

	s.Equal(Button{Enabled: true, Label: LabelDraw}, view.Button)
	s.Equal(Current{Text: PlaceholderReady, Emphasis: models.EmphasisIdle}, view.Current)
	s.Empty(view.History)
	s.NotNil(view.History)
	s.Equal(EmptyHistoryMessage, view.EmptyMessage)
	s.Equal(3, view.Available)
	s.Equal(0, view.Drawn)
	s.Equal(3, view.Total)
}

func (s *RenderTestSuite) TestNotLoaded() {
	view := Render(&models.BoardState{})

	s.False(view.Button.Enabled)
	s.Equal(LabelUnavailable, view.Button.Label)
	s.Equal(PlaceholderReady, view.Current.Text)
}

func (s *RenderTestSuite) TestNilState() {
	view := Render(nil)
	s.Equal(LabelUnavailable, view.Button.Label)
}

func (s *RenderTestSuite) TestRolling() {
	s.state.Phase = models.DrawPhaseDrawing
	s.state.Tick = 4
	s.state.Current = models.CurrentPrize{Name: "B", Emphasis: models.EmphasisRolling}

	view := Render(s.state)

	s.Equal(Button{Label: LabelDrawing}, view.Button)
	s.Equal(Current{Text: "B", Emphasis: models.EmphasisRolling}, view.Current)
	s.Equal(4, view.Tick)
	s.Equal(15, view.TotalTicks)
}

func (s *RenderTestSuite) TestRevealed() {
	s.state.Phase = models.DrawPhaseCommitting
	s.state.Prizes[1].Drawn = true
	s.state.Current = models.CurrentPrize{Name: "B", Emphasis: models.EmphasisRevealed}

	view := Render(s.state)

	s.False(view.Button.Enabled)
	s.Equal("🎊 B 🎊", view.Current.Text)
	s.Equal(models.EmphasisRevealed, view.Current.Emphasis)
	s.Equal(2, view.Available)
	s.Equal(1, view.Drawn)
}

func (s *RenderTestSuite) TestExhausted() {
	for i := range s.state.Prizes {
		s.state.Prizes[i].Drawn = true
	}

	view := Render(s.state)

	s.Equal(Button{Label: LabelPoolEmpty}, view.Button)
	s.Equal(PlaceholderNoPrizes, view.Current.Text)
}

func (s *RenderTestSuite) TestHistoryRows() {
	s.state.History = []models.HistoryEntry{
		{Sequence: 2, PrizeName: "C", Time: "10:00:05"},
		{Sequence: 1, PrizeName: "A", Time: "10:00:01"},
	}

	view := Render(s.state)

	s.Equal([]HistoryRow{
		{Number: 2, Label: "Draw #2", Time: "10:00:05", Name: "C"},
		{Number: 1, Label: "Draw #1", Time: "10:00:01", Name: "A"},
	}, view.History)
	s.Empty(view.EmptyMessage)
}

func (s *RenderTestSuite) TestNoticesAndModal() {
	expires := time.Date(2025, 4, 5, 10, 0, 2, 0, time.UTC)
	s.state.Notices = []models.Notice{{
		ID:        "n1",
		Kind:      models.NoticeReset,
		Message:   "reset",
		ExpiresAt: expires,
		Fade:      300 * time.Millisecond,
	}}
	s.state.Modal = models.Modal{Open: true, PrizeName: "A", Message: "You won A"}

	view := Render(s.state)

	s.Require().Len(view.Notices, 1)
	s.Equal(NoticeView{ID: "n1", Kind: models.NoticeReset, Message: "reset", ExpiresAt: expires, FadeMS: 300}, view.Notices[0])
	s.True(view.Modal.Open)
	s.Equal("A", view.Modal.PrizeName)
}
