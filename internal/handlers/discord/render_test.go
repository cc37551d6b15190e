package discord

import (
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/presenter"
	"github.com/KirkDiggler/prizedraw/internal/services/board"
)

func buttonsOf(t *testing.T, components []discordgo.MessageComponent) []discordgo.Button {
	t.Helper()
	require.Len(t, components, 1)
	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)

	buttons := make([]discordgo.Button, 0, len(row.Components))
	for _, c := range row.Components {
		button, ok := c.(discordgo.Button)
		require.True(t, ok)
		buttons = append(buttons, button)
	}
	return buttons
}

func TestRenderBoardEmbedIdle(t *testing.T) {
	view := presenter.View{
		Loaded:       true,
		Phase:        models.DrawPhaseIdle,
		Current:      presenter.Current{Text: presenter.PlaceholderReady, Emphasis: models.EmphasisIdle},
		EmptyMessage: presenter.EmptyHistoryMessage,
		Available:    3,
		Total:        3,
	}

	embed := renderBoardEmbed(view)
	assert.Equal(t, boardTitle, embed.Title)
	assert.Equal(t, presenter.PlaceholderReady, embed.Description)
	assert.Equal(t, colorIdle, embed.Color)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "3 / 3", embed.Fields[0].Value)
	assert.Equal(t, presenter.EmptyHistoryMessage, embed.Fields[1].Value)
}

func TestRenderBoardEmbedRolling(t *testing.T) {
	view := presenter.View{
		Loaded:     true,
		Phase:      models.DrawPhaseDrawing,
		Tick:       4,
		TotalTicks: 15,
		Current:    presenter.Current{Text: "Mug", Emphasis: models.EmphasisRolling},
	}

	embed := renderBoardEmbed(view)
	assert.Equal(t, "🎲 *Mug*", embed.Description)
	assert.Equal(t, colorRolling, embed.Color)
	assert.Equal(t, "4 / 15", embed.Fields[1].Value)
}

func TestRenderBoardEmbedModalAndHistory(t *testing.T) {
	view := presenter.View{
		Loaded:  true,
		Phase:   models.DrawPhaseIdle,
		Current: presenter.Current{Text: "🎊 Mug 🎊", Emphasis: models.EmphasisRevealed},
		Modal:   models.Modal{Open: true, PrizeName: "Mug", Message: "Congratulations!"},
		History: []presenter.HistoryRow{
			{Number: 2, Label: "Draw #2", Time: "10:01:00", Name: "Mug"},
			{Number: 1, Label: "Draw #1", Time: "10:00:00", Name: "Hat"},
		},
	}

	embed := renderBoardEmbed(view)
	assert.Equal(t, "**🎊 Mug 🎊**", embed.Description)
	assert.Equal(t, colorRevealed, embed.Color)

	var modal, history *discordgo.MessageEmbedField
	for _, f := range embed.Fields {
		switch f.Name {
		case "🎉 Mug":
			modal = f
		case "History":
			history = f
		}
	}
	require.NotNil(t, modal)
	assert.Equal(t, "Congratulations!", modal.Value)
	require.NotNil(t, history)
	lines := strings.Split(history.Value, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Draw #2")
	assert.Contains(t, lines[1], "Hat")
}

func TestRenderBoardEmbedModalTitle(t *testing.T) {
	view := presenter.View{
		Phase: models.DrawPhaseIdle,
		Modal: models.Modal{Open: true, Title: "🎲 Winner, winner!", PrizeName: "Mug", Message: "Mug is yours!"},
	}

	embed := renderBoardEmbed(view)
	var names []string
	for _, f := range embed.Fields {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "🎲 Winner, winner!")
	assert.NotContains(t, names, "🎉 Mug")
}

func TestRenderHistoryCapsLines(t *testing.T) {
	view := presenter.View{}
	for n := 15; n >= 1; n-- {
		view.History = append(view.History, presenter.HistoryRow{Number: n, Label: "Draw", Name: "Prize"})
	}

	lines := strings.Split(renderHistory(view), "\n")
	assert.Len(t, lines, maxHistoryLines+1)
	assert.Equal(t, "…and 5 more", lines[len(lines)-1])
}

func TestRenderBoardEmbedLoadError(t *testing.T) {
	embed := renderBoardEmbed(presenter.View{LoadError: "file missing"})
	assert.Equal(t, colorError, embed.Color)
	assert.Equal(t, "⚠️ file missing", embed.Description)
	assert.Empty(t, embed.Fields)
}

func TestRenderBoardComponents(t *testing.T) {
	idle := presenter.View{
		Phase:  models.DrawPhaseIdle,
		Button: presenter.Button{Enabled: true, Label: presenter.LabelDraw},
	}
	buttons := buttonsOf(t, renderBoardComponents(idle))
	require.Len(t, buttons, 2)
	assert.Equal(t, ButtonDraw, buttons[0].CustomID)
	assert.False(t, buttons[0].Disabled)
	assert.Equal(t, presenter.LabelDraw, buttons[0].Label)
	assert.True(t, buttons[1].Disabled, "nothing to reset yet")

	drawing := presenter.View{
		Phase:  models.DrawPhaseDrawing,
		Button: presenter.Button{Label: presenter.LabelDrawing},
		Drawn:  1,
	}
	buttons = buttonsOf(t, renderBoardComponents(drawing))
	assert.True(t, buttons[0].Disabled)
	assert.True(t, buttons[1].Disabled, "reset is locked while drawing")

	settled := presenter.View{
		Phase:  models.DrawPhaseIdle,
		Button: presenter.Button{Enabled: true, Label: presenter.LabelDraw},
		Drawn:  1,
		Modal:  models.Modal{Open: true},
	}
	buttons = buttonsOf(t, renderBoardComponents(settled))
	require.Len(t, buttons, 3)
	assert.False(t, buttons[1].Disabled)
	assert.Equal(t, ButtonModalClose, buttons[2].CustomID)
}

func TestRenderNotice(t *testing.T) {
	assert.Equal(t, "⚠️ bad file", renderNotice(&models.Notice{Kind: models.NoticeLoadFailed, Message: "bad file"}))
	assert.Equal(t, "reset done", renderNotice(&models.Notice{Kind: models.NoticeReset, Message: "reset done"}))
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("é", maxNameRunes+5)
	out := truncate(long)
	assert.Len(t, []rune(out), maxNameRunes)
	assert.True(t, strings.HasSuffix(out, "…"))
	assert.Equal(t, "short", truncate("short"))
}

func TestResetResultMessage(t *testing.T) {
	assert.Equal(t, "Nothing has been drawn yet.", resetResultMessage(&board.ResetOutput{Noop: true}, nil))
	assert.Equal(t, "Reset cancelled.", resetResultMessage(&board.ResetOutput{Declined: true}, nil))
	assert.Equal(t, "The prize pool has been reset.", resetResultMessage(&board.ResetOutput{Reset: true}, nil))
	assert.Contains(t, resetResultMessage(nil, board.ErrDrawInProgress), "draw is in progress")
	assert.Equal(t, "The reset failed.", resetResultMessage(nil, errors.New("boom")))
}

func TestReloadMessage(t *testing.T) {
	assert.Equal(t, "Reloaded 1 prize from file:a.json", reloadMessage(&board.LoadOutput{Count: 1, Origin: "file:a.json"}))
	assert.Equal(t, "Reloaded 3 prizes from file:a.json", reloadMessage(&board.LoadOutput{Count: 3, Origin: "file:a.json"}))
}
