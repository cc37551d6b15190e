package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/presenter"
)

// Component custom IDs
const (
	ButtonDraw       = "prize_draw"
	ButtonReset      = "prize_reset"
	ButtonModalClose = "prize_modal_close"
	ButtonResetYes   = "prize_reset_yes"
	ButtonResetNo    = "prize_reset_no"
)

const (
	colorIdle     = 0x5865f2
	colorRolling  = 0xfee75c
	colorRevealed = 0x57f287
	colorError    = 0xed4245

	boardTitle = "🎁 Prize Draw"

	// maxHistoryLines keeps the history field under Discord's 1024 character limit
	maxHistoryLines = 10
	maxNameRunes    = 60
)

// renderBoardEmbed renders the board view as a single embed
func renderBoardEmbed(view presenter.View) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       boardTitle,
		Description: renderCurrent(view.Current),
		Color:       colorFor(view),
	}

	if view.LoadError != "" {
		embed.Description = "⚠️ " + view.LoadError
		return embed
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Prizes left",
		Value:  fmt.Sprintf("%d / %d", view.Available, view.Total),
		Inline: true,
	})

	if view.Phase != models.DrawPhaseIdle && view.TotalTicks > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Drawing",
			Value:  fmt.Sprintf("%d / %d", view.Tick, view.TotalTicks),
			Inline: true,
		})
	}

	if view.Modal.Open {
		title := view.Modal.Title
		if title == "" {
			title = "🎉 " + truncate(view.Modal.PrizeName)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  title,
			Value: view.Modal.Message,
		})
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "History",
		Value: renderHistory(view),
	})

	return embed
}

func renderCurrent(current presenter.Current) string {
	switch current.Emphasis {
	case models.EmphasisRolling:
		return "🎲 *" + truncate(current.Text) + "*"
	case models.EmphasisRevealed:
		return "**" + current.Text + "**"
	}
	return current.Text
}

func renderHistory(view presenter.View) string {
	if len(view.History) == 0 {
		return view.EmptyMessage
	}

	rows := view.History
	if len(rows) > maxHistoryLines {
		rows = rows[:maxHistoryLines]
	}

	lines := make([]string, 0, len(rows)+1)
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("`%s` %s · %s", row.Label, row.Time, truncate(row.Name)))
	}
	if hidden := len(view.History) - len(rows); hidden > 0 {
		lines = append(lines, fmt.Sprintf("…and %d more", hidden))
	}

	return strings.Join(lines, "\n")
}

func colorFor(view presenter.View) int {
	switch {
	case view.LoadError != "":
		return colorError
	case view.Current.Emphasis == models.EmphasisRolling:
		return colorRolling
	case view.Current.Emphasis == models.EmphasisRevealed:
		return colorRevealed
	}
	return colorIdle
}

// renderBoardComponents renders the button row under the board
func renderBoardComponents(view presenter.View) []discordgo.MessageComponent {
	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    view.Button.Label,
			Style:    discordgo.PrimaryButton,
			CustomID: ButtonDraw,
			Disabled: !view.Button.Enabled,
			Emoji: &discordgo.ComponentEmoji{
				Name: "🎲",
			},
		},
		discordgo.Button{
			Label:    "Reset",
			Style:    discordgo.DangerButton,
			CustomID: ButtonReset,
			Disabled: view.Phase != models.DrawPhaseIdle || (view.Drawn == 0 && len(view.History) == 0),
		},
	}

	if view.Modal.Open {
		buttons = append(buttons, discordgo.Button{
			Label:    "Close",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonModalClose,
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

// renderNotice renders a toast line
func renderNotice(notice *models.Notice) string {
	switch notice.Kind {
	case models.NoticeLoadFailed:
		return "⚠️ " + notice.Message
	}
	return notice.Message
}

// renderResetPrompt renders the confirmation buttons shown with a reset prompt
func renderResetPrompt() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Reset",
					Style:    discordgo.DangerButton,
					CustomID: ButtonResetYes,
				},
				discordgo.Button{
					Label:    "Keep drawing",
					Style:    discordgo.SecondaryButton,
					CustomID: ButtonResetNo,
				},
			},
		},
	}
}

func truncate(name string) string {
	runes := []rune(name)
	if len(runes) <= maxNameRunes {
		return name
	}
	return string(runes[:maxNameRunes-1]) + "…"
}
