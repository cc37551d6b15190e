package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/prizedraw/internal/presenter"
	"github.com/KirkDiggler/prizedraw/internal/services/board"
)

// PrizeDrawCommand handles the /prizedraw command
type PrizeDrawCommand struct {
	BaseCommand
	board  board.Service
	sink   *BoardSink
	logger *slog.Logger
}

// NewPrizeDrawCommand creates a new prizedraw command handler
func NewPrizeDrawCommand(boardService board.Service, sink *BoardSink, logger *slog.Logger) *PrizeDrawCommand {
	return &PrizeDrawCommand{
		BaseCommand: BaseCommand{
			Name:        "prizedraw",
			Description: "Prize draw board commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "board",
					Description: "Post the prize board in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reload",
					Description: "Reload the prize list",
				},
			},
		},
		board:  boardService,
		sink:   sink,
		logger: logger,
	}
}

// Handle processes a Discord interaction for the prizedraw command
func (c *PrizeDrawCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	switch data.Options[0].Name {
	case "board":
		return c.handleBoard(s, i)
	case "reload":
		return c.handleReload(s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

// handleBoard posts a fresh board message and starts keeping it in sync
func (c *PrizeDrawCommand) handleBoard(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	state, err := c.board.GetState(ctx)
	if err != nil {
		c.logger.Error("Failed to get board", "error", err)
		return RespondWithError(s, i, "Could not load the board.")
	}
	view := presenter.Render(state)

	messageID, err := c.sink.messenger.Send(i.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{renderBoardEmbed(view)},
		Components: renderBoardComponents(view),
	})
	if err != nil {
		c.logger.Error("Failed to post board", "channel_id", i.ChannelID, "error", err)
		return RespondWithError(s, i, "Could not post the board in this channel.")
	}

	if previous, ok := c.sink.Tracked(i.ChannelID); ok {
		if err := c.sink.messenger.Delete(i.ChannelID, previous); err != nil {
			c.logger.Debug("Old board message already gone", "message_id", previous, "error", err)
		}
	}
	c.sink.Track(i.ChannelID, messageID)

	return RespondWithEphemeralMessage(s, i, "Board posted. Click 🎲 to draw!")
}

func (c *PrizeDrawCommand) handleReload(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.board.Reload(context.Background())
	if err != nil {
		c.logger.Warn("Reload from Discord failed", "error", err)
		if errors.Is(err, board.ErrDrawInProgress) {
			return RespondWithError(s, i, "A draw is in progress. Try again when it finishes.")
		}
		return RespondWithError(s, i, "The prize list could not be reloaded.")
	}

	return RespondWithEphemeralMessage(s, i, reloadMessage(output))
}

func reloadMessage(output *board.LoadOutput) string {
	if output.Count == 1 {
		return "Reloaded 1 prize from " + output.Origin
	}
	return fmt.Sprintf("Reloaded %d prizes from %s", output.Count, output.Origin)
}
