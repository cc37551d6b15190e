package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/prizedraw/internal/presenter"
	"github.com/KirkDiggler/prizedraw/internal/services/board"
)

const defaultConfirmTimeout = time.Minute

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	board      board.Service
	sink       *BoardSink
	confirms   *confirmations
	config     *Config
	logger     *slog.Logger
	stopSink   context.CancelFunc
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Board service
	Board board.Service

	// ConfirmTimeout is how long a reset prompt waits for a click
	ConfirmTimeout time.Duration

	Logger *slog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.Board == nil {
		return nil, errors.New("board service cannot be nil")
	}

	if cfg.ConfirmTimeout <= 0 {
		cfg.ConfirmTimeout = defaultConfirmTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "discord")

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		board:      cfg.Board,
		sink:       newBoardSink(&sessionMessenger{session: session}, logger),
		confirms:   newConfirmations(),
		config:     cfg,
		logger:     logger,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Sink returns the presenter sink that keeps posted boards up to date
func (b *Bot) Sink() presenter.Sink {
	return b.sink
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.stopSink = cancel
	go b.sink.Run(ctx)

	cmd := NewPrizeDrawCommand(b.board, b.sink, b.logger)
	if err := b.RegisterCommand(cmd); err != nil {
		return fmt.Errorf("failed to register prizedraw command: %w", err)
	}

	b.logger.Info("Discord bot is running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	if b.stopSink != nil {
		b.stopSink()
	}

	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("Failed to delete command", "command", cmdName, "command_id", cmdID, "error", err)
		} else {
			b.logger.Info("Deleted command", "command", cmdName, "command_id", cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Without a guild ID the
// command is registered globally.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("Registered command",
		"command", cmd.GetName(),
		"command_id", createdCmd.ID,
		"guild_id", b.config.GuildID)

	return nil
}

// appID falls back to the session user when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("Error handling command", "command", name, "error", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("Error handling component interaction",
				"custom_id", i.MessageComponentData().CustomID,
				"error", err)
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID
	userID, _ := interactionUser(i)

	switch customID {
	case ButtonDraw:
		return b.handleDrawButton(s, i)
	case ButtonReset:
		return b.handleResetButton(s, i, userID)
	case ButtonResetYes:
		return b.handleResetAnswer(s, i, userID, true)
	case ButtonResetNo:
		return b.handleResetAnswer(s, i, userID, false)
	case ButtonModalClose:
		return b.handleModalCloseButton(s, i)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}

// handleDrawButton starts a draw. The board message animates through the sink.
func (b *Bot) handleDrawButton(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := b.board.Draw(context.Background())
	if err != nil {
		b.logger.Error("Draw failed", "error", err)
		return RespondWithError(s, i, "The draw could not be started.")
	}

	_, name := interactionUser(i)
	b.logger.Info("Draw clicked",
		"user", name,
		"draw_id", output.DrawID,
		"started", output.Started,
		"ignored", output.Ignored,
		"exhausted", output.Exhausted)

	return AcknowledgeComponent(s, i)
}

func (b *Bot) handleModalCloseButton(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if _, err := b.board.CloseModal(context.Background()); err != nil {
		b.logger.Error("Close modal failed", "error", err)
		return RespondWithError(s, i, "Could not close the winner panel.")
	}
	return AcknowledgeComponent(s, i)
}

// handleResetButton defers an ephemeral reply, then runs the reset in the
// background because it waits for the user to answer the prompt
func (b *Bot) handleResetButton(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		return err
	}

	go b.runReset(s, i, userID)
	return nil
}

func (b *Bot) runReset(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), b.config.ConfirmTimeout)
	defer cancel()

	output, err := b.board.Reset(ctx, &board.ResetInput{
		Confirmer: b.promptConfirmer(s, i, userID),
	})

	b.editResponse(s, i, resetResultMessage(output, err), nil)
}

// promptConfirmer shows the prompt with yes/no buttons in the deferred reply
// and waits for userID to click one
func (b *Bot) promptConfirmer(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) board.Confirmer {
	return board.ConfirmFunc(func(ctx context.Context, prompt string) (bool, error) {
		answer, done := b.confirms.open(userID)
		defer done()

		b.editResponse(s, i, prompt, renderResetPrompt())

		select {
		case ok := <-answer:
			return ok, nil
		case <-ctx.Done():
			return false, ctx.Err()
		}
	})
}

func (b *Bot) handleResetAnswer(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, ok bool) error {
	if !b.confirms.answer(userID, ok) {
		return RespondWithEphemeralMessage(s, i, "That reset prompt has expired.")
	}
	return AcknowledgeComponent(s, i)
}

func (b *Bot) editResponse(s *discordgo.Session, i *discordgo.InteractionCreate, content string, components []discordgo.MessageComponent) {
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content:    &content,
		Components: &components,
	}); err != nil {
		b.logger.Error("Failed to edit interaction response", "error", err)
	}
}

// resetResultMessage is the text left in the ephemeral reply once a reset finishes
func resetResultMessage(output *board.ResetOutput, err error) string {
	switch {
	case errors.Is(err, board.ErrDrawInProgress):
		return "A draw is in progress. Reset when it finishes."
	case err != nil:
		return "The reset failed."
	case output.Noop:
		return "Nothing has been drawn yet."
	case output.Declined:
		return "Reset cancelled."
	default:
		return "The prize pool has been reset."
	}
}
