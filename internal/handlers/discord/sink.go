package discord

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/presenter"
)

// messenger is the slice of the Discord API the board sink needs
type messenger interface {
	Send(channelID string, msg *discordgo.MessageSend) (string, error)
	Edit(edit *discordgo.MessageEdit) error
	Delete(channelID, messageID string) error
}

// sessionMessenger sends through a live discordgo session
type sessionMessenger struct {
	session *discordgo.Session
}

func (m *sessionMessenger) Send(channelID string, msg *discordgo.MessageSend) (string, error) {
	sent, err := m.session.ChannelMessageSendComplex(channelID, msg)
	if err != nil {
		return "", err
	}
	return sent.ID, nil
}

func (m *sessionMessenger) Edit(edit *discordgo.MessageEdit) error {
	_, err := m.session.ChannelMessageEditComplex(edit)
	return err
}

func (m *sessionMessenger) Delete(channelID, messageID string) error {
	return m.session.ChannelMessageDelete(channelID, messageID)
}

type toastOp struct {
	show   bool
	notice models.Notice
}

type postedToast struct {
	channelID string
	messageID string
}

// BoardSink mirrors the board into every posted board message. Deliver only
// records the update; a single worker applies it, so bursts of ticks
// collapse into one edit per flush.
type BoardSink struct {
	messenger messenger
	logger    *slog.Logger

	mu     sync.Mutex
	boards map[string]string // channel ID -> board message ID
	latest *presenter.View
	toasts []toastOp
	wake   chan struct{}

	// posted is only touched by the worker
	posted map[string][]postedToast
}

func newBoardSink(m messenger, logger *slog.Logger) *BoardSink {
	return &BoardSink{
		messenger: m,
		logger:    logger,
		boards:    make(map[string]string),
		wake:      make(chan struct{}, 1),
		posted:    make(map[string][]postedToast),
	}
}

// Deliver implements presenter.Sink
func (k *BoardSink) Deliver(update presenter.Update) {
	k.mu.Lock()
	view := update.View
	k.latest = &view

	if notice := update.Event.Notice; notice != nil {
		switch update.Event.Type {
		case models.EventNoticeShown:
			k.toasts = append(k.toasts, toastOp{show: true, notice: *notice})
		case models.EventNoticeDismissed:
			k.toasts = append(k.toasts, toastOp{notice: *notice})
		}
	}
	k.mu.Unlock()

	select {
	case k.wake <- struct{}{}:
	default:
	}
}

// Track adds a board message to keep in sync. Each channel has at most one.
func (k *BoardSink) Track(channelID, messageID string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.boards[channelID] = messageID
}

// Tracked returns the board message for channelID, if any
func (k *BoardSink) Tracked(channelID string) (string, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	id, ok := k.boards[channelID]
	return id, ok
}

// Run applies updates until ctx is done
func (k *BoardSink) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-k.wake:
			k.flush()
		}
	}
}

func (k *BoardSink) flush() {
	k.mu.Lock()
	view := k.latest
	k.latest = nil
	toasts := k.toasts
	k.toasts = nil
	boards := make(map[string]string, len(k.boards))
	for channelID, messageID := range k.boards {
		boards[channelID] = messageID
	}
	k.mu.Unlock()

	for _, op := range toasts {
		if op.show {
			k.showToast(boards, op.notice)
		} else {
			k.dismissToast(op.notice.ID)
		}
	}

	if view == nil {
		return
	}

	embeds := []*discordgo.MessageEmbed{renderBoardEmbed(*view)}
	components := renderBoardComponents(*view)
	for channelID, messageID := range boards {
		err := k.messenger.Edit(&discordgo.MessageEdit{
			Channel:    channelID,
			ID:         messageID,
			Embeds:     &embeds,
			Components: &components,
		})
		if err != nil {
			k.logger.Warn("Failed to update board message",
				"channel_id", channelID,
				"message_id", messageID,
				"error", err)
		}
	}
}

func (k *BoardSink) showToast(boards map[string]string, notice models.Notice) {
	content := renderNotice(&notice)
	for channelID := range boards {
		messageID, err := k.messenger.Send(channelID, &discordgo.MessageSend{Content: content})
		if err != nil {
			k.logger.Warn("Failed to send notice", "channel_id", channelID, "notice_id", notice.ID, "error", err)
			continue
		}
		k.posted[notice.ID] = append(k.posted[notice.ID], postedToast{channelID: channelID, messageID: messageID})
	}
}

func (k *BoardSink) dismissToast(noticeID string) {
	for _, toast := range k.posted[noticeID] {
		if err := k.messenger.Delete(toast.channelID, toast.messageID); err != nil {
			k.logger.Warn("Failed to delete notice", "channel_id", toast.channelID, "notice_id", noticeID, "error", err)
		}
	}
	delete(k.posted, noticeID)
}
