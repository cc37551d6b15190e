package discord

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/presenter"
)

type sentMessage struct {
	channelID string
	content   string
}

type deleted struct {
	channelID string
	messageID string
}

type fakeMessenger struct {
	sent    []sentMessage
	edits   []*discordgo.MessageEdit
	deletes []deleted
	editErr error
	nextID  int
}

func (f *fakeMessenger) Send(channelID string, msg *discordgo.MessageSend) (string, error) {
	f.nextID++
	f.sent = append(f.sent, sentMessage{channelID: channelID, content: msg.Content})
	return "m" + string(rune('0'+f.nextID)), nil
}

func (f *fakeMessenger) Edit(edit *discordgo.MessageEdit) error {
	f.edits = append(f.edits, edit)
	return f.editErr
}

func (f *fakeMessenger) Delete(channelID, messageID string) error {
	f.deletes = append(f.deletes, deleted{channelID: channelID, messageID: messageID})
	return nil
}

type BoardSinkTestSuite struct {
	suite.Suite
	messenger *fakeMessenger
	sink      *BoardSink
}

func (s *BoardSinkTestSuite) SetupTest() {
	s.messenger = &fakeMessenger{}
	s.sink = newBoardSink(s.messenger, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.sink.Track("c1", "board1")
}

func TestBoardSinkTestSuite(t *testing.T) {
	suite.Run(t, new(BoardSinkTestSuite))
}

func (s *BoardSinkTestSuite) update(eventType models.EventType, tick int, notice *models.Notice) presenter.Update {
	return presenter.Update{
		Event: models.Event{Type: eventType, Notice: notice},
		View: presenter.View{
			Phase:      models.DrawPhaseDrawing,
			Tick:       tick,
			TotalTicks: 15,
			Current:    presenter.Current{Text: "Mug", Emphasis: models.EmphasisRolling},
		},
	}
}

func (s *BoardSinkTestSuite) TestTicksCoalesceIntoOneEdit() {
	for tick := 1; tick <= 5; tick++ {
		s.sink.Deliver(s.update(models.EventDrawTick, tick, nil))
	}

	s.sink.flush()

	s.Require().Len(s.messenger.edits, 1)
	edit := s.messenger.edits[0]
	s.Equal("c1", edit.Channel)
	s.Equal("board1", edit.ID)
	s.Require().NotNil(edit.Embeds)
	embeds := *edit.Embeds
	s.Equal("5 / 15", embeds[0].Fields[1].Value)

	// nothing new, nothing to do
	s.sink.flush()
	s.Len(s.messenger.edits, 1)
}

func (s *BoardSinkTestSuite) TestNoticeShownAndDismissed() {
	notice := &models.Notice{ID: "n1", Kind: models.NoticeReset, Message: "reset"}

	s.sink.Deliver(s.update(models.EventNoticeShown, 0, notice))
	s.sink.flush()
	s.Require().Len(s.messenger.sent, 1)
	s.Equal(sentMessage{channelID: "c1", content: "reset"}, s.messenger.sent[0])

	s.sink.Deliver(s.update(models.EventNoticeDismissed, 0, notice))
	s.sink.flush()
	s.Require().Len(s.messenger.deletes, 1)
	s.Equal(deleted{channelID: "c1", messageID: "m1"}, s.messenger.deletes[0])
	s.Empty(s.sink.posted)
}

func (s *BoardSinkTestSuite) TestEditFailureKeepsGoing() {
	s.messenger.editErr = errors.New("unknown message")
	s.sink.Track("c2", "board2")

	s.sink.Deliver(s.update(models.EventDrawTick, 1, nil))
	s.sink.flush()

	s.Len(s.messenger.edits, 2)
}

func (s *BoardSinkTestSuite) TestTrackReplacesChannelBoard() {
	s.sink.Track("c1", "board9")
	id, ok := s.sink.Tracked("c1")
	s.True(ok)
	s.Equal("board9", id)

	_, ok = s.sink.Tracked("nope")
	s.False(ok)
}

func (s *BoardSinkTestSuite) TestDeliverNeverBlocks() {
	for i := 0; i < 100; i++ {
		s.sink.Deliver(s.update(models.EventDrawTick, i, nil))
	}
	s.Len(s.sink.wake, 1)
}
