package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/presenter"
)

type HubTestSuite struct {
	suite.Suite
	hub *Hub
}

func (s *HubTestSuite) SetupTest() {
	s.hub = NewHub(nil)
	s.hub.Start()
}

func (s *HubTestSuite) TearDownTest() {
	s.hub.Stop()
}

func TestHubTestSuite(t *testing.T) {
	suite.Run(t, new(HubTestSuite))
}

func (s *HubTestSuite) waitForClients(n int) {
	s.Eventually(func() bool {
		return s.hub.ClientCount() == n
	}, time.Second, 5*time.Millisecond)
}

func (s *HubTestSuite) receive(client *Client) Event {
	select {
	case event := <-client.EventChannel:
		return event
	case <-time.After(time.Second):
		s.FailNow("timed out waiting for event")
		return Event{}
	}
}

func (s *HubTestSuite) TestDeliverToAllClients() {
	first := s.hub.Register(nil)
	second := s.hub.Register(nil)
	s.waitForClients(2)

	s.hub.Deliver(presenter.Update{
		Event: models.Event{Type: models.EventDrawTick, DrawID: "draw-1"},
		View:  presenter.View{Tick: 3},
	})

	for _, client := range []*Client{first, second} {
		event := s.receive(client)
		s.Equal(string(models.EventDrawTick), event.Type)
		payload, ok := event.Payload.(BoardPayload)
		s.Require().True(ok)
		s.Equal("draw-1", payload.DrawID)
		s.Equal(3, payload.View.Tick)
	}
}

func (s *HubTestSuite) TestFilter() {
	client := s.hub.Register([]string{string(models.EventDrawCelebrate)})
	s.waitForClients(1)

	s.hub.Broadcast(string(models.EventDrawTick), nil)
	s.hub.Broadcast(string(models.EventDrawCelebrate), nil)

	event := s.receive(client)
	s.Equal(string(models.EventDrawCelebrate), event.Type)
}

func (s *HubTestSuite) TestUnregisterClosesChannel() {
	client := s.hub.Register(nil)
	s.waitForClients(1)

	s.hub.Unregister(client.ID)
	s.waitForClients(0)

	_, ok := <-client.EventChannel
	s.False(ok)
}

func (s *HubTestSuite) TestStopClosesClientsAndIsRepeatable() {
	client := s.hub.Register(nil)
	s.waitForClients(1)

	s.hub.Stop()
	_, ok := <-client.EventChannel
	s.False(ok)
	s.Equal(0, s.hub.ClientCount())

	s.NotPanics(s.hub.Stop)
}

func (s *HubTestSuite) TestFormatSSEMessage() {
	msg, err := FormatSSEMessage(Event{ID: "e1", Type: "draw.tick", Timestamp: 1})
	s.Require().NoError(err)

	text := string(msg)
	s.True(strings.HasPrefix(text, "id: e1\nevent: draw.tick\ndata: {"))
	s.True(strings.HasSuffix(text, "\n\n"))
}

func (s *HubTestSuite) TestHandlerStreamsSnapshotAndEvents() {
	snapshot := func(ctx context.Context) (presenter.View, error) {
		return presenter.View{Button: presenter.Button{Enabled: true, Label: presenter.LabelDraw}}, nil
	}
	server := httptest.NewServer(Handler(s.hub, snapshot))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	s.Require().NoError(err)
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal("text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() (string, string) {
		var eventType, data string
		for {
			line, err := reader.ReadString('\n')
			s.Require().NoError(err)
			line = strings.TrimRight(line, "\n")
			if line == "" {
				return eventType, data
			}
			if strings.HasPrefix(line, "event: ") {
				eventType = strings.TrimPrefix(line, "event: ")
			}
			if strings.HasPrefix(line, "data: ") {
				data = strings.TrimPrefix(line, "data: ")
			}
		}
	}

	eventType, _ := readEvent()
	s.Equal(EventTypeConnected, eventType)

	eventType, data := readEvent()
	s.Equal(EventTypeSnapshot, eventType)
	var snap struct {
		Payload BoardPayload `json:"payload"`
	}
	s.Require().NoError(json.Unmarshal([]byte(data), &snap))
	s.Equal(presenter.LabelDraw, snap.Payload.View.Button.Label)

	s.waitForClients(1)
	s.hub.Deliver(presenter.Update{
		Event: models.Event{Type: models.EventBoardReset},
	})

	eventType, _ = readEvent()
	s.Equal(string(models.EventBoardReset), eventType)
}
