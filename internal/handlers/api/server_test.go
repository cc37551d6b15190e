package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/presenter"
	"github.com/KirkDiggler/prizedraw/internal/services/board"
	boardMocks "github.com/KirkDiggler/prizedraw/internal/services/board/mocks"
	"github.com/KirkDiggler/prizedraw/internal/services/loader"
	"github.com/KirkDiggler/prizedraw/internal/sse"
)

type ServerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockBoard *boardMocks.MockService
	server    *Server
	handler   http.Handler
	state     *models.BoardState
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBoard = boardMocks.NewMockService(s.ctrl)

	server, err := NewServer(&Config{
		Board: s.mockBoard,
		Port:  "0",
	})
	s.Require().NoError(err)
	s.server = server
	s.handler = server.Router()

	s.state = &models.BoardState{
		Loaded:  true,
		Prizes:  []models.Prize{{ID: "1", Name: "A"}, {ID: "2", Name: "B", Drawn: true}},
		Phase:   models.DrawPhaseIdle,
		Current: models.CurrentPrize{Emphasis: models.EmphasisIdle},
	}
}

func (s *ServerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) expectState() {
	s.mockBoard.EXPECT().GetState(gomock.Any()).Return(s.state, nil)
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out))
}

func (s *ServerTestSuite) TestNewServerValidation() {
	_, err := NewServer(nil)
	s.Error(err)

	_, err = NewServer(&Config{})
	s.Error(err)
}

func (s *ServerTestSuite) TestHealthz() {
	rec := s.do(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestGetBoard() {
	s.expectState()

	rec := s.do(http.MethodGet, "/api/v1/board", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get("X-Request-ID"))

	var view presenter.View
	s.decode(rec, &view)
	s.Equal(presenter.LabelDraw, view.Button.Label)
	s.Equal(1, view.Available)
	s.Equal(2, view.Total)
}

func (s *ServerTestSuite) TestDrawStarted() {
	s.mockBoard.EXPECT().Draw(gomock.Any()).Return(&board.DrawOutput{Started: true, DrawID: "d1"}, nil)
	s.expectState()

	rec := s.do(http.MethodPost, "/api/v1/board/draw", nil)
	s.Equal(http.StatusOK, rec.Code)

	var resp DrawResponse
	s.decode(rec, &resp)
	s.True(resp.Started)
	s.Equal("d1", resp.DrawID)
}

func (s *ServerTestSuite) TestDrawWaitsForSettle() {
	done := make(chan struct{})
	close(done)
	s.mockBoard.EXPECT().Draw(gomock.Any()).Return(&board.DrawOutput{Started: true, DrawID: "d1", Done: done}, nil)
	s.expectState()

	rec := s.do(http.MethodPost, "/api/v1/board/draw?wait=true", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestDrawBadWait() {
	rec := s.do(http.MethodPost, "/api/v1/board/draw?wait=maybe", nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.decode(rec, &resp)
	s.Contains(resp.Fields, "wait")
}

func (s *ServerTestSuite) TestDrawIgnoredAndExhausted() {
	s.mockBoard.EXPECT().Draw(gomock.Any()).Return(&board.DrawOutput{Ignored: true, DrawID: "d1"}, nil)
	s.expectState()

	rec := s.do(http.MethodPost, "/api/v1/board/draw", nil)
	var resp DrawResponse
	s.decode(rec, &resp)
	s.True(resp.Ignored)

	s.mockBoard.EXPECT().Draw(gomock.Any()).Return(&board.DrawOutput{Exhausted: true}, nil)
	s.expectState()

	rec = s.do(http.MethodPost, "/api/v1/board/draw", nil)
	resp = DrawResponse{}
	s.decode(rec, &resp)
	s.True(resp.Exhausted)
}

func (s *ServerTestSuite) TestResetConfirmed() {
	s.mockBoard.EXPECT().Reset(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, input *board.ResetInput) (*board.ResetOutput, error) {
			ok, err := input.Confirmer.Confirm(ctx, "sure?")
			s.Require().NoError(err)
			s.True(ok)
			return &board.ResetOutput{Reset: true}, nil
		})
	s.expectState()

	rec := s.do(http.MethodPost, "/api/v1/board/reset", map[string]any{"confirmed": true})
	s.Equal(http.StatusOK, rec.Code)

	var resp ResetResponse
	s.decode(rec, &resp)
	s.True(resp.Reset)
}

func (s *ServerTestSuite) TestResetDeclinedByClient() {
	s.mockBoard.EXPECT().Reset(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, input *board.ResetInput) (*board.ResetOutput, error) {
			ok, _ := input.Confirmer.Confirm(ctx, "sure?")
			s.False(ok)
			return &board.ResetOutput{Declined: true}, nil
		})
	s.expectState()

	rec := s.do(http.MethodPost, "/api/v1/board/reset", map[string]any{"confirmed": false})
	s.Equal(http.StatusOK, rec.Code)

	var resp ResetResponse
	s.decode(rec, &resp)
	s.True(resp.Declined)
}

func (s *ServerTestSuite) TestResetRequiresConfirmedField() {
	rec := s.do(http.MethodPost, "/api/v1/board/reset", map[string]any{})
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.decode(rec, &resp)
	s.Equal("This field is required", resp.Fields["confirmed"])
}

func (s *ServerTestSuite) TestResetMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/board/reset", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestResetDuringDraw() {
	s.mockBoard.EXPECT().Reset(gomock.Any(), gomock.Any()).Return(nil, board.ErrDrawInProgress)

	rec := s.do(http.MethodPost, "/api/v1/board/reset", map[string]any{"confirmed": true})
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ServerTestSuite) TestCloseModal() {
	s.mockBoard.EXPECT().CloseModal(gomock.Any()).Return(&board.CloseModalOutput{Closed: true}, nil)
	s.expectState()

	rec := s.do(http.MethodPost, "/api/v1/board/modal/close", nil)
	s.Equal(http.StatusOK, rec.Code)

	var resp ModalResponse
	s.decode(rec, &resp)
	s.True(resp.Closed)
}

func (s *ServerTestSuite) TestReload() {
	s.mockBoard.EXPECT().Reload(gomock.Any()).Return(&board.LoadOutput{Count: 2, Origin: "prizes.json"}, nil)
	s.expectState()

	rec := s.do(http.MethodPost, "/api/v1/admin/reload", nil)
	s.Equal(http.StatusOK, rec.Code)

	var resp ReloadResponse
	s.decode(rec, &resp)
	s.Equal(2, resp.Count)
}

func (s *ServerTestSuite) TestReloadErrors() {
	s.mockBoard.EXPECT().Reload(gomock.Any()).Return(nil, fmt.Errorf("%w: boom", loader.ErrLoadFailed))
	rec := s.do(http.MethodPost, "/api/v1/admin/reload", nil)
	s.Equal(http.StatusBadGateway, rec.Code)

	s.mockBoard.EXPECT().Reload(gomock.Any()).Return(nil, board.ErrDrawInProgress)
	rec = s.do(http.MethodPost, "/api/v1/admin/reload", nil)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ServerTestSuite) TestMetricsEndpoint() {
	rec := s.do(http.MethodGet, "/metrics", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestStopEndsOpenEventStreams() {
	hub := sse.NewHub(nil)
	hub.Start()
	defer hub.Stop()

	server, err := NewServer(&Config{Board: s.mockBoard, Hub: hub})
	s.Require().NoError(err)
	s.mockBoard.EXPECT().GetState(gomock.Any()).Return(s.state, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	serveErr := make(chan error, 1)
	go func() { serveErr <- server.httpServer.Serve(ln) }()

	resp, err := http.Get(fmt.Sprintf("http://%s/api/v1/events", ln.Addr()))
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	// wait for the snapshot so the stream is past its setup
	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadString('\n')
		s.Require().NoError(err)
		if line == "event: "+sse.EventTypeSnapshot+"\n" {
			break
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	s.NoError(server.Stop(ctx))
	s.ErrorIs(<-serveErr, http.ErrServerClosed)

	_, err = io.ReadAll(reader)
	s.NoError(err)
}
