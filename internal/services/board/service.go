package board

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/prizedraw/internal/common/clock"
	"github.com/KirkDiggler/prizedraw/internal/common/uuid"
	"github.com/KirkDiggler/prizedraw/internal/ledger"
	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/picker"
	"github.com/KirkDiggler/prizedraw/internal/pool"
	"github.com/KirkDiggler/prizedraw/internal/services/loader"
	"github.com/KirkDiggler/prizedraw/internal/services/messaging"
)

// service implements the Service interface. Every field below mu is
// guarded by it, including from scheduler callbacks.
type service struct {
	loader    loader.Service
	messages  messaging.Service
	picker    picker.Picker
	clock     clock.Clock
	scheduler clock.Scheduler
	uuid      uuid.UUID
	publisher Publisher
	timing    Timing
	winTone   messaging.MessageTone
	logger    *slog.Logger

	mu        sync.Mutex
	pool      *pool.Pool
	ledger    *ledger.Ledger
	loaded    bool
	loadError string
	phase     models.DrawPhase
	tick      int
	current   models.CurrentPrize
	modal     models.Modal
	notices   []models.Notice
	draw      *activeDraw

	// generation changes whenever the pool lifetime ends (reset or load),
	// so late callbacks from an earlier draw can tell they are stale
	generation int
}

// activeDraw is the draw currently animating
type activeDraw struct {
	id         string
	generation int
	winner     models.Prize
	candidates []models.Prize
	ticker     clock.Timer
	done       chan struct{}
}

// New creates a new board service with an empty, unloaded pool
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Loader == nil {
		return nil, ErrNilLoader
	}

	if cfg.Messages == nil {
		return nil, ErrNilMessages
	}

	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}

	if !cfg.WinTone.IsValid() {
		return nil, ErrInvalidWinTone
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	prizes, err := pool.New(nil)
	if err != nil {
		return nil, err
	}

	return &service{
		loader:    cfg.Loader,
		messages:  cfg.Messages,
		picker:    cfg.Picker,
		clock:     cfg.Clock,
		scheduler: cfg.Scheduler,
		uuid:      cfg.UUID,
		publisher: cfg.Publisher,
		timing:    cfg.Timing.withDefaults(),
		winTone:   cfg.WinTone,
		logger:    logger.With("component", "board"),
		pool:      prizes,
		ledger:    ledger.New(cfg.TimeLayout),
		phase:     models.DrawPhaseIdle,
		current:   models.CurrentPrize{Emphasis: models.EmphasisIdle},
	}, nil
}

// Load installs the prize configuration at startup
func (s *service) Load(ctx context.Context) (*LoadOutput, error) {
	return s.load(ctx, false)
}

// Reload replaces the pool with a fresh copy of the configuration
func (s *service) Reload(ctx context.Context) (*LoadOutput, error) {
	return s.load(ctx, true)
}

func (s *service) load(ctx context.Context, reload bool) (*LoadOutput, error) {
	s.mu.Lock()
	if !s.phase.IsIdle() {
		s.mu.Unlock()
		return nil, ErrDrawInProgress
	}
	s.mu.Unlock()

	// Fetching may hit the network, so it happens without the lock
	output, err := s.loader.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.phase.IsIdle() {
		return nil, ErrDrawInProgress
	}

	if err == nil {
		if replaceErr := s.pool.Replace(output.Prizes); replaceErr != nil {
			err = fmt.Errorf("%w: %w", loader.ErrLoadFailed, replaceErr)
		}
	}

	if err != nil {
		s.logger.Error("Failed to load prize configuration",
			"source", s.loader.Describe(),
			"reload", reload,
			"error", err)

		if !reload || !s.loaded {
			_ = s.pool.Replace(nil)
			s.ledger.Clear()
			s.loaded = false
			s.resetDisplayLocked()
			s.generation++
		}
		s.loadError = err.Error()
		s.publishLocked(models.EventBoardLoadFailed, "", nil, nil)
		s.showNoticeLocked(models.NoticeLoadFailed, s.loader.Describe())
		return nil, err
	}

	s.ledger.Clear()
	s.loaded = true
	s.loadError = ""
	s.resetDisplayLocked()
	s.generation++

	s.logger.Info("Prize configuration loaded",
		"source", s.loader.Describe(),
		"origin", output.Origin,
		"prizes", s.pool.Len(),
		"reload", reload)

	s.publishLocked(models.EventBoardLoaded, "", nil, nil)

	return &LoadOutput{
		Count:  s.pool.Len(),
		Origin: output.Origin,
	}, nil
}

// CloseModal dismisses the win modal
func (s *service) CloseModal(ctx context.Context) (*CloseModalOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.modal.Open {
		return &CloseModalOutput{}, nil
	}

	s.modal = models.Modal{}
	s.publishLocked(models.EventModalClosed, "", nil, nil)

	return &CloseModalOutput{Closed: true}, nil
}

// GetState returns a snapshot of the board
func (s *service) GetState(ctx context.Context) (*models.BoardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked(), nil
}

// resetDisplayLocked puts the current prize and modal back to their idle state
func (s *service) resetDisplayLocked() {
	s.current = models.CurrentPrize{Emphasis: models.EmphasisIdle}
	s.modal = models.Modal{}
	s.tick = 0
}

func (s *service) snapshotLocked() *models.BoardState {
	notices := make([]models.Notice, len(s.notices))
	copy(notices, s.notices)

	return &models.BoardState{
		Loaded:     s.loaded,
		LoadError:  s.loadError,
		Prizes:     s.pool.Records(),
		History:    s.ledger.Entries(),
		Phase:      s.phase,
		Tick:       s.tick,
		TotalTicks: s.timing.TickCount,
		Current:    s.current,
		Modal:      s.modal,
		Notices:    notices,
	}
}

func (s *service) publishLocked(eventType models.EventType, drawID string, notice *models.Notice, celebration *models.Celebration) {
	s.publisher.Publish(models.Event{
		Type:        eventType,
		At:          s.clock.Now(),
		DrawID:      drawID,
		State:       s.snapshotLocked(),
		Notice:      notice,
		Celebration: celebration,
	})
}

// showNoticeLocked adds a notice and schedules its dismissal
func (s *service) showNoticeLocked(kind models.NoticeKind, detail string) {
	message := string(kind)
	output, err := s.messages.GetNoticeMessage(context.Background(), &messaging.GetNoticeMessageInput{
		Kind:   kind,
		Detail: detail,
	})
	if err != nil {
		s.logger.Warn("Failed to get notice message", "kind", kind, "error", err)
	} else {
		message = output.Message
	}

	now := s.clock.Now()
	notice := models.Notice{
		ID:        s.uuid.NewUUID(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(s.timing.NoticeDuration),
		Fade:      s.timing.NoticeFade,
	}
	s.notices = append(s.notices, notice)
	s.publishLocked(models.EventNoticeShown, "", &notice, nil)

	s.scheduler.After(s.timing.NoticeDuration, func() {
		s.dismissNotice(notice.ID)
	})
}

func (s *service) dismissNotice(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, notice := range s.notices {
		if notice.ID != id {
			continue
		}
		s.notices = append(s.notices[:i], s.notices[i+1:]...)
		s.publishLocked(models.EventNoticeDismissed, "", &notice, nil)
		return
	}
}
