package prizeconfig

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type WatcherTestSuite struct {
	suite.Suite
	dir     string
	path    string
	changes atomic.Int32
	watcher *Watcher
	cancel  context.CancelFunc
}

func (s *WatcherTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.path = filepath.Join(s.dir, "prizes.json")
	s.Require().NoError(os.WriteFile(s.path, []byte(`{"prizes":[]}`), 0o644))
	s.changes.Store(0)

	watcher, err := NewWatcher(&WatcherConfig{
		Path:     s.path,
		Debounce: 20 * time.Millisecond,
		OnChange: func(ctx context.Context) {
			s.changes.Add(1)
		},
	})
	s.Require().NoError(err)
	s.watcher = watcher

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.watcher.Run(ctx)
}

func (s *WatcherTestSuite) TearDownTest() {
	s.cancel()
	s.watcher.Close()
}

func TestWatcherTestSuite(t *testing.T) {
	suite.Run(t, new(WatcherTestSuite))
}

func (s *WatcherTestSuite) TestWriteTriggersChange() {
	s.Require().NoError(os.WriteFile(s.path, []byte(`{"prizes":["A"]}`), 0o644))

	s.Eventually(func() bool {
		return s.changes.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)
}

func (s *WatcherTestSuite) TestOtherFilesIgnored() {
	other := filepath.Join(s.dir, "notes.txt")
	s.Require().NoError(os.WriteFile(other, []byte("hello"), 0o644))

	s.Never(func() bool {
		return s.changes.Load() > 0
	}, 200*time.Millisecond, 20*time.Millisecond)
}

func (s *WatcherTestSuite) TestNewWatcherValidation() {
	_, err := NewWatcher(nil)
	s.Error(err)

	_, err = NewWatcher(&WatcherConfig{Path: s.path})
	s.Error(err)
}
