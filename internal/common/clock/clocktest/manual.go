// Package clocktest provides a clock whose time only moves when a test says so.
package clocktest

import (
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/prizedraw/internal/common/clock"
)

// Manual implements clock.Clock and clock.Scheduler. Scheduled callbacks run
// synchronously on the goroutine calling Advance, in due-time order.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   int
	tasks []*task
}

type task struct {
	owner    *Manual
	due      time.Time
	seq      int
	interval time.Duration
	fn       func()
	stopped  bool
	fired    bool
}

var (
	_ clock.Clock     = (*Manual)(nil)
	_ clock.Scheduler = (*Manual)(nil)
)

// New creates a manual clock starting at start
func New(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the manual clock's current time
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// After schedules fn to run once d after the current manual time
func (m *Manual) After(d time.Duration, fn func()) clock.Timer {
	return m.schedule(d, 0, fn)
}

// Every schedules fn to run every d until stopped
func (m *Manual) Every(d time.Duration, fn func()) clock.Timer {
	if d <= 0 {
		d = time.Nanosecond
	}
	return m.schedule(d, d, fn)
}

func (m *Manual) schedule(d, interval time.Duration, fn func()) *task {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &task{owner: m, interval: interval, fn: fn}
	m.push(t, m.now.Add(d))
	return t
}

// push must be called with m.mu held
func (m *Manual) push(t *task, due time.Time) {
	m.seq++
	t.due = due
	t.seq = m.seq
	m.tasks = append(m.tasks, t)
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due.Equal(m.tasks[j].due) {
			return m.tasks[i].seq < m.tasks[j].seq
		}
		return m.tasks[i].due.Before(m.tasks[j].due)
	})
}

// Advance moves time forward by d, running every callback that falls due on
// the way. Callbacks scheduled by other callbacks run too if they fall inside
// the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		if len(m.tasks) == 0 || m.tasks[0].due.After(target) {
			m.now = target
			m.mu.Unlock()
			return
		}
		next := m.tasks[0]
		m.tasks = m.tasks[1:]
		m.now = next.due
		if next.interval > 0 {
			m.push(next, next.due.Add(next.interval))
		} else {
			next.fired = true
		}
		m.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of callbacks still scheduled
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Stop removes the task from its clock
func (t *task) Stop() bool {
	m := t.owner
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	for i, other := range m.tasks {
		if other == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			break
		}
	}
	return true
}
