package discord

import (
	"sync"
)

// confirmations tracks reset prompts waiting on a yes/no click, one per user
type confirmations struct {
	mu      sync.Mutex
	pending map[string]chan bool
}

func newConfirmations() *confirmations {
	return &confirmations{
		pending: make(map[string]chan bool),
	}
}

// open starts waiting for userID's answer. A prompt already open for the
// same user is answered with false. The returned func must be called once
// the caller stops waiting.
func (c *confirmations) open(userID string) (<-chan bool, func()) {
	answer := make(chan bool, 1)

	c.mu.Lock()
	if previous, ok := c.pending[userID]; ok {
		previous <- false
	}
	c.pending[userID] = answer
	c.mu.Unlock()

	return answer, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.pending[userID] == answer {
			delete(c.pending, userID)
		}
	}
}

// answer delivers ok to userID's open prompt and reports whether there was one
func (c *confirmations) answer(userID string, ok bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	answer, found := c.pending[userID]
	if !found {
		return false
	}
	delete(c.pending, userID)
	answer <- ok
	return true
}
