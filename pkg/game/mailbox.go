package game

import "sync"

// mailbox is the unbounded command queue: any goroutine may push, and the
// tick processor alone drains it, once per tick. A plain mutex-guarded slice is the simplest
// correct implementation of an unbounded mailbox; commands arriving
// mid-tick are simply appended and picked up by the next drain.
type mailbox struct {
	mu      sync.Mutex
	pending []command
}

func newMailbox() *mailbox {
	return &mailbox{}
}

func (m *mailbox) push(c command) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, c)
}

// drain returns every command received since the last drain, in receipt
// order, and clears the queue.
func (m *mailbox) drain() []command {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.pending) == 0 {
		return nil
	}
	out := m.pending
	m.pending = nil
	return out
}
