package notifications

import (
	"sync"

	"github.com/rs/zerolog/log"
)

var _ Sink = (*Board)(nil)

// Board keeps the notification currently on display and fans commits out to subscribers.
// A new commit replaces whatever was showing.
type Board struct {
	mu          sync.Mutex
	current     *Notification
	subscribers []func(Notification)
}

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) Commit(n Notification) {
	b.mu.Lock()
	b.current = &n
	subscribers := append([]func(Notification){}, b.subscribers...)
	b.mu.Unlock()

	log.Debug().Str("severity", n.Severity.String()).Str("message", n.Message).Msg("Notification committed")

	for _, fn := range subscribers {
		fn(n)
	}
}

// Current returns the notification on display, if any
func (b *Board) Current() (Notification, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return Notification{}, false
	}
	return *b.current, true
}

// Dismiss removes and returns the notification on display
func (b *Board) Dismiss() (Notification, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return Notification{}, false
	}
	n := *b.current
	b.current = nil
	return n, true
}

// Subscribe registers fn to be called, outside the board's lock, for every commit
func (b *Board) Subscribe(fn func(Notification)) {
	if fn == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}
