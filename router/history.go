package router

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Navigator changes the application's current route
type Navigator interface {
	Push(path string)
}

// NavigatorFunc adapts a function to a Navigator
type NavigatorFunc func(path string)

func (f NavigatorFunc) Push(path string) { f(path) }

var _ Navigator = (*History)(nil)

// History is an in-memory Navigator recording every route pushed onto it.
type History struct {
	mu      sync.RWMutex
	entries []string
	onPush  []func(path string)
}

// NewHistory creates a history starting at start
func NewHistory(start string) *History {
	if start == "" {
		start = RouteHome
	}
	return &History{entries: []string{start}}
}

func (h *History) Push(path string) {
	h.mu.Lock()
	h.entries = append(h.entries, path)
	listeners := append([]func(string){}, h.onPush...)
	h.mu.Unlock()

	log.Debug().Str("route", path).Msg("Navigate")
	for _, fn := range listeners {
		fn(path)
	}
}

// Current returns the route on top of the history
func (h *History) Current() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.entries[len(h.entries)-1]
}

// Entries returns a copy of every route visited, oldest first
func (h *History) Entries() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]string(nil), h.entries...)
}

// Pushes counts how many times path was navigated to
func (h *History) Pushes(path string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	count := 0
	for _, e := range h.entries[1:] {
		if e == path {
			count++
		}
	}
	return count
}

// OnPush registers fn to be called after each navigation
func (h *History) OnPush(fn func(path string)) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onPush = append(h.onPush, fn)
}
