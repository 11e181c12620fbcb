package pages

import (
	"fmt"
	"strings"
	"sync"
)

// InMemoryRepo keeps pages in a map keyed by normalized path
type InMemoryRepo struct {
	mu    sync.RWMutex
	pages map[string]Page
}

func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		pages: make(map[string]Page),
	}
}

// NormalizePath strips surrounding slashes. The root and directory paths map to DefaultPage.
func NormalizePath(path string) string {
	dir := strings.HasSuffix(path, "/")
	path = strings.Trim(path, "/")
	switch {
	case path == "":
		return DefaultPage
	case dir:
		return path + "/" + DefaultPage
	}
	return path
}

func (r *InMemoryRepo) Get(path string) (Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	page, ok := r.pages[NormalizePath(path)]
	if !ok {
		return Page{}, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return page, nil
}

func (r *InMemoryRepo) Create(page Page) error {
	page.Path = NormalizePath(page.Path)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pages[page.Path]; ok {
		return fmt.Errorf("%s: %w", page.Path, ErrExists)
	}
	r.pages[page.Path] = page
	return nil
}

func (r *InMemoryRepo) Update(page Page) error {
	page.Path = NormalizePath(page.Path)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pages[page.Path]; !ok {
		return fmt.Errorf("%s: %w", page.Path, ErrNotFound)
	}
	r.pages[page.Path] = page
	return nil
}
