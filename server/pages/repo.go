package pages

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("page not found")
	ErrExists   = errors.New("page already exists")
)

// DefaultPage is the page served for the wiki root and for directory paths
const DefaultPage = "_default"

type Page struct {
	Path      string
	Title     string
	Content   string // Markdown source
	Author    string
	UpdatedAt time.Time
}

type Repo interface {
	Get(path string) (Page, error)
	Create(page Page) error
	Update(page Page) error
}
