package pages_test

import (
	"testing"

	"github.com/jrsteele09/go-wiki-client/server/pages"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		"":            pages.DefaultPage,
		"/":           pages.DefaultPage,
		"intro":       "intro",
		"/intro":      "intro",
		"docs/":       "docs/" + pages.DefaultPage,
		"/docs/setup": "docs/setup",
	}
	for in, want := range tests {
		require.Equal(t, want, pages.NormalizePath(in), in)
	}
}

func TestInMemoryRepo(t *testing.T) {
	repo := pages.NewInMemoryRepo()

	_, err := repo.Get("intro")
	require.ErrorIs(t, err, pages.ErrNotFound)
	require.ErrorIs(t, repo.Update(pages.Page{Path: "intro"}), pages.ErrNotFound)

	require.NoError(t, repo.Create(pages.Page{Path: "/intro", Content: "Welcome"}))
	require.ErrorIs(t, repo.Create(pages.Page{Path: "intro"}), pages.ErrExists)

	// A directory path addresses the directory's default page, not the page itself
	require.ErrorIs(t, repo.Update(pages.Page{Path: "intro/", Content: "Index"}), pages.ErrNotFound)
	require.NoError(t, repo.Update(pages.Page{Path: "intro", Content: "Hello"}))

	page, err := repo.Get("intro")
	require.NoError(t, err)
	require.Equal(t, "Hello", page.Content)
}
