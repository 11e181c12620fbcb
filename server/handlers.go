package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jrsteele09/go-wiki-client/server/pages"
	"github.com/rs/zerolog/log"
)

const (
	msgWrongAPIUsage   = "Wrong API usage."
	msgBadCredentials  = "Incorrect Username / Password"
	msgUnauthorized    = "Unauthorized"
	msgTokenExpired    = "Token expired, please log in again."
	msgNotFound        = "Not found"
	msgNotFoundUsePost = "Not found, use POST to create."
	msgExistsUsePut    = "Page already exists, use PUT to edit."
	msgReadOnly        = "Your account may not edit pages."
	msgCreated         = "Created page."
	msgUpdated         = "Updated page."
)

type apiRequest struct {
	Path    string `json:"path,omitempty"`
	Content string `json:"content,omitempty"`
}

type apiResponse struct {
	Message string `json:"message"`
}

type pageResponse struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// LoginHandler exchanges a username and password for a bearer token
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
			writeMessage(w, http.StatusBadRequest, msgWrongAPIUsage)
			return
		}

		user, err := s.users.GetByUsername(req.Username)
		if err != nil || !user.Authenticate(req.Password) {
			log.Info().Str("username", req.Username).Msg("Failed login")
			writeMessage(w, http.StatusUnauthorized, msgBadCredentials)
			return
		}

		token, err := s.tokens.CreateAccessToken(user)
		if err != nil {
			log.Err(err).Str("username", req.Username).Msg("Failed to issue token")
			writeMessage(w, http.StatusInternalServerError, err.Error())
			return
		}
		if err := s.users.SetLastLogin(user.Username); err != nil {
			log.Warn().Err(err).Str("username", user.Username).Msg("Failed to record login")
		}

		writeJSON(w, http.StatusOK, loginResponse{Token: token})
	}
}

// GetPageHandler serves a page rendered to HTML, or as markdown with ?format=no-render
func (s *Server) GetPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := s.pages.Get(chi.URLParam(r, "*"))
		if err != nil {
			writePageError(w, err, msgNotFound)
			return
		}

		if r.URL.Query().Get("format") == "no-render" {
			writeJSON(w, http.StatusOK, pageResponse{Title: page.Title, Content: page.Content})
			return
		}

		html, err := renderPage(page.Content)
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, pageResponse{Title: page.Title, Content: html})
	}
}

// PostPageHandler creates a page. An existing page must be edited with PUT.
func (s *Server) PostPageHandler() http.HandlerFunc {
	return s.savePage(msgCreated, func(page pages.Page) error {
		return s.pages.Create(page)
	})
}

// PutPageHandler replaces an existing page. A new page must be created with POST.
func (s *Server) PutPageHandler() http.HandlerFunc {
	return s.savePage(msgUpdated, func(page pages.Page) error {
		return s.pages.Update(page)
	})
}

func (s *Server) savePage(done string, save func(pages.Page) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			writeMessage(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		if !user.CanWrite() {
			writeMessage(w, http.StatusForbidden, msgReadOnly)
			return
		}

		var req apiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, msgWrongAPIUsage)
			return
		}

		path := pages.NormalizePath(chi.URLParam(r, "*"))
		page := pages.Page{
			Path:      path,
			Title:     pageTitle(path, req.Content),
			Content:   req.Content,
			Author:    user.Username,
			UpdatedAt: NowTimeFunc(),
		}
		if err := save(page); err != nil {
			writePageError(w, err, msgNotFoundUsePost)
			return
		}

		log.Info().Str("path", path).Str("author", user.Username).Msg(done)
		writeJSON(w, http.StatusOK, apiResponse{Message: done})
	}
}

// PreviewHandler renders markdown without saving it
func (s *Server) PreviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req apiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, msgWrongAPIUsage)
			return
		}
		html, err := renderPage(req.Content)
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, pageResponse{Content: html})
	}
}

func writePageError(w http.ResponseWriter, err error, notFound string) {
	switch {
	case errors.Is(err, pages.ErrNotFound):
		writeMessage(w, http.StatusNotFound, notFound)
	case errors.Is(err, pages.ErrExists):
		writeMessage(w, http.StatusMethodNotAllowed, msgExistsUsePut)
	default:
		writeMessage(w, http.StatusInternalServerError, err.Error())
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiResponse{Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
