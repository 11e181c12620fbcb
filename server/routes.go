package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jrsteele09/go-wiki-client/router"
)

func (s *Server) initRoutes() {
	r := chi.NewRouter()
	r.Use(s.RecoverMiddleware, s.LoggingMiddleware)

	s.handle(r, http.MethodPost, router.APIUserLogin, s.LoginHandler())
	s.handle(r, http.MethodPost, router.APIPreview, s.PreviewHandler())
	s.handle(r, http.MethodGet, router.APIPage+"*", s.GetPageHandler())

	// Writes need a bearer token from /user/login
	r.Group(func(r chi.Router) {
		r.Use(s.RequireAuth)
		s.handle(r, http.MethodPost, router.APIPage+"*", s.PostPageHandler())
		s.handle(r, http.MethodPut, router.APIPage+"*", s.PutPageHandler())
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, msgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, msgWrongAPIUsage)
	})

	s.router = r
}
