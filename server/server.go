package server

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jrsteele09/go-wiki-client/internal/config"
	"github.com/jrsteele09/go-wiki-client/internal/ui"
	"github.com/jrsteele09/go-wiki-client/server/pages"
	"github.com/jrsteele09/go-wiki-client/users"
	"github.com/rs/zerolog/log"
)

// Server is a small stand-in for the wiki backend: token login plus the page API.
type Server struct {
	env    string // Environment (e.g., "DEV", "PROD")
	router chi.Router
	routes []string
	config config.ServerConfig
	users  users.UserRepo
	pages  pages.Repo
	tokens *TokenCreator
}

// Config is what the server reads from the environment
type Config interface {
	config.EnvConfig
	config.ServerConfig
}

func New(cfg Config, userRepo users.UserRepo, pageRepo pages.Repo) (*Server, error) {
	secret := []byte(cfg.GetTokenSecret())
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("[Server New] failed to generate token secret: %w", err)
		}
		log.Warn().Msg("No token secret configured, tokens will not survive a restart")
	}

	s := &Server{
		env:    cfg.GetEnv(),
		config: cfg,
		users:  userRepo,
		pages:  pageRepo,
		tokens: NewTokenCreator(secret, cfg.GetTokenExpiry()),
	}

	// Bootstrap: ensure the admin account and the wiki home page exist
	if _, err := s.InitialiseSystem(context.Background()); err != nil {
		return nil, fmt.Errorf("[Server New] Failed to initialise the system: %w", err)
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Tokens exposes the token issuer, mainly so tests can mint tokens.
func (s *Server) Tokens() *TokenCreator {
	return s.tokens
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		log.Info().Msg(route)
	}
}

func (s *Server) handle(r chi.Router, method, pattern string, h http.HandlerFunc) {
	s.routes = append(s.routes, fmt.Sprintf("[%s] %s", ui.Colorize(ui.MethodColors[method], " "+method, 8), pattern))
	r.Method(method, pattern, h)
}
