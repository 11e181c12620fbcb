package server

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/jrsteele09/go-wiki-client/server/pages"
	"github.com/jrsteele09/go-wiki-client/users"
	"github.com/rs/zerolog/log"
)

const homePageContent = `# Welcome

This wiki is served by the local development backend.
Log in and use PUT on /api/page/ to edit this page.
`

// InitialiseSystem creates the admin user and the home page when they are missing.
// Returns the generated password on first creation (empty string if already exists
// or the password was configured).
func (s *Server) InitialiseSystem(ctx context.Context) (generatedPassword string, err error) {
	log.Debug().Msg("Bootstrap: Checking system configuration...")

	generatedPassword, err = s.bootstrapAdmin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to bootstrap admin: %w", err)
	}
	if err := s.bootstrapHomePage(ctx); err != nil {
		return "", fmt.Errorf("failed to bootstrap home page: %w", err)
	}

	if generatedPassword != "" {
		log.Info().
			Str("username", s.config.GetAdminUsername()).
			Str("password", generatedPassword).
			Msg("Bootstrap complete: admin created. SAVE THIS PASSWORD - it will not be displayed again!")
	}
	return generatedPassword, nil
}

func (s *Server) bootstrapAdmin(_ context.Context) (string, error) {
	username := s.config.GetAdminUsername()
	if _, err := s.users.GetByUsername(username); err == nil {
		return "", nil
	} else if !errors.Is(err, users.ErrNotFound) {
		return "", err
	}

	password := s.config.GetAdminPassword()
	generated := ""
	if password == "" {
		var err error
		if password, err = generateSecurePassword(); err != nil {
			return "", err
		}
		generated = password
	} else if err := users.ValidatePasswordStrength(password); err != nil {
		log.Warn().Err(err).Str("username", username).Msg("Weak admin password")
	}

	hash, err := users.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return generated, s.users.Upsert(&users.User{
		Username:     username,
		PasswordHash: hash,
		DisplayName:  "Administrator",
	})
}

func (s *Server) bootstrapHomePage(_ context.Context) error {
	err := s.pages.Create(pages.Page{
		Path:      pages.DefaultPage,
		Title:     "Welcome",
		Content:   homePageContent,
		Author:    s.config.GetAdminUsername(),
		UpdatedAt: NowTimeFunc(),
	})
	if errors.Is(err, pages.ErrExists) {
		return nil
	}
	return err
}

// generateSecurePassword creates a random password that passes ValidatePasswordStrength
func generateSecurePassword() (string, error) {
	b := make([]byte, 18)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}
	return "Wk1" + base64.RawURLEncoding.EncodeToString(b), nil
}
