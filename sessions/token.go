package sessions

import (
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-wiki-client/internal/errors"
)

// FromToken builds a Session from a token returned by the login endpoint.
// The signature is not verified: only the backend can do that. The user is read
// from the "id" claim (falling back to "sub") and the expiry from "exp".
func FromToken(rawToken string) (Session, error) {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return Session{}, errors.Wrapf(errors.ErrInvalidToken, "empty token")
	}

	token, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return Session{}, errors.Wrapf(errors.ErrInvalidToken, "parse token: %v", err)
	}

	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return Session{}, errors.Wrapf(errors.ErrInvalidToken, "error extracting claims")
	}

	user, _ := claims["id"].(string)
	if user == "" {
		user, _ = claims["sub"].(string)
	}

	var expiresAt time.Time
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt = time.Unix(int64(exp), 0)
	}

	return Session{
		User:      user,
		Token:     rawToken,
		ExpiresAt: expiresAt,
	}, nil
}
