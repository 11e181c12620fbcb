package server

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jrsteele09/go-wiki-client/users"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// TokenCreator issues and verifies the HS256 bearer tokens handed out by /user/login
type TokenCreator struct {
	secret []byte
	expiry time.Duration
}

func NewTokenCreator(secret []byte, expiry time.Duration) *TokenCreator {
	return &TokenCreator{
		secret: secret,
		expiry: expiry,
	}
}

// CreateAccessToken creates a token whose id claim carries the username
func (c *TokenCreator) CreateAccessToken(user *users.User) (string, error) {
	now := NowTimeFunc()
	claims := jwtlib.MapClaims{
		"id":  user.Username,            // Username, read by clients to label the session
		"sub": user.ID,                  // Subject: the stable user id
		"iat": now.Unix(),               // Issued At: the time at which the token was issued
		"exp": now.Add(c.expiry).Unix(), // Expiry: when the token will expire
		"jti": uuid.New().String(),      // Unique token ID
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of raw and returns the username it was issued to.
func (c *TokenCreator) Verify(raw string) (string, error) {
	token, err := jwtlib.Parse(raw, func(t *jwtlib.Token) (any, error) {
		return c.secret, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(NowTimeFunc),
		jwtlib.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}
	username, _ := claims["id"].(string)
	if username == "" {
		return "", fmt.Errorf("%w: missing id claim", ErrTokenInvalid)
	}
	return username, nil
}
