// Package session wraps the backend API token in a signed cookie value.
// The token is the only durable client-side state; everything else is
// refetched on every page load.
package session

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// CookieName is the well-known key the session travels under.
const CookieName = "timebank_session"

var ErrInvalid = errors.New("invalid session")

// Session identifies a logged-in member and carries the backend token used
// to authenticate upstream calls.
type Session struct {
	UserID    int64
	Email     string
	FirstName string
	APIToken  string
}

type claims struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	APIToken  string `json:"api_token"`
	jwtlib.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL is the session lifetime, also used as the cookie max-age.
func (m *Manager) TTL() time.Duration { return m.ttl }

func (m *Manager) Issue(s Session) (string, error) {
	c := claims{
		UserID:    s.UserID,
		Email:     s.Email,
		FirstName: s.FirstName,
		APIToken:  s.APIToken,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return token.SignedString(m.secret)
}

func (m *Manager) Parse(value string) (*Session, error) {
	token, err := jwtlib.ParseWithClaims(value, &claims{}, func(t *jwtlib.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalid
	}

	c, ok := token.Claims.(*claims)
	if !ok || c.APIToken == "" {
		return nil, ErrInvalid
	}

	return &Session{
		UserID:    c.UserID,
		Email:     c.Email,
		FirstName: c.FirstName,
		APIToken:  c.APIToken,
	}, nil
}
