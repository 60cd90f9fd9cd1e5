// Package session implements server-side sessions delivered as a signed
// cookie. The cookie value is a short JWT carrying only the session ID and
// the user ID; the authoritative session record lives in an in-process TTL
// cache, so sessions can be revoked on logout regardless of the token's
// own lifetime. Single-instance deployment: no distributed session sharing.
package session

import (
	"fmt"
	"time"

	"github.com/campaignforge/campaignforge-go/internal/domain"
	"github.com/campaignforge/campaignforge-go/internal/infra/cache"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the session cookie used by the SPA.
const CookieName = "cf_session"

// Manager issues, validates and revokes sessions.
type Manager struct {
	// store maps session ID -> user ID. Expiry is handled by the cache TTL.
	store  *cache.InMemory[string]
	secret []byte
	ttl    time.Duration
}

// NewManager creates a session manager with the given signing secret and
// session lifetime.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		store:  cache.New[string](ttl),
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the session lifetime, used for the cookie Max-Age.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

type sessionClaims struct {
	Sub string `json:"sub"`
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

// Issue creates a new server-side session for userID and returns the
// signed cookie value.
func (m *Manager) Issue(userID string) (string, error) {
	sid := uuid.New().String()
	now := time.Now()

	claims := sessionClaims{
		Sub: userID,
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			Issuer:    "campaignforge-api",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	m.store.Set(sid, userID)
	return token, nil
}

// Validate parses the cookie value and checks the session is still live on
// the server. Returns the authenticated user ID.
func (m *Manager) Validate(token string) (string, error) {
	claims, err := m.parse(token)
	if err != nil {
		return "", err
	}

	userID, ok := m.store.Get(claims.SID)
	if !ok || userID != claims.Sub {
		return "", &domain.ErrUnauthorized{Message: "session expired or revoked"}
	}
	return userID, nil
}

// Revoke drops the server-side session. The cookie token becomes useless
// even though its signature is still valid.
func (m *Manager) Revoke(token string) {
	if claims, err := m.parse(token); err == nil {
		m.store.Delete(claims.SID)
	}
}

func (m *Manager) parse(token string) (*sessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, &domain.ErrUnauthorized{Message: "invalid session token"}
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return nil, &domain.ErrUnauthorized{Message: "invalid session token"}
	}
	return claims, nil
}
