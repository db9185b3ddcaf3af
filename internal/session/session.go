// Package session keeps the admin flag and flash messages in a signed cookie.
//
// The cookie carries an HS256 JWT signed with the application secret key.
// A missing, expired or tampered cookie yields an empty anonymous session.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextKey is the gin context key the current *Session is stored under
const ContextKey = "session"

// Flash categories
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashInfo    = "info"
)

// Flash is a one-shot notification shown on the next rendered page
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Session is the per-request authentication context
type Session struct {
	admin   bool
	flashes []Flash
	dirty   bool
}

// IsAdmin reports whether the client logged in with the admin password
func (s *Session) IsAdmin() bool {
	return s != nil && s.admin
}

// SetAdmin marks the session as authenticated
func (s *Session) SetAdmin() {
	s.admin = true
	s.dirty = true
}

// Clear drops everything stored in the session
func (s *Session) Clear() {
	s.admin = false
	s.flashes = nil
	s.dirty = true
}

// AddFlash queues a notification for the next page
func (s *Session) AddFlash(category, message string) {
	s.flashes = append(s.flashes, Flash{Category: category, Message: message})
	s.dirty = true
}

// PopFlashes returns and removes all queued notifications
func (s *Session) PopFlashes() []Flash {
	flashes := s.flashes
	if len(flashes) > 0 {
		s.flashes = nil
		s.dirty = true
	}
	return flashes
}

// Modified reports whether the session must be written back
func (s *Session) Modified() bool {
	return s.dirty
}

type claims struct {
	jwt.RegisteredClaims
	Admin   bool    `json:"adm,omitempty"`
	Flashes []Flash `json:"fl,omitempty"`
}

// Manager encodes sessions into cookies and back
type Manager struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
	now        func() time.Time
}

// NewManager creates a session manager
func NewManager(secret, cookieName string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		secret:     []byte(secret),
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
		now:        time.Now,
	}
}

// Load reads the session from the request cookie
func (m *Manager) Load(r *http.Request) *Session {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return &Session{}
	}
	s, err := m.Decode(cookie.Value)
	if err != nil {
		return &Session{}
	}
	return s
}

// Save writes the session cookie if the session changed during the request.
// Every save pushes the expiry ttl into the future.
func (m *Manager) Save(w http.ResponseWriter, s *Session) error {
	if s == nil || !s.dirty {
		return nil
	}
	if !s.admin && len(s.flashes) == 0 {
		http.SetCookie(w, &http.Cookie{
			Name:     m.cookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   m.secure,
			SameSite: http.SameSiteLaxMode,
		})
		s.dirty = false
		return nil
	}

	token, err := m.Encode(s)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  m.now().Add(m.ttl),
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	s.dirty = false
	return nil
}

// Encode signs the session into a token
func (m *Manager) Encode(s *Session) (string, error) {
	now := m.now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Admin:   s.admin,
		Flashes: s.flashes,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

// Decode verifies a token and returns the session it carries
func (m *Manager) Decode(token string) (*Session, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("verify session: %w", err)
	}
	return &Session{admin: c.Admin, flashes: c.Flashes}, nil
}

// FromContext returns the session the middleware attached, or an empty one
func FromContext(c *gin.Context) *Session {
	if v, ok := c.Get(ContextKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	s := &Session{}
	c.Set(ContextKey, s)
	return s
}
