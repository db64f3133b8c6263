package session

import (
	"encoding/gob"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	sessionName = "dealerpost_session"
	userKey     = "user"
)

// Manager manages user sessions
type Manager struct {
	store sessions.Store
}

// NewManager creates a cookie backed session manager
func NewManager(secret string, secure bool) *Manager {
	gob.Register(&UserData{})
	gob.Register(Notification{})

	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		store: store,
	}
}

// CreateSession creates a new session with user data
func (m *Manager) CreateSession(c echo.Context, user *UserData) error {
	// A cookie signed with another secret still yields a fresh session.
	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil && session == nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	session.Values[userKey] = user

	if err := session.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves user data from the session
func (m *Manager) GetSession(c echo.Context) (*UserData, error) {
	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	userData, ok := session.Values[userKey].(*UserData)
	if !ok || userData == nil {
		return nil, fmt.Errorf("no user data in session")
	}

	return userData, nil
}

// DestroySession clears the session
func (m *Manager) DestroySession(c echo.Context) error {
	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil && session == nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	session.Options.MaxAge = -1
	delete(session.Values, userKey)

	if err := session.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	return nil
}

// AddFlash queues a notification for the next page.
func (m *Manager) AddFlash(c echo.Context, n Notification) error {
	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil && session == nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	session.AddFlash(n)

	if err := session.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Flashes pops every queued notification.
func (m *Manager) Flashes(c echo.Context) ([]Notification, error) {
	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil, nil
	}

	out := make([]Notification, 0, len(raw))
	for _, f := range raw {
		if n, ok := f.(Notification); ok {
			out = append(out, n)
		}
	}

	if err := session.Save(c.Request(), c.Response()); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return out, nil
}
