// Package session owns authentication state and the per-user namespaced view
// of the storage adapter. Every data-bearing component reaches storage
// through a Manager, never directly.
package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lifekeeper/internal/common"
	"github.com/dmitrijs2005/lifekeeper/internal/logging"
	"github.com/dmitrijs2005/lifekeeper/internal/models"
	"github.com/dmitrijs2005/lifekeeper/internal/storage"
	"github.com/google/uuid"
)

const (
	usersKey       = "users"
	currentUserKey = "currentUserId"
)

// Manager is the session/auth state machine: either anonymous or
// authenticated as exactly one user. It is a plain injected value so tests
// can run several isolated managers against separate stores.
//
// Manager is not safe for concurrent use; the application is a synchronous,
// single-writer REPL.
type Manager struct {
	store   storage.Store
	log     logging.Logger
	users   []models.User
	current *models.User
}

// NewManager loads the registered user list and restores a persisted session
// if its pointer resolves to a known user. A stale or corrupt pointer leaves
// the manager anonymous rather than failing.
func NewManager(ctx context.Context, store storage.Store, log logging.Logger) (*Manager, error) {
	m := &Manager{store: store, log: log}
	if err := m.restore(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) restore(ctx context.Context) error {
	var users []models.User
	if _, err := storage.GetJSON(ctx, m.store, usersKey, &users); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	m.users = users

	var id string
	found, err := storage.GetJSON(ctx, m.store, currentUserKey, &id)
	if err != nil {
		return fmt.Errorf("failed to load session pointer: %w", err)
	}
	if !found {
		return nil
	}

	for i := range m.users {
		if m.users[i].UserID == id {
			u := m.users[i]
			m.current = &u
			return nil
		}
	}

	// Stale pointer: the user list changed underneath us. Stay anonymous.
	m.log.Warn(ctx, "persisted session points to unknown user", "userId", id)
	return nil
}

// Register creates a new account and logs it in. Usernames are unique,
// compared case-sensitively. On a duplicate the stored user list is left
// untouched.
func (m *Manager) Register(ctx context.Context, username, password string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return nil, common.ErrDuplicateUsername
		}
	}

	user := models.User{UserID: uuid.NewString(), Username: username, Password: password}
	updated := append(append([]models.User(nil), m.users...), user)
	if err := storage.SetJSON(ctx, m.store, usersKey, updated); err != nil {
		return nil, err
	}
	m.users = updated

	m.log.Info(ctx, "registered new user", "username", username)

	// Re-validates against the just-written list; must succeed.
	return m.Login(ctx, username, password)
}

// Login authenticates against the stored user list. Both fields are compared
// exactly (case-sensitive, plain text). The session is unchanged on failure.
func (m *Manager) Login(ctx context.Context, username, password string) (*models.User, error) {
	for i := range m.users {
		u := m.users[i]
		if u.Username == username && u.Password == password {
			if err := storage.SetJSON(ctx, m.store, currentUserKey, u.UserID); err != nil {
				return nil, err
			}
			m.current = &u
			m.log.Info(ctx, "logged in", "username", username)
			return &u, nil
		}
	}
	return nil, common.ErrInvalidCredentials
}

// Logout clears the session and removes the persisted pointer. It is
// idempotent and always succeeds when storage does.
func (m *Manager) Logout(ctx context.Context) error {
	m.current = nil
	return m.store.Remove(ctx, currentUserKey)
}

// Current returns the authenticated user, or nil while anonymous.
func (m *Manager) Current() *models.User {
	return m.current
}

// IsAuthenticated reports whether a user is logged in.
func (m *Manager) IsAuthenticated() bool {
	return m.current != nil
}

func (m *Manager) dataKey(kind string) string {
	return kind + "_" + m.current.UserID
}

// GetUserData decodes the current user's list for kind into v. While
// anonymous it reports not-found without touching storage and never errors.
func (m *Manager) GetUserData(ctx context.Context, kind string, v any) (bool, error) {
	if m.current == nil {
		return false, nil
	}
	return storage.GetJSON(ctx, m.store, m.dataKey(kind), v)
}

// SetUserData writes the current user's list for kind. While anonymous the
// write is discarded; this mirrors the observed behavior of the app, and is
// logged so the dropped write is visible in development.
func (m *Manager) SetUserData(ctx context.Context, kind string, v any) error {
	if m.current == nil {
		m.log.Warn(ctx, "ignoring data write without a session", "kind", kind)
		return nil
	}
	return storage.SetJSON(ctx, m.store, m.dataKey(kind), v)
}
