// Package store holds the in-process state containers at the core of
// the platform: the session/auth store and the try-on store. Both are
// explicit instances injected where needed rather than package-level
// globals, so tests construct isolated stores. All state is volatile
// and reset on process restart.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/iliyamo/virtual-tryon-platform/internal/backend"
	"github.com/iliyamo/virtual-tryon-platform/internal/model"
)

// ErrNotAuthenticated is returned by operations that require a logged-in
// user when none is present. Handlers translate it into HTTP 401.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthSnapshot is a consistent, fully-formed view of the session state.
// Readers never observe IsAuthenticated true with a nil User, nor a
// half-updated User/Tenant pair. User and Tenant are copies; mutating
// them does not affect the store.
type AuthSnapshot struct {
	User            *model.User
	Tenant          *model.Tenant
	IsAuthenticated bool
	IsLoading       bool
	LastError       error
}

// AuthStore is the single source of truth for "who is logged in". It
// owns the User/Tenant pair for the lifetime of the authenticated
// session; everything else references the user by id only.
//
// Login state transitions are serialized by the mutex. Each Login call
// takes a generation number at issue time; the number is compared again
// at completion so a stale backend response can never overwrite the
// result of a newer call. Logout does not bump the generation, which
// gives the documented behavior that a login resolving after a logout
// still wins (last completion wins, no cancellation).
type AuthStore struct {
	mu      sync.RWMutex
	backend backend.AuthBackend

	user          *model.User
	tenant        *model.Tenant
	authenticated bool
	loading       bool
	lastErr       error
	loginGen      uint64
}

// NewAuthStore returns an empty, unauthenticated store backed by the
// given authentication collaborator.
func NewAuthStore(b backend.AuthBackend) *AuthStore {
	return &AuthStore{backend: b}
}

// Login resolves the credentials through the authentication backend and
// atomically installs the resulting identity. The loading flag is set
// for the duration of the backend call and cleared on every outcome;
// backend failures are recorded in LastError and leave the store
// unauthenticated. A call superseded by a newer Login discards its
// result and returns nil.
func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = nil
	s.loginGen++
	gen := s.loginGen
	s.mu.Unlock()

	user, tenant, err := s.backend.Authenticate(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.loginGen {
		// A newer Login is in flight or already resolved; its
		// completion owns the loading flag and the identity.
		return nil
	}
	s.loading = false
	if err != nil {
		s.lastErr = err
		return err
	}
	s.user = &user
	s.tenant = &tenant
	s.authenticated = true
	return nil
}

// Logout clears the identity synchronously. It does not wait for or
// cancel an in-flight Login; the UI-facing authenticated flag reflects
// the cleared state immediately, and an eventual login completion is
// free to re-authenticate. Calling Logout twice is the same as once.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.tenant = nil
	s.authenticated = false
}

// UpdateUser merges the supplied fields into the current user,
// replacing the user value atomically, and returns a copy of the
// merged result. Fields left nil in the update are untouched; the
// tenant is never affected. Returns ErrNotAuthenticated when no user
// is logged in. Callers use the returned copy rather than re-reading
// the store, which a concurrent logout may have cleared by then.
func (s *AuthStore) UpdateUser(update model.UserUpdate) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return model.User{}, ErrNotAuthenticated
	}
	u := *s.user
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Avatar != nil {
		u.Avatar = *update.Avatar
	}
	if update.Preferences != nil {
		u.Preferences = *update.Preferences
	}
	if update.Measurements != nil {
		m := *update.Measurements
		u.Measurements = &m
	}
	s.user = &u

	out := u
	if u.Measurements != nil {
		m := *u.Measurements
		out.Measurements = &m
	}
	return out, nil
}

// Snapshot returns a consistent copy of the whole session state.
func (s *AuthStore) Snapshot() AuthSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := AuthSnapshot{
		IsAuthenticated: s.authenticated,
		IsLoading:       s.loading,
		LastError:       s.lastErr,
	}
	if s.user != nil {
		u := *s.user
		if s.user.Measurements != nil {
			m := *s.user.Measurements
			u.Measurements = &m
		}
		snap.User = &u
	}
	if s.tenant != nil {
		t := *s.tenant
		snap.Tenant = &t
	}
	return snap
}

// IsAuthenticated reports whether a user is currently logged in. Held
// in lock-step with the user: true if and only if a user is present.
func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// CurrentUserID returns the logged-in user's id, or "" when logged out.
func (s *AuthStore) CurrentUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.ID
}
