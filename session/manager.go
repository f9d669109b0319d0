package session

import (
	"context"
	"net/http"
	"sync"

	"github.com/casaview/dashboard/model"
	"github.com/casaview/dashboard/state"
	"github.com/shimmeringbee/logwrap"
)

type Status string

const (
	// StatusUnknown is the boot state, before the first verify probe.
	StatusUnknown         Status = "unknown"
	StatusAuthenticated   Status = "authenticated"
	StatusUnauthenticated Status = "unauthenticated"
)

type SessionError string

func (e SessionError) Error() string {
	return string(e)
}

const (
	ErrNotAuthenticated = SessionError("not authenticated")
	ErrNotAdmin         = SessionError("administrator role required")
)

// AuthService is the slice of the remote collaborator the session depends
// on for identity operations.
type AuthService interface {
	Login(ctx context.Context, creds model.Credentials) (model.User, error)
	GoogleLogin(ctx context.Context, token string, profile model.GoogleProfile) (model.User, error)
	Verify(ctx context.Context) (model.User, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, registration model.Registration) (model.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token string, password string) error
}

// AccountService covers the user record operations of the signed in user,
// plus the administrator surface.
type AccountService interface {
	UpdateUser(ctx context.Context, id string, input model.ProfileInput) (model.User, error)
	ChangeUserPassword(ctx context.Context, id string, change model.PasswordChange) error
	DeleteUser(ctx context.Context, id string) error
	AdminListUsers(ctx context.Context) ([]model.User, error)
	AdminSetUserStatus(ctx context.Context, id string, status model.UserStatus) (model.User, error)
}

type CookieSource interface {
	SessionCookie() (*http.Cookie, bool)
}

type Snapshot struct {
	Status  Status
	User    *model.User
	Loading bool
}

// Manager is the single source of truth for who is logged in. It is
// constructed once at startup and passed down explicitly.
//
// The mutex is never held across a remote call; expiry callbacks from the
// transport may re-enter HandleExpiry at any time.
type Manager struct {
	mu      sync.Mutex
	status  Status
	user    *model.User
	loading bool

	auth    AuthService
	account AccountService
	cookies CookieSource
	events  state.EventPublisher
	logger  logwrap.Logger
}

func NewManager(auth AuthService, account AccountService, cookies CookieSource, events state.EventPublisher, l logwrap.Logger) *Manager {
	return &Manager{
		status:  StatusUnknown,
		auth:    auth,
		account: account,
		cookies: cookies,
		events:  events,
		logger:  l,
	}
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{Status: m.status, Loading: m.loading}

	if m.user != nil {
		user := *m.user
		snap.User = &user
	}

	return snap
}

func (m *Manager) Login(ctx context.Context, creds model.Credentials) (model.User, error) {
	if err := creds.Validate(); err != nil {
		return model.User{}, err
	}

	m.setLoading(true)
	defer m.setLoading(false)

	user, err := m.auth.Login(ctx, creds)
	if err != nil {
		return model.User{}, err
	}

	m.storeUser(user)
	m.events.Publish(state.SessionSignedIn{User: user})
	m.logger.LogInfo(ctx, "User signed in.", logwrap.Datum("userId", user.ID))

	return user, nil
}

func (m *Manager) LoginWithGoogle(ctx context.Context, token string, profile model.GoogleProfile) (model.User, error) {
	m.setLoading(true)
	defer m.setLoading(false)

	user, err := m.auth.GoogleLogin(ctx, token, profile)
	if err != nil {
		return model.User{}, err
	}

	m.storeUser(user)
	m.events.Publish(state.SessionSignedIn{User: user})
	m.logger.LogInfo(ctx, "User signed in via federated identity.", logwrap.Datum("userId", user.ID))

	return user, nil
}

// Verify probes the server for an existing cookie session. It is silent:
// any failure leaves the session unauthenticated without raising.
func (m *Manager) Verify(ctx context.Context) bool {
	m.setLoading(true)
	defer m.setLoading(false)

	user, err := m.auth.Verify(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.status = StatusUnauthenticated
		m.user = nil
		return false
	}

	m.status = StatusAuthenticated
	m.user = &user

	return true
}

// Logout fails open: local state is cleared even when the remote
// invalidation fails.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.auth.Logout(ctx); err != nil {
		m.logger.LogWarn(ctx, "Remote logout failed, clearing local session regardless.", logwrap.Err(err))
	}

	m.clear()
	m.events.Publish(state.SessionSignedOut{})
}

// HandleExpiry is wired to the transport's failed-refresh callback.
func (m *Manager) HandleExpiry() {
	m.mu.Lock()
	wasAuthenticated := m.status == StatusAuthenticated
	m.status = StatusUnauthenticated
	m.user = nil
	m.mu.Unlock()

	if wasAuthenticated {
		m.events.Publish(state.SessionExpired{})
	}
}

func (m *Manager) Register(ctx context.Context, registration model.Registration) (model.User, error) {
	if err := registration.Validate(); err != nil {
		return model.User{}, err
	}

	m.setLoading(true)
	defer m.setLoading(false)

	user, err := m.auth.Register(ctx, registration)
	if err != nil {
		return model.User{}, err
	}

	m.storeUser(user)
	m.events.Publish(state.SessionSignedIn{User: user})

	return user, nil
}

func (m *Manager) ForgotPassword(ctx context.Context, email string) error {
	return m.auth.ForgotPassword(ctx, email)
}

func (m *Manager) ResetPassword(ctx context.Context, token string, password string) error {
	return m.auth.ResetPassword(ctx, token, password)
}

func (m *Manager) UpdateProfile(ctx context.Context, input model.ProfileInput) (model.User, error) {
	if err := input.Validate(); err != nil {
		return model.User{}, err
	}

	id, err := m.currentUserId()
	if err != nil {
		return model.User{}, err
	}

	user, err := m.account.UpdateUser(ctx, id, input)
	if err != nil {
		return model.User{}, err
	}

	m.storeUser(user)

	return user, nil
}

func (m *Manager) ChangePassword(ctx context.Context, change model.PasswordChange) error {
	if err := change.Validate(); err != nil {
		return err
	}

	id, err := m.currentUserId()
	if err != nil {
		return err
	}

	return m.account.ChangeUserPassword(ctx, id, change)
}

// DeleteAccount removes the signed in user server side, then clears the
// local session.
func (m *Manager) DeleteAccount(ctx context.Context) error {
	id, err := m.currentUserId()
	if err != nil {
		return err
	}

	if err := m.account.DeleteUser(ctx, id); err != nil {
		return err
	}

	m.clear()
	m.events.Publish(state.SessionSignedOut{})

	return nil
}

func (m *Manager) storeUser(user model.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.status = StatusAuthenticated
	m.user = &user
}

func (m *Manager) clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.status = StatusUnauthenticated
	m.user = nil
}

func (m *Manager) setLoading(loading bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loading = loading
}

func (m *Manager) currentUserId() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StatusAuthenticated || m.user == nil {
		return "", ErrNotAuthenticated
	}

	return m.user.ID, nil
}
