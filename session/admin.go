package session

import (
	"context"

	"github.com/casaview/dashboard/model"
)

// ListUsers is the administrator directory view. The admin check here only
// gates the client side call; the server enforces the real authorisation.
func (m *Manager) ListUsers(ctx context.Context) ([]model.User, error) {
	if err := m.requireAdmin(); err != nil {
		return nil, err
	}

	return m.account.AdminListUsers(ctx)
}

func (m *Manager) SetUserStatus(ctx context.Context, id string, status model.UserStatus) (model.User, error) {
	if err := m.requireAdmin(); err != nil {
		return model.User{}, err
	}

	return m.account.AdminSetUserStatus(ctx, id, status)
}

func (m *Manager) requireAdmin() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StatusAuthenticated || m.user == nil {
		return ErrNotAuthenticated
	}

	if !m.user.IsAdmin {
		return ErrNotAdmin
	}

	return nil
}
