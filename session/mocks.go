package session

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/casaview/dashboard/model"
	"github.com/shimmeringbee/logwrap"
	"github.com/shimmeringbee/logwrap/impl/golog"
	"github.com/stretchr/testify/mock"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, creds model.Credentials) (model.User, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockAuthService) GoogleLogin(ctx context.Context, token string, profile model.GoogleProfile) (model.User, error) {
	args := m.Called(ctx, token, profile)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockAuthService) Verify(ctx context.Context) (model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockAuthService) Register(ctx context.Context, registration model.Registration) (model.User, error) {
	args := m.Called(ctx, registration)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, token string, password string) error {
	args := m.Called(ctx, token, password)
	return args.Error(0)
}

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) UpdateUser(ctx context.Context, id string, input model.ProfileInput) (model.User, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockAccountService) ChangeUserPassword(ctx context.Context, id string, change model.PasswordChange) error {
	args := m.Called(ctx, id, change)
	return args.Error(0)
}

func (m *mockAccountService) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAccountService) AdminListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *mockAccountService) AdminSetUserStatus(ctx context.Context, id string, status model.UserStatus) (model.User, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(model.User), args.Error(1)
}

type mockCookieSource struct {
	mock.Mock
}

func (m *mockCookieSource) SessionCookie() (*http.Cookie, bool) {
	args := m.Called()

	if cookie := args.Get(0); cookie != nil {
		return cookie.(*http.Cookie), args.Bool(1)
	}

	return nil, args.Bool(1)
}

func discardLogger() logwrap.Logger {
	return logwrap.New(golog.Wrap(log.New(io.Discard, "", 0)))
}
