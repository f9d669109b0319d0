package api

import (
	"context"
	"net/http"

	"github.com/casaview/dashboard/model"
)

func (c *Client) Login(ctx context.Context, creds model.Credentials) (model.User, error) {
	var user model.User

	if err := c.call(ctx, http.MethodPost, "/auth/login", nil, creds, &user); err != nil {
		return model.User{}, err
	}

	return user, nil
}

type googleLoginRequest struct {
	Token   string              `json:"token"`
	Profile model.GoogleProfile `json:"profile"`
}

func (c *Client) GoogleLogin(ctx context.Context, token string, profile model.GoogleProfile) (model.User, error) {
	var user model.User

	if err := c.call(ctx, http.MethodPost, "/auth/google/login", nil, googleLoginRequest{Token: token, Profile: profile}, &user); err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (c *Client) Verify(ctx context.Context) (model.User, error) {
	var user model.User

	if err := c.call(ctx, http.MethodGet, "/auth/verify", nil, nil, &user); err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.call(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (c *Client) Register(ctx context.Context, registration model.Registration) (model.User, error) {
	var user model.User

	if err := c.call(ctx, http.MethodPost, "/auth/register", nil, registration, &user); err != nil {
		return model.User{}, err
	}

	return user, nil
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.call(ctx, http.MethodPost, "/auth/forgot-password", nil, forgotPasswordRequest{Email: email}, nil)
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (c *Client) ResetPassword(ctx context.Context, token string, password string) error {
	return c.call(ctx, http.MethodPost, "/auth/reset-password", nil, resetPasswordRequest{Token: token, Password: password}, nil)
}
