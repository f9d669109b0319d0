package api

import (
	"context"
	"net/http"

	"github.com/casaview/dashboard/model"
)

func (c *Client) GetUser(ctx context.Context, id string) (model.User, error) {
	var user model.User

	if err := c.call(ctx, http.MethodGet, "/user/"+id, nil, nil, &user); err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, input model.ProfileInput) (model.User, error) {
	var user model.User

	if err := c.call(ctx, http.MethodPut, "/user/"+id, nil, input, &user); err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (c *Client) ChangeUserPassword(ctx context.Context, id string, change model.PasswordChange) error {
	return c.call(ctx, http.MethodPost, "/user/"+id+"/change-password", nil, change, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/user/"+id, nil, nil, nil)
}

func (c *Client) AdminListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User

	if err := c.call(ctx, http.MethodGet, "/user/admin/users", nil, nil, &users); err != nil {
		return nil, err
	}

	return users, nil
}

type userStatusRequest struct {
	Status model.UserStatus `json:"status"`
}

func (c *Client) AdminSetUserStatus(ctx context.Context, id string, status model.UserStatus) (model.User, error) {
	var user model.User

	if err := c.call(ctx, http.MethodPut, "/user/admin/users/"+id+"/status", nil, userStatusRequest{Status: status}, &user); err != nil {
		return model.User{}, err
	}

	return user, nil
}
