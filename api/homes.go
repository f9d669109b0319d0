package api

import (
	"context"
	"net/http"

	"github.com/casaview/dashboard/model"
)

func (c *Client) ListHomes(ctx context.Context) ([]model.Home, error) {
	var homes []model.Home

	if err := c.call(ctx, http.MethodGet, "/home", nil, nil, &homes); err != nil {
		return nil, err
	}

	return homes, nil
}

func (c *Client) GetHome(ctx context.Context, id string) (model.Home, error) {
	var home model.Home

	if err := c.call(ctx, http.MethodGet, "/home/"+id, nil, nil, &home); err != nil {
		return model.Home{}, err
	}

	return home, nil
}

func (c *Client) CreateHome(ctx context.Context, req model.CreateHomeRequest) (model.Home, error) {
	var home model.Home

	if err := c.call(ctx, http.MethodPost, "/home", nil, req, &home); err != nil {
		return model.Home{}, err
	}

	return home, nil
}

func (c *Client) UpdateHome(ctx context.Context, id string, req model.CreateHomeRequest) (model.Home, error) {
	var home model.Home

	if err := c.call(ctx, http.MethodPut, "/home/"+id, nil, req, &home); err != nil {
		return model.Home{}, err
	}

	return home, nil
}

func (c *Client) DeleteHome(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/home/"+id, nil, nil, nil)
}
