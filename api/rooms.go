package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/casaview/dashboard/model"
)

func (c *Client) ListRoomsByHome(ctx context.Context, homeId string) ([]model.Room, error) {
	var rooms []model.Room

	query := url.Values{"homeId": []string{homeId}}

	if err := c.call(ctx, http.MethodGet, "/room", query, nil, &rooms); err != nil {
		return nil, err
	}

	return rooms, nil
}

func (c *Client) CreateRoom(ctx context.Context, input model.RoomInput) (model.Room, error) {
	var room model.Room

	if err := c.call(ctx, http.MethodPost, "/room", nil, input, &room); err != nil {
		return model.Room{}, err
	}

	return room, nil
}

func (c *Client) UpdateRoom(ctx context.Context, id string, input model.RoomInput) (model.Room, error) {
	var room model.Room

	if err := c.call(ctx, http.MethodPut, "/room/"+id, nil, input, &room); err != nil {
		return model.Room{}, err
	}

	return room, nil
}

func (c *Client) DeleteRoom(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/room/"+id, nil, nil, nil)
}
