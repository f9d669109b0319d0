package api

import (
	"context"
	"net/http"

	"github.com/casaview/dashboard/model"
)

type DeviceInput struct {
	HomeID       string `json:"homeId"`
	RoomID       string `json:"roomId,omitempty"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Manufacturer string `json:"manufacturer,omitempty"`
}

func (c *Client) ListDevicesByHome(ctx context.Context, homeId string) ([]model.Device, error) {
	var devices []model.Device

	if err := c.call(ctx, http.MethodGet, "/device/home/"+homeId, nil, nil, &devices); err != nil {
		return nil, err
	}

	return devices, nil
}

func (c *Client) ListDevicesByRoom(ctx context.Context, roomId string) ([]model.Device, error) {
	var devices []model.Device

	if err := c.call(ctx, http.MethodGet, "/device/room/"+roomId, nil, nil, &devices); err != nil {
		return nil, err
	}

	return devices, nil
}

func (c *Client) CreateDevice(ctx context.Context, input DeviceInput) (model.Device, error) {
	var device model.Device

	if err := c.call(ctx, http.MethodPost, "/device", nil, input, &device); err != nil {
		return model.Device{}, err
	}

	return device, nil
}

func (c *Client) UpdateDevice(ctx context.Context, id string, input DeviceInput) (model.Device, error) {
	var device model.Device

	if err := c.call(ctx, http.MethodPut, "/device/"+id, nil, input, &device); err != nil {
		return model.Device{}, err
	}

	return device, nil
}

func (c *Client) DeleteDevice(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/device/"+id, nil, nil, nil)
}
