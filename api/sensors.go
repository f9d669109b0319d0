package api

import (
	"context"
	"net/http"

	"github.com/casaview/dashboard/model"
)

type SensorInput struct {
	HomeID       string `json:"homeId"`
	RoomID       string `json:"roomId,omitempty"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Manufacturer string `json:"manufacturer,omitempty"`
}

func (c *Client) ListSensorsByHome(ctx context.Context, homeId string) ([]model.Sensor, error) {
	var sensors []model.Sensor

	if err := c.call(ctx, http.MethodGet, "/sensor/home/"+homeId, nil, nil, &sensors); err != nil {
		return nil, err
	}

	return sensors, nil
}

func (c *Client) ListSensorsByRoom(ctx context.Context, roomId string) ([]model.Sensor, error) {
	var sensors []model.Sensor

	if err := c.call(ctx, http.MethodGet, "/sensor/room/"+roomId, nil, nil, &sensors); err != nil {
		return nil, err
	}

	return sensors, nil
}

func (c *Client) CreateSensor(ctx context.Context, input SensorInput) (model.Sensor, error) {
	var sensor model.Sensor

	if err := c.call(ctx, http.MethodPost, "/sensor", nil, input, &sensor); err != nil {
		return model.Sensor{}, err
	}

	return sensor, nil
}

func (c *Client) UpdateSensor(ctx context.Context, id string, input SensorInput) (model.Sensor, error) {
	var sensor model.Sensor

	if err := c.call(ctx, http.MethodPut, "/sensor/"+id, nil, input, &sensor); err != nil {
		return model.Sensor{}, err
	}

	return sensor, nil
}

func (c *Client) DeleteSensor(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/sensor/"+id, nil, nil, nil)
}
