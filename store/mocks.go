package store

import (
	"context"
	"io"
	"log"

	"github.com/casaview/dashboard/model"
	"github.com/shimmeringbee/logwrap"
	"github.com/shimmeringbee/logwrap/impl/golog"
	"github.com/stretchr/testify/mock"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListHomes(ctx context.Context) ([]model.Home, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Home), args.Error(1)
}

func (m *mockService) GetHome(ctx context.Context, id string) (model.Home, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Home), args.Error(1)
}

func (m *mockService) CreateHome(ctx context.Context, req model.CreateHomeRequest) (model.Home, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.Home), args.Error(1)
}

func (m *mockService) UpdateHome(ctx context.Context, id string, req model.CreateHomeRequest) (model.Home, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(model.Home), args.Error(1)
}

func (m *mockService) DeleteHome(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockService) ListRoomsByHome(ctx context.Context, homeId string) ([]model.Room, error) {
	args := m.Called(ctx, homeId)
	return args.Get(0).([]model.Room), args.Error(1)
}

func (m *mockService) CreateRoom(ctx context.Context, input model.RoomInput) (model.Room, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(model.Room), args.Error(1)
}

func (m *mockService) UpdateRoom(ctx context.Context, id string, input model.RoomInput) (model.Room, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(model.Room), args.Error(1)
}

func (m *mockService) DeleteRoom(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockService) ListDevicesByHome(ctx context.Context, homeId string) ([]model.Device, error) {
	args := m.Called(ctx, homeId)
	return args.Get(0).([]model.Device), args.Error(1)
}

func (m *mockService) ListDevicesByRoom(ctx context.Context, roomId string) ([]model.Device, error) {
	args := m.Called(ctx, roomId)
	return args.Get(0).([]model.Device), args.Error(1)
}

func (m *mockService) ListSensorsByHome(ctx context.Context, homeId string) ([]model.Sensor, error) {
	args := m.Called(ctx, homeId)
	return args.Get(0).([]model.Sensor), args.Error(1)
}

func (m *mockService) ListSensorsByRoom(ctx context.Context, roomId string) ([]model.Sensor, error) {
	args := m.Called(ctx, roomId)
	return args.Get(0).([]model.Sensor), args.Error(1)
}

func (m *mockService) ListAutomationsByHome(ctx context.Context, homeId string) ([]model.Automation, error) {
	args := m.Called(ctx, homeId)
	return args.Get(0).([]model.Automation), args.Error(1)
}

func (m *mockService) CreateAutomation(ctx context.Context, input model.AutomationInput) (model.Automation, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(model.Automation), args.Error(1)
}

func (m *mockService) UpdateAutomation(ctx context.Context, id string, input model.AutomationInput) (model.Automation, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(model.Automation), args.Error(1)
}

func (m *mockService) ToggleAutomation(ctx context.Context, id string) (model.Automation, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Automation), args.Error(1)
}

func (m *mockService) DeleteAutomation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func discardLogger() logwrap.Logger {
	return logwrap.New(golog.Wrap(log.New(io.Discard, "", 0)))
}
