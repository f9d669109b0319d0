package store

import (
	"context"

	"github.com/casaview/dashboard/model"
	"github.com/casaview/dashboard/state"
)

// fetchSlice runs one tagged fetch of a nested data slice. Only the latest
// issued fetch for a slice may clear its loader or commit its result, and a
// result lands only while its home is still the current selection; anything
// else is discarded quietly. A failed fetch clears the loader and leaves
// the previous data intact.
func fetchSlice[T any](ctx context.Context, s *Store, homeId string, slice state.Slice, seq *uint64, loader *bool, target *[]T, list func(context.Context) ([]T, error)) error {
	s.mu.Lock()
	*seq++
	mySeq := *seq
	*loader = true
	s.mu.Unlock()

	items, err := list(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if *seq != mySeq {
		return nil
	}

	*loader = false

	if err != nil {
		return err
	}

	if s.currentId != homeId {
		return nil
	}

	*target = items
	s.events.Publish(state.SliceUpdated{HomeID: homeId, Slice: slice})

	return nil
}

func (s *Store) FetchRoomsByHomeID(ctx context.Context, homeId string) error {
	return fetchSlice(ctx, s, homeId, state.SliceRooms, &s.roomsSeq, &s.loaders.Rooms, &s.rooms, func(ctx context.Context) ([]model.Room, error) {
		return s.api.ListRoomsByHome(ctx, homeId)
	})
}

func (s *Store) FetchDevicesByHomeID(ctx context.Context, homeId string) error {
	return fetchSlice(ctx, s, homeId, state.SliceDevices, &s.devicesSeq, &s.loaders.Devices, &s.devices, func(ctx context.Context) ([]model.Device, error) {
		return s.api.ListDevicesByHome(ctx, homeId)
	})
}

// FetchDevicesByRoomID narrows the device slice to one room of the current
// home.
func (s *Store) FetchDevicesByRoomID(ctx context.Context, roomId string) error {
	homeId := s.CurrentHomeID()

	return fetchSlice(ctx, s, homeId, state.SliceDevices, &s.devicesSeq, &s.loaders.Devices, &s.devices, func(ctx context.Context) ([]model.Device, error) {
		return s.api.ListDevicesByRoom(ctx, roomId)
	})
}

func (s *Store) FetchSensorsByHomeID(ctx context.Context, homeId string) error {
	return fetchSlice(ctx, s, homeId, state.SliceSensors, &s.sensorsSeq, &s.loaders.Sensors, &s.sensors, func(ctx context.Context) ([]model.Sensor, error) {
		return s.api.ListSensorsByHome(ctx, homeId)
	})
}

// FetchSensorsByRoomID narrows the sensor slice to one room of the current
// home.
func (s *Store) FetchSensorsByRoomID(ctx context.Context, roomId string) error {
	homeId := s.CurrentHomeID()

	return fetchSlice(ctx, s, homeId, state.SliceSensors, &s.sensorsSeq, &s.loaders.Sensors, &s.sensors, func(ctx context.Context) ([]model.Sensor, error) {
		return s.api.ListSensorsByRoom(ctx, roomId)
	})
}

func (s *Store) FetchAutomationsByHomeID(ctx context.Context, homeId string) error {
	return fetchSlice(ctx, s, homeId, state.SliceAutomations, &s.automationsSeq, &s.loaders.Automations, &s.automations, func(ctx context.Context) ([]model.Automation, error) {
		return s.api.ListAutomationsByHome(ctx, homeId)
	})
}
