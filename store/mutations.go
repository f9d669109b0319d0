package store

import (
	"context"

	"github.com/casaview/dashboard/model"
	"github.com/casaview/dashboard/state"
	"github.com/shimmeringbee/logwrap"
)

// Mutations perform the remote change first and only then update local
// state to match; every failure is returned to the caller so dialogs can
// display it.

func (s *Store) CreateHome(ctx context.Context, req model.CreateHomeRequest) (model.Home, error) {
	if err := req.Validate(); err != nil {
		return model.Home{}, err
	}

	home, err := s.api.CreateHome(ctx, req)
	if err != nil {
		return model.Home{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.homes = append(s.homes, home)
	s.events.Publish(state.HomesReplaced{Count: len(s.homes)})

	if s.currentId == "" {
		s.selectLocked(home.ID)
	}

	return home, nil
}

func (s *Store) UpdateHome(ctx context.Context, id string, req model.CreateHomeRequest) (model.Home, error) {
	if err := req.Validate(); err != nil {
		return model.Home{}, err
	}

	home, err := s.api.UpdateHome(ctx, id, req)
	if err != nil {
		return model.Home{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i, found := s.homeIndexLocked(id); found {
		s.homes[i] = home
	}

	return home, nil
}

func (s *Store) DeleteHome(ctx context.Context, id string) error {
	if err := s.api.DeleteHome(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i, found := s.homeIndexLocked(id); found {
		s.homes = append(s.homes[:i], s.homes[i+1:]...)
	}

	s.events.Publish(state.HomesReplaced{Count: len(s.homes)})

	if s.currentId == id {
		s.selectLocked(currentAfterRefresh(s.homes, ""))
	}

	return nil
}

func (s *Store) CreateRoom(ctx context.Context, input model.RoomInput) (model.Room, error) {
	if err := input.Validate(); err != nil {
		return model.Room{}, err
	}

	room, err := s.api.CreateRoom(ctx, input)
	if err != nil {
		return model.Room{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if room.HomeID == s.currentId {
		s.rooms = append(s.rooms, room)
		s.events.Publish(state.SliceUpdated{HomeID: s.currentId, Slice: state.SliceRooms})
	}

	return room, nil
}

func (s *Store) UpdateRoom(ctx context.Context, id string, input model.RoomInput) (model.Room, error) {
	if err := input.Validate(); err != nil {
		return model.Room{}, err
	}

	room, err := s.api.UpdateRoom(ctx, id, input)
	if err != nil {
		return model.Room{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].ID == id {
			s.rooms[i] = room
			s.events.Publish(state.SliceUpdated{HomeID: s.currentId, Slice: state.SliceRooms})
			break
		}
	}

	return room, nil
}

// RemoveRoom deletes a room and then re-fetches the device and sensor
// slices: the server is authoritative about what cascaded, the client does
// not guess. A failed re-fetch is logged, not returned, as the deletion
// itself succeeded.
func (s *Store) RemoveRoom(ctx context.Context, id string) error {
	if err := s.api.DeleteRoom(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()

	for i := range s.rooms {
		if s.rooms[i].ID == id {
			s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
			break
		}
	}

	homeId := s.currentId
	s.events.Publish(state.SliceUpdated{HomeID: homeId, Slice: state.SliceRooms})
	s.mu.Unlock()

	if homeId == "" {
		return nil
	}

	if err := s.FetchDevicesByHomeID(ctx, homeId); err != nil {
		s.logger.LogWarn(ctx, "Failed to refresh devices after room removal.", logwrap.Datum("homeId", homeId), logwrap.Err(err))
	}

	if err := s.FetchSensorsByHomeID(ctx, homeId); err != nil {
		s.logger.LogWarn(ctx, "Failed to refresh sensors after room removal.", logwrap.Datum("homeId", homeId), logwrap.Err(err))
	}

	return nil
}

func (s *Store) CreateAutomation(ctx context.Context, input model.AutomationInput) (model.Automation, error) {
	if err := input.Validate(); err != nil {
		return model.Automation{}, err
	}

	automation, err := s.api.CreateAutomation(ctx, input)
	if err != nil {
		return model.Automation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if automation.HomeID == s.currentId {
		s.automations = append(s.automations, automation)
		s.events.Publish(state.SliceUpdated{HomeID: s.currentId, Slice: state.SliceAutomations})
	}

	return automation, nil
}

func (s *Store) UpdateAutomation(ctx context.Context, id string, input model.AutomationInput) (model.Automation, error) {
	if err := input.Validate(); err != nil {
		return model.Automation{}, err
	}

	automation, err := s.api.UpdateAutomation(ctx, id, input)
	if err != nil {
		return model.Automation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i, found := s.automationIndexLocked(id); found {
		s.automations[i] = automation
		s.events.Publish(state.SliceUpdated{HomeID: s.currentId, Slice: state.SliceAutomations})
	}

	return automation, nil
}

// ToggleAutomationStatus flips the active flag optimistically, then settles
// on the server's answer: the confirmed record on success, the previous
// value rolled back on failure. Either way the flag ends as a definite
// boolean.
func (s *Store) ToggleAutomationStatus(ctx context.Context, id string) error {
	s.mu.Lock()

	previous := false
	flipped := false

	if i, found := s.automationIndexLocked(id); found {
		previous = s.automations[i].IsActive
		s.automations[i].IsActive = !previous
		flipped = true
	}

	s.mu.Unlock()

	automation, err := s.api.ToggleAutomation(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	i, found := s.automationIndexLocked(id)

	if err != nil {
		if flipped && found {
			s.automations[i].IsActive = previous
		}

		return err
	}

	if found {
		s.automations[i] = automation
	}

	s.events.Publish(state.AutomationToggled{AutomationID: id, IsActive: automation.IsActive})

	return nil
}

func (s *Store) DeleteAutomation(ctx context.Context, id string) error {
	if err := s.api.DeleteAutomation(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i, found := s.automationIndexLocked(id); found {
		s.automations = append(s.automations[:i], s.automations[i+1:]...)
		s.events.Publish(state.SliceUpdated{HomeID: s.currentId, Slice: state.SliceAutomations})
	}

	return nil
}

func (s *Store) automationIndexLocked(id string) (int, bool) {
	for i := range s.automations {
		if s.automations[i].ID == id {
			return i, true
		}
	}

	return 0, false
}
