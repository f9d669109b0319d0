package store

import (
	"context"
	"sync"

	"github.com/casaview/dashboard/model"
	"github.com/casaview/dashboard/state"
	"github.com/shimmeringbee/logwrap"
)

type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

const (
	ErrUnknownHome = StoreError("home not present in store")
)

// Service is the slice of the remote collaborator the store depends on.
type Service interface {
	ListHomes(ctx context.Context) ([]model.Home, error)
	GetHome(ctx context.Context, id string) (model.Home, error)
	CreateHome(ctx context.Context, req model.CreateHomeRequest) (model.Home, error)
	UpdateHome(ctx context.Context, id string, req model.CreateHomeRequest) (model.Home, error)
	DeleteHome(ctx context.Context, id string) error

	ListRoomsByHome(ctx context.Context, homeId string) ([]model.Room, error)
	CreateRoom(ctx context.Context, input model.RoomInput) (model.Room, error)
	UpdateRoom(ctx context.Context, id string, input model.RoomInput) (model.Room, error)
	DeleteRoom(ctx context.Context, id string) error

	ListDevicesByHome(ctx context.Context, homeId string) ([]model.Device, error)
	ListDevicesByRoom(ctx context.Context, roomId string) ([]model.Device, error)

	ListSensorsByHome(ctx context.Context, homeId string) ([]model.Sensor, error)
	ListSensorsByRoom(ctx context.Context, roomId string) ([]model.Sensor, error)

	ListAutomationsByHome(ctx context.Context, homeId string) ([]model.Automation, error)
	CreateAutomation(ctx context.Context, input model.AutomationInput) (model.Automation, error)
	UpdateAutomation(ctx context.Context, id string, input model.AutomationInput) (model.Automation, error)
	ToggleAutomation(ctx context.Context, id string) (model.Automation, error)
	DeleteAutomation(ctx context.Context, id string) error
}

// Loaders are the named loading flags driving UI spinners. Each flag is set
// for the duration of its fetch and cleared on both outcomes.
type Loaders struct {
	Homes       bool
	Rooms       bool
	Devices     bool
	Sensors     bool
	Automations bool
}

// Store owns the home list, the current selection and the nested data of
// the selected home. Fetches are tagged with a per-slice sequence number
// and the target home: a response that is no longer the latest issued
// fetch, or whose home is no longer selected, is discarded rather than
// allowed to overwrite newer state.
type Store struct {
	mu sync.Mutex

	homes     []model.Home
	currentId string

	rooms       []model.Room
	devices     []model.Device
	sensors     []model.Sensor
	automations []model.Automation

	loaders Loaders

	homesSeq       uint64
	roomsSeq       uint64
	devicesSeq     uint64
	sensorsSeq     uint64
	automationsSeq uint64

	api    Service
	events state.EventPublisher
	logger logwrap.Logger
}

func New(api Service, events state.EventPublisher, l logwrap.Logger) *Store {
	return &Store{
		api:    api,
		events: events,
		logger: l,
	}
}

// FetchHomes replaces the home list. Selection rule: a still-present
// previous selection is kept, otherwise the first home in server order
// becomes current, or nothing when the list is empty.
func (s *Store) FetchHomes(ctx context.Context) error {
	s.mu.Lock()
	s.homesSeq++
	seq := s.homesSeq
	s.loaders.Homes = true
	s.mu.Unlock()

	homes, err := s.api.ListHomes(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.homesSeq != seq {
		return nil
	}

	s.loaders.Homes = false

	if err != nil {
		return err
	}

	s.homes = homes
	s.events.Publish(state.HomesReplaced{Count: len(homes)})

	s.selectLocked(currentAfterRefresh(homes, s.currentId))

	return nil
}

func currentAfterRefresh(homes []model.Home, previous string) string {
	for _, home := range homes {
		if home.ID == previous {
			return previous
		}
	}

	if len(homes) > 0 {
		return homes[0].ID
	}

	return ""
}

// SelectHome switches the current home. The id must name a home already in
// the list; the nested slices of the previous home are dropped and any of
// its in-flight fetches are invalidated.
func (s *Store) SelectHome(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.homeIndexLocked(id); !found {
		return ErrUnknownHome
	}

	s.selectLocked(id)

	return nil
}

func (s *Store) selectLocked(id string) {
	if s.currentId == id {
		return
	}

	s.currentId = id

	s.rooms = nil
	s.devices = nil
	s.sensors = nil
	s.automations = nil

	s.roomsSeq++
	s.devicesSeq++
	s.sensorsSeq++
	s.automationsSeq++

	s.loaders.Rooms = false
	s.loaders.Devices = false
	s.loaders.Sensors = false
	s.loaders.Automations = false

	if id != "" {
		s.events.Publish(state.HomeSelected{HomeID: id})
	}
}

// FetchHomeByID refreshes a single home record, merging it into the list.
func (s *Store) FetchHomeByID(ctx context.Context, id string) error {
	home, err := s.api.GetHome(ctx, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i, found := s.homeIndexLocked(id); found {
		s.homes[i] = home
	} else {
		s.homes = append(s.homes, home)
	}

	return nil
}

func (s *Store) homeIndexLocked(id string) (int, bool) {
	for i, home := range s.homes {
		if home.ID == id {
			return i, true
		}
	}

	return 0, false
}

func (s *Store) Homes() []model.Home {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]model.Home(nil), s.homes...)
}

func (s *Store) CurrentHome() (model.Home, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, found := s.homeIndexLocked(s.currentId); found {
		return s.homes[i], true
	}

	return model.Home{}, false
}

func (s *Store) CurrentHomeID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currentId
}

func (s *Store) Rooms() []model.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]model.Room(nil), s.rooms...)
}

func (s *Store) Devices() []model.Device {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]model.Device(nil), s.devices...)
}

func (s *Store) Sensors() []model.Sensor {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]model.Sensor(nil), s.sensors...)
}

func (s *Store) Automations() []model.Automation {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]model.Automation(nil), s.automations...)
}

func (s *Store) Loaders() Loaders {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loaders
}
