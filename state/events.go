package state

import "github.com/casaview/dashboard/model"

// Session lifecycle events.
type SessionSignedIn struct {
	User model.User
}

type SessionSignedOut struct{}

// SessionExpired is published when a previously authenticated session could
// not be recovered by the transparent refresh.
type SessionExpired struct{}

// Store change events.
type HomesReplaced struct {
	Count int
}

type HomeSelected struct {
	HomeID string
}

type Slice string

const (
	SliceRooms       Slice = "rooms"
	SliceDevices     Slice = "devices"
	SliceSensors     Slice = "sensors"
	SliceAutomations Slice = "automations"
)

type SliceUpdated struct {
	HomeID string
	Slice  Slice
}

type AutomationToggled struct {
	AutomationID string
	IsActive     bool
}
