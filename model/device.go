package model

type DeviceStatus struct {
	Online  bool   `json:"online"`
	Power   string `json:"power,omitempty"`
	Battery *int   `json:"battery,omitempty"`
}

type Device struct {
	ID           string       `json:"id"`
	HomeID       string       `json:"homeId"`
	RoomID       string       `json:"roomId,omitempty"`
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	Manufacturer string       `json:"manufacturer,omitempty"`
	Status       DeviceStatus `json:"status"`
}
