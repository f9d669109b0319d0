package model

type Room struct {
	ID     string `json:"id"`
	HomeID string `json:"homeId"`
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"`
}
