package model

type SensorReading struct {
	Value      float64 `json:"value"`
	Unit       string  `json:"unit,omitempty"`
	MeasuredAt string  `json:"measuredAt,omitempty"`
}

type Sensor struct {
	ID           string         `json:"id"`
	HomeID       string         `json:"homeId"`
	RoomID       string         `json:"roomId,omitempty"`
	Name         string         `json:"name"`
	Type         string         `json:"type"`
	Manufacturer string         `json:"manufacturer,omitempty"`
	Status       DeviceStatus   `json:"status"`
	Reading      *SensorReading `json:"reading,omitempty"`
}
