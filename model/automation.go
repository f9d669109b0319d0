package model

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

type TriggerType string

const (
	TriggerTime   TriggerType = "time"
	TriggerSensor TriggerType = "sensor"
)

type TimeTrigger struct {
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime,omitempty"`
	Weekdays  []string `json:"weekdays,omitempty"`
}

type SensorTrigger struct {
	SensorID  string  `json:"sensorId"`
	Condition string  `json:"condition"`
	Threshold float64 `json:"threshold"`
}

// Automation is a tagged union: TriggerType selects which of TimeTrigger or
// SensorTrigger is populated, never both.
type Automation struct {
	ID            string         `json:"id"`
	HomeID        string         `json:"homeId"`
	Name          string         `json:"name"`
	TriggerType   TriggerType    `json:"triggerType"`
	TimeTrigger   *TimeTrigger   `json:"timeTrigger,omitempty"`
	SensorTrigger *SensorTrigger `json:"sensorTrigger,omitempty"`
	IsActive      bool           `json:"isActive"`
}

func (a *Automation) UnmarshalJSON(data []byte) error {
	result := gjson.GetBytes(data, "triggerType")
	if !result.Exists() {
		return fmt.Errorf("failed to find automation trigger type information")
	}

	a.ID = gjson.GetBytes(data, "id").String()
	a.HomeID = gjson.GetBytes(data, "homeId").String()
	a.Name = gjson.GetBytes(data, "name").String()
	a.IsActive = gjson.GetBytes(data, "isActive").Bool()
	a.TriggerType = TriggerType(result.String())
	a.TimeTrigger = nil
	a.SensorTrigger = nil

	var stanza gjson.Result
	var trigger any

	switch a.TriggerType {
	case TriggerTime:
		a.TimeTrigger = &TimeTrigger{}
		stanza = gjson.GetBytes(data, "timeTrigger")
		trigger = a.TimeTrigger
	case TriggerSensor:
		a.SensorTrigger = &SensorTrigger{}
		stanza = gjson.GetBytes(data, "sensorTrigger")
		trigger = a.SensorTrigger
	default:
		return fmt.Errorf("unknown automation trigger type: %s", a.TriggerType)
	}

	if !stanza.Exists() {
		return fmt.Errorf("unable to find %s trigger stanza", a.TriggerType)
	}

	return json.Unmarshal([]byte(stanza.Raw), trigger)
}

func (a Automation) Validate() error {
	switch a.TriggerType {
	case TriggerTime:
		if a.TimeTrigger == nil || a.SensorTrigger != nil {
			return fmt.Errorf("time automation must carry exactly a time trigger")
		}
	case TriggerSensor:
		if a.SensorTrigger == nil || a.TimeTrigger != nil {
			return fmt.Errorf("sensor automation must carry exactly a sensor trigger")
		}
	default:
		return fmt.Errorf("unknown automation trigger type: %s", a.TriggerType)
	}

	return nil
}
