package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutomation_UnmarshalJSON(t *testing.T) {
	t.Run("decodes a time triggered automation", func(t *testing.T) {
		data := []byte(`{"id":"a1","homeId":"h1","name":"Night lights","triggerType":"time","timeTrigger":{"startTime":"22:00","endTime":"06:00","weekdays":["mon","tue"]},"isActive":true}`)

		actual := Automation{}
		err := json.Unmarshal(data, &actual)

		assert.NoError(t, err)
		assert.Equal(t, "a1", actual.ID)
		assert.Equal(t, "h1", actual.HomeID)
		assert.Equal(t, TriggerTime, actual.TriggerType)
		assert.True(t, actual.IsActive)
		assert.Nil(t, actual.SensorTrigger)

		if assert.NotNil(t, actual.TimeTrigger) {
			assert.Equal(t, "22:00", actual.TimeTrigger.StartTime)
			assert.Equal(t, []string{"mon", "tue"}, actual.TimeTrigger.Weekdays)
		}
	})

	t.Run("decodes a sensor triggered automation", func(t *testing.T) {
		data := []byte(`{"id":"a2","homeId":"h1","name":"Heat on cold","triggerType":"sensor","sensorTrigger":{"sensorId":"s1","condition":"below","threshold":18.5},"isActive":false}`)

		actual := Automation{}
		err := json.Unmarshal(data, &actual)

		assert.NoError(t, err)
		assert.Equal(t, TriggerSensor, actual.TriggerType)
		assert.Nil(t, actual.TimeTrigger)

		if assert.NotNil(t, actual.SensorTrigger) {
			assert.Equal(t, "s1", actual.SensorTrigger.SensorID)
			assert.Equal(t, 18.5, actual.SensorTrigger.Threshold)
		}
	})

	t.Run("errors when the trigger type is missing", func(t *testing.T) {
		data := []byte(`{"id":"a3","homeId":"h1","name":"Broken"}`)

		actual := Automation{}
		err := json.Unmarshal(data, &actual)

		assert.Error(t, err)
	})

	t.Run("errors when the trigger type is unknown", func(t *testing.T) {
		data := []byte(`{"id":"a4","triggerType":"lunar","isActive":true}`)

		actual := Automation{}
		err := json.Unmarshal(data, &actual)

		assert.Error(t, err)
	})

	t.Run("errors when the selected trigger stanza is absent", func(t *testing.T) {
		data := []byte(`{"id":"a5","triggerType":"time","isActive":true}`)

		actual := Automation{}
		err := json.Unmarshal(data, &actual)

		assert.Error(t, err)
	})
}

func TestAutomation_Validate(t *testing.T) {
	t.Run("accepts exactly one populated trigger matching the type", func(t *testing.T) {
		a := Automation{TriggerType: TriggerTime, TimeTrigger: &TimeTrigger{StartTime: "08:00"}}
		assert.NoError(t, a.Validate())

		a = Automation{TriggerType: TriggerSensor, SensorTrigger: &SensorTrigger{SensorID: "s1"}}
		assert.NoError(t, a.Validate())
	})

	t.Run("rejects a mismatched or doubly populated trigger", func(t *testing.T) {
		a := Automation{TriggerType: TriggerTime, SensorTrigger: &SensorTrigger{}}
		assert.Error(t, a.Validate())

		a = Automation{TriggerType: TriggerSensor, TimeTrigger: &TimeTrigger{}, SensorTrigger: &SensorTrigger{}}
		assert.Error(t, a.Validate())
	})
}
