package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseServer(t *testing.T) {
	t.Run("errors if json is invalid", func(t *testing.T) {
		data := []byte(`"`)
		sv := ServerConfig{}

		err := json.Unmarshal(data, &sv)
		assert.Error(t, err)
	})

	t.Run("errors if type is unknown", func(t *testing.T) {
		data := []byte(`{"Type":"soap"}`)
		sv := ServerConfig{}

		err := json.Unmarshal(data, &sv)
		assert.Error(t, err)
	})

	t.Run("errors if the Config stanza is missing", func(t *testing.T) {
		data := []byte(`{"Type":"rest"}`)
		sv := ServerConfig{}

		err := json.Unmarshal(data, &sv)
		assert.Error(t, err)
	})

	t.Run("rest server", func(t *testing.T) {
		t.Run("parses successfully", func(t *testing.T) {
			data := []byte(`{
  "Type": "rest",
  "Config": {
    "BaseURL": "https://dashboard.example.com/api",
    "TimeoutSeconds": 15,
    "Credentials": {
      "Email": "owner@example.com",
      "Password": "hunter2"
    }
  }
}`)
			sv := ServerConfig{}

			err := json.Unmarshal(data, &sv)
			assert.NoError(t, err)

			rest, ok := sv.Config.(*RESTServerConfig)
			assert.True(t, ok)

			assert.Equal(t, "https://dashboard.example.com/api", rest.BaseURL)
			assert.Equal(t, 15*time.Second, rest.Timeout())
			assert.Equal(t, "owner@example.com", rest.Credentials.Email)
			assert.NoError(t, rest.Validate())
		})

		t.Run("rejects a missing base URL", func(t *testing.T) {
			rest := RESTServerConfig{}
			assert.Error(t, rest.Validate())
		})

		t.Run("rejects a negative timeout", func(t *testing.T) {
			rest := RESTServerConfig{BaseURL: "https://dashboard.example.com", TimeoutSeconds: -1}
			assert.Error(t, rest.Validate())
		})
	})
}
