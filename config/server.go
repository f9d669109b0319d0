package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tidwall/gjson"
)

// ServerConfig describes one dashboard server connection. The Type field
// selects the concrete Config stanza; only REST servers exist today but the
// envelope leaves room for others.
type ServerConfig struct {
	Name   string `json:"-"`
	Type   string
	Config any
}

func (s *ServerConfig) UnmarshalJSON(data []byte) error {
	if result := gjson.GetBytes(data, "Type"); !result.Exists() {
		return fmt.Errorf("failed to find server type information")
	} else {
		s.Type = result.String()
	}

	switch s.Type {
	case "rest":
		s.Config = &RESTServerConfig{}
	default:
		return fmt.Errorf("unknown server configuration type: %s", s.Type)
	}

	if result := gjson.GetBytes(data, "Config"); result.Exists() {
		return json.Unmarshal([]byte(result.Raw), s.Config)
	} else {
		return fmt.Errorf("unable to find Config stanza: %s", s.Type)
	}
}

type RESTServerConfig struct {
	BaseURL string

	// TimeoutSeconds bounds each request; zero means the client default.
	TimeoutSeconds int

	Credentials *Credentials
}

func (r RESTServerConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

func (r RESTServerConfig) Validate() error {
	if r.BaseURL == "" {
		return fmt.Errorf("server configuration requires a BaseURL")
	}

	if r.TimeoutSeconds < 0 {
		return fmt.Errorf("server timeout may not be negative")
	}

	return nil
}

type Credentials struct {
	Email    string
	Password string
}
