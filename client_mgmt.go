package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/casaview/dashboard/api"
	"github.com/casaview/dashboard/config"
	"github.com/casaview/dashboard/guard"
	"github.com/casaview/dashboard/session"
	"github.com/casaview/dashboard/state"
	"github.com/casaview/dashboard/store"
	"github.com/shimmeringbee/logwrap"
	"github.com/shimmeringbee/logwrap/impl/nest"
)

// runtime is the wired object graph: one client, one session, one store,
// one guard, sharing one event bus.
type runtime struct {
	client   *api.Client
	sessions *session.Manager
	store    *store.Store
	guard    *guard.Guard
	bus      *state.EventBus

	credentials *config.Credentials
}

func loadServerConfigurations(dir string) ([]config.ServerConfig, error) {
	if err := os.MkdirAll(dir, DefaultDirectoryPermissions); err != nil {
		return nil, fmt.Errorf("failed to ensure server configuration directory exists: %w", err)
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory listing for server configurations: %w", err)
	}

	var cfgs []config.ServerConfig

	for _, file := range files {
		if !strings.HasSuffix(file.Name(), ".json") {
			continue
		}

		fullPath := filepath.Join(dir, file.Name())
		data, err := os.ReadFile(fullPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read server configuration file '%s': %w", fullPath, err)
		}

		cfg := config.ServerConfig{
			Name: strings.TrimSuffix(file.Name(), filepath.Ext(file.Name())),
		}

		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse server configuration file '%s': %w", fullPath, err)
		}

		cfgs = append(cfgs, cfg)
	}

	return cfgs, nil
}

// selectServerConfiguration picks the named server, or the first one found
// when no name was given.
func selectServerConfiguration(cfgs []config.ServerConfig, name string) (*config.RESTServerConfig, string, error) {
	for _, cfg := range cfgs {
		if name != "" && cfg.Name != name {
			continue
		}

		rest, ok := cfg.Config.(*config.RESTServerConfig)
		if !ok {
			continue
		}

		if err := rest.Validate(); err != nil {
			return nil, "", fmt.Errorf("server configuration '%s' is invalid: %w", cfg.Name, err)
		}

		return rest, cfg.Name, nil
	}

	if name != "" {
		return nil, "", fmt.Errorf("no server configuration named '%s' found", name)
	}

	return nil, "", fmt.Errorf("no server configurations found, create one under the servers configuration directory")
}

func buildRuntime(l logwrap.Logger, rest *config.RESTServerConfig) (*runtime, error) {
	bus := state.NewEventBus()

	// The expiry callback closes over the manager pointer, which is only
	// assigned below; the client can not see a 401 before then.
	var sessions *session.Manager

	client, err := api.New(api.Config{
		BaseURL: rest.BaseURL,
		Timeout: rest.Timeout(),
		Logger:  subsystemLogger(l, "api"),
		OnSessionExpired: func() {
			if sessions != nil {
				sessions.HandleExpiry()
			}
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to construct api client: %w", err)
	}

	sessions = session.NewManager(client, client, client, bus, subsystemLogger(l, "session"))
	st := store.New(client, bus, subsystemLogger(l, "store"))
	g := guard.New(sessions, st, subsystemLogger(l, "guard"))

	return &runtime{
		client:      client,
		sessions:    sessions,
		store:       st,
		guard:       g,
		bus:         bus,
		credentials: rest.Credentials,
	}, nil
}

func subsystemLogger(l logwrap.Logger, source string) logwrap.Logger {
	wl := logwrap.New(nest.Wrap(l))
	wl.AddOptionsToLogger(logwrap.Source(source))

	return wl
}
