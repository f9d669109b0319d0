package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/peterbourgon/ff/v3"
	"github.com/shimmeringbee/logwrap"
)

const DefaultDirectoryPermissions = 0700

type Directories struct {
	Config string
	Data   string
	Log    string
}

// Settings is everything the command line and CASAVIEW_* environment
// variables control.
type Settings struct {
	Directories Directories

	Server        string
	Watch         bool
	WatchInterval time.Duration
}

func enumerateSettings(ctx context.Context, l logwrap.Logger) Settings {
	fs := flag.NewFlagSet("casaview", flag.ExitOnError)

	defaultConfigDirectory, err := defaultDirectory("config")
	if err != nil {
		l.LogFatal(ctx, "Failed to construct default configuration directory.", logwrap.Err(err))
	}

	defaultDataDirectory, err := defaultDirectory("data")
	if err != nil {
		l.LogFatal(ctx, "Failed to construct default data directory.", logwrap.Err(err))
	}

	defaultLogDirectory, err := defaultDirectory("log")
	if err != nil {
		l.LogFatal(ctx, "Failed to construct default log directory.", logwrap.Err(err))
	}

	configDirectory := fs.String("config-directory", defaultConfigDirectory, "location of configuration files")
	dataDirectory := fs.String("data-directory", defaultDataDirectory, "location of data files")
	logDirectory := fs.String("log-directory", defaultLogDirectory, "location of log files")

	server := fs.String("server", "", "name of the server configuration to use, defaults to the first found")
	watch := fs.Bool("watch", false, "keep polling the selected home until interrupted")
	watchInterval := fs.Duration("watch-interval", 30*time.Second, "delay between polls in watch mode")

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("CASAVIEW")); err != nil {
		l.LogFatal(ctx, "Failed to parse environment/command line arguments.", logwrap.Err(err))
	}

	for _, dir := range []string{*configDirectory, *dataDirectory, *logDirectory} {
		if err := os.MkdirAll(dir, DefaultDirectoryPermissions); err != nil {
			l.LogFatal(ctx, "Failed to initialise directory.", logwrap.Datum("directory", dir), logwrap.Err(err))
		}
	}

	return Settings{
		Directories: Directories{
			Config: *configDirectory,
			Data:   *dataDirectory,
			Log:    *logDirectory,
		},
		Server:        *server,
		Watch:         *watch,
		WatchInterval: *watchInterval,
	}
}

func defaultDirectory(t string) (string, error) {
	if configDir, err := os.UserConfigDir(); err != nil {
		return "", err
	} else {
		return filepath.Join(configDir, "casaview", "dashboard", t), nil
	}
}
