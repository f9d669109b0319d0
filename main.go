package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/casaview/dashboard/guard"
	"github.com/casaview/dashboard/model"
	lw "github.com/shimmeringbee/logwrap"
	"github.com/shimmeringbee/logwrap/impl/golog"
)

func main() {
	ctx := context.Background()
	l := lw.New(golog.Wrap(log.New(os.Stderr, "", log.LstdFlags)))

	l.LogInfo(ctx, "CasaView: Dashboard - Starting...")

	settings := enumerateSettings(ctx, l)
	directories := settings.Directories

	l.LogInfo(ctx, "Directory enumeration complete.", lw.Datum("directories", directories))

	l, err := configureLogging(filepath.Join(directories.Config, "logging"), directories.Log, l)
	if err != nil {
		l.LogFatal(ctx, "Failed to configure logging.", lw.Err(err))
	}

	serverCfgs, err := loadServerConfigurations(filepath.Join(directories.Config, "servers"))
	if err != nil {
		l.LogFatal(ctx, "Failed to load server configurations.", lw.Err(err))
	}

	rest, serverName, err := selectServerConfiguration(serverCfgs, settings.Server)
	if err != nil {
		l.LogFatal(ctx, "Failed to select server configuration.", lw.Err(err))
	}

	l.LogInfo(ctx, "Using server configuration.", lw.Datum("name", serverName), lw.Datum("baseUrl", rest.BaseURL))

	rt, err := buildRuntime(l, rest)
	if err != nil {
		l.LogFatal(ctx, "Failed to construct runtime.", lw.Err(err))
	}

	if err := resolveSession(ctx, rt); err != nil {
		l.LogFatal(ctx, "Failed to resolve session.", lw.Err(err))
	}

	snap := rt.sessions.Snapshot()
	if snap.User != nil {
		l.LogInfo(ctx, "Session resolved.", lw.Datum("user", snap.User.FullName()))
	}

	stateFile := filepath.Join(directories.Data, lastStateFile)

	if remembered, err := loadLastState(stateFile); err != nil {
		l.LogWarn(ctx, "Failed to load last state, starting from the default home.", lw.Err(err))
	} else if remembered != "" {
		if err := rt.store.SelectHome(remembered); err != nil {
			l.LogDebug(ctx, "Remembered home no longer available.", lw.Datum("homeId", remembered))
		}
	}

	if err := refreshSlices(ctx, rt); err != nil {
		l.LogWarn(ctx, "Failed to load slices for the selected home.", lw.Err(err))
	}

	printSummary(os.Stdout, rt)

	if settings.Watch {
		watchCtx, cancel := signal.NotifyContext(ctx, os.Interrupt)
		watchHome(watchCtx, rt, settings.WatchInterval, l)
		cancel()

		l.LogInfo(ctx, "Signal received, shutting down.")
	}

	if err := saveLastState(stateFile, rt.store.CurrentHomeID()); err != nil {
		l.LogWarn(ctx, "Failed to persist last state.", lw.Err(err))
	}

	l.LogInfo(ctx, "Shut down complete.")
}

// resolveSession drives the guard to a decision, signing in with configured
// credentials when the guard asks for the login view.
func resolveSession(ctx context.Context, rt *runtime) error {
	decision, err := rt.guard.Resolve(ctx)

	if decision == guard.RedirectLogin {
		if rt.credentials == nil {
			return fmt.Errorf("not signed in and no credentials configured for this server")
		}

		if _, err := rt.sessions.Login(ctx, model.Credentials{Email: rt.credentials.Email, Password: rt.credentials.Password}); err != nil {
			return fmt.Errorf("failed to sign in: %w", err)
		}

		decision, err = rt.guard.Resolve(ctx)
	}

	if err != nil {
		return err
	}

	if decision != guard.Render {
		return fmt.Errorf("session resolution settled on %s", decision)
	}

	return nil
}
