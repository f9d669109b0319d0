package main

import (
	"context"
	"time"

	"github.com/casaview/dashboard/state"
	"github.com/cenkalti/backoff/v4"
	"github.com/shimmeringbee/logwrap"
)

// refreshSlices reloads every slice of the currently selected home. With no
// home selected there is nothing to do.
func refreshSlices(ctx context.Context, rt *runtime) error {
	homeId := rt.store.CurrentHomeID()
	if homeId == "" {
		return nil
	}

	if err := rt.store.FetchRoomsByHomeID(ctx, homeId); err != nil {
		return err
	}

	if err := rt.store.FetchDevicesByHomeID(ctx, homeId); err != nil {
		return err
	}

	if err := rt.store.FetchSensorsByHomeID(ctx, homeId); err != nil {
		return err
	}

	return rt.store.FetchAutomationsByHomeID(ctx, homeId)
}

// watchHome polls the selected home until the context ends, reporting store
// events as they happen. Failed polls are retried with exponential backoff
// before the next interval is awaited.
func watchHome(ctx context.Context, rt *runtime, interval time.Duration, l logwrap.Logger) {
	events := rt.bus.Subscribe(16)
	defer rt.bus.Unsubscribe(events)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.LogInfo(ctx, "Watching home for changes.", logwrap.Datum("homeId", rt.store.CurrentHomeID()), logwrap.Datum("interval", interval.String()))

	for {
		select {
		case <-ctx.Done():
			return
		case e := <-events:
			logStoreEvent(ctx, l, e)
		case <-ticker.C:
			if err := pollWithRetry(ctx, rt); err != nil {
				l.LogWarn(ctx, "Poll failed after retries, will try again next interval.", logwrap.Err(err))
			}
		}
	}
}

func pollWithRetry(ctx context.Context, rt *runtime) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)

	return backoff.Retry(func() error {
		if err := rt.store.FetchHomes(ctx); err != nil {
			return err
		}

		return refreshSlices(ctx, rt)
	}, policy)
}

func logStoreEvent(ctx context.Context, l logwrap.Logger, e any) {
	switch event := e.(type) {
	case state.HomesReplaced:
		l.LogInfo(ctx, "Home list changed.", logwrap.Datum("count", event.Count))
	case state.HomeSelected:
		l.LogInfo(ctx, "Home selection changed.", logwrap.Datum("homeId", event.HomeID))
	case state.SliceUpdated:
		l.LogDebug(ctx, "Slice refreshed.", logwrap.Datum("homeId", event.HomeID), logwrap.Datum("slice", string(event.Slice)))
	case state.AutomationToggled:
		l.LogInfo(ctx, "Automation toggled.", logwrap.Datum("automationId", event.AutomationID), logwrap.Datum("isActive", event.IsActive))
	case state.SessionExpired:
		l.LogWarn(ctx, "Session expired while watching.")
	}
}
