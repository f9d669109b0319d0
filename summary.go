package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/casaview/dashboard/model"
)

// printSummary renders the selected home's slices as a plain text report.
func printSummary(w io.Writer, rt *runtime) {
	home, found := rt.store.CurrentHome()
	if !found {
		fmt.Fprintln(w, "No homes available. Create one through the dashboard first.")
		return
	}

	fmt.Fprintf(w, "%s (%s, %s)\n", home.Name, home.Type, home.Role)
	fmt.Fprintf(w, "%s, %s, %s %s\n\n", home.Address.Street, home.Address.City, home.Address.Region, home.Address.Country)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	rooms := rt.store.Rooms()
	fmt.Fprintf(tw, "Rooms (%d)\n", len(rooms))

	for _, room := range rooms {
		fmt.Fprintf(tw, "\t%s\t%s\n", room.Name, room.Type)
	}

	devices := rt.store.Devices()
	fmt.Fprintf(tw, "Devices (%d)\n", len(devices))

	for _, device := range devices {
		fmt.Fprintf(tw, "\t%s\t%s\t%s\n", device.Name, device.Type, onlineLabel(device.Status))
	}

	sensors := rt.store.Sensors()
	fmt.Fprintf(tw, "Sensors (%d)\n", len(sensors))

	for _, sensor := range sensors {
		fmt.Fprintf(tw, "\t%s\t%s\t%s\n", sensor.Name, sensor.Type, readingLabel(sensor.Reading))
	}

	automations := rt.store.Automations()
	fmt.Fprintf(tw, "Automations (%d)\n", len(automations))

	for _, automation := range automations {
		fmt.Fprintf(tw, "\t%s\t%s\t%s\n", automation.Name, automation.TriggerType, activeLabel(automation.IsActive))
	}

	_ = tw.Flush()
}

func onlineLabel(status model.DeviceStatus) string {
	if status.Online {
		return "online"
	}

	return "offline"
}

func readingLabel(reading *model.SensorReading) string {
	if reading == nil {
		return "no reading"
	}

	return fmt.Sprintf("%.1f%s", reading.Value, reading.Unit)
}

func activeLabel(active bool) string {
	if active {
		return "active"
	}

	return "paused"
}
