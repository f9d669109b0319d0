package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const lastStateFile = "laststate.json"

// lastState is the sliver of UI state that survives restarts: which home
// the user was looking at.
type lastState struct {
	CurrentHome string `json:"currentHome"`
}

func loadLastState(file string) (string, error) {
	data, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("failed to read last state file: %w", err)
	}

	ls := lastState{}

	if err := json.Unmarshal(data, &ls); err != nil {
		return "", fmt.Errorf("failed to parse last state file: %w", err)
	}

	return ls.CurrentHome, nil
}

func saveLastState(file string, homeId string) error {
	data, err := json.Marshal(lastState{CurrentHome: homeId})
	if err != nil {
		return fmt.Errorf("failed to encode last state: %w", err)
	}

	return atomicWriteFile(file, data, 0600)
}

// atomicWriteFile writes to a temporary sibling and renames it into place,
// so a crash mid-write never leaves a truncated file behind.
func atomicWriteFile(name string, data []byte, perm os.FileMode) error {
	tmpName := fmt.Sprintf("%s-%d-new", name, time.Now().UnixNano()/int64(time.Millisecond))

	if err := os.WriteFile(tmpName, data, perm); err != nil {
		return fmt.Errorf("failed to write new file: %w", err)
	}

	if err := os.Rename(tmpName, name); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to move new file into place: %w", err)
	}

	return nil
}
