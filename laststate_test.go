package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLastState(t *testing.T) {
	t.Run("a missing file means no remembered home", func(t *testing.T) {
		homeId, err := loadLastState(filepath.Join(t.TempDir(), lastStateFile))

		assert.NoError(t, err)
		assert.Equal(t, "", homeId)
	})

	t.Run("round trips the remembered home", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), lastStateFile)

		assert.NoError(t, saveLastState(file, "h1"))

		homeId, err := loadLastState(file)
		assert.NoError(t, err)
		assert.Equal(t, "h1", homeId)
	})

	t.Run("overwrites a previous remembered home in place", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), lastStateFile)

		assert.NoError(t, saveLastState(file, "h1"))
		assert.NoError(t, saveLastState(file, "h2"))

		homeId, err := loadLastState(file)
		assert.NoError(t, err)
		assert.Equal(t, "h2", homeId)
	})

	t.Run("rejects a corrupt file rather than guessing", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), lastStateFile)

		assert.NoError(t, os.WriteFile(file, []byte(`{`), 0600))

		_, err := loadLastState(file)
		assert.Error(t, err)
	})
}
