package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: a config file with only the backend URLs
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "backend:\n  submit-url: http://backend/api/game\n  history-url: http://backend/games\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: defaults are filled in
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 5*time.Second, conf.Backend.Timeout)
		assert.Equal(t, uint64(3), conf.Backend.SubmitAttempts)
		assert.Equal(t, "simultaneous", conf.Game.EntryMode)
		assert.Equal(t, "http://backend/games", conf.Backend.HistoryURL)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "backend:\n  submit-url: http://backend/api/game\n  history-url: http://backend/games\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		t.Setenv("GAME_ENTRY_MODE", "alternating")

		conf := MustLoad(path)

		assert.Equal(t, "alternating", conf.Game.EntryMode)
	})

	t.Run("Panics when the file is missing", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
