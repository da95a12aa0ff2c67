package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file with every key set
		path := writeConfig(t, "log-level: debug\nfirst-side: black\ntranscript-path: moves.txt\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "black", conf.FirstSide)
		assert.Equal(t, "moves.txt", conf.TranscriptPath)
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		path := writeConfig(t, "transcript-path: moves.txt\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "white", conf.FirstSide)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "first-side: white\n")
		t.Setenv("FIRST_SIDE", "black")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "black", conf.FirstSide)
	})

	t.Run("Returns error for a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
	})
}

func TestConfig_SlogLevel(t *testing.T) {
	t.Run("Maps known levels", func(t *testing.T) {
		levels := map[string]slog.Level{
			"debug": slog.LevelDebug,
			"info":  slog.LevelInfo,
			"warn":  slog.LevelWarn,
			"error": slog.LevelError,
		}

		for name, want := range levels {
			conf := &Config{LogLevel: name}

			level, err := conf.SlogLevel()

			require.NoError(t, err)
			assert.Equal(t, want, level)
		}
	})

	t.Run("Returns ErrUnknownLogLevel", func(t *testing.T) {
		conf := &Config{LogLevel: "verbose"}

		_, err := conf.SlogLevel()

		require.ErrorIs(t, err, ErrUnknownLogLevel)
	})
}
