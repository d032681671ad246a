package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HANGMAN_NUM_GUESSES", "HANGMAN_WORD_FILE", "LOG_LEVEL", "PORT", "CLIENT_ORIGIN"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestParseDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, DefaultNumGuesses, cfg.NumGuesses)
	assert.Equal(t, "secret_word.txt", cfg.WordFile)
	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestParseOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HANGMAN_NUM_GUESSES", "7")
	t.Setenv("HANGMAN_WORD_FILE", "/tmp/word.txt")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.NumGuesses)
	assert.Equal(t, "/tmp/word.txt", cfg.WordFile)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"HANGMAN_NUM_GUESSES": "lots",
		"LOG_LEVEL":           "loud",
	}
	for k, v := range cases {
		clearEnv(t)
		t.Setenv(k, v)
		_, err := Parse()
		assert.Error(t, err, "%s=%s", k, v)
	}

	clearEnv(t)
	t.Setenv("HANGMAN_NUM_GUESSES", "-1")
	_, err := Parse()
	assert.ErrorContains(t, err, "must not be negative")
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HANGMAN_NUM_GUESSES=3\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("HANGMAN_NUM_GUESSES") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.NumGuesses)
}
