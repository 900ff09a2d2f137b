package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvWithDefault(t *testing.T) {
	t.Run("returns the default when unset", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnvWithDefault("MIRRORMAZE_TEST_UNSET", "fallback"))
	})

	t.Run("returns the value when set", func(t *testing.T) {
		t.Setenv("MIRRORMAZE_TEST_STR", "custom")
		assert.Equal(t, "custom", getEnvWithDefault("MIRRORMAZE_TEST_STR", "fallback"))
	})
}

func TestGetEnvAsIntWithDefault(t *testing.T) {
	t.Run("returns the default when unset", func(t *testing.T) {
		assert.Equal(t, 21, getEnvAsIntWithDefault("MIRRORMAZE_TEST_UNSET", 21))
	})

	t.Run("parses a set value", func(t *testing.T) {
		t.Setenv("MIRRORMAZE_TEST_INT", "31")
		assert.Equal(t, 31, getEnvAsIntWithDefault("MIRRORMAZE_TEST_INT", 21))
	})

	t.Run("falls back on an unparsable value", func(t *testing.T) {
		t.Setenv("MIRRORMAZE_TEST_INT", "huge")
		assert.Equal(t, 21, getEnvAsIntWithDefault("MIRRORMAZE_TEST_INT", 21))
	})
}

func TestGetEnvAsFloatWithDefault(t *testing.T) {
	t.Run("returns the default when unset", func(t *testing.T) {
		assert.Equal(t, 0.5, getEnvAsFloatWithDefault("MIRRORMAZE_TEST_UNSET", 0.5))
	})

	t.Run("parses a set value", func(t *testing.T) {
		t.Setenv("MIRRORMAZE_TEST_FLOAT", "0.75")
		assert.Equal(t, 0.75, getEnvAsFloatWithDefault("MIRRORMAZE_TEST_FLOAT", 0.5))
	})

	t.Run("falls back on an unparsable value", func(t *testing.T) {
		t.Setenv("MIRRORMAZE_TEST_FLOAT", "lots")
		assert.Equal(t, 0.5, getEnvAsFloatWithDefault("MIRRORMAZE_TEST_FLOAT", 0.5))
	})
}

func TestEnvsDefaults(t *testing.T) {
	// Envs is loaded at import time from a clean environment in CI; the
	// generation parameters must all carry usable defaults.
	assert.NotEmpty(t, Envs.MazeType)
	assert.GreaterOrEqual(t, Envs.GridSize, 3)
	assert.GreaterOrEqual(t, Envs.MaxGenAttempts, 1)
	assert.LessOrEqual(t, Envs.MinWallLength, Envs.MaxWallLength)
}
