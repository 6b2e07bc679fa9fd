package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaults verifies that Load falls back to the expected defaults
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "cpp-helper.db", cfg.Storage.Path)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.ModelName)
	assert.Equal(t, 3, cfg.LLM.MaxRetries)
	assert.Equal(t, 2000, cfg.LLM.RetryInitialDelayMs)
	assert.InDelta(t, 0.9, cfg.LLM.GenerateTemperature, 0.001)
	assert.InDelta(t, 0.2, cfg.LLM.EvaluateTemperature, 0.001)
	assert.Empty(t, cfg.LLM.GeminiAPIKey, "no default server-wide key")
}

// TestLoadFromEnv verifies that Load reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CPPQUIZ_SERVER_PORT", "9090")
	t.Setenv("CPPQUIZ_SERVER_LOG_LEVEL", "debug")
	t.Setenv("CPPQUIZ_STORAGE_PATH", "/tmp/quiz-test.db")
	t.Setenv("CPPQUIZ_LLM_GEMINI_API_KEY", "test-api-key")
	t.Setenv("CPPQUIZ_LLM_MODEL_NAME", "gemini-2.5-pro")
	t.Setenv("CPPQUIZ_LLM_MAX_RETRIES", "5")

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "/tmp/quiz-test.db", cfg.Storage.Path)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.ModelName)
	assert.Equal(t, 5, cfg.LLM.MaxRetries)
}

// TestLoadValidationErrors verifies that invalid values are rejected.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envName string
		value   string
	}{
		{"port out of range", "CPPQUIZ_SERVER_PORT", "999999"},
		{"invalid log level", "CPPQUIZ_SERVER_LOG_LEVEL", "verbose"},
		{"negative retries", "CPPQUIZ_LLM_MAX_RETRIES", "-1"},
		{"temperature out of range", "CPPQUIZ_LLM_GENERATE_TEMPERATURE", "3.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.envName, tc.value)

			cfg, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg)
		})
	}
}
