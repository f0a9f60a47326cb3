package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv(func(string) string { return "" })

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.Development())
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "stub", cfg.LLMBackend)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, "memory", cfg.ToolsCache)
	assert.Empty(t, cfg.PostgresURL)
}

func TestFromEnv_Overrides(t *testing.T) {
	env := map[string]string{
		"PORT":         "9090",
		"APP_ENV":      "Development",
		"CORS_ORIGINS": "http://a.test, http://b.test,",
		"LLM_BACKEND":  "OpenAI",
		"TOOLS_CACHE":  "badger",
	}
	cfg := FromEnv(func(k string) string { return env[k] })

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Development())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "openai", cfg.LLMBackend)
	assert.Equal(t, "badger", cfg.ToolsCache)
}
