package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	CORSOrigins []string

	LLMBackend  string
	OpenAIKey   string
	OpenAIModel string
	OpenAIURL   string
	GeminiKey   string
	GeminiModel string

	PostgresURL       string
	CatalogFile       string
	PlannerTablesFile string

	ToolsCache    string
	ToolsCacheDir string
}

func (c Config) Development() bool {
	return c.Env == "development"
}

// Load reads .env when present, then the process environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from any lookup function.
func FromEnv(getenv func(string) string) Config {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	var origins []string
	for _, o := range strings.Split(get("CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		Port:              get("PORT", "8000"),
		Env:               strings.ToLower(get("APP_ENV", "production")),
		CORSOrigins:       origins,
		LLMBackend:        strings.ToLower(get("LLM_BACKEND", "stub")),
		OpenAIKey:         get("OPENAI_API_KEY", ""),
		OpenAIModel:       get("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIURL:         get("OPENAI_BASE_URL", ""),
		GeminiKey:         get("GEMINI_API_KEY", ""),
		GeminiModel:       get("GEMINI_MODEL", "gemini-1.5-flash"),
		PostgresURL:       get("POSTGRES_URL", ""),
		CatalogFile:       get("CATALOG_FILE", ""),
		PlannerTablesFile: get("PLANNER_TABLES_FILE", ""),
		ToolsCache:        strings.ToLower(get("TOOLS_CACHE", "memory")),
		ToolsCacheDir:     get("TOOLS_CACHE_DIR", "data/cache"),
	}
}
