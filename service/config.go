package service

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	// APIBaseURL is where the dashboard reaches the /api endpoints.
	APIBaseURL     string
	DBPath         string
	AllowedOrigins []string

	JWT struct {
		Secret     string
		Expiration time.Duration
	}

	Session struct {
		Secret string
	}

	Ollama struct {
		URL     string
		Model   string
		Enabled bool
	}

	Twitter struct {
		APIURL      string
		AccessToken string
	}

	Amazon struct {
		TokenURL string
		Endpoint string
	}

	// CatalogSource "sample" syncs the fixture catalog for every seller.
	CatalogSource     string
	AnalyticsInterval time.Duration
	CacheStaleTime    time.Duration
}

// LoadConfig reads .env.local and .env (when present) and then the
// environment. Variables already set win over the files.
func LoadConfig() (*Config, error) {
	for _, file := range []string{".env.local", ".env"} {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to load env file", "file", file, "error", err)
		}
	}

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8000"),
		DBPath:      getEnv("DB_PATH", "./db/dealerpost.db"),
	}
	config.APIBaseURL = getEnv("API_BASE_URL", config.BaseURL)
	config.AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8000"))

	// JWT
	config.JWT.Secret = getEnv("JWT_SECRET", "development-secret")
	config.JWT.Expiration = time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute

	// Session
	config.Session.Secret = getEnv("SESSION_SECRET", "development-session-secret-32byte")

	// Ollama
	config.Ollama.URL = getEnv("OLLAMA_URL", "http://localhost:11434")
	config.Ollama.Model = getEnv("OLLAMA_MODEL", "mistral:7b")
	config.Ollama.Enabled = getEnv("OLLAMA_ENABLED", "true") == "true"

	// Twitter
	config.Twitter.APIURL = getEnv("TWITTER_API_URL", "https://api.twitter.com")
	config.Twitter.AccessToken = getEnv("TWITTER_ACCESS_TOKEN", "")

	// Amazon
	config.Amazon.TokenURL = getEnv("AMAZON_TOKEN_URL", "https://api.amazon.com/auth/o2/token")
	config.Amazon.Endpoint = getEnv("AMAZON_SPAPI_ENDPOINT", "https://sellingpartnerapi-eu.amazon.com")

	config.CatalogSource = getEnv("CATALOG_SOURCE", "amazon")
	config.AnalyticsInterval = getEnvDuration("ANALYTICS_INTERVAL", time.Hour)
	config.CacheStaleTime = getEnvDuration("CACHE_STALE_TIME", 30*time.Second)

	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
