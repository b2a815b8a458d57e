package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type StorageBackend string

const (
	BackendMongo  StorageBackend = "mongo"
	BackendMemory StorageBackend = "memory"
)

type Config struct {
	GeminiAPIKey string
	ModelName    string

	MongoURL     string
	DatabaseName string

	Host string
	Port string

	ContextWindow    int // turns fetched as generation context
	HistoryLimit     int // turns returned by the history endpoint
	MaxMessageLength int // runes kept of an incoming message

	StorageBackend StorageBackend
	UseMockLLM     bool

	GenerateTimeout time.Duration

	// UserID is the fixed conversation identity every request acts on.
	UserID string
}

// Load reads all configuration from the environment. A missing Gemini
// credential is fatal unless the mock LLM is selected.
func Load() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		ModelName:    getEnv("FITCOACH_MODEL_NAME", "gemini-2.5-flash"),

		MongoURL:     getEnv("MONGODB_URL", "mongodb://localhost:27017"),
		DatabaseName: getEnv("DATABASE_NAME", "fitness_coach"),

		Host: getEnv("FITCOACH_HOST", "127.0.0.1"),
		Port: getEnv("FITCOACH_PORT", "8000"),

		UserID: getEnv("FITCOACH_USER_ID", "1"),
	}

	var err error
	if cfg.ContextWindow, err = getIntEnv("FITCOACH_CONTEXT_WINDOW", 10); err != nil {
		return nil, err
	}
	if cfg.HistoryLimit, err = getIntEnv("FITCOACH_HISTORY_LIMIT", 50); err != nil {
		return nil, err
	}
	if cfg.MaxMessageLength, err = getIntEnv("FITCOACH_MAX_MESSAGE_LENGTH", 1000); err != nil {
		return nil, err
	}

	timeoutSecs, err := getIntEnv("FITCOACH_GENERATE_TIMEOUT", 30)
	if err != nil {
		return nil, err
	}
	cfg.GenerateTimeout = time.Duration(timeoutSecs) * time.Second

	switch backend := getEnv("FITCOACH_STORAGE_BACKEND", "mongo"); backend {
	case "mongo":
		cfg.StorageBackend = BackendMongo
	case "memory":
		cfg.StorageBackend = BackendMemory
	default:
		return nil, fmt.Errorf("unknown FITCOACH_STORAGE_BACKEND %q", backend)
	}

	cfg.UseMockLLM = getBoolEnv("FITCOACH_USE_MOCK_LLM", false)

	if !cfg.UseMockLLM && cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required in environment (set FITCOACH_USE_MOCK_LLM=1 for local development)")
	}

	return cfg, nil
}

// Addr is the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "TRUE"
}

func getIntEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}
