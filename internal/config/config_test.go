package config_test

import (
	"strings"
	"testing"

	"fitcoach/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GEMINI_API_KEY",
		"MONGODB_URL",
		"DATABASE_NAME",
		"FITCOACH_HOST",
		"FITCOACH_PORT",
		"FITCOACH_CONTEXT_WINDOW",
		"FITCOACH_HISTORY_LIMIT",
		"FITCOACH_MAX_MESSAGE_LENGTH",
		"FITCOACH_STORAGE_BACKEND",
		"FITCOACH_USE_MOCK_LLM",
		"FITCOACH_MODEL_NAME",
		"FITCOACH_GENERATE_TIMEOUT",
		"FITCOACH_USER_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MongoURL != "mongodb://localhost:27017" {
		t.Errorf("MongoURL = %q", cfg.MongoURL)
	}
	if cfg.DatabaseName != "fitness_coach" {
		t.Errorf("DatabaseName = %q", cfg.DatabaseName)
	}
	if cfg.ContextWindow != 10 || cfg.HistoryLimit != 50 || cfg.MaxMessageLength != 1000 {
		t.Errorf("window sizes = %d/%d/%d", cfg.ContextWindow, cfg.HistoryLimit, cfg.MaxMessageLength)
	}
	if cfg.StorageBackend != config.BackendMongo {
		t.Errorf("StorageBackend = %q", cfg.StorageBackend)
	}
	if cfg.Addr() != "127.0.0.1:8000" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
	if cfg.UserID != "1" {
		t.Errorf("UserID = %q", cfg.UserID)
	}
}

func TestLoadMissingCredential(t *testing.T) {
	clearEnv(t)

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for missing GEMINI_API_KEY")
	} else if !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadMockLLMWithoutCredential(t *testing.T) {
	clearEnv(t)
	t.Setenv("FITCOACH_USE_MOCK_LLM", "1")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.UseMockLLM {
		t.Fatal("expected UseMockLLM")
	}
}

func TestLoadRejectsBadInt(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("FITCOACH_CONTEXT_WINDOW", "ten")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for non-numeric context window")
	}

	t.Setenv("FITCOACH_CONTEXT_WINDOW", "-5")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for negative context window")
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("FITCOACH_STORAGE_BACKEND", "postgres")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for unknown storage backend")
	}
}

func TestLoadCustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("FITCOACH_STORAGE_BACKEND", "memory")
	t.Setenv("FITCOACH_CONTEXT_WINDOW", "4")
	t.Setenv("FITCOACH_USER_ID", "coach-42")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StorageBackend != config.BackendMemory {
		t.Errorf("StorageBackend = %q", cfg.StorageBackend)
	}
	if cfg.ContextWindow != 4 {
		t.Errorf("ContextWindow = %d", cfg.ContextWindow)
	}
	if cfg.UserID != "coach-42" {
		t.Errorf("UserID = %q", cfg.UserID)
	}
}
