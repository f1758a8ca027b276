package config

import (
  "log"
  "os"
)

// DefaultPort is used when PORT is unset or empty.
const DefaultPort = "3000"

// Config holds the runtime configuration. Each field maps to one
// environment variable.
type Config struct {
  DatabaseURL string // Postgres connection string (DATABASE_URL)
  Port        string // HTTP listen port (PORT)
}

// Load reads configuration from the environment. DATABASE_URL is
// required; PORT falls back to DefaultPort.
func Load() Config {
  return Config{
    DatabaseURL: must("DATABASE_URL"),
    Port:        getenv("PORT", DefaultPort),
  }
}

func must(key string) string {
  v, ok := os.LookupEnv(key)
  if !ok || v == "" {
    log.Fatalf("missing required env var: %s", key)
  }
  return v
}

func getenv(key, fallback string) string {
  if v := os.Getenv(key); v != "" {
    return v
  }
  return fallback
}
