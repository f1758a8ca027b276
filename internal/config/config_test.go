package config

import "testing"

func TestLoadDefaultPort(t *testing.T) {
  t.Setenv("DATABASE_URL", "postgres://u:p@db.example.com:5432/people")
  t.Setenv("PORT", "")

  cfg := Load()
  if cfg.Port != DefaultPort {
    t.Errorf("Port = %q, want %q", cfg.Port, DefaultPort)
  }
  if cfg.DatabaseURL == "" {
    t.Error("DatabaseURL is empty")
  }
}

func TestLoadExplicitPort(t *testing.T) {
  t.Setenv("DATABASE_URL", "postgres://u:p@db.example.com:5432/people")
  t.Setenv("PORT", "8081")

  if cfg := Load(); cfg.Port != "8081" {
    t.Errorf("Port = %q, want 8081", cfg.Port)
  }
}
