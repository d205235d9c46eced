package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr %q", cfg.HTTPAddr)
	}
	if cfg.ScrapeBaseURL != "https://football.esportsbattle.com/" {
		t.Fatalf("unexpected ScrapeBaseURL %q", cfg.ScrapeBaseURL)
	}
	if cfg.ScanInterval != 30*time.Second {
		t.Fatalf("unexpected ScanInterval %s", cfg.ScanInterval)
	}
	if cfg.ScrapeTimeout != 15*time.Second {
		t.Fatalf("unexpected ScrapeTimeout %s", cfg.ScrapeTimeout)
	}
	if cfg.Timezone != "America/Sao_Paulo" {
		t.Fatalf("unexpected Timezone %q", cfg.Timezone)
	}
	if cfg.SMTPPort != 587 {
		t.Fatalf("unexpected SMTPPort %d", cfg.SMTPPort)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_ScanIntervalMustBePositive(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SCAN_INTERVAL", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for SCAN_INTERVAL=0")
	}
}

func TestLoad_ScanIntervalSeconds(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SCAN_INTERVAL", "45")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ScanInterval != 45*time.Second {
		t.Fatalf("unexpected ScanInterval %s", cfg.ScanInterval)
	}
}

func TestLoad_InvalidTimezone(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid TIMEZONE")
	}
}

func TestLoad_EmailFromFallsBackToUsername(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SMTP_USERNAME", "bot@example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.EmailFrom != "bot@example.com" {
		t.Fatalf("unexpected EmailFrom %q", cfg.EmailFrom)
	}
	if cfg.AlertTo != "bot@example.com" {
		t.Fatalf("unexpected AlertTo %q", cfg.AlertTo)
	}
}
