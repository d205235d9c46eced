package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tiagoh/esoccer-tracker/internal/platform/logging"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	HTTPAddr           string
	DBURL              string
	ScrapeBaseURL      string
	ScrapeTimeout      time.Duration
	ScanInterval       time.Duration
	Timezone           string
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	EmailFrom          string
	AlertTo            string
	ReportDir          string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	scrapeTimeout, err := time.ParseDuration(getEnv("SCRAPE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPE_TIMEOUT: %w", err)
	}
	if scrapeTimeout <= 0 {
		return Config{}, fmt.Errorf("SCRAPE_TIMEOUT must be > 0")
	}

	scanIntervalSeconds, err := getEnvAsInt("SCAN_INTERVAL", 30)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCAN_INTERVAL: %w", err)
	}
	if scanIntervalSeconds <= 0 {
		return Config{}, fmt.Errorf("SCAN_INTERVAL must be > 0")
	}

	smtpPort, err := getEnvAsInt("SMTP_PORT", 587)
	if err != nil {
		return Config{}, fmt.Errorf("parse SMTP_PORT: %w", err)
	}
	if smtpPort <= 0 {
		return Config{}, fmt.Errorf("SMTP_PORT must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	timezone := strings.TrimSpace(getEnv("TIMEZONE", "America/Sao_Paulo"))
	if _, err := time.LoadLocation(timezone); err != nil {
		return Config{}, fmt.Errorf("parse TIMEZONE %q: %w", timezone, err)
	}

	smtpUsername := strings.TrimSpace(getEnv("SMTP_USERNAME", ""))
	emailFrom := strings.TrimSpace(getEnv("EMAIL_FROM", smtpUsername))

	return Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("SERVICE_NAME", "esoccer-tracker"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		DBURL:              strings.TrimSpace(getEnv("DB_URL", "")),
		ScrapeBaseURL:      strings.TrimSpace(getEnv("SCRAPE_BASE_URL", "https://football.esportsbattle.com/")),
		ScrapeTimeout:      scrapeTimeout,
		ScanInterval:       time.Duration(scanIntervalSeconds) * time.Second,
		Timezone:           timezone,
		SMTPHost:           getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           smtpPort,
		SMTPUsername:       smtpUsername,
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		EmailFrom:          emailFrom,
		AlertTo:            strings.TrimSpace(getEnv("EMAIL_ALERT_TO", smtpUsername)),
		ReportDir:          getEnv("REPORT_DIR", "data"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}, nil
}

// Location resolves the configured timezone. Load already validated it.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s", v, EnvDev, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}

	return out
}
