package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"artistryprime-go/internal/emailjs"
)

type Config struct {
	HTTPPort   string
	PrettyHTML bool

	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string
	EmailJSPrivateKey string
	EmailJSEndpoint   string
	ContactToEmail    string

	ArchiveEnabled   bool
	ArchiveRetention time.Duration
	PurgeCronSpec    string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPPort:          envOrDefault("HTTP_PORT", "3000"),
		EmailJSServiceID:  envOrDefault("EMAILJS_SERVICE_ID", "service_3ul36gu"),
		EmailJSTemplateID: envOrDefault("EMAILJS_TEMPLATE_ID", "template_ifx8hkg"),
		EmailJSPublicKey:  envOrDefault("EMAILJS_PUBLIC_KEY", "DZwPBpziySQaPFuCK"),
		EmailJSPrivateKey: os.Getenv("EMAILJS_PRIVATE_KEY"),
		EmailJSEndpoint:   envOrDefault("EMAILJS_ENDPOINT", emailjs.DefaultEndpoint),
		ContactToEmail:    envOrDefault("CONTACT_TO_EMAIL", "artistryprime5@gmail.com"),
		PurgeCronSpec:     envOrDefault("ARCHIVE_PURGE_CRON", "0 3 * * *"),
		DBHost:            envOrDefault("DB_HOST", "localhost"),
		DBPort:            envOrDefault("DB_PORT", "5432"),
		DBUser:            envOrDefault("DB_USERNAME", "postgres"),
		DBPassword:        envOrDefault("DB_PASSWORD", "postgres"),
		DBName:            envOrDefault("DB_DATABASE", "artistryprime"),
		DBSSLMode:         envOrDefault("DB_SSLMODE", "disable"),
	}

	var err error
	if cfg.PrettyHTML, err = envBool("PRETTY_HTML"); err != nil {
		return cfg, err
	}
	if cfg.ArchiveEnabled, err = envBool("ARCHIVE_ENABLED"); err != nil {
		return cfg, err
	}

	days, err := envOrInt("ARCHIVE_RETENTION_DAYS", 90)
	if err != nil {
		return cfg, err
	}
	if days <= 0 {
		return cfg, fmt.Errorf("invalid ARCHIVE_RETENTION_DAYS: %d", days)
	}
	cfg.ArchiveRetention = time.Duration(days) * 24 * time.Hour

	if cfg.EmailJSServiceID == "" || cfg.EmailJSTemplateID == "" || cfg.EmailJSPublicKey == "" {
		return cfg, errors.New("missing EMAILJS_SERVICE_ID, EMAILJS_TEMPLATE_ID or EMAILJS_PUBLIC_KEY")
	}

	if cfg.ArchiveEnabled && (cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "") {
		return cfg, errors.New("missing database configuration")
	}

	return cfg, nil
}

func (c Config) EmailJSCredentials() emailjs.Credentials {
	return emailjs.Credentials{
		ServiceID:  c.EmailJSServiceID,
		TemplateID: c.EmailJSTemplateID,
		PublicKey:  c.EmailJSPublicKey,
		PrivateKey: c.EmailJSPrivateKey,
	}
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func envOrInt(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func envBool(key string) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
