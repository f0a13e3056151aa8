package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artistryprime-go/internal/emailjs"
)

var configKeys = []string{
	"HTTP_PORT", "PRETTY_HTML",
	"EMAILJS_SERVICE_ID", "EMAILJS_TEMPLATE_ID", "EMAILJS_PUBLIC_KEY", "EMAILJS_PRIVATE_KEY", "EMAILJS_ENDPOINT",
	"CONTACT_TO_EMAIL",
	"ARCHIVE_ENABLED", "ARCHIVE_RETENTION_DAYS", "ARCHIVE_PURGE_CRON",
	"DB_HOST", "DB_PORT", "DB_USERNAME", "DB_PASSWORD", "DB_DATABASE", "DB_SSLMODE",
}

// clearEnv runs each test from an empty configuration. Tests execute from
// the package directory, so no .env file is picked up.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.HTTPPort)
	assert.False(t, cfg.PrettyHTML)
	assert.Equal(t, emailjs.Credentials{
		ServiceID:  "service_3ul36gu",
		TemplateID: "template_ifx8hkg",
		PublicKey:  "DZwPBpziySQaPFuCK",
	}, cfg.EmailJSCredentials())
	assert.Equal(t, emailjs.DefaultEndpoint, cfg.EmailJSEndpoint)
	assert.Equal(t, "artistryprime5@gmail.com", cfg.ContactToEmail)
	assert.False(t, cfg.ArchiveEnabled)
	assert.Equal(t, 90*24*time.Hour, cfg.ArchiveRetention)
	assert.Equal(t, "0 3 * * *", cfg.PurgeCronSpec)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("PRETTY_HTML", "true")
	t.Setenv("EMAILJS_PRIVATE_KEY", "secret")
	t.Setenv("ARCHIVE_ENABLED", "1")
	t.Setenv("ARCHIVE_RETENTION_DAYS", "30")
	t.Setenv("DB_HOST", "db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.True(t, cfg.PrettyHTML)
	assert.Equal(t, "secret", cfg.EmailJSCredentials().PrivateKey)
	assert.True(t, cfg.ArchiveEnabled)
	assert.Equal(t, 30*24*time.Hour, cfg.ArchiveRetention)
	assert.Equal(t, "postgres://postgres:postgres@db:5432/artistryprime?sslmode=disable", cfg.PostgresDSN())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"PRETTY_HTML":            "maybe",
		"ARCHIVE_ENABLED":        "yes please",
		"ARCHIVE_RETENTION_DAYS": "ninety",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsNonPositiveRetention(t *testing.T) {
	clearEnv(t)
	t.Setenv("ARCHIVE_RETENTION_DAYS", "0")
	_, err := Load()
	assert.Error(t, err)
}
