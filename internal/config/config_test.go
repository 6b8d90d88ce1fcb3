package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "localhost", cfg.Database.Host)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	require.EqualValues(t, 10*1024*1024, cfg.Storage.MaxUploadBytes)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DB_PORT", "5544")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("GCS_BUCKET", "onboarding-docs")

	cfg := Load()
	require.Equal(t, "9999", cfg.Server.Port)
	require.Equal(t, 5544, cfg.Database.Port)
	require.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiry)
	require.EqualValues(t, 1024, cfg.Storage.MaxUploadBytes)
	require.Equal(t, "onboarding-docs", cfg.Storage.GCSBucket)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("JWT_ACCESS_EXPIRY", "not-a-duration")

	cfg := Load()
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
}

func TestDatabaseURL(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "svc",
		Password: "pw",
		DBName:   "snapaml",
		SSLMode:  "require",
	}
	require.Equal(t,
		"postgres://svc:pw@db.internal:5432/snapaml?sslmode=require&prepare_threshold=0",
		cfg.URL())
}
