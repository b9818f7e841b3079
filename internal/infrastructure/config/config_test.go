package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"FGNSB_APP_NAME":                   os.Getenv("FGNSB_APP_NAME"),
		"FGNSB_APP_ENV":                    os.Getenv("FGNSB_APP_ENV"),
		"FGNSB_LOG_LEVEL":                  os.Getenv("FGNSB_LOG_LEVEL"),
		"FGNSB_LOG_FORMAT":                 os.Getenv("FGNSB_LOG_FORMAT"),
		"FGNSB_OUTPUT_DIR":                 os.Getenv("FGNSB_OUTPUT_DIR"),
		"FGNSB_OUTPUT_FILE_PREFIX":         os.Getenv("FGNSB_OUTPUT_FILE_PREFIX"),
		"FGNSB_ARCHIVE_ENABLED":            os.Getenv("FGNSB_ARCHIVE_ENABLED"),
		"FGNSB_ARCHIVE_BACKEND":            os.Getenv("FGNSB_ARCHIVE_BACKEND"),
		"FGNSB_ARCHIVE_BASE_PATH":          os.Getenv("FGNSB_ARCHIVE_BASE_PATH"),
		"FGNSB_ARCHIVE_RETENTION":          os.Getenv("FGNSB_ARCHIVE_RETENTION"),
		"FGNSB_STORAGE_BUCKET":             os.Getenv("FGNSB_STORAGE_BUCKET"),
		"FGNSB_STORAGE_ACCESS_KEY":         os.Getenv("FGNSB_STORAGE_ACCESS_KEY"),
		"FGNSB_STORAGE_SECRET_KEY":         os.Getenv("FGNSB_STORAGE_SECRET_KEY"),
		"FGNSB_STORAGE_REGION":             os.Getenv("FGNSB_STORAGE_REGION"),
		"FGNSB_STORAGE_PRESIGN_EXPIRATION": os.Getenv("FGNSB_STORAGE_PRESIGN_EXPIRATION"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "fgnsb-forms", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "stdout", cfg.Log.Output)
		assert.Equal(t, "", cfg.Output.Dir)
		assert.Equal(t, "fgnsb_", cfg.Output.FilePrefix)
		assert.False(t, cfg.Archive.Enabled)
		assert.Equal(t, "filesystem", cfg.Archive.Backend)
		assert.Equal(t, "./archive", cfg.Archive.BasePath)
		assert.Equal(t, time.Duration(0), cfg.Archive.Retention)
		assert.Equal(t, "us-east-1", cfg.Storage.Region)
		assert.Equal(t, 15*time.Minute, cfg.Storage.PresignExpiration)
	})

	t.Run("loads values from environment variables with FGNSB prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("FGNSB_APP_NAME", "forms-test")
		os.Setenv("FGNSB_APP_ENV", "testing")
		os.Setenv("FGNSB_LOG_LEVEL", "debug")
		os.Setenv("FGNSB_LOG_FORMAT", "json")
		os.Setenv("FGNSB_OUTPUT_DIR", "/var/forms")
		os.Setenv("FGNSB_ARCHIVE_ENABLED", "true")
		os.Setenv("FGNSB_ARCHIVE_BASE_PATH", "/var/archive")
		os.Setenv("FGNSB_ARCHIVE_RETENTION", "720h")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "forms-test", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "/var/forms", cfg.Output.Dir)
		assert.True(t, cfg.Archive.Enabled)
		assert.Equal(t, "/var/archive", cfg.Archive.BasePath)
		assert.Equal(t, 720*time.Hour, cfg.Archive.Retention)
	})

	t.Run("rejects unknown archive backend", func(t *testing.T) {
		clearEnv()
		os.Setenv("FGNSB_ARCHIVE_BACKEND", "tape")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "archive.backend")
	})

	t.Run("s3 backend requires a bucket when archiving is enabled", func(t *testing.T) {
		clearEnv()
		os.Setenv("FGNSB_ARCHIVE_ENABLED", "true")
		os.Setenv("FGNSB_ARCHIVE_BACKEND", "s3")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage.bucket")
	})

	t.Run("s3 backend with bucket passes validation", func(t *testing.T) {
		clearEnv()
		os.Setenv("FGNSB_ARCHIVE_ENABLED", "true")
		os.Setenv("FGNSB_ARCHIVE_BACKEND", "s3")
		os.Setenv("FGNSB_STORAGE_BUCKET", "fgnsb-archive")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "s3", cfg.Archive.Backend)
		assert.Equal(t, "fgnsb-archive", cfg.Storage.Bucket)
	})

	t.Run("production requires archiving", func(t *testing.T) {
		clearEnv()
		os.Setenv("FGNSB_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "archive.enabled")
	})

	t.Run("production s3 backend requires credentials", func(t *testing.T) {
		clearEnv()
		os.Setenv("FGNSB_APP_ENV", "production")
		os.Setenv("FGNSB_ARCHIVE_ENABLED", "true")
		os.Setenv("FGNSB_ARCHIVE_BACKEND", "s3")
		os.Setenv("FGNSB_STORAGE_BUCKET", "fgnsb-archive")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage.access_key")

		os.Setenv("FGNSB_STORAGE_ACCESS_KEY", "AKIA123")
		_, err = Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage.secret_key")

		os.Setenv("FGNSB_STORAGE_SECRET_KEY", "secret")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})

	t.Run("production filesystem backend passes with archiving on", func(t *testing.T) {
		clearEnv()
		os.Setenv("FGNSB_APP_ENV", "production")
		os.Setenv("FGNSB_ARCHIVE_ENABLED", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "filesystem", cfg.Archive.Backend)
	})
}

func TestApplyDefaultsPreservesExplicitValues(t *testing.T) {
	cfg := &Config{
		App:     AppConfig{Name: "custom", Env: "staging"},
		Log:     LogConfig{Level: "warn", Format: "json", Output: "stderr"},
		Output:  OutputConfig{Dir: "/tmp/out", FilePrefix: "bond_"},
		Archive: ArchiveConfig{Backend: "s3", BasePath: "/archive"},
		Storage: StorageConfig{Region: "eu-west-1", PresignExpiration: time.Hour},
	}

	applyDefaults(cfg)

	assert.Equal(t, "custom", cfg.App.Name)
	assert.Equal(t, "staging", cfg.App.Env)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "bond_", cfg.Output.FilePrefix)
	assert.Equal(t, "s3", cfg.Archive.Backend)
	assert.Equal(t, "eu-west-1", cfg.Storage.Region)
	assert.Equal(t, time.Hour, cfg.Storage.PresignExpiration)
}

func TestValidateRetention(t *testing.T) {
	cfg := &Config{
		App:     AppConfig{Env: "development"},
		Archive: ArchiveConfig{Backend: "filesystem", Retention: -time.Hour},
	}

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retention")
}
