package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Log     LogConfig
	Output  OutputConfig
	Archive ArchiveConfig
	Storage StorageConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// OutputConfig holds settings for freshly generated documents
type OutputConfig struct {
	Dir        string // directory for generated files, empty = system temp
	FilePrefix string // prefix for generated file names
}

// ArchiveConfig holds settings for long-term document retention
type ArchiveConfig struct {
	Enabled   bool
	Backend   string        // filesystem or s3
	BasePath  string        // root directory for the filesystem backend
	Retention time.Duration // 0 = keep forever
}

// StorageConfig holds S3-compatible object storage settings for the
// s3 archive backend
type StorageConfig struct {
	Endpoint          string
	Region            string
	Bucket            string
	AccessKey         string
	SecretKey         string
	UseSSL            bool
	UsePathStyle      bool
	PresignExpiration time.Duration
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with FGNSB_ prefix (e.g., FGNSB_STORAGE_SECRET_KEY)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	// Set config file settings
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/fgnsb")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Enable environment variable override
	v.SetEnvPrefix("FGNSB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Build config struct
	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Output: OutputConfig{
			Dir:        v.GetString("output.dir"),
			FilePrefix: v.GetString("output.file_prefix"),
		},
		Archive: ArchiveConfig{
			Enabled:   v.GetBool("archive.enabled"),
			Backend:   v.GetString("archive.backend"),
			BasePath:  v.GetString("archive.base_path"),
			Retention: v.GetDuration("archive.retention"),
		},
		Storage: StorageConfig{
			Endpoint:          v.GetString("storage.endpoint"),
			Region:            v.GetString("storage.region"),
			Bucket:            v.GetString("storage.bucket"),
			AccessKey:         v.GetString("storage.access_key"),
			SecretKey:         v.GetString("storage.secret_key"),
			UseSSL:            v.GetBool("storage.use_ssl"),
			UsePathStyle:      v.GetBool("storage.use_path_style"),
			PresignExpiration: v.GetDuration("storage.presign_expiration"),
		},
	}

	// Apply defaults for empty values
	applyDefaults(cfg)

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "fgnsb-forms"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	// Output.Dir stays empty by default so the system temp dir is used
	if cfg.Output.FilePrefix == "" {
		cfg.Output.FilePrefix = "fgnsb_"
	}
	if cfg.Archive.Backend == "" {
		cfg.Archive.Backend = "filesystem"
	}
	if cfg.Archive.BasePath == "" {
		cfg.Archive.BasePath = "./archive"
	}
	if cfg.Storage.Region == "" {
		cfg.Storage.Region = "us-east-1"
	}
	if cfg.Storage.PresignExpiration == 0 {
		cfg.Storage.PresignExpiration = 15 * time.Minute
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Archive.Backend {
	case "filesystem", "s3":
	default:
		return fmt.Errorf("archive.backend must be 'filesystem' or 's3', got %q", c.Archive.Backend)
	}

	if c.Archive.Retention < 0 {
		return fmt.Errorf("archive.retention cannot be negative")
	}

	if c.Archive.Enabled && c.Archive.Backend == "s3" {
		if c.Storage.Bucket == "" {
			return fmt.Errorf("storage.bucket is required when the s3 archive backend is enabled")
		}
	}

	// Production-specific validations
	if c.App.Env == "production" {
		if !c.Archive.Enabled {
			return fmt.Errorf("archive.enabled must be true in production, generated forms must be retained")
		}
		if c.Archive.Backend == "s3" {
			if c.Storage.AccessKey == "" {
				return fmt.Errorf("storage.access_key is required in production")
			}
			if c.Storage.SecretKey == "" {
				return fmt.Errorf("storage.secret_key is required in production")
			}
		}
	}

	return nil
}
