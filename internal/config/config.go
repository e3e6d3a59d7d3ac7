// Package config loads the bot settings: defaults, then an optional JSON or
// TOML file, then environment variables, then command-line flags. Later
// sources win. The result is validated before use.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/folderkeeper/internal/flagx"
	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the bot.
//
// Units: every *TTL and *Timeout field is a time.Duration; RedisDB is a
// database index; Log* sizes are megabytes, counts and days as lumberjack
// expects them.
type Config struct {
	BotToken string `validate:"required"`

	DatabaseDriver string `validate:"oneof=pgx sqlite"`
	DatabaseDSN    string `validate:"required"`

	UploadDir string `validate:"required"`
	BinDir    string `validate:"required"`

	MessageTTL time.Duration
	AlbumTTL   time.Duration
	Workers    int           `validate:"min=1"`

	SessionBackend string        `validate:"oneof=memory redis"`
	RedisAddr      string        `validate:"required_if=SessionBackend redis"`
	RedisPassword  string
	RedisDB        int           `validate:"min=0"`
	SessionTTL     time.Duration

	Fallback       string `validate:"oneof=tmpfiles s3"`
	TmpFilesURL    string `validate:"omitempty,url"`
	S3Region       string `validate:"required_if=Fallback s3"`
	S3Bucket       string `validate:"required_if=Fallback s3"`
	S3AccessKey    string
	S3SecretKey    string
	S3BaseEndpoint string `validate:"omitempty,url"`
	S3UsePathStyle bool

	WebhookURL    string `validate:"omitempty,url"`
	ListenAddr    string `validate:"required_with=WebhookURL"`
	WebhookSecret string `validate:"required_with=WebhookURL"`

	TracingEndpoint string

	LogLevel      string `validate:"oneof=debug info warn error"`
	LogFile       string
	LogMaxSizeMB  int `validate:"min=0"`
	LogMaxBackups int `validate:"min=0"`
	LogMaxAgeDays int `validate:"min=0"`

	DefaultLang string `validate:"oneof=fa en"`

	DownloadTimeout time.Duration
	HTTPTimeout     time.Duration
}

// LoadDefaults populates c with development defaults. BotToken has no default.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "file:folderkeeper.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	c.UploadDir = "uploads"
	c.BinDir = "bin"
	c.MessageTTL = 10 * time.Minute
	c.AlbumTTL = 30 * time.Second
	c.Workers = 8
	c.SessionBackend = "memory"
	c.RedisAddr = "127.0.0.1:6379"
	c.SessionTTL = 24 * time.Hour
	c.Fallback = "tmpfiles"
	c.TmpFilesURL = "https://tmpfiles.org/api/v1/upload"
	c.S3Region = "us-east-1"
	c.ListenAddr = ":8080"
	c.LogLevel = "info"
	c.LogMaxSizeMB = 100
	c.LogMaxBackups = 5
	c.LogMaxAgeDays = 30
	c.DefaultLang = "fa"
	c.DownloadTimeout = 10 * time.Minute
	c.HTTPTimeout = 60 * time.Second
}

// Polling reports whether updates are fetched by long polling.
func (c *Config) Polling() bool {
	return c.WebhookURL == ""
}

// Validate checks the settings against their tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load builds a Config from args (without the program name) and the
// environment seen through getenv.
func Load(args []string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.ConfigFileFlag(args); path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}
	if err := parseEnv(cfg, getenv); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig loads the process configuration from os.Args and os.Getenv.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], os.Getenv)
}
