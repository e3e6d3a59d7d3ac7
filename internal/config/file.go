package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/dmitrijs2005/folderkeeper/internal/timex"
)

// FileConfig is the DTO read from a .json or .toml file. Durations accept
// strings like "10m". Only keys present in the file override the defaults.
type FileConfig struct {
	BotToken        *string         `json:"bot_token" toml:"bot_token"`
	DatabaseDriver  *string         `json:"database_driver" toml:"database_driver"`
	DatabaseDSN     *string         `json:"database_dsn" toml:"database_dsn"`
	UploadDir       *string         `json:"upload_dir" toml:"upload_dir"`
	BinDir          *string         `json:"bin_dir" toml:"bin_dir"`
	MessageTTL      *timex.Duration `json:"message_ttl" toml:"message_ttl"`
	AlbumTTL        *timex.Duration `json:"album_ttl" toml:"album_ttl"`
	Workers         *int            `json:"workers" toml:"workers"`
	SessionBackend  *string         `json:"session_backend" toml:"session_backend"`
	RedisAddr       *string         `json:"redis_addr" toml:"redis_addr"`
	RedisPassword   *string         `json:"redis_password" toml:"redis_password"`
	RedisDB         *int            `json:"redis_db" toml:"redis_db"`
	SessionTTL      *timex.Duration `json:"session_ttl" toml:"session_ttl"`
	Fallback        *string         `json:"fallback" toml:"fallback"`
	TmpFilesURL     *string         `json:"tmpfiles_url" toml:"tmpfiles_url"`
	S3Region        *string         `json:"s3_region" toml:"s3_region"`
	S3Bucket        *string         `json:"s3_bucket" toml:"s3_bucket"`
	S3AccessKey     *string         `json:"s3_access_key" toml:"s3_access_key"`
	S3SecretKey     *string         `json:"s3_secret_key" toml:"s3_secret_key"`
	S3BaseEndpoint  *string         `json:"s3_base_endpoint" toml:"s3_base_endpoint"`
	S3UsePathStyle  *bool           `json:"s3_use_path_style" toml:"s3_use_path_style"`
	WebhookURL      *string         `json:"webhook_url" toml:"webhook_url"`
	ListenAddr      *string         `json:"listen_addr" toml:"listen_addr"`
	WebhookSecret   *string         `json:"webhook_secret" toml:"webhook_secret"`
	TracingEndpoint *string         `json:"tracing_endpoint" toml:"tracing_endpoint"`
	LogLevel        *string         `json:"log_level" toml:"log_level"`
	LogFile         *string         `json:"log_file" toml:"log_file"`
	LogMaxSizeMB    *int            `json:"log_max_size_mb" toml:"log_max_size_mb"`
	LogMaxBackups   *int            `json:"log_max_backups" toml:"log_max_backups"`
	LogMaxAgeDays   *int            `json:"log_max_age_days" toml:"log_max_age_days"`
	DefaultLang     *string         `json:"default_lang" toml:"default_lang"`
	DownloadTimeout *timex.Duration `json:"download_timeout" toml:"download_timeout"`
	HTTPTimeout     *timex.Duration `json:"http_timeout" toml:"http_timeout"`
}

// parseFile overlays cfg with the file at path. The format follows the
// extension; anything but .toml is read as JSON.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc FileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err = toml.Decode(string(data), &fc)
	} else {
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setDuration(dst *time.Duration, src *timex.Duration) {
	if src != nil {
		*dst = src.Duration
	}
}

func (fc *FileConfig) apply(cfg *Config) {
	set(&cfg.BotToken, fc.BotToken)
	set(&cfg.DatabaseDriver, fc.DatabaseDriver)
	set(&cfg.DatabaseDSN, fc.DatabaseDSN)
	set(&cfg.UploadDir, fc.UploadDir)
	set(&cfg.BinDir, fc.BinDir)
	setDuration(&cfg.MessageTTL, fc.MessageTTL)
	setDuration(&cfg.AlbumTTL, fc.AlbumTTL)
	set(&cfg.Workers, fc.Workers)
	set(&cfg.SessionBackend, fc.SessionBackend)
	set(&cfg.RedisAddr, fc.RedisAddr)
	set(&cfg.RedisPassword, fc.RedisPassword)
	set(&cfg.RedisDB, fc.RedisDB)
	setDuration(&cfg.SessionTTL, fc.SessionTTL)
	set(&cfg.Fallback, fc.Fallback)
	set(&cfg.TmpFilesURL, fc.TmpFilesURL)
	set(&cfg.S3Region, fc.S3Region)
	set(&cfg.S3Bucket, fc.S3Bucket)
	set(&cfg.S3AccessKey, fc.S3AccessKey)
	set(&cfg.S3SecretKey, fc.S3SecretKey)
	set(&cfg.S3BaseEndpoint, fc.S3BaseEndpoint)
	set(&cfg.S3UsePathStyle, fc.S3UsePathStyle)
	set(&cfg.WebhookURL, fc.WebhookURL)
	set(&cfg.ListenAddr, fc.ListenAddr)
	set(&cfg.WebhookSecret, fc.WebhookSecret)
	set(&cfg.TracingEndpoint, fc.TracingEndpoint)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.LogFile, fc.LogFile)
	set(&cfg.LogMaxSizeMB, fc.LogMaxSizeMB)
	set(&cfg.LogMaxBackups, fc.LogMaxBackups)
	set(&cfg.LogMaxAgeDays, fc.LogMaxAgeDays)
	set(&cfg.DefaultLang, fc.DefaultLang)
	setDuration(&cfg.DownloadTimeout, fc.DownloadTimeout)
	setDuration(&cfg.HTTPTimeout, fc.HTTPTimeout)
}
