package config

import (
	"fmt"
	"strconv"
	"time"
)

// EnvPrefix prefixes every environment variable the bot reads, except
// BOT_TOKEN which is also accepted bare.
const EnvPrefix = "FOLDERKEEPER_"

// parseEnv overlays cfg with the non-empty variables it knows.
func parseEnv(cfg *Config, getenv func(string) string) error {
	strs := map[string]*string{
		"BOT_TOKEN":        &cfg.BotToken,
		"DATABASE_DRIVER":  &cfg.DatabaseDriver,
		"DATABASE_DSN":     &cfg.DatabaseDSN,
		"UPLOAD_DIR":       &cfg.UploadDir,
		"BIN_DIR":          &cfg.BinDir,
		"SESSION_BACKEND":  &cfg.SessionBackend,
		"REDIS_ADDR":       &cfg.RedisAddr,
		"REDIS_PASSWORD":   &cfg.RedisPassword,
		"FALLBACK":         &cfg.Fallback,
		"TMPFILES_URL":     &cfg.TmpFilesURL,
		"S3_REGION":        &cfg.S3Region,
		"S3_BUCKET":        &cfg.S3Bucket,
		"S3_ACCESS_KEY":    &cfg.S3AccessKey,
		"S3_SECRET_KEY":    &cfg.S3SecretKey,
		"S3_BASE_ENDPOINT": &cfg.S3BaseEndpoint,
		"WEBHOOK_URL":      &cfg.WebhookURL,
		"LISTEN_ADDR":      &cfg.ListenAddr,
		"WEBHOOK_SECRET":   &cfg.WebhookSecret,
		"TRACING_ENDPOINT": &cfg.TracingEndpoint,
		"LOG_LEVEL":        &cfg.LogLevel,
		"LOG_FILE":         &cfg.LogFile,
		"DEFAULT_LANG":     &cfg.DefaultLang,
	}
	ints := map[string]*int{
		"WORKERS":          &cfg.Workers,
		"REDIS_DB":         &cfg.RedisDB,
		"LOG_MAX_SIZE_MB":  &cfg.LogMaxSizeMB,
		"LOG_MAX_BACKUPS":  &cfg.LogMaxBackups,
		"LOG_MAX_AGE_DAYS": &cfg.LogMaxAgeDays,
	}
	durations := map[string]*time.Duration{
		"MESSAGE_TTL":      &cfg.MessageTTL,
		"ALBUM_TTL":        &cfg.AlbumTTL,
		"SESSION_TTL":      &cfg.SessionTTL,
		"DOWNLOAD_TIMEOUT": &cfg.DownloadTimeout,
		"HTTP_TIMEOUT":     &cfg.HTTPTimeout,
	}

	if v := getenv("BOT_TOKEN"); v != "" {
		cfg.BotToken = v
	}
	for name, dst := range strs {
		if v := getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}
	for name, dst := range ints {
		if v := getenv(EnvPrefix + name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = n
		}
	}
	for name, dst := range durations {
		if v := getenv(EnvPrefix + name); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = d
		}
	}
	if v := getenv(EnvPrefix + "S3_USE_PATH_STYLE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sS3_USE_PATH_STYLE: %w", EnvPrefix, err)
		}
		cfg.S3UsePathStyle = b
	}
	return nil
}
