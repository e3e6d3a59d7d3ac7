package app

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/folderkeeper/internal/config"
	"github.com/dmitrijs2005/folderkeeper/internal/fallback"
	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/logging"
	"github.com/dmitrijs2005/folderkeeper/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.BotToken = "token"
	return cfg
}

func TestNewUploader(t *testing.T) {
	cfg := testConfig()

	up, err := newUploader(cfg)
	require.NoError(t, err)
	assert.IsType(t, &fallback.TmpFiles{}, up)

	cfg.Fallback = "s3"
	cfg.S3Bucket = "videos"
	up, err = newUploader(cfg)
	require.NoError(t, err)
	assert.IsType(t, &fallback.S3{}, up)

	cfg.Fallback = "ftp"
	_, err = newUploader(cfg)
	assert.Error(t, err)
}

func TestSessionStore_Memory(t *testing.T) {
	a := &App{config: testConfig(), logger: logging.Discard()}

	s, err := a.sessionStore(context.Background(), i18n.Fa)
	require.NoError(t, err)
	assert.IsType(t, &session.MemoryStore{}, s)
	assert.Empty(t, a.closers)
}

func TestNewApp_FailsFast(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "unknown driver", mutate: func(c *config.Config) { c.DatabaseDriver = "mysql" }},
		{name: "unreachable database", mutate: func(c *config.Config) {
			c.DatabaseDriver = "pgx"
			c.DatabaseDSN = "postgres://u:p@127.0.0.1:1/none?sslmode=disable&connect_timeout=1"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)

			a, err := NewApp(context.Background(), cfg, logging.Discard())
			assert.Error(t, err)
			assert.Nil(t, a)
		})
	}
}
