package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/folderkeeper/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
// Supported flags (short forms):
//
//	-t string   bot token
//	-D string   database driver (pgx, sqlite)
//	-d string   database DSN
//	-u string   upload directory
//	-b string   directory for ffmpeg and yt-dlp
//	-w int      worker count
//	-l string   log level
//	-a string   webhook listen address
//	-s string   session backend (memory, redis)
//
// Only these flags are looked at; -c/-config is handled by Load.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-t", "-D", "-d", "-u", "-b", "-w", "-l", "-a", "-s"})

	fs := flag.NewFlagSet("folderkeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BotToken, "t", cfg.BotToken, "bot token")
	fs.StringVar(&cfg.DatabaseDriver, "D", cfg.DatabaseDriver, "database driver")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.UploadDir, "u", cfg.UploadDir, "upload directory")
	fs.StringVar(&cfg.BinDir, "b", cfg.BinDir, "binary directory")
	fs.IntVar(&cfg.Workers, "w", cfg.Workers, "worker count")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "webhook listen address")
	fs.StringVar(&cfg.SessionBackend, "s", cfg.SessionBackend, "session backend")

	return fs.Parse(args)
}
