// Package binaries makes sure ffmpeg and yt-dlp are available before the bot
// starts serving, downloading the platform release when a probe fails.
package binaries

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/dmitrijs2005/folderkeeper/internal/filex"
	"github.com/dmitrijs2005/folderkeeper/internal/logging"
	"github.com/dmitrijs2005/folderkeeper/internal/netx"
)

const (
	DownloadTimeout = 60 * time.Second
	MinDownloadSize = 1 << 20
)

var (
	execCommand = exec.CommandContext
	lookPath    = exec.LookPath
)

// Paths are the resolved executables.
type Paths struct {
	FFmpeg string
	YTDLP  string
}

type Provisioner struct {
	dir    string
	client *http.Client
	log    logging.Logger
	goos   string
	goarch string
}

func New(dir string, client *http.Client, log logging.Logger) *Provisioner {
	return &Provisioner{
		dir:    dir,
		client: client,
		log:    log.With("component", "binaries"),
		goos:   runtime.GOOS,
		goarch: runtime.GOARCH,
	}
}

// Ensure probes both binaries and installs the missing ones into the bin
// directory. It is idempotent.
func (p *Provisioner) Ensure(ctx context.Context) (Paths, error) {
	dir, err := filex.EnsureSubdDir(p.dir)
	if err != nil {
		return Paths{}, err
	}

	ffmpeg, err := p.ensure(ctx, dir, "ffmpeg", "-version", ffmpegAsset)
	if err != nil {
		return Paths{}, err
	}
	ytdlp, err := p.ensure(ctx, dir, "yt-dlp", "--version", ytdlpAsset)
	if err != nil {
		return Paths{}, err
	}
	return Paths{FFmpeg: ffmpeg, YTDLP: ytdlp}, nil
}

func (p *Provisioner) ensure(ctx context.Context, dir, name, versionArg string, assetFor func(string, string) (asset, error)) (string, error) {
	local := filepath.Join(dir, exeName(p.goos, name))
	if probe(ctx, local, versionArg) == nil {
		return local, nil
	}
	if found, err := lookPath(name); err == nil && probe(ctx, found, versionArg) == nil {
		p.log.Info(ctx, "using binary from PATH", "binary", name, "path", found)
		return found, nil
	}

	a, err := assetFor(p.goos, p.goarch)
	if err != nil {
		return "", err
	}

	p.log.Info(ctx, "downloading binary", "binary", name, "url", a.URL)
	if err := p.install(ctx, a, dir, local); err != nil {
		return "", fmt.Errorf("install %s: %w", name, err)
	}

	if err := probe(ctx, local, versionArg); err != nil {
		return "", fmt.Errorf("%s still not usable after download: %w", name, err)
	}
	p.log.Info(ctx, "binary installed", "binary", name, "path", local)
	return local, nil
}

func (p *Provisioner) install(ctx context.Context, a asset, dir, dest string) error {
	ctx, cancel := context.WithTimeout(ctx, DownloadTimeout)
	defer cancel()

	if a.Archive == archiveNone {
		if _, err := netx.DownloadFile(ctx, p.client, a.URL, dest, netx.DownloadOptions{MinBytes: MinDownloadSize}); err != nil {
			return err
		}
		return os.Chmod(dest, 0o755)
	}

	archive := filepath.Join(dir, filepath.Base(dest)+".download")
	defer func() { _ = os.Remove(archive) }()

	if _, err := netx.DownloadFile(ctx, p.client, a.URL, archive, netx.DownloadOptions{MinBytes: MinDownloadSize}); err != nil {
		return err
	}

	var err error
	switch a.Archive {
	case archiveZip:
		err = extractZip(archive, a.Member, dest)
	case archiveTarXZ:
		err = extractTarXZ(archive, a.Member, dest)
	}
	if err != nil {
		return err
	}
	return os.Chmod(dest, 0o755)
}

// probe runs the binary with its version flag; it must exit cleanly and
// print something.
func probe(ctx context.Context, path, versionArg string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var stdout bytes.Buffer
	cmd := execCommand(ctx, path, versionArg)
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return err
	}
	if strings.TrimSpace(stdout.String()) == "" {
		return fmt.Errorf("%s %s printed nothing", path, versionArg)
	}
	return nil
}
