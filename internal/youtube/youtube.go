// Package youtube runs yt-dlp to fetch a single video merged to mp4.
package youtube

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/folderkeeper/internal/logging"
	"github.com/google/uuid"
)

// SendLimit is the largest video sent through the messenger directly.
const SendLimit = 50 << 20

var (
	urlRe = regexp.MustCompile(`^(https?://)?(www\.|m\.)?(youtube\.com|youtu\.be)/.+`)

	// Qualities are the offered heights, lowest first.
	Qualities = []int{360, 480, 720, 1080}

	execCommand = exec.CommandContext
)

// ErrNoOutput is returned when yt-dlp exits cleanly but no file is found.
var ErrNoOutput = errors.New("yt-dlp produced no output file")

func ValidURL(s string) bool {
	return urlRe.MatchString(strings.TrimSpace(s))
}

// ParseQuality accepts "720p" or "720" for one of Qualities.
func ParseQuality(s string) (int, bool) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "p")
	q, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	for _, v := range Qualities {
		if v == q {
			return q, true
		}
	}
	return 0, false
}

func QualityLabel(q int) string {
	return strconv.Itoa(q) + "p"
}

// Format is the yt-dlp format selector for a maximum height.
func Format(q int) string {
	return fmt.Sprintf("bestvideo[height<=%d]+bestaudio/best[height<=%d]", q, q)
}

// Downloader fetches url at quality into dir and returns the file path.
type Downloader interface {
	Download(ctx context.Context, url string, quality int, dir string) (string, error)
}

type YTDLP struct {
	bin     string
	ffmpeg  string
	timeout time.Duration
	log     logging.Logger
}

func NewYTDLP(bin, ffmpeg string, timeout time.Duration, log logging.Logger) *YTDLP {
	return &YTDLP{bin: bin, ffmpeg: ffmpeg, timeout: timeout, log: log.With("component", "youtube")}
}

func (y *YTDLP) Download(ctx context.Context, url string, quality int, dir string) (string, error) {
	if !ValidURL(url) {
		return "", fmt.Errorf("not a youtube url: %q", url)
	}
	if y.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, y.timeout)
		defer cancel()
	}

	base := filepath.Join(dir, "yt_"+uuid.NewString())
	defer cleanupTemp(base)

	args := []string{
		"-f", Format(quality),
		"-o", base + ".%(ext)s",
		"--merge-output-format", "mp4",
		"--ffmpeg-location", y.ffmpeg,
		"--no-part",
		"--no-playlist",
		url,
	}

	var out bytes.Buffer
	cmd := execCommand(ctx, y.bin, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out

	started := time.Now()
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("yt-dlp: %w: %s", err, tail(out.String(), 500))
	}

	path, err := findOutput(base)
	if err != nil {
		return "", err
	}
	y.log.Info(ctx, "video downloaded", "quality", quality, "elapsed", time.Since(started).String())
	return path, nil
}

// findOutput looks for the merged file: mp4, webm, mkv, then anything else
// with the base prefix that is not a temporary fragment.
func findOutput(base string) (string, error) {
	for _, ext := range []string{".mp4", ".webm", ".mkv"} {
		if fi, err := os.Stat(base + ext); err == nil && fi.Mode().IsRegular() {
			return base + ext, nil
		}
	}
	matches, _ := filepath.Glob(base + ".*")
	for _, m := range matches {
		if !isTemp(base, m) {
			return m, nil
		}
	}
	return "", ErrNoOutput
}

// isTemp matches yt-dlp leftovers: *.part and per-format *.fNNN.* files.
func isTemp(base, path string) bool {
	rest := strings.TrimPrefix(path, base)
	return strings.Contains(rest, ".part") || strings.HasPrefix(rest, ".f")
}

func cleanupTemp(base string) {
	matches, _ := filepath.Glob(base + ".*")
	for _, m := range matches {
		if isTemp(base, m) {
			_ = os.Remove(m)
		}
	}
}

func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
