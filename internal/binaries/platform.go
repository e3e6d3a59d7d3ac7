package binaries

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPlatform is returned for GOOS/GOARCH pairs without a release.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

type archiveKind int

const (
	archiveNone archiveKind = iota
	archiveZip
	archiveTarXZ
)

// asset is a downloadable release. Member is the base name to extract from
// an archive.
type asset struct {
	URL     string
	Archive archiveKind
	Member  string
}

const ytdlpBase = "https://github.com/yt-dlp/yt-dlp/releases/latest/download/"

func exeName(goos, name string) string {
	if goos == "windows" {
		return name + ".exe"
	}
	return name
}

func ffmpegAsset(goos, goarch string) (asset, error) {
	switch goos {
	case "windows":
		if goarch == "amd64" {
			return asset{URL: "https://www.gyan.dev/ffmpeg/builds/ffmpeg-release-essentials.zip", Archive: archiveZip, Member: "ffmpeg.exe"}, nil
		}
	case "linux":
		switch goarch {
		case "amd64", "arm64":
			return asset{
				URL:     fmt.Sprintf("https://johnvansickle.com/ffmpeg/releases/ffmpeg-release-%s-static.tar.xz", goarch),
				Archive: archiveTarXZ,
				Member:  "ffmpeg",
			}, nil
		}
	case "darwin":
		return asset{URL: "https://evermeet.cx/ffmpeg/getrelease/zip", Archive: archiveZip, Member: "ffmpeg"}, nil
	}
	return asset{}, fmt.Errorf("ffmpeg for %s/%s: %w", goos, goarch, ErrUnsupportedPlatform)
}

func ytdlpAsset(goos, goarch string) (asset, error) {
	switch goos {
	case "windows":
		return asset{URL: ytdlpBase + "yt-dlp.exe"}, nil
	case "linux":
		switch goarch {
		case "amd64":
			return asset{URL: ytdlpBase + "yt-dlp_linux"}, nil
		case "arm64":
			return asset{URL: ytdlpBase + "yt-dlp_linux_aarch64"}, nil
		}
	case "darwin":
		return asset{URL: ytdlpBase + "yt-dlp_macos"}, nil
	}
	return asset{}, fmt.Errorf("yt-dlp for %s/%s: %w", goos, goarch, ErrUnsupportedPlatform)
}
