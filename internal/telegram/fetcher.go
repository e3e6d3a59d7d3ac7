package telegram

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/folderkeeper/internal/common"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/dmitrijs2005/folderkeeper/internal/netx"
)

// Fetcher downloads uploaded files to local disk.
type Fetcher struct {
	messenger Messenger
	client    *http.Client
	maxBytes  int64
}

func NewFetcher(m Messenger, client *http.Client, maxBytes int64) *Fetcher {
	return &Fetcher{messenger: m, client: client, maxBytes: maxBytes}
}

// Fetch stores the file as destBase plus an extension derived from the
// upload and returns the full path. The remote size is checked before any
// bytes are transferred.
func (f *Fetcher) Fetch(ctx context.Context, file models.PendingFile, destBase string) (string, error) {
	if f.maxBytes > 0 && file.Size > f.maxBytes {
		return "", fmt.Errorf("declared size %d: %w", file.Size, common.ErrorTooLarge)
	}

	remote, err := f.messenger.File(ctx, file.FileID)
	if err != nil {
		return "", err
	}
	if f.maxBytes > 0 && remote.Size > f.maxBytes {
		return "", fmt.Errorf("remote size %d: %w", remote.Size, common.ErrorTooLarge)
	}

	dest := destBase + file.Extension()
	if _, err := netx.DownloadFile(ctx, f.client, remote.URL, dest, netx.DownloadOptions{MaxBytes: f.maxBytes}); err != nil {
		return "", err
	}
	return dest, nil
}
