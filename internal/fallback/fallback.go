// Package fallback publishes files too large for the messenger and returns a
// time-limited download link.
package fallback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/folderkeeper/internal/netx"
)

// Uploader publishes the file at path and returns a public link.
type Uploader interface {
	Upload(ctx context.Context, path string) (string, error)
}

const DefaultTmpFilesURL = "https://tmpfiles.org/api/v1/upload"

var ErrNoLink = errors.New("upload response has no link")

// TmpFiles uploads to tmpfiles.org.
type TmpFiles struct {
	client *http.Client
	url    string
}

func NewTmpFiles(client *http.Client, url string) *TmpFiles {
	if url == "" {
		url = DefaultTmpFilesURL
	}
	return &TmpFiles{client: client, url: url}
}

type tmpFilesResponse struct {
	Status string `json:"status"`
	Data   struct {
		URL string `json:"url"`
	} `json:"data"`
}

func (t *TmpFiles) Upload(ctx context.Context, path string) (string, error) {
	body, err := netx.UploadMultipart(ctx, t.client, t.url, "file", path)
	if err != nil {
		return "", fmt.Errorf("tmpfiles upload: %w", err)
	}

	var resp tmpFilesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("tmpfiles response: %w", err)
	}
	if resp.Data.URL == "" {
		return "", ErrNoLink
	}
	return resp.Data.URL, nil
}
