// Package netx holds the HTTP plumbing shared by the media fetcher, the
// binary provisioner and the fallback uploader.
package netx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/folderkeeper/internal/common"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ErrTooSmall is returned when a download is shorter than the caller's floor.
var ErrTooSmall = errors.New("download smaller than expected")

// NewHTTPClient returns a client with an overall timeout and traced transport.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// DownloadOptions bound a download. Zero means unbounded.
type DownloadOptions struct {
	MaxBytes int64
	MinBytes int64
}

// DownloadFile streams url into dest. The body is written to a temporary
// sibling first and renamed on success, so dest is either complete or absent.
// Exceeding MaxBytes returns common.ErrorTooLarge.
func DownloadFile(ctx context.Context, client *http.Client, url, dest string, opts DownloadOptions) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("download failed: %s", resp.Status)
	}
	if opts.MaxBytes > 0 && resp.ContentLength > opts.MaxBytes {
		return 0, fmt.Errorf("content length %d: %w", resp.ContentLength, common.ErrorTooLarge)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".*.part")
	if err != nil {
		return 0, err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	var body io.Reader = resp.Body
	if opts.MaxBytes > 0 {
		body = io.LimitReader(resp.Body, opts.MaxBytes+1)
	}

	n, err := io.Copy(tmp, body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("write %s: %w", dest, err)
	}

	if opts.MaxBytes > 0 && n > opts.MaxBytes {
		return 0, fmt.Errorf("read %d bytes: %w", n, common.ErrorTooLarge)
	}
	if opts.MinBytes > 0 && n < opts.MinBytes {
		return 0, fmt.Errorf("%d bytes: %w", n, ErrTooSmall)
	}

	if err := os.Rename(tmpName, dest); err != nil {
		return 0, err
	}
	return n, nil
}

// UploadMultipart posts the file at path as a single multipart form field and
// returns the response body. The file is streamed, never held in memory.
func UploadMultipart(ctx context.Context, client *http.Client, url, field, path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile(field, filepath.Base(path))
		if err == nil {
			_, err = io.Copy(part, f)
		}
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, pr)
	if err != nil {
		_ = pr.Close()
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := client.Do(req)
	if err != nil {
		_ = pr.Close()
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))
	}
	return b, nil
}
