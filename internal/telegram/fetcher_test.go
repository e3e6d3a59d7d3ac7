package telegram

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/folderkeeper/internal/common"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/stretchr/testify/require"
)

type fakeMessenger struct {
	Messenger
	remote RemoteFile
	err    error
	calls  int
}

func (f *fakeMessenger) File(ctx context.Context, fileID string) (RemoteFile, error) {
	f.calls++
	return f.remote, f.err
}

func TestFetcher_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "jpeg-bytes")
	}))
	defer ts.Close()

	m := &fakeMessenger{remote: RemoteFile{URL: ts.URL + "/file.jpg", Size: 10}}
	f := NewFetcher(m, ts.Client(), 20<<20)

	base := filepath.Join(t.TempDir(), "7_11")
	path, err := f.Fetch(context.Background(), models.PendingFile{Type: models.FileTypePhoto, FileID: "F"}, base)
	require.NoError(t, err)
	require.Equal(t, base+".jpg", path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "jpeg-bytes", string(b))
}

func TestFetcher_RejectsOversizeBeforeTransfer(t *testing.T) {
	m := &fakeMessenger{}
	f := NewFetcher(m, http.DefaultClient, 20<<20)

	_, err := f.Fetch(context.Background(), models.PendingFile{Type: models.FileTypeVideo, FileID: "F", Size: 21 << 20}, filepath.Join(t.TempDir(), "x"))
	require.True(t, errors.Is(err, common.ErrorTooLarge))
	require.Zero(t, m.calls, "no API call for a declared oversize file")

	m.remote = RemoteFile{URL: "http://unused", Size: 30 << 20}
	_, err = f.Fetch(context.Background(), models.PendingFile{Type: models.FileTypeVideo, FileID: "F"}, filepath.Join(t.TempDir(), "x"))
	require.True(t, errors.Is(err, common.ErrorTooLarge))
}
