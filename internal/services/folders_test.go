package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/dmitrijs2005/folderkeeper/internal/common"
	"github.com/dmitrijs2005/folderkeeper/internal/cryptox"
	"github.com/dmitrijs2005/folderkeeper/internal/dbx"
	"github.com/dmitrijs2005/folderkeeper/internal/logging"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/dmitrijs2005/folderkeeper/internal/repositories/files"
	"github.com/dmitrijs2005/folderkeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/folderkeeper/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher пишет содержимое FileID в файл вместо загрузки.
type fakeFetcher struct {
	fail map[string]error
}

func (f *fakeFetcher) Fetch(_ context.Context, p models.PendingFile, destBase string) (string, error) {
	if err := f.fail[p.FileID]; err != nil {
		return "", err
	}
	dest := destBase + p.Extension()
	if err := os.WriteFile(dest, []byte(p.FileID), 0o600); err != nil {
		return "", err
	}
	return dest, nil
}

func newService(t *testing.T) (*FolderService, string, *fakeFetcher) {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	rm, err := repomanager.New(repomanager.DriverSQLite)
	require.NoError(t, err)

	dir := t.TempDir()
	ff := &fakeFetcher{fail: map[string]error{}}
	return NewFolderService(db, rm, dir, ff, logging.Discard()), dir, ff
}

func TestCreate_StoresFilesAndCover(t *testing.T) {
	ctx := context.Background()
	s, dir, _ := newService(t)

	f, res, err := s.Create(ctx, NewFolder{
		ChatID: 100,
		Name:   " Trip2024 ",
		Files: []models.PendingFile{
			{Type: models.FileTypePhoto, FileID: "p1"},
			{Type: models.FileTypeText, Text: "remember\x00 the tickets"},
		},
		Cover: &models.PendingFile{Type: models.FileTypePhoto, FileID: "cover"},
	})
	require.NoError(t, err)
	assert.Equal(t, StoreResult{Stored: 2}, res)
	assert.Equal(t, "Trip2024", f.Name)

	files, err := s.Files(ctx, f.ID)
	require.NoError(t, err)
	require.Len(t, files, 2)

	photo := files[0]
	assert.Equal(t, models.FileTypePhoto, photo.Type)
	assert.True(t, photo.Resolved())
	assert.Equal(t, filepath.Join(dir, "100", strconv.FormatInt(f.ID, 10)+"_"+strconv.FormatInt(photo.ID, 10)+".jpg"), photo.Path)
	assert.FileExists(t, photo.Path)

	assert.Equal(t, "remember the tickets", files[1].Text)

	got, err := s.Get(ctx, 100, f.ID)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "100", strconv.FormatInt(f.ID, 10)+"_cover.jpg"), got.CoverPath)
}

func TestCreate_FailedDownloadDropsPlaceholder(t *testing.T) {
	ctx := context.Background()
	s, _, ff := newService(t)
	ff.fail["big"] = common.ErrorTooLarge

	f, res, err := s.Create(ctx, NewFolder{
		ChatID: 1,
		Name:   "Mixed",
		Files: []models.PendingFile{
			{Type: models.FileTypeVideo, FileID: "big"},
			{Type: models.FileTypeDocument, FileID: "doc", FileName: "a.pdf"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, StoreResult{Stored: 1, Failed: 1}, res)

	files, err := s.Files(ctx, f.ID)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, models.FileTypeDocument, files[0].Type)
}

func TestCreate_DuplicateName(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newService(t)

	_, _, err := s.Create(ctx, NewFolder{ChatID: 1, Name: "Trip"})
	require.NoError(t, err)

	_, _, err = s.Create(ctx, NewFolder{ChatID: 1, Name: "Trip"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, _, err = s.Create(ctx, NewFolder{ChatID: 2, Name: "Trip"})
	require.NoError(t, err, "same name in another chat")

	taken, err := s.NameTaken(ctx, 1, "Trip")
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = s.NameTaken(ctx, 1, "trip")
	require.NoError(t, err)
	assert.False(t, taken, "names are case-sensitive")
}

func TestCreate_InvalidName(t *testing.T) {
	s, _, _ := newService(t)
	_, _, err := s.Create(context.Background(), NewFolder{ChatID: 1, Name: "bad/name"})
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestDelete_ProtectedFolder(t *testing.T) {
	ctx := context.Background()
	s, dir, _ := newService(t)

	hash, err := cryptox.HashPassword("secret")
	require.NoError(t, err)

	f, _, err := s.Create(ctx, NewFolder{
		ChatID:       5,
		Name:         "Private",
		PasswordHash: hash,
		Files:        []models.PendingFile{{Type: models.FileTypePhoto, FileID: "x"}},
	})
	require.NoError(t, err)

	other, _, err := s.Create(ctx, NewFolder{ChatID: 5, Name: "Other", Files: []models.PendingFile{{Type: models.FileTypePhoto, FileID: "y"}}})
	require.NoError(t, err)

	// неверный пароль: ничего не удаляется
	_, err = s.Delete(ctx, 5, f.ID, "wrong")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	files, err := s.Files(ctx, f.ID)
	require.NoError(t, err)
	require.Len(t, files, 1)
	payload := files[0].Path
	assert.FileExists(t, payload)

	_, err = s.Delete(ctx, 5, f.ID, "secret")
	require.NoError(t, err)

	_, err = s.Get(ctx, 5, f.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)
	files, err = s.Files(ctx, f.ID)
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.NoFileExists(t, payload)

	entries, err := os.ReadDir(filepath.Join(dir, "5"))
	require.NoError(t, err)
	for _, e := range entries {
		assert.Regexp(t, "^"+strconv.FormatInt(other.ID, 10)+"_", e.Name())
	}
}

func TestDelete_OtherChatIsNotFound(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newService(t)

	f, _, err := s.Create(ctx, NewFolder{ChatID: 1, Name: "Mine"})
	require.NoError(t, err)

	_, err = s.Delete(ctx, 2, f.ID, "")
	require.ErrorIs(t, err, common.ErrorNotFound)
	_, err = s.Get(ctx, 1, f.ID)
	require.NoError(t, err)
}

func TestEditOperations(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newService(t)

	f, _, err := s.Create(ctx, NewFolder{ChatID: 1, Name: "Old", Cover: &models.PendingFile{Type: models.FileTypePhoto, FileID: "c1", MimeType: "image/png"}})
	require.NoError(t, err)

	name, err := s.Rename(ctx, 1, f.ID, "New name")
	require.NoError(t, err)
	assert.Equal(t, "New name", name)

	require.NoError(t, s.UpdateDescription(ctx, 1, f.ID, "desc"))
	require.NoError(t, s.UpdateTags(ctx, 1, f.ID, "a,b"))
	require.ErrorIs(t, s.SetPassword(ctx, 1, f.ID, "abc"), common.ErrorValidation)
	require.NoError(t, s.SetPassword(ctx, 1, f.ID, "abcd"))

	got, err := s.Get(ctx, 1, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "New name", got.Name)
	assert.Equal(t, "desc", got.Description)
	assert.Equal(t, "a,b", got.Tags)
	assert.True(t, s.VerifyPassword(got, "abcd"))
	assert.False(t, s.VerifyPassword(got, "abce"))

	oldCover := got.CoverPath
	require.FileExists(t, oldCover)
	require.NoError(t, s.UpdateCover(ctx, 1, f.ID, models.PendingFile{Type: models.FileTypePhoto, FileID: "c2"}))
	got, err = s.Get(ctx, 1, f.ID)
	require.NoError(t, err)
	assert.NotEqual(t, oldCover, got.CoverPath)
	assert.NoFileExists(t, oldCover)
	assert.FileExists(t, got.CoverPath)

	require.ErrorIs(t, s.UpdateCover(ctx, 1, f.ID, models.PendingFile{Type: models.FileTypeVideo, FileID: "v"}), common.ErrorValidation)

	require.NoError(t, s.RemovePassword(ctx, 1, f.ID))
	got, err = s.Get(ctx, 1, f.ID)
	require.NoError(t, err)
	assert.False(t, got.Protected())

	long := make([]byte, 1001)
	for i := range long {
		long[i] = 'a'
	}
	require.ErrorIs(t, s.UpdateDescription(ctx, 1, f.ID, string(long)), common.ErrorValidation)
}

func TestAddAndDeleteFile(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newService(t)

	f, _, err := s.Create(ctx, NewFolder{ChatID: 1, Name: "Box"})
	require.NoError(t, err)

	res, err := s.AddFiles(ctx, 1, f.ID, []models.PendingFile{
		{Type: models.FileTypeAudio, FileID: "song"},
		{Type: models.FileTypeText, Text: "note"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Stored)

	_, err = s.AddFiles(ctx, 2, f.ID, nil)
	require.ErrorIs(t, err, common.ErrorNotFound)

	files, err := s.Files(ctx, f.ID)
	require.NoError(t, err)
	require.Len(t, files, 2)
	audio := files[0]

	require.ErrorIs(t, s.DeleteFile(ctx, 2, f.ID, audio.ID), common.ErrorNotFound)
	require.NoError(t, s.DeleteFile(ctx, 1, f.ID, audio.ID))
	assert.NoFileExists(t, audio.Path)
	require.ErrorIs(t, s.DeleteFile(ctx, 1, f.ID, audio.ID), common.ErrorNotFound)
}

func TestSearchAndList(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newService(t)

	_, _, err := s.Create(ctx, NewFolder{ChatID: 1, Name: "Alpha", Tags: "work"})
	require.NoError(t, err)
	_, _, err = s.Create(ctx, NewFolder{ChatID: 1, Name: "Beta", Files: []models.PendingFile{{Type: models.FileTypeText, Text: "Work notes"}}})
	require.NoError(t, err)
	_, _, err = s.Create(ctx, NewFolder{ChatID: 2, Name: "Gamma", Tags: "work"})
	require.NoError(t, err)

	names, err := s.ListNames(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Alpha", "Beta"}, names)

	found, err := s.Search(ctx, 1, "WORK")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Alpha", "Beta"}, found)
}

func TestSaveVideo(t *testing.T) {
	ctx := context.Background()
	s, dir, _ := newService(t)

	oldNow := now
	now = func() time.Time { return time.Unix(1700000000, 0) }
	t.Cleanup(func() { now = oldNow })

	src := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(src, []byte("video"), 0o600))

	f, ff, err := s.SaveVideo(ctx, 9, src)
	require.NoError(t, err)
	assert.Equal(t, "YouTube_1700000000", f.Name)
	assert.Equal(t, filepath.Join(dir, "9", strconv.FormatInt(f.ID, 10)+"_"+strconv.FormatInt(ff.ID, 10)+".mp4"), ff.Path)
	assert.NoFileExists(t, src)
	assert.FileExists(t, ff.Path)

	// вторая загрузка в ту же секунду получает суффикс
	src2 := filepath.Join(t.TempDir(), "clip2.mp4")
	require.NoError(t, os.WriteFile(src2, []byte("video"), 0o600))
	f2, _, err := s.SaveVideo(ctx, 9, src2)
	require.NoError(t, err)
	assert.Equal(t, "YouTube_1700000000_1", f2.Name)

	_, _, err = s.SaveVideo(ctx, 9, filepath.Join(t.TempDir(), "missing.mp4"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, common.ErrorAlreadyExists))

	names, err := s.ListNames(ctx, 9)
	require.NoError(t, err)
	assert.Len(t, names, 2, "failed move leaves no folder behind")
}

// failingPaths отдаёт настоящий репозиторий файлов, но UpdatePath всегда падает.
type failingPaths struct {
	repomanager.RepositoryManager
}

func (m failingPaths) Files(db dbx.DBTX) files.Repository {
	return brokenUpdate{m.RepositoryManager.Files(db)}
}

type brokenUpdate struct {
	files.Repository
}

func (brokenUpdate) UpdatePath(context.Context, int64, string) error {
	return errors.New("disk full")
}

func TestSaveVideo_KeepsExtension(t *testing.T) {
	ctx := context.Background()
	s, dir, _ := newService(t)

	src := filepath.Join(t.TempDir(), "clip.webm")
	require.NoError(t, os.WriteFile(src, []byte("video"), 0o600))

	f, ff, err := s.SaveVideo(ctx, 9, src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "9", strconv.FormatInt(f.ID, 10)+"_"+strconv.FormatInt(ff.ID, 10)+".webm"), ff.Path)
	assert.FileExists(t, ff.Path)
}

func TestSaveVideo_PathUpdateFailureCleansUp(t *testing.T) {
	ctx := context.Background()
	s, dir, _ := newService(t)
	s.repomanager = failingPaths{s.repomanager}

	src := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(src, []byte("video"), 0o600))

	_, _, err := s.SaveVideo(ctx, 9, src)
	require.Error(t, err)

	names, err := s.ListNames(ctx, 9)
	require.NoError(t, err)
	assert.Empty(t, names, "folder row rolled back")

	entries, err := os.ReadDir(filepath.Join(dir, "9"))
	require.NoError(t, err)
	assert.Empty(t, entries, "moved video removed")
}

// strayFetcher пишет файл за пределами каталога чата.
type strayFetcher struct {
	dir string
}

func (f strayFetcher) Fetch(_ context.Context, p models.PendingFile, _ string) (string, error) {
	dest := filepath.Join(f.dir, "stray"+p.Extension())
	return dest, os.WriteFile(dest, []byte(p.FileID), 0o600)
}

func TestStoreFile_RefusesPathOutsideChatDir(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newService(t)
	outside := t.TempDir()
	s.fetcher = strayFetcher{dir: outside}

	f, res, err := s.Create(ctx, NewFolder{
		ChatID: 5,
		Name:   "Stray",
		Files:  []models.PendingFile{{Type: models.FileTypePhoto, FileID: "p1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, StoreResult{Failed: 1}, res)
	assert.NoFileExists(t, filepath.Join(outside, "stray.jpg"))

	stored, err := s.Files(ctx, f.ID)
	require.NoError(t, err)
	assert.Empty(t, stored, "placeholder removed")
}

func TestDeleteFile_LeavesPayloadOutsideUploadDir(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newService(t)

	f, _, err := s.Create(ctx, NewFolder{ChatID: 5, Name: "Docs"})
	require.NoError(t, err)

	foreign := filepath.Join(t.TempDir(), "keep.pdf")
	require.NoError(t, os.WriteFile(foreign, []byte("x"), 0o600))
	ff := &models.FolderFile{FolderID: f.ID, Type: models.FileTypeDocument, Path: foreign}
	require.NoError(t, s.repomanager.Files(s.db).Create(ctx, ff))

	require.NoError(t, s.DeleteFile(ctx, 5, f.ID, ff.ID))
	assert.FileExists(t, foreign)

	_, err = s.repomanager.Files(s.db).Get(ctx, f.ID, ff.ID)
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}
