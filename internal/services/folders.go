// Package services holds the folder operations the conversation layer calls.
// Every store call acquires a pooled connection for that statement only;
// nothing is held across file downloads.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dmitrijs2005/folderkeeper/internal/common"
	"github.com/dmitrijs2005/folderkeeper/internal/cryptox"
	"github.com/dmitrijs2005/folderkeeper/internal/dbx"
	"github.com/dmitrijs2005/folderkeeper/internal/filex"
	"github.com/dmitrijs2005/folderkeeper/internal/logging"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/dmitrijs2005/folderkeeper/internal/repositories/folders"
	"github.com/dmitrijs2005/folderkeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/folderkeeper/internal/validate"
)

// Fetcher stores an uploaded file as destBase plus an extension and returns
// the resulting path.
type Fetcher interface {
	Fetch(ctx context.Context, file models.PendingFile, destBase string) (string, error)
}

var now = time.Now

type FolderService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	uploadDir   string
	fetcher     Fetcher
	log         logging.Logger
}

func NewFolderService(db *sql.DB, repomanager repomanager.RepositoryManager, uploadDir string, fetcher Fetcher, log logging.Logger) *FolderService {
	return &FolderService{
		db:          db,
		repomanager: repomanager,
		uploadDir:   uploadDir,
		fetcher:     fetcher,
		log:         log.With("component", "folders"),
	}
}

// NewFolder is everything collected by the create flow.
type NewFolder struct {
	ChatID       int64
	Name         string
	Description  string
	Tags         string
	PasswordHash string
	Files        []models.PendingFile
	Cover        *models.PendingFile
}

// StoreResult reports how many of the submitted files were stored.
type StoreResult struct {
	Stored int
	Failed int
}

func (s *FolderService) chatDir(chatID int64) (string, error) {
	return filex.EnsureChatDir(s.uploadDir, chatID)
}

// removeStored deletes a payload recorded in the store. Paths outside the
// upload root are refused.
func (s *FolderService) removeStored(path string) error {
	if path == "" {
		return nil
	}
	if !filex.Within(s.uploadDir, path) {
		return fmt.Errorf("remove %s: %w", path, filex.ErrOutsideRoot)
	}
	return filex.RemoveIfExists(path)
}

func (s *FolderService) NameTaken(ctx context.Context, chatID int64, name string) (bool, error) {
	_, err := s.repomanager.Folders(s.db).GetByName(ctx, chatID, name)
	if errors.Is(err, common.ErrorNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts the folder, then each file and the cover. Once the folder
// row exists the call never fails because of a single file: such files are
// logged and counted as failed.
func (s *FolderService) Create(ctx context.Context, nf NewFolder) (*models.Folder, StoreResult, error) {
	name, err := validate.FolderName(nf.Name)
	if err != nil {
		return nil, StoreResult{}, err
	}

	f := &models.Folder{
		ChatID:       nf.ChatID,
		Name:         name,
		Description:  nf.Description,
		Tags:         nf.Tags,
		PasswordHash: nf.PasswordHash,
	}
	if err := s.repomanager.Folders(s.db).Create(ctx, f); err != nil {
		return nil, StoreResult{}, err
	}

	res := s.storeFiles(ctx, f, nf.Files)

	if nf.Cover != nil {
		if err := s.setCover(ctx, f, *nf.Cover); err != nil {
			s.log.Warn(ctx, "cover not stored", "chat_id", f.ChatID, "folder_id", f.ID, "error", err)
		}
	}

	s.log.Info(ctx, "folder created", "chat_id", f.ChatID, "folder_id", f.ID,
		"stored", res.Stored, "failed", res.Failed, "protected", f.Protected())
	return f, res, nil
}

// AddFiles appends files to an existing folder of chatID.
func (s *FolderService) AddFiles(ctx context.Context, chatID, folderID int64, pending []models.PendingFile) (StoreResult, error) {
	f, err := s.Get(ctx, chatID, folderID)
	if err != nil {
		return StoreResult{}, err
	}
	return s.storeFiles(ctx, f, pending), nil
}

func (s *FolderService) storeFiles(ctx context.Context, f *models.Folder, pending []models.PendingFile) StoreResult {
	var res StoreResult
	for _, p := range pending {
		if err := s.storeFile(ctx, f, p); err != nil {
			s.log.Warn(ctx, "file not stored", "chat_id", f.ChatID, "folder_id", f.ID, "type", p.Type, "error", err)
			res.Failed++
			continue
		}
		res.Stored++
	}
	return res
}

// storeFile inserts a placeholder row, downloads the payload and resolves the
// row's path. A failed download removes the placeholder again.
func (s *FolderService) storeFile(ctx context.Context, f *models.Folder, p models.PendingFile) error {
	repo := s.repomanager.Files(s.db)

	if p.Type == models.FileTypeText {
		text, err := validate.Text(p.Text, validate.MaxTextLength)
		if err != nil {
			return err
		}
		return repo.Create(ctx, &models.FolderFile{FolderID: f.ID, Type: models.FileTypeText, Text: text})
	}

	if !p.Type.Valid() {
		return fmt.Errorf("file type %q: %w", p.Type, common.ErrorValidation)
	}

	dir, err := s.chatDir(f.ChatID)
	if err != nil {
		return err
	}

	ff := &models.FolderFile{FolderID: f.ID, Type: p.Type, Path: models.PendingPath}
	if err := repo.Create(ctx, ff); err != nil {
		return err
	}

	path, err := s.fetchInto(ctx, p, dir, fmt.Sprintf("%d_%d", f.ID, ff.ID))
	if err == nil {
		if err = repo.UpdatePath(ctx, ff.ID, path); err != nil {
			_ = filex.RemoveIfExists(path)
		}
	}
	if err != nil {
		if derr := repo.Delete(ctx, f.ID, ff.ID); derr != nil {
			s.log.Error(ctx, "placeholder not removed", "folder_id", f.ID, "file_id", ff.ID, "error", derr)
		}
		return err
	}
	return nil
}

// fetchInto downloads p as dir/name plus an extension. The result must stay
// inside dir.
func (s *FolderService) fetchInto(ctx context.Context, p models.PendingFile, dir, name string) (string, error) {
	base, err := filex.SafeJoin(dir, name)
	if err != nil {
		return "", err
	}
	path, err := s.fetcher.Fetch(ctx, p, base)
	if err != nil {
		return "", err
	}
	if !filex.Within(dir, path) {
		_ = filex.RemoveIfExists(path)
		return "", fmt.Errorf("fetched %s: %w", path, filex.ErrOutsideRoot)
	}
	return path, nil
}

func (s *FolderService) setCover(ctx context.Context, f *models.Folder, p models.PendingFile) error {
	if p.Type != models.FileTypePhoto {
		return fmt.Errorf("cover must be a photo: %w", common.ErrorValidation)
	}
	dir, err := s.chatDir(f.ChatID)
	if err != nil {
		return err
	}

	path, err := s.fetchInto(ctx, p, dir, fmt.Sprintf("%d_cover", f.ID))
	if err != nil {
		return err
	}
	if err := s.repomanager.Folders(s.db).UpdateField(ctx, f.ChatID, f.ID, folders.FieldCover, path); err != nil {
		_ = filex.RemoveIfExists(path)
		return err
	}

	if f.CoverPath != "" && f.CoverPath != path {
		if err := s.removeStored(f.CoverPath); err != nil {
			s.log.Warn(ctx, "old cover not removed", "folder_id", f.ID, "error", err)
		}
	}
	f.CoverPath = path
	return nil
}

func (s *FolderService) FindByName(ctx context.Context, chatID int64, name string) (*models.Folder, error) {
	return s.repomanager.Folders(s.db).GetByName(ctx, chatID, name)
}

// Get returns folder id only if it belongs to chatID.
func (s *FolderService) Get(ctx context.Context, chatID, id int64) (*models.Folder, error) {
	return s.repomanager.Folders(s.db).GetByID(ctx, chatID, id)
}

func (s *FolderService) ListNames(ctx context.Context, chatID int64) ([]string, error) {
	return s.repomanager.Folders(s.db).ListNames(ctx, chatID)
}

func (s *FolderService) Search(ctx context.Context, chatID int64, query string) ([]string, error) {
	return s.repomanager.Folders(s.db).Search(ctx, chatID, query)
}

func (s *FolderService) Files(ctx context.Context, folderID int64) ([]*models.FolderFile, error) {
	return s.repomanager.Files(s.db).ListByFolder(ctx, folderID)
}

func (s *FolderService) Rename(ctx context.Context, chatID, id int64, raw string) (string, error) {
	name, err := validate.FolderName(raw)
	if err != nil {
		return "", err
	}
	if err := s.repomanager.Folders(s.db).UpdateField(ctx, chatID, id, folders.FieldName, name); err != nil {
		return "", err
	}
	return name, nil
}

func (s *FolderService) UpdateDescription(ctx context.Context, chatID, id int64, raw string) error {
	text, err := validate.Text(raw, validate.MaxDescriptionLength)
	if err != nil {
		return err
	}
	return s.repomanager.Folders(s.db).UpdateField(ctx, chatID, id, folders.FieldDescription, text)
}

func (s *FolderService) UpdateTags(ctx context.Context, chatID, id int64, raw string) error {
	text, err := validate.Text(raw, validate.MaxTagsLength)
	if err != nil {
		return err
	}
	return s.repomanager.Folders(s.db).UpdateField(ctx, chatID, id, folders.FieldTags, text)
}

// SetPassword hashes plain and stores the hash. Short passwords yield
// common.ErrorValidation.
func (s *FolderService) SetPassword(ctx context.Context, chatID, id int64, plain string) error {
	hash, err := cryptox.HashPassword(plain)
	if err != nil {
		return err
	}
	return s.repomanager.Folders(s.db).UpdateField(ctx, chatID, id, folders.FieldPassword, hash)
}

func (s *FolderService) RemovePassword(ctx context.Context, chatID, id int64) error {
	return s.repomanager.Folders(s.db).UpdateField(ctx, chatID, id, folders.FieldPassword, "")
}

// UpdateCover stores a new cover photo and removes the previous file.
func (s *FolderService) UpdateCover(ctx context.Context, chatID, id int64, p models.PendingFile) error {
	f, err := s.Get(ctx, chatID, id)
	if err != nil {
		return err
	}
	return s.setCover(ctx, f, p)
}

// VerifyPassword reports whether plain unlocks f. Unprotected folders are
// always unlocked.
func (s *FolderService) VerifyPassword(f *models.Folder, plain string) bool {
	if !f.Protected() {
		return true
	}
	return cryptox.CheckPassword(f.PasswordHash, plain)
}

// DeleteFile removes one entry of a folder owned by chatID and its payload.
func (s *FolderService) DeleteFile(ctx context.Context, chatID, folderID, fileID int64) error {
	if _, err := s.Get(ctx, chatID, folderID); err != nil {
		return err
	}

	repo := s.repomanager.Files(s.db)
	ff, err := repo.Get(ctx, folderID, fileID)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, folderID, fileID); err != nil {
		return err
	}
	if ff.Type != models.FileTypeText && ff.Resolved() {
		if err := s.removeStored(ff.Path); err != nil {
			s.log.Warn(ctx, "file payload not removed", "folder_id", folderID, "file_id", fileID, "error", err)
		}
	}
	return nil
}

// Delete removes the folder, its rows and every file named <id>_* in the
// chat directory. A protected folder requires the matching password and is
// left untouched otherwise.
func (s *FolderService) Delete(ctx context.Context, chatID, id int64, password string) (*models.Folder, error) {
	f, err := s.Get(ctx, chatID, id)
	if err != nil {
		return nil, err
	}
	if !s.VerifyPassword(f, password) {
		return nil, common.ErrorUnauthorized
	}

	if err := s.repomanager.Folders(s.db).Delete(ctx, chatID, id); err != nil {
		return nil, err
	}

	dir, err := filex.SafeJoin(s.uploadDir, strconv.FormatInt(chatID, 10))
	var n int
	if err == nil {
		n, err = filex.RemoveByPrefix(dir, strconv.FormatInt(id, 10)+"_")
	}
	if err != nil {
		s.log.Warn(ctx, "folder files not fully removed", "chat_id", chatID, "folder_id", id, "error", err)
	}
	s.log.Info(ctx, "folder deleted", "chat_id", chatID, "folder_id", id, "files_removed", n)
	return f, nil
}

// SaveVideo files an already downloaded video into a new folder named
// YouTube_<unix ts>: folder and placeholder rows in one transaction, move to
// <folderId>_<fileId><ext of src>, path update. Any failure after the rows
// exist removes the folder again.
func (s *FolderService) SaveVideo(ctx context.Context, chatID int64, src string) (*models.Folder, *models.FolderFile, error) {
	dir, err := s.chatDir(chatID)
	if err != nil {
		return nil, nil, err
	}

	f := &models.Folder{ChatID: chatID, Name: fmt.Sprintf("YouTube_%d", now().Unix())}
	var ff *models.FolderFile
	for i := 1; ; i++ {
		f.ID = 0
		err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			if err := s.repomanager.Folders(tx).Create(ctx, f); err != nil {
				return err
			}
			ff = &models.FolderFile{FolderID: f.ID, Type: models.FileTypeVideo, Path: models.PendingPath}
			return s.repomanager.Files(tx).Create(ctx, ff)
		})
		if !errors.Is(err, common.ErrorAlreadyExists) || i > 9 {
			break
		}
		f.Name = fmt.Sprintf("YouTube_%d_%d", now().Unix(), i)
	}
	if err != nil {
		return nil, nil, err
	}

	ext := filepath.Ext(src)
	if ext == "" {
		ext = ".mp4"
	}
	dest, err := filex.SafeJoin(dir, fmt.Sprintf("%d_%d%s", f.ID, ff.ID, ext))
	if err == nil {
		err = moveFile(src, dest)
	}
	if err != nil {
		s.dropFolder(ctx, f)
		return nil, nil, err
	}
	if err := s.repomanager.Files(s.db).UpdatePath(ctx, ff.ID, dest); err != nil {
		_ = filex.RemoveIfExists(dest)
		s.dropFolder(ctx, f)
		return nil, nil, err
	}
	ff.Path = dest

	s.log.Info(ctx, "video saved", "chat_id", chatID, "folder_id", f.ID, "file_id", ff.ID)
	return f, ff, nil
}

func (s *FolderService) dropFolder(ctx context.Context, f *models.Folder) {
	if err := s.repomanager.Folders(s.db).Delete(ctx, f.ChatID, f.ID); err != nil {
		s.log.Error(ctx, "folder not rolled back", "chat_id", f.ChatID, "folder_id", f.ID, "error", err)
	}
}

// moveFile renames src to dest, copying when they are on different devices.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o660)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	if _, err := out.ReadFrom(in); err != nil {
		out.Close()
		_ = os.Remove(dest)
		return fmt.Errorf("copy: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	in.Close()
	return os.Remove(src)
}
