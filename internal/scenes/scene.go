// Package scenes implements the multi-step conversations. Each scene owns
// one typed state in the session and advances it on every inbound text or
// media message.
package scenes

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/folderkeeper/internal/fallback"
	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/logging"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/dmitrijs2005/folderkeeper/internal/render"
	"github.com/dmitrijs2005/folderkeeper/internal/services"
	"github.com/dmitrijs2005/folderkeeper/internal/session"
	"github.com/dmitrijs2005/folderkeeper/internal/telegram"
	"github.com/dmitrijs2005/folderkeeper/internal/youtube"
)

// Folders is the part of the folder service the scenes use.
type Folders interface {
	NameTaken(ctx context.Context, chatID int64, name string) (bool, error)
	Create(ctx context.Context, nf services.NewFolder) (*models.Folder, services.StoreResult, error)
	AddFiles(ctx context.Context, chatID, folderID int64, pending []models.PendingFile) (services.StoreResult, error)
	FindByName(ctx context.Context, chatID int64, name string) (*models.Folder, error)
	Get(ctx context.Context, chatID, id int64) (*models.Folder, error)
	ListNames(ctx context.Context, chatID int64) ([]string, error)
	Search(ctx context.Context, chatID int64, query string) ([]string, error)
	Files(ctx context.Context, folderID int64) ([]*models.FolderFile, error)
	Rename(ctx context.Context, chatID, id int64, raw string) (string, error)
	UpdateDescription(ctx context.Context, chatID, id int64, raw string) error
	UpdateTags(ctx context.Context, chatID, id int64, raw string) error
	SetPassword(ctx context.Context, chatID, id int64, plain string) error
	RemovePassword(ctx context.Context, chatID, id int64) error
	UpdateCover(ctx context.Context, chatID, id int64, p models.PendingFile) error
	VerifyPassword(f *models.Folder, plain string) bool
	DeleteFile(ctx context.Context, chatID, folderID, fileID int64) error
	Delete(ctx context.Context, chatID, id int64, password string) (*models.Folder, error)
	SaveVideo(ctx context.Context, chatID int64, src string) (*models.Folder, *models.FolderFile, error)
}

// Outbox delivers messages for a chat.
type Outbox interface {
	Prompt(ctx context.Context, chatID int64, text string, opts telegram.SendOptions) error
	Send(ctx context.Context, chatID int64, o render.Outbound) error
	SendAll(ctx context.Context, chatID int64, out []render.Outbound) error
	Close(ctx context.Context, chatID int64, messageID int, text string) error
}

// Deps are the collaborators shared by every conversation.
type Deps struct {
	Folders   Folders
	Out       Outbox
	Catalog   *i18n.Catalog
	YouTube   youtube.Downloader
	Uploader  fallback.Uploader
	UploadDir string
	Log       logging.Logger

	// MaxFileSize bounds uploads accepted into a folder.
	MaxFileSize int64
	// VideoSendLimit bounds videos sent back through the messenger.
	VideoSendLimit int64
}

// Conv is the handle a scene acts through while handling one update.
type Conv struct {
	*Deps
	ChatID  int64
	Session *session.Session
	T       i18n.Translator
	// Origin is the message whose inline button started this update.
	Origin int
}

func NewConv(d *Deps, s *session.Session) *Conv {
	return &Conv{Deps: d, ChatID: s.ChatID, Session: s, T: d.Catalog.For(s.Lang)}
}

// Scene is one conversation flow.
type Scene interface {
	Name() session.SceneName
	Enter(ctx context.Context, c *Conv) error
	HandleText(ctx context.Context, c *Conv, text string) error
	HandleMedia(ctx context.Context, c *Conv, m models.PendingFile) error
}

// Backer is implemented by scenes that keep a step history.
type Backer interface {
	Back(ctx context.Context, c *Conv) error
}

// Targeted is implemented by scenes that can start from a known folder, as
// inline buttons do.
type Targeted interface {
	EnterFor(ctx context.Context, c *Conv, f *models.Folder) error
}

type stayError struct{ err error }

func (e *stayError) Error() string { return e.err.Error() }
func (e *stayError) Unwrap() error { return e.err }

// Stay marks err as having happened before any mutation: the caller reports
// it and keeps the current step.
func Stay(err error) error {
	if err == nil {
		return nil
	}
	return &stayError{err: err}
}

// IsStay reports whether err was wrapped by Stay.
func IsStay(err error) bool {
	var s *stayError
	return errors.As(err, &s)
}

// Registry resolves scenes by name.
type Registry map[session.SceneName]Scene

func NewRegistry(scenes ...Scene) Registry {
	r := make(Registry, len(scenes))
	for _, s := range scenes {
		r[s.Name()] = s
	}
	return r
}

// Default returns every scene.
func Default() Registry {
	return NewRegistry(
		&CreateFolder{},
		&OpenFolder{},
		&ListFolders{},
		&SearchFolders{},
		&AddFiles{},
		&EditFolder{},
		&DeleteFile{},
		&DeleteFolder{},
		&DownloadYouTube{},
	)
}
