// Package telegram is the messaging transport: a narrow Messenger interface
// the conversation layer talks to, its tgbotapi implementation, inbound
// update conversion and the media fetcher.
package telegram

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/folderkeeper/internal/models"
)

// ErrMarkupRejected is returned when the API cannot parse a formatted message.
var ErrMarkupRejected = errors.New("markup rejected")

// ParseMode selects how the API interprets message text.
type ParseMode string

const (
	ModePlain      ParseMode = ""
	ModeMarkdownV2 ParseMode = "MarkdownV2"
)

// InlineButton is a button attached to a message. Exactly one of Data or
// SwitchQuery is set.
type InlineButton struct {
	Text        string
	Data        string
	SwitchQuery string
}

type InlineKeyboard [][]InlineButton

// ReplyKeyboard replaces the user's keyboard with text buttons.
type ReplyKeyboard [][]string

type SendOptions struct {
	ParseMode      ParseMode
	Inline         InlineKeyboard
	Reply          ReplyKeyboard
	RemoveKeyboard bool
}

// OutMedia is a file on disk to be sent.
type OutMedia struct {
	Type    models.FileType
	Path    string
	Caption string
}

// RemoteFile describes an uploaded file as the API reports it.
type RemoteFile struct {
	URL  string
	Size int64
}

// Messenger is what the bot needs from the transport.
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string, opts SendOptions) (int, error)
	SendMedia(ctx context.Context, chatID int64, media OutMedia, opts SendOptions) (int, error)
	// SendAlbum sends 2..10 photos/videos as one group.
	SendAlbum(ctx context.Context, chatID int64, items []OutMedia) ([]int, error)
	EditText(ctx context.Context, chatID int64, messageID int, text string, opts SendOptions) error
	Delete(ctx context.Context, chatID int64, messageID int) error
	AnswerCallback(ctx context.Context, callbackID, text string) error
	File(ctx context.Context, fileID string) (RemoteFile, error)
}

// Update is one inbound event, already reduced to what the bot uses.
type Update struct {
	ID        int
	ChatID    int64
	MessageID int
	Text      string
	Command   string
	Args      string
	Media     *models.PendingFile
	Callback  *Callback
}

type Callback struct {
	ID        string
	Data      string
	MessageID int
}
