package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/folderkeeper/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client implements Messenger over the Bot API. The underlying library has
// no context support; ctx is accepted for interface symmetry.
type Client struct {
	api *tgbotapi.BotAPI
}

// NewClient authenticates token (getMe) with the given HTTP client. A
// missing or rejected token is an error.
func NewClient(token string, httpClient *http.Client) (*Client, error) {
	return newClient(token, tgbotapi.APIEndpoint, httpClient)
}

func newClient(token, endpoint string, httpClient *http.Client) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram: empty bot token")
	}
	api, err := tgbotapi.NewBotAPIWithClient(token, endpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("telegram: authorize: %w", err)
	}
	return &Client{api: api}, nil
}

// Username is the bot's @handle.
func (c *Client) Username() string {
	return c.api.Self.UserName
}

// API exposes the raw client for update delivery.
func (c *Client) API() *tgbotapi.BotAPI {
	return c.api
}

func (c *Client) SendText(ctx context.Context, chatID int64, text string, opts SendOptions) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = string(opts.ParseMode)
	msg.ReplyMarkup = replyMarkup(opts)
	msg.DisableWebPagePreview = true

	sent, err := c.api.Send(msg)
	if err != nil {
		return 0, mapError(err)
	}
	return sent.MessageID, nil
}

func (c *Client) SendMedia(ctx context.Context, chatID int64, m OutMedia, opts SendOptions) (int, error) {
	file := tgbotapi.FilePath(m.Path)
	mode := string(opts.ParseMode)
	markup := replyMarkup(opts)

	var cfg tgbotapi.Chattable
	switch m.Type {
	case models.FileTypePhoto:
		p := tgbotapi.NewPhoto(chatID, file)
		p.Caption, p.ParseMode, p.ReplyMarkup = m.Caption, mode, markup
		cfg = p
	case models.FileTypeVideo:
		v := tgbotapi.NewVideo(chatID, file)
		v.Caption, v.ParseMode, v.ReplyMarkup = m.Caption, mode, markup
		cfg = v
	case models.FileTypeAnimation:
		a := tgbotapi.NewAnimation(chatID, file)
		a.Caption, a.ParseMode, a.ReplyMarkup = m.Caption, mode, markup
		cfg = a
	case models.FileTypeAudio:
		a := tgbotapi.NewAudio(chatID, file)
		a.Caption, a.ParseMode, a.ReplyMarkup = m.Caption, mode, markup
		cfg = a
	case models.FileTypeVoice:
		v := tgbotapi.NewVoice(chatID, file)
		v.Caption, v.ParseMode, v.ReplyMarkup = m.Caption, mode, markup
		cfg = v
	case models.FileTypeSticker:
		s := tgbotapi.NewSticker(chatID, file)
		s.ReplyMarkup = markup
		cfg = s
	default:
		d := tgbotapi.NewDocument(chatID, file)
		d.Caption, d.ParseMode, d.ReplyMarkup = m.Caption, mode, markup
		cfg = d
	}

	sent, err := c.api.Send(cfg)
	if err != nil {
		return 0, mapError(err)
	}
	return sent.MessageID, nil
}

func (c *Client) SendAlbum(ctx context.Context, chatID int64, items []OutMedia) ([]int, error) {
	media := make([]interface{}, 0, len(items))
	for _, it := range items {
		if it.Type == models.FileTypeVideo {
			media = append(media, tgbotapi.NewInputMediaVideo(tgbotapi.FilePath(it.Path)))
			continue
		}
		media = append(media, tgbotapi.NewInputMediaPhoto(tgbotapi.FilePath(it.Path)))
	}

	msgs, err := c.api.SendMediaGroup(tgbotapi.NewMediaGroup(chatID, media))
	if err != nil {
		return nil, mapError(err)
	}
	ids := make([]int, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.MessageID)
	}
	return ids, nil
}

func (c *Client) EditText(ctx context.Context, chatID int64, messageID int, text string, opts SendOptions) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = string(opts.ParseMode)
	if len(opts.Inline) > 0 {
		kb := inlineMarkup(opts.Inline)
		edit.ReplyMarkup = &kb
	}
	if _, err := c.api.Send(edit); err != nil {
		return mapError(err)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, chatID int64, messageID int) error {
	if _, err := c.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		return mapError(err)
	}
	return nil
}

func (c *Client) AnswerCallback(ctx context.Context, callbackID, text string) error {
	if _, err := c.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return mapError(err)
	}
	return nil
}

// SetWebhook asks the Bot API to push updates to url instead of being polled.
func (c *Client) SetWebhook(ctx context.Context, url string) error {
	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return fmt.Errorf("telegram: webhook url: %w", err)
	}
	if _, err := c.api.Request(wh); err != nil {
		return mapError(err)
	}
	return nil
}

// DeleteWebhook switches the bot back to polling. Pending updates are kept.
func (c *Client) DeleteWebhook(ctx context.Context) error {
	if _, err := c.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return mapError(err)
	}
	return nil
}

func (c *Client) File(ctx context.Context, fileID string) (RemoteFile, error) {
	f, err := c.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return RemoteFile{}, mapError(err)
	}
	return RemoteFile{URL: f.Link(c.api.Token), Size: int64(f.FileSize)}, nil
}

func replyMarkup(opts SendOptions) interface{} {
	switch {
	case len(opts.Inline) > 0:
		return inlineMarkup(opts.Inline)
	case len(opts.Reply) > 0:
		rows := make([][]tgbotapi.KeyboardButton, 0, len(opts.Reply))
		for _, r := range opts.Reply {
			row := make([]tgbotapi.KeyboardButton, 0, len(r))
			for _, label := range r {
				row = append(row, tgbotapi.NewKeyboardButton(label))
			}
			rows = append(rows, row)
		}
		kb := tgbotapi.NewReplyKeyboard(rows...)
		kb.ResizeKeyboard = true
		return kb
	case opts.RemoveKeyboard:
		return tgbotapi.NewRemoveKeyboard(true)
	}
	return nil
}

func inlineMarkup(kb InlineKeyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(kb))
	for _, r := range kb {
		row := make([]tgbotapi.InlineKeyboardButton, 0, len(r))
		for _, b := range r {
			if b.SwitchQuery != "" {
				q := b.SwitchQuery
				row = append(row, tgbotapi.InlineKeyboardButton{Text: b.Text, SwitchInlineQuery: &q})
				continue
			}
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func mapError(err error) error {
	if strings.Contains(err.Error(), "can't parse entities") {
		return fmt.Errorf("%w: %v", ErrMarkupRejected, err)
	}
	return fmt.Errorf("telegram: %w", err)
}
