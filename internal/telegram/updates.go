package telegram

import (
	"context"

	"github.com/dmitrijs2005/folderkeeper/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Convert reduces a raw update to an Update. ok is false for updates the bot
// ignores (edited messages, channel posts, inline queries ...).
func Convert(raw tgbotapi.Update) (Update, bool) {
	switch {
	case raw.Message != nil:
		return convertMessage(raw.UpdateID, raw.Message), true
	case raw.CallbackQuery != nil:
		cq := raw.CallbackQuery
		u := Update{
			ID:       raw.UpdateID,
			Callback: &Callback{ID: cq.ID, Data: cq.Data},
		}
		switch {
		case cq.Message != nil && cq.Message.Chat != nil:
			u.ChatID = cq.Message.Chat.ID
			u.Callback.MessageID = cq.Message.MessageID
		case cq.From != nil:
			u.ChatID = cq.From.ID
		default:
			return Update{}, false
		}
		return u, true
	}
	return Update{}, false
}

func convertMessage(id int, m *tgbotapi.Message) Update {
	u := Update{ID: id, MessageID: m.MessageID, Text: m.Text}
	if m.Chat != nil {
		u.ChatID = m.Chat.ID
	}
	if m.IsCommand() {
		u.Command = m.Command()
		u.Args = m.CommandArguments()
	}
	u.Media = mediaOf(m)
	return u
}

// mediaOf picks the payload of a message. Animations also carry a Document,
// so they are checked first; for photos the largest size wins.
func mediaOf(m *tgbotapi.Message) *models.PendingFile {
	switch {
	case len(m.Photo) > 0:
		p := m.Photo[len(m.Photo)-1]
		return &models.PendingFile{Type: models.FileTypePhoto, FileID: p.FileID, Size: int64(p.FileSize)}
	case m.Animation != nil:
		a := m.Animation
		return &models.PendingFile{Type: models.FileTypeAnimation, FileID: a.FileID, MimeType: a.MimeType, FileName: a.FileName, Size: int64(a.FileSize)}
	case m.Video != nil:
		v := m.Video
		return &models.PendingFile{Type: models.FileTypeVideo, FileID: v.FileID, MimeType: v.MimeType, Size: int64(v.FileSize)}
	case m.Audio != nil:
		a := m.Audio
		return &models.PendingFile{Type: models.FileTypeAudio, FileID: a.FileID, MimeType: a.MimeType, FileName: a.FileName, Size: int64(a.FileSize)}
	case m.Voice != nil:
		v := m.Voice
		return &models.PendingFile{Type: models.FileTypeVoice, FileID: v.FileID, MimeType: v.MimeType, Size: int64(v.FileSize)}
	case m.Sticker != nil:
		s := m.Sticker
		return &models.PendingFile{Type: models.FileTypeSticker, FileID: s.FileID, Animated: s.IsAnimated, Size: int64(s.FileSize)}
	case m.Document != nil:
		d := m.Document
		return &models.PendingFile{Type: models.FileTypeDocument, FileID: d.FileID, MimeType: d.MimeType, FileName: d.FileName, Size: int64(d.FileSize)}
	}
	return nil
}

// Poll starts long polling and forwards converted updates to handle until
// ctx is done.
func (c *Client) Poll(ctx context.Context, timeoutSec int, handle func(context.Context, Update)) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = timeoutSec

	updates := c.api.GetUpdatesChan(cfg)
	defer c.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return
		case raw, ok := <-updates:
			if !ok {
				return
			}
			if u, ok := Convert(raw); ok {
				handle(ctx, u)
			}
		}
	}
}
