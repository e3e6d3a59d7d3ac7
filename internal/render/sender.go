package render

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/folderkeeper/internal/logging"
	"github.com/dmitrijs2005/folderkeeper/internal/markup"
	"github.com/dmitrijs2005/folderkeeper/internal/reaper"
	"github.com/dmitrijs2005/folderkeeper/internal/telegram"
)

// Scheduler accepts sent messages for later deletion.
type Scheduler interface {
	Schedule(ctx context.Context, p reaper.Pending)
}

var now = time.Now

// Sender delivers Outbound payloads and hands every sent message to the
// reaper.
type Sender struct {
	messenger telegram.Messenger
	reaper    Scheduler
	log       logging.Logger
	textTTL   time.Duration
	albumTTL  time.Duration
}

func NewSender(m telegram.Messenger, r Scheduler, log logging.Logger, textTTL, albumTTL time.Duration) *Sender {
	return &Sender{
		messenger: m,
		reaper:    r,
		log:       log.With("component", "sender"),
		textTTL:   textTTL,
		albumTTL:  albumTTL,
	}
}

// Prompt sends plain text with an optional keyboard.
func (s *Sender) Prompt(ctx context.Context, chatID int64, text string, opts telegram.SendOptions) error {
	opts.ParseMode = telegram.ModePlain
	id, err := s.messenger.SendText(ctx, chatID, text, opts)
	if err != nil {
		return err
	}
	s.schedule(ctx, chatID, s.textTTL, id)
	return nil
}

// Send delivers o. MarkdownV2 payloads rejected by the API are retried once
// as plain text with the markup stripped.
func (s *Sender) Send(ctx context.Context, chatID int64, o Outbound) error {
	switch o.Kind {
	case KindAlbum:
		ids, err := s.messenger.SendAlbum(ctx, chatID, o.Album)
		if err != nil {
			return err
		}
		s.schedule(ctx, chatID, s.albumTTL, ids...)
		return nil

	case KindMedia:
		media := o.Media
		id, err := s.withFallback(ctx, o, func(text string, mode telegram.ParseMode) (int, error) {
			media.Caption = text
			return s.messenger.SendMedia(ctx, chatID, media, telegram.SendOptions{ParseMode: mode, Inline: o.Inline})
		})
		if err != nil {
			return err
		}
		s.schedule(ctx, chatID, s.textTTL, id)
		return nil

	default:
		id, err := s.withFallback(ctx, o, func(text string, mode telegram.ParseMode) (int, error) {
			return s.messenger.SendText(ctx, chatID, text, telegram.SendOptions{ParseMode: mode, Inline: o.Inline})
		})
		if err != nil {
			return err
		}
		s.schedule(ctx, chatID, s.textTTL, id)
		return nil
	}
}

func (s *Sender) withFallback(ctx context.Context, o Outbound, send func(string, telegram.ParseMode) (int, error)) (int, error) {
	if !o.Markdown {
		return send(o.Text, telegram.ModePlain)
	}
	id, err := send(o.Text, telegram.ModeMarkdownV2)
	if !errors.Is(err, telegram.ErrMarkupRejected) {
		return id, err
	}
	s.log.Warn(ctx, "markup rejected, sending plain text", "error", err)
	return send(markup.Strip(o.Text), telegram.ModePlain)
}

// Close replaces the text of an earlier message and drops its inline
// keyboard. The message keeps its original deletion schedule.
func (s *Sender) Close(ctx context.Context, chatID int64, messageID int, text string) error {
	return s.messenger.EditText(ctx, chatID, messageID, text, telegram.SendOptions{ParseMode: telegram.ModePlain})
}

// SendAll delivers every payload in order. A failed payload is logged and
// skipped; the joined errors are returned.
func (s *Sender) SendAll(ctx context.Context, chatID int64, out []Outbound) error {
	var errs []error
	for _, o := range out {
		if err := s.Send(ctx, chatID, o); err != nil {
			s.log.Warn(ctx, "payload not delivered", "chat_id", chatID, "kind", o.Kind, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Sender) schedule(ctx context.Context, chatID int64, ttl time.Duration, ids ...int) {
	if s.reaper == nil || ttl <= 0 {
		return
	}
	sent := now()
	for _, id := range ids {
		s.reaper.Schedule(ctx, reaper.Pending{ChatID: chatID, MessageID: id, SentAt: sent, DeleteAfter: ttl})
	}
}
