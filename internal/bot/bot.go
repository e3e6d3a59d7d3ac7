// Package bot turns transport updates into scene transitions: it resolves
// the chat session, routes commands, meta-commands and inline callbacks,
// and reports failures to the user.
package bot

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/logging"
	"github.com/dmitrijs2005/folderkeeper/internal/scenes"
	"github.com/dmitrijs2005/folderkeeper/internal/session"
	"github.com/dmitrijs2005/folderkeeper/internal/telegram"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("folderkeeper/bot")

// Callbacks is the part of the transport used to acknowledge button presses.
type Callbacks interface {
	AnswerCallback(ctx context.Context, callbackID, text string) error
}

type Bot struct {
	deps      *scenes.Deps
	sessions  session.Store
	scenes    scenes.Registry
	callbacks Callbacks
	log       logging.Logger
}

func New(deps *scenes.Deps, sessions session.Store, reg scenes.Registry, callbacks Callbacks, log logging.Logger) *Bot {
	return &Bot{
		deps:      deps,
		sessions:  sessions,
		scenes:    reg,
		callbacks: callbacks,
		log:       log.With("component", "bot"),
	}
}

// Handle processes one update to completion. It never panics.
func (b *Bot) Handle(ctx context.Context, u telegram.Update) {
	ctx, span := tracer.Start(ctx, "handle_update",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.Int64("chat_id", u.ChatID),
			attribute.Int("update_id", u.ID),
		),
	)
	defer span.End()

	log := b.log.With("update", uuid.NewString(), "chat_id", u.ChatID)

	sess, err := b.sessions.Get(ctx, u.ChatID)
	if err != nil {
		log.Error(ctx, "load session", "error", err)
		span.RecordError(err)
		b.report(ctx, scenes.NewConv(b.deps, session.New(u.ChatID, i18n.En)), false)
		return
	}
	c := scenes.NewConv(b.deps, sess)

	defer func() {
		if r := recover(); r != nil {
			log.Error(ctx, "panic in update handler", "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
			span.SetStatus(codes.Error, "panic")
			sess.Leave()
			b.report(ctx, c, true)
			b.save(ctx, log, sess)
		}
	}()

	if u.Callback != nil {
		defer b.answer(ctx, log, u.Callback.ID)
	}

	if err := b.route(ctx, c, u); err != nil {
		stay := scenes.IsStay(err)
		log.Error(ctx, "update failed", "scene", sess.Scene, "stay", stay, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if !stay {
			sess.Leave()
		}
		b.report(ctx, c, !stay)
	}
	span.SetAttributes(attribute.String("scene", string(sess.Scene)))

	b.save(ctx, log, sess)
}

func (b *Bot) save(ctx context.Context, log logging.Logger, s *session.Session) {
	if err := b.sessions.Save(ctx, s); err != nil {
		log.Error(ctx, "save session", "error", err)
	}
}

func (b *Bot) answer(ctx context.Context, log logging.Logger, id string) {
	if err := b.callbacks.AnswerCallback(ctx, id, ""); err != nil {
		log.Warn(ctx, "answer callback", "error", err)
	}
}

// report sends the generic error. When the scene was left the main menu is
// restored as well.
func (b *Bot) report(ctx context.Context, c *scenes.Conv, left bool) {
	var err error
	if left {
		err = c.Exit(ctx, i18n.GenericError)
	} else {
		err = c.Say(ctx, i18n.GenericError)
	}
	if err != nil {
		b.log.Warn(ctx, "error reply not sent", "chat_id", c.ChatID, "error", err)
	}
}

func (b *Bot) route(ctx context.Context, c *scenes.Conv, u telegram.Update) error {
	switch {
	case u.Callback != nil:
		return b.callback(ctx, c, u.Callback)
	case u.Command != "":
		return b.command(ctx, c, u.Command, u.Args)
	}

	active, ok := b.scenes[c.Session.Scene]
	if !ok {
		c.Session.Leave()
		return c.Ask(ctx, scenes.MainMenu(), i18n.UseCommands)
	}

	if u.Media != nil {
		return active.HandleMedia(ctx, c, *u.Media)
	}

	text := strings.TrimSpace(u.Text)
	switch {
	case c.Is(i18n.BtnCancel, text):
		if err := c.Say(ctx, i18n.Cancelled); err != nil {
			return err
		}
		return c.Exit(ctx, i18n.TryOtherCommands)
	case c.Is(i18n.BtnHelp, text):
		return c.Say(ctx, i18n.Help)
	case c.Is(i18n.BtnBack, text):
		if bk, ok := active.(scenes.Backer); ok {
			return bk.Back(ctx, c)
		}
		return c.Say(ctx, i18n.NoPreviousStep)
	}
	return active.HandleText(ctx, c, text)
}
