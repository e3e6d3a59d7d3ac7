package bot

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/folderkeeper/internal/actions"
	"github.com/dmitrijs2005/folderkeeper/internal/common"
	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/dmitrijs2005/folderkeeper/internal/render"
	"github.com/dmitrijs2005/folderkeeper/internal/scenes"
	"github.com/dmitrijs2005/folderkeeper/internal/session"
	"github.com/dmitrijs2005/folderkeeper/internal/telegram"
)

// targets are the folder buttons that start a scene at a known folder.
var targets = map[actions.Kind]session.SceneName{
	actions.Add:        session.SceneAddFiles,
	actions.Edit:       session.SceneEditFolder,
	actions.Delete:     session.SceneDeleteFolder,
	actions.DeleteFile: session.SceneDeleteFile,
}

func (b *Bot) callback(ctx context.Context, c *scenes.Conv, cb *telegram.Callback) error {
	c.Origin = cb.MessageID
	a, err := actions.Parse(cb.Data)
	if err != nil {
		b.log.Warn(ctx, "unknown callback", "chat_id", c.ChatID, "data", cb.Data)
		return nil
	}

	switch a.Kind {
	case actions.Page:
		return scenes.ListPage(ctx, c, int(a.ID))
	case actions.SearchPage:
		return scenes.SearchPage(ctx, c, int(a.ID))
	case actions.YouTubeSend, actions.YouTubeKeep:
		return scenes.ChooseVideoAction(ctx, c, a.Kind == actions.YouTubeSend)
	}

	// every remaining token names a folder that must belong to this chat
	f, err := c.Folders.Get(ctx, c.ChatID, a.ID)
	if errors.Is(err, common.ErrorNotFound) {
		return c.Say(ctx, i18n.AccessDenied)
	}
	if err != nil {
		return scenes.Stay(err)
	}

	switch a.Kind {
	case actions.DeleteFileItem:
		return scenes.ChooseFile(ctx, c, f.ID, a.FileID)
	case actions.Share:
		return c.Send(ctx, render.Share(f, c.T))
	case actions.Details:
		if f.Protected() {
			return b.enterFor(ctx, c, session.SceneOpenFolder, f)
		}
		return scenes.Show(ctx, c, f)
	}

	if sn, ok := targets[a.Kind]; ok {
		return b.enterFor(ctx, c, sn, f)
	}
	return nil
}

func (b *Bot) enterFor(ctx context.Context, c *scenes.Conv, sn session.SceneName, f *models.Folder) error {
	t, ok := b.scenes[sn].(scenes.Targeted)
	if !ok {
		return c.Say(ctx, i18n.UseCommands)
	}
	return t.EnterFor(ctx, c, f)
}
