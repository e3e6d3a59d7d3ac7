package scenes

import (
	"context"

	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/dmitrijs2005/folderkeeper/internal/render"
	"github.com/dmitrijs2005/folderkeeper/internal/session"
)

// ListFolders shows the first page of folder names. Further pages come
// from PAGE_<n> buttons, so the scene exits right away.
type ListFolders struct{}

func (*ListFolders) Name() session.SceneName { return session.SceneListFolders }

func (*ListFolders) Enter(ctx context.Context, c *Conv) error {
	c.Session.Leave()
	return ListPage(ctx, c, 0)
}

func (*ListFolders) HandleText(ctx context.Context, c *Conv, _ string) error {
	c.Session.Leave()
	return c.Say(ctx, i18n.UseCommands)
}

func (*ListFolders) HandleMedia(ctx context.Context, c *Conv, _ models.PendingFile) error {
	c.Session.Leave()
	return c.Say(ctx, i18n.UseCommands)
}

// ListPage sends page of the chat's folder list.
func ListPage(ctx context.Context, c *Conv, page int) error {
	names, err := c.Folders.ListNames(ctx, c.ChatID)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return c.Ask(ctx, MainMenu(), i18n.NoFolders)
	}
	return c.Send(ctx, render.FolderList(names, page, c.T))
}
