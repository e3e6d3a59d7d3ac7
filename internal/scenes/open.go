package scenes

import (
	"context"

	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/dmitrijs2005/folderkeeper/internal/render"
	"github.com/dmitrijs2005/folderkeeper/internal/session"
)

// OpenFolder renders a folder after its name (and password) is given.
type OpenFolder struct{}

func (*OpenFolder) Name() session.SceneName { return session.SceneOpenFolder }

func (*OpenFolder) Enter(ctx context.Context, c *Conv) error {
	c.Session.Enter(session.SceneOpenFolder)
	c.Session.Open = &session.OpenFolderState{Step: session.TargetName}
	return c.Ask(ctx, c.folderNames(ctx), i18n.EnterFolderToOpen)
}

func (s *OpenFolder) EnterFor(ctx context.Context, c *Conv, f *models.Folder) error {
	if !f.Protected() {
		return Show(ctx, c, f)
	}
	c.Session.Enter(session.SceneOpenFolder)
	c.Session.Open = &session.OpenFolderState{Step: session.TargetPassword, FolderID: f.ID}
	return askPassword(ctx, c)
}

func (s *OpenFolder) HandleText(ctx context.Context, c *Conv, text string) error {
	st := c.Session.Open

	switch st.Step {
	case session.TargetName:
		f, err := locate(ctx, c, text)
		if f == nil || err != nil {
			return err
		}
		if f.Protected() {
			st.Step, st.FolderID = session.TargetPassword, f.ID
			return askPassword(ctx, c)
		}
		return Show(ctx, c, f)

	case session.TargetPassword:
		f, err := unlock(ctx, c, st.FolderID, text)
		if f == nil || err != nil {
			return err
		}
		return Show(ctx, c, f)
	}
	return nil
}

func (s *OpenFolder) HandleMedia(ctx context.Context, c *Conv, _ models.PendingFile) error {
	return c.Say(ctx, i18n.UseCommands)
}

// Show renders f with its files and leaves the active scene.
func Show(ctx context.Context, c *Conv, f *models.Folder) error {
	files, err := c.Folders.Files(ctx, f.ID)
	if err != nil {
		return err
	}
	c.Session.Leave()
	if err := c.Out.SendAll(ctx, c.ChatID, render.FolderView(f, files, c.T)); err != nil {
		c.Log.Warn(ctx, "folder view incomplete", "chat_id", c.ChatID, "folder_id", f.ID, "error", err)
	}
	return nil
}
