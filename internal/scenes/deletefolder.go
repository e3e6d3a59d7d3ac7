package scenes

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/folderkeeper/internal/common"
	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/dmitrijs2005/folderkeeper/internal/session"
)

// DeleteFolder removes a folder with all of its files after confirmation.
// For a protected folder the password is asked last and checked by the
// delete itself.
type DeleteFolder struct{}

func (*DeleteFolder) Name() session.SceneName { return session.SceneDeleteFolder }

func (*DeleteFolder) Enter(ctx context.Context, c *Conv) error {
	c.Session.Enter(session.SceneDeleteFolder)
	c.Session.DeleteFolder = &session.DeleteFolderState{Step: session.DeleteFolderName}
	return c.Ask(ctx, c.folderNames(ctx), i18n.EnterFolderToDelete)
}

func (s *DeleteFolder) EnterFor(ctx context.Context, c *Conv, f *models.Folder) error {
	c.Session.Enter(session.SceneDeleteFolder)
	c.Session.DeleteFolder = &session.DeleteFolderState{Step: session.DeleteFolderName}
	return s.confirm(ctx, c, f)
}

func (s *DeleteFolder) confirm(ctx context.Context, c *Conv, f *models.Folder) error {
	st := c.Session.DeleteFolder
	st.Step, st.FolderID = session.DeleteFolderConfirm, f.ID
	return c.Ask(ctx, c.YesNoKeyboard(false), i18n.ConfirmDelete, f.Name)
}

func (s *DeleteFolder) HandleText(ctx context.Context, c *Conv, text string) error {
	st := c.Session.DeleteFolder

	switch st.Step {
	case session.DeleteFolderName:
		f, err := locate(ctx, c, text)
		if f == nil || err != nil {
			return err
		}
		return s.confirm(ctx, c, f)

	case session.DeleteFolderConfirm:
		switch {
		case c.Is(i18n.BtnNo, text):
			return c.Exit(ctx, i18n.Cancelled)
		case !c.Is(i18n.BtnYes, text) && !c.Is(i18n.BtnConfirm, text):
			return c.Ask(ctx, c.YesNoKeyboard(false), i18n.InvalidChoice)
		}
		f, err := c.Folders.Get(ctx, c.ChatID, st.FolderID)
		if errors.Is(err, common.ErrorNotFound) {
			return c.Exit(ctx, i18n.FolderNotFound)
		}
		if err != nil {
			return Stay(err)
		}
		if f.Protected() {
			st.Step = session.DeleteFolderPassword
			return askPassword(ctx, c)
		}
		return s.delete(ctx, c, "")

	case session.DeleteFolderPassword:
		return s.delete(ctx, c, text)
	}
	return nil
}

func (s *DeleteFolder) delete(ctx context.Context, c *Conv, password string) error {
	f, err := c.Folders.Delete(ctx, c.ChatID, c.Session.DeleteFolder.FolderID, password)
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		return c.Ask(ctx, c.NavKeyboard(false), i18n.WrongPassword)
	case errors.Is(err, common.ErrorNotFound):
		return c.Exit(ctx, i18n.FolderNotFound)
	case err != nil:
		return Stay(err)
	}
	return c.Exit(ctx, i18n.FolderDeleted, f.Name)
}

func (s *DeleteFolder) HandleMedia(ctx context.Context, c *Conv, _ models.PendingFile) error {
	return c.Say(ctx, i18n.UseCommands)
}
