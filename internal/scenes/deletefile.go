package scenes

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/folderkeeper/internal/common"
	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/dmitrijs2005/folderkeeper/internal/render"
	"github.com/dmitrijs2005/folderkeeper/internal/session"
)

// DeleteFile removes a single entry of a folder. The entry is picked with an
// inline button or by its number in the list.
type DeleteFile struct{}

func (*DeleteFile) Name() session.SceneName { return session.SceneDeleteFile }

func (*DeleteFile) Enter(ctx context.Context, c *Conv) error {
	c.Session.Enter(session.SceneDeleteFile)
	c.Session.DeleteFile = &session.DeleteFileState{Step: session.DeleteFileName}
	return c.Ask(ctx, c.folderNames(ctx), i18n.EnterFolderDeleteFile)
}

func (s *DeleteFile) EnterFor(ctx context.Context, c *Conv, f *models.Folder) error {
	c.Session.Enter(session.SceneDeleteFile)
	c.Session.DeleteFile = &session.DeleteFileState{Step: session.DeleteFileName}
	return s.target(ctx, c, f)
}

func (s *DeleteFile) target(ctx context.Context, c *Conv, f *models.Folder) error {
	st := c.Session.DeleteFile
	st.FolderID = f.ID
	if f.Protected() {
		st.Step = session.DeleteFilePassword
		return askPassword(ctx, c)
	}
	return s.choices(ctx, c, f)
}

// choices lists the entries of f, or exits when there is nothing to delete.
func (s *DeleteFile) choices(ctx context.Context, c *Conv, f *models.Folder) error {
	files, err := c.Folders.Files(ctx, f.ID)
	if err != nil {
		return Stay(err)
	}
	if len(files) == 0 {
		return c.Exit(ctx, i18n.FolderEmpty)
	}
	c.Session.DeleteFile.Step = session.DeleteFileSelect
	if err := c.Send(ctx, render.FileChoices(f, files, c.T)); err != nil {
		return err
	}
	return nil
}

func (s *DeleteFile) HandleText(ctx context.Context, c *Conv, text string) error {
	st := c.Session.DeleteFile

	switch st.Step {
	case session.DeleteFileName:
		f, err := locate(ctx, c, text)
		if f == nil || err != nil {
			return err
		}
		return s.target(ctx, c, f)

	case session.DeleteFilePassword:
		f, err := unlock(ctx, c, st.FolderID, text)
		if f == nil || err != nil {
			return err
		}
		return s.choices(ctx, c, f)

	case session.DeleteFileSelect:
		n, err := strconv.Atoi(strings.TrimRight(strings.TrimSpace(text), "."))
		if err != nil || n < 1 {
			return c.Say(ctx, i18n.InvalidChoice)
		}
		files, err := c.Folders.Files(ctx, st.FolderID)
		if err != nil {
			return Stay(err)
		}
		if n > len(files) {
			return c.Say(ctx, i18n.FileNotFound)
		}
		return ChooseFile(ctx, c, st.FolderID, files[n-1].ID)
	}
	return nil
}

func (s *DeleteFile) HandleMedia(ctx context.Context, c *Conv, _ models.PendingFile) error {
	return c.Say(ctx, i18n.UseCommands)
}

// ChooseFile deletes fileID once the conversation has reached the file
// choice of folderID. Buttons from older listings are answered as expired.
func ChooseFile(ctx context.Context, c *Conv, folderID, fileID int64) error {
	st := c.Session.DeleteFile
	if c.Session.Scene != session.SceneDeleteFile || st == nil ||
		st.Step != session.DeleteFileSelect || st.FolderID != folderID {
		return c.expired(ctx)
	}

	err := c.Folders.DeleteFile(ctx, c.ChatID, folderID, fileID)
	if errors.Is(err, common.ErrorNotFound) {
		return c.Say(ctx, i18n.FileNotFound)
	}
	if err != nil {
		return Stay(err)
	}
	if err := c.closeChoice(ctx, i18n.ChooseFileToDelete); err != nil {
		c.Log.Warn(ctx, "file choices not closed", "chat_id", c.ChatID, "error", err)
	}
	return c.Exit(ctx, i18n.FileDeleted)
}
