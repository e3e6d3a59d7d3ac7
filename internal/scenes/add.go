package scenes

import (
	"context"

	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/dmitrijs2005/folderkeeper/internal/session"
	"github.com/dmitrijs2005/folderkeeper/internal/validate"
)

// AddFiles appends uploads to an existing folder.
type AddFiles struct{}

func (*AddFiles) Name() session.SceneName { return session.SceneAddFiles }

func (*AddFiles) Enter(ctx context.Context, c *Conv) error {
	c.Session.Enter(session.SceneAddFiles)
	c.Session.AddFiles = &session.AddFilesState{Step: session.AddFolder}
	return c.Ask(ctx, c.folderNames(ctx), i18n.EnterFolderToAdd)
}

func (s *AddFiles) EnterFor(ctx context.Context, c *Conv, f *models.Folder) error {
	c.Session.Enter(session.SceneAddFiles)
	c.Session.AddFiles = &session.AddFilesState{Step: session.AddFolder}
	return s.target(ctx, c, f)
}

func (s *AddFiles) target(ctx context.Context, c *Conv, f *models.Folder) error {
	st := c.Session.AddFiles
	st.FolderID, st.FolderName = f.ID, f.Name
	if f.Protected() {
		st.Step = session.AddPassword
		return askPassword(ctx, c)
	}
	st.Step = session.AddFiles
	return c.Ask(ctx, c.DoneKeyboard(false), i18n.SendFiles)
}

func (s *AddFiles) HandleText(ctx context.Context, c *Conv, text string) error {
	st := c.Session.AddFiles

	switch st.Step {
	case session.AddFolder:
		f, err := locate(ctx, c, text)
		if f == nil || err != nil {
			return err
		}
		return s.target(ctx, c, f)

	case session.AddPassword:
		f, err := unlock(ctx, c, st.FolderID, text)
		if f == nil || err != nil {
			return err
		}
		st.Step = session.AddFiles
		return c.Ask(ctx, c.DoneKeyboard(false), i18n.SendFiles)

	case session.AddFiles:
		if c.Is(i18n.BtnDone, text) {
			return s.save(ctx, c)
		}
		entry, err := validate.Text(text, validate.MaxTextLength)
		if err != nil {
			return c.Say(ctx, i18n.TextTooLong, validate.MaxTextLength)
		}
		if entry == "" {
			return nil
		}
		st.Files = append(st.Files, models.PendingFile{Type: models.FileTypeText, Text: entry})
		return c.Say(ctx, i18n.FileReceived, len(st.Files))
	}
	return nil
}

func (s *AddFiles) HandleMedia(ctx context.Context, c *Conv, m models.PendingFile) error {
	st := c.Session.AddFiles
	if st.Step != session.AddFiles {
		return c.Say(ctx, i18n.UseCommands)
	}
	if c.MaxFileSize > 0 && m.Size > c.MaxFileSize {
		return c.Say(ctx, i18n.FileTooLarge, megabytes(c.MaxFileSize))
	}
	st.Files = append(st.Files, m)
	return c.Say(ctx, i18n.FileReceived, len(st.Files))
}

func (s *AddFiles) save(ctx context.Context, c *Conv) error {
	st := c.Session.AddFiles
	if len(st.Files) == 0 {
		return c.Say(ctx, i18n.NoFiles)
	}
	if err := c.Busy(ctx, i18n.Saving); err != nil {
		c.Log.Warn(ctx, "saving notice not sent", "chat_id", c.ChatID, "error", err)
	}

	res, err := c.Folders.AddFiles(ctx, c.ChatID, st.FolderID, st.Files)
	if err != nil {
		return err
	}
	return c.Exit(ctx, i18n.FilesAdded, res.Stored, st.FolderName)
}
