package scenes

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/folderkeeper/internal/common"
	"github.com/dmitrijs2005/folderkeeper/internal/cryptox"
	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/dmitrijs2005/folderkeeper/internal/services"
	"github.com/dmitrijs2005/folderkeeper/internal/session"
	"github.com/dmitrijs2005/folderkeeper/internal/validate"
)

// CreateFolder collects name, files, description, tags, an optional
// password and an optional cover, then saves everything at once.
type CreateFolder struct{}

func (*CreateFolder) Name() session.SceneName { return session.SceneCreateFolder }

func (s *CreateFolder) Enter(ctx context.Context, c *Conv) error {
	c.Session.Enter(session.SceneCreateFolder)
	c.Session.Create = &session.CreateFolderState{Step: session.CreateName}
	return s.prompt(ctx, c)
}

// prompt asks for whatever the current step expects.
func (s *CreateFolder) prompt(ctx context.Context, c *Conv) error {
	st := c.Session.Create
	back := len(st.History) > 0
	switch st.Step {
	case session.CreateName:
		return c.Ask(ctx, c.NavKeyboard(false), i18n.EnterFolderName)
	case session.CreateFiles:
		return c.Ask(ctx, c.DoneKeyboard(back), i18n.SendFiles)
	case session.CreateDescription:
		return c.Ask(ctx, c.SkipKeyboard(back), i18n.EnterDescription)
	case session.CreateTags:
		return c.Ask(ctx, c.SkipKeyboard(back), i18n.EnterTags)
	case session.CreatePassword:
		return c.Ask(ctx, c.YesNoKeyboard(back), i18n.AskPassword)
	case session.CreateSetPassword:
		return c.Ask(ctx, c.NavKeyboard(back), i18n.EnterNewPassword, cryptox.MinPasswordLength)
	case session.CreateCover:
		return c.Ask(ctx, c.SkipKeyboard(back), i18n.AskCover)
	}
	return nil
}

func (s *CreateFolder) advance(ctx context.Context, c *Conv, next session.CreateStep) error {
	c.Session.Create.Advance(next)
	return s.prompt(ctx, c)
}

// Back returns to the previous step; at the first step it re-prompts.
func (s *CreateFolder) Back(ctx context.Context, c *Conv) error {
	if !c.Session.Create.Back() {
		if err := c.Say(ctx, i18n.NoPreviousStep); err != nil {
			return err
		}
	}
	return s.prompt(ctx, c)
}

func (s *CreateFolder) HandleText(ctx context.Context, c *Conv, text string) error {
	st := c.Session.Create

	switch st.Step {
	case session.CreateName:
		name, err := validate.FolderName(text)
		if err != nil {
			return c.Ask(ctx, c.NavKeyboard(false), i18n.InvalidFolderName)
		}
		taken, err := c.Folders.NameTaken(ctx, c.ChatID, name)
		if err != nil {
			return Stay(err)
		}
		if taken {
			return c.Ask(ctx, c.NavKeyboard(false), i18n.FolderExists)
		}
		st.Name = name
		return s.advance(ctx, c, session.CreateFiles)

	case session.CreateFiles:
		if c.Is(i18n.BtnDone, text) {
			if len(st.Files) == 0 {
				return c.Say(ctx, i18n.NoFiles)
			}
			return s.advance(ctx, c, session.CreateDescription)
		}
		entry, err := validate.Text(text, validate.MaxTextLength)
		if err != nil {
			return c.Say(ctx, i18n.TextTooLong, validate.MaxTextLength)
		}
		if entry == "" {
			return s.prompt(ctx, c)
		}
		st.Files = append(st.Files, models.PendingFile{Type: models.FileTypeText, Text: entry})
		return c.Say(ctx, i18n.FileReceived, len(st.Files))

	case session.CreateDescription:
		if c.Is(i18n.BtnSkip, text) {
			st.Description = ""
			return s.advance(ctx, c, session.CreateTags)
		}
		desc, err := validate.Text(text, validate.MaxDescriptionLength)
		if err != nil {
			return c.Say(ctx, i18n.DescriptionTooLong, validate.MaxDescriptionLength)
		}
		st.Description = desc
		return s.advance(ctx, c, session.CreateTags)

	case session.CreateTags:
		if c.Is(i18n.BtnSkip, text) {
			st.Tags = ""
			return s.advance(ctx, c, session.CreatePassword)
		}
		tags, err := validate.Text(text, validate.MaxTagsLength)
		if err != nil {
			return c.Say(ctx, i18n.TagsTooLong, validate.MaxTagsLength)
		}
		st.Tags = tags
		return s.advance(ctx, c, session.CreatePassword)

	case session.CreatePassword:
		switch {
		case c.Is(i18n.BtnYes, text):
			return s.advance(ctx, c, session.CreateSetPassword)
		case c.Is(i18n.BtnNo, text):
			st.PasswordHash = ""
			return s.advance(ctx, c, session.CreateCover)
		}
		return c.Ask(ctx, c.YesNoKeyboard(true), i18n.InvalidChoice)

	case session.CreateSetPassword:
		hash, err := cryptox.HashPassword(text)
		if errors.Is(err, common.ErrorValidation) {
			return c.Say(ctx, i18n.PasswordTooShort, cryptox.MinPasswordLength)
		}
		if err != nil {
			return Stay(err)
		}
		st.PasswordHash = hash
		return s.advance(ctx, c, session.CreateCover)

	case session.CreateCover:
		if c.Is(i18n.BtnSkip, text) {
			return s.save(ctx, c, nil)
		}
		return c.Say(ctx, i18n.CoverMustBePhoto)
	}
	return nil
}

func (s *CreateFolder) HandleMedia(ctx context.Context, c *Conv, m models.PendingFile) error {
	st := c.Session.Create

	switch st.Step {
	case session.CreateFiles:
		if c.MaxFileSize > 0 && m.Size > c.MaxFileSize {
			return c.Say(ctx, i18n.FileTooLarge, megabytes(c.MaxFileSize))
		}
		st.Files = append(st.Files, m)
		return c.Say(ctx, i18n.FileReceived, len(st.Files))

	case session.CreateCover:
		if m.Type != models.FileTypePhoto {
			return c.Say(ctx, i18n.CoverMustBePhoto)
		}
		if c.MaxFileSize > 0 && m.Size > c.MaxFileSize {
			return c.Say(ctx, i18n.FileTooLarge, megabytes(c.MaxFileSize))
		}
		return s.save(ctx, c, &m)
	}
	return s.prompt(ctx, c)
}

// save persists the folder. From here on a failure exits the scene: the
// folder row may already exist.
func (s *CreateFolder) save(ctx context.Context, c *Conv, cover *models.PendingFile) error {
	st := c.Session.Create
	if err := c.Busy(ctx, i18n.Saving); err != nil {
		c.Log.Warn(ctx, "saving notice not sent", "chat_id", c.ChatID, "error", err)
	}

	f, res, err := c.Folders.Create(ctx, services.NewFolder{
		ChatID:       c.ChatID,
		Name:         st.Name,
		Description:  st.Description,
		Tags:         st.Tags,
		PasswordHash: st.PasswordHash,
		Files:        st.Files,
		Cover:        cover,
	})
	if errors.Is(err, common.ErrorAlreadyExists) {
		// the name was taken while the user was uploading
		st.History = nil
		st.Step = session.CreateName
		return c.Ask(ctx, c.NavKeyboard(false), i18n.FolderExists)
	}
	if err != nil {
		return err
	}

	return c.Exit(ctx, i18n.FolderCreated, f.Name, res.Stored)
}
