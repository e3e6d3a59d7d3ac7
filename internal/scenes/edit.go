package scenes

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/folderkeeper/internal/common"
	"github.com/dmitrijs2005/folderkeeper/internal/cryptox"
	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/dmitrijs2005/folderkeeper/internal/session"
	"github.com/dmitrijs2005/folderkeeper/internal/telegram"
	"github.com/dmitrijs2005/folderkeeper/internal/validate"
)

// EditFolder changes one field of a folder per run.
type EditFolder struct{}

func (*EditFolder) Name() session.SceneName { return session.SceneEditFolder }

// fieldSteps maps the field buttons to their edit steps.
var fieldSteps = []struct {
	key  i18n.Key
	step session.EditStep
}{
	{i18n.FieldName, session.EditNewName},
	{i18n.FieldDescription, session.EditNewDescription},
	{i18n.FieldTags, session.EditNewTags},
	{i18n.FieldPassword, session.EditNewPassword},
	{i18n.FieldCover, session.EditNewCover},
}

// stepForField returns the edit step chosen by text.
func stepForField(c *Conv, text string) (session.EditStep, bool) {
	for _, f := range fieldSteps {
		if c.Is(f.key, text) {
			return f.step, true
		}
	}
	return "", false
}

func (*EditFolder) Enter(ctx context.Context, c *Conv) error {
	c.Session.Enter(session.SceneEditFolder)
	c.Session.Edit = &session.EditFolderState{Step: session.EditName}
	return c.Ask(ctx, c.folderNames(ctx), i18n.EnterFolderToEdit)
}

func (s *EditFolder) EnterFor(ctx context.Context, c *Conv, f *models.Folder) error {
	c.Session.Enter(session.SceneEditFolder)
	c.Session.Edit = &session.EditFolderState{Step: session.EditName}
	return s.target(ctx, c, f)
}

func (s *EditFolder) target(ctx context.Context, c *Conv, f *models.Folder) error {
	st := c.Session.Edit
	st.FolderID = f.ID
	if f.Protected() {
		st.Step = session.EditPassword
		return askPassword(ctx, c)
	}
	return s.chooseField(ctx, c)
}

func (s *EditFolder) chooseField(ctx context.Context, c *Conv) error {
	c.Session.Edit.Step = session.EditField
	kb := telegram.ReplyKeyboard{
		{c.T.T(i18n.FieldName), c.T.T(i18n.FieldDescription)},
		{c.T.T(i18n.FieldTags), c.T.T(i18n.FieldPassword)},
		{c.T.T(i18n.FieldCover)},
		c.nav(false),
	}
	return c.Ask(ctx, kb, i18n.ChooseField)
}

func (s *EditFolder) HandleText(ctx context.Context, c *Conv, text string) error {
	st := c.Session.Edit

	switch st.Step {
	case session.EditName:
		f, err := locate(ctx, c, text)
		if f == nil || err != nil {
			return err
		}
		return s.target(ctx, c, f)

	case session.EditPassword:
		f, err := unlock(ctx, c, st.FolderID, text)
		if f == nil || err != nil {
			return err
		}
		return s.chooseField(ctx, c)

	case session.EditField:
		step, ok := stepForField(c, text)
		if !ok {
			return s.chooseField(ctx, c)
		}
		st.Step = step
		return s.promptField(ctx, c)

	case session.EditNewName:
		name, err := validate.FolderName(text)
		if err != nil {
			return c.Say(ctx, i18n.InvalidFolderName)
		}
		taken, err := c.Folders.NameTaken(ctx, c.ChatID, name)
		if err != nil {
			return Stay(err)
		}
		if taken {
			return c.Say(ctx, i18n.FolderExists)
		}
		if _, err := c.Folders.Rename(ctx, c.ChatID, st.FolderID, name); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return c.Say(ctx, i18n.FolderExists)
			}
			return err
		}
		return c.Exit(ctx, i18n.FolderUpdated)

	case session.EditNewDescription:
		value := text
		if c.Is(i18n.BtnSkip, text) {
			value = ""
		}
		err := c.Folders.UpdateDescription(ctx, c.ChatID, st.FolderID, value)
		if errors.Is(err, common.ErrorValidation) {
			return c.Say(ctx, i18n.DescriptionTooLong, validate.MaxDescriptionLength)
		}
		if err != nil {
			return err
		}
		return c.Exit(ctx, i18n.FolderUpdated)

	case session.EditNewTags:
		value := text
		if c.Is(i18n.BtnSkip, text) {
			value = ""
		}
		err := c.Folders.UpdateTags(ctx, c.ChatID, st.FolderID, value)
		if errors.Is(err, common.ErrorValidation) {
			return c.Say(ctx, i18n.TagsTooLong, validate.MaxTagsLength)
		}
		if err != nil {
			return err
		}
		return c.Exit(ctx, i18n.FolderUpdated)

	case session.EditNewPassword:
		if c.Is(i18n.BtnSkip, text) {
			if err := c.Folders.RemovePassword(ctx, c.ChatID, st.FolderID); err != nil {
				return err
			}
			return c.Exit(ctx, i18n.PasswordRemoved)
		}
		err := c.Folders.SetPassword(ctx, c.ChatID, st.FolderID, text)
		if errors.Is(err, common.ErrorValidation) {
			return c.Say(ctx, i18n.PasswordTooShort, cryptox.MinPasswordLength)
		}
		if err != nil {
			return err
		}
		return c.Exit(ctx, i18n.FolderUpdated)

	case session.EditNewCover:
		return c.Say(ctx, i18n.CoverMustBePhoto)
	}
	return nil
}

func (s *EditFolder) promptField(ctx context.Context, c *Conv) error {
	switch c.Session.Edit.Step {
	case session.EditNewName:
		return c.Ask(ctx, c.NavKeyboard(false), i18n.EnterNewName)
	case session.EditNewDescription:
		return c.Ask(ctx, c.SkipKeyboard(false), i18n.EnterNewDescription)
	case session.EditNewTags:
		return c.Ask(ctx, c.SkipKeyboard(false), i18n.EnterNewTags)
	case session.EditNewPassword:
		return c.Ask(ctx, c.SkipKeyboard(false), i18n.EnterPasswordOrRemove, cryptox.MinPasswordLength)
	case session.EditNewCover:
		return c.Ask(ctx, c.NavKeyboard(false), i18n.SendNewCover)
	}
	return nil
}

func (s *EditFolder) HandleMedia(ctx context.Context, c *Conv, m models.PendingFile) error {
	st := c.Session.Edit
	if st.Step != session.EditNewCover {
		return c.Say(ctx, i18n.UseCommands)
	}
	if m.Type != models.FileTypePhoto {
		return c.Say(ctx, i18n.CoverMustBePhoto)
	}
	if c.MaxFileSize > 0 && m.Size > c.MaxFileSize {
		return c.Say(ctx, i18n.FileTooLarge, megabytes(c.MaxFileSize))
	}
	if err := c.Folders.UpdateCover(ctx, c.ChatID, st.FolderID, m); err != nil {
		if errors.Is(err, common.ErrorTooLarge) {
			return c.Say(ctx, i18n.FileTooLarge, megabytes(c.MaxFileSize))
		}
		return err
	}
	return c.Exit(ctx, i18n.FolderUpdated)
}
