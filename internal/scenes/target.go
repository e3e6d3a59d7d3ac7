package scenes

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/folderkeeper/internal/common"
	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
)

// locate resolves a typed folder name. A nil folder with a nil error means
// the user was told the folder does not exist and the step is kept.
func locate(ctx context.Context, c *Conv, text string) (*models.Folder, error) {
	f, err := c.Folders.FindByName(ctx, c.ChatID, strings.TrimSpace(text))
	if errors.Is(err, common.ErrorNotFound) {
		return nil, c.Ask(ctx, c.folderNames(ctx), i18n.FolderNotFound)
	}
	if err != nil {
		return nil, Stay(err)
	}
	return f, nil
}

// unlock reloads folder id and checks password against it. A nil folder with
// a nil error means the user was already answered.
func unlock(ctx context.Context, c *Conv, id int64, password string) (*models.Folder, error) {
	f, err := c.Folders.Get(ctx, c.ChatID, id)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, c.Exit(ctx, i18n.FolderNotFound)
	}
	if err != nil {
		return nil, Stay(err)
	}
	if !c.Folders.VerifyPassword(f, password) {
		return nil, c.Ask(ctx, c.NavKeyboard(false), i18n.WrongPassword)
	}
	return f, nil
}

// askPassword prompts for the password of a protected folder.
func askPassword(ctx context.Context, c *Conv) error {
	return c.Ask(ctx, c.NavKeyboard(false), i18n.EnterPassword)
}
