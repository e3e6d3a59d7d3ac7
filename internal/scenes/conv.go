package scenes

import (
	"context"

	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/render"
	"github.com/dmitrijs2005/folderkeeper/internal/telegram"
)

// Commands shown on the main keyboard.
const (
	CmdStart           = "/start"
	CmdHelp            = "/help"
	CmdCreateFolder    = "/CrFolders"
	CmdOpenFolder      = "/OpenFolder"
	CmdListFolders     = "/ListFolders"
	CmdSearchFolders   = "/SearchFolders"
	CmdAddFiles        = "/AddFiles"
	CmdEditFolder      = "/EditFolder"
	CmdDeleteFile      = "/DeleteFile"
	CmdDeleteFolder    = "/DeleteFolder"
	CmdDownloadYouTube = "/DownloadYouTube"
	CmdLang            = "/Lang"
)

func MainMenu() telegram.ReplyKeyboard {
	return telegram.ReplyKeyboard{
		{CmdCreateFolder, CmdOpenFolder},
		{CmdListFolders, CmdSearchFolders},
		{CmdAddFiles, CmdEditFolder},
		{CmdDeleteFile, CmdDeleteFolder},
		{CmdDownloadYouTube, CmdLang},
	}
}

// Is reports whether text is the label of key in any language.
func (c *Conv) Is(key i18n.Key, text string) bool {
	return c.Catalog.Matches(key, text)
}

// Say sends a localized message without touching the keyboard.
func (c *Conv) Say(ctx context.Context, key i18n.Key, args ...any) error {
	return c.Out.Prompt(ctx, c.ChatID, c.T.T(key, args...), telegram.SendOptions{})
}

// Ask sends a localized prompt with a reply keyboard.
func (c *Conv) Ask(ctx context.Context, kb telegram.ReplyKeyboard, key i18n.Key, args ...any) error {
	return c.Out.Prompt(ctx, c.ChatID, c.T.T(key, args...), telegram.SendOptions{Reply: kb})
}

// Send delivers a rendered payload.
func (c *Conv) Send(ctx context.Context, o render.Outbound) error {
	return c.Out.Send(ctx, c.ChatID, o)
}

// Exit leaves the active scene and restores the main keyboard.
func (c *Conv) Exit(ctx context.Context, key i18n.Key, args ...any) error {
	c.Session.Leave()
	return c.Out.Prompt(ctx, c.ChatID, c.T.T(key, args...), telegram.SendOptions{Reply: MainMenu()})
}

// Busy announces a long-running step and hides the reply keyboard until the
// scene answers again.
func (c *Conv) Busy(ctx context.Context, key i18n.Key, args ...any) error {
	return c.Out.Prompt(ctx, c.ChatID, c.T.T(key, args...), telegram.SendOptions{RemoveKeyboard: true})
}

// closeChoice turns the inline-button message that triggered the update into
// plain text. Updates that did not come from a button are left alone.
func (c *Conv) closeChoice(ctx context.Context, key i18n.Key, args ...any) error {
	if c.Origin == 0 {
		return nil
	}
	return c.Out.Close(ctx, c.ChatID, c.Origin, c.T.T(key, args...))
}

// expired answers a button whose conversation has moved on.
func (c *Conv) expired(ctx context.Context) error {
	if c.Origin != 0 {
		err := c.closeChoice(ctx, i18n.ChoiceExpired)
		if err == nil {
			return nil
		}
		c.Log.Warn(ctx, "choice not closed", "chat_id", c.ChatID, "message_id", c.Origin, "error", err)
	}
	return c.Say(ctx, i18n.ChoiceExpired)
}

// Keyboards. Labels are localized per conversation.

func (c *Conv) nav(back bool) []string {
	row := []string{c.T.T(i18n.BtnCancel), c.T.T(i18n.BtnHelp)}
	if back {
		row = append([]string{c.T.T(i18n.BtnBack)}, row...)
	}
	return row
}

// NavKeyboard offers only the meta-commands.
func (c *Conv) NavKeyboard(back bool) telegram.ReplyKeyboard {
	return telegram.ReplyKeyboard{c.nav(back)}
}

func (c *Conv) keyboard(back bool, first ...string) telegram.ReplyKeyboard {
	return telegram.ReplyKeyboard{first, c.nav(back)}
}

func (c *Conv) SkipKeyboard(back bool) telegram.ReplyKeyboard {
	return c.keyboard(back, c.T.T(i18n.BtnSkip))
}

func (c *Conv) DoneKeyboard(back bool) telegram.ReplyKeyboard {
	return c.keyboard(back, c.T.T(i18n.BtnDone))
}

func (c *Conv) YesNoKeyboard(back bool) telegram.ReplyKeyboard {
	return c.keyboard(back, c.T.T(i18n.BtnYes), c.T.T(i18n.BtnNo))
}

// folderNames offers up to 10 of the chat's folders as buttons when the user
// is asked for a name.
func (c *Conv) folderNames(ctx context.Context) telegram.ReplyKeyboard {
	names, err := c.Folders.ListNames(ctx, c.ChatID)
	if err != nil {
		c.Log.Warn(ctx, "list folder names", "chat_id", c.ChatID, "error", err)
	}
	kb := telegram.ReplyKeyboard{}
	for i := 0; i < len(names) && i < render.PageSize; i += 2 {
		row := []string{names[i]}
		if i+1 < len(names) && i+1 < render.PageSize {
			row = append(row, names[i+1])
		}
		kb = append(kb, row)
	}
	return append(kb, c.nav(false))
}

func megabytes(n int64) int64 {
	return n >> 20
}
