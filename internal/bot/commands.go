package bot

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/scenes"
	"github.com/dmitrijs2005/folderkeeper/internal/session"
)

// sceneCommands maps command names, without the slash and lower-cased, to
// the scene they start.
var sceneCommands = map[string]session.SceneName{
	cmd(scenes.CmdCreateFolder):    session.SceneCreateFolder,
	cmd(scenes.CmdOpenFolder):      session.SceneOpenFolder,
	cmd(scenes.CmdListFolders):     session.SceneListFolders,
	cmd(scenes.CmdSearchFolders):   session.SceneSearchFolders,
	cmd(scenes.CmdAddFiles):        session.SceneAddFiles,
	cmd(scenes.CmdEditFolder):      session.SceneEditFolder,
	cmd(scenes.CmdDeleteFile):      session.SceneDeleteFile,
	cmd(scenes.CmdDeleteFolder):    session.SceneDeleteFolder,
	cmd(scenes.CmdDownloadYouTube): session.SceneDownloadYouTube,
}

func cmd(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "/"))
}

// command leaves whatever scene is active and starts name fresh.
func (b *Bot) command(ctx context.Context, c *scenes.Conv, name, args string) error {
	c.Session.Leave()
	name = strings.ToLower(name)

	switch name {
	case cmd(scenes.CmdStart):
		return c.Ask(ctx, scenes.MainMenu(), i18n.Start)
	case cmd(scenes.CmdHelp):
		return c.Ask(ctx, scenes.MainMenu(), i18n.Help)
	case cmd(scenes.CmdLang):
		return b.switchLang(ctx, c, args)
	}

	if sn, ok := sceneCommands[name]; ok {
		if s, ok := b.scenes[sn]; ok {
			return s.Enter(ctx, c)
		}
	}
	return c.Ask(ctx, scenes.MainMenu(), i18n.UnknownCommand)
}

// switchLang sets the language given as argument, or toggles fa and en.
func (b *Bot) switchLang(ctx context.Context, c *scenes.Conv, args string) error {
	lang, ok := i18n.Parse(args)
	if !ok {
		lang = i18n.Fa
		if c.Session.Lang == i18n.Fa {
			lang = i18n.En
		}
	}
	c.Session.Lang = lang
	c.T = c.Catalog.For(lang)
	return c.Exit(ctx, i18n.LangSwitched)
}
