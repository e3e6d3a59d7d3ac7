package scenes

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/folderkeeper/internal/actions"
	"github.com/dmitrijs2005/folderkeeper/internal/filex"
	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/dmitrijs2005/folderkeeper/internal/render"
	"github.com/dmitrijs2005/folderkeeper/internal/session"
	"github.com/dmitrijs2005/folderkeeper/internal/telegram"
	"github.com/dmitrijs2005/folderkeeper/internal/youtube"
)

var errNoUploader = errors.New("no upload fallback configured")

// DownloadYouTube fetches a video with yt-dlp, files it into a new folder and
// then offers to send it back.
type DownloadYouTube struct{}

func (*DownloadYouTube) Name() session.SceneName { return session.SceneDownloadYouTube }

func (*DownloadYouTube) Enter(ctx context.Context, c *Conv) error {
	c.Session.Enter(session.SceneDownloadYouTube)
	c.Session.YouTube = &session.YouTubeState{Step: session.YouTubeURL}
	return c.Ask(ctx, c.NavKeyboard(false), i18n.EnterYouTubeURL)
}

func (s *DownloadYouTube) qualities(c *Conv) telegram.ReplyKeyboard {
	row := make([]string, 0, len(youtube.Qualities))
	for _, q := range youtube.Qualities {
		row = append(row, youtube.QualityLabel(q))
	}
	return telegram.ReplyKeyboard{row, c.nav(false)}
}

func (s *DownloadYouTube) HandleText(ctx context.Context, c *Conv, text string) error {
	st := c.Session.YouTube

	switch st.Step {
	case session.YouTubeURL:
		if !youtube.ValidURL(text) {
			return c.Say(ctx, i18n.InvalidYouTubeURL)
		}
		st.URL = text
		st.Step = session.YouTubeQuality
		return c.Ask(ctx, s.qualities(c), i18n.ChooseQuality)

	case session.YouTubeQuality:
		q, ok := youtube.ParseQuality(text)
		if !ok {
			return c.Ask(ctx, s.qualities(c), i18n.InvalidQuality)
		}
		st.Quality = q
		return s.download(ctx, c)

	case session.YouTubeAction:
		switch {
		case c.Is(i18n.BtnSendHere, text):
			return ChooseVideoAction(ctx, c, true)
		case c.Is(i18n.BtnKeep, text):
			return ChooseVideoAction(ctx, c, false)
		}
		return c.Say(ctx, i18n.InvalidChoice)
	}
	return nil
}

// download runs yt-dlp, then stores the result. No store call happens while
// the subprocess runs.
func (s *DownloadYouTube) download(ctx context.Context, c *Conv) error {
	st := c.Session.YouTube
	if err := c.Ask(ctx, c.NavKeyboard(false), i18n.Downloading); err != nil {
		c.Log.Warn(ctx, "download notice not sent", "chat_id", c.ChatID, "error", err)
	}

	dir, err := filex.EnsureChatDir(c.UploadDir, c.ChatID)
	if err != nil {
		return err
	}
	path, err := c.YouTube.Download(ctx, st.URL, st.Quality, dir)
	if err != nil {
		c.Log.Warn(ctx, "youtube download failed", "chat_id", c.ChatID, "url", st.URL, "quality", st.Quality, "error", err)
		return c.Exit(ctx, i18n.DownloadFailed)
	}

	f, ff, err := c.Folders.SaveVideo(ctx, c.ChatID, path)
	if err != nil {
		if rmErr := filex.RemoveIfExists(path); rmErr != nil {
			c.Log.Warn(ctx, "downloaded video not removed", "path", path, "error", rmErr)
		}
		return fmt.Errorf("save video: %w", err)
	}

	st.Step = session.YouTubeAction
	st.FolderID, st.FolderName, st.FilePath = f.ID, f.Name, ff.Path
	return c.Send(ctx, render.Outbound{
		Kind: render.KindText,
		Text: c.T.T(i18n.VideoSaved, f.Name),
		Inline: telegram.InlineKeyboard{{
			{Text: c.T.T(i18n.BtnSendHere), Data: actions.Encode(actions.Action{Kind: actions.YouTubeSend})},
			{Text: c.T.T(i18n.BtnKeep), Data: actions.Encode(actions.Action{Kind: actions.YouTubeKeep})},
		}},
	})
}

func (s *DownloadYouTube) HandleMedia(ctx context.Context, c *Conv, _ models.PendingFile) error {
	return c.Say(ctx, i18n.UseCommands)
}

// ChooseVideoAction answers the send-or-keep choice for the last downloaded
// video. Videos above the send limit go through the upload fallback and are
// answered with a link.
func ChooseVideoAction(ctx context.Context, c *Conv, send bool) error {
	st := c.Session.YouTube
	if c.Session.Scene != session.SceneDownloadYouTube || st == nil || st.Step != session.YouTubeAction {
		return c.expired(ctx)
	}
	if err := c.closeChoice(ctx, i18n.VideoSaved, st.FolderName); err != nil {
		c.Log.Warn(ctx, "video choice not closed", "chat_id", c.ChatID, "error", err)
	}
	if !send {
		return c.Exit(ctx, i18n.VideoKept, st.FolderName)
	}

	size, err := filex.Size(st.FilePath)
	if err != nil {
		return err
	}
	limit := c.VideoSendLimit
	if limit <= 0 {
		limit = youtube.SendLimit
	}

	if size <= limit {
		err := c.Send(ctx, render.Outbound{
			Kind:  render.KindMedia,
			Media: telegram.OutMedia{Type: models.FileTypeVideo, Path: st.FilePath},
		})
		if err != nil {
			return err
		}
		return c.Exit(ctx, i18n.VideoKept, st.FolderName)
	}

	if c.Uploader == nil {
		return errNoUploader
	}
	if err := c.Say(ctx, i18n.UploadingLink, megabytes(limit)); err != nil {
		c.Log.Warn(ctx, "upload notice not sent", "chat_id", c.ChatID, "error", err)
	}
	link, err := c.Uploader.Upload(ctx, st.FilePath)
	if err != nil {
		return fmt.Errorf("upload fallback: %w", err)
	}
	return c.Exit(ctx, i18n.VideoLink, link)
}
