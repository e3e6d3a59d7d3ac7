package scenes

import (
	"context"

	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/dmitrijs2005/folderkeeper/internal/render"
	"github.com/dmitrijs2005/folderkeeper/internal/session"
	"github.com/dmitrijs2005/folderkeeper/internal/validate"
)

// SearchFolders answers every text with matching folder names until the
// user leaves. The last query backs the SEARCH_PAGE_<n> buttons.
type SearchFolders struct{}

func (*SearchFolders) Name() session.SceneName { return session.SceneSearchFolders }

func (*SearchFolders) Enter(ctx context.Context, c *Conv) error {
	c.Session.Enter(session.SceneSearchFolders)
	c.Session.Search = &session.SearchState{}
	return c.Ask(ctx, c.NavKeyboard(false), i18n.EnterSearch)
}

func (*SearchFolders) HandleText(ctx context.Context, c *Conv, text string) error {
	q, err := validate.Text(text, validate.MaxNameLength)
	if err != nil || q == "" {
		return c.Say(ctx, i18n.EnterSearch)
	}
	c.Session.Search.Query = q
	return SearchPage(ctx, c, 0)
}

func (*SearchFolders) HandleMedia(ctx context.Context, c *Conv, _ models.PendingFile) error {
	return c.Say(ctx, i18n.EnterSearch)
}

// SearchPage re-runs the stored query and sends page of its results.
func SearchPage(ctx context.Context, c *Conv, page int) error {
	st := c.Session.Search
	if st == nil || st.Query == "" {
		return c.Say(ctx, i18n.SearchExpired)
	}
	names, err := c.Folders.Search(ctx, c.ChatID, st.Query)
	if err != nil {
		return Stay(err)
	}
	if len(names) == 0 {
		return c.Say(ctx, i18n.NoResults, st.Query)
	}
	return c.Send(ctx, render.SearchResults(st.Query, names, page, c.T))
}
