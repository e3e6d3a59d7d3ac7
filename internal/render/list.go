package render

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/folderkeeper/internal/actions"
	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/markup"
	"github.com/dmitrijs2005/folderkeeper/internal/telegram"
)

const PageSize = 10

// Paginate clamps page into range and returns the names on it together with
// the clamped page and the page count (at least 1).
func Paginate(names []string, page int) ([]string, int, int) {
	pages := (len(names) + PageSize - 1) / PageSize
	if pages == 0 {
		pages = 1
	}
	page = max(0, min(page, pages-1))
	start := page * PageSize
	end := min(start+PageSize, len(names))
	if start > end {
		start = end
	}
	return names[start:end], page, pages
}

// FolderList is one page of the chat's folder names.
func FolderList(names []string, page int, tr i18n.Translator) Outbound {
	items, page, pages := Paginate(names, page)
	title := tr.T(i18n.FolderListTitle, page+1, pages)
	return listing(title, items, page, pages, actions.Page, tr)
}

// SearchResults is one page of folder names matching query.
func SearchResults(query string, names []string, page int, tr i18n.Translator) Outbound {
	items, page, pages := Paginate(names, page)
	title := tr.T(i18n.SearchResultTitle, query, page+1, pages)
	return listing(title, items, page, pages, actions.SearchPage, tr)
}

func listing(title string, items []string, page, pages int, kind actions.Kind, tr i18n.Translator) Outbound {
	var b strings.Builder
	b.WriteString(markup.Bold(markup.Escape(title)))
	for i, name := range items {
		b.WriteString("\n" + markup.Escape(fmt.Sprintf("%d. %s", page*PageSize+i+1, name)))
	}

	var nav []telegram.InlineButton
	if page > 0 {
		nav = append(nav, telegram.InlineButton{Text: tr.T(i18n.BtnPrev), Data: actions.Encode(actions.Action{Kind: kind, ID: int64(page - 1)})})
	}
	if page < pages-1 {
		nav = append(nav, telegram.InlineButton{Text: tr.T(i18n.BtnNext), Data: actions.Encode(actions.Action{Kind: kind, ID: int64(page + 1)})})
	}

	out := Outbound{Kind: KindText, Text: b.String(), Markdown: true}
	if len(nav) > 0 {
		out.Inline = telegram.InlineKeyboard{nav}
	}
	return out
}
