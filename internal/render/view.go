// Package render turns folders and listings into outbound payloads. The
// builders are pure; Sender performs the delivery.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/folderkeeper/internal/actions"
	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/markup"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/dmitrijs2005/folderkeeper/internal/telegram"
)

const (
	AlbumSize     = 10
	CaptionBudget = 1000
	TextPreview   = 1000
	timeLayout    = "2006-01-02 15:04"
)

type Kind int

const (
	KindText Kind = iota
	KindMedia
	KindAlbum
)

// Outbound is one message to deliver. Text (or the media caption) is
// MarkdownV2 when Markdown is set and plain otherwise.
type Outbound struct {
	Kind     Kind
	Text     string
	Markdown bool
	Media    telegram.OutMedia
	Album    []telegram.OutMedia
	Inline   telegram.InlineKeyboard
}

func Text(s string) Outbound {
	return Outbound{Kind: KindText, Text: s}
}

// FolderButtons is the action set shown under a folder.
func FolderButtons(f *models.Folder, tr i18n.Translator) telegram.InlineKeyboard {
	return telegram.InlineKeyboard{
		{
			{Text: tr.T(i18n.BtnDetails), Data: actions.Folder(actions.Details, f.ID)},
			{Text: tr.T(i18n.BtnAdd), Data: actions.Folder(actions.Add, f.ID)},
			{Text: tr.T(i18n.BtnShare), SwitchQuery: f.Name},
		},
		{
			{Text: tr.T(i18n.BtnEdit), Data: actions.Folder(actions.Edit, f.ID)},
			{Text: tr.T(i18n.BtnDeleteFile), Data: actions.Folder(actions.DeleteFile, f.ID)},
			{Text: tr.T(i18n.BtnDelete), Data: actions.Folder(actions.Delete, f.ID)},
		},
	}
}

// Header renders the folder summary, fitted to CaptionBudget characters of
// visible text. The description gives way first.
func Header(f *models.Folder, tr i18n.Translator) string {
	name := markup.Truncate(f.Name, 255)
	tags := markup.Truncate(f.Tags, 255)

	fixed := []string{name}
	if tags != "" {
		fixed = append(fixed, tr.T(i18n.LabelTags)+": "+tags)
	}
	fixed = append(fixed, tr.T(i18n.LabelCreated)+": "+f.CreatedAt.Format(timeLayout))
	if f.Protected() {
		fixed = append(fixed, "🔒 "+tr.T(i18n.LabelProtected))
	}

	descLabel := tr.T(i18n.LabelDescription) + ": "
	desc := f.Description
	if desc != "" {
		used := 0
		for _, s := range fixed {
			used += utf8.RuneCountInString(s) + 1
		}
		room := CaptionBudget - used - utf8.RuneCountInString(descLabel)
		desc = markup.Truncate(desc, room)
	}

	var b strings.Builder
	b.WriteString(markup.Bold(markup.Escape(name)))
	if desc != "" {
		b.WriteString("\n" + markup.Escape(descLabel+desc))
	}
	for _, s := range fixed[1:] {
		b.WriteString("\n" + markup.Escape(s))
	}
	return b.String()
}

// FolderView lays out a folder: header with actions (as the cover caption
// when there is a cover), photo/video batches, remaining files one by one and
// finally the text entries.
func FolderView(f *models.Folder, files []*models.FolderFile, tr i18n.Translator) []Outbound {
	header := Outbound{Kind: KindText, Text: Header(f, tr), Markdown: true, Inline: FolderButtons(f, tr)}
	if f.CoverPath != "" {
		header.Kind = KindMedia
		header.Media = telegram.OutMedia{Type: models.FileTypePhoto, Path: f.CoverPath}
	}
	out := []Outbound{header}

	var (
		visual, other, texts []*models.FolderFile
		unresolved           int
	)
	for _, ff := range files {
		switch {
		case ff.Type == models.FileTypeText:
			texts = append(texts, ff)
		case !ff.Resolved():
			unresolved++
		case ff.Type == models.FileTypePhoto || ff.Type == models.FileTypeVideo:
			visual = append(visual, ff)
		default:
			other = append(other, ff)
		}
	}

	if len(files) == 0 {
		return append(out, Text(tr.T(i18n.FolderEmpty)))
	}

	for start := 0; start < len(visual); start += AlbumSize {
		end := min(start+AlbumSize, len(visual))
		batch := visual[start:end]
		if len(batch) == 1 {
			out = append(out, mediaOf(batch[0]))
			continue
		}
		album := make([]telegram.OutMedia, 0, len(batch))
		for _, ff := range batch {
			album = append(album, telegram.OutMedia{Type: ff.Type, Path: ff.Path})
		}
		out = append(out, Outbound{Kind: KindAlbum, Album: album})
	}

	for _, ff := range other {
		out = append(out, mediaOf(ff))
	}

	for _, ff := range texts {
		out = append(out, Outbound{
			Kind:     KindText,
			Text:     markup.Escape(markup.Truncate(ff.Text, TextPreview)),
			Markdown: true,
		})
	}

	if unresolved > 0 {
		out = append(out, Text(tr.T(i18n.FileUnavailable)))
	}
	return out
}

func mediaOf(ff *models.FolderFile) Outbound {
	return Outbound{Kind: KindMedia, Media: telegram.OutMedia{Type: ff.Type, Path: ff.Path}}
}


// Share offers the folder name as an inline query the user can forward.
func Share(f *models.Folder, tr i18n.Translator) Outbound {
	return Outbound{
		Kind:     KindText,
		Text:     markup.Bold(markup.Escape(f.Name)),
		Markdown: true,
		Inline:   telegram.InlineKeyboard{{{Text: tr.T(i18n.BtnShare), SwitchQuery: f.Name}}},
	}
}

// FileChoices lists the entries of a folder as delete buttons.
func FileChoices(f *models.Folder, files []*models.FolderFile, tr i18n.Translator) Outbound {
	kb := make(telegram.InlineKeyboard, 0, len(files))
	for i, ff := range files {
		label := fmt.Sprintf("%d. %s", i+1, ff.Type)
		if ff.Type == models.FileTypeText {
			label += ": " + markup.Truncate(strings.ReplaceAll(ff.Text, "\n", " "), 30)
		}
		kb = append(kb, []telegram.InlineButton{{Text: label, Data: actions.FileItem(f.ID, ff.ID)}})
	}
	return Outbound{Kind: KindText, Text: tr.T(i18n.ChooseFileToDelete), Inline: kb}
}
