package render

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/folderkeeper/internal/actions"
	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/logging"
	"github.com/dmitrijs2005/folderkeeper/internal/markup"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/dmitrijs2005/folderkeeper/internal/reaper"
	"github.com/dmitrijs2005/folderkeeper/internal/telegram"
	"github.com/dmitrijs2005/folderkeeper/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tr = i18n.Default().For(i18n.En)

func folder() *models.Folder {
	return &models.Folder{
		ID:          7,
		ChatID:      1,
		Name:        "Trip_2024",
		Description: "Summer (beach).",
		Tags:        "sea,sun",
		CreatedAt:   time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
	}
}

func files(kinds ...models.FileType) []*models.FolderFile {
	out := make([]*models.FolderFile, 0, len(kinds))
	for i, k := range kinds {
		ff := &models.FolderFile{ID: int64(i + 1), FolderID: 7, Type: k, Path: fmt.Sprintf("/u/1/7_%d", i+1)}
		if k == models.FileTypeText {
			ff.Path = ""
			ff.Text = "note *" + fmt.Sprint(i)
		}
		out = append(out, ff)
	}
	return out
}

func TestHeader_EscapesValues(t *testing.T) {
	h := Header(folder(), tr)
	assert.True(t, strings.HasPrefix(h, `*Trip\_2024*`))
	assert.Contains(t, h, `Summer \(beach\)\.`)
	assert.Contains(t, h, "2024\\-06\\-01 10:30")
	assert.Equal(t, "Trip_2024\nDescription: Summer (beach).\nTags: sea,sun\nCreated: 2024-06-01 10:30", markup.Strip(h))
}

func TestHeader_FitsCaptionBudget(t *testing.T) {
	f := folder()
	f.Description = strings.Repeat("д", 5000)
	f.PasswordHash = "x"

	plain := markup.Strip(Header(f, tr))
	assert.LessOrEqual(t, utf8.RuneCountInString(plain), CaptionBudget)
	assert.Contains(t, plain, "...")
	assert.Contains(t, plain, "Password protected")
}

func TestFolderView_Batches(t *testing.T) {
	kinds := make([]models.FileType, 0, 16)
	for i := 0; i < 11; i++ {
		kinds = append(kinds, models.FileTypePhoto)
	}
	kinds = append(kinds, models.FileTypeDocument, models.FileTypeText, models.FileTypeVoice)
	fs := files(kinds...)
	fs = append(fs, &models.FolderFile{ID: 99, Type: models.FileTypeVideo, Path: models.PendingPath})

	out := FolderView(folder(), fs, tr)
	require.Len(t, out, 7)

	assert.Equal(t, KindText, out[0].Kind)
	assert.True(t, out[0].Markdown)
	require.Len(t, out[0].Inline, 2)
	assert.Equal(t, "DETAILS_7", out[0].Inline[0][0].Data)
	assert.Equal(t, "Trip_2024", out[0].Inline[0][2].SwitchQuery)
	assert.Equal(t, "DELETE_FILE_7", out[0].Inline[1][1].Data)

	assert.Equal(t, KindAlbum, out[1].Kind)
	assert.Len(t, out[1].Album, AlbumSize)

	// одиночный элемент не отправляется альбомом
	assert.Equal(t, KindMedia, out[2].Kind)
	assert.Equal(t, models.FileTypePhoto, out[2].Media.Type)

	assert.Equal(t, models.FileTypeDocument, out[3].Media.Type)
	assert.Equal(t, models.FileTypeVoice, out[4].Media.Type)

	assert.Equal(t, KindText, out[5].Kind)
	assert.Equal(t, `note \*12`, out[5].Text)

	assert.Equal(t, tr.T(i18n.FileUnavailable), out[6].Text)
}

func TestFolderView_CoverAndEmpty(t *testing.T) {
	f := folder()
	f.CoverPath = "/u/1/7_cover.jpg"

	out := FolderView(f, nil, tr)
	require.Len(t, out, 2)
	assert.Equal(t, KindMedia, out[0].Kind)
	assert.Equal(t, f.CoverPath, out[0].Media.Path)
	assert.NotEmpty(t, out[0].Inline)
	assert.Equal(t, tr.T(i18n.FolderEmpty), out[1].Text)
}

func TestFolderView_TwoVideosMakeAlbum(t *testing.T) {
	out := FolderView(folder(), files(models.FileTypeVideo, models.FileTypePhoto), tr)
	require.Len(t, out, 2)
	assert.Equal(t, KindAlbum, out[1].Kind)
}

func TestPaginate(t *testing.T) {
	names := make([]string, 23)
	for i := range names {
		names[i] = fmt.Sprintf("f%d", i)
	}

	items, page, pages := Paginate(names, 2)
	assert.Equal(t, []string{"f20", "f21", "f22"}, items)
	assert.Equal(t, 2, page)
	assert.Equal(t, 3, pages)

	_, page, _ = Paginate(names, 99)
	assert.Equal(t, 2, page)
	_, page, _ = Paginate(names, -1)
	assert.Equal(t, 0, page)

	items, page, pages = Paginate(nil, 0)
	assert.Empty(t, items)
	assert.Equal(t, 0, page)
	assert.Equal(t, 1, pages)
}

func TestFolderList_Navigation(t *testing.T) {
	names := make([]string, 15)
	for i := range names {
		names[i] = fmt.Sprintf("Folder-%d", i)
	}

	first := FolderList(names, 0, tr)
	require.Len(t, first.Inline, 1)
	require.Len(t, first.Inline[0], 1)
	assert.Equal(t, "PAGE_1", first.Inline[0][0].Data)
	assert.Contains(t, first.Text, `1\. Folder\-0`)

	second := SearchResults("fold", names, 1, tr)
	require.Len(t, second.Inline[0], 1)
	assert.Equal(t, actions.Encode(actions.Action{Kind: actions.SearchPage, ID: 0}), second.Inline[0][0].Data)
	assert.Contains(t, second.Text, `11\. Folder\-10`)

	single := FolderList(names[:3], 0, tr)
	assert.Nil(t, single.Inline)
}

func TestFileChoices(t *testing.T) {
	out := FileChoices(folder(), files(models.FileTypePhoto, models.FileTypeText), tr)
	require.Len(t, out.Inline, 2)
	assert.Equal(t, "DELETE_FILE_7_1", out.Inline[0][0].Data)
	assert.Equal(t, "2. text: note *1", out.Inline[1][0].Text)
}

type recordingScheduler struct {
	mu      sync.Mutex
	pending []reaper.Pending
}

func (r *recordingScheduler) Schedule(_ context.Context, p reaper.Pending) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, p)
}

func TestSender_FallsBackToPlainText(t *testing.T) {
	ctx := context.Background()
	m := testutil.NewFakeMessenger()
	m.RejectMarkup = true
	sched := &recordingScheduler{}
	s := NewSender(m, sched, logging.Discard(), 10*time.Minute, 30*time.Second)

	require.NoError(t, s.Send(ctx, 1, Outbound{Kind: KindText, Text: Header(folder(), tr), Markdown: true}))

	last := m.Last()
	assert.Equal(t, telegram.ModePlain, last.Opts.ParseMode)
	assert.True(t, strings.HasPrefix(last.Text, "Trip_2024\n"))
	require.Len(t, sched.pending, 1)
	assert.Equal(t, 10*time.Minute, sched.pending[0].DeleteAfter)
}

func TestSender_AlbumTTL(t *testing.T) {
	ctx := context.Background()
	m := testutil.NewFakeMessenger()
	sched := &recordingScheduler{}
	s := NewSender(m, sched, logging.Discard(), 10*time.Minute, 30*time.Second)

	out := FolderView(folder(), files(models.FileTypePhoto, models.FileTypePhoto, models.FileTypePhoto), tr)
	require.NoError(t, s.SendAll(ctx, 1, out))

	require.Len(t, sched.pending, 4)
	assert.Equal(t, 10*time.Minute, sched.pending[0].DeleteAfter)
	for _, p := range sched.pending[1:] {
		assert.Equal(t, 30*time.Second, p.DeleteAfter)
	}
	assert.Equal(t, telegram.ModeMarkdownV2, m.Messages[0].Opts.ParseMode)
}

func TestSender_SendAllContinuesAfterFailure(t *testing.T) {
	ctx := context.Background()
	m := testutil.NewFakeMessenger()
	m.SendErr = fmt.Errorf("network down")
	s := NewSender(m, nil, logging.Discard(), time.Minute, time.Minute)

	err := s.SendAll(ctx, 1, []Outbound{Text("a"), Text("b")})
	require.Error(t, err)
	assert.Equal(t, 2, strings.Count(err.Error(), "network down"))
}

func TestSender_CloseDropsButtonsWithoutRescheduling(t *testing.T) {
	ctx := context.Background()
	m := testutil.NewFakeMessenger()
	sched := &recordingScheduler{}
	s := NewSender(m, sched, logging.Discard(), 10*time.Minute, 30*time.Second)

	require.NoError(t, s.Close(ctx, 3, 55, "Choose a file to delete:"))

	require.Len(t, m.Edited, 1)
	assert.Equal(t, 55, m.Edited[0].MessageID)
	assert.Equal(t, telegram.ModePlain, m.Edited[0].Opts.ParseMode)
	assert.Empty(t, m.Edited[0].Opts.Inline)
	assert.Empty(t, sched.pending)
}
