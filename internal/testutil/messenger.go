package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/folderkeeper/internal/telegram"
)

// Sent is one message recorded by FakeMessenger.
type Sent struct {
	ChatID    int64
	MessageID int
	Text      string
	Opts      telegram.SendOptions
	Media     *telegram.OutMedia
	Album     []telegram.OutMedia
}

// FakeMessenger records outgoing traffic in memory. RejectMarkup makes every
// MarkdownV2 send fail with telegram.ErrMarkupRejected.
type FakeMessenger struct {
	mu sync.Mutex

	RejectMarkup bool
	SendErr      error
	Files        map[string]telegram.RemoteFile

	nextID    int
	Messages  []Sent
	Deleted   []int
	Edited    []Sent
	Callbacks []string
}

func NewFakeMessenger() *FakeMessenger {
	return &FakeMessenger{Files: map[string]telegram.RemoteFile{}}
}

func (f *FakeMessenger) record(s Sent) int {
	f.nextID++
	s.MessageID = f.nextID
	f.Messages = append(f.Messages, s)
	return s.MessageID
}

func (f *FakeMessenger) SendText(_ context.Context, chatID int64, text string, opts telegram.SendOptions) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SendErr != nil {
		return 0, f.SendErr
	}
	if f.RejectMarkup && opts.ParseMode == telegram.ModeMarkdownV2 {
		return 0, fmt.Errorf("Bad Request: can't parse entities: %w", telegram.ErrMarkupRejected)
	}
	return f.record(Sent{ChatID: chatID, Text: text, Opts: opts}), nil
}

func (f *FakeMessenger) SendMedia(_ context.Context, chatID int64, m telegram.OutMedia, opts telegram.SendOptions) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SendErr != nil {
		return 0, f.SendErr
	}
	if f.RejectMarkup && opts.ParseMode == telegram.ModeMarkdownV2 {
		return 0, telegram.ErrMarkupRejected
	}
	return f.record(Sent{ChatID: chatID, Text: m.Caption, Opts: opts, Media: &m}), nil
}

func (f *FakeMessenger) SendAlbum(_ context.Context, chatID int64, items []telegram.OutMedia) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SendErr != nil {
		return nil, f.SendErr
	}
	ids := make([]int, 0, len(items))
	first := f.record(Sent{ChatID: chatID, Album: append([]telegram.OutMedia(nil), items...)})
	ids = append(ids, first)
	for range items[1:] {
		f.nextID++
		ids = append(ids, f.nextID)
	}
	return ids, nil
}

func (f *FakeMessenger) EditText(_ context.Context, chatID int64, messageID int, text string, opts telegram.SendOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Edited = append(f.Edited, Sent{ChatID: chatID, MessageID: messageID, Text: text, Opts: opts})
	return nil
}

func (f *FakeMessenger) Delete(_ context.Context, _ int64, messageID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Deleted = append(f.Deleted, messageID)
	return nil
}

func (f *FakeMessenger) AnswerCallback(_ context.Context, callbackID, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Callbacks = append(f.Callbacks, callbackID)
	return nil
}

func (f *FakeMessenger) File(_ context.Context, fileID string) (telegram.RemoteFile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rf, ok := f.Files[fileID]
	if !ok {
		return telegram.RemoteFile{}, fmt.Errorf("file %s not found", fileID)
	}
	return rf, nil
}

// Texts returns the text of every recorded message.
func (f *FakeMessenger) Texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.Messages))
	for _, m := range f.Messages {
		out = append(out, m.Text)
	}
	return out
}

// Last returns the most recent message.
func (f *FakeMessenger) Last() Sent {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Messages) == 0 {
		return Sent{}
	}
	return f.Messages[len(f.Messages)-1]
}

// Contains reports whether any message text contains sub.
func (f *FakeMessenger) Contains(sub string) bool {
	for _, t := range f.Texts() {
		if strings.Contains(t, sub) {
			return true
		}
	}
	return false
}

// Reset forgets recorded traffic.
func (f *FakeMessenger) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Messages = nil
	f.Edited = nil
	f.Deleted = nil
	f.Callbacks = nil
}
