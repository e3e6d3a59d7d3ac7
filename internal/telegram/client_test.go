package telegram

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeAPI answers Bot API calls by method name.
func fakeAPI(t *testing.T, replies map[string]string) (*httptest.Server, *[]string) {
	t.Helper()
	var calls []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseMultipartForm(1 << 20)
		method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		calls = append(calls, method)
		body, ok := replies[method]
		if !ok {
			body = `{"ok":true,"result":true}`
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts, &calls
}

const getMeOK = `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Keeper","username":"keeper_bot"}}`

func TestNewClient_EmptyToken(t *testing.T) {
	_, err := NewClient("", http.DefaultClient)
	require.Error(t, err)
}

func TestNewClient_RejectedToken(t *testing.T) {
	ts, _ := fakeAPI(t, map[string]string{
		"getMe": `{"ok":false,"error_code":401,"description":"Unauthorized"}`,
	})
	_, err := newClient("bad", ts.URL+"/bot%s/%s", ts.Client())
	require.Error(t, err)
}

func TestClient_SendText(t *testing.T) {
	ts, calls := fakeAPI(t, map[string]string{
		"getMe":       getMeOK,
		"sendMessage": `{"ok":true,"result":{"message_id":77,"date":0,"chat":{"id":42,"type":"private"}}}`,
	})
	c, err := newClient("token", ts.URL+"/bot%s/%s", ts.Client())
	require.NoError(t, err)
	require.Equal(t, "keeper_bot", c.Username())

	id, err := c.SendText(context.Background(), 42, "*hi*", SendOptions{
		ParseMode: ModeMarkdownV2,
		Inline:    InlineKeyboard{{{Text: "Open", Data: "DETAILS_1"}, {Text: "Share", SwitchQuery: "Trip"}}},
	})
	require.NoError(t, err)
	require.Equal(t, 77, id)
	require.Contains(t, *calls, "sendMessage")
}

func TestClient_SendText_MarkupRejected(t *testing.T) {
	ts, _ := fakeAPI(t, map[string]string{
		"getMe":       getMeOK,
		"sendMessage": `{"ok":false,"error_code":400,"description":"Bad Request: can't parse entities: Character '.' is reserved"}`,
	})
	c, err := newClient("token", ts.URL+"/bot%s/%s", ts.Client())
	require.NoError(t, err)

	_, err = c.SendText(context.Background(), 42, "a.b", SendOptions{ParseMode: ModeMarkdownV2})
	require.True(t, errors.Is(err, ErrMarkupRejected), "got %v", err)
}

func TestClient_DeleteAndFile(t *testing.T) {
	ts, calls := fakeAPI(t, map[string]string{
		"getMe":   getMeOK,
		"getFile": `{"ok":true,"result":{"file_id":"F1","file_unique_id":"U1","file_size":1234,"file_path":"photos/file_1.jpg"}}`,
	})
	c, err := newClient("token", ts.URL+"/bot%s/%s", ts.Client())
	require.NoError(t, err)

	require.NoError(t, c.Delete(context.Background(), 42, 5))
	require.Contains(t, *calls, "deleteMessage")

	f, err := c.File(context.Background(), "F1")
	require.NoError(t, err)
	require.EqualValues(t, 1234, f.Size)
	require.True(t, strings.HasSuffix(f.URL, "/file/bottoken/photos/file_1.jpg"), f.URL)
}

func TestClient_Webhook(t *testing.T) {
	ts, calls := fakeAPI(t, map[string]string{"getMe": getMeOK})
	c, err := newClient("token", ts.URL+"/bot%s/%s", ts.Client())
	require.NoError(t, err)

	require.NoError(t, c.SetWebhook(context.Background(), "https://bot.example/telegram/s"))
	require.NoError(t, c.DeleteWebhook(context.Background()))
	require.Contains(t, *calls, "setWebhook")
	require.Contains(t, *calls, "deleteWebhook")

	require.Error(t, c.SetWebhook(context.Background(), "://bad"))
}
