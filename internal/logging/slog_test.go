package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func bufLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_RespectsLevel(t *testing.T) {
	log, buf := bufLogger(slog.LevelWarn)
	ctx := context.Background()

	log.Debug(ctx, "update received", "update_id", 1)
	log.Info(ctx, "folder created", "folder_id", 2)
	log.Warn(ctx, "file payload not removed", "file_id", 3)
	log.Error(ctx, "handler failed", "chat_id", 4)

	out := buf.String()
	for _, s := range []string{"level=WARN", `msg="file payload not removed"`, "file_id=3", "level=ERROR", "chat_id=4"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output:\n%s", s, out)
		}
	}
	// ниже порога ничего не пишется
	for _, s := range []string{"update received", "folder created"} {
		if strings.Contains(out, s) {
			t.Fatalf("unexpected %q below warn level:\n%s", s, out)
		}
	}
}

func TestSlogLogger_WithKeepsParentClean(t *testing.T) {
	log, buf := bufLogger(slog.LevelDebug)
	ctx := context.Background()

	log.With("chat_id", 123, "scene", "CREATE_FOLDER").Info(ctx, "step", "step", "name")
	log.Info(ctx, "plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "chat_id=123") || !strings.Contains(lines[0], "scene=CREATE_FOLDER") {
		t.Fatalf("child attrs missing: %s", lines[0])
	}
	if strings.Contains(lines[1], "chat_id") {
		t.Fatalf("parent logger picked up child attrs: %s", lines[1])
	}
}

func TestFanout_RoutesByHandlerLevel(t *testing.T) {
	var debugBuf, errBuf bytes.Buffer
	f := fanout{
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	}
	log := NewSlogLogger(slog.New(f)).With("component", "bot")

	log.Info(context.Background(), "polling started")
	log.Error(context.Background(), "poll failed")

	if !strings.Contains(debugBuf.String(), "polling started") || !strings.Contains(debugBuf.String(), "poll failed") {
		t.Fatalf("debug sink missing records:\n%s", debugBuf.String())
	}
	if strings.Contains(errBuf.String(), "polling started") {
		t.Fatalf("error sink got info record:\n%s", errBuf.String())
	}
	if !strings.Contains(errBuf.String(), "component=bot") {
		t.Fatalf("error sink lost attrs:\n%s", errBuf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_WritesRotatingFile(t *testing.T) {
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	path := filepath.Join(t.TempDir(), "bot.log")
	log, closer := New(Options{Level: "debug", File: path, MaxSizeMB: 1})

	log.With("component", "test").Info(context.Background(), "to-file", "chat_id", 42)
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(b)
	for _, s := range []string{`"msg":"to-file"`, `"chat_id":42`, `"component":"test"`} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in file output, got:\n%s", s, out)
		}
	}
}

func TestDiscard_DoesNotPanic(t *testing.T) {
	Discard().With("k", "v").Error(context.Background(), "dropped")
}
