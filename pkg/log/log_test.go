package log

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/Asutorufa/dlist/pkg/utils/assert"
)

func TestLog(t *testing.T) {
	buf := &bytes.Buffer{}
	SetDefault(NewSLogger(buf))
	defer SetDefault(NewSLogger(os.Stderr))
	defer SetLevel(slog.LevelInfo)

	SetLevel(slog.LevelInfo)
	Debug("hidden")
	Info("shown", "op", "addFirst")
	Select(slog.LevelWarn).Print("warn", "n", 1)

	called := false
	Select(slog.LevelDebug).PrintFunc("lazy", func() []any {
		called = true
		return nil
	})

	out := buf.String()
	t.Log(out)
	assert.False(t, strings.Contains(out, "hidden"))
	assert.True(t, strings.Contains(out, "op=addFirst"))
	assert.True(t, strings.Contains(out, "log_test.go"), "source should point at the caller")
	assert.True(t, strings.Contains(out, "level=WARN"))
	assert.False(t, called)
}

func TestParseLevel(t *testing.T) {
	for s, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		l, ok := ParseLevel(s)
		assert.True(t, ok, "%s", s)
		assert.Equal(t, want, l)
	}

	_, ok := ParseLevel("loud")
	assert.False(t, ok)
}
