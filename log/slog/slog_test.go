package slog

import (
	"bytes"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/tricache"
)

func TestSlogLoggerGroupsAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug})
	l := New(stdslog.New(h))

	l.Info("snapshot restored", tricache.Fields{"added": 4, "key": "terms:triangular:1024"})
	out := buf.String()
	for _, want := range []string{
		`msg="snapshot restored"`,
		"tricache.added=4",
		"tricache.key=terms:triangular:1024",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
}

func TestSlogLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(stdslog.New(stdslog.NewTextHandler(&buf, nil))) // Info and above

	l.Debug("cache grown", tricache.Fields{"from": 0, "to": 1})
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered, got %q", buf.String())
	}
}
