package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/unkn0wn-root/tricache"
)

func TestLogrusLoggerWritesFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := New(base)

	l.Debug("cache grown", tricache.Fields{"from": 0, "to": 8})
	e := hook.LastEntry()
	if e == nil {
		t.Fatalf("no entry")
	}
	if e.Level != logrus.DebugLevel || e.Message != "cache grown" {
		t.Fatalf("unexpected entry: %v %q", e.Level, e.Message)
	}
	if e.Data["component"] != "tricache" || e.Data["to"] != 8 {
		t.Fatalf("unexpected data: %v", e.Data)
	}

	l.Warn("value too large", tricache.Fields{"value": 1 << 30})
	if got := hook.LastEntry().Level; got != logrus.WarnLevel {
		t.Fatalf("level = %v", got)
	}
	if len(hook.AllEntries()) != 2 {
		t.Fatalf("got %d entries", len(hook.AllEntries()))
	}
}
