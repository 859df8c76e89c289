package log

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	t.Run("silent before init", func(t *testing.T) {
		Info("early message")
		Errorf("early failure: %d", 7)
		if buf.Len() != 0 {
			t.Fatalf("expected no output before Init, got %q", buf.String())
		}
	})

	Init()

	t.Run("info", func(t *testing.T) {
		buf.Reset()
		Info("icon generated")
		got := buf.String()
		if !strings.Contains(got, "icon generated") {
			t.Errorf("output %q missing message", got)
		}
		if !strings.Contains(got, "pid=") {
			t.Errorf("output %q missing pid field", got)
		}
	})

	t.Run("warnf formatting", func(t *testing.T) {
		buf.Reset()
		Warnf("retry %d of %d", 2, 3)
		if got := buf.String(); !strings.Contains(got, "retry 2 of 3") {
			t.Errorf("output %q missing formatted message", got)
		}
	})

	t.Run("stage fields", func(t *testing.T) {
		buf.Reset()
		Stage("encode", 1500*time.Microsecond)
		got := buf.String()
		if !strings.Contains(got, "stage=encode") {
			t.Errorf("output %q missing stage field", got)
		}
		if !strings.Contains(got, "took=") {
			t.Errorf("output %q missing duration field", got)
		}
	})

	t.Run("artifact fields", func(t *testing.T) {
		buf.Reset()
		Artifact("/tmp/icon.ico", 4158)
		if got := buf.String(); !strings.Contains(got, "bytes=4158") {
			t.Errorf("output %q missing size field", got)
		}
	})
}
