package verify

import (
	"os"
	"path/filepath"
	"testing"

	"atomicon/ico"
	"atomicon/icon"
)

func writeArtifact(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icon.ico")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunFreshArtifact(t *testing.T) {
	path := writeArtifact(t, ico.Encode(icon.Render()))
	if got := Run(path); got != 0 {
		t.Errorf("Run = %d, want 0", got)
	}
}

func TestRunMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.ico")
	if got := Run(path); got != 1 {
		t.Errorf("Run = %d, want 1", got)
	}
}

func TestRunRejectsDamage(t *testing.T) {
	cases := []struct {
		name   string
		mutate func([]byte) []byte
	}{
		{"truncated", func(b []byte) []byte { return b[:100] }},
		{"trailing garbage", func(b []byte) []byte { return append(b, 0) }},
		{"broken signature", func(b []byte) []byte { b[2] = 9; return b }},
		{"wrong bit depth", func(b []byte) []byte { b[12] = 24; return b }},
		{"wrong height field", func(b []byte) []byte { b[30] = 63; return b }},
		{"flipped pixel byte", func(b []byte) []byte { b[len(b)-1] ^= 0xff; return b }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := tc.mutate(ico.Encode(icon.Render()))
			path := writeArtifact(t, data)
			if got := Run(path); got != 1 {
				t.Errorf("Run = %d, want 1", got)
			}
		})
	}
}
