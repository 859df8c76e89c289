// Package log is the diagnostic channel of the generator. It stays
// completely silent until Init runs, which keeps stdout reserved for
// the two result lines of a normal run.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var (
	diagLog  zerolog.Logger
	out      io.Writer = os.Stderr
	logMu    sync.Mutex
	logReady bool
)

// SetOutput redirects diagnostics away from stderr. Call before Init.
func SetOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	out = w
}

// Init switches the package from no-op to active. Color is used only
// when the sink is a terminal.
func Init() {
	logMu.Lock()
	defer logMu.Unlock()

	noColor := true
	if f, ok := out.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", os.Getpid()).Logger()

	logReady = true
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

// Stage records how long one phase of a run took.
func Stage(name string, d time.Duration) {
	if logReady {
		diagLog.Info().Str("stage", name).Dur("took", d).Msg("stage done")
	}
}

// Artifact records a file the run produced.
func Artifact(path string, size int) {
	if logReady {
		diagLog.Info().Str("path", path).Int("bytes", size).Msg("artifact written")
	}
}
