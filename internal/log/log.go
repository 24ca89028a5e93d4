// Package log writes structured diagnostics with zerolog.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/rs/zerolog"
)

var (
	diagLog  zerolog.Logger
	logMu    sync.Mutex
	logReady bool
)

// Init directs diagnostics to w. Colour is enabled only when w is a terminal.
func Init(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !term.IsTerminal(f.Fd())
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    noColor,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Logger()
	logReady = true
}

// Close stops logging; later calls are dropped until Init is called again.
func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	logReady = false
}

func ready() bool {
	logMu.Lock()
	defer logMu.Unlock()
	return logReady
}

// Info logs msg at info level.
func Info(msg string) {
	if ready() {
		diagLog.Info().Msg(msg)
	}
}

// Warnf logs a formatted message at warn level.
func Warnf(format string, args ...any) {
	if ready() {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

// Errorf logs a formatted message at error level.
func Errorf(format string, args ...any) {
	if ready() {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

// CueWritten records a successfully generated cue file.
func CueWritten(name, path string, samples, bytes int, elapsed time.Duration) {
	if !ready() {
		return
	}
	diagLog.Info().
		Str("cue", name).
		Str("path", path).
		Int("samples", samples).
		Float64("size_kb", float64(bytes)/1024).
		Float64("elapsed_ms", float64(elapsed.Microseconds())/1000).
		Msg("cue_written")
}

// CueFailed records a cue that could not be generated.
func CueFailed(name string, err error) {
	if !ready() {
		return
	}
	diagLog.Error().
		Str("cue", name).
		Err(err).
		Msg("cue_failed")
}
