package duskgfx

import (
	"fmt"
	"log"
	"os"
)

// Logger is the ambient logging interface Renderer and its collaborators
// write through.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// StdLogger writes INFO/DEBUG to stdout and WARN/ERROR to stderr,
// each line tagged with a timestamp and an optional prefix. Renderer and
// its collaborators run on a single goroutine, so StdLogger carries no
// internal locking — callers sharing one across goroutines must
// synchronize it themselves.
type StdLogger struct {
	debug  bool
	prefix string
	out    *log.Logger
	err    *log.Logger
}

// NewStdLogger builds a logger tagged with prefix (e.g. "duskgfx"),
// with debug-level output gated by debug.
func NewStdLogger(prefix string, debug bool) *StdLogger {
	flags := log.LstdFlags | log.Lmicroseconds
	return &StdLogger{
		debug:  debug,
		prefix: prefix,
		out:    log.New(os.Stdout, "", flags),
		err:    log.New(os.Stderr, "", flags),
	}
}

func (l *StdLogger) DebugEnabled() bool { return l.debug }

func (l *StdLogger) SetDebug(enabled bool) { l.debug = enabled }

func (l *StdLogger) prefixf(level string, format string, args ...any) string {
	if l.prefix != "" {
		return fmt.Sprintf("[%s] %s: %s", l.prefix, level, fmt.Sprintf(format, args...))
	}
	return fmt.Sprintf("%s: %s", level, fmt.Sprintf(format, args...))
}

func (l *StdLogger) Debugf(format string, args ...any) {
	if !l.debug {
		return
	}
	l.out.Print(l.prefixf("DEBUG", format, args...))
}

func (l *StdLogger) Infof(format string, args ...any) {
	l.out.Print(l.prefixf("INFO", format, args...))
}

func (l *StdLogger) Warnf(format string, args ...any) {
	l.err.Print(l.prefixf("WARN", format, args...))
}

func (l *StdLogger) Errorf(format string, args ...any) {
	l.err.Print(l.prefixf("ERROR", format, args...))
}

type nopLogger struct{}

// NewNopLogger returns a Logger that discards everything, for callers that
// don't want engine diagnostics (tests, headless batch tools).
func NewNopLogger() Logger { return &nopLogger{} }

func (n *nopLogger) DebugEnabled() bool { return false }
func (n *nopLogger) SetDebug(enabled bool) {}
func (n *nopLogger) Debugf(format string, args ...any) {}
func (n *nopLogger) Infof(format string, args ...any) {}
func (n *nopLogger) Warnf(format string, args ...any) {}
func (n *nopLogger) Errorf(format string, args ...any) {}
