package argus

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// defaultLogPrefix tags log lines emitted by the default logger when the host
// does not pick a prefix of its own.
const defaultLogPrefix = "argus"

// Logger is the logging capability used by the render camera and the scene
// graph. Hosts can plug their own implementation; NewDefaultLogger gives a
// stdlib-backed one.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type DefaultLogger struct {
	mu     sync.Mutex
	debug  bool
	prefix string
	out    *log.Logger
	err    *log.Logger
}

// NewDefaultLogger writes info/debug lines to stdout and warn/error lines to
// stderr. An empty prefix falls back to defaultLogPrefix.
func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	return newDefaultLoggerTo(prefix, debug, os.Stdout, os.Stderr)
}

func newDefaultLoggerTo(prefix string, debug bool, out, err io.Writer) *DefaultLogger {
	if prefix == "" {
		prefix = defaultLogPrefix
	}
	flags := log.LstdFlags | log.Lmicroseconds
	return &DefaultLogger{
		debug:  debug,
		prefix: prefix,
		out:    log.New(out, "", flags),
		err:    log.New(err, "", flags),
	}
}

func (l *DefaultLogger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

func (l *DefaultLogger) prefixf(level string, format string, args ...any) string {
	return fmt.Sprintf("[%s] %s: %s", l.prefix, level, fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.out.Print(l.prefixf("DEBUG", format, args...))
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.out.Print(l.prefixf("INFO", format, args...))
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.err.Print(l.prefixf("WARN", format, args...))
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.err.Print(l.prefixf("ERROR", format, args...))
}

// nopLogger discards everything. Used wherever no logger has been injected so
// call sites never need a nil check.
type nopLogger struct{}

func (nopLogger) DebugEnabled() bool    { return false }
func (nopLogger) SetDebug(bool)         {}
func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
