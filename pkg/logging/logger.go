package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
)

// Logger provides leveled, timestamped logging for the whole application.
type Logger struct {
	out   *log.Logger
	errw  *log.Logger
	debug bool
}

// New creates a Logger writing to stdout/stderr. Debug lines are emitted
// only when verbose is true.
func New(verbose bool) *Logger {
	return &Logger{
		out:   log.New(os.Stdout, "", 0),
		errw:  log.New(os.Stderr, "", 0),
		debug: verbose,
	}
}

// NewWriter creates a Logger writing everything to w; used in tests.
func NewWriter(w io.Writer) *Logger {
	l := log.New(w, "", 0)
	return &Logger{out: l, errw: l, debug: true}
}

func stamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (l *Logger) Info(format string, args ...any) {
	l.out.Printf(fmt.Sprintf("[%s] %sINFO%s  %s", stamp(), colorGreen, colorReset, format), args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.out.Printf(fmt.Sprintf("[%s] %sWARN%s  %s", stamp(), colorYellow, colorReset, format), args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.errw.Printf(fmt.Sprintf("[%s] %sERROR%s %s", stamp(), colorRed, colorReset, format), args...)
}

func (l *Logger) Debug(format string, args ...any) {
	if !l.debug {
		return
	}
	l.out.Printf(fmt.Sprintf("[%s] %sDEBUG%s %s", stamp(), colorCyan, colorReset, format), args...)
}
