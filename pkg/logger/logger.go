package logger

import (
	"io"
	"log"
	"os"
)

type Logger struct {
	info    *log.Logger
	warn    *log.Logger
	error   *log.Logger
	debug   *log.Logger
	verbose bool
}

func New() *Logger {
	return NewWithWriter(os.Stdout, os.Stderr)
}

// NewWithWriter sends info and debug output to out, warnings and errors to errOut.
func NewWithWriter(out, errOut io.Writer) *Logger {
	flags := log.Ldate | log.Ltime | log.Lmicroseconds
	return &Logger{
		info:    log.New(out, "INFO: ", flags),
		warn:    log.New(errOut, "WARN: ", flags),
		error:   log.New(errOut, "ERROR: ", flags),
		debug:   log.New(out, "DEBUG: ", flags),
		verbose: os.Getenv("LOG_LEVEL") == "debug",
	}
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.info.Printf(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.warn.Printf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.error.Printf(format, v...)
}

func (l *Logger) Debug(format string, v ...interface{}) {
	if l.verbose {
		l.debug.Printf(format, v...)
	}
}

// SetVerbose toggles Debug output.
func (l *Logger) SetVerbose(verbose bool) {
	l.verbose = verbose
}
