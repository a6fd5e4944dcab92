package logger

import (
	"io"
	"log"
	"os"
)

// Logger is a thin leveled wrapper over the standard logger.
type Logger struct {
	*log.Logger
	verbose bool
}

type Option func(*Logger)

func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.Logger = log.New(w, l.Logger.Prefix(), l.Logger.Flags())
	}
}

func WithPrefix(prefix string) Option {
	return func(l *Logger) {
		l.Logger = log.New(l.Logger.Writer(), prefix, l.Logger.Flags())
	}
}

func WithFlags(flags int) Option {
	return func(l *Logger) {
		l.Logger = log.New(l.Logger.Writer(), l.Logger.Prefix(), flags)
	}
}

func WithVerbose(v bool) Option {
	return func(l *Logger) { l.verbose = v }
}

func New(options ...Option) *Logger {
	l := &Logger{Logger: log.New(os.Stderr, "", log.LstdFlags)}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// Discard drops everything; handy in tests.
func Discard() *Logger { return New(WithOutput(io.Discard)) }

func (l *Logger) Verbose() bool { return l.verbose }

func (l *Logger) Info(format string, args ...interface{}) {
	l.Logger.Printf("INFO: "+format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if l.verbose {
		l.Logger.Printf("DEBUG: "+format, args...)
	}
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.Logger.Printf("ERROR: "+format, args...)
}

func (l *Logger) Fatal(format string, args ...interface{}) {
	l.Logger.Fatalf("FATAL: "+format, args...)
}
