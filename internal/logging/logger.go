// Package logging is the leveled logger of the textnet command. Library
// packages never log; only cmd/ and internal/ adapters do.
package logging

import (
	"io"
	"log"
	"os"
	"strings"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

type Logger struct {
	level       Level
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	fatalLogger *log.Logger
}

// New logs info and debug lines to stderr as well, keeping stdout for results.
func New(level string) *Logger {
	return NewTo(os.Stderr, level)
}

// NewTo writes every level to w.
func NewTo(w io.Writer, level string) *Logger {
	flags := log.Ldate | log.Ltime
	return &Logger{
		level:       ParseLevel(level),
		infoLogger:  log.New(w, "INFO: ", flags),
		errorLogger: log.New(w, "ERROR: ", flags),
		debugLogger: log.New(w, "DEBUG: ", flags),
		fatalLogger: log.New(w, "FATAL: ", flags),
	}
}

func NewDiscard() *Logger {
	return NewTo(io.Discard, string(LevelInfo))
}

// ParseLevel maps a name to a Level; unknown names mean info.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *Logger) Level() Level { return l.level }

func (l *Logger) Info(format string, v ...any) {
	if l.level == LevelError {
		return
	}
	l.infoLogger.Printf(format, v...)
}

func (l *Logger) Error(format string, v ...any) {
	l.errorLogger.Printf(format, v...)
}

func (l *Logger) Debug(format string, v ...any) {
	if l.level != LevelDebug {
		return
	}
	l.debugLogger.Printf(format, v...)
}

func (l *Logger) Fatal(v ...any) {
	l.fatalLogger.Fatal(v...)
}
