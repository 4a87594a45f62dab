package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Level is a log severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a level name to a Level, defaulting to info
func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is a leveled, timestamped logger shared by all components.
// Children created with WithPrefix share the parent's output and lock.
type Logger struct {
	mu     *sync.Mutex
	level  Level
	std    *log.Logger
	prefix string
}

// New creates a logger writing to stdout
func New(level string) *Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter creates a logger writing to w
func NewWithWriter(level string, w io.Writer) *Logger {
	return &Logger{
		mu:    &sync.Mutex{},
		level: ParseLevel(level),
		std:   log.New(w, "", 0),
	}
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return NewWithWriter("error", io.Discard)
}

// WithPrefix returns a child logger tagging lines with [component]
func (l *Logger) WithPrefix(component string) *Logger {
	return &Logger{
		mu:     l.mu,
		level:  l.level,
		std:    l.std,
		prefix: "[" + component + "] ",
	}
}

func (l *Logger) Debugf(format string, args ...any) { l.printf(LevelDebug, "DEBUG", format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.printf(LevelInfo, "INFO ", format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.printf(LevelWarn, "WARN ", format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.printf(LevelError, "ERROR", format, args...) }

func (l *Logger) printf(lv Level, tag, format string, args ...any) {
	if l == nil || lv < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := time.Now().Format("2006-01-02 15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	l.std.Printf("%s [%s] %s%s", ts, tag, l.prefix, msg)
}
