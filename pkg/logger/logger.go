package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Minimal leveled logger shared by the whole backend.
// Level is set once at startup from LOG_LEVEL (debug|info|warn|error|fatal).

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var (
	mu    sync.RWMutex
	out   = log.New(os.Stdout, "", 0)
	level = LevelInfo
)

// Init sets the global log level. Unknown values fall back to info.
func Init(l string) {
	mu.Lock()
	level = parseLevel(l)
	mu.Unlock()
}

func parseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

func logf(l Level, tag, format string, v ...interface{}) {
	mu.RLock()
	enabled := l >= level
	mu.RUnlock()
	if !enabled {
		return
	}
	out.Printf(fmt.Sprintf("%s [%s] %s", time.Now().Format(time.RFC3339), tag, format), v...)
}

func Debugf(format string, v ...interface{}) { logf(LevelDebug, "DEBUG", format, v...) }
func Infof(format string, v ...interface{})  { logf(LevelInfo, "INFO", format, v...) }
func Warnf(format string, v ...interface{})  { logf(LevelWarn, "WARN", format, v...) }
func Errorf(format string, v ...interface{}) { logf(LevelError, "ERROR", format, v...) }

func Fatalf(format string, v ...interface{}) {
	logf(LevelFatal, "FATAL", format, v...)
	os.Exit(1)
}

func Info(msg string)  { Infof("%s", msg) }
func Warn(msg string)  { Warnf("%s", msg) }
func Error(msg string) { Errorf("%s", msg) }
