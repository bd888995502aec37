// Package log is a minimal leveled logger that writes key=value lines to
// stderr. It exists so that the CLI, the HTTP server and the record store
// share one output format without dragging in a logging framework.
package log

import (
	"fmt"
	stdlog "log"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel maps a config string to a Level. Unknown values fall back to
// INFO rather than failing, so a typo in the config never silences logging.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

var (
	mu       sync.Mutex
	out      = stdlog.New(os.Stderr, "", 0)
	minLevel = LevelInfo
)

func SetLevel(l Level) {
	mu.Lock()
	minLevel = l
	mu.Unlock()
}

func Debug(msg string, kv ...any) { emit(LevelDebug, msg, kv) }

func Info(msg string, kv ...any) { emit(LevelInfo, msg, kv) }

// Error logs msg with err prepended to the key-value pairs.
func Error(msg string, err error, kv ...any) {
	emit(LevelError, msg, append([]any{"err", err}, kv...))
}

func emit(level Level, msg string, kv []any) {
	mu.Lock()
	defer mu.Unlock()
	if level < minLevel {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().Format(time.RFC3339))
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("] ")
	b.WriteString(msg)

	// kv is expected in key, value, ... pairs; a trailing odd value is dropped.
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		b.WriteString(" ")
		b.WriteString(key)
		b.WriteString("=")
		b.WriteString(fmt.Sprint(kv[i+1]))
	}

	out.Println(b.String())
}
