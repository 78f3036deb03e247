// Package logging provides the leveled, tag-filtered logger used across the
// module. Levels are configured at startup through the LOGLEVEL environment
// variable, as comma-separated "tag=level" directives; a directive without a
// tag sets the default level. For example:
//
//	LOGLEVEL=warn,tensormedia=debug
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	envVar          = "LOGLEVEL"
	timestampFormat = "2006-01-02 15:04:05.000"
)

var tagLevels = map[string]Level{}

func init() {
	for _, d := range strings.Split(os.Getenv(envVar), ",") {
		if d == "" {
			continue
		}
		parts := strings.SplitN(d, "=", 2)
		level, err := parseLevel(parts[len(parts)-1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid %s directive '%s': %s\n", envVar, d, err)
			continue
		}
		if len(parts) == 1 {
			defaultLevel = level
		} else {
			tagLevels[parts[0]] = level
		}
	}

	DefaultLogger.Level = defaultLevel
}

func determineLevel(tag string, fallback Level) Level {
	if level, ok := tagLevels[tag]; ok {
		return level
	}
	return fallback
}

type Logger struct {
	// The level at which this logger logs. Messages intended for a more
	// verbose level are ignored.
	Level

	// Tag used to filter and classify log messages.
	Tag string

	out io.Writer

	// Prevents messages from different goroutines from interleaving.
	// Shared by all derived loggers.
	mu *sync.Mutex
}

// Write to stderr by default.
var DefaultLogger = &Logger{defaultLevel, "", os.Stderr, new(sync.Mutex)}

// SetDestination overrides the output for this logger.
func (log *Logger) SetDestination(out io.Writer) {
	log.out = out
}

// WithTag derives a new logger with the given tag. The level is looked up
// from the tag directives.
func (log *Logger) WithTag(tag string) *Logger {
	return &Logger{determineLevel(tag, log.Level), tag, log.out, log.mu}
}

// Log a message at the given level. Include the file and line number from
// 'calldepth' steps up the call stack.
func (log *Logger) Log(level Level, calldepth int, format string, a ...interface{}) {
	if level > log.Level {
		return
	}

	_, file, line, ok := runtime.Caller(calldepth + 1)
	if !ok {
		file = "?"
	}

	var sb strings.Builder
	sb.WriteString(ansiWhite)
	sb.WriteString(time.Now().Format(timestampFormat))
	fmt.Fprintf(&sb, " %s%c/%s", level.color(), level.letter(), log.Tag)
	fmt.Fprintf(&sb, "[%s:%d] %s", filepath.Base(file), line, ansiReset)
	fmt.Fprintf(&sb, format, a...)
	if n := len(format); n == 0 || format[n-1] != '\n' {
		sb.WriteByte('\n')
	}

	log.mu.Lock()
	io.WriteString(log.out, sb.String())
	log.mu.Unlock()
}

func (log *Logger) Error(format string, a ...interface{}) {
	log.Log(Error, 1, format, a...)
}

func (log *Logger) Warn(format string, a ...interface{}) {
	log.Log(Warn, 1, format, a...)
}

func (log *Logger) Info(format string, a ...interface{}) {
	log.Log(Info, 1, format, a...)
}

func (log *Logger) Debug(format string, a ...interface{}) {
	log.Log(Debug, 1, format, a...)
}
