package logging

import (
	"errors"
	"strconv"
	"strings"
)

// Logging level. Higher values indicate more verbosity.
type Level int

const (
	Error Level = iota - 2
	Warn
	Info
	Debug
)

// Default level, overridable via environment variable.
var defaultLevel = Info

func parseLevel(s string) (Level, error) {
	switch strings.ToUpper(s) {
	case "E", "ERROR":
		return Error, nil
	case "W", "WARN":
		return Warn, nil
	case "I", "INFO":
		return Info, nil
	case "D", "DEBUG":
		return Debug, nil
	}
	return 0, errors.New("invalid logging level: " + s)
}

func (l Level) String() string {
	switch l {
	case Error:
		return "Error"
	case Warn:
		return "Warn"
	case Info:
		return "Info"
	case Debug:
		return "Debug"
	}
	return strconv.Itoa(int(l))
}

func (l Level) letter() byte {
	return "EWID"[l-Error]
}

func (l Level) color() string {
	switch l {
	case Error:
		return ansiBoldRed
	case Warn:
		return ansiRed
	case Debug:
		return ansiGreen
	}
	return ansiReset
}

const (
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiWhite   = "\033[37m"
	ansiBoldRed = "\033[1;31m"
	ansiReset   = "\033[0m"
)
