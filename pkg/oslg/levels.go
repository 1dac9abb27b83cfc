package oslg

import "strings"

// Level is the severity of a log entry. Levels are ordered; zero is not a
// valid level, it is the status sentinel for a session without entries.
type Level int

const (
	Debug Level = iota + 1
	Info
	Warn
	Error
	Fatal
)

// String returns the preset tag for a level. Out-of-range levels yield "".
func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARNING"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return ""
	}
}

// valid reports whether l is within the accepted [Debug, Fatal] range.
func (l Level) valid() bool {
	return l >= Debug && l <= Fatal
}

// ParseLevel maps a configuration string to a Level. Matching is
// case-insensitive; unrecognized input falls back to Info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	case "fatal":
		return Fatal
	default:
		return Info
	}
}

var statusMessages = [...]string{
	"",
	"Debugging ...",
	"Success! No errors, no warnings",
	"Partial success, raised non-fatal warnings",
	"Partial success, encountered non-fatal errors",
	"Failure, triggered fatal errors",
}

// StatusMessage returns the preset session summary matching a status value,
// e.g. for a host application's final report. Out-of-range input yields "".
func StatusMessage(status int) string {
	if status < 0 || status >= len(statusMessages) {
		return ""
	}

	return statusMessages[status]
}

// Entry is a single stored diagnostic. Entries are immutable; they are
// created only by a Logger and removed only by Reset.
type Entry struct {
	Level   Level
	Message string
}
