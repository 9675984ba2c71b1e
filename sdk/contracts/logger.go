package contracts

import "time"

// LogLevel represents the severity level for logging.
// The zero value is InfoLevel.
type LogLevel int

const (
	// DebugLevel carries per-pulse diagnostics, including expected failures off-target.
	DebugLevel LogLevel = iota - 1
	// InfoLevel reports lifecycle events such as which pulser was selected.
	InfoLevel
	// WarnLevel reports degraded operation, e.g. no haptic capability present.
	WarnLevel
	// ErrorLevel reports unexpected failures.
	ErrorLevel
	// FatalLevel logs and terminates the process.
	FatalLevel
)

// LogDestination specifies where the log messages should be directed.
type LogDestination string

const (
	// ConsoleLog directs log messages to standard error.
	ConsoleLog LogDestination = "console"
	// FileLog directs log messages to a file.
	FileLog LogDestination = "file"
)

// Field builds a typed key/value pair attached to a log entry.
type Field interface {
	Bool(key string, val bool) Field
	Int(key string, val int) Field
	Float64(key string, val float64) Field
	String(key string, val string) Field
	Duration(key string, val time.Duration) Field
	Error(key string, val error) Field
	Any(key string, val any) Field
}

// Logger provides levelled, structured logging.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	Field() Field

	SetLevel(level LogLevel)
	SetDestination(dest LogDestination, filePath ...string) error
}
