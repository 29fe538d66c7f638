package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level is a logging-level. Higher is more severe.
type Level int

// Supported log-levels.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelTrace: "trace",
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

// String returns lower-case name of Level.
func (l Level) String() string {
	return levelNames[l]
}

// ParseLevel converts a level-name to Level.
// Unknown names resolve to LevelInfo with ok=false.
func ParseLevel(name string) (level Level, ok bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for lvl, lvlName := range levelNames {
		if lvlName == name {
			return lvl, true
		}
	}
	return LevelInfo, false
}

// StdLogger is Logger backed by "log" package from std-lib.
// Logs are written to stderr unless created with #NewStdLoggerTo,
// so stdout stays free for program output.
// A "prefix" can be specified to help identify logs from specific module.
// Use #NewStdLogger to create new instance.
type StdLogger struct {
	prefix string
	level  Level
	out    *log.Logger
}

// NewStdLogger creates new instance of StdLogger writing to stderr.
// Logging-level can be configured using `LOG_LEVEL`
// env-var. Default level is `info`.
// Logging-level for an individual prefix can be
// specified by setting env-var `<PREFIX>_LOG_LEVEL`.
func NewStdLogger(prefix string) *StdLogger {
	return NewStdLoggerTo(prefix, os.Stderr)
}

// NewStdLoggerTo is #NewStdLogger with a custom destination.
func NewStdLoggerTo(prefix string, w io.Writer) *StdLogger {
	levelStr := os.Getenv(envPrefix(prefix) + "_LOG_LEVEL")
	if levelStr == "" {
		levelStr = os.Getenv("LOG_LEVEL")
	}
	level, _ := ParseLevel(levelStr)

	return &StdLogger{
		prefix: prefix,
		level:  level,
		out:    log.New(w, "", log.LstdFlags),
	}
}

// envPrefix turns a prefix such as "account/Calculator"
// into a usable env-var name such as "ACCOUNT_CALCULATOR".
func envPrefix(prefix string) string {
	return strings.ToUpper(strings.NewReplacer("/", "_", "-", "_", " ", "_").Replace(prefix))
}

// Level returns the effective logging-level.
func (l *StdLogger) Level() Level {
	return l.level
}

func (l *StdLogger) log(level Level, s string, v ...interface{}) {
	if level < l.level {
		return
	}
	msg := s
	if len(v) > 0 {
		msg = fmt.Sprintf(s, v...)
	}

	l.out.Printf(
		"[%s]: [%s]: %s",
		strings.ToUpper(level.String()),
		l.prefix,
		msg,
	)
}

// Trace logs trace-level logs.
func (l *StdLogger) Trace(s string) {
	l.log(LevelTrace, s)
}

// Tracef logs trace-level logs after formatting according to a format specifier.
func (l *StdLogger) Tracef(s string, v ...interface{}) {
	l.log(LevelTrace, s, v...)
}

// Debug logs debug-level logs.
func (l *StdLogger) Debug(s string) {
	l.log(LevelDebug, s)
}

// Debugf logs debug-level logs after formatting according to a format specifier.
func (l *StdLogger) Debugf(s string, v ...interface{}) {
	l.log(LevelDebug, s, v...)
}

// Info logs info-level logs.
func (l *StdLogger) Info(s string) {
	l.log(LevelInfo, s)
}

// Infof logs info-level logs after formatting according to a format specifier.
func (l *StdLogger) Infof(s string, v ...interface{}) {
	l.log(LevelInfo, s, v...)
}

// Warn logs warn-level logs.
func (l *StdLogger) Warn(s string) {
	l.log(LevelWarn, s)
}

// Warnf logs warn-level logs after formatting according to a format specifier.
func (l *StdLogger) Warnf(s string, v ...interface{}) {
	l.log(LevelWarn, s, v...)
}

// Error logs error-level logs.
func (l *StdLogger) Error(s string) {
	l.log(LevelError, s)
}

// Errorf logs error-level logs after formatting according to a format specifier.
func (l *StdLogger) Errorf(s string, v ...interface{}) {
	l.log(LevelError, s, v...)
}
