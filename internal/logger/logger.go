package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

// Diagnostics go to stderr, so they never mix with the report on stdout.

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

type Logger struct {
	out   *log.Logger
	level LogLevel
	au    aurora.Aurora
}

var defaultLogger *Logger

func init() {
	defaultLogger = NewLogger(os.Stderr, INFO, true)
}

func NewLogger(w io.Writer, level LogLevel, colors bool) *Logger {
	return &Logger{
		out:   log.New(w, "", 0),
		level: level,
		au:    aurora.NewAurora(colors),
	}
}

func Default() *Logger {
	return defaultLogger
}

func SetDefault(l *Logger) {
	defaultLogger = l
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
}

func (l *Logger) SetColors(colors bool) {
	l.au = aurora.NewAurora(colors)
}

func (l *Logger) SetOutput(w io.Writer) {
	l.out.SetOutput(w)
}

func (l *Logger) SetShowDateTime(value bool) {
	if value {
		l.out.SetFlags(log.Ldate | log.Ltime)
	} else {
		l.out.SetFlags(0)
	}
}

// Accepts the level names case insensitively
func ParseLevel(name string) (LogLevel, error) {
	switch strings.ToLower(name) {
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	}
	return INFO, errors.Errorf("unknown log level %q", name)
}

func (l *Logger) log(level LogLevel, format string, v ...interface{}) {
	if level < l.level {
		return
	}

	// Skip log and the exported wrapper
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "unknown"
		line = 0
	}
	file = filepath.Base(file)

	msg := fmt.Sprintf(format, v...)
	l.out.Printf("[%s] %s:%d: %s", level, file, line, l.colorize(level, msg))
}

func (l *Logger) colorize(level LogLevel, msg string) string {
	switch level {
	case DEBUG:
		return l.au.Blue(msg).String()
	case INFO:
		return l.au.Green(msg).String()
	case WARN:
		return l.au.Yellow(msg).String()
	case ERROR:
		return l.au.Magenta(msg).String()
	case FATAL:
		return l.au.Red(msg).String()
	}
	return msg
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.log(DEBUG, format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.log(INFO, format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.log(WARN, format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.log(ERROR, format, v...)
}

// Convenience methods using the default logger

func Debug(format string, v ...interface{}) {
	defaultLogger.log(DEBUG, format, v...)
}

func Info(format string, v ...interface{}) {
	defaultLogger.log(INFO, format, v...)
}

func Warn(format string, v ...interface{}) {
	defaultLogger.log(WARN, format, v...)
}

func Error(format string, v ...interface{}) {
	defaultLogger.log(ERROR, format, v...)
}

func Fatal(format string, v ...interface{}) {
	defaultLogger.log(FATAL, format, v...)
	os.Exit(1)
}
