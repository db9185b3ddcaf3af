package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps logrus so the rest of the code depends on a single type
type Logger struct {
	*logrus.Logger
}

// NewLogger creates a logger with the given level ("debug", "info", ...) and
// format ("json" or "text"). An optional file path adds a rotated file sink.
func NewLogger(level, format string, file ...string) *Logger {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			PadLevelText:    true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	var out io.Writer = os.Stdout
	if len(file) > 0 && strings.TrimSpace(file[0]) != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   file[0],
			MaxSize:    32, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	l.SetOutput(out)

	return &Logger{Logger: l}
}

// Discard returns a logger that writes nothing, handy in tests
func Discard() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{Logger: l}
}
