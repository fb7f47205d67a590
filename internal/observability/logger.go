package observability

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps logrus with rotating file output. Fields are passed as
// alternating key/value pairs, e.g. logger.Info("fetched", "bytes", n).
type Logger struct {
	l *logrus.Logger
}

func NewLogger(logPath, logLevel string) *Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if logPath != "" {
		rotated := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		l.SetOutput(io.MultiWriter(os.Stderr, rotated))
	}

	return &Logger{l: l}
}

func (l *Logger) Debug(msg string, fields ...interface{}) {
	l.l.WithFields(toFields(fields)).Debug(msg)
}

func (l *Logger) Info(msg string, fields ...interface{}) {
	l.l.WithFields(toFields(fields)).Info(msg)
}

func (l *Logger) Warn(msg string, fields ...interface{}) {
	l.l.WithFields(toFields(fields)).Warn(msg)
}

func (l *Logger) Error(msg string, fields ...interface{}) {
	l.l.WithFields(toFields(fields)).Error(msg)
}

func toFields(kv []interface{}) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", kv[i])
		}
		fields[key] = kv[i+1]
	}
	if len(kv)%2 != 0 {
		fields["extra"] = kv[len(kv)-1]
	}
	return fields
}
