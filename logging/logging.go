package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogsLayout is the timestamp format used by the text formatter.
const LogsLayout = "2006-01-02 15:04:05,000"

// Config describes an optional rolling file sink. When FilePath is empty
// all log output goes to stderr only. Stdout is never used: it is reserved
// for protocol messages.
type Config struct {
	FilePath   string
	MaxSizeMb  int
	MaxBackups int
	Compress   bool
}

// Init configures the global logger. Unknown level strings keep the default
// (info) and are reported rather than failing the process.
func Init(levelStr string, format string, cfg Config) {
	log.SetOutput(os.Stderr)
	if format == "json" {
		SetJsonFormatter()
	} else {
		SetTextFormatter()
	}
	if levelStr != "" {
		level, err := log.ParseLevel(levelStr)
		if err != nil {
			Errorf("unknown log level %q: %v", levelStr, err)
		} else {
			log.SetLevel(level)
		}
	}
	if cfg.FilePath != "" {
		rolling := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMb,
			MaxBackups: cfg.MaxBackups,
			Compress:   cfg.Compress,
		}
		log.SetOutput(io.MultiWriter(os.Stderr, rolling))
	}
}

func SetJsonFormatter() {
	log.SetFormatter(&log.JSONFormatter{})
}

func SetTextFormatter() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: LogsLayout,
	})
}

func SystemErrorf(format string, v ...any) {
	SystemError(fmt.Sprintf(format, v...))
}

func SystemError(v ...any) {
	msg := []any{"System error:"}
	msg = append(msg, v...)
	Error(msg...)
}

func Errorf(format string, v ...any) {
	log.Errorf(format, v...)
}

func Error(v ...any) {
	log.Errorln(v...)
}

func Infof(format string, v ...any) {
	log.Infof(format, v...)
}

func Info(v ...any) {
	log.Infoln(v...)
}

func Debugf(format string, v ...any) {
	log.Debugf(format, v...)
}

func Debug(v ...any) {
	log.Debug(v...)
}

func Warnf(format string, v ...any) {
	log.Warnf(format, v...)
}

func Warn(v ...any) {
	log.Warnln(v...)
}

func Fatal(v ...any) {
	log.Fatal(v...)
}

func Fatalf(format string, v ...any) {
	log.Fatalf(format, v...)
}
