package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/martijn/exerlog/pkg/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process logger. It owns the rotating log file, if any.
type Logger struct {
	*logrus.Logger
	file *lumberjack.Logger
}

// New builds the process logger. Output always goes to stdout and, when
// log_file is set, to a size-rotated file as well.
func New(cfg *config.Config) (*Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	log := &Logger{Logger: logrus.New()}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		log.file = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAgeDays,
			LocalTime:  true,
			Compress:   false,
		}
		out = io.MultiWriter(os.Stdout, log.file)
	}
	log.SetOutput(out)

	return log, nil
}

// Close releases the log file. Entries logged afterwards reopen it.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// Discard returns a logger that drops everything, for tests and quiet commands.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
