package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/amaumene/syscallnoise/internal/config"
	"github.com/natefinch/lumberjack"
	log "github.com/sirupsen/logrus"
)

// Setup points the global logger at the destination named by s. Invalid
// settings leave the logger untouched and return an error.
func Setup(s config.LogSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(s.Level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}

	out, formatter := destination(s)
	log.SetOutput(out)
	log.SetFormatter(formatter)
	log.SetLevel(level)
	return nil
}

// Discard drops all log output.
func Discard() {
	log.SetOutput(io.Discard)
}

func destination(s config.LogSettings) (io.Writer, log.Formatter) {
	switch {
	case s.Discards():
		return io.Discard, &log.TextFormatter{DisableColors: true}
	case s.File == config.LogFileStderr:
		return os.Stderr, &log.TextFormatter{FullTimestamp: true}
	default:
		return &lumberjack.Logger{
			Filename:   s.File,
			MaxSize:    s.MaxSizeMB,
			MaxBackups: s.MaxBackups,
			MaxAge:     s.MaxAgeDays,
			Compress:   true,
		}, &log.JSONFormatter{}
	}
}
