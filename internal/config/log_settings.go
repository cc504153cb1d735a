package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

const (
	EnvLogLevel      = "NOISE_LOG_LEVEL"
	EnvLogFile       = "NOISE_LOG_FILE"
	EnvLogMaxSizeMB  = "NOISE_LOG_MAX_SIZE_MB"
	EnvLogMaxBackups = "NOISE_LOG_MAX_BACKUPS"
	EnvLogMaxAgeDays = "NOISE_LOG_MAX_AGE_DAYS"

	// LogFileStderr selects standard error instead of a file.
	LogFileStderr = "stderr"

	defaultLogLevel      = "info"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7
)

// LogSettings describes where and how verbosely to log. An empty File
// discards all output.
type LogSettings struct {
	Level      string `json:"level" validate:"required,oneof=debug info warn error"`
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb" validate:"min=1,max=100"`
	MaxBackups int    `json:"max_backups" validate:"min=0,max=10"`
	MaxAgeDays int    `json:"max_age_days" validate:"min=1,max=365"`
}

func LoadLogSettings() LogSettings {
	return LogSettings{
		Level:      getEnvOrDefault(EnvLogLevel, defaultLogLevel),
		File:       os.Getenv(EnvLogFile),
		MaxSizeMB:  ReadInt(EnvLogMaxSizeMB, defaultLogMaxSizeMB),
		MaxBackups: ReadInt(EnvLogMaxBackups, defaultLogMaxBackups),
		MaxAgeDays: ReadInt(EnvLogMaxAgeDays, defaultLogMaxAgeDays),
	}
}

// Validate checks that all fields in LogSettings are usable.
func (s *LogSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LogSettings: %w", err)
	}
	return nil
}

// Discards reports whether the settings route output nowhere.
func (s *LogSettings) Discards() bool {
	return s.File == ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
