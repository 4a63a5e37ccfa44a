package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

var (
	// InfoLogger logs informational messages
	InfoLogger *zerolog.Logger
	// ErrorLogger logs error messages
	ErrorLogger *zerolog.Logger
	// DebugLogger logs debug messages
	DebugLogger *zerolog.Logger
)

// InitLogger initializes the loggers, one daily file per level under dir
func InitLogger(dir string) error {
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	timestamp := time.Now().Format("2006-01-02")

	open := func(level string) (*zerolog.Logger, error) {
		f, err := os.OpenFile(
			filepath.Join(dir, fmt.Sprintf("%s-%s.log", level, timestamp)),
			os.O_APPEND|os.O_CREATE|os.O_WRONLY,
			0644,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s log file: %w", level, err)
		}
		l := zerolog.New(f).With().Timestamp().Caller().Logger()
		return &l, nil
	}

	var err error
	if InfoLogger, err = open("info"); err != nil {
		return err
	}
	if ErrorLogger, err = open("error"); err != nil {
		return err
	}
	if DebugLogger, err = open("debug"); err != nil {
		return err
	}
	return nil
}

// LogInfo logs an informational message
func LogInfo(format string, v ...interface{}) {
	if InfoLogger != nil {
		InfoLogger.Info().CallerSkipFrame(1).Msgf(format, v...)
	}
}

// LogError logs an error message
func LogError(format string, v ...interface{}) {
	if ErrorLogger != nil {
		ErrorLogger.Error().CallerSkipFrame(1).Msgf(format, v...)
	}
}

// LogDebug logs a debug message
func LogDebug(format string, v ...interface{}) {
	if DebugLogger != nil {
		DebugLogger.Debug().CallerSkipFrame(1).Msgf(format, v...)
	}
}

// LogRequest logs HTTP request details
func LogRequest(method, path, ip, requestID string, status int, duration time.Duration) {
	if InfoLogger != nil {
		InfoLogger.Info().
			Str("method", method).
			Str("path", path).
			Str("ip", ip).
			Str("request_id", requestID).
			Int("status", status).
			Dur("duration", duration).
			Msg("request")
	}
}

// LogErrorWithStack logs an error with stack trace
func LogErrorWithStack(err error, stack []byte) {
	if ErrorLogger != nil {
		ErrorLogger.Error().Err(err).Str("stack", string(stack)).Msg("panic recovered")
	}
}
