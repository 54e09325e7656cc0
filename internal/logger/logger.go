// Package logger holds the process-wide glfwgo logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvLevel names the environment variable read at startup for the log level.
const EnvLevel = "GLFWGO_LOG_LEVEL"

var Logger *log.Logger

func init() {
	Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "glfwgo"})
	Logger.SetLevel(levelFromEnv(os.Getenv(EnvLevel)))
}

func levelFromEnv(v string) log.Level {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "DEBUG":
		return log.DebugLevel
	case "INFO":
		return log.InfoLevel
	case "ERROR":
		return log.ErrorLevel
	case "FATAL":
		return log.FatalLevel
	default:
		// Default to WARN: a library should stay quiet unless something is off.
		return log.WarnLevel
	}
}

// SetOutput redirects all log records.
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// SetLevel changes the minimum level that is emitted.
func SetLevel(level log.Level) {
	Logger.SetLevel(level)
}

// Convenience functions for common operations
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}
