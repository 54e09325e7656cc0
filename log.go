package glfwgo

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/obinnaokechukwu/glfwgo/internal/logger"
)

// LogLevel is the minimum severity glfwgo writes to its log.
type LogLevel = log.Level

// Log level constants.
const (
	LogDebug LogLevel = log.DebugLevel // Every GLFW error, including handled ones
	LogInfo  LogLevel = log.InfoLevel  // Lifecycle events
	LogWarn  LogLevel = log.WarnLevel  // Recoverable misuse (default)
	LogError LogLevel = log.ErrorLevel // Errors surfaced by Logged and dropped events
)

// SetLogOutput redirects glfwgo's log records. The default is os.Stderr.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLogLevel sets the minimum level glfwgo logs at. The initial level comes
// from the GLFWGO_LOG_LEVEL environment variable and defaults to warn.
func SetLogLevel(level LogLevel) {
	logger.SetLevel(level)
}

// Logger returns the logger glfwgo writes to.
func Logger() *log.Logger {
	return logger.Logger
}
