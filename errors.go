package glfwgo

import (
	"errors"
	"fmt"

	"github.com/obinnaokechukwu/glfwgo/internal/bindings"
	"github.com/obinnaokechukwu/glfwgo/native"
)

// ErrorCode is a GLFW error code.
type ErrorCode int

// Error codes reported by GLFW.
const (
	NotInitialized       ErrorCode = native.NotInitialized
	NoCurrentContext     ErrorCode = native.NoCurrentContext
	InvalidEnum          ErrorCode = native.InvalidEnum
	InvalidValue         ErrorCode = native.InvalidValue
	OutOfMemory          ErrorCode = native.OutOfMemory
	APIUnavailable       ErrorCode = native.APIUnavailable
	VersionUnavailable   ErrorCode = native.VersionUnavailable
	PlatformError        ErrorCode = native.PlatformError
	FormatUnavailable    ErrorCode = native.FormatUnavailable
	NoWindowContext      ErrorCode = native.NoWindowContext
	CursorUnavailable    ErrorCode = native.CursorUnavailable
	FeatureUnavailable   ErrorCode = native.FeatureUnavailable
	FeatureUnimplemented ErrorCode = native.FeatureUnimplemented
	PlatformUnavailable  ErrorCode = native.PlatformUnavailable
)

var errorCodeNames = map[ErrorCode]string{
	NotInitialized:       "NotInitialized",
	NoCurrentContext:     "NoCurrentContext",
	InvalidEnum:          "InvalidEnum",
	InvalidValue:         "InvalidValue",
	OutOfMemory:          "OutOfMemory",
	APIUnavailable:       "APIUnavailable",
	VersionUnavailable:   "VersionUnavailable",
	PlatformError:        "PlatformError",
	FormatUnavailable:    "FormatUnavailable",
	NoWindowContext:      "NoWindowContext",
	CursorUnavailable:    "CursorUnavailable",
	FeatureUnavailable:   "FeatureUnavailable",
	FeatureUnimplemented: "FeatureUnimplemented",
	PlatformUnavailable:  "PlatformUnavailable",
}

// String returns the code's name, or its hex value for codes this package
// does not know. Unknown codes are preserved, never rewritten.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(0x%08X)", int(c))
}

// Error is a fault reported by GLFW through its error callback.
type Error struct {
	Code        ErrorCode // GLFW error code
	Description string    // Human-readable description from GLFW
	Op          string    // Operation that failed, if known
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("glfw: %s (%s)", e.Description, e.Code)
	}
	return fmt.Sprintf("glfw %s: %s (%s)", e.Op, e.Description, e.Code)
}

// Common errors
var (
	// ErrLibraryNotFound is returned by LoadLibrary and Init when no libglfw
	// could be found. Set GLFWGO_LIBRARY or GLFWGO_LIB_DIR to point at one.
	ErrLibraryNotFound = bindings.ErrLibraryNotFound

	// ErrNotLoaded wraps every Init failure caused by loading libglfw.
	ErrNotLoaded = bindings.ErrNotLoaded

	// ErrDeadHandle indicates a monitor, window or cursor that is no longer
	// valid. Such errors are raised before any native call is made.
	ErrDeadHandle = errors.New("glfwgo: handle no longer alive")

	// ErrInvalidGammaRamp indicates a packed ramp that is not a multiple of
	// three or does not match the monitor's ramp size.
	ErrInvalidGammaRamp = errors.New("glfwgo: invalid gamma ramp")

	// ErrInvalidImage indicates pixel data that does not match its size.
	ErrInvalidImage = errors.New("glfwgo: invalid image")

	// ErrNulInString indicates a string argument with an embedded NUL byte.
	ErrNulInString = errors.New("glfwgo: string contains NUL byte")

	// ErrWrongPlatform indicates a native accessor for a platform other than
	// the one GLFW was initialized on.
	ErrWrongPlatform = errors.New("glfwgo: wrong platform")
)

// VulkanError carries a non-success VkResult.
type VulkanError struct {
	Result int32
	Op     string
}

func (e *VulkanError) Error() string {
	return fmt.Sprintf("glfw %s: vulkan error (VkResult %d)", e.Op, e.Result)
}

// newError builds an *Error from a native code.
func newError(code int, description, op string) *Error {
	return &Error{Code: ErrorCode(code), Description: description, Op: op}
}

// deadMonitorError is returned by every monitor operation on a monitor the
// registry no longer considers alive.
func deadMonitorError(op string) error {
	return fmt.Errorf("%w: %w", ErrDeadHandle, &Error{
		Code:        PlatformError,
		Description: "monitor no longer alive",
		Op:          op,
	})
}

// silentInitError is returned when glfwInit fails without reporting why.
func silentInitError() *Error {
	return &Error{
		Code:        NotInitialized,
		Description: "init failed with no error reported",
		Op:          "Init",
	}
}

// IsDeadHandle returns true if err was raised for a handle that is no
// longer alive.
func IsDeadHandle(err error) bool {
	return errors.Is(err, ErrDeadHandle)
}

// Code returns the GLFW error code from an error, or 0 if not a GLFW error.
func Code(err error) ErrorCode {
	var glfwErr *Error
	if errors.As(err, &glfwErr) {
		return glfwErr.Code
	}
	return 0
}

// IsCode returns true if err is a GLFW error with the given code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && Code(err) == code
}
