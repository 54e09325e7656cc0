//go:build ios || android || !(amd64 || arm64)

package bindings

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/obinnaokechukwu/glfwgo/native"
)

// ErrNotLoaded is returned when GLFW functions are used before Load().
var ErrNotLoaded = errors.New("glfwgo: GLFW library not loaded")

// ErrLibraryNotFound is returned when the GLFW shared library cannot be found.
var ErrLibraryNotFound = errors.New("glfwgo: GLFW library not found")

// ErrUnsupportedPlatform is returned on targets purego cannot call into.
var ErrUnsupportedPlatform = errors.New("glfwgo: platform not supported by the runtime loader")

// IsLoaded always returns false on unsupported targets.
func IsLoaded() bool { return false }

// Load always fails on unsupported targets.
func Load() error {
	return fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, runtime.GOOS, runtime.GOARCH)
}

// Driver always fails on unsupported targets.
func Driver() (native.Driver, error) {
	return nil, Load()
}

// FindLibrary always fails on unsupported targets.
func FindLibrary() (string, error) {
	return "", Load()
}

// LibraryPath returns "".
func LibraryPath() string { return "" }

// MissingOptional returns nil.
func MissingOptional() []string { return nil }
