//go:build !ios && !android && (amd64 || arm64)

// Package bindings loads the GLFW shared library at runtime with purego and
// exposes it as a native.Driver.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/glfwgo/internal/platform"
	"github.com/obinnaokechukwu/glfwgo/native"
)

// ErrNotLoaded is returned when GLFW functions are used before Load().
var ErrNotLoaded = errors.New("glfwgo: GLFW library not loaded")

// ErrLibraryNotFound is returned when the GLFW shared library cannot be found.
var ErrLibraryNotFound = errors.New("glfwgo: GLFW library not found")

// ErrMissingSymbol is returned when the loaded library lacks a required function.
var ErrMissingSymbol = errors.New("glfwgo: required GLFW symbol missing")

// Environment variables consulted when looking for the library.
const (
	EnvLibrary = "GLFWGO_LIBRARY" // explicit path to the shared library
	EnvLibDir  = "GLFWGO_LIB_DIR" // extra directory searched first
)

const libraryName = "glfw"

var libraryVersions = []int{3}

var (
	libGLFW  uintptr
	libPath  string
	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// IsLoaded returns true if the GLFW library has been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// Load loads libglfw and registers all function bindings.
// It is safe to call multiple times; subsequent calls are no-ops.
// Returns an error if the library cannot be found or lacks required symbols.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

// Driver loads the library if needed and returns a native.Driver backed by it.
func Driver() (native.Driver, error) {
	if err := Load(); err != nil {
		return nil, err
	}
	return &driver{}, nil
}

func doLoad() error {
	var err error

	if explicit := os.Getenv(EnvLibrary); explicit != "" {
		libGLFW, err = tryOpen(explicit)
		if err != nil {
			return fmt.Errorf("loading %s from %s: %w", libraryName, EnvLibrary, err)
		}
		libPath = explicit
	} else {
		libGLFW, libPath, err = loadLibrary(libraryName, libraryVersions)
		if err != nil {
			return fmt.Errorf("loading libglfw: %w", err)
		}
	}

	return registerBindings(libGLFW)
}

// loadLibrary attempts to load a library by trying versioned names.
func loadLibrary(name string, versions []int) (uintptr, string, error) {
	// Try each search path
	for _, searchPath := range LibrarySearchPaths() {
		// Try versioned names first (more specific)
		for _, ver := range versions {
			fullPath := filepath.Join(searchPath, platform.FormatLibraryName(name, ver))
			if lib, err := tryOpen(fullPath); err == nil {
				return lib, fullPath, nil
			}
		}

		fullPath := filepath.Join(searchPath, platform.FormatLibraryName(name, 0))
		if lib, err := tryOpen(fullPath); err == nil {
			return lib, fullPath, nil
		}
	}

	// Try just the library name (let the system find it)
	for _, ver := range versions {
		libName := platform.FormatLibraryName(name, ver)
		if lib, err := tryOpen(libName); err == nil {
			return lib, libName, nil
		}
	}

	libName := platform.FormatLibraryName(name, 0)
	if lib, err := tryOpen(libName); err == nil {
		return lib, libName, nil
	}

	return 0, "", fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
}

// tryOpen attempts to open a library with RTLD_NOW | RTLD_GLOBAL.
// GLOBAL lets Vulkan loaders and GL function loaders resolve against it.
func tryOpen(path string) (uintptr, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return lib, nil
}

// FindLibrary searches for the GLFW library and returns its full path.
// This is useful for diagnostics.
func FindLibrary() (string, error) {
	if explicit := os.Getenv(EnvLibrary); explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit, nil
		}
	}
	for _, searchPath := range LibrarySearchPaths() {
		for _, ver := range libraryVersions {
			fullPath := filepath.Join(searchPath, platform.FormatLibraryName(libraryName, ver))
			if _, err := os.Stat(fullPath); err == nil {
				return fullPath, nil
			}
		}
		fullPath := filepath.Join(searchPath, platform.FormatLibraryName(libraryName, 0))
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrLibraryNotFound, libraryName)
}

// LibrarySearchPaths returns platform-specific library search paths.
func LibrarySearchPaths() []string {
	var paths []string

	if dir := os.Getenv(EnvLibDir); dir != "" {
		paths = append(paths, dir)
	}

	switch runtime.GOOS {
	case "linux":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/lib64",
			"/usr/local/lib",
			"/usr/lib",
			"/lib/x86_64-linux-gnu",
			"/lib",
		)

	case "darwin":
		if dyldPath := os.Getenv("DYLD_LIBRARY_PATH"); dyldPath != "" {
			paths = append(paths, filepath.SplitList(dyldPath)...)
		}
		paths = append(paths,
			"/opt/homebrew/lib",             // Apple Silicon
			"/usr/local/lib",                // Intel
			"/opt/homebrew/opt/glfw/lib",    // Homebrew GLFW
			"/usr/local/opt/glfw/lib",       // Homebrew GLFW (Intel)
			"/opt/local/lib",                // MacPorts
		)

	case "windows":
		// Executable directory first; GLFW is usually shipped next to the binary.
		if exe, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Dir(exe))
		}
		if winPath := os.Getenv("PATH"); winPath != "" {
			paths = append(paths, filepath.SplitList(winPath)...)
		}

	case "freebsd":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/local/lib",
			"/usr/lib",
		)
	}

	return paths
}

// LibraryPath returns the path the library was loaded from, or "" before Load.
func LibraryPath() string {
	return libPath
}

// Lib returns the raw library handle.
func Lib() uintptr {
	return libGLFW
}
