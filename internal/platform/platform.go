//go:build !ios && !android && (amd64 || arm64)

// Package platform provides platform detection for glfwgo: which windowing
// backends an OS can offer and how its shared libraries are named.
package platform

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Is64Bit indicates whether the platform is 64-bit.
// glfwgo only supports 64-bit platforms due to purego limitations.
const Is64Bit = unsafe.Sizeof(uintptr(0)) == 8

// LibraryExtension is the file extension for shared libraries on this platform.
var LibraryExtension string

// LibraryPrefix is the prefix for shared library names on this platform.
var LibraryPrefix string

func init() {
	switch runtime.GOOS {
	case "darwin":
		LibraryExtension = ".dylib"
		LibraryPrefix = "lib"
	case "windows":
		LibraryExtension = ".dll"
		LibraryPrefix = ""
	default: // linux, freebsd, etc.
		LibraryExtension = ".so"
		LibraryPrefix = "lib"
	}
}

// FormatLibraryName returns the platform-specific library filename.
// If version is 0, returns the unversioned library name.
//
// Examples:
//   - Linux:   FormatLibraryName("glfw", 3) -> "libglfw.so.3"
//   - macOS:   FormatLibraryName("glfw", 3) -> "libglfw.3.dylib"
//   - Windows: FormatLibraryName("glfw", 3) -> "glfw3.dll"
func FormatLibraryName(name string, version int) string {
	switch runtime.GOOS {
	case "darwin":
		if version > 0 {
			return fmt.Sprintf("%s%s.%d%s", LibraryPrefix, name, version, LibraryExtension)
		}
		return fmt.Sprintf("%s%s%s", LibraryPrefix, name, LibraryExtension)
	case "windows":
		if version > 0 {
			return fmt.Sprintf("%s%s%d%s", LibraryPrefix, name, version, LibraryExtension)
		}
		return fmt.Sprintf("%s%s%s", LibraryPrefix, name, LibraryExtension)
	default: // linux, freebsd
		if version > 0 {
			return fmt.Sprintf("%s%s%s.%d", LibraryPrefix, name, LibraryExtension, version)
		}
		return fmt.Sprintf("%s%s%s", LibraryPrefix, name, LibraryExtension)
	}
}

// Backend names a windowing system GLFW can drive.
type Backend string

const (
	Win32   Backend = "win32"
	Cocoa   Backend = "cocoa"
	Wayland Backend = "wayland"
	X11     Backend = "x11"
	Null    Backend = "null"
)

// Backends returns the windowing systems a GLFW build for this OS may
// support, in the order GLFW prefers them. The null backend is always last.
func Backends() []Backend {
	switch runtime.GOOS {
	case "windows":
		return []Backend{Win32, Null}
	case "darwin":
		return []Backend{Cocoa, Null}
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return []Backend{Wayland, X11, Null}
	default:
		return []Backend{Null}
	}
}

// GOOS returns the current operating system.
func GOOS() string {
	return runtime.GOOS
}

// GOARCH returns the current architecture.
func GOARCH() string {
	return runtime.GOARCH
}
