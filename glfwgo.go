// Package glfwgo is a safe Go wrapper around GLFW, loaded at runtime
// without cgo using purego.
//
// GLFW is a global, thread-affine C library that reports errors through a
// callback. glfwgo turns those rules into checks:
//
//   - Init returns the one EventLoop; it and everything created from it
//     belong to the thread that called Init, which must have called
//     runtime.LockOSThread. Proxy and WindowProxy are the views that may be
//     used from other goroutines.
//   - Callbacks become Events returned by PollEvents, WaitEvents and
//     WaitEventsTimeout, stamped with the time they fired.
//   - A window's context is current on at most one thread. Making it current
//     on a second thread panics instead of corrupting GLFW's state.
//   - Monitors are tracked as they are enumerated and disconnected, and
//     operations on a monitor that is gone return ErrDeadHandle without
//     reaching GLFW.
//   - GLFW errors land in a per-thread slot. Methods returning an error
//     consume it; for the rest use Checked, Logged or Ignored.
//
// Programmer errors, such as using a destroyed window or calling a
// main-thread method from another thread, panic.
package glfwgo

import (
	"github.com/obinnaokechukwu/glfwgo/internal/bindings"
	"github.com/obinnaokechukwu/glfwgo/native"
)

// HeaderVersion returns the GLFW version these bindings were written
// against.
func HeaderVersion() (major, minor, revision int) {
	return native.VersionMajor, native.VersionMinor, native.VersionRevision
}

// LoadLibrary loads libglfw without initializing it. Init does this
// implicitly; call it early to report a missing library before doing
// anything else. It is safe to call multiple times.
func LoadLibrary() error {
	return bindings.Load()
}

// LibraryPath returns the path libglfw was loaded from, or "" when it has
// not been loaded.
func LibraryPath() string {
	return bindings.LibraryPath()
}

// LibraryVersion returns the version of the installed libglfw, loading it
// if needed. It does not require Init.
func LibraryVersion() (major, minor, revision int, err error) {
	drv, err := bindings.Driver()
	if err != nil {
		return 0, 0, 0, err
	}
	major, minor, revision = drv.GetVersion()
	return major, minor, revision, nil
}

// LibraryVersionString returns the installed libglfw's version string,
// which also names its compile-time options.
func LibraryVersionString() (string, error) {
	drv, err := bindings.Driver()
	if err != nil {
		return "", err
	}
	return drv.GetVersionString(), nil
}

// MissingSymbols lists the optional GLFW functions the loaded library does
// not export. Calls that need them report FeatureUnimplemented.
func MissingSymbols() []string {
	return bindings.MissingOptional()
}
