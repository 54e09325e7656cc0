package glfwgo

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/obinnaokechukwu/glfwgo/internal/thread"
	"github.com/obinnaokechukwu/glfwgo/native"
)

// WindowID identifies a window in events. It stays comparable after the
// window is destroyed but must not be used to reach it.
type WindowID struct {
	h native.Window
}

// IsZero reports whether id names no window.
func (id WindowID) IsZero() bool {
	return id.h == 0
}

// Raw returns the GLFWwindow pointer.
func (id WindowID) Raw() uintptr {
	return uintptr(id.h)
}

func (id WindowID) String() string {
	return fmt.Sprintf("window(0x%x)", uintptr(id.h))
}

// windowData is the record shared by a Window and its proxies. The Window
// is the only view that destroys it.
type windowData struct {
	c      *core
	handle native.Window

	// mu serializes context transitions and proxy calls against Destroy.
	mu    sync.Mutex
	owner thread.ID // thread holding the context current; guarded by mu

	isCurrent atomic.Bool
	isAlive   atomic.Bool

	clientAPI  ClientAPI
	contextAPI ContextCreationAPI
}

func (d *windowData) id() WindowID {
	return WindowID{h: d.handle}
}

// WindowProxy is a copyable view of a window for use from any goroutine.
// It covers the operations GLFW allows off the main thread, chiefly the
// window's context. Every method panics once the window is destroyed.
type WindowProxy struct {
	d *windowData
}

// ID returns the window's identifier.
func (wp WindowProxy) ID() WindowID {
	return wp.d.id()
}

// IsAlive reports whether the window has not been destroyed. It never
// panics.
func (wp WindowProxy) IsAlive() bool {
	return wp.d != nil && wp.d.isAlive.Load()
}

// locked runs f under the window's mutex after checking that the window is
// alive.
func (wp WindowProxy) locked(op string, f func()) {
	d := wp.d
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.isAlive.Load() {
		panic(fmt.Sprintf("glfwgo: %s on destroyed %s", op, d.id()))
	}
	f()
}

// requireCurrentHere panics unless the window's context is current on the
// calling thread.
func (wp WindowProxy) requireCurrentHere(op string) {
	if !wp.IsCurrentOnCurrentThread() {
		panic(fmt.Sprintf("glfwgo: %s requires %s to be current on thread %s", op, wp.d.id(), thread.Current()))
	}
}

// ShouldClose returns the window's close flag.
func (wp WindowProxy) ShouldClose() bool {
	var v bool
	wp.locked("ShouldClose", func() { v = wp.d.c.drv.WindowShouldClose(wp.d.handle) })
	return v
}

// SetShouldClose sets the window's close flag.
func (wp WindowProxy) SetShouldClose(value bool) {
	wp.locked("SetShouldClose", func() { wp.d.c.drv.SetWindowShouldClose(wp.d.handle, value) })
}

// MakeCurrent makes the window's context current on the calling thread,
// releasing the context the thread held before. It panics if the context is
// current on another thread.
func (wp WindowProxy) MakeCurrent() error {
	return makeCurrent(wp.d)
}

// MakeUncurrent releases the window's context if the calling thread holds
// it. It is a no-op otherwise, even for a destroyed window.
func (wp WindowProxy) MakeUncurrent() error {
	return makeUncurrent(wp.d)
}

// IsCurrentSomewhere reports whether any thread holds the context current.
func (wp WindowProxy) IsCurrentSomewhere() bool {
	return wp.d.isCurrent.Load()
}

// IsCurrentOnCurrentThread reports whether the calling thread holds the
// context current.
func (wp WindowProxy) IsCurrentOnCurrentThread() bool {
	v, ok := trackers.Load(thread.Current())
	return ok && v.(*windowData) == wp.d
}

// SwapBuffers swaps the window's front and back buffers. An EGL context
// must be current on the calling thread.
func (wp WindowProxy) SwapBuffers() error {
	var err error
	wp.locked("SwapBuffers", func() {
		if wp.d.contextAPI == EGLContextAPI {
			wp.requireCurrentHere("SwapBuffers")
		}
		err = check("SwapBuffers", func() { wp.d.c.drv.SwapBuffers(wp.d.handle) })
	})
	return err
}

// SetSwapInterval sets how many screen updates to wait for before swapping.
// The context must be current on the calling thread.
func (wp WindowProxy) SetSwapInterval(interval int) error {
	wp.requireCurrentHere("SetSwapInterval")
	var err error
	wp.locked("SetSwapInterval", func() {
		err = check("SwapInterval", func() { wp.d.c.drv.SwapInterval(interval) })
	})
	return err
}

// ExtensionSupported reports whether the current context supports an API
// extension. The context must be current on the calling thread.
func (wp WindowProxy) ExtensionSupported(extension string) bool {
	wp.requireCurrentHere("ExtensionSupported")
	var ok bool
	wp.locked("ExtensionSupported", func() { ok = wp.d.c.drv.ExtensionSupported(extension) })
	return ok
}

// ProcAddress returns the address of a client API function of the current
// context, or 0. The context must be current on the calling thread.
func (wp WindowProxy) ProcAddress(name string) uintptr {
	wp.requireCurrentHere("ProcAddress")
	var addr uintptr
	wp.locked("ProcAddress", func() { addr = wp.d.c.drv.GetProcAddress(name) })
	return addr
}
