//go:build !ios && !android && (amd64 || arm64)

package bindings

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/glfwgo/internal/handles"
	"github.com/obinnaokechukwu/glfwgo/native"
)

type callbackSlot int

const (
	slotPos callbackSlot = iota
	slotSize
	slotClose
	slotRefresh
	slotFocus
	slotIconify
	slotMaximize
	slotFramebufferSize
	slotContentScale
	slotKey
	slotChar
	slotMouseButton
	slotCursorPos
	slotCursorEnter
	slotScroll
	slotDrop
	numCallbackSlots
)

// purego can only create a bounded number of callbacks for the lifetime of
// the process, so every trampoline is created once and dispatches on the
// window handle GLFW passes back.
var (
	trampolinesOnce sync.Once
	trampolines     [numCallbackSlots]uintptr

	errorCBOnce    sync.Once
	errorCBPtr     uintptr
	monitorCBOnce  sync.Once
	monitorCBPtr   uintptr
	joystickCBOnce sync.Once
	joystickCBPtr  uintptr

	globalMu   sync.Mutex
	errorFn    native.ErrorFunc
	monitorFn  native.MonitorFunc
	joystickFn native.JoystickFunc

	windowCallbacks handles.Map[native.Window, *native.WindowCallbacks]
)

func windowCB(w uintptr) *native.WindowCallbacks {
	cbs, _ := windowCallbacks.Lookup(native.Window(w))
	return cbs
}

func glfwBool(v int32) bool {
	return v != native.False
}

func createTrampolines() {
	trampolines[slotPos] = purego.NewCallback(func(_ purego.CDecl, w uintptr, x, y int32) {
		if cbs := windowCB(w); cbs != nil && cbs.Pos != nil {
			cbs.Pos(int(x), int(y))
		}
	})
	trampolines[slotSize] = purego.NewCallback(func(_ purego.CDecl, w uintptr, width, height int32) {
		if cbs := windowCB(w); cbs != nil && cbs.Size != nil {
			cbs.Size(int(width), int(height))
		}
	})
	trampolines[slotClose] = purego.NewCallback(func(_ purego.CDecl, w uintptr) {
		if cbs := windowCB(w); cbs != nil && cbs.Close != nil {
			cbs.Close()
		}
	})
	trampolines[slotRefresh] = purego.NewCallback(func(_ purego.CDecl, w uintptr) {
		if cbs := windowCB(w); cbs != nil && cbs.Refresh != nil {
			cbs.Refresh()
		}
	})
	trampolines[slotFocus] = purego.NewCallback(func(_ purego.CDecl, w uintptr, focused int32) {
		if cbs := windowCB(w); cbs != nil && cbs.Focus != nil {
			cbs.Focus(glfwBool(focused))
		}
	})
	trampolines[slotIconify] = purego.NewCallback(func(_ purego.CDecl, w uintptr, iconified int32) {
		if cbs := windowCB(w); cbs != nil && cbs.Iconify != nil {
			cbs.Iconify(glfwBool(iconified))
		}
	})
	trampolines[slotMaximize] = purego.NewCallback(func(_ purego.CDecl, w uintptr, maximized int32) {
		if cbs := windowCB(w); cbs != nil && cbs.Maximize != nil {
			cbs.Maximize(glfwBool(maximized))
		}
	})
	trampolines[slotFramebufferSize] = purego.NewCallback(func(_ purego.CDecl, w uintptr, width, height int32) {
		if cbs := windowCB(w); cbs != nil && cbs.FramebufferSize != nil {
			cbs.FramebufferSize(int(width), int(height))
		}
	})
	trampolines[slotContentScale] = purego.NewCallback(func(_ purego.CDecl, w uintptr, x, y float32) {
		if cbs := windowCB(w); cbs != nil && cbs.ContentScale != nil {
			cbs.ContentScale(x, y)
		}
	})
	trampolines[slotKey] = purego.NewCallback(func(_ purego.CDecl, w uintptr, key, scancode, action, mods int32) {
		if cbs := windowCB(w); cbs != nil && cbs.Key != nil {
			cbs.Key(int(key), int(scancode), int(action), int(mods))
		}
	})
	trampolines[slotChar] = purego.NewCallback(func(_ purego.CDecl, w uintptr, codepoint uint32) {
		if cbs := windowCB(w); cbs != nil && cbs.Char != nil {
			cbs.Char(rune(codepoint))
		}
	})
	trampolines[slotMouseButton] = purego.NewCallback(func(_ purego.CDecl, w uintptr, button, action, mods int32) {
		if cbs := windowCB(w); cbs != nil && cbs.MouseButton != nil {
			cbs.MouseButton(int(button), int(action), int(mods))
		}
	})
	trampolines[slotCursorPos] = purego.NewCallback(func(_ purego.CDecl, w uintptr, x, y float64) {
		if cbs := windowCB(w); cbs != nil && cbs.CursorPos != nil {
			cbs.CursorPos(x, y)
		}
	})
	trampolines[slotCursorEnter] = purego.NewCallback(func(_ purego.CDecl, w uintptr, entered int32) {
		if cbs := windowCB(w); cbs != nil && cbs.CursorEnter != nil {
			cbs.CursorEnter(glfwBool(entered))
		}
	})
	trampolines[slotScroll] = purego.NewCallback(func(_ purego.CDecl, w uintptr, x, y float64) {
		if cbs := windowCB(w); cbs != nil && cbs.Scroll != nil {
			cbs.Scroll(x, y)
		}
	})
	trampolines[slotDrop] = purego.NewCallback(func(_ purego.CDecl, w uintptr, count int32, paths **byte) {
		cbs := windowCB(w)
		if cbs == nil || cbs.Drop == nil {
			return
		}
		var out []string
		if count > 0 && paths != nil {
			for _, p := range unsafe.Slice(paths, count) {
				out = append(out, goString(p))
			}
		}
		cbs.Drop(out)
	})
}

// setWindowCallbacks installs every trampoline on w, or clears them when
// cbs is nil.
func setWindowCallbacks(w native.Window, cbs *native.WindowCallbacks) {
	trampolinesOnce.Do(createTrampolines)

	if cbs == nil {
		windowCallbacks.Unregister(w)
		for _, set := range windowCallbackSetters {
			set(uintptr(w), 0)
		}
		return
	}

	windowCallbacks.Register(w, cbs)
	for slot, set := range windowCallbackSetters {
		set(uintptr(w), trampolines[slot])
	}
}

// errorTrampoline is called by GLFW on the thread that raised the error.
// Signature: void (*)(int error_code, const char *description)
func errorTrampoline(_ purego.CDecl, code int32, description *byte) {
	globalMu.Lock()
	cb := errorFn
	globalMu.Unlock()

	if cb != nil {
		cb(int(code), goString(description))
	}
}

func monitorTrampoline(_ purego.CDecl, m uintptr, event int32) {
	globalMu.Lock()
	cb := monitorFn
	globalMu.Unlock()

	if cb != nil {
		cb(native.Monitor(m), int(event))
	}
}

func joystickTrampoline(_ purego.CDecl, jid, event int32) {
	globalMu.Lock()
	cb := joystickFn
	globalMu.Unlock()

	if cb != nil {
		cb(int(jid), int(event))
	}
}

func setErrorCallback(cb native.ErrorFunc) {
	globalMu.Lock()
	errorFn = cb
	globalMu.Unlock()

	if cb == nil {
		glfwSetErrorCallback(0)
		return
	}
	errorCBOnce.Do(func() { errorCBPtr = purego.NewCallback(errorTrampoline) })
	glfwSetErrorCallback(errorCBPtr)
}

func setMonitorCallback(cb native.MonitorFunc) {
	globalMu.Lock()
	monitorFn = cb
	globalMu.Unlock()

	if cb == nil {
		glfwSetMonitorCallback(0)
		return
	}
	monitorCBOnce.Do(func() { monitorCBPtr = purego.NewCallback(monitorTrampoline) })
	glfwSetMonitorCallback(monitorCBPtr)
}

func setJoystickCallback(cb native.JoystickFunc) {
	globalMu.Lock()
	joystickFn = cb
	globalMu.Unlock()

	if cb == nil {
		glfwSetJoystickCallback(0)
		return
	}
	joystickCBOnce.Do(func() { joystickCBPtr = purego.NewCallback(joystickTrampoline) })
	glfwSetJoystickCallback(joystickCBPtr)
}

// goString copies a NUL-terminated C string.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// reportError feeds a synthesized error through the installed callback, the
// same way GLFW reports its own.
func reportError(code int, description string) {
	globalMu.Lock()
	cb := errorFn
	globalMu.Unlock()

	if cb != nil {
		cb(code, description)
	}
}
