//go:build !ios && !android && (amd64 || arm64)

package bindings

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Function bindings. Optional ones stay nil when the library predates them.
var (
	glfwInit              func() int32
	glfwTerminate         func()
	glfwInitHint          func(hint, value int32)
	glfwSetErrorCallback  func(cb uintptr) uintptr
	glfwGetVersion        func(major, minor, rev *int32)
	glfwGetVersionString  func() string
	glfwGetPlatform       func() int32
	glfwPlatformSupported func(platform int32) int32

	glfwGetTime           func() float64
	glfwSetTime           func(t float64)
	glfwPollEvents        func()
	glfwWaitEvents        func()
	glfwWaitEventsTimeout func(timeout float64)
	glfwPostEmptyEvent    func()

	glfwGetMonitors             func(count *int32) unsafe.Pointer
	glfwGetPrimaryMonitor       func() uintptr
	glfwSetMonitorCallback      func(cb uintptr) uintptr
	glfwGetMonitorPos           func(m uintptr, x, y *int32)
	glfwGetMonitorWorkarea      func(m uintptr, x, y, w, h *int32)
	glfwGetMonitorPhysicalSize  func(m uintptr, w, h *int32)
	glfwGetMonitorContentScale  func(m uintptr, x, y *float32)
	glfwGetMonitorName          func(m uintptr) string
	glfwGetVideoModes           func(m uintptr, count *int32) unsafe.Pointer
	glfwGetVideoMode            func(m uintptr) unsafe.Pointer
	glfwSetGamma                func(m uintptr, gamma float32)
	glfwGetGammaRamp            func(m uintptr) unsafe.Pointer
	glfwSetGammaRamp            func(m uintptr, ramp unsafe.Pointer)
	glfwDefaultWindowHints      func()
	glfwWindowHint              func(hint, value int32)
	glfwWindowHintString        func(hint int32, value string)
	glfwCreateWindow            func(w, h int32, title string, monitor, share uintptr) uintptr
	glfwDestroyWindow           func(w uintptr)
	glfwWindowShouldClose       func(w uintptr) int32
	glfwSetWindowShouldClose    func(w uintptr, value int32)
	glfwGetWindowTitle          func(w uintptr) string
	glfwSetWindowTitle          func(w uintptr, title string)
	glfwSetWindowIcon           func(w uintptr, count int32, images unsafe.Pointer)
	glfwGetWindowPos            func(w uintptr, x, y *int32)
	glfwSetWindowPos            func(w uintptr, x, y int32)
	glfwGetWindowSize           func(w uintptr, width, height *int32)
	glfwSetWindowSize           func(w uintptr, width, height int32)
	glfwSetWindowSizeLimits     func(w uintptr, minW, minH, maxW, maxH int32)
	glfwSetWindowAspectRatio    func(w uintptr, numer, denom int32)
	glfwGetFramebufferSize      func(w uintptr, width, height *int32)
	glfwGetWindowFrameSize      func(w uintptr, left, top, right, bottom *int32)
	glfwGetWindowContentScale   func(w uintptr, x, y *float32)
	glfwGetWindowOpacity        func(w uintptr) float32
	glfwSetWindowOpacity        func(w uintptr, opacity float32)
	glfwIconifyWindow           func(w uintptr)
	glfwRestoreWindow           func(w uintptr)
	glfwMaximizeWindow          func(w uintptr)
	glfwShowWindow              func(w uintptr)
	glfwHideWindow              func(w uintptr)
	glfwFocusWindow             func(w uintptr)
	glfwRequestWindowAttention  func(w uintptr)
	glfwGetWindowMonitor        func(w uintptr) uintptr
	glfwSetWindowMonitor        func(w, m uintptr, x, y, width, height, refresh int32)
	glfwGetWindowAttrib         func(w uintptr, attrib int32) int32
	glfwSetWindowAttrib         func(w uintptr, attrib, value int32)
	glfwGetInputMode            func(w uintptr, mode int32) int32
	glfwSetInputMode            func(w uintptr, mode, value int32)
	glfwRawMouseMotionSupported func() int32
	glfwGetKeyName              func(key, scancode int32) string
	glfwGetKeyScancode          func(key int32) int32
	glfwGetKey                  func(w uintptr, key int32) int32
	glfwGetMouseButton          func(w uintptr, button int32) int32
	glfwGetCursorPos            func(w uintptr, x, y *float64)
	glfwSetCursorPos            func(w uintptr, x, y float64)
	glfwGetClipboardString      func(w uintptr) string
	glfwSetClipboardString      func(w uintptr, s string)

	glfwCreateCursor         func(image unsafe.Pointer, xhot, yhot int32) uintptr
	glfwCreateStandardCursor func(shape int32) uintptr
	glfwDestroyCursor        func(c uintptr)
	glfwSetCursor            func(w, c uintptr)

	glfwMakeContextCurrent func(w uintptr)
	glfwGetCurrentContext  func() uintptr
	glfwSwapBuffers        func(w uintptr)
	glfwSwapInterval       func(interval int32)
	glfwExtensionSupported func(ext string) int32
	glfwGetProcAddress     func(name string) uintptr

	glfwJoystickPresent        func(jid int32) int32
	glfwGetJoystickAxes        func(jid int32, count *int32) unsafe.Pointer
	glfwGetJoystickButtons     func(jid int32, count *int32) unsafe.Pointer
	glfwGetJoystickHats        func(jid int32, count *int32) unsafe.Pointer
	glfwGetJoystickName        func(jid int32) string
	glfwGetJoystickGUID        func(jid int32) string
	glfwJoystickIsGamepad      func(jid int32) int32
	glfwGetGamepadName         func(jid int32) string
	glfwGetGamepadState        func(jid int32, state unsafe.Pointer) int32
	glfwUpdateGamepadMappings  func(mappings string) int32
	glfwSetJoystickCallback    func(cb uintptr) uintptr
	glfwVulkanSupported        func() int32
	glfwGetRequiredInstanceExt func(count *uint32) unsafe.Pointer
	glfwGetInstanceProcAddress func(instance uintptr, name string) uintptr
	glfwGetPhysicalDevicePres  func(instance, device uintptr, family uint32) int32
	glfwCreateWindowSurface    func(instance, w, allocator uintptr, surface *uint64) int32
)

// Per-window callback setters, indexed by callbackSlot.
var windowCallbackSetters [numCallbackSlots]func(w, cb uintptr) uintptr

type symbol struct {
	fptr     any
	name     string
	optional bool
}

// symbols lists every function registered at load time. Entries marked
// optional were added in GLFW 3.4; everything else exists since 3.3.
func symbols() []symbol {
	return []symbol{
		{&glfwInit, "glfwInit", false},
		{&glfwTerminate, "glfwTerminate", false},
		{&glfwInitHint, "glfwInitHint", false},
		{&glfwSetErrorCallback, "glfwSetErrorCallback", false},
		{&glfwGetVersion, "glfwGetVersion", false},
		{&glfwGetVersionString, "glfwGetVersionString", false},
		{&glfwGetPlatform, "glfwGetPlatform", true},
		{&glfwPlatformSupported, "glfwPlatformSupported", true},

		{&glfwGetTime, "glfwGetTime", false},
		{&glfwSetTime, "glfwSetTime", false},
		{&glfwPollEvents, "glfwPollEvents", false},
		{&glfwWaitEvents, "glfwWaitEvents", false},
		{&glfwWaitEventsTimeout, "glfwWaitEventsTimeout", false},
		{&glfwPostEmptyEvent, "glfwPostEmptyEvent", false},

		{&glfwGetMonitors, "glfwGetMonitors", false},
		{&glfwGetPrimaryMonitor, "glfwGetPrimaryMonitor", false},
		{&glfwSetMonitorCallback, "glfwSetMonitorCallback", false},
		{&glfwGetMonitorPos, "glfwGetMonitorPos", false},
		{&glfwGetMonitorWorkarea, "glfwGetMonitorWorkarea", false},
		{&glfwGetMonitorPhysicalSize, "glfwGetMonitorPhysicalSize", false},
		{&glfwGetMonitorContentScale, "glfwGetMonitorContentScale", false},
		{&glfwGetMonitorName, "glfwGetMonitorName", false},
		{&glfwGetVideoModes, "glfwGetVideoModes", false},
		{&glfwGetVideoMode, "glfwGetVideoMode", false},
		{&glfwSetGamma, "glfwSetGamma", false},
		{&glfwGetGammaRamp, "glfwGetGammaRamp", false},
		{&glfwSetGammaRamp, "glfwSetGammaRamp", false},

		{&glfwDefaultWindowHints, "glfwDefaultWindowHints", false},
		{&glfwWindowHint, "glfwWindowHint", false},
		{&glfwWindowHintString, "glfwWindowHintString", false},
		{&glfwCreateWindow, "glfwCreateWindow", false},
		{&glfwDestroyWindow, "glfwDestroyWindow", false},
		{&glfwWindowShouldClose, "glfwWindowShouldClose", false},
		{&glfwSetWindowShouldClose, "glfwSetWindowShouldClose", false},
		{&glfwGetWindowTitle, "glfwGetWindowTitle", true},
		{&glfwSetWindowTitle, "glfwSetWindowTitle", false},
		{&glfwSetWindowIcon, "glfwSetWindowIcon", false},
		{&glfwGetWindowPos, "glfwGetWindowPos", false},
		{&glfwSetWindowPos, "glfwSetWindowPos", false},
		{&glfwGetWindowSize, "glfwGetWindowSize", false},
		{&glfwSetWindowSize, "glfwSetWindowSize", false},
		{&glfwSetWindowSizeLimits, "glfwSetWindowSizeLimits", false},
		{&glfwSetWindowAspectRatio, "glfwSetWindowAspectRatio", false},
		{&glfwGetFramebufferSize, "glfwGetFramebufferSize", false},
		{&glfwGetWindowFrameSize, "glfwGetWindowFrameSize", false},
		{&glfwGetWindowContentScale, "glfwGetWindowContentScale", false},
		{&glfwGetWindowOpacity, "glfwGetWindowOpacity", false},
		{&glfwSetWindowOpacity, "glfwSetWindowOpacity", false},
		{&glfwIconifyWindow, "glfwIconifyWindow", false},
		{&glfwRestoreWindow, "glfwRestoreWindow", false},
		{&glfwMaximizeWindow, "glfwMaximizeWindow", false},
		{&glfwShowWindow, "glfwShowWindow", false},
		{&glfwHideWindow, "glfwHideWindow", false},
		{&glfwFocusWindow, "glfwFocusWindow", false},
		{&glfwRequestWindowAttention, "glfwRequestWindowAttention", false},
		{&glfwGetWindowMonitor, "glfwGetWindowMonitor", false},
		{&glfwSetWindowMonitor, "glfwSetWindowMonitor", false},
		{&glfwGetWindowAttrib, "glfwGetWindowAttrib", false},
		{&glfwSetWindowAttrib, "glfwSetWindowAttrib", false},
		{&glfwGetInputMode, "glfwGetInputMode", false},
		{&glfwSetInputMode, "glfwSetInputMode", false},
		{&glfwRawMouseMotionSupported, "glfwRawMouseMotionSupported", false},
		{&glfwGetKeyName, "glfwGetKeyName", false},
		{&glfwGetKeyScancode, "glfwGetKeyScancode", false},
		{&glfwGetKey, "glfwGetKey", false},
		{&glfwGetMouseButton, "glfwGetMouseButton", false},
		{&glfwGetCursorPos, "glfwGetCursorPos", false},
		{&glfwSetCursorPos, "glfwSetCursorPos", false},
		{&glfwGetClipboardString, "glfwGetClipboardString", false},
		{&glfwSetClipboardString, "glfwSetClipboardString", false},

		{&glfwCreateCursor, "glfwCreateCursor", false},
		{&glfwCreateStandardCursor, "glfwCreateStandardCursor", false},
		{&glfwDestroyCursor, "glfwDestroyCursor", false},
		{&glfwSetCursor, "glfwSetCursor", false},

		{&glfwMakeContextCurrent, "glfwMakeContextCurrent", false},
		{&glfwGetCurrentContext, "glfwGetCurrentContext", false},
		{&glfwSwapBuffers, "glfwSwapBuffers", false},
		{&glfwSwapInterval, "glfwSwapInterval", false},
		{&glfwExtensionSupported, "glfwExtensionSupported", false},
		{&glfwGetProcAddress, "glfwGetProcAddress", false},

		{&glfwJoystickPresent, "glfwJoystickPresent", false},
		{&glfwGetJoystickAxes, "glfwGetJoystickAxes", false},
		{&glfwGetJoystickButtons, "glfwGetJoystickButtons", false},
		{&glfwGetJoystickHats, "glfwGetJoystickHats", false},
		{&glfwGetJoystickName, "glfwGetJoystickName", false},
		{&glfwGetJoystickGUID, "glfwGetJoystickGUID", false},
		{&glfwJoystickIsGamepad, "glfwJoystickIsGamepad", false},
		{&glfwGetGamepadName, "glfwGetGamepadName", false},
		{&glfwGetGamepadState, "glfwGetGamepadState", false},
		{&glfwUpdateGamepadMappings, "glfwUpdateGamepadMappings", false},
		{&glfwSetJoystickCallback, "glfwSetJoystickCallback", false},

		{&glfwVulkanSupported, "glfwVulkanSupported", false},
		{&glfwGetRequiredInstanceExt, "glfwGetRequiredInstanceExtensions", false},
		{&glfwGetInstanceProcAddress, "glfwGetInstanceProcAddress", false},
		{&glfwGetPhysicalDevicePres, "glfwGetPhysicalDevicePresentationSupport", false},
		{&glfwCreateWindowSurface, "glfwCreateWindowSurface", false},

		{&windowCallbackSetters[slotPos], "glfwSetWindowPosCallback", false},
		{&windowCallbackSetters[slotSize], "glfwSetWindowSizeCallback", false},
		{&windowCallbackSetters[slotClose], "glfwSetWindowCloseCallback", false},
		{&windowCallbackSetters[slotRefresh], "glfwSetWindowRefreshCallback", false},
		{&windowCallbackSetters[slotFocus], "glfwSetWindowFocusCallback", false},
		{&windowCallbackSetters[slotIconify], "glfwSetWindowIconifyCallback", false},
		{&windowCallbackSetters[slotMaximize], "glfwSetWindowMaximizeCallback", false},
		{&windowCallbackSetters[slotFramebufferSize], "glfwSetFramebufferSizeCallback", false},
		{&windowCallbackSetters[slotContentScale], "glfwSetWindowContentScaleCallback", false},
		{&windowCallbackSetters[slotKey], "glfwSetKeyCallback", false},
		{&windowCallbackSetters[slotChar], "glfwSetCharCallback", false},
		{&windowCallbackSetters[slotMouseButton], "glfwSetMouseButtonCallback", false},
		{&windowCallbackSetters[slotCursorPos], "glfwSetCursorPosCallback", false},
		{&windowCallbackSetters[slotCursorEnter], "glfwSetCursorEnterCallback", false},
		{&windowCallbackSetters[slotScroll], "glfwSetScrollCallback", false},
		{&windowCallbackSetters[slotDrop], "glfwSetDropCallback", false},
	}
}

var missingOptional []string

// registerBindings resolves every symbol with Dlsym first so that a missing
// optional function leaves its binding nil instead of panicking inside
// purego.RegisterLibFunc.
func registerBindings(lib uintptr) error {
	missingOptional = missingOptional[:0]
	for _, s := range symbols() {
		addr, err := purego.Dlsym(lib, s.name)
		if err != nil || addr == 0 {
			if s.optional {
				missingOptional = append(missingOptional, s.name)
				continue
			}
			return fmt.Errorf("%w: %s", ErrMissingSymbol, s.name)
		}
		purego.RegisterFunc(s.fptr, addr)
	}
	return nil
}

// MissingOptional lists the optional functions the loaded library lacks.
func MissingOptional() []string {
	return append([]string(nil), missingOptional...)
}

// Platform-specific accessors (glfwGetX11Window and friends) are resolved
// lazily because most builds only carry the ones for their own backend.
var (
	nativeMu    sync.Mutex
	nativeFuncs = map[string]func(uintptr) uintptr{}
	nativeVoid  = map[string]func() uintptr{}
	nativeStr   = map[string]func(uintptr) *byte{}
)

// nullaryNative lists the native accessors that take no argument.
var nullaryNative = map[string]bool{
	"glfwGetX11Display":     true,
	"glfwGetWaylandDisplay": true,
	"glfwGetEGLDisplay":     true,
}

func lookupNative(name string) (func(uintptr) uintptr, bool) {
	nativeMu.Lock()
	defer nativeMu.Unlock()

	if nullaryNative[name] {
		fn, ok := nativeVoid[name]
		if !ok {
			addr, err := purego.Dlsym(libGLFW, name)
			if err != nil || addr == 0 {
				return nil, false
			}
			purego.RegisterFunc(&fn, addr)
			nativeVoid[name] = fn
		}
		return func(uintptr) uintptr { return fn() }, true
	}

	if fn, ok := nativeFuncs[name]; ok {
		return fn, true
	}
	addr, err := purego.Dlsym(libGLFW, name)
	if err != nil || addr == 0 {
		return nil, false
	}
	var fn func(uintptr) uintptr
	purego.RegisterFunc(&fn, addr)
	nativeFuncs[name] = fn
	return fn, true
}

func lookupNativeString(name string) (func(uintptr) *byte, bool) {
	nativeMu.Lock()
	defer nativeMu.Unlock()

	if fn, ok := nativeStr[name]; ok {
		return fn, true
	}
	addr, err := purego.Dlsym(libGLFW, name)
	if err != nil || addr == 0 {
		return nil, false
	}
	var fn func(uintptr) *byte
	purego.RegisterFunc(&fn, addr)
	nativeStr[name] = fn
	return fn, true
}
