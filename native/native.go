// Package native describes the surface of the GLFW C library that glfwgo
// builds on.
//
// A Driver is a thin, unchecked mapping of the C API: it performs no lifetime
// or thread validation and reports failures only through the error callback,
// exactly like the library itself. Two implementations exist: the purego
// bindings that load libglfw at runtime (internal/bindings) and an in-memory
// driver used by tests (internal/fakedriver).
package native

// Monitor is an opaque GLFWmonitor pointer. Zero means no monitor.
type Monitor uintptr

// Window is an opaque GLFWwindow pointer. Zero means no window.
type Window uintptr

// Cursor is an opaque GLFWcursor pointer. Zero means the default cursor.
type Cursor uintptr

// VidMode mirrors GLFWvidmode.
type VidMode struct {
	Width       int
	Height      int
	RedBits     int
	GreenBits   int
	BlueBits    int
	RefreshRate int
}

// GammaRamp mirrors GLFWgammaramp. All three channels have the same length.
type GammaRamp struct {
	Red   []uint16
	Green []uint16
	Blue  []uint16
}

// Image mirrors GLFWimage: Width*Height pixels of 8-bit RGBA, row-major
// starting at the top-left corner.
type Image struct {
	Width  int
	Height int
	Pixels []byte
}

// GamepadState mirrors GLFWgamepadstate.
type GamepadState struct {
	Buttons [GamepadButtonLast + 1]uint8
	Axes    [GamepadAxisLast + 1]float32
}

// ErrorFunc receives every error the library reports, on the thread that
// caused it.
type ErrorFunc func(code int, description string)

// MonitorFunc receives monitor connection changes.
type MonitorFunc func(monitor Monitor, event int)

// JoystickFunc receives joystick connection changes.
type JoystickFunc func(jid int, event int)

// WindowCallbacks holds the per-window callbacks. Nil fields are not
// delivered.
type WindowCallbacks struct {
	Pos             func(x, y int)
	Size            func(width, height int)
	Close           func()
	Refresh         func()
	Focus           func(focused bool)
	Iconify         func(iconified bool)
	Maximize        func(maximized bool)
	FramebufferSize func(width, height int)
	ContentScale    func(x, y float32)
	Key             func(key, scancode, action, mods int)
	Char            func(r rune)
	MouseButton     func(button, action, mods int)
	CursorPos       func(x, y float64)
	CursorEnter     func(entered bool)
	Scroll          func(x, y float64)
	Drop            func(paths []string)
}

// Driver is the GLFW C API.
type Driver interface {
	Init() bool
	Terminate()
	InitHint(hint, value int)
	SetErrorCallback(cb ErrorFunc)
	GetVersion() (major, minor, rev int)
	GetVersionString() string
	GetPlatform() int
	PlatformSupported(platform int) bool

	GetTime() float64
	SetTime(t float64)
	PollEvents()
	WaitEvents()
	WaitEventsTimeout(timeout float64)
	PostEmptyEvent()

	GetMonitors() []Monitor
	GetPrimaryMonitor() Monitor
	SetMonitorCallback(cb MonitorFunc)
	GetMonitorPos(m Monitor) (x, y int)
	GetMonitorWorkarea(m Monitor) (x, y, width, height int)
	GetMonitorPhysicalSize(m Monitor) (widthMM, heightMM int)
	GetMonitorContentScale(m Monitor) (x, y float32)
	GetMonitorName(m Monitor) string
	GetVideoModes(m Monitor) []VidMode
	GetVideoMode(m Monitor) (VidMode, bool)
	SetGamma(m Monitor, gamma float32)
	GetGammaRamp(m Monitor) (GammaRamp, bool)
	SetGammaRamp(m Monitor, ramp GammaRamp)

	DefaultWindowHints()
	WindowHint(hint, value int)
	WindowHintString(hint int, value string)
	CreateWindow(width, height int, title string, monitor Monitor, share Window) Window
	DestroyWindow(w Window)
	SetWindowCallbacks(w Window, cbs *WindowCallbacks)
	WindowShouldClose(w Window) bool
	SetWindowShouldClose(w Window, value bool)
	GetWindowTitle(w Window) string
	SetWindowTitle(w Window, title string)
	SetWindowIcon(w Window, images []Image)
	GetWindowPos(w Window) (x, y int)
	SetWindowPos(w Window, x, y int)
	GetWindowSize(w Window) (width, height int)
	SetWindowSize(w Window, width, height int)
	SetWindowSizeLimits(w Window, minWidth, minHeight, maxWidth, maxHeight int)
	SetWindowAspectRatio(w Window, numer, denom int)
	GetFramebufferSize(w Window) (width, height int)
	GetWindowFrameSize(w Window) (left, top, right, bottom int)
	GetWindowContentScale(w Window) (x, y float32)
	GetWindowOpacity(w Window) float32
	SetWindowOpacity(w Window, opacity float32)
	IconifyWindow(w Window)
	RestoreWindow(w Window)
	MaximizeWindow(w Window)
	ShowWindow(w Window)
	HideWindow(w Window)
	FocusWindow(w Window)
	RequestWindowAttention(w Window)
	GetWindowMonitor(w Window) Monitor
	SetWindowMonitor(w Window, m Monitor, x, y, width, height, refreshRate int)
	GetWindowAttrib(w Window, attrib int) int
	SetWindowAttrib(w Window, attrib, value int)
	GetInputMode(w Window, mode int) int
	SetInputMode(w Window, mode, value int)
	RawMouseMotionSupported() bool
	GetKeyName(key, scancode int) string
	GetKeyScancode(key int) int
	GetKey(w Window, key int) int
	GetMouseButton(w Window, button int) int
	GetCursorPos(w Window) (x, y float64)
	SetCursorPos(w Window, x, y float64)
	GetClipboardString(w Window) string
	SetClipboardString(w Window, s string)

	CreateCursor(img Image, xhot, yhot int) Cursor
	CreateStandardCursor(shape int) Cursor
	DestroyCursor(c Cursor)
	SetCursor(w Window, c Cursor)

	MakeContextCurrent(w Window)
	GetCurrentContext() Window
	SwapBuffers(w Window)
	SwapInterval(interval int)
	ExtensionSupported(extension string) bool
	GetProcAddress(name string) uintptr

	JoystickPresent(jid int) bool
	GetJoystickAxes(jid int) []float32
	GetJoystickButtons(jid int) []byte
	GetJoystickHats(jid int) []byte
	GetJoystickName(jid int) string
	GetJoystickGUID(jid int) string
	JoystickIsGamepad(jid int) bool
	GetGamepadName(jid int) string
	GetGamepadState(jid int) (GamepadState, bool)
	UpdateGamepadMappings(mappings string) bool
	SetJoystickCallback(cb JoystickFunc)

	VulkanSupported() bool
	GetRequiredInstanceExtensions() []string
	GetInstanceProcAddress(instance uintptr, name string) uintptr
	GetPhysicalDevicePresentationSupport(instance, device uintptr, queueFamily uint32) bool
	CreateWindowSurface(instance uintptr, w Window, allocator uintptr) (surface uint64, result int32)

	// NativeHandle calls one of the glfwGet<Platform><Thing> accessors by
	// symbol name. handle is the window or monitor argument and is ignored
	// by accessors that take none. ok is false when the library was built
	// without that accessor.
	NativeHandle(symbol string, handle uintptr) (value uintptr, ok bool)

	// NativeString is NativeHandle for the accessors that return a
	// UTF-8 string, such as glfwGetWin32Adapter.
	NativeString(symbol string, handle uintptr) (value string, ok bool)
}
