//go:build !ios && !android && (amd64 || arm64)

package bindings

import (
	"runtime"
	"unsafe"

	"github.com/obinnaokechukwu/glfwgo/native"
)

// driver implements native.Driver on top of the registered bindings.
type driver struct{}

var _ native.Driver = (*driver)(nil)

// C layouts of the structs GLFW hands across the boundary.
type cVidMode struct {
	width, height, red, green, blue, refresh int32
}

type cGammaRamp struct {
	red, green, blue *uint16
	size             uint32
}

type cImage struct {
	width, height int32
	pixels        *byte
}

func cBool(v bool) int32 {
	if v {
		return native.True
	}
	return native.False
}

func unimplemented(name string) {
	reportError(native.FeatureUnimplemented, name+" is not provided by the loaded GLFW library")
}

func (*driver) Init() bool                { return glfwBool(glfwInit()) }
func (*driver) Terminate()                { glfwTerminate() }
func (*driver) InitHint(hint, value int)  { glfwInitHint(int32(hint), int32(value)) }
func (*driver) SetErrorCallback(cb native.ErrorFunc) { setErrorCallback(cb) }

func (*driver) GetVersion() (major, minor, rev int) {
	var ma, mi, re int32
	glfwGetVersion(&ma, &mi, &re)
	return int(ma), int(mi), int(re)
}

func (*driver) GetVersionString() string { return glfwGetVersionString() }

func (*driver) GetPlatform() int {
	if glfwGetPlatform == nil {
		unimplemented("glfwGetPlatform")
		return 0
	}
	return int(glfwGetPlatform())
}

func (*driver) PlatformSupported(platform int) bool {
	if glfwPlatformSupported == nil {
		unimplemented("glfwPlatformSupported")
		return false
	}
	return glfwBool(glfwPlatformSupported(int32(platform)))
}

func (*driver) GetTime() float64                  { return glfwGetTime() }
func (*driver) SetTime(t float64)                 { glfwSetTime(t) }
func (*driver) PollEvents()                       { glfwPollEvents() }
func (*driver) WaitEvents()                       { glfwWaitEvents() }
func (*driver) WaitEventsTimeout(timeout float64) { glfwWaitEventsTimeout(timeout) }
func (*driver) PostEmptyEvent()                   { glfwPostEmptyEvent() }

func (*driver) GetMonitors() []native.Monitor {
	var count int32
	p := glfwGetMonitors(&count)
	if p == nil || count <= 0 {
		return nil
	}
	raw := unsafe.Slice((*uintptr)(p), count)
	out := make([]native.Monitor, count)
	for i, m := range raw {
		out[i] = native.Monitor(m)
	}
	return out
}

func (*driver) GetPrimaryMonitor() native.Monitor       { return native.Monitor(glfwGetPrimaryMonitor()) }
func (*driver) SetMonitorCallback(cb native.MonitorFunc) { setMonitorCallback(cb) }

func (*driver) GetMonitorPos(m native.Monitor) (x, y int) {
	var cx, cy int32
	glfwGetMonitorPos(uintptr(m), &cx, &cy)
	return int(cx), int(cy)
}

func (*driver) GetMonitorWorkarea(m native.Monitor) (x, y, width, height int) {
	var cx, cy, cw, ch int32
	glfwGetMonitorWorkarea(uintptr(m), &cx, &cy, &cw, &ch)
	return int(cx), int(cy), int(cw), int(ch)
}

func (*driver) GetMonitorPhysicalSize(m native.Monitor) (widthMM, heightMM int) {
	var cw, ch int32
	glfwGetMonitorPhysicalSize(uintptr(m), &cw, &ch)
	return int(cw), int(ch)
}

func (*driver) GetMonitorContentScale(m native.Monitor) (x, y float32) {
	glfwGetMonitorContentScale(uintptr(m), &x, &y)
	return x, y
}

func (*driver) GetMonitorName(m native.Monitor) string { return glfwGetMonitorName(uintptr(m)) }

func toVidMode(c *cVidMode) native.VidMode {
	return native.VidMode{
		Width:       int(c.width),
		Height:      int(c.height),
		RedBits:     int(c.red),
		GreenBits:   int(c.green),
		BlueBits:    int(c.blue),
		RefreshRate: int(c.refresh),
	}
}

func (*driver) GetVideoModes(m native.Monitor) []native.VidMode {
	var count int32
	p := glfwGetVideoModes(uintptr(m), &count)
	if p == nil || count <= 0 {
		return nil
	}
	modes := unsafe.Slice((*cVidMode)(p), count)
	out := make([]native.VidMode, count)
	for i := range modes {
		out[i] = toVidMode(&modes[i])
	}
	return out
}

func (*driver) GetVideoMode(m native.Monitor) (native.VidMode, bool) {
	p := glfwGetVideoMode(uintptr(m))
	if p == nil {
		return native.VidMode{}, false
	}
	return toVidMode((*cVidMode)(p)), true
}

func (*driver) SetGamma(m native.Monitor, gamma float32) { glfwSetGamma(uintptr(m), gamma) }

func (*driver) GetGammaRamp(m native.Monitor) (native.GammaRamp, bool) {
	p := glfwGetGammaRamp(uintptr(m))
	if p == nil {
		return native.GammaRamp{}, false
	}
	c := (*cGammaRamp)(p)
	n := int(c.size)
	ramp := native.GammaRamp{
		Red:   make([]uint16, n),
		Green: make([]uint16, n),
		Blue:  make([]uint16, n),
	}
	if n > 0 {
		copy(ramp.Red, unsafe.Slice(c.red, n))
		copy(ramp.Green, unsafe.Slice(c.green, n))
		copy(ramp.Blue, unsafe.Slice(c.blue, n))
	}
	return ramp, true
}

func (*driver) SetGammaRamp(m native.Monitor, ramp native.GammaRamp) {
	n := len(ramp.Red)
	if n == 0 || len(ramp.Green) != n || len(ramp.Blue) != n {
		reportError(native.InvalidValue, "gamma ramp channels must be non-empty and equal length")
		return
	}
	var pinner runtime.Pinner
	defer pinner.Unpin()
	pinner.Pin(&ramp.Red[0])
	pinner.Pin(&ramp.Green[0])
	pinner.Pin(&ramp.Blue[0])

	c := cGammaRamp{red: &ramp.Red[0], green: &ramp.Green[0], blue: &ramp.Blue[0], size: uint32(n)}
	glfwSetGammaRamp(uintptr(m), unsafe.Pointer(&c))
}

func (*driver) DefaultWindowHints()                  { glfwDefaultWindowHints() }
func (*driver) WindowHint(hint, value int)           { glfwWindowHint(int32(hint), int32(value)) }
func (*driver) WindowHintString(hint int, value string) { glfwWindowHintString(int32(hint), value) }

func (*driver) CreateWindow(width, height int, title string, monitor native.Monitor, share native.Window) native.Window {
	return native.Window(glfwCreateWindow(int32(width), int32(height), title, uintptr(monitor), uintptr(share)))
}

func (*driver) DestroyWindow(w native.Window) {
	windowCallbacks.Unregister(w)
	glfwDestroyWindow(uintptr(w))
}

func (*driver) SetWindowCallbacks(w native.Window, cbs *native.WindowCallbacks) {
	setWindowCallbacks(w, cbs)
}

func (*driver) WindowShouldClose(w native.Window) bool {
	return glfwBool(glfwWindowShouldClose(uintptr(w)))
}

func (*driver) SetWindowShouldClose(w native.Window, value bool) {
	glfwSetWindowShouldClose(uintptr(w), cBool(value))
}

func (*driver) GetWindowTitle(w native.Window) string {
	if glfwGetWindowTitle == nil {
		unimplemented("glfwGetWindowTitle")
		return ""
	}
	return glfwGetWindowTitle(uintptr(w))
}

func (*driver) SetWindowTitle(w native.Window, title string) { glfwSetWindowTitle(uintptr(w), title) }

// pinImages builds a C GLFWimage array over Go memory. The caller must keep
// pinner alive until the C call returns.
func pinImages(pinner *runtime.Pinner, images []native.Image) []cImage {
	out := make([]cImage, len(images))
	for i, img := range images {
		out[i] = cImage{width: int32(img.Width), height: int32(img.Height)}
		if len(img.Pixels) > 0 {
			pinner.Pin(&img.Pixels[0])
			out[i].pixels = &img.Pixels[0]
		}
	}
	if len(out) > 0 {
		pinner.Pin(&out[0])
	}
	return out
}

func (*driver) SetWindowIcon(w native.Window, images []native.Image) {
	if len(images) == 0 {
		glfwSetWindowIcon(uintptr(w), 0, nil)
		return
	}
	var pinner runtime.Pinner
	defer pinner.Unpin()
	cimgs := pinImages(&pinner, images)
	glfwSetWindowIcon(uintptr(w), int32(len(cimgs)), unsafe.Pointer(&cimgs[0]))
}

func (*driver) GetWindowPos(w native.Window) (x, y int) {
	var cx, cy int32
	glfwGetWindowPos(uintptr(w), &cx, &cy)
	return int(cx), int(cy)
}

func (*driver) SetWindowPos(w native.Window, x, y int) {
	glfwSetWindowPos(uintptr(w), int32(x), int32(y))
}

func (*driver) GetWindowSize(w native.Window) (width, height int) {
	var cw, ch int32
	glfwGetWindowSize(uintptr(w), &cw, &ch)
	return int(cw), int(ch)
}

func (*driver) SetWindowSize(w native.Window, width, height int) {
	glfwSetWindowSize(uintptr(w), int32(width), int32(height))
}

func (*driver) SetWindowSizeLimits(w native.Window, minWidth, minHeight, maxWidth, maxHeight int) {
	glfwSetWindowSizeLimits(uintptr(w), int32(minWidth), int32(minHeight), int32(maxWidth), int32(maxHeight))
}

func (*driver) SetWindowAspectRatio(w native.Window, numer, denom int) {
	glfwSetWindowAspectRatio(uintptr(w), int32(numer), int32(denom))
}

func (*driver) GetFramebufferSize(w native.Window) (width, height int) {
	var cw, ch int32
	glfwGetFramebufferSize(uintptr(w), &cw, &ch)
	return int(cw), int(ch)
}

func (*driver) GetWindowFrameSize(w native.Window) (left, top, right, bottom int) {
	var l, t, r, b int32
	glfwGetWindowFrameSize(uintptr(w), &l, &t, &r, &b)
	return int(l), int(t), int(r), int(b)
}

func (*driver) GetWindowContentScale(w native.Window) (x, y float32) {
	glfwGetWindowContentScale(uintptr(w), &x, &y)
	return x, y
}

func (*driver) GetWindowOpacity(w native.Window) float32 { return glfwGetWindowOpacity(uintptr(w)) }
func (*driver) SetWindowOpacity(w native.Window, opacity float32) {
	glfwSetWindowOpacity(uintptr(w), opacity)
}

func (*driver) IconifyWindow(w native.Window)          { glfwIconifyWindow(uintptr(w)) }
func (*driver) RestoreWindow(w native.Window)          { glfwRestoreWindow(uintptr(w)) }
func (*driver) MaximizeWindow(w native.Window)         { glfwMaximizeWindow(uintptr(w)) }
func (*driver) ShowWindow(w native.Window)             { glfwShowWindow(uintptr(w)) }
func (*driver) HideWindow(w native.Window)             { glfwHideWindow(uintptr(w)) }
func (*driver) FocusWindow(w native.Window)            { glfwFocusWindow(uintptr(w)) }
func (*driver) RequestWindowAttention(w native.Window) { glfwRequestWindowAttention(uintptr(w)) }

func (*driver) GetWindowMonitor(w native.Window) native.Monitor {
	return native.Monitor(glfwGetWindowMonitor(uintptr(w)))
}

func (*driver) SetWindowMonitor(w native.Window, m native.Monitor, x, y, width, height, refreshRate int) {
	glfwSetWindowMonitor(uintptr(w), uintptr(m), int32(x), int32(y), int32(width), int32(height), int32(refreshRate))
}

func (*driver) GetWindowAttrib(w native.Window, attrib int) int {
	return int(glfwGetWindowAttrib(uintptr(w), int32(attrib)))
}

func (*driver) SetWindowAttrib(w native.Window, attrib, value int) {
	glfwSetWindowAttrib(uintptr(w), int32(attrib), int32(value))
}

func (*driver) GetInputMode(w native.Window, mode int) int {
	return int(glfwGetInputMode(uintptr(w), int32(mode)))
}

func (*driver) SetInputMode(w native.Window, mode, value int) {
	glfwSetInputMode(uintptr(w), int32(mode), int32(value))
}

func (*driver) RawMouseMotionSupported() bool { return glfwBool(glfwRawMouseMotionSupported()) }

func (*driver) GetKeyName(key, scancode int) string {
	return glfwGetKeyName(int32(key), int32(scancode))
}

func (*driver) GetKeyScancode(key int) int { return int(glfwGetKeyScancode(int32(key))) }

func (*driver) GetKey(w native.Window, key int) int {
	return int(glfwGetKey(uintptr(w), int32(key)))
}

func (*driver) GetMouseButton(w native.Window, button int) int {
	return int(glfwGetMouseButton(uintptr(w), int32(button)))
}

func (*driver) GetCursorPos(w native.Window) (x, y float64) {
	glfwGetCursorPos(uintptr(w), &x, &y)
	return x, y
}

func (*driver) SetCursorPos(w native.Window, x, y float64) { glfwSetCursorPos(uintptr(w), x, y) }

func (*driver) GetClipboardString(w native.Window) string {
	return glfwGetClipboardString(uintptr(w))
}

func (*driver) SetClipboardString(w native.Window, s string) {
	glfwSetClipboardString(uintptr(w), s)
}

func (*driver) CreateCursor(img native.Image, xhot, yhot int) native.Cursor {
	var pinner runtime.Pinner
	defer pinner.Unpin()
	cimgs := pinImages(&pinner, []native.Image{img})
	return native.Cursor(glfwCreateCursor(unsafe.Pointer(&cimgs[0]), int32(xhot), int32(yhot)))
}

func (*driver) CreateStandardCursor(shape int) native.Cursor {
	return native.Cursor(glfwCreateStandardCursor(int32(shape)))
}

func (*driver) DestroyCursor(c native.Cursor)           { glfwDestroyCursor(uintptr(c)) }
func (*driver) SetCursor(w native.Window, c native.Cursor) { glfwSetCursor(uintptr(w), uintptr(c)) }

func (*driver) MakeContextCurrent(w native.Window) { glfwMakeContextCurrent(uintptr(w)) }
func (*driver) GetCurrentContext() native.Window   { return native.Window(glfwGetCurrentContext()) }
func (*driver) SwapBuffers(w native.Window)        { glfwSwapBuffers(uintptr(w)) }
func (*driver) SwapInterval(interval int)          { glfwSwapInterval(int32(interval)) }

func (*driver) ExtensionSupported(extension string) bool {
	return glfwBool(glfwExtensionSupported(extension))
}

func (*driver) GetProcAddress(name string) uintptr { return glfwGetProcAddress(name) }

func (*driver) JoystickPresent(jid int) bool { return glfwBool(glfwJoystickPresent(int32(jid))) }

func (*driver) GetJoystickAxes(jid int) []float32 {
	var count int32
	p := glfwGetJoystickAxes(int32(jid), &count)
	if p == nil || count <= 0 {
		return nil
	}
	return append([]float32(nil), unsafe.Slice((*float32)(p), count)...)
}

func (*driver) GetJoystickButtons(jid int) []byte {
	var count int32
	p := glfwGetJoystickButtons(int32(jid), &count)
	if p == nil || count <= 0 {
		return nil
	}
	return append([]byte(nil), unsafe.Slice((*byte)(p), count)...)
}

func (*driver) GetJoystickHats(jid int) []byte {
	var count int32
	p := glfwGetJoystickHats(int32(jid), &count)
	if p == nil || count <= 0 {
		return nil
	}
	return append([]byte(nil), unsafe.Slice((*byte)(p), count)...)
}

func (*driver) GetJoystickName(jid int) string { return glfwGetJoystickName(int32(jid)) }
func (*driver) GetJoystickGUID(jid int) string { return glfwGetJoystickGUID(int32(jid)) }

func (*driver) JoystickIsGamepad(jid int) bool {
	return glfwBool(glfwJoystickIsGamepad(int32(jid)))
}

func (*driver) GetGamepadName(jid int) string { return glfwGetGamepadName(int32(jid)) }

// GetGamepadState relies on native.GamepadState sharing GLFWgamepadstate's
// layout: 15 bytes, one byte of padding, then six floats.
func (*driver) GetGamepadState(jid int) (native.GamepadState, bool) {
	var state native.GamepadState
	ok := glfwBool(glfwGetGamepadState(int32(jid), unsafe.Pointer(&state)))
	return state, ok
}

func (*driver) UpdateGamepadMappings(mappings string) bool {
	return glfwBool(glfwUpdateGamepadMappings(mappings))
}

func (*driver) SetJoystickCallback(cb native.JoystickFunc) { setJoystickCallback(cb) }

func (*driver) VulkanSupported() bool { return glfwBool(glfwVulkanSupported()) }

func (*driver) GetRequiredInstanceExtensions() []string {
	var count uint32
	p := glfwGetRequiredInstanceExt(&count)
	if p == nil || count == 0 {
		return nil
	}
	names := unsafe.Slice((**byte)(p), count)
	out := make([]string, count)
	for i, n := range names {
		out[i] = goString(n)
	}
	return out
}

func (*driver) GetInstanceProcAddress(instance uintptr, name string) uintptr {
	return glfwGetInstanceProcAddress(instance, name)
}

func (*driver) GetPhysicalDevicePresentationSupport(instance, device uintptr, queueFamily uint32) bool {
	return glfwBool(glfwGetPhysicalDevicePres(instance, device, queueFamily))
}

func (*driver) CreateWindowSurface(instance uintptr, w native.Window, allocator uintptr) (uint64, int32) {
	var surface uint64
	result := glfwCreateWindowSurface(instance, uintptr(w), allocator, &surface)
	return surface, result
}

func (*driver) NativeHandle(symbol string, handle uintptr) (uintptr, bool) {
	fn, ok := lookupNative(symbol)
	if !ok {
		return 0, false
	}
	return fn(handle), true
}

func (*driver) NativeString(symbol string, handle uintptr) (string, bool) {
	fn, ok := lookupNativeString(symbol)
	if !ok {
		return "", false
	}
	return goString(fn(handle)), true
}
