package fakedriver

import (
	"fmt"
	"strings"

	"github.com/obinnaokechukwu/glfwgo/internal/thread"
	"github.com/obinnaokechukwu/glfwgo/native"
)

// defaultHints are the values glfwDefaultWindowHints restores.
func defaultHints() map[int]int {
	return map[int]int{
		native.Resizable:           native.True,
		native.Visible:             native.True,
		native.Decorated:           native.True,
		native.Focused:             native.True,
		native.AutoIconify:         native.True,
		native.FocusOnShow:         native.True,
		native.Doublebuffer:        native.True,
		native.ClientAPI:           native.OpenGLAPI,
		native.ContextCreationAPI:  native.NativeContextAPI,
		native.ContextVersionMajor: 1,
		native.ContextVersionMinor: 0,
		native.PositionX:           native.AnyPosition,
		native.PositionY:           native.AnyPosition,
		native.RefreshRate:         native.DontCare,
	}
}

// windowAttribs are the hints that become queryable attributes.
var windowAttribs = []int{
	native.Resizable, native.Visible, native.Decorated, native.Focused,
	native.AutoIconify, native.Floating, native.Maximized, native.TransparentFramebuffer,
	native.FocusOnShow, native.MousePassthrough, native.ClientAPI, native.ContextCreationAPI,
	native.ContextVersionMajor, native.ContextVersionMinor, native.OpenGLForwardCompat,
	native.ContextDebug, native.OpenGLProfile, native.ContextRobustness,
	native.ContextReleaseBehavior, native.Doublebuffer,
}

// settableAttribs may be changed after creation.
var settableAttribs = map[int]bool{
	native.Decorated:        true,
	native.Resizable:        true,
	native.Floating:         true,
	native.AutoIconify:      true,
	native.FocusOnShow:      true,
	native.MousePassthrough: true,
}

func (d *Driver) hintValue(hint int) int {
	if v, ok := d.hints[hint]; ok {
		return v
	}
	return defaultHints()[hint]
}

func (d *Driver) DefaultWindowHints() {
	if !d.enter("DefaultWindowHints") {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hints = make(map[int]int)
	d.strHints = make(map[int]string)
}

func (d *Driver) WindowHint(hint, value int) {
	if !d.enter("WindowHint") {
		return
	}
	if hint>>16 != 0x2 {
		d.report(native.InvalidEnum, fmt.Sprintf("Invalid window hint 0x%08X", hint))
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hints[hint] = value
}

// WindowHintValue returns the hint value the next window would be created
// with.
func (d *Driver) WindowHintValue(hint int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hintValue(hint)
}

// WindowHintStringValue returns the pending string hint.
func (d *Driver) WindowHintStringValue(hint int) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.strHints[hint]
}

func (d *Driver) WindowHintString(hint int, value string) {
	if !d.enter("WindowHintString") {
		return
	}
	switch hint {
	case native.CocoaFrameName, native.X11ClassName, native.X11InstanceName, native.WaylandAppID:
	default:
		d.report(native.InvalidEnum, fmt.Sprintf("Invalid window hint string 0x%08X", hint))
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.strHints[hint] = value
}

func (d *Driver) CreateWindow(width, height int, title string, monitor native.Monitor, share native.Window) native.Window {
	if !d.enter("CreateWindow") {
		return 0
	}
	if width <= 0 || height <= 0 {
		d.report(native.InvalidValue, fmt.Sprintf("Invalid window size %dx%d", width, height))
		return 0
	}

	d.mu.Lock()
	if monitor != 0 && d.findMonitor(monitor) == nil {
		d.mu.Unlock()
		d.report(native.PlatformError, "CreateWindow: unknown monitor")
		return 0
	}
	if share != 0 {
		if _, ok := d.windows[share]; !ok {
			d.mu.Unlock()
			d.report(native.InvalidValue, "CreateWindow: unknown share window")
			return 0
		}
	}
	w := &window{
		handle:     native.Window(d.newHandle()),
		title:      title,
		width:      width,
		height:     height,
		minW:       native.DontCare,
		minH:       native.DontCare,
		maxW:       native.DontCare,
		maxH:       native.DontCare,
		aspectNum:  native.DontCare,
		aspectDen:  native.DontCare,
		opacity:    1,
		monitor:    monitor,
		attribs:    make(map[int]int),
		inputModes: map[int]int{native.CursorMode: native.CursorNormal},
		keys:       make(map[int]int),
		buttons:    make(map[int]int),
	}
	if x := d.hintValue(native.PositionX); x != native.AnyPosition {
		w.x = x
	}
	if y := d.hintValue(native.PositionY); y != native.AnyPosition {
		w.y = y
	}
	for _, attrib := range windowAttribs {
		w.attribs[attrib] = d.hintValue(attrib)
	}
	d.windows[w.handle] = w
	d.mu.Unlock()
	return w.handle
}

func (d *Driver) DestroyWindow(w native.Window) {
	if !d.enter("DestroyWindow") {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.windows, w)
	delete(d.surfaces, w)
	for id, cur := range d.current {
		if cur == w {
			delete(d.current, id)
		}
	}
}

// WindowCount returns the number of live windows.
func (d *Driver) WindowCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.windows)
}

// WindowExists reports whether w has not been destroyed.
func (d *Driver) WindowExists(w native.Window) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.windows[w]
	return ok
}

// windowOp looks up w. Unknown handles are reported as invalid values.
func (d *Driver) windowOp(function string, w native.Window) (*window, bool) {
	if !d.enter(function) {
		return nil, false
	}
	d.mu.Lock()
	win, ok := d.windows[w]
	d.mu.Unlock()
	if !ok {
		d.report(native.InvalidValue, fmt.Sprintf("%s: unknown window 0x%x", function, uintptr(w)))
		return nil, false
	}
	return win, true
}

func (d *Driver) SetWindowCallbacks(w native.Window, cbs *native.WindowCallbacks) {
	win, ok := d.windowOp("SetWindowCallbacks", w)
	if !ok {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	win.callbacks = cbs
}

func (d *Driver) WindowShouldClose(w native.Window) bool {
	win, ok := d.windowOp("WindowShouldClose", w)
	if !ok {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return win.shouldClose
}

func (d *Driver) SetWindowShouldClose(w native.Window, value bool) {
	win, ok := d.windowOp("SetWindowShouldClose", w)
	if !ok {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	win.shouldClose = value
}

func (d *Driver) GetWindowTitle(w native.Window) string {
	win, ok := d.windowOp("GetWindowTitle", w)
	if !ok {
		return ""
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return win.title
}

func (d *Driver) SetWindowTitle(w native.Window, title string) {
	win, ok := d.windowOp("SetWindowTitle", w)
	if !ok {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	win.title = title
}

func (d *Driver) SetWindowIcon(w native.Window, images []native.Image) {
	win, ok := d.windowOp("SetWindowIcon", w)
	if !ok {
		return
	}
	for _, img := range images {
		if img.Width <= 0 || img.Height <= 0 || len(img.Pixels) != img.Width*img.Height*4 {
			d.report(native.InvalidValue, "Invalid image dimensions for window icon")
			return
		}
	}
	d.mu.Lock()
	unsupported := d.platform == native.PlatformWayland || d.platform == native.PlatformCocoa
	d.mu.Unlock()
	if unsupported {
		d.report(native.FeatureUnavailable, "The platform does not support setting the window icon")
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	win.icons = len(images)
}

// IconCount returns how many images the last SetWindowIcon installed.
func (d *Driver) IconCount(w native.Window) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if win, ok := d.windows[w]; ok {
		return win.icons
	}
	return 0
}

func (d *Driver) GetWindowPos(w native.Window) (x, y int) {
	win, ok := d.windowOp("GetWindowPos", w)
	if !ok {
		return 0, 0
	}
	d.mu.Lock()
	wayland := d.platform == native.PlatformWayland
	d.mu.Unlock()
	if wayland {
		d.report(native.FeatureUnavailable, "Wayland: The platform does not provide the window position")
		return 0, 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return win.x, win.y
}

func (d *Driver) SetWindowPos(w native.Window, x, y int) {
	win, ok := d.windowOp("SetWindowPos", w)
	if !ok {
		return
	}
	d.mu.Lock()
	wayland := d.platform == native.PlatformWayland
	d.mu.Unlock()
	if wayland {
		d.report(native.FeatureUnavailable, "Wayland: The platform does not support setting the window position")
		return
	}
	d.mu.Lock()
	win.x, win.y = x, y
	cbs := win.callbacks
	d.mu.Unlock()
	if cbs != nil && cbs.Pos != nil {
		d.Enqueue(func() { cbs.Pos(x, y) })
	}
}

func (d *Driver) GetWindowSize(w native.Window) (width, height int) {
	win, ok := d.windowOp("GetWindowSize", w)
	if !ok {
		return 0, 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return win.width, win.height
}

func (d *Driver) SetWindowSize(w native.Window, width, height int) {
	win, ok := d.windowOp("SetWindowSize", w)
	if !ok {
		return
	}
	d.mu.Lock()
	win.width, win.height = width, height
	cbs := win.callbacks
	d.mu.Unlock()
	if cbs != nil {
		d.Enqueue(func() {
			if cbs.Size != nil {
				cbs.Size(width, height)
			}
			if cbs.FramebufferSize != nil {
				cbs.FramebufferSize(width, height)
			}
		})
	}
}

func (d *Driver) SetWindowSizeLimits(w native.Window, minWidth, minHeight, maxWidth, maxHeight int) {
	win, ok := d.windowOp("SetWindowSizeLimits", w)
	if !ok {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	win.minW, win.minH, win.maxW, win.maxH = minWidth, minHeight, maxWidth, maxHeight
}

func (d *Driver) SetWindowAspectRatio(w native.Window, numer, denom int) {
	win, ok := d.windowOp("SetWindowAspectRatio", w)
	if !ok {
		return
	}
	if numer != native.DontCare && (numer <= 0 || denom <= 0) {
		d.report(native.InvalidValue, fmt.Sprintf("Invalid window aspect ratio %d:%d", numer, denom))
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	win.aspectNum, win.aspectDen = numer, denom
}

func (d *Driver) GetFramebufferSize(w native.Window) (width, height int) {
	win, ok := d.windowOp("GetFramebufferSize", w)
	if !ok {
		return 0, 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return win.width, win.height
}

func (d *Driver) GetWindowFrameSize(w native.Window) (left, top, right, bottom int) {
	win, ok := d.windowOp("GetWindowFrameSize", w)
	if !ok {
		return 0, 0, 0, 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if win.attribs[native.Decorated] == native.False {
		return 0, 0, 0, 0
	}
	return 1, 24, 1, 1
}

func (d *Driver) GetWindowContentScale(w native.Window) (x, y float32) {
	if _, ok := d.windowOp("GetWindowContentScale", w); !ok {
		return 0, 0
	}
	return 1, 1
}

func (d *Driver) GetWindowOpacity(w native.Window) float32 {
	win, ok := d.windowOp("GetWindowOpacity", w)
	if !ok {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return win.opacity
}

func (d *Driver) SetWindowOpacity(w native.Window, opacity float32) {
	win, ok := d.windowOp("SetWindowOpacity", w)
	if !ok {
		return
	}
	if opacity != opacity || opacity < 0 || opacity > 1 {
		d.report(native.InvalidValue, fmt.Sprintf("Invalid window opacity %f", opacity))
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	win.opacity = opacity
}

func (d *Driver) setAttribFromAction(function string, w native.Window, attrib, value int) {
	win, ok := d.windowOp(function, w)
	if !ok {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	win.attribs[attrib] = value
}

func (d *Driver) IconifyWindow(w native.Window) {
	d.setAttribFromAction("IconifyWindow", w, native.Iconified, native.True)
}

func (d *Driver) RestoreWindow(w native.Window) {
	win, ok := d.windowOp("RestoreWindow", w)
	if !ok {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	win.attribs[native.Iconified] = native.False
	win.attribs[native.Maximized] = native.False
}

func (d *Driver) MaximizeWindow(w native.Window) {
	d.setAttribFromAction("MaximizeWindow", w, native.Maximized, native.True)
}

func (d *Driver) ShowWindow(w native.Window) {
	d.setAttribFromAction("ShowWindow", w, native.Visible, native.True)
}

func (d *Driver) HideWindow(w native.Window) {
	d.setAttribFromAction("HideWindow", w, native.Visible, native.False)
}

func (d *Driver) FocusWindow(w native.Window) {
	d.setAttribFromAction("FocusWindow", w, native.Focused, native.True)
}

func (d *Driver) RequestWindowAttention(w native.Window) {
	d.windowOp("RequestWindowAttention", w)
}

func (d *Driver) GetWindowMonitor(w native.Window) native.Monitor {
	win, ok := d.windowOp("GetWindowMonitor", w)
	if !ok {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return win.monitor
}

func (d *Driver) SetWindowMonitor(w native.Window, m native.Monitor, x, y, width, height, refreshRate int) {
	win, ok := d.windowOp("SetWindowMonitor", w)
	if !ok {
		return
	}
	if width <= 0 || height <= 0 {
		d.report(native.InvalidValue, fmt.Sprintf("Invalid window size %dx%d", width, height))
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	win.monitor = m
	win.width, win.height = width, height
	if m == 0 {
		win.x, win.y = x, y
	}
}

func (d *Driver) GetWindowAttrib(w native.Window, attrib int) int {
	win, ok := d.windowOp("GetWindowAttrib", w)
	if !ok {
		return 0
	}
	if attrib == native.Hovered {
		return native.False
	}
	d.mu.Lock()
	v, known := win.attribs[attrib]
	d.mu.Unlock()
	if !known && attrib != native.Iconified {
		d.report(native.InvalidEnum, fmt.Sprintf("Invalid window attribute 0x%08X", attrib))
		return 0
	}
	return v
}

func (d *Driver) SetWindowAttrib(w native.Window, attrib, value int) {
	win, ok := d.windowOp("SetWindowAttrib", w)
	if !ok {
		return
	}
	if !settableAttribs[attrib] {
		d.report(native.InvalidEnum, fmt.Sprintf("Invalid window attribute 0x%08X", attrib))
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if value != native.False {
		value = native.True
	}
	win.attribs[attrib] = value
}

func (d *Driver) GetInputMode(w native.Window, mode int) int {
	win, ok := d.windowOp("GetInputMode", w)
	if !ok {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return win.inputModes[mode]
}

func (d *Driver) SetInputMode(w native.Window, mode, value int) {
	win, ok := d.windowOp("SetInputMode", w)
	if !ok {
		return
	}
	switch mode {
	case native.CursorMode:
		switch value {
		case native.CursorNormal, native.CursorHidden, native.CursorDisabled, native.CursorCaptured:
		default:
			d.report(native.InvalidEnum, fmt.Sprintf("Invalid cursor mode 0x%08X", value))
			return
		}
	case native.StickyKeys, native.StickyMouseButtons, native.LockKeyMods, native.RawMouseMotion:
		if value != native.False {
			value = native.True
		}
	default:
		d.report(native.InvalidEnum, fmt.Sprintf("Invalid input mode 0x%08X", mode))
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	win.inputModes[mode] = value
}

func (d *Driver) RawMouseMotionSupported() bool {
	if !d.enter("RawMouseMotionSupported") {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.platform == native.PlatformX11 || d.platform == native.PlatformWin32
}

// GetKeyName names printable keys by their lowercase character.
func (d *Driver) GetKeyName(key, scancode int) string {
	if !d.enter("GetKeyName") {
		return ""
	}
	if key == native.KeyUnknown {
		key = scancode - 1000
	}
	switch {
	case key >= 'A' && key <= 'Z':
		return strings.ToLower(string(rune(key)))
	case key >= '0' && key <= '9':
		return string(rune(key))
	}
	return ""
}

// GetKeyScancode maps every valid key to key+1000.
func (d *Driver) GetKeyScancode(key int) int {
	if !d.enter("GetKeyScancode") {
		return -1
	}
	if key < native.KeyFirst || key > native.KeyLast {
		d.report(native.InvalidEnum, fmt.Sprintf("Invalid key %d", key))
		return -1
	}
	return key + 1000
}

// SetKeyState sets what GetKey reports for key on w.
func (d *Driver) SetKeyState(w native.Window, key, action int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if win, ok := d.windows[w]; ok {
		win.keys[key] = action
	}
}

// SetMouseButtonState sets what GetMouseButton reports for button on w.
func (d *Driver) SetMouseButtonState(w native.Window, button, action int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if win, ok := d.windows[w]; ok {
		win.buttons[button] = action
	}
}

func (d *Driver) GetKey(w native.Window, key int) int {
	win, ok := d.windowOp("GetKey", w)
	if !ok {
		return native.Release
	}
	if key < native.KeyFirst || key > native.KeyLast {
		d.report(native.InvalidEnum, fmt.Sprintf("Invalid key %d", key))
		return native.Release
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return win.keys[key]
}

func (d *Driver) GetMouseButton(w native.Window, button int) int {
	win, ok := d.windowOp("GetMouseButton", w)
	if !ok {
		return native.Release
	}
	if button < 0 || button > native.MouseButtonLast {
		d.report(native.InvalidEnum, fmt.Sprintf("Invalid mouse button %d", button))
		return native.Release
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return win.buttons[button]
}

func (d *Driver) GetCursorPos(w native.Window) (x, y float64) {
	win, ok := d.windowOp("GetCursorPos", w)
	if !ok {
		return 0, 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return win.cursorX, win.cursorY
}

func (d *Driver) SetCursorPos(w native.Window, x, y float64) {
	win, ok := d.windowOp("SetCursorPos", w)
	if !ok {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	win.cursorX, win.cursorY = x, y
}

func (d *Driver) GetClipboardString(w native.Window) string {
	if !d.enter("GetClipboardString") {
		return ""
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clipboard
}

func (d *Driver) SetClipboardString(w native.Window, s string) {
	if !d.enter("SetClipboardString") {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clipboard = s
}

func (d *Driver) CreateCursor(img native.Image, xhot, yhot int) native.Cursor {
	if !d.enter("CreateCursor") {
		return 0
	}
	if img.Width <= 0 || img.Height <= 0 || len(img.Pixels) != img.Width*img.Height*4 {
		d.report(native.InvalidValue, "Invalid image dimensions for cursor")
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	c := native.Cursor(d.newHandle())
	d.cursors[c] = true
	return c
}

func (d *Driver) CreateStandardCursor(shape int) native.Cursor {
	if !d.enter("CreateStandardCursor") {
		return 0
	}
	if shape < native.ArrowCursor || shape > native.NotAllowedCursor {
		d.report(native.InvalidEnum, fmt.Sprintf("Invalid standard cursor 0x%08X", shape))
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	c := native.Cursor(d.newHandle())
	d.cursors[c] = true
	return c
}

func (d *Driver) DestroyCursor(c native.Cursor) {
	if !d.enter("DestroyCursor") {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.cursors, c)
	for _, w := range d.windows {
		if w.cursor == c {
			w.cursor = 0
		}
	}
}

// CursorCount returns the number of live cursors.
func (d *Driver) CursorCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.cursors)
}

// WindowCursor returns the cursor currently set on w.
func (d *Driver) WindowCursor(w native.Window) native.Cursor {
	d.mu.Lock()
	defer d.mu.Unlock()
	if win, ok := d.windows[w]; ok {
		return win.cursor
	}
	return 0
}

func (d *Driver) SetCursor(w native.Window, c native.Cursor) {
	win, ok := d.windowOp("SetCursor", w)
	if !ok {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	win.cursor = c
}

// MakeContextCurrent binds w's context to the calling thread. Like GLFW it
// does not check whether w is current elsewhere.
func (d *Driver) MakeContextCurrent(w native.Window) {
	if !d.enter("MakeContextCurrent") {
		return
	}
	id := thread.Current()
	if w == 0 {
		d.mu.Lock()
		delete(d.current, id)
		d.mu.Unlock()
		return
	}
	win, ok := d.windowOp("MakeContextCurrent", w)
	if !ok {
		return
	}
	d.mu.Lock()
	noAPI := win.attribs[native.ClientAPI] == native.NoAPI
	d.mu.Unlock()
	if noAPI {
		d.report(native.NoWindowContext, "Cannot make current with a window that has no OpenGL or OpenGL ES context")
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current[id] = w
}

func (d *Driver) GetCurrentContext() native.Window {
	if !d.enter("GetCurrentContext") {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current[thread.Current()]
}

// CurrentOn returns the window current on the given thread.
func (d *Driver) CurrentOn(id thread.ID) native.Window {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current[id]
}

func (d *Driver) SwapBuffers(w native.Window) {
	win, ok := d.windowOp("SwapBuffers", w)
	if !ok {
		return
	}
	d.mu.Lock()
	noAPI := win.attribs[native.ClientAPI] == native.NoAPI
	d.mu.Unlock()
	if noAPI {
		d.report(native.NoWindowContext, "Cannot swap buffers of a window that has no OpenGL or OpenGL ES context")
	}
}

func (d *Driver) requireCurrent(function string) bool {
	if !d.enter(function) {
		return false
	}
	d.mu.Lock()
	cur := d.current[thread.Current()]
	d.mu.Unlock()
	if cur == 0 {
		d.report(native.NoCurrentContext, "Cannot "+function+" without a current OpenGL or OpenGL ES context")
		return false
	}
	return true
}

func (d *Driver) SwapInterval(interval int) {
	if !d.requireCurrent("SwapInterval") {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.swapInt[thread.Current()] = interval
}

// SwapIntervalOn returns the interval last set on the given thread.
func (d *Driver) SwapIntervalOn(id thread.ID) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.swapInt[id]
}

// ExtensionSupported reports true for names starting with "GL_ARB_".
func (d *Driver) ExtensionSupported(extension string) bool {
	if !d.requireCurrent("ExtensionSupported") {
		return false
	}
	if extension == "" {
		d.report(native.InvalidValue, "Extension name cannot be an empty string")
		return false
	}
	return strings.HasPrefix(extension, "GL_ARB_")
}

// GetProcAddress returns a fake non-zero address for names starting with "gl".
func (d *Driver) GetProcAddress(name string) uintptr {
	if !d.requireCurrent("GetProcAddress") {
		return 0
	}
	if !strings.HasPrefix(name, "gl") {
		return 0
	}
	return uintptr(0x7f000000 + len(name))
}
