package glfwgo

import (
	"fmt"
	"image"
	"strings"

	"github.com/obinnaokechukwu/glfwgo/internal/logger"
	"github.com/obinnaokechukwu/glfwgo/native"
)

// Window is a GLFW window owned by the main thread. Use its WindowProxy to
// reach the window's context from other goroutines.
type Window struct {
	WindowProxy
	el *EventLoop
}

// WindowOption configures NewWindow beyond its hints.
type WindowOption func(*windowOptions)

type windowOptions struct {
	monitor MonitorID
	share   *Window
}

// WithMonitor creates a full screen window on m.
func WithMonitor(m MonitorID) WindowOption {
	return func(o *windowOptions) {
		o.monitor = m
	}
}

// WithShare shares the new window's context objects with w's context.
func WithShare(w *Window) WindowOption {
	return func(o *windowOptions) {
		o.share = w
	}
}

// NewWindow creates a window and its context. Fields of cfg that are nil
// leave the GLFW default for that hint.
func NewWindow(el *EventLoop, width, height int, title string, cfg WindowConfig, opts ...WindowOption) (*Window, error) {
	c := el.c
	c.requireMain("NewWindow")
	if strings.IndexByte(title, 0) >= 0 {
		return nil, fmt.Errorf("%w: window title", ErrNulInString)
	}

	var o windowOptions
	for _, opt := range opts {
		opt(&o)
	}
	if !o.monitor.IsZero() && !c.monitors.Contains(o.monitor) {
		return nil, deadMonitorError("NewWindow")
	}
	var share native.Window
	if o.share != nil {
		if !o.share.IsAlive() {
			return nil, fmt.Errorf("%w: shared %s", ErrDeadHandle, o.share.d.id())
		}
		share = o.share.d.handle
	}

	cfg.apply(c.drv)

	handle, err := checked("CreateWindow", func() native.Window {
		return c.drv.CreateWindow(width, height, title, o.monitor.h, share)
	})
	if handle == 0 {
		if err == nil {
			err = &Error{Code: PlatformError, Description: "window creation failed with no error reported", Op: "CreateWindow"}
		}
		return nil, err
	}
	if err != nil {
		logger.Warn("glfw reported an error while creating a window", "err", err)
	}

	d := &windowData{
		c:         c,
		handle:    handle,
		clientAPI: ClientAPI(logged("GetWindowAttrib", func() int { return c.drv.GetWindowAttrib(handle, native.ClientAPI) })),
	}
	if d.clientAPI != NoAPI {
		d.contextAPI = ContextCreationAPI(logged("GetWindowAttrib", func() int {
			return c.drv.GetWindowAttrib(handle, native.ContextCreationAPI)
		}))
	}
	d.isAlive.Store(true)

	if err := check("SetWindowCallbacks", func() { c.drv.SetWindowCallbacks(handle, windowCallbacks(d.id())) }); err != nil {
		logger.Error("failed to register window callbacks", "window", d.id(), "err", err)
	}

	w := &Window{WindowProxy: WindowProxy{d: d}, el: el}
	el.trackWindow(w)
	logger.Debug("window created", "window", d.id(), "width", width, "height", height, "client_api", d.clientAPI)
	return w, nil
}

// enter checks that w may be used from the calling goroutine and returns
// its native handle.
func (w *Window) enter(op string) native.Window {
	w.el.c.requireMain(op)
	if !w.d.isAlive.Load() {
		panic(fmt.Sprintf("glfwgo: %s on destroyed %s", op, w.d.id()))
	}
	return w.d.handle
}

func (w *Window) drv() native.Driver {
	return w.el.c.drv
}

// Destroy destroys the window and its context. A context current on the
// calling thread is released first. Destroying a window whose context is
// current on another thread is logged; that thread must not touch the
// context again. Destroy is idempotent.
func (w *Window) Destroy() {
	if !w.d.isAlive.Load() {
		return
	}
	w.el.c.requireMain("Window.Destroy")
	w.destroy()
}

func (w *Window) destroy() {
	d := w.d
	if !d.isAlive.Load() {
		return
	}
	if err := makeUncurrent(d); err != nil {
		logger.Warn("failed to release context before destroy", "window", d.id(), "err", err)
	}

	if d.mu.TryLock() {
		if d.isCurrent.Load() {
			logger.Error("window destroyed while current on another thread", "window", d.id(), "thread", d.owner)
		}
		d.isAlive.Store(false)
		d.mu.Unlock()
	} else {
		logger.Error("window destroyed while in use on another thread", "window", d.id())
		d.isAlive.Store(false)
	}

	drv := w.drv()
	Ignore(func() { drv.SetWindowCallbacks(d.handle, nil) })
	LogErr(func() { drv.DestroyWindow(d.handle) })
	w.el.forgetWindow(d)
}

// Title returns the window title.
func (w *Window) Title() string {
	h := w.enter("Title")
	return w.drv().GetWindowTitle(h)
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) error {
	h := w.enter("SetTitle")
	if strings.IndexByte(title, 0) >= 0 {
		return fmt.Errorf("%w: window title", ErrNulInString)
	}
	return check("SetWindowTitle", func() { w.drv().SetWindowTitle(h, title) })
}

// SetIcon sets the window icon from candidate images; the platform picks
// the size closest to what it needs. No images restores the default icon.
func (w *Window) SetIcon(images ...image.Image) error {
	h := w.enter("SetIcon")
	icons := make([]native.Image, len(images))
	for i, img := range images {
		icons[i] = toNativeImage(img)
	}
	return check("SetWindowIcon", func() { w.drv().SetWindowIcon(h, icons) })
}

// SetIconScaled sets the window icon to src resampled to each of sizes.
// With no sizes, DefaultIconSizes are used.
func (w *Window) SetIconScaled(src image.Image, sizes ...int) error {
	if len(sizes) == 0 {
		sizes = DefaultIconSizes
	}
	images := make([]image.Image, len(sizes))
	for i, size := range sizes {
		images[i] = scaleImage(src, size)
	}
	return w.SetIcon(images...)
}

// Pos returns the position of the content area's upper-left corner. Some
// platforms, Wayland among them, cannot report it.
func (w *Window) Pos() (x, y int) {
	h := w.enter("Pos")
	return w.drv().GetWindowPos(h)
}

func (w *Window) SetPos(x, y int) error {
	h := w.enter("SetPos")
	return check("SetWindowPos", func() { w.drv().SetWindowPos(h, x, y) })
}

// Size returns the size of the content area in screen coordinates.
func (w *Window) Size() (width, height int) {
	h := w.enter("Size")
	return w.drv().GetWindowSize(h)
}

func (w *Window) SetSize(width, height int) error {
	h := w.enter("SetSize")
	return check("SetWindowSize", func() { w.drv().SetWindowSize(h, width, height) })
}

// SetSizeLimits constrains the content area. Pass DontCare to leave a bound
// open.
func (w *Window) SetSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) error {
	h := w.enter("SetSizeLimits")
	return check("SetWindowSizeLimits", func() {
		w.drv().SetWindowSizeLimits(h, minWidth, minHeight, maxWidth, maxHeight)
	})
}

// SetAspectRatio locks the content area's aspect ratio. Pass DontCare for
// both to unlock it.
func (w *Window) SetAspectRatio(numer, denom int) error {
	h := w.enter("SetAspectRatio")
	return check("SetWindowAspectRatio", func() { w.drv().SetWindowAspectRatio(h, numer, denom) })
}

// FramebufferSize returns the framebuffer size in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	h := w.enter("FramebufferSize")
	return w.drv().GetFramebufferSize(h)
}

// FrameSize returns the size of each edge of the window frame.
func (w *Window) FrameSize() (left, top, right, bottom int) {
	h := w.enter("FrameSize")
	return w.drv().GetWindowFrameSize(h)
}

func (w *Window) ContentScale() (x, y float32) {
	h := w.enter("ContentScale")
	return w.drv().GetWindowContentScale(h)
}

func (w *Window) Opacity() float32 {
	h := w.enter("Opacity")
	return w.drv().GetWindowOpacity(h)
}

// SetOpacity sets the whole window's opacity, from 0 to 1.
func (w *Window) SetOpacity(opacity float32) error {
	h := w.enter("SetOpacity")
	return check("SetWindowOpacity", func() { w.drv().SetWindowOpacity(h, opacity) })
}

func (w *Window) Iconify() error {
	h := w.enter("Iconify")
	return check("IconifyWindow", func() { w.drv().IconifyWindow(h) })
}

func (w *Window) Restore() error {
	h := w.enter("Restore")
	return check("RestoreWindow", func() { w.drv().RestoreWindow(h) })
}

func (w *Window) Maximize() error {
	h := w.enter("Maximize")
	return check("MaximizeWindow", func() { w.drv().MaximizeWindow(h) })
}

func (w *Window) Show() error {
	h := w.enter("Show")
	return check("ShowWindow", func() { w.drv().ShowWindow(h) })
}

func (w *Window) Hide() error {
	h := w.enter("Hide")
	return check("HideWindow", func() { w.drv().HideWindow(h) })
}

func (w *Window) Focus() error {
	h := w.enter("Focus")
	return check("FocusWindow", func() { w.drv().FocusWindow(h) })
}

func (w *Window) RequestAttention() error {
	h := w.enter("RequestAttention")
	return check("RequestWindowAttention", func() { w.drv().RequestWindowAttention(h) })
}

// Monitor returns the monitor a full screen window is on.
func (w *Window) Monitor() (MonitorID, bool) {
	h := w.enter("Monitor")
	m := w.drv().GetWindowMonitor(h)
	if m == 0 {
		return MonitorID{}, false
	}
	id := MonitorID{h: m}
	w.el.c.monitors.Add(id)
	return id, true
}

// SetMonitor makes the window full screen on m, or windowed at the given
// position and size when m is the zero MonitorID.
func (w *Window) SetMonitor(m MonitorID, x, y, width, height, refreshRate int) error {
	h := w.enter("SetMonitor")
	if !m.IsZero() && !w.el.c.monitors.Contains(m) {
		return deadMonitorError("SetMonitor")
	}
	return check("SetWindowMonitor", func() {
		w.drv().SetWindowMonitor(h, m.h, x, y, width, height, refreshRate)
	})
}

// Attrib returns a window attribute.
func (w *Window) Attrib(attrib WindowAttrib) int {
	h := w.enter("Attrib")
	return w.drv().GetWindowAttrib(h, int(attrib))
}

// SetAttrib changes one of the settable boolean attributes.
func (w *Window) SetAttrib(attrib WindowAttrib, value bool) error {
	h := w.enter("SetAttrib")
	return check("SetWindowAttrib", func() { w.drv().SetWindowAttrib(h, int(attrib), boolHint(value)) })
}

// ClientAPI returns the API the window's context was created for.
func (w *Window) ClientAPI() ClientAPI {
	w.enter("ClientAPI")
	return w.d.clientAPI
}

func (w *Window) CursorMode() CursorMode {
	h := w.enter("CursorMode")
	return CursorMode(w.drv().GetInputMode(h, native.CursorMode))
}

func (w *Window) SetCursorMode(mode CursorMode) error {
	h := w.enter("SetCursorMode")
	return check("SetInputMode", func() { w.drv().SetInputMode(h, native.CursorMode, int(mode)) })
}

func (w *Window) setInputFlag(op string, mode int, value bool) error {
	h := w.enter(op)
	return check("SetInputMode", func() { w.drv().SetInputMode(h, mode, boolHint(value)) })
}

// SetStickyKeys keeps a key reported as pressed until Key polls it.
func (w *Window) SetStickyKeys(value bool) error {
	return w.setInputFlag("SetStickyKeys", native.StickyKeys, value)
}

// SetStickyMouseButtons keeps a button reported as pressed until
// MouseButton polls it.
func (w *Window) SetStickyMouseButtons(value bool) error {
	return w.setInputFlag("SetStickyMouseButtons", native.StickyMouseButtons, value)
}

// SetLockKeyMods adds CapsLock and NumLock to event modifiers.
func (w *Window) SetLockKeyMods(value bool) error {
	return w.setInputFlag("SetLockKeyMods", native.LockKeyMods, value)
}

// SetRawMouseMotion enables unscaled cursor motion while the cursor is
// disabled. See EventLoop.RawMouseMotionSupported.
func (w *Window) SetRawMouseMotion(value bool) error {
	return w.setInputFlag("SetRawMouseMotion", native.RawMouseMotion, value)
}

// Key returns the last reported state of key.
func (w *Window) Key(key Key) Action {
	h := w.enter("Key")
	return Action(w.drv().GetKey(h, int(key)))
}

// MouseButton returns the last reported state of button.
func (w *Window) MouseButton(button MouseButton) Action {
	h := w.enter("MouseButton")
	return Action(w.drv().GetMouseButton(h, int(button)))
}

// CursorPos returns the cursor position relative to the content area.
func (w *Window) CursorPos() (x, y float64) {
	h := w.enter("CursorPos")
	return w.drv().GetCursorPos(h)
}

func (w *Window) SetCursorPos(x, y float64) error {
	h := w.enter("SetCursorPos")
	return check("SetCursorPos", func() { w.drv().SetCursorPos(h, x, y) })
}

// SetCursor sets the cursor shown over the content area. Nil restores the
// default arrow.
func (w *Window) SetCursor(cur *Cursor) error {
	h := w.enter("SetCursor")
	var ch native.Cursor
	if cur != nil {
		if cur.handle == 0 {
			return fmt.Errorf("%w: cursor", ErrDeadHandle)
		}
		ch = cur.handle
	}
	return check("SetCursor", func() { w.drv().SetCursor(h, ch) })
}

// Clipboard returns the system clipboard contents as UTF-8.
func (w *Window) Clipboard() string {
	h := w.enter("Clipboard")
	return w.drv().GetClipboardString(h)
}

func (w *Window) SetClipboard(s string) error {
	h := w.enter("SetClipboard")
	if strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("%w: clipboard", ErrNulInString)
	}
	return check("SetClipboardString", func() { w.drv().SetClipboardString(h, s) })
}

// EventLoop returns the loop that owns the window.
func (w *Window) EventLoop() *EventLoop {
	return w.el
}
