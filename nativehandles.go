package glfwgo

import "fmt"

// Native handles give access to the platform objects behind GLFW's. Each
// accessor only works on the platform it names; on any other it returns
// ErrWrongPlatform without calling GLFW.

// nativeAccessor is a glfwGet<Platform><Thing> symbol and the platforms it
// is valid on. Context accessors such as EGL span several.
type nativeAccessor struct {
	symbol    string
	platforms []Platform
}

var (
	accX11Display     = nativeAccessor{"glfwGetX11Display", []Platform{PlatformX11}}
	accX11Window      = nativeAccessor{"glfwGetX11Window", []Platform{PlatformX11}}
	accX11Adapter     = nativeAccessor{"glfwGetX11Adapter", []Platform{PlatformX11}}
	accX11Monitor     = nativeAccessor{"glfwGetX11Monitor", []Platform{PlatformX11}}
	accGLXContext     = nativeAccessor{"glfwGetGLXContext", []Platform{PlatformX11}}
	accWaylandDisplay = nativeAccessor{"glfwGetWaylandDisplay", []Platform{PlatformWayland}}
	accWaylandWindow  = nativeAccessor{"glfwGetWaylandWindow", []Platform{PlatformWayland}}
	accWaylandMonitor = nativeAccessor{"glfwGetWaylandMonitor", []Platform{PlatformWayland}}
	accWin32Adapter   = nativeAccessor{"glfwGetWin32Adapter", []Platform{PlatformWin32}}
	accWin32Monitor   = nativeAccessor{"glfwGetWin32Monitor", []Platform{PlatformWin32}}
	accWin32Window    = nativeAccessor{"glfwGetWin32Window", []Platform{PlatformWin32}}
	accWGLContext     = nativeAccessor{"glfwGetWGLContext", []Platform{PlatformWin32}}
	accCocoaWindow    = nativeAccessor{"glfwGetCocoaWindow", []Platform{PlatformCocoa}}
	accCocoaView      = nativeAccessor{"glfwGetCocoaView", []Platform{PlatformCocoa}}
	accCocoaMonitor   = nativeAccessor{"glfwGetCocoaMonitor", []Platform{PlatformCocoa}}
	accNSGLContext    = nativeAccessor{"glfwGetNSGLContext", []Platform{PlatformCocoa}}
	accEGLDisplay     = nativeAccessor{"glfwGetEGLDisplay", []Platform{PlatformX11, PlatformWayland, PlatformWin32}}
	accEGLContext     = nativeAccessor{"glfwGetEGLContext", []Platform{PlatformX11, PlatformWayland, PlatformWin32}}
	accEGLSurface     = nativeAccessor{"glfwGetEGLSurface", []Platform{PlatformX11, PlatformWayland, PlatformWin32}}
)

func (p Proxy) checkPlatform(acc nativeAccessor) error {
	p.c.requireAlive(acc.symbol)
	current := Platform(p.c.drv.GetPlatform())
	for _, pl := range acc.platforms {
		if pl == current {
			return nil
		}
	}
	return fmt.Errorf("%w: %s needs %v, running on %s", ErrWrongPlatform, acc.symbol, acc.platforms, current)
}

func unimplemented(acc nativeAccessor) error {
	return &Error{Code: FeatureUnimplemented, Description: "library built without this accessor", Op: acc.symbol}
}

func (p Proxy) nativeHandle(acc nativeAccessor, handle uintptr) (uintptr, error) {
	if err := p.checkPlatform(acc); err != nil {
		return 0, err
	}
	var (
		v  uintptr
		ok bool
	)
	err := check(acc.symbol, func() { v, ok = p.c.drv.NativeHandle(acc.symbol, handle) })
	if err == nil && !ok {
		err = unimplemented(acc)
	}
	return v, err
}

func (p Proxy) nativeString(acc nativeAccessor, handle uintptr) (string, error) {
	if err := p.checkPlatform(acc); err != nil {
		return "", err
	}
	var (
		v  string
		ok bool
	)
	err := check(acc.symbol, func() { v, ok = p.c.drv.NativeString(acc.symbol, handle) })
	if err == nil && !ok {
		err = unimplemented(acc)
	}
	return v, err
}

func (el *EventLoop) monitorHandle(acc nativeAccessor, m MonitorID) (uintptr, error) {
	if err := el.monitor(acc.symbol, m); err != nil {
		return 0, err
	}
	return el.nativeHandle(acc, uintptr(m.h))
}

func (el *EventLoop) monitorString(acc nativeAccessor, m MonitorID) (string, error) {
	if err := el.monitor(acc.symbol, m); err != nil {
		return "", err
	}
	return el.nativeString(acc, uintptr(m.h))
}

func (wp WindowProxy) windowHandle(acc nativeAccessor) (uintptr, error) {
	var (
		v   uintptr
		err error
	)
	wp.locked(acc.symbol, func() {
		v, err = Proxy{c: wp.d.c}.nativeHandle(acc, uintptr(wp.d.handle))
	})
	return v, err
}

// X11Display returns the X11 Display*.
func (p Proxy) X11Display() (uintptr, error) { return p.nativeHandle(accX11Display, 0) }

// WaylandDisplay returns the wl_display*.
func (p Proxy) WaylandDisplay() (uintptr, error) { return p.nativeHandle(accWaylandDisplay, 0) }

// EGLDisplay returns the EGLDisplay used for EGL contexts.
func (p Proxy) EGLDisplay() (uintptr, error) { return p.nativeHandle(accEGLDisplay, 0) }

// X11Adapter returns the RRCrtc of m.
func (el *EventLoop) X11Adapter(m MonitorID) (uintptr, error) {
	return el.monitorHandle(accX11Adapter, m)
}

// X11Monitor returns the RROutput of m.
func (el *EventLoop) X11Monitor(m MonitorID) (uintptr, error) {
	return el.monitorHandle(accX11Monitor, m)
}

// Win32Adapter returns the display device name of the adapter driving m,
// e.g. \\.\DISPLAY1.
func (el *EventLoop) Win32Adapter(m MonitorID) (string, error) {
	return el.monitorString(accWin32Adapter, m)
}

// Win32Monitor returns the display device name of m itself.
func (el *EventLoop) Win32Monitor(m MonitorID) (string, error) {
	return el.monitorString(accWin32Monitor, m)
}

// WaylandMonitor returns the wl_output* of m.
func (el *EventLoop) WaylandMonitor(m MonitorID) (uintptr, error) {
	return el.monitorHandle(accWaylandMonitor, m)
}

// CocoaMonitor returns the CGDirectDisplayID of m.
func (el *EventLoop) CocoaMonitor(m MonitorID) (uintptr, error) {
	return el.monitorHandle(accCocoaMonitor, m)
}

// X11Window returns the X11 Window.
func (wp WindowProxy) X11Window() (uintptr, error) { return wp.windowHandle(accX11Window) }

// GLXContext returns the GLXContext.
func (wp WindowProxy) GLXContext() (uintptr, error) { return wp.windowHandle(accGLXContext) }

// WaylandWindow returns the wl_surface*.
func (wp WindowProxy) WaylandWindow() (uintptr, error) { return wp.windowHandle(accWaylandWindow) }

// Win32Window returns the HWND.
func (wp WindowProxy) Win32Window() (uintptr, error) { return wp.windowHandle(accWin32Window) }

// WGLContext returns the HGLRC.
func (wp WindowProxy) WGLContext() (uintptr, error) { return wp.windowHandle(accWGLContext) }

// CocoaWindow returns the NSWindow.
func (wp WindowProxy) CocoaWindow() (uintptr, error) { return wp.windowHandle(accCocoaWindow) }

// CocoaView returns the NSView.
func (wp WindowProxy) CocoaView() (uintptr, error) { return wp.windowHandle(accCocoaView) }

// NSGLContext returns the NSOpenGLContext.
func (wp WindowProxy) NSGLContext() (uintptr, error) { return wp.windowHandle(accNSGLContext) }

// EGLContext returns the EGLContext.
func (wp WindowProxy) EGLContext() (uintptr, error) { return wp.windowHandle(accEGLContext) }

// EGLSurface returns the EGLSurface.
func (wp WindowProxy) EGLSurface() (uintptr, error) { return wp.windowHandle(accEGLSurface) }
