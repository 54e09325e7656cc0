package glfwgo

import "github.com/obinnaokechukwu/glfwgo/internal/logger"

// Proxy is a copyable view of an EventLoop for use from any goroutine. It
// exposes only the operations GLFW allows off the main thread. Every method
// panics once the loop has been terminated.
type Proxy struct {
	c *core
}

// Alive reports whether the loop the proxy came from is still alive. It
// never panics.
func (p Proxy) Alive() bool {
	return p.c != nil && p.c.alive.Load()
}

// Time returns the GLFW time in seconds.
func (p Proxy) Time() float64 {
	p.c.requireAlive("Time")
	return p.c.drv.GetTime()
}

// SetTime sets the GLFW time. GLFW rejects negative and very large values.
func (p Proxy) SetTime(t float64) error {
	p.c.requireAlive("SetTime")
	return check("SetTime", func() { p.c.drv.SetTime(t) })
}

// PostEmptyEvent wakes a main thread blocked in WaitEvents.
func (p Proxy) PostEmptyEvent() {
	p.c.requireAlive("PostEmptyEvent")
	p.c.drv.PostEmptyEvent()
}

// Platform returns the platform GLFW was initialized on.
func (p Proxy) Platform() Platform {
	p.c.requireAlive("Platform")
	return Platform(p.c.drv.GetPlatform())
}

// Version returns the version of the loaded library.
func (p Proxy) Version() (major, minor, revision int) {
	p.c.requireAlive("Version")
	return p.c.drv.GetVersion()
}

// VersionString returns the library's compile-time configuration string.
func (p Proxy) VersionString() string {
	p.c.requireAlive("VersionString")
	return p.c.drv.GetVersionString()
}

// IsMonitorAlive reports whether m is in the set of known monitors. It
// makes no native call.
func (p Proxy) IsMonitorAlive(m MonitorID) bool {
	p.c.requireAlive("IsMonitorAlive")
	return p.c.monitors.Contains(m)
}

// KeyScancode returns the platform scancode of key, or -1.
func (p Proxy) KeyScancode(key Key) int {
	p.c.requireAlive("KeyScancode")
	return p.c.drv.GetKeyScancode(int(key))
}

// MakeAnyUncurrent releases whatever context is current on the calling
// thread.
func (p Proxy) MakeAnyUncurrent() error {
	p.c.requireAlive("MakeAnyUncurrent")
	if d := currentOnThisThread(); d != nil {
		return makeUncurrent(d)
	}
	return check("MakeContextCurrent", func() { p.c.drv.MakeContextCurrent(0) })
}

// AnyCurrent returns the window whose context is current on the calling
// thread, if any. A context made current behind glfwgo's back is logged and
// not reported.
func (p Proxy) AnyCurrent() (WindowID, bool) {
	p.c.requireAlive("AnyCurrent")
	d := currentOnThisThread()
	if cur := p.c.drv.GetCurrentContext(); (d == nil && cur != 0) || (d != nil && cur != d.handle) {
		logger.Warn("current context disagrees with glfw", "tracked", trackedID(d), "glfw", WindowID{h: cur})
	}
	if d == nil {
		return WindowID{}, false
	}
	return d.id(), true
}

func trackedID(d *windowData) WindowID {
	if d == nil {
		return WindowID{}
	}
	return d.id()
}
