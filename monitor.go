package glfwgo

import (
	"fmt"

	"github.com/obinnaokechukwu/glfwgo/internal/logger"
	"github.com/obinnaokechukwu/glfwgo/native"
)

// MonitorID identifies a monitor. Monitors can vanish at any time; every
// operation taking a MonitorID fails with ErrDeadHandle, without calling
// GLFW, once the monitor is no longer known to be connected.
type MonitorID struct {
	h native.Monitor
}

// IsZero reports whether m names no monitor.
func (m MonitorID) IsZero() bool {
	return m.h == 0
}

// Raw returns the GLFWmonitor pointer.
func (m MonitorID) Raw() uintptr {
	return uintptr(m.h)
}

func (m MonitorID) String() string {
	return fmt.Sprintf("monitor(0x%x)", uintptr(m.h))
}

const win32GammaRampSize = 256

// VideoMode describes a monitor video mode.
type VideoMode = native.VidMode

// refreshMonitors replaces the alive set with a fresh enumeration.
func (c *core) refreshMonitors() []MonitorID {
	handles := c.drv.GetMonitors()
	ids := make([]MonitorID, len(handles))
	for i, h := range handles {
		ids[i] = MonitorID{h: h}
	}
	if stale := c.monitors.Replace(ids); len(stale) > 0 {
		// The disconnect callback normally removes these first.
		logger.Warn("monitors vanished without a disconnect event", "count", len(stale), "monitors", stale)
	}
	return ids
}

// Monitors enumerates the connected monitors. The result becomes the set of
// monitors considered alive.
func (el *EventLoop) Monitors() []MonitorID {
	el.c.requireMain("Monitors")
	return el.c.refreshMonitors()
}

// PrimaryMonitor returns the user's primary monitor, if any.
func (el *EventLoop) PrimaryMonitor() (MonitorID, bool) {
	el.c.requireMain("PrimaryMonitor")
	h := el.c.drv.GetPrimaryMonitor()
	if h == 0 {
		return MonitorID{}, false
	}
	id := MonitorID{h: h}
	el.c.monitors.Add(id)
	return id, true
}

// monitor gates a monitor operation on the main thread and on m being
// alive.
func (el *EventLoop) monitor(op string, m MonitorID) error {
	el.c.requireMain(op)
	if !el.c.monitors.Contains(m) {
		return deadMonitorError(op)
	}
	return nil
}

// MonitorPos returns the position of the monitor's viewport on the virtual
// screen.
func (el *EventLoop) MonitorPos(m MonitorID) (x, y int, err error) {
	if err := el.monitor("MonitorPos", m); err != nil {
		return 0, 0, err
	}
	err = check("GetMonitorPos", func() { x, y = el.c.drv.GetMonitorPos(m.h) })
	return x, y, err
}

// MonitorWorkarea returns the area of the monitor not occupied by task bars
// and menu bars.
func (el *EventLoop) MonitorWorkarea(m MonitorID) (x, y, width, height int, err error) {
	if err := el.monitor("MonitorWorkarea", m); err != nil {
		return 0, 0, 0, 0, err
	}
	err = check("GetMonitorWorkarea", func() { x, y, width, height = el.c.drv.GetMonitorWorkarea(m.h) })
	return x, y, width, height, err
}

// MonitorPhysicalSize returns the monitor's display area in millimetres.
func (el *EventLoop) MonitorPhysicalSize(m MonitorID) (widthMM, heightMM int, err error) {
	if err := el.monitor("MonitorPhysicalSize", m); err != nil {
		return 0, 0, err
	}
	err = check("GetMonitorPhysicalSize", func() { widthMM, heightMM = el.c.drv.GetMonitorPhysicalSize(m.h) })
	return widthMM, heightMM, err
}

func (el *EventLoop) MonitorContentScale(m MonitorID) (x, y float32, err error) {
	if err := el.monitor("MonitorContentScale", m); err != nil {
		return 0, 0, err
	}
	err = check("GetMonitorContentScale", func() { x, y = el.c.drv.GetMonitorContentScale(m.h) })
	return x, y, err
}

// MonitorName returns a human-readable, not necessarily unique, name.
func (el *EventLoop) MonitorName(m MonitorID) (string, error) {
	if err := el.monitor("MonitorName", m); err != nil {
		return "", err
	}
	return checked("GetMonitorName", func() string { return el.c.drv.GetMonitorName(m.h) })
}

// VideoModes returns every mode the monitor supports, sorted ascending.
func (el *EventLoop) VideoModes(m MonitorID) ([]VideoMode, error) {
	if err := el.monitor("VideoModes", m); err != nil {
		return nil, err
	}
	return checked("GetVideoModes", func() []VideoMode { return el.c.drv.GetVideoModes(m.h) })
}

// VideoMode returns the monitor's current mode.
func (el *EventLoop) VideoMode(m MonitorID) (VideoMode, error) {
	if err := el.monitor("VideoMode", m); err != nil {
		return VideoMode{}, err
	}
	var (
		mode VideoMode
		ok   bool
	)
	err := check("GetVideoMode", func() { mode, ok = el.c.drv.GetVideoMode(m.h) })
	if err == nil && !ok {
		err = &Error{Code: PlatformError, Description: "no current video mode", Op: "GetVideoMode"}
	}
	return mode, err
}

// SetGamma generates a ramp for the exponent gamma and applies it.
func (el *EventLoop) SetGamma(m MonitorID, gamma float32) error {
	if err := el.monitor("SetGamma", m); err != nil {
		return err
	}
	return check("SetGamma", func() { el.c.drv.SetGamma(m.h, gamma) })
}

// GammaRamp returns the monitor's gamma ramp packed as all red values, then
// all green, then all blue.
func (el *EventLoop) GammaRamp(m MonitorID) ([]uint16, error) {
	if err := el.monitor("GammaRamp", m); err != nil {
		return nil, err
	}
	var (
		ramp native.GammaRamp
		ok   bool
	)
	err := check("GetGammaRamp", func() { ramp, ok = el.c.drv.GetGammaRamp(m.h) })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &Error{Code: PlatformError, Description: "gamma ramp unavailable", Op: "GetGammaRamp"}
	}
	return packRamp(ramp), nil
}

// SetGammaRamp applies a ramp packed like the result of GammaRamp. Its
// length must be three times the monitor's ramp size.
func (el *EventLoop) SetGammaRamp(m MonitorID, packed []uint16) error {
	if err := el.monitor("SetGammaRamp", m); err != nil {
		return err
	}
	ramp, err := unpackRamp(packed)
	if err != nil {
		return err
	}
	current := Ignored(func() native.GammaRamp {
		r, _ := el.c.drv.GetGammaRamp(m.h)
		return r
	})
	if n := len(current.Red); n > 0 && n != len(ramp.Red) {
		return fmt.Errorf("%w: %d entries per channel, monitor uses %d", ErrInvalidGammaRamp, len(ramp.Red), n)
	}
	if Platform(el.c.drv.GetPlatform()) == PlatformWin32 && len(ramp.Red) != win32GammaRampSize {
		return fmt.Errorf("%w: Win32 requires %d entries per channel", ErrInvalidGammaRamp, win32GammaRampSize)
	}
	return check("SetGammaRamp", func() { el.c.drv.SetGammaRamp(m.h, ramp) })
}

func packRamp(r native.GammaRamp) []uint16 {
	packed := make([]uint16, 0, 3*len(r.Red))
	packed = append(packed, r.Red...)
	packed = append(packed, r.Green...)
	return append(packed, r.Blue...)
}

func unpackRamp(packed []uint16) (native.GammaRamp, error) {
	if len(packed) == 0 || len(packed)%3 != 0 {
		return native.GammaRamp{}, fmt.Errorf("%w: length %d is not a positive multiple of 3", ErrInvalidGammaRamp, len(packed))
	}
	n := len(packed) / 3
	return native.GammaRamp{
		Red:   packed[:n:n],
		Green: packed[n : 2*n : 2*n],
		Blue:  packed[2*n:],
	}, nil
}
