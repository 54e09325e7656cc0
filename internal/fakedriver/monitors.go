package fakedriver

import (
	"fmt"
	"math"

	"github.com/obinnaokechukwu/glfwgo/native"
)

// MonitorSpec describes a monitor added to the fake.
type MonitorSpec struct {
	Name      string
	X, Y      int
	WidthMM   int
	HeightMM  int
	Scale     float32
	Modes     []native.VidMode
	GammaSize int
}

func linearRamp(size int) native.GammaRamp {
	ramp := native.GammaRamp{
		Red:   make([]uint16, size),
		Green: make([]uint16, size),
		Blue:  make([]uint16, size),
	}
	for i := 0; i < size; i++ {
		v := uint16(i * 65535 / max(size-1, 1))
		ramp.Red[i], ramp.Green[i], ramp.Blue[i] = v, v, v
	}
	return ramp
}

// AddMonitor attaches a monitor without notifying anyone, as if it was
// present before Init. The first monitor added becomes primary.
func (d *Driver) AddMonitor(spec MonitorSpec) native.Monitor {
	if spec.Scale == 0 {
		spec.Scale = 1
	}
	if len(spec.Modes) == 0 {
		spec.Modes = []native.VidMode{{Width: 1920, Height: 1080, RedBits: 8, GreenBits: 8, BlueBits: 8, RefreshRate: 60}}
	}
	if spec.GammaSize == 0 {
		spec.GammaSize = DefaultGammaRampSize
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	m := &monitor{
		handle:   native.Monitor(d.newHandle()),
		name:     spec.Name,
		x:        spec.X,
		y:        spec.Y,
		widthMM:  spec.WidthMM,
		heightMM: spec.HeightMM,
		scale:    spec.Scale,
		modes:    spec.Modes,
		ramp:     linearRamp(spec.GammaSize),
	}
	d.monitors = append(d.monitors, m)
	return m.handle
}

// ConnectMonitor adds a monitor and schedules the connected callback.
func (d *Driver) ConnectMonitor(spec MonitorSpec) native.Monitor {
	m := d.AddMonitor(spec)
	d.Enqueue(func() { d.fireMonitor(m, native.Connected) })
	return m
}

// DisconnectMonitor removes m and schedules the disconnected callback.
func (d *Driver) DisconnectMonitor(m native.Monitor) {
	d.RemoveMonitorSilently(m)
	d.Enqueue(func() { d.fireMonitor(m, native.Disconnected) })
}

// RemoveMonitorSilently removes m without any callback, like a platform
// that drops monitors between enumerations.
func (d *Driver) RemoveMonitorSilently(m native.Monitor) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, mon := range d.monitors {
		if mon.handle == m {
			d.monitors = append(d.monitors[:i], d.monitors[i+1:]...)
			break
		}
	}
	for _, w := range d.windows {
		if w.monitor == m {
			w.monitor = 0
		}
	}
}

func (d *Driver) fireMonitor(m native.Monitor, event int) {
	d.mu.Lock()
	cb := d.monitorCB
	d.mu.Unlock()
	if cb != nil {
		cb(m, event)
	}
}

func (d *Driver) findMonitor(m native.Monitor) *monitor {
	for _, mon := range d.monitors {
		if mon.handle == m {
			return mon
		}
	}
	return nil
}

// monitorOp looks up m for a monitor query. An unknown handle is reported as
// a platform error; real GLFW would read freed memory.
func (d *Driver) monitorOp(function string, m native.Monitor) (*monitor, bool) {
	if !d.enter(function) {
		return nil, false
	}
	d.mu.Lock()
	mon := d.findMonitor(m)
	d.mu.Unlock()
	if mon == nil {
		d.report(native.PlatformError, fmt.Sprintf("%s: unknown monitor 0x%x", function, uintptr(m)))
		return nil, false
	}
	return mon, true
}

func (d *Driver) GetMonitors() []native.Monitor {
	if !d.enter("GetMonitors") {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]native.Monitor, 0, len(d.monitors))
	for _, m := range d.monitors {
		out = append(out, m.handle)
	}
	return out
}

func (d *Driver) GetPrimaryMonitor() native.Monitor {
	if !d.enter("GetPrimaryMonitor") {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.monitors) == 0 {
		return 0
	}
	return d.monitors[0].handle
}

func (d *Driver) SetMonitorCallback(cb native.MonitorFunc) {
	d.enter("SetMonitorCallback")
	d.mu.Lock()
	d.monitorCB = cb
	d.mu.Unlock()
}

func (d *Driver) GetMonitorPos(m native.Monitor) (x, y int) {
	mon, ok := d.monitorOp("GetMonitorPos", m)
	if !ok {
		return 0, 0
	}
	return mon.x, mon.y
}

func (d *Driver) GetMonitorWorkarea(m native.Monitor) (x, y, width, height int) {
	mon, ok := d.monitorOp("GetMonitorWorkarea", m)
	if !ok {
		return 0, 0, 0, 0
	}
	mode := mon.modes[len(mon.modes)-1]
	return mon.x, mon.y, mode.Width, mode.Height
}

func (d *Driver) GetMonitorPhysicalSize(m native.Monitor) (widthMM, heightMM int) {
	mon, ok := d.monitorOp("GetMonitorPhysicalSize", m)
	if !ok {
		return 0, 0
	}
	return mon.widthMM, mon.heightMM
}

func (d *Driver) GetMonitorContentScale(m native.Monitor) (x, y float32) {
	mon, ok := d.monitorOp("GetMonitorContentScale", m)
	if !ok {
		return 0, 0
	}
	return mon.scale, mon.scale
}

func (d *Driver) GetMonitorName(m native.Monitor) string {
	mon, ok := d.monitorOp("GetMonitorName", m)
	if !ok {
		return ""
	}
	return mon.name
}

func (d *Driver) GetVideoModes(m native.Monitor) []native.VidMode {
	mon, ok := d.monitorOp("GetVideoModes", m)
	if !ok {
		return nil
	}
	return append([]native.VidMode(nil), mon.modes...)
}

// GetVideoMode returns the last (largest) mode as the current one.
func (d *Driver) GetVideoMode(m native.Monitor) (native.VidMode, bool) {
	mon, ok := d.monitorOp("GetVideoMode", m)
	if !ok {
		return native.VidMode{}, false
	}
	return mon.modes[len(mon.modes)-1], true
}

// SetGamma builds a ramp the way GLFW does: value = (i/(n-1))^(1/gamma).
func (d *Driver) SetGamma(m native.Monitor, gamma float32) {
	mon, ok := d.monitorOp("SetGamma", m)
	if !ok {
		return
	}
	if gamma != gamma || gamma <= 0 || math.IsInf(float64(gamma), 0) {
		d.report(native.InvalidValue, fmt.Sprintf("Invalid gamma value %f", gamma))
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	n := len(mon.ramp.Red)
	for i := 0; i < n; i++ {
		v := math.Pow(float64(i)/float64(max(n-1, 1)), 1/float64(gamma))*65535 + 0.5
		v = math.Min(v, 65535)
		mon.ramp.Red[i], mon.ramp.Green[i], mon.ramp.Blue[i] = uint16(v), uint16(v), uint16(v)
	}
}

func (d *Driver) GetGammaRamp(m native.Monitor) (native.GammaRamp, bool) {
	mon, ok := d.monitorOp("GetGammaRamp", m)
	if !ok {
		return native.GammaRamp{}, false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return native.GammaRamp{
		Red:   append([]uint16(nil), mon.ramp.Red...),
		Green: append([]uint16(nil), mon.ramp.Green...),
		Blue:  append([]uint16(nil), mon.ramp.Blue...),
	}, true
}

func (d *Driver) SetGammaRamp(m native.Monitor, ramp native.GammaRamp) {
	mon, ok := d.monitorOp("SetGammaRamp", m)
	if !ok {
		return
	}
	d.mu.Lock()
	size := len(mon.ramp.Red)
	d.mu.Unlock()
	if len(ramp.Red) != size || len(ramp.Green) != size || len(ramp.Blue) != size {
		d.report(native.PlatformError, "Gamma ramp size must match current ramp size")
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	copy(mon.ramp.Red, ramp.Red)
	copy(mon.ramp.Green, ramp.Green)
	copy(mon.ramp.Blue, ramp.Blue)
}
