package glfwgo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinnaokechukwu/glfwgo/internal/fakedriver"
	"github.com/obinnaokechukwu/glfwgo/native"
)

func TestMonitorsEnumeration(t *testing.T) {
	el, drv := newLoop(t)
	h1 := drv.AddMonitor(fakedriver.MonitorSpec{Name: "DELL U2720Q"})
	h2 := drv.AddMonitor(fakedriver.MonitorSpec{Name: "LG HDR 4K"})

	m1, m2 := MonitorID{h: h1}, MonitorID{h: h2}
	assert.False(t, el.IsMonitorAlive(m1), "monitors are tracked once enumerated")

	assert.Equal(t, []MonitorID{m1, m2}, el.Monitors())
	assert.True(t, el.IsMonitorAlive(m1))
	assert.True(t, el.IsMonitorAlive(m2))

	name, err := el.MonitorName(m2)
	require.NoError(t, err)
	assert.Equal(t, "LG HDR 4K", name)
}

func TestPrimaryMonitor(t *testing.T) {
	el, drv := newLoop(t)
	_, ok := el.PrimaryMonitor()
	assert.False(t, ok)

	h := drv.AddMonitor(fakedriver.MonitorSpec{Name: "primary"})
	m, ok := el.PrimaryMonitor()
	require.True(t, ok)
	assert.Equal(t, h, native.Monitor(m.Raw()))
	assert.True(t, el.IsMonitorAlive(m))
}

func TestMonitorQueries(t *testing.T) {
	el, drv := newLoop(t)
	modes := []native.VidMode{
		{Width: 1280, Height: 720, RedBits: 8, GreenBits: 8, BlueBits: 8, RefreshRate: 60},
		{Width: 2560, Height: 1440, RedBits: 8, GreenBits: 8, BlueBits: 8, RefreshRate: 144},
	}
	drv.AddMonitor(fakedriver.MonitorSpec{Name: "wide", X: 1920, Y: 0, WidthMM: 597, HeightMM: 336, Scale: 1.5, Modes: modes})
	m, ok := el.PrimaryMonitor()
	require.True(t, ok)

	x, y, err := el.MonitorPos(m)
	require.NoError(t, err)
	assert.Equal(t, []int{1920, 0}, []int{x, y})

	_, _, w, h, err := el.MonitorWorkarea(m)
	require.NoError(t, err)
	assert.Equal(t, []int{2560, 1440}, []int{w, h})

	wmm, hmm, err := el.MonitorPhysicalSize(m)
	require.NoError(t, err)
	assert.Equal(t, []int{597, 336}, []int{wmm, hmm})

	sx, sy, err := el.MonitorContentScale(m)
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), sx)
	assert.Equal(t, float32(1.5), sy)

	got, err := el.VideoModes(m)
	require.NoError(t, err)
	assert.Equal(t, modes, got)

	mode, err := el.VideoMode(m)
	require.NoError(t, err)
	assert.Equal(t, 144, mode.RefreshRate)
}

func TestMonitorDisconnect(t *testing.T) {
	el, drv := newLoop(t)
	h := drv.AddMonitor(fakedriver.MonitorSpec{Name: "external"})
	m := el.Monitors()[0]

	drv.DisconnectMonitor(h)
	events := el.PollEvents()
	require.Len(t, events, 1)
	assert.Equal(t, MonitorEvent{Monitor: m, Connected: false}, events[0].Event)
	assert.False(t, el.IsMonitorAlive(m))

	drv.ResetCalls()
	ops := map[string]func() error{
		"MonitorPos":          func() error { _, _, err := el.MonitorPos(m); return err },
		"MonitorWorkarea":     func() error { _, _, _, _, err := el.MonitorWorkarea(m); return err },
		"MonitorPhysicalSize": func() error { _, _, err := el.MonitorPhysicalSize(m); return err },
		"MonitorContentScale": func() error { _, _, err := el.MonitorContentScale(m); return err },
		"MonitorName":         func() error { _, err := el.MonitorName(m); return err },
		"VideoModes":          func() error { _, err := el.VideoModes(m); return err },
		"VideoMode":           func() error { _, err := el.VideoMode(m); return err },
		"SetGamma":            func() error { return el.SetGamma(m, 2.2) },
		"GammaRamp":           func() error { _, err := el.GammaRamp(m); return err },
		"SetGammaRamp":        func() error { return el.SetGammaRamp(m, make([]uint16, 768)) },
		"X11Monitor":          func() error { _, err := el.X11Monitor(m); return err },
		"Win32Adapter":        func() error { _, err := el.Win32Adapter(m); return err },
		"Win32Monitor":        func() error { _, err := el.Win32Monitor(m); return err },
		"NewWindow": func() error {
			_, err := NewWindow(el, 640, 480, "full", WindowConfig{}, WithMonitor(m))
			return err
		},
	}
	for name, op := range ops {
		err := op()
		assert.True(t, IsDeadHandle(err), name)
		assert.True(t, IsCode(err, PlatformError), name)
	}
	for _, fn := range []string{
		"GetMonitorPos", "GetMonitorWorkarea", "GetMonitorPhysicalSize", "GetMonitorContentScale",
		"GetMonitorName", "GetVideoModes", "GetVideoMode", "SetGamma", "GetGammaRamp", "SetGammaRamp",
		"NativeHandle", "NativeString", "CreateWindow",
	} {
		assert.Zero(t, drv.Calls(fn), "%s reached the driver", fn)
	}
}

func TestMonitorConnectIsInformational(t *testing.T) {
	el, drv := newLoop(t)
	h := drv.ConnectMonitor(fakedriver.MonitorSpec{Name: "hotplugged"})
	m := MonitorID{h: h}

	events := el.PollEvents()
	require.Len(t, events, 1)
	assert.Equal(t, MonitorEvent{Monitor: m, Connected: true}, events[0].Event)
	assert.False(t, el.IsMonitorAlive(m))

	el.Monitors()
	assert.True(t, el.IsMonitorAlive(m))
}

func TestMonitorVanishedWithoutEvent(t *testing.T) {
	el, drv := newLoop(t)
	h := drv.AddMonitor(fakedriver.MonitorSpec{Name: "flaky"})
	m := el.Monitors()[0]
	buf := captureLogs(t, LogWarn)

	drv.RemoveMonitorSilently(h)
	assert.Empty(t, el.Monitors())
	assert.False(t, el.IsMonitorAlive(m))
	assert.Contains(t, buf.String(), "monitors vanished without a disconnect event")
}

func TestGammaRampRoundTrip(t *testing.T) {
	el, drv := newLoop(t)
	drv.AddMonitor(fakedriver.MonitorSpec{Name: "gamma"})
	m := el.Monitors()[0]

	ramp, err := el.GammaRamp(m)
	require.NoError(t, err)
	require.Len(t, ramp, 3*fakedriver.DefaultGammaRampSize)
	assert.Equal(t, uint16(0), ramp[0])
	assert.Equal(t, uint16(65535), ramp[255])
	assert.Equal(t, uint16(65535), ramp[3*256-1])

	for i := range ramp[:256] {
		ramp[i] = 0
	}
	require.NoError(t, el.SetGammaRamp(m, ramp))

	got, err := el.GammaRamp(m)
	require.NoError(t, err)
	assert.Equal(t, ramp, got)
}

func TestSetGammaRampRejectsBadLengths(t *testing.T) {
	el, drv := newLoop(t)
	drv.AddMonitor(fakedriver.MonitorSpec{Name: "gamma"})
	m := el.Monitors()[0]

	for _, n := range []int{0, 5, 3 * 128} {
		err := el.SetGammaRamp(m, make([]uint16, n))
		assert.True(t, errors.Is(err, ErrInvalidGammaRamp), "length %d", n)
	}
	assert.Zero(t, drv.Calls("SetGammaRamp"))
}

func TestSetGammaRampWin32Size(t *testing.T) {
	el, drv := newLoop(t, fakedriver.WithPlatform(native.PlatformWin32))
	drv.AddMonitor(fakedriver.MonitorSpec{Name: "odd", GammaSize: 128})
	m := el.Monitors()[0]

	ramp, err := el.GammaRamp(m)
	require.NoError(t, err)
	require.Len(t, ramp, 3*128)

	err = el.SetGammaRamp(m, ramp)
	assert.ErrorIs(t, err, ErrInvalidGammaRamp)
	assert.Zero(t, drv.Calls("SetGammaRamp"))
}

func TestSetGamma(t *testing.T) {
	el, drv := newLoop(t)
	drv.AddMonitor(fakedriver.MonitorSpec{Name: "gamma"})
	m := el.Monitors()[0]

	require.NoError(t, el.SetGamma(m, 2.2))
	err := el.SetGamma(m, -1)
	assert.True(t, IsCode(err, InvalidValue))
}

func TestPackRamp(t *testing.T) {
	ramp := native.GammaRamp{
		Red:   []uint16{1, 2},
		Green: []uint16{3, 4},
		Blue:  []uint16{5, 6},
	}
	packed := packRamp(ramp)
	assert.Equal(t, []uint16{1, 2, 3, 4, 5, 6}, packed)

	back, err := unpackRamp(packed)
	require.NoError(t, err)
	assert.Equal(t, ramp, back)
}

func TestWindowMonitorTracksMonitor(t *testing.T) {
	el, drv := newLoop(t)
	drv.AddMonitor(fakedriver.MonitorSpec{Name: "tv"})
	m := el.Monitors()[0]

	w, err := NewWindow(el, 1920, 1080, "full screen", WindowConfig{}, WithMonitor(m))
	require.NoError(t, err)
	got, ok := w.Monitor()
	require.True(t, ok)
	assert.Equal(t, m, got)

	require.NoError(t, w.SetMonitor(MonitorID{}, 10, 10, 640, 480, DontCare))
	_, ok = w.Monitor()
	assert.False(t, ok)
}
