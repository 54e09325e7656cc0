package glfwgo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinnaokechukwu/glfwgo/internal/fakedriver"
	"github.com/obinnaokechukwu/glfwgo/native"
)

func TestNativeHandlesOnX11(t *testing.T) {
	el, drv := newLoop(t)
	w := newTestWindow(t, el, WindowConfig{})
	drv.AddMonitor(fakedriver.MonitorSpec{Name: "x11"})
	m := el.Monitors()[0]

	display, err := el.X11Display()
	require.NoError(t, err)
	assert.Equal(t, uintptr(0x100), display)

	xwin, err := w.X11Window()
	require.NoError(t, err)
	assert.Equal(t, w.ID().Raw()+0x100, xwin)

	glx, err := w.GLXContext()
	require.NoError(t, err)
	assert.NotZero(t, glx)

	out, err := el.X11Monitor(m)
	require.NoError(t, err)
	assert.Equal(t, m.Raw()+0x100, out)
}

func TestNativeHandleWrongPlatform(t *testing.T) {
	el, drv := newLoop(t)
	w := newTestWindow(t, el, WindowConfig{})
	drv.AddMonitor(fakedriver.MonitorSpec{Name: "x11"})
	m := el.Monitors()[0]
	drv.ResetCalls()

	_, err := w.WaylandWindow()
	assert.ErrorIs(t, err, ErrWrongPlatform)
	_, err = w.Win32Window()
	assert.ErrorIs(t, err, ErrWrongPlatform)
	_, err = w.NSGLContext()
	assert.ErrorIs(t, err, ErrWrongPlatform)
	_, err = el.WaylandDisplay()
	assert.ErrorIs(t, err, ErrWrongPlatform)
	_, err = el.CocoaMonitor(m)
	assert.ErrorIs(t, err, ErrWrongPlatform)
	_, err = el.Win32Adapter(m)
	assert.ErrorIs(t, err, ErrWrongPlatform)

	assert.Zero(t, drv.Calls("NativeHandle"))
	assert.Zero(t, drv.Calls("NativeString"))
}

func TestNativeHandleMissingAccessor(t *testing.T) {
	el, _ := newLoop(t)
	_, err := el.EGLDisplay()
	assert.True(t, IsCode(err, FeatureUnimplemented))
}

func TestNativeHandlesOnWayland(t *testing.T) {
	el, _ := newLoop(t, fakedriver.WithPlatform(native.PlatformWayland))
	w := newTestWindow(t, el, WindowConfig{})

	surface, err := w.WaylandWindow()
	require.NoError(t, err)
	assert.Equal(t, w.ID().Raw()+0x100, surface)

	_, err = w.X11Window()
	assert.ErrorIs(t, err, ErrWrongPlatform)
}

func TestMonitorNamesOnWin32(t *testing.T) {
	el, drv := newLoop(t, fakedriver.WithPlatform(native.PlatformWin32))
	drv.AddMonitor(fakedriver.MonitorSpec{Name: "primary"})
	m := el.Monitors()[0]

	adapter, err := el.Win32Adapter(m)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(`\\.\DISPLAY%d`, m.Raw()), adapter)

	monitor, err := el.Win32Monitor(m)
	require.NoError(t, err)
	assert.Equal(t, adapter+`\Monitor0`, monitor)

	_, err = el.X11Monitor(m)
	assert.ErrorIs(t, err, ErrWrongPlatform)
}

func TestNativeHandleOnDestroyedWindowPanics(t *testing.T) {
	el, _ := newLoop(t)
	w := newTestWindow(t, el, WindowConfig{})
	w.Destroy()
	assert.Panics(t, func() { _, _ = w.X11Window() })
}
