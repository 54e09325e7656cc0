package main

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinnaokechukwu/glfwgo"
	"github.com/obinnaokechukwu/glfwgo/internal/fakedriver"
)

func fakeLoop(t *testing.T) (*glfwgo.EventLoop, *fakedriver.Driver) {
	t.Helper()
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)

	drv := fakedriver.New()
	el, err := glfwgo.Init(glfwgo.EventLoopConfig{Driver: drv})
	require.NoError(t, err)
	t.Cleanup(el.Terminate)
	return el, drv
}

func TestCommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"version", "monitors", "vulkan", "joysticks", "events"} {
		assert.Contains(t, names, want)
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"NAME", "MODE"}, [][]string{{"DP-1", "1920x1080@60Hz"}})
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "DP-1")
	assert.Contains(t, out, "1920x1080@60Hz")
}

func TestFormatMode(t *testing.T) {
	m := glfwgo.VideoMode{Width: 2560, Height: 1440, RedBits: 8, GreenBits: 8, BlueBits: 8, RefreshRate: 144}
	assert.Equal(t, "2560x1440@144Hz (888)", formatMode(m))
}

func TestMonitorRow(t *testing.T) {
	el, drv := fakeLoop(t)
	drv.AddMonitor(fakedriver.MonitorSpec{
		Name: "DP-1", X: 1920, WidthMM: 600, HeightMM: 340, Scale: 1.5,
		Modes: []glfwgo.VideoMode{{Width: 1920, Height: 1080, RedBits: 8, GreenBits: 8, BlueBits: 8, RefreshRate: 60}},
	})

	monitors := el.Monitors()
	require.Len(t, monitors, 1)
	row, err := monitorRow(el, monitors[0])
	require.NoError(t, err)
	assert.Equal(t, "DP-1", row[0])
	assert.Equal(t, "1920,0", row[1])
	assert.Equal(t, "600x340", row[3])
	assert.Equal(t, "1.50x1.50", row[4])
	assert.Equal(t, "1920x1080@60Hz (888)", row[5])
	assert.Equal(t, "1", row[6])
}

func TestPumpEventsStopsOnClose(t *testing.T) {
	el, _ := fakeLoop(t)
	w, err := glfwgo.NewWindow(el, 320, 240, "events", glfwgo.WindowConfig{})
	require.NoError(t, err)
	defer w.Destroy()

	w.SetShouldClose(true)
	assert.NoError(t, pumpEvents(el, w, 0))
}

func TestPumpEventsStopsAtDeadline(t *testing.T) {
	el, _ := fakeLoop(t)
	w, err := glfwgo.NewWindow(el, 320, 240, "events", glfwgo.WindowConfig{})
	require.NoError(t, err)
	defer w.Destroy()

	start := time.Now()
	require.NoError(t, pumpEvents(el, w, 50*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	assert.False(t, w.ShouldClose())
}
