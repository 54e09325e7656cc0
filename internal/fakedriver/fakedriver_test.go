package fakedriver

import (
	"runtime"
	"testing"
	"time"

	"github.com/obinnaokechukwu/glfwgo/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedError struct {
	code int
	desc string
}

func newInitialized(t *testing.T, opts ...Option) (*Driver, *[]recordedError) {
	t.Helper()
	d := New(opts...)
	var errs []recordedError
	d.SetErrorCallback(func(code int, desc string) {
		errs = append(errs, recordedError{code, desc})
	})
	require.True(t, d.Init())
	return d, &errs
}

func TestCallsBeforeInitReportNotInitialized(t *testing.T) {
	d := New()
	var codes []int
	d.SetErrorCallback(func(code int, _ string) { codes = append(codes, code) })

	assert.Nil(t, d.GetMonitors())
	assert.Equal(t, []int{native.NotInitialized}, codes)

	major, _, _ := d.GetVersion()
	assert.Equal(t, native.VersionMajor, major)
	assert.Len(t, codes, 1)
}

func TestInitRejectsUnsupportedPlatform(t *testing.T) {
	d := New()
	var codes []int
	d.SetErrorCallback(func(code int, _ string) { codes = append(codes, code) })

	d.InitHint(native.PlatformHint, native.PlatformWayland)
	assert.False(t, d.Init())
	assert.Equal(t, []int{native.PlatformUnavailable}, codes)
	assert.False(t, d.Initialized())
}

func TestFailOn(t *testing.T) {
	d, errs := newInitialized(t)
	d.FailOn("GetPrimaryMonitor", native.PlatformError, "boom")
	d.AddMonitor(MonitorSpec{Name: "A"})

	assert.Zero(t, d.GetPrimaryMonitor())
	require.Len(t, *errs, 1)
	assert.Equal(t, native.PlatformError, (*errs)[0].code)
	assert.Equal(t, "boom", (*errs)[0].desc)
	assert.Equal(t, 1, d.Calls("GetPrimaryMonitor"))

	d.ClearFailures()
	assert.NotZero(t, d.GetPrimaryMonitor())
}

func TestMonitorCallbacksOnlyFireDuringPoll(t *testing.T) {
	d, _ := newInitialized(t)
	var events []int
	d.SetMonitorCallback(func(_ native.Monitor, event int) { events = append(events, event) })

	m := d.ConnectMonitor(MonitorSpec{Name: "B"})
	assert.Empty(t, events)
	assert.Contains(t, d.GetMonitors(), m)

	d.DisconnectMonitor(m)
	assert.NotContains(t, d.GetMonitors(), m)
	d.PollEvents()
	assert.Equal(t, []int{native.Connected, native.Disconnected}, events)
}

func TestWindowPositionHint(t *testing.T) {
	d, _ := newInitialized(t)
	d.WindowHint(native.PositionX, 10)
	d.WindowHint(native.PositionY, 20)
	w := d.CreateWindow(640, 480, "t", 0, 0)
	require.NotZero(t, w)

	x, y := d.GetWindowPos(w)
	assert.Equal(t, 10, x)
	assert.Equal(t, 20, y)
}

func TestWaylandHidesWindowPosition(t *testing.T) {
	d, errs := newInitialized(t, WithPlatform(native.PlatformWayland))
	w := d.CreateWindow(640, 480, "t", 0, 0)

	x, y := d.GetWindowPos(w)
	assert.Zero(t, x)
	assert.Zero(t, y)
	require.Len(t, *errs, 1)
	assert.Equal(t, native.FeatureUnavailable, (*errs)[0].code)
}

func TestContextIsPerThread(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	d, _ := newInitialized(t)
	w := d.CreateWindow(640, 480, "t", 0, 0)
	d.MakeContextCurrent(w)
	assert.Equal(t, w, d.GetCurrentContext())

	other := make(chan native.Window)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		other <- d.GetCurrentContext()
	}()
	assert.Zero(t, <-other)

	d.MakeContextCurrent(0)
	assert.Zero(t, d.GetCurrentContext())
}

func TestNoAPIWindowCannotBeCurrent(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	d, errs := newInitialized(t)
	d.WindowHint(native.ClientAPI, native.NoAPI)
	w := d.CreateWindow(640, 480, "t", 0, 0)
	d.MakeContextCurrent(w)

	assert.Zero(t, d.GetCurrentContext())
	require.Len(t, *errs, 1)
	assert.Equal(t, native.NoWindowContext, (*errs)[0].code)
}

func TestWaitEventsWokenByPostEmptyEvent(t *testing.T) {
	d, _ := newInitialized(t)

	done := make(chan struct{})
	go func() {
		d.WaitEvents()
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	d.PostEmptyEvent()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitEvents was not woken")
	}
}

func TestWaitEventsTimeoutExpires(t *testing.T) {
	d, _ := newInitialized(t)
	start := time.Now()
	d.WaitEventsTimeout(0.02)
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
}

func TestEmitDeliversInOrder(t *testing.T) {
	d, _ := newInitialized(t)
	w := d.CreateWindow(640, 480, "t", 0, 0)
	var got []int
	d.SetWindowCallbacks(w, &native.WindowCallbacks{
		Key: func(key, _, _, _ int) { got = append(got, key) },
	})

	d.EmitKey(w, 65, 0, native.Press, 0)
	d.EmitKey(w, 66, 0, native.Press, 0)
	assert.Equal(t, 2, d.Pending())
	d.PollEvents()
	assert.Equal(t, []int{65, 66}, got)
	assert.Zero(t, d.Pending())
}

func TestGammaRampSizeMustMatch(t *testing.T) {
	d, errs := newInitialized(t)
	m := d.AddMonitor(MonitorSpec{Name: "C", GammaSize: 4})

	ramp, ok := d.GetGammaRamp(m)
	require.True(t, ok)
	assert.Len(t, ramp.Red, 4)
	assert.Equal(t, uint16(65535), ramp.Red[3])

	d.SetGammaRamp(m, native.GammaRamp{Red: []uint16{1}, Green: []uint16{1}, Blue: []uint16{1}})
	require.Len(t, *errs, 1)
	assert.Equal(t, native.PlatformError, (*errs)[0].code)
}

func TestJoystickHatsAsButtons(t *testing.T) {
	d, _ := newInitialized(t)
	d.ConnectJoystick(0, Joystick{Name: "pad", Buttons: []byte{native.Press}, Hats: []byte{native.HatUp}})

	assert.True(t, d.JoystickPresent(0))
	assert.Equal(t, []byte{native.Press, native.Press, native.Release, native.Release, native.Release}, d.GetJoystickButtons(0))
}

func TestCreateWindowSurfaceRequiresNoAPI(t *testing.T) {
	d, errs := newInitialized(t, WithVulkan("VK_KHR_surface"))
	gl := d.CreateWindow(640, 480, "gl", 0, 0)
	_, result := d.CreateWindowSurface(1, gl, 0)
	assert.Equal(t, int32(VkErrorNativeWindowInUse), result)
	require.Len(t, *errs, 1)

	d.WindowHint(native.ClientAPI, native.NoAPI)
	vk := d.CreateWindow(640, 480, "vk", 0, 0)
	surface, result := d.CreateWindowSurface(1, vk, 0)
	assert.Equal(t, int32(VkSuccess), result)
	assert.NotZero(t, surface)
}
