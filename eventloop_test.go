package glfwgo

import (
	"bytes"
	"os"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinnaokechukwu/glfwgo/internal/fakedriver"
	"github.com/obinnaokechukwu/glfwgo/native"
)

// lockThread pins the test goroutine to its OS thread for the rest of the
// test, making it a valid main thread.
func lockThread(t *testing.T) {
	t.Helper()
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)
}

// newLoop initializes an EventLoop on a fake driver and terminates it when
// the test ends.
func newLoop(t *testing.T, opts ...fakedriver.Option) (*EventLoop, *fakedriver.Driver) {
	t.Helper()
	return newLoopWith(t, EventLoopConfig{}, opts...)
}

func newLoopWith(t *testing.T, cfg EventLoopConfig, opts ...fakedriver.Option) (*EventLoop, *fakedriver.Driver) {
	t.Helper()
	lockThread(t)
	drv := fakedriver.New(opts...)
	cfg.Driver = drv
	el, err := Init(cfg)
	require.NoError(t, err)
	t.Cleanup(el.Terminate)
	return el, drv
}

// captureLogs redirects the package log into a buffer at the given level.
func captureLogs(t *testing.T, level LogLevel) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogOutput(&buf)
	SetLogLevel(level)
	t.Cleanup(func() {
		SetLogOutput(os.Stderr)
		SetLogLevel(LogWarn)
	})
	return &buf
}

// onOtherThread runs f on another locked OS thread and returns whatever it
// panicked with.
func onOtherThread(f func()) any {
	done := make(chan any, 1)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer func() { done <- recover() }()
		f()
	}()
	return <-done
}

func TestInitTerminateInit(t *testing.T) {
	lockThread(t)
	drv := fakedriver.New()

	first, err := Init(EventLoopConfig{Driver: drv})
	require.NoError(t, err)
	assert.True(t, first.Alive())
	assert.True(t, drv.Initialized())

	drv.AddMonitor(fakedriver.MonitorSpec{Name: "primary"})
	m := first.Monitors()[0]
	require.True(t, first.IsMonitorAlive(m))
	// One event waits in the driver, one in the loop's queue; neither is
	// polled before Terminate.
	drv.EmitError(native.PlatformError, "stale")
	pushEvent(MonitorEvent{Monitor: m, Connected: true})

	first.Terminate()
	assert.False(t, first.Alive())
	assert.False(t, drv.Initialized())

	second, err := Init(EventLoopConfig{Driver: drv})
	require.NoError(t, err)
	defer second.Terminate()
	assert.True(t, second.Alive())
	assert.False(t, first.Alive())

	assert.False(t, second.IsMonitorAlive(m), "the registry starts empty")
	assert.Empty(t, second.PollEvents(), "nothing survives from the first loop")
}

func TestDoubleInitPanics(t *testing.T) {
	newLoop(t)
	assert.PanicsWithValue(t, "glfwgo: Init called while another EventLoop is alive", func() {
		_, _ = Init(EventLoopConfig{Driver: fakedriver.New()})
	})
}

//go:noinline
func leakLoop(t *testing.T) {
	_, err := Init(EventLoopConfig{Driver: fakedriver.New()})
	require.NoError(t, err)
}

func TestInitAfterLeakedLoopPanics(t *testing.T) {
	lockThread(t)
	leakLoop(t)
	c := active.Load()
	require.NotNil(t, c)
	t.Cleanup(func() {
		el := &EventLoop{Proxy: Proxy{c: c}, windows: map[*windowData]*Window{}, cursors: map[*Cursor]struct{}{}}
		el.Terminate()
	})

	for i := 0; i < 5 && loopRef.Value() != nil; i++ {
		runtime.GC()
	}
	require.Nil(t, loopRef.Value())

	assert.PanicsWithValue(t,
		"glfwgo: Init called while GLFW is initialized; the previous EventLoop was garbage collected without Terminate",
		func() { _, _ = Init(EventLoopConfig{Driver: fakedriver.New()}) })
}

func TestInitUnsupportedPlatform(t *testing.T) {
	lockThread(t)
	el, err := Init(EventLoopConfig{Driver: fakedriver.New(), Platform: Ptr(PlatformWayland)})
	require.Error(t, err)
	assert.Nil(t, el)
	assert.True(t, IsCode(err, PlatformUnavailable))

	var glfwErr *Error
	require.ErrorAs(t, err, &glfwErr)
	assert.Equal(t, "Init", glfwErr.Op)

	// A failed Init leaves nothing alive.
	el, err = Init(EventLoopConfig{Driver: fakedriver.New()})
	require.NoError(t, err)
	el.Terminate()
}

type silentInitDriver struct {
	*fakedriver.Driver
}

func (silentInitDriver) Init() bool { return false }

func TestInitSilentFailure(t *testing.T) {
	lockThread(t)
	_, err := Init(EventLoopConfig{Driver: silentInitDriver{fakedriver.New()}})
	require.Error(t, err)
	assert.True(t, IsCode(err, NotInitialized))
}

func TestInitHintsApplied(t *testing.T) {
	el, drv := newLoopWith(t, EventLoopConfig{
		Platform:           Ptr(PlatformNull),
		JoystickHatButtons: Bool(false),
		WaylandLibdecor:    Ptr(WaylandDisableLibdecor),
	})

	v, ok := drv.InitHintValue(native.JoystickHatButtons)
	require.True(t, ok)
	assert.Equal(t, native.False, v)

	v, ok = drv.InitHintValue(native.WaylandLibdecor)
	require.True(t, ok)
	assert.Equal(t, native.WaylandDisableLibdecor, v)

	assert.Equal(t, PlatformNull, el.Platform())
}

func TestRejectedInitHintIsNotFatal(t *testing.T) {
	lockThread(t)
	buf := captureLogs(t, LogWarn)
	drv := fakedriver.New()
	drv.FailOn("InitHint", native.InvalidEnum, "hint not supported")

	el, err := Init(EventLoopConfig{Driver: drv, CocoaMenubar: Bool(false)})
	require.NoError(t, err)
	defer el.Terminate()

	assert.Contains(t, buf.String(), "init hint rejected")
	assert.Contains(t, buf.String(), "CocoaMenubar")
}

func TestPollEventsOrder(t *testing.T) {
	el, drv := newLoop(t)
	w := newTestWindow(t, el, WindowConfig{})

	assert.Empty(t, el.PollEvents())

	drv.EmitKey(w.d.handle, int(KeyA), 38, native.Press, native.ModShift)
	drv.EmitCursorPos(w.d.handle, 1.5, 2.5)

	events := el.PollEvents()
	require.Len(t, events, 2)
	assert.Equal(t, KeyEvent{Window: w.ID(), Key: KeyA, Scancode: 38, Action: Press, Mods: ModShift}, events[0].Event)
	assert.Equal(t, CursorPosEvent{Window: w.ID(), X: 1.5, Y: 2.5}, events[1].Event)
	assert.LessOrEqual(t, events[0].Time, events[1].Time)

	assert.Empty(t, el.PollEvents(), "events are delivered once")
}

func TestWaitEventsTimeoutReturnsEmpty(t *testing.T) {
	el, _ := newLoop(t)
	start := time.Now()
	assert.Empty(t, el.WaitEventsTimeout(10*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)

	// Negative timeouts poll instead of reaching GLFW as an invalid value.
	assert.Empty(t, el.WaitEventsTimeout(-time.Second))
	assert.NoError(t, GetError())
}

func TestPostEmptyEventWakesWaitEvents(t *testing.T) {
	el, _ := newLoop(t)
	p := el.Proxy
	go func() {
		time.Sleep(20 * time.Millisecond)
		p.PostEmptyEvent()
	}()
	assert.Empty(t, el.WaitEvents())
}

func TestErrorDuringDispatchIsQueued(t *testing.T) {
	el, drv := newLoop(t)
	drv.EmitError(native.PlatformError, "display connection lost")

	events := el.PollEvents()
	require.Len(t, events, 1)
	ev, ok := events[0].Event.(ErrorEvent)
	require.True(t, ok)
	assert.Equal(t, PlatformError, ev.Err.Code)
	assert.Equal(t, "display connection lost", ev.Err.Description)

	// The fault also landed in the main thread's slot.
	assert.True(t, IsCode(GetError(), PlatformError))
}

func TestErrorEventCarriesCurrentTime(t *testing.T) {
	el, drv := newLoop(t)
	time.Sleep(20 * time.Millisecond)
	drv.EmitError(native.PlatformError, "display connection lost")

	events := el.PollEvents()
	require.Len(t, events, 1)
	assert.GreaterOrEqual(t, events[0].Time, 0.02)
	assert.LessOrEqual(t, events[0].Time, el.Time())
}

func TestErrorWhileStampingIsNotRequeued(t *testing.T) {
	el, drv := newLoop(t)
	drv.FailOn("GetTime", native.InvalidValue, "clock unavailable")
	drv.EmitError(native.PlatformError, "display connection lost")

	events := el.PollEvents()
	drv.ClearFailures()
	require.Len(t, events, 1)
	ev, ok := events[0].Event.(ErrorEvent)
	require.True(t, ok)
	assert.Equal(t, PlatformError, ev.Err.Code)
	assert.True(t, IsCode(GetError(), PlatformError))
}

func TestErrorOutsideDispatchIsNotQueued(t *testing.T) {
	el, _ := newLoop(t)
	assert.Equal(t, -1, el.KeyScancode(Key(1)))
	assert.True(t, IsCode(GetError(), InvalidEnum))
	assert.Empty(t, el.PollEvents())
}

func TestErrorCallback(t *testing.T) {
	var got []ErrorCode
	el, _ := newLoopWith(t, EventLoopConfig{
		ErrorCallback: func(code ErrorCode, description string) {
			got = append(got, code)
		},
	})

	el.KeyScancode(Key(1))
	assert.Equal(t, []ErrorCode{InvalidEnum}, got)
	assert.Error(t, GetError(), "the slot is filled as well")
}

func TestMainThreadEnforced(t *testing.T) {
	el, _ := newLoop(t)
	r := onOtherThread(func() { el.PollEvents() })
	require.IsType(t, "", r)
	assert.Contains(t, r, "PollEvents must be called on the main thread")

	r = onOtherThread(func() { el.Monitors() })
	require.IsType(t, "", r)
	assert.Contains(t, r, "Monitors must be called on the main thread")
}

func TestProxyWorksOffMainThread(t *testing.T) {
	el, _ := newLoop(t)
	p := el.Proxy
	var version string
	r := onOtherThread(func() {
		version = p.VersionString()
		p.PostEmptyEvent()
		_ = p.Time()
	})
	assert.Nil(t, r)
	assert.Contains(t, version, "fake")
}

func TestProxyPanicsAfterTerminate(t *testing.T) {
	el, _ := newLoop(t)
	p := el.Proxy
	el.Terminate()

	assert.False(t, p.Alive())
	assert.PanicsWithValue(t, "glfwgo: Time called without a live EventLoop", func() { p.Time() })
	assert.Panics(t, func() { el.PollEvents() })
	assert.NotPanics(t, el.Terminate, "Terminate is idempotent")
}

func TestTerminateDestroysWindowsAndCursors(t *testing.T) {
	el, drv := newLoop(t)
	w := newTestWindow(t, el, WindowConfig{})
	cur, err := NewStandardCursor(el, CrosshairCursor)
	require.NoError(t, err)
	assert.Equal(t, 1, el.WindowCount())
	buf := captureLogs(t, LogWarn)

	el.Terminate()
	assert.Contains(t, buf.String(), "windows left open")
	assert.False(t, w.IsAlive())
	assert.Equal(t, 1, drv.Calls("DestroyWindow"))
	assert.Equal(t, 1, drv.Calls("DestroyCursor"))
	assert.Equal(t, 0, el.WindowCount())

	assert.NotPanics(t, w.Destroy)
	assert.NotPanics(t, cur.Destroy)
}

func TestTerminateOffMainThreadIsLogged(t *testing.T) {
	el, _ := newLoop(t)
	buf := captureLogs(t, LogError)
	assert.Nil(t, onOtherThread(el.Terminate))
	assert.False(t, el.Alive())
	assert.Contains(t, buf.String(), "terminated off the main thread")
}

func TestPlatformSupported(t *testing.T) {
	el, _ := newLoop(t, fakedriver.WithSupportedPlatforms(native.PlatformWayland))
	assert.True(t, el.PlatformSupported(PlatformX11))
	assert.True(t, el.PlatformSupported(PlatformWayland))
	assert.False(t, el.PlatformSupported(PlatformCocoa))
}

func TestProxyTime(t *testing.T) {
	el, _ := newLoop(t)
	require.NoError(t, el.SetTime(100))
	assert.GreaterOrEqual(t, el.Time(), 100.0)

	err := el.SetTime(-1)
	assert.True(t, IsCode(err, InvalidValue))
	var glfwErr *Error
	require.ErrorAs(t, err, &glfwErr)
	assert.Equal(t, "SetTime", glfwErr.Op)
}

func TestEventLoopString(t *testing.T) {
	el, _ := newLoop(t)
	assert.True(t, strings.HasPrefix(el.String(), "EventLoop(alive"))
	el.Terminate()
	assert.True(t, strings.HasPrefix(el.String(), "EventLoop(terminated"))
}
