package glfwgo

import (
	"fmt"
	"math"
	"sync"
	"time"
	"weak"

	"github.com/obinnaokechukwu/glfwgo/internal/bindings"
	"github.com/obinnaokechukwu/glfwgo/internal/logger"
	"github.com/obinnaokechukwu/glfwgo/internal/thread"
	"github.com/obinnaokechukwu/glfwgo/native"
)

// EventLoopConfig holds the init hints applied before GLFW is initialized.
// Nil fields leave the library default.
type EventLoopConfig struct {
	// Driver replaces the purego bindings. Tests pass a fake here.
	Driver native.Driver `mapstructure:"-"`

	// ErrorCallback, if set, is called for every GLFW error in addition to
	// the per-thread error slot. Without it errors are logged at debug.
	ErrorCallback func(code ErrorCode, description string) `mapstructure:"-"`

	Platform            *Platform            `mapstructure:"platform"`
	JoystickHatButtons  *bool                `mapstructure:"joystick_hat_buttons"`
	AnglePlatform       *AnglePlatform       `mapstructure:"angle_platform"`
	CocoaChdirResources *bool                `mapstructure:"cocoa_chdir_resources"`
	CocoaMenubar        *bool                `mapstructure:"cocoa_menubar"`
	X11XCBVulkanSurface *bool                `mapstructure:"x11_xcb_vulkan_surface"`
	WaylandLibdecor     *WaylandLibdecorMode `mapstructure:"wayland_libdecor"`
}

type hintValue struct {
	name  string
	hint  int
	value int
	str   string
	isStr bool
}

func boolHint(b bool) int {
	if b {
		return native.True
	}
	return native.False
}

func (cfg *EventLoopConfig) hints() []hintValue {
	var hints []hintValue
	addBool := func(name string, hint int, v *bool) {
		if v != nil {
			hints = append(hints, hintValue{name: name, hint: hint, value: boolHint(*v)})
		}
	}
	if cfg.Platform != nil {
		hints = append(hints, hintValue{name: "Platform", hint: native.PlatformHint, value: int(*cfg.Platform)})
	}
	addBool("JoystickHatButtons", native.JoystickHatButtons, cfg.JoystickHatButtons)
	if cfg.AnglePlatform != nil {
		hints = append(hints, hintValue{name: "AnglePlatform", hint: native.AnglePlatformType, value: int(*cfg.AnglePlatform)})
	}
	addBool("CocoaChdirResources", native.CocoaChdirResources, cfg.CocoaChdirResources)
	addBool("CocoaMenubar", native.CocoaMenubar, cfg.CocoaMenubar)
	addBool("X11XCBVulkanSurface", native.X11XCBVulkanSurface, cfg.X11XCBVulkanSurface)
	if cfg.WaylandLibdecor != nil {
		hints = append(hints, hintValue{name: "WaylandLibdecor", hint: native.WaylandLibdecor, value: int(*cfg.WaylandLibdecor)})
	}
	return hints
}

// EventLoop owns the initialized GLFW library. Exactly one may be alive per
// process, and it must only be used on the thread that created it, which
// must have called runtime.LockOSThread. Its embedded Proxy may be copied to
// other goroutines.
type EventLoop struct {
	Proxy

	mu      sync.Mutex
	windows map[*windowData]*Window
	cursors map[*Cursor]struct{}
}

// Init initializes GLFW on the calling thread, which becomes the main
// thread. Calling Init while another EventLoop is alive panics.
//
// Init hints that GLFW rejects are logged and skipped. If GLFW itself fails
// to initialize, the error it reported is returned.
func Init(cfg EventLoopConfig) (*EventLoop, error) {
	lifecycleMu.Lock()
	defer lifecycleMu.Unlock()

	if prev := active.Load(); prev != nil && prev.alive.Load() {
		if loopRef.Value() == nil {
			panic("glfwgo: Init called while GLFW is initialized; the previous EventLoop was garbage collected without Terminate")
		}
		panic("glfwgo: Init called while another EventLoop is alive")
	}

	drv := cfg.Driver
	if drv == nil {
		d, err := bindings.Driver()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotLoaded, err)
		}
		drv = d
	}

	c := &core{drv: drv, mainThread: thread.Current()}
	drv.SetErrorCallback(errorBridge(c, cfg.ErrorCallback))

	for _, h := range cfg.hints() {
		if err := check("InitHint", func() { drv.InitHint(h.hint, h.value) }); err != nil {
			logger.Warn("init hint rejected", "hint", h.name, "value", h.value, "err", err)
		}
	}

	ClearError()
	if !drv.Init() {
		if e := takeError(); e != nil {
			e.Op = "Init"
			return nil, e
		}
		return nil, silentInitError()
	}
	if e := takeError(); e != nil {
		logger.Warn("glfw reported an error during init", "code", e.Code, "description", e.Description)
	}

	c.alive.Store(true)
	el := &EventLoop{
		Proxy:   Proxy{c: c},
		windows: make(map[*windowData]*Window),
		cursors: make(map[*Cursor]struct{}),
	}
	active.Store(c)
	loopRef = weak.Make(el)

	if err := check("SetMonitorCallback", func() { drv.SetMonitorCallback(monitorCallback) }); err != nil {
		logger.Error("failed to register monitor callback", "err", err)
	}
	if err := check("SetJoystickCallback", func() { drv.SetJoystickCallback(joystickCallback) }); err != nil {
		logger.Error("failed to register joystick callback", "err", err)
	}

	logger.Info("glfw initialized", "version", drv.GetVersionString(), "platform", Platform(drv.GetPlatform()), "thread", c.mainThread)
	return el, nil
}

// Terminate destroys every remaining window and cursor and terminates GLFW.
// Every handle obtained from the loop is dead afterwards. Calling it again
// is a no-op. It belongs on the main thread; calls from elsewhere are
// logged and carried out anyway.
func (el *EventLoop) Terminate() {
	lifecycleMu.Lock()
	defer lifecycleMu.Unlock()

	c := el.c
	if !c.alive.Load() {
		return
	}
	if id := thread.Current(); id != c.mainThread {
		logger.Error("EventLoop terminated off the main thread", "main", c.mainThread, "thread", id)
	}

	el.mu.Lock()
	windows := make([]*Window, 0, len(el.windows))
	for _, w := range el.windows {
		windows = append(windows, w)
	}
	cursors := make([]*Cursor, 0, len(el.cursors))
	for cur := range el.cursors {
		cursors = append(cursors, cur)
	}
	el.mu.Unlock()

	if len(windows) > 0 {
		logger.Warn("destroying windows left open at Terminate", "count", len(windows))
	}
	for _, w := range windows {
		w.destroy()
	}
	for _, cur := range cursors {
		cur.destroy()
	}

	c.alive.Store(false)
	active.CompareAndSwap(c, nil)
	loopRef = weak.Pointer[EventLoop]{}
	c.drain()
	c.monitors.Clear()
	clearTrackers()

	ClearError()
	c.drv.Terminate()
	if e := takeError(); e != nil {
		logger.Error("glfw reported an error during terminate", "code", e.Code, "description", e.Description)
	}
	clearAllSlots()
	logger.Info("glfw terminated")
}

// dispatch runs one native event-processing call and returns the events
// its callbacks produced, in callback order.
func (el *EventLoop) dispatch(op string, process func()) []TimedEvent {
	c := el.c
	c.requireMain(op)
	c.dispatching.Store(true)
	func() {
		defer c.dispatching.Store(false)
		process()
	}()
	return c.drain()
}

// PollEvents processes pending events without blocking.
func (el *EventLoop) PollEvents() []TimedEvent {
	return el.dispatch("PollEvents", el.c.drv.PollEvents)
}

// WaitEvents blocks until at least one event is available, or until
// Proxy.PostEmptyEvent is called from another goroutine.
func (el *EventLoop) WaitEvents() []TimedEvent {
	return el.dispatch("WaitEvents", el.c.drv.WaitEvents)
}

// WaitEventsTimeout is WaitEvents with an upper bound on the wait. A
// non-positive timeout behaves like PollEvents.
func (el *EventLoop) WaitEventsTimeout(timeout time.Duration) []TimedEvent {
	seconds := math.Max(timeout.Seconds(), 0)
	return el.dispatch("WaitEventsTimeout", func() { el.c.drv.WaitEventsTimeout(seconds) })
}

// PlatformSupported reports whether the loaded library was built with
// support for p.
func (el *EventLoop) PlatformSupported(p Platform) bool {
	el.c.requireMain("PlatformSupported")
	return el.c.drv.PlatformSupported(int(p))
}

func (el *EventLoop) trackWindow(w *Window) {
	el.mu.Lock()
	defer el.mu.Unlock()
	el.windows[w.d] = w
}

func (el *EventLoop) forgetWindow(d *windowData) {
	el.mu.Lock()
	defer el.mu.Unlock()
	delete(el.windows, d)
}

func (el *EventLoop) trackCursor(cur *Cursor) {
	el.mu.Lock()
	defer el.mu.Unlock()
	el.cursors[cur] = struct{}{}
}

func (el *EventLoop) forgetCursor(cur *Cursor) {
	el.mu.Lock()
	defer el.mu.Unlock()
	delete(el.cursors, cur)
}

// WindowCount returns the number of windows not yet destroyed.
func (el *EventLoop) WindowCount() int {
	el.mu.Lock()
	defer el.mu.Unlock()
	return len(el.windows)
}

func (el *EventLoop) String() string {
	state := "terminated"
	if el.c.alive.Load() {
		state = "alive"
	}
	return fmt.Sprintf("EventLoop(%s, main thread %s)", state, el.c.mainThread)
}
