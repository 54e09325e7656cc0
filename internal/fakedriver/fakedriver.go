// Package fakedriver is an in-memory native.Driver for tests.
//
// It models the parts of GLFW the safety layer depends on: monitors that
// can appear and vanish, windows with their hints and attributes, a
// per-thread current context, callbacks that are only delivered from inside
// PollEvents/WaitEvents, and errors reported through the error callback on
// the calling thread. Faults can be injected per function name and every
// call is counted.
package fakedriver

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/obinnaokechukwu/glfwgo/internal/thread"
	"github.com/obinnaokechukwu/glfwgo/native"
)

// Vulkan result codes returned by CreateWindowSurface.
const (
	VkSuccess                   = 0
	VkErrorInitializationFailed = -3
	VkErrorNativeWindowInUse    = -1000000001
)

// DefaultGammaRampSize is the ramp size of monitors added without one.
const DefaultGammaRampSize = 256

type fault struct {
	code        int
	description string
}

type monitor struct {
	handle   native.Monitor
	name     string
	x, y     int
	widthMM  int
	heightMM int
	scale    float32
	modes    []native.VidMode
	ramp     native.GammaRamp
}

type window struct {
	handle      native.Window
	title       string
	x, y        int
	width       int
	height      int
	minW, minH  int
	maxW, maxH  int
	aspectNum   int
	aspectDen   int
	opacity     float32
	shouldClose bool
	monitor     native.Monitor
	cursor      native.Cursor
	attribs     map[int]int
	inputModes  map[int]int
	keys        map[int]int
	buttons     map[int]int
	cursorX     float64
	cursorY     float64
	icons       int
	callbacks   *native.WindowCallbacks
}

// Joystick describes a connected joystick.
type Joystick struct {
	Name    string
	GUID    string
	Axes    []float32
	Buttons []byte
	Hats    []byte
	// Gamepad is non-nil when the joystick has a gamepad mapping.
	Gamepad *native.GamepadState
	// GamepadName is reported when Gamepad is non-nil.
	GamepadName string
}

// Driver is a deterministic stand-in for libglfw.
type Driver struct {
	mu sync.Mutex

	initialized bool
	initHints   map[int]int
	platform    int
	supported   map[int]bool
	major       int
	minor       int
	revision    int

	errorCB    native.ErrorFunc
	monitorCB  native.MonitorFunc
	joystickCB native.JoystickFunc

	epoch      time.Time
	timeOffset float64

	nextHandle uintptr
	monitors   []*monitor
	windows    map[native.Window]*window
	cursors    map[native.Cursor]bool
	current    map[thread.ID]native.Window
	hints      map[int]int
	strHints   map[int]string
	clipboard  string
	swapInt    map[thread.ID]int
	joysticks  map[int]*Joystick
	mappings   []string

	vulkan     bool
	vulkanExts []string
	surfaces   map[native.Window]uint64

	pending []func()
	wake    chan struct{}

	faults map[string]fault
	calls  map[string]int
}

// Option configures a Driver.
type Option func(*Driver)

// WithPlatform selects the platform reported once initialized.
func WithPlatform(platform int) Option {
	return func(d *Driver) {
		d.platform = platform
		d.supported[platform] = true
	}
}

// WithSupportedPlatforms marks additional platforms as supported.
func WithSupportedPlatforms(platforms ...int) Option {
	return func(d *Driver) {
		for _, p := range platforms {
			d.supported[p] = true
		}
	}
}

// WithVersion overrides the reported library version.
func WithVersion(major, minor, revision int) Option {
	return func(d *Driver) {
		d.major, d.minor, d.revision = major, minor, revision
	}
}

// WithVulkan enables Vulkan support with the given required extensions.
func WithVulkan(extensions ...string) Option {
	return func(d *Driver) {
		d.vulkan = true
		d.vulkanExts = extensions
	}
}

// New returns a driver on the X11 platform with no monitors.
func New(opts ...Option) *Driver {
	d := &Driver{
		initHints:  make(map[int]int),
		platform:   native.PlatformX11,
		supported:  map[int]bool{native.PlatformX11: true, native.PlatformNull: true},
		major:      native.VersionMajor,
		minor:      native.VersionMinor,
		revision:   native.VersionRevision,
		epoch:      time.Now(),
		nextHandle: 0x1000,
		windows:    make(map[native.Window]*window),
		cursors:    make(map[native.Cursor]bool),
		current:    make(map[thread.ID]native.Window),
		hints:      make(map[int]int),
		strHints:   make(map[int]string),
		swapInt:    make(map[thread.ID]int),
		joysticks:  make(map[int]*Joystick),
		surfaces:   make(map[native.Window]uint64),
		wake:       make(chan struct{}, 1),
		faults:     make(map[string]fault),
		calls:      make(map[string]int),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var _ native.Driver = (*Driver)(nil)

// preInit lists the functions GLFW allows before glfwInit.
var preInit = map[string]bool{
	"Init":                true,
	"Terminate":           true,
	"InitHint":            true,
	"SetErrorCallback":    true,
	"GetVersion":          true,
	"GetVersionString":    true,
	"PlatformSupported":   true,
	"SetMonitorCallback":  true,
	"SetJoystickCallback": true,
}

// FailOn makes every subsequent call to the named function report code and
// description through the error callback and return zero values.
func (d *Driver) FailOn(function string, code int, description string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.faults[function] = fault{code: code, description: description}
}

// ClearFailures removes all injected faults.
func (d *Driver) ClearFailures() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.faults = make(map[string]fault)
}

// Calls returns how many times the named function was called.
func (d *Driver) Calls(function string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls[function]
}

// ResetCalls zeroes all call counters.
func (d *Driver) ResetCalls() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = make(map[string]int)
}

// Initialized reports whether Init succeeded and Terminate has not run.
func (d *Driver) Initialized() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.initialized
}

// InitHintValue returns the last value set for an init hint.
func (d *Driver) InitHintValue(hint int) (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.initHints[hint]
	return v, ok
}

// report delivers an error to the installed callback. Must not hold d.mu.
func (d *Driver) report(code int, description string) {
	d.mu.Lock()
	cb := d.errorCB
	d.mu.Unlock()
	if cb != nil {
		cb(code, description)
	}
}

// enter counts the call and reports an injected fault or a missing init.
// It returns false when the caller must bail out with zero values.
func (d *Driver) enter(function string) bool {
	d.mu.Lock()
	d.calls[function]++
	f, failing := d.faults[function]
	notInit := !d.initialized && !preInit[function]
	d.mu.Unlock()

	switch {
	case failing:
		d.report(f.code, f.description)
		return false
	case notInit:
		d.report(native.NotInitialized, "The GLFW library is not initialized")
		return false
	}
	return true
}

func (d *Driver) newHandle() uintptr {
	d.nextHandle += 0x10
	return d.nextHandle
}

// Init initializes the fake library. A PlatformHint naming an unsupported
// platform makes it fail like GLFW does.
func (d *Driver) Init() bool {
	if !d.enter("Init") {
		return false
	}
	d.mu.Lock()
	if d.initialized {
		d.mu.Unlock()
		return true
	}
	if p, ok := d.initHints[native.PlatformHint]; ok && p != native.AnyPlatform {
		if !d.supported[p] {
			d.mu.Unlock()
			d.report(native.PlatformUnavailable, "The requested platform is not supported")
			return false
		}
		d.platform = p
	}
	d.initialized = true
	d.epoch = time.Now()
	d.timeOffset = 0
	d.hints = make(map[int]int)
	d.strHints = make(map[int]string)
	d.mu.Unlock()
	return true
}

// Terminate destroys all windows and cursors and resets library state.
func (d *Driver) Terminate() {
	d.enter("Terminate")
	d.mu.Lock()
	defer d.mu.Unlock()
	d.initialized = false
	d.windows = make(map[native.Window]*window)
	d.cursors = make(map[native.Cursor]bool)
	d.current = make(map[thread.ID]native.Window)
	d.swapInt = make(map[thread.ID]int)
	d.surfaces = make(map[native.Window]uint64)
	d.pending = nil
	d.initHints = make(map[int]int)
	d.monitorCB = nil
	d.joystickCB = nil
}

func (d *Driver) InitHint(hint, value int) {
	if !d.enter("InitHint") {
		return
	}
	switch hint {
	case native.JoystickHatButtons, native.AnglePlatformType, native.PlatformHint,
		native.CocoaChdirResources, native.CocoaMenubar, native.X11XCBVulkanSurface,
		native.WaylandLibdecor:
	default:
		d.report(native.InvalidEnum, fmt.Sprintf("Invalid init hint 0x%08X", hint))
		return
	}
	d.mu.Lock()
	d.initHints[hint] = value
	d.mu.Unlock()
}

func (d *Driver) SetErrorCallback(cb native.ErrorFunc) {
	d.mu.Lock()
	d.calls["SetErrorCallback"]++
	d.errorCB = cb
	d.mu.Unlock()
}

func (d *Driver) GetVersion() (major, minor, rev int) {
	d.enter("GetVersion")
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.major, d.minor, d.revision
}

func (d *Driver) GetVersionString() string {
	d.enter("GetVersionString")
	d.mu.Lock()
	defer d.mu.Unlock()
	return fmt.Sprintf("%d.%d.%d fake null", d.major, d.minor, d.revision)
}

func (d *Driver) GetPlatform() int {
	if !d.enter("GetPlatform") {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.platform
}

func (d *Driver) PlatformSupported(platform int) bool {
	if !d.enter("PlatformSupported") {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.supported[platform]
}

func (d *Driver) GetTime() float64 {
	if !d.enter("GetTime") {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timeOffset + time.Since(d.epoch).Seconds()
}

func (d *Driver) SetTime(t float64) {
	if !d.enter("SetTime") {
		return
	}
	if t < 0 || t > 18446744073.0 || math.IsNaN(t) {
		d.report(native.InvalidValue, fmt.Sprintf("Invalid time %f", t))
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.epoch = time.Now()
	d.timeOffset = t
}
