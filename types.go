package glfwgo

import (
	"fmt"
	"strings"

	"github.com/obinnaokechukwu/glfwgo/native"
)

// DontCare leaves an integer window hint or size limit to GLFW.
const DontCare = native.DontCare

// AnyPosition leaves a window's initial position to the window manager.
const AnyPosition = native.AnyPosition

// enumNames maps enum values to names for String and UnmarshalText.
type enumNames[T ~int] struct {
	kind  string
	names map[T]string
}

func (e enumNames[T]) format(v T) string {
	if name, ok := e.names[v]; ok {
		return name
	}
	return fmt.Sprintf("%s(0x%X)", e.kind, int(v))
}

// parse matches text against the names ignoring case, underscores and
// dashes, so "opengl_es" and "OpenGLES" are the same value.
func (e enumNames[T]) parse(dst *T, text []byte) error {
	want := normalizeName(string(text))
	for v, name := range e.names {
		if normalizeName(name) == want {
			*dst = v
			return nil
		}
	}
	return fmt.Errorf("glfwgo: unknown %s %q", e.kind, text)
}

func normalizeName(s string) string {
	s = strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
	return strings.ToLower(s)
}

// Platform selects a GLFW backend.
type Platform int

// Platforms.
const (
	AnyPlatform     Platform = native.AnyPlatform
	PlatformWin32   Platform = native.PlatformWin32
	PlatformCocoa   Platform = native.PlatformCocoa
	PlatformWayland Platform = native.PlatformWayland
	PlatformX11     Platform = native.PlatformX11
	PlatformNull    Platform = native.PlatformNull
)

var platformNames = enumNames[Platform]{"Platform", map[Platform]string{
	AnyPlatform:     "Any",
	PlatformWin32:   "Win32",
	PlatformCocoa:   "Cocoa",
	PlatformWayland: "Wayland",
	PlatformX11:     "X11",
	PlatformNull:    "Null",
}}

func (p Platform) String() string { return platformNames.format(p) }
func (p *Platform) UnmarshalText(text []byte) error { return platformNames.parse(p, text) }

// AnglePlatform selects the ANGLE backend for OpenGL ES contexts.
type AnglePlatform int

const (
	AngleNone     AnglePlatform = native.AnglePlatformTypeNone
	AngleOpenGL   AnglePlatform = native.AnglePlatformTypeOpenGL
	AngleOpenGLES AnglePlatform = native.AnglePlatformTypeOpenGLES
	AngleD3D9     AnglePlatform = native.AnglePlatformTypeD3D9
	AngleD3D11    AnglePlatform = native.AnglePlatformTypeD3D11
	AngleVulkan   AnglePlatform = native.AnglePlatformTypeVulkan
	AngleMetal    AnglePlatform = native.AnglePlatformTypeMetal
)

var anglePlatformNames = enumNames[AnglePlatform]{"AnglePlatform", map[AnglePlatform]string{
	AngleNone:     "None",
	AngleOpenGL:   "OpenGL",
	AngleOpenGLES: "OpenGLES",
	AngleD3D9:     "D3D9",
	AngleD3D11:    "D3D11",
	AngleVulkan:   "Vulkan",
	AngleMetal:    "Metal",
}}

func (a AnglePlatform) String() string { return anglePlatformNames.format(a) }
func (a *AnglePlatform) UnmarshalText(text []byte) error { return anglePlatformNames.parse(a, text) }

// WaylandLibdecorMode controls libdecor use on Wayland.
type WaylandLibdecorMode int

const (
	WaylandPreferLibdecor  WaylandLibdecorMode = native.WaylandPreferLibdecor
	WaylandDisableLibdecor WaylandLibdecorMode = native.WaylandDisableLibdecor
)

var libdecorNames = enumNames[WaylandLibdecorMode]{"WaylandLibdecorMode", map[WaylandLibdecorMode]string{
	WaylandPreferLibdecor:  "Prefer",
	WaylandDisableLibdecor: "Disable",
}}

func (m WaylandLibdecorMode) String() string { return libdecorNames.format(m) }
func (m *WaylandLibdecorMode) UnmarshalText(text []byte) error { return libdecorNames.parse(m, text) }

// ClientAPI is the rendering API a window's context is created for.
type ClientAPI int

const (
	NoAPI       ClientAPI = native.NoAPI
	OpenGLAPI   ClientAPI = native.OpenGLAPI
	OpenGLESAPI ClientAPI = native.OpenGLESAPI
)

var clientAPINames = enumNames[ClientAPI]{"ClientAPI", map[ClientAPI]string{
	NoAPI:       "None",
	OpenGLAPI:   "OpenGL",
	OpenGLESAPI: "OpenGLES",
}}

func (a ClientAPI) String() string { return clientAPINames.format(a) }
func (a *ClientAPI) UnmarshalText(text []byte) error { return clientAPINames.parse(a, text) }

// ContextCreationAPI is the API used to create a window's context.
type ContextCreationAPI int

const (
	NativeContextAPI ContextCreationAPI = native.NativeContextAPI
	EGLContextAPI    ContextCreationAPI = native.EGLContextAPI
	OSMesaContextAPI ContextCreationAPI = native.OSMesaContextAPI
)

var contextAPINames = enumNames[ContextCreationAPI]{"ContextCreationAPI", map[ContextCreationAPI]string{
	NativeContextAPI: "Native",
	EGLContextAPI:    "EGL",
	OSMesaContextAPI: "OSMesa",
}}

func (a ContextCreationAPI) String() string { return contextAPINames.format(a) }
func (a *ContextCreationAPI) UnmarshalText(text []byte) error {
	return contextAPINames.parse(a, text)
}

// ContextRobustness is a context's robustness strategy.
type ContextRobustness int

const (
	NoRobustness        ContextRobustness = native.NoRobustness
	NoResetNotification ContextRobustness = native.NoResetNotification
	LoseContextOnReset  ContextRobustness = native.LoseContextOnReset
)

var robustnessNames = enumNames[ContextRobustness]{"ContextRobustness", map[ContextRobustness]string{
	NoRobustness:        "None",
	NoResetNotification: "NoResetNotification",
	LoseContextOnReset:  "LoseContextOnReset",
}}

func (r ContextRobustness) String() string { return robustnessNames.format(r) }
func (r *ContextRobustness) UnmarshalText(text []byte) error { return robustnessNames.parse(r, text) }

// ReleaseBehavior is what happens to a context's pipeline when it stops
// being current.
type ReleaseBehavior int

const (
	AnyReleaseBehavior   ReleaseBehavior = native.AnyReleaseBehavior
	ReleaseBehaviorFlush ReleaseBehavior = native.ReleaseBehaviorFlush
	ReleaseBehaviorNone  ReleaseBehavior = native.ReleaseBehaviorNone
)

var releaseNames = enumNames[ReleaseBehavior]{"ReleaseBehavior", map[ReleaseBehavior]string{
	AnyReleaseBehavior:   "Any",
	ReleaseBehaviorFlush: "Flush",
	ReleaseBehaviorNone:  "None",
}}

func (r ReleaseBehavior) String() string { return releaseNames.format(r) }
func (r *ReleaseBehavior) UnmarshalText(text []byte) error { return releaseNames.parse(r, text) }

// OpenGLProfile is the OpenGL profile a context is created for.
type OpenGLProfile int

const (
	OpenGLAnyProfile    OpenGLProfile = native.OpenGLAnyProfile
	OpenGLCoreProfile   OpenGLProfile = native.OpenGLCoreProfile
	OpenGLCompatProfile OpenGLProfile = native.OpenGLCompatProfile
)

var profileNames = enumNames[OpenGLProfile]{"OpenGLProfile", map[OpenGLProfile]string{
	OpenGLAnyProfile:    "Any",
	OpenGLCoreProfile:   "Core",
	OpenGLCompatProfile: "Compat",
}}

func (p OpenGLProfile) String() string { return profileNames.format(p) }
func (p *OpenGLProfile) UnmarshalText(text []byte) error { return profileNames.parse(p, text) }

// CursorMode controls cursor visibility and capture for a window.
type CursorMode int

const (
	CursorNormal   CursorMode = native.CursorNormal
	CursorHidden   CursorMode = native.CursorHidden
	CursorDisabled CursorMode = native.CursorDisabled
	CursorCaptured CursorMode = native.CursorCaptured
)

var cursorModeNames = enumNames[CursorMode]{"CursorMode", map[CursorMode]string{
	CursorNormal:   "Normal",
	CursorHidden:   "Hidden",
	CursorDisabled: "Disabled",
	CursorCaptured: "Captured",
}}

func (m CursorMode) String() string { return cursorModeNames.format(m) }
func (m *CursorMode) UnmarshalText(text []byte) error { return cursorModeNames.parse(m, text) }

// StandardCursor is a system cursor shape.
type StandardCursor int

const (
	ArrowCursor        StandardCursor = native.ArrowCursor
	IBeamCursor        StandardCursor = native.IBeamCursor
	CrosshairCursor    StandardCursor = native.CrosshairCursor
	PointingHandCursor StandardCursor = native.PointingHandCursor
	ResizeEWCursor     StandardCursor = native.ResizeEWCursor
	ResizeNSCursor     StandardCursor = native.ResizeNSCursor
	ResizeNWSECursor   StandardCursor = native.ResizeNWSECursor
	ResizeNESWCursor   StandardCursor = native.ResizeNESWCursor
	ResizeAllCursor    StandardCursor = native.ResizeAllCursor
	NotAllowedCursor   StandardCursor = native.NotAllowedCursor
)

var standardCursorNames = enumNames[StandardCursor]{"StandardCursor", map[StandardCursor]string{
	ArrowCursor:        "Arrow",
	IBeamCursor:        "IBeam",
	CrosshairCursor:    "Crosshair",
	PointingHandCursor: "PointingHand",
	ResizeEWCursor:     "ResizeEW",
	ResizeNSCursor:     "ResizeNS",
	ResizeNWSECursor:   "ResizeNWSE",
	ResizeNESWCursor:   "ResizeNESW",
	ResizeAllCursor:    "ResizeAll",
	NotAllowedCursor:   "NotAllowed",
}}

func (c StandardCursor) String() string { return standardCursorNames.format(c) }

// Action is the state change of a key or button.
type Action int

const (
	Release Action = native.Release
	Press   Action = native.Press
	Repeat  Action = native.Repeat
)

var actionNames = enumNames[Action]{"Action", map[Action]string{
	Release: "Release",
	Press:   "Press",
	Repeat:  "Repeat",
}}

func (a Action) String() string { return actionNames.format(a) }

func (a Action) valid() bool {
	_, ok := actionNames.names[a]
	return ok
}

// ModifierKey is a bit set of modifier keys held during an input event.
type ModifierKey int

const (
	ModShift    ModifierKey = native.ModShift
	ModControl  ModifierKey = native.ModControl
	ModAlt      ModifierKey = native.ModAlt
	ModSuper    ModifierKey = native.ModSuper
	ModCapsLock ModifierKey = native.ModCapsLock
	ModNumLock  ModifierKey = native.ModNumLock
)

var modifierOrder = []struct {
	bit  ModifierKey
	name string
}{
	{ModShift, "Shift"},
	{ModControl, "Control"},
	{ModAlt, "Alt"},
	{ModSuper, "Super"},
	{ModCapsLock, "CapsLock"},
	{ModNumLock, "NumLock"},
}

// Has reports whether all bits of mod are set.
func (m ModifierKey) Has(mod ModifierKey) bool {
	return m&mod == mod
}

func (m ModifierKey) String() string {
	if m == 0 {
		return "None"
	}
	var parts []string
	for _, mod := range modifierOrder {
		if m&mod.bit != 0 {
			parts = append(parts, mod.name)
		}
	}
	if rest := m &^ native.ModAll; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%X", int(rest)))
	}
	return strings.Join(parts, "|")
}

func (m ModifierKey) valid() bool {
	return m&^native.ModAll == 0
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButton1 MouseButton = iota
	MouseButton2
	MouseButton3
	MouseButton4
	MouseButton5
	MouseButton6
	MouseButton7
	MouseButton8

	MouseButtonLeft   = MouseButton1
	MouseButtonRight  = MouseButton2
	MouseButtonMiddle = MouseButton3
	MouseButtonLast   = MouseButton8
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	}
	if b.valid() {
		return fmt.Sprintf("Button%d", int(b)+1)
	}
	return fmt.Sprintf("MouseButton(%d)", int(b))
}

func (b MouseButton) valid() bool {
	return b >= MouseButton1 && b <= MouseButtonLast
}

// Hat is a bit set of joystick hat directions.
type Hat int

const (
	HatCentered  Hat = native.HatCentered
	HatUp        Hat = native.HatUp
	HatRight     Hat = native.HatRight
	HatDown      Hat = native.HatDown
	HatLeft      Hat = native.HatLeft
	HatRightUp       = HatRight | HatUp
	HatRightDown     = HatRight | HatDown
	HatLeftUp        = HatLeft | HatUp
	HatLeftDown      = HatLeft | HatDown
)

var hatNames = enumNames[Hat]{"Hat", map[Hat]string{
	HatCentered:  "Centered",
	HatUp:        "Up",
	HatRight:     "Right",
	HatDown:      "Down",
	HatLeft:      "Left",
	HatRightUp:   "RightUp",
	HatRightDown: "RightDown",
	HatLeftUp:    "LeftUp",
	HatLeftDown:  "LeftDown",
}}

func (h Hat) String() string { return hatNames.format(h) }

// Joystick identifies one of the sixteen joystick slots.
type Joystick int

const (
	Joystick1 Joystick = iota
	Joystick2
	Joystick3
	Joystick4
	Joystick5
	Joystick6
	Joystick7
	Joystick8
	Joystick9
	Joystick10
	Joystick11
	Joystick12
	Joystick13
	Joystick14
	Joystick15
	Joystick16

	JoystickLast = Joystick16
)

func (j Joystick) String() string {
	return fmt.Sprintf("Joystick%d", int(j)+1)
}

func (j Joystick) valid() bool {
	return j >= Joystick1 && j <= JoystickLast
}

// GamepadButton identifies a button on a mapped gamepad.
type GamepadButton int

const (
	ButtonA GamepadButton = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonLeftBumper
	ButtonRightBumper
	ButtonBack
	ButtonStart
	ButtonGuide
	ButtonLeftThumb
	ButtonRightThumb
	ButtonDpadUp
	ButtonDpadRight
	ButtonDpadDown
	ButtonDpadLeft

	ButtonCross    = ButtonA
	ButtonCircle   = ButtonB
	ButtonSquare   = ButtonX
	ButtonTriangle = ButtonY
	ButtonLast     = ButtonDpadLeft
)

var gamepadButtonNames = enumNames[GamepadButton]{"GamepadButton", map[GamepadButton]string{
	ButtonA:           "A",
	ButtonB:           "B",
	ButtonX:           "X",
	ButtonY:           "Y",
	ButtonLeftBumper:  "LeftBumper",
	ButtonRightBumper: "RightBumper",
	ButtonBack:        "Back",
	ButtonStart:       "Start",
	ButtonGuide:       "Guide",
	ButtonLeftThumb:   "LeftThumb",
	ButtonRightThumb:  "RightThumb",
	ButtonDpadUp:      "DpadUp",
	ButtonDpadRight:   "DpadRight",
	ButtonDpadDown:    "DpadDown",
	ButtonDpadLeft:    "DpadLeft",
}}

func (b GamepadButton) String() string { return gamepadButtonNames.format(b) }

// GamepadAxis identifies an axis on a mapped gamepad.
type GamepadAxis int

const (
	AxisLeftX GamepadAxis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisLeftTrigger
	AxisRightTrigger

	AxisLast = AxisRightTrigger
)

var gamepadAxisNames = enumNames[GamepadAxis]{"GamepadAxis", map[GamepadAxis]string{
	AxisLeftX:        "LeftX",
	AxisLeftY:        "LeftY",
	AxisRightX:       "RightX",
	AxisRightY:       "RightY",
	AxisLeftTrigger:  "LeftTrigger",
	AxisRightTrigger: "RightTrigger",
}}

func (a GamepadAxis) String() string { return gamepadAxisNames.format(a) }

// WindowAttrib is a window attribute readable with Window.Attrib. The ones
// marked settable can be changed with Window.SetAttrib after creation.
type WindowAttrib int

const (
	AttribFocused                WindowAttrib = native.Focused
	AttribIconified              WindowAttrib = native.Iconified
	AttribResizable              WindowAttrib = native.Resizable // settable
	AttribVisible                WindowAttrib = native.Visible
	AttribDecorated              WindowAttrib = native.Decorated   // settable
	AttribAutoIconify            WindowAttrib = native.AutoIconify // settable
	AttribFloating               WindowAttrib = native.Floating    // settable
	AttribMaximized              WindowAttrib = native.Maximized
	AttribTransparentFramebuffer WindowAttrib = native.TransparentFramebuffer
	AttribHovered                WindowAttrib = native.Hovered
	AttribFocusOnShow            WindowAttrib = native.FocusOnShow      // settable
	AttribMousePassthrough       WindowAttrib = native.MousePassthrough // settable
	AttribDoublebuffer           WindowAttrib = native.Doublebuffer
	AttribClientAPI              WindowAttrib = native.ClientAPI
	AttribContextCreationAPI     WindowAttrib = native.ContextCreationAPI
	AttribContextVersionMajor    WindowAttrib = native.ContextVersionMajor
	AttribContextVersionMinor    WindowAttrib = native.ContextVersionMinor
	AttribContextRevision        WindowAttrib = native.ContextRevision
	AttribContextRobustness      WindowAttrib = native.ContextRobustness
	AttribOpenGLForwardCompat    WindowAttrib = native.OpenGLForwardCompat
	AttribContextDebug           WindowAttrib = native.ContextDebug
	AttribOpenGLProfile          WindowAttrib = native.OpenGLProfile
	AttribContextReleaseBehavior WindowAttrib = native.ContextReleaseBehavior
	AttribContextNoError         WindowAttrib = native.ContextNoError
)
