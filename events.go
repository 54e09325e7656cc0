package glfwgo

import "fmt"

// Event is one notification delivered by GLFW during event processing.
// The set of event types is closed; switch on the concrete type.
type Event interface {
	isEvent()
}

// WindowEvent is an Event that concerns a single window.
type WindowEvent interface {
	Event
	WindowID() WindowID
}

// TimedEvent is an Event stamped with the GLFW time, in seconds, at which
// its callback ran.
type TimedEvent struct {
	Time  float64
	Event Event
}

func (te TimedEvent) String() string {
	return fmt.Sprintf("%.6f %T%+v", te.Time, te.Event, te.Event)
}

// PosEvent reports a window's new position.
type PosEvent struct {
	Window WindowID
	X, Y   int
}

// SizeEvent reports a window's new size in screen coordinates.
type SizeEvent struct {
	Window        WindowID
	Width, Height int
}

// CloseEvent reports a close request. The window's should-close flag is
// already set; clear it with SetShouldClose(false) to veto.
type CloseEvent struct {
	Window WindowID
}

// RefreshEvent asks for a window's contents to be redrawn.
type RefreshEvent struct {
	Window WindowID
}

type FocusEvent struct {
	Window  WindowID
	Focused bool
}

type IconifyEvent struct {
	Window    WindowID
	Iconified bool
}

type MaximizeEvent struct {
	Window    WindowID
	Maximized bool
}

// FramebufferSizeEvent reports a window's new framebuffer size in pixels.
type FramebufferSizeEvent struct {
	Window        WindowID
	Width, Height int
}

type ContentScaleEvent struct {
	Window WindowID
	X, Y   float32
}

// KeyEvent reports a physical key press, repeat or release.
type KeyEvent struct {
	Window   WindowID
	Key      Key
	Scancode int
	Action   Action
	Mods     ModifierKey
}

// CharEvent reports a Unicode code point of text input.
type CharEvent struct {
	Window WindowID
	Char   rune
}

type MouseButtonEvent struct {
	Window WindowID
	Button MouseButton
	Action Action
	Mods   ModifierKey
}

// CursorPosEvent reports the cursor position relative to the content area.
type CursorPosEvent struct {
	Window WindowID
	X, Y   float64
}

type CursorEnterEvent struct {
	Window  WindowID
	Entered bool
}

type ScrollEvent struct {
	Window WindowID
	X, Y   float64
}

// DropEvent reports paths dropped onto a window.
type DropEvent struct {
	Window WindowID
	Paths  []string
}

// MonitorEvent reports a monitor being connected or disconnected. A
// disconnected monitor is no longer alive by the time the event is read.
type MonitorEvent struct {
	Monitor   MonitorID
	Connected bool
}

// JoystickEvent reports a joystick being connected or disconnected.
type JoystickEvent struct {
	Joystick  Joystick
	Connected bool
}

// ErrorEvent reports a fault raised by GLFW on the main thread while it was
// processing events.
type ErrorEvent struct {
	Err *Error
}

func (PosEvent) isEvent()             {}
func (SizeEvent) isEvent()            {}
func (CloseEvent) isEvent()           {}
func (RefreshEvent) isEvent()         {}
func (FocusEvent) isEvent()           {}
func (IconifyEvent) isEvent()         {}
func (MaximizeEvent) isEvent()        {}
func (FramebufferSizeEvent) isEvent() {}
func (ContentScaleEvent) isEvent()    {}
func (KeyEvent) isEvent()             {}
func (CharEvent) isEvent()            {}
func (MouseButtonEvent) isEvent()     {}
func (CursorPosEvent) isEvent()       {}
func (CursorEnterEvent) isEvent()     {}
func (ScrollEvent) isEvent()          {}
func (DropEvent) isEvent()            {}
func (MonitorEvent) isEvent()         {}
func (JoystickEvent) isEvent()        {}
func (ErrorEvent) isEvent()           {}

func (e PosEvent) WindowID() WindowID             { return e.Window }
func (e SizeEvent) WindowID() WindowID            { return e.Window }
func (e CloseEvent) WindowID() WindowID           { return e.Window }
func (e RefreshEvent) WindowID() WindowID         { return e.Window }
func (e FocusEvent) WindowID() WindowID           { return e.Window }
func (e IconifyEvent) WindowID() WindowID         { return e.Window }
func (e MaximizeEvent) WindowID() WindowID        { return e.Window }
func (e FramebufferSizeEvent) WindowID() WindowID { return e.Window }
func (e ContentScaleEvent) WindowID() WindowID    { return e.Window }
func (e KeyEvent) WindowID() WindowID             { return e.Window }
func (e CharEvent) WindowID() WindowID            { return e.Window }
func (e MouseButtonEvent) WindowID() WindowID     { return e.Window }
func (e CursorPosEvent) WindowID() WindowID       { return e.Window }
func (e CursorEnterEvent) WindowID() WindowID     { return e.Window }
func (e ScrollEvent) WindowID() WindowID          { return e.Window }
func (e DropEvent) WindowID() WindowID            { return e.Window }
