package glfwgo

import (
	"unicode/utf8"

	"github.com/obinnaokechukwu/glfwgo/internal/logger"
	"github.com/obinnaokechukwu/glfwgo/native"
)

// Native callbacks only run inside PollEvents and friends, on the main
// thread. Each one turns its arguments into an Event and queues it.
// Arguments outside the documented ranges are logged and the event dropped.

func monitorCallback(m native.Monitor, event int) {
	id := MonitorID{h: m}
	switch event {
	case native.Connected:
		// Informational only; the monitor becomes alive when enumerated.
		pushEvent(MonitorEvent{Monitor: id, Connected: true})
	case native.Disconnected:
		if c := active.Load(); c != nil {
			c.monitors.Remove(id)
		}
		pushEvent(MonitorEvent{Monitor: id, Connected: false})
	default:
		logger.Error("dropping monitor event with unknown kind", "monitor", id, "event", event)
	}
}

func joystickCallback(jid, event int) {
	j := Joystick(jid)
	if !j.valid() {
		logger.Error("dropping joystick event for invalid id", "jid", jid)
		return
	}
	switch event {
	case native.Connected:
		pushEvent(JoystickEvent{Joystick: j, Connected: true})
	case native.Disconnected:
		pushEvent(JoystickEvent{Joystick: j, Connected: false})
	default:
		logger.Error("dropping joystick event with unknown kind", "joystick", j, "event", event)
	}
}

func windowCallbacks(id WindowID) *native.WindowCallbacks {
	return &native.WindowCallbacks{
		Pos: func(x, y int) {
			pushEvent(PosEvent{Window: id, X: x, Y: y})
		},
		Size: func(width, height int) {
			pushEvent(SizeEvent{Window: id, Width: width, Height: height})
		},
		Close: func() {
			pushEvent(CloseEvent{Window: id})
		},
		Refresh: func() {
			pushEvent(RefreshEvent{Window: id})
		},
		Focus: func(focused bool) {
			pushEvent(FocusEvent{Window: id, Focused: focused})
		},
		Iconify: func(iconified bool) {
			pushEvent(IconifyEvent{Window: id, Iconified: iconified})
		},
		Maximize: func(maximized bool) {
			pushEvent(MaximizeEvent{Window: id, Maximized: maximized})
		},
		FramebufferSize: func(width, height int) {
			pushEvent(FramebufferSizeEvent{Window: id, Width: width, Height: height})
		},
		ContentScale: func(x, y float32) {
			pushEvent(ContentScaleEvent{Window: id, X: x, Y: y})
		},
		Key: func(key, scancode, action, mods int) {
			k, a, m := Key(key), Action(action), ModifierKey(mods)
			if !k.valid() || !a.valid() || !m.valid() {
				logger.Error("dropping malformed key event", "window", id, "key", key, "action", action, "mods", mods)
				return
			}
			pushEvent(KeyEvent{Window: id, Key: k, Scancode: scancode, Action: a, Mods: m})
		},
		Char: func(r rune) {
			if !utf8.ValidRune(r) {
				logger.Error("dropping char event with invalid code point", "window", id, "codepoint", uint32(r))
				return
			}
			pushEvent(CharEvent{Window: id, Char: r})
		},
		MouseButton: func(button, action, mods int) {
			b, a, m := MouseButton(button), Action(action), ModifierKey(mods)
			if !b.valid() || !a.valid() || !m.valid() {
				logger.Error("dropping malformed mouse button event", "window", id, "button", button, "action", action, "mods", mods)
				return
			}
			pushEvent(MouseButtonEvent{Window: id, Button: b, Action: a, Mods: m})
		},
		CursorPos: func(x, y float64) {
			pushEvent(CursorPosEvent{Window: id, X: x, Y: y})
		},
		CursorEnter: func(entered bool) {
			pushEvent(CursorEnterEvent{Window: id, Entered: entered})
		},
		Scroll: func(x, y float64) {
			pushEvent(ScrollEvent{Window: id, X: x, Y: y})
		},
		Drop: func(paths []string) {
			pushEvent(DropEvent{Window: id, Paths: paths})
		},
	}
}
