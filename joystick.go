package glfwgo

import (
	"fmt"
	"strings"
)

// GamepadState is the state of a mapped gamepad.
type GamepadState struct {
	Buttons [ButtonLast + 1]Action
	Axes    [AxisLast + 1]float32
}

// Button returns the state of b.
func (s GamepadState) Button(b GamepadButton) Action {
	return s.Buttons[b]
}

// Axis returns the value of a, from -1 to 1.
func (s GamepadState) Axis(a GamepadAxis) float32 {
	return s.Axes[a]
}

func (el *EventLoop) joystick(op string, j Joystick) {
	el.c.requireMain(op)
	if !j.valid() {
		panic(fmt.Sprintf("glfwgo: %s: invalid joystick %d", op, int(j)))
	}
}

// JoystickPresent reports whether a joystick is connected in slot j.
func (el *EventLoop) JoystickPresent(j Joystick) bool {
	el.joystick("JoystickPresent", j)
	return el.c.drv.JoystickPresent(int(j))
}

// JoystickAxes returns the axis values of j, each from -1 to 1.
func (el *EventLoop) JoystickAxes(j Joystick) []float32 {
	el.joystick("JoystickAxes", j)
	return el.c.drv.GetJoystickAxes(int(j))
}

// JoystickButtons returns the button states of j. Hats are appended as four
// buttons each unless the JoystickHatButtons init hint disabled that.
func (el *EventLoop) JoystickButtons(j Joystick) []Action {
	el.joystick("JoystickButtons", j)
	raw := el.c.drv.GetJoystickButtons(int(j))
	if raw == nil {
		return nil
	}
	buttons := make([]Action, len(raw))
	for i, b := range raw {
		buttons[i] = Action(b)
	}
	return buttons
}

// JoystickHats returns the hat states of j.
func (el *EventLoop) JoystickHats(j Joystick) []Hat {
	el.joystick("JoystickHats", j)
	raw := el.c.drv.GetJoystickHats(int(j))
	if raw == nil {
		return nil
	}
	hats := make([]Hat, len(raw))
	for i, h := range raw {
		hats[i] = Hat(h)
	}
	return hats
}

func (el *EventLoop) JoystickName(j Joystick) string {
	el.joystick("JoystickName", j)
	return el.c.drv.GetJoystickName(int(j))
}

// JoystickGUID returns the SDL-compatible GUID of j.
func (el *EventLoop) JoystickGUID(j Joystick) string {
	el.joystick("JoystickGUID", j)
	return el.c.drv.GetJoystickGUID(int(j))
}

// JoystickIsGamepad reports whether j has a gamepad mapping.
func (el *EventLoop) JoystickIsGamepad(j Joystick) bool {
	el.joystick("JoystickIsGamepad", j)
	return el.c.drv.JoystickIsGamepad(int(j))
}

// GamepadName returns the name from j's gamepad mapping.
func (el *EventLoop) GamepadName(j Joystick) string {
	el.joystick("GamepadName", j)
	return el.c.drv.GetGamepadName(int(j))
}

// GamepadState returns the state of j through its gamepad mapping. ok is
// false when j is absent or has no mapping.
func (el *EventLoop) GamepadState(j Joystick) (state GamepadState, ok bool) {
	el.joystick("GamepadState", j)
	raw, ok := el.c.drv.GetGamepadState(int(j))
	if !ok {
		return GamepadState{}, false
	}
	for i, b := range raw.Buttons {
		state.Buttons[i] = Action(b)
	}
	state.Axes = raw.Axes
	return state, true
}

// UpdateGamepadMappings adds SDL_GameControllerDB mappings, replacing any
// existing mapping for the same GUID.
func (el *EventLoop) UpdateGamepadMappings(mappings string) error {
	el.c.requireMain("UpdateGamepadMappings")
	if strings.IndexByte(mappings, 0) >= 0 {
		return fmt.Errorf("%w: gamepad mappings", ErrNulInString)
	}
	var ok bool
	err := check("UpdateGamepadMappings", func() { ok = el.c.drv.UpdateGamepadMappings(mappings) })
	if err == nil && !ok {
		err = &Error{Code: InvalidValue, Description: "gamepad mappings rejected", Op: "UpdateGamepadMappings"}
	}
	return err
}
