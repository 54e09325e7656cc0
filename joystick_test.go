package glfwgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinnaokechukwu/glfwgo/internal/fakedriver"
	"github.com/obinnaokechukwu/glfwgo/native"
)

func xboxPad() fakedriver.Joystick {
	state := &native.GamepadState{}
	state.Buttons[ButtonA] = native.Press
	state.Axes[AxisLeftTrigger] = 1
	return fakedriver.Joystick{
		Name:        "Xbox Wireless Controller",
		GUID:        "030000005e040000e002000000007801",
		Axes:        []float32{0.5, -1},
		Buttons:     []byte{native.Press, native.Release},
		Hats:        []byte{native.HatUp},
		Gamepad:     state,
		GamepadName: "Xbox Controller",
	}
}

func TestJoystickConnectAndQuery(t *testing.T) {
	el, drv := newLoop(t)
	drv.ConnectJoystick(int(Joystick2), xboxPad())

	events := el.PollEvents()
	require.Len(t, events, 1)
	assert.Equal(t, JoystickEvent{Joystick: Joystick2, Connected: true}, events[0].Event)

	assert.True(t, el.JoystickPresent(Joystick2))
	assert.False(t, el.JoystickPresent(Joystick1))
	assert.Equal(t, []float32{0.5, -1}, el.JoystickAxes(Joystick2))
	assert.Equal(t, []Action{Press, Release, Press, Release, Release, Release}, el.JoystickButtons(Joystick2))
	assert.Equal(t, []Hat{HatUp}, el.JoystickHats(Joystick2))
	assert.Equal(t, "Xbox Wireless Controller", el.JoystickName(Joystick2))
	assert.Equal(t, "030000005e040000e002000000007801", el.JoystickGUID(Joystick2))

	require.True(t, el.JoystickIsGamepad(Joystick2))
	assert.Equal(t, "Xbox Controller", el.GamepadName(Joystick2))
	state, ok := el.GamepadState(Joystick2)
	require.True(t, ok)
	assert.Equal(t, Press, state.Button(ButtonA))
	assert.Equal(t, Press, state.Button(ButtonCross))
	assert.Equal(t, Release, state.Button(ButtonB))
	assert.Equal(t, float32(1), state.Axis(AxisLeftTrigger))

	_, ok = el.GamepadState(Joystick1)
	assert.False(t, ok)
	assert.Nil(t, el.JoystickAxes(Joystick1))
}

func TestJoystickHatButtonsDisabled(t *testing.T) {
	el, drv := newLoopWith(t, EventLoopConfig{JoystickHatButtons: Bool(false)})
	drv.ConnectJoystick(int(Joystick1), xboxPad())

	assert.Equal(t, []Action{Press, Release}, el.JoystickButtons(Joystick1))
}

func TestJoystickDisconnect(t *testing.T) {
	el, drv := newLoop(t)
	drv.ConnectJoystick(int(Joystick1), xboxPad())
	el.PollEvents()

	drv.DisconnectJoystick(int(Joystick1))
	events := el.PollEvents()
	require.Len(t, events, 1)
	assert.Equal(t, JoystickEvent{Joystick: Joystick1, Connected: false}, events[0].Event)
	assert.False(t, el.JoystickPresent(Joystick1))
}

func TestInvalidJoystickPanics(t *testing.T) {
	el, _ := newLoop(t)
	assert.PanicsWithValue(t, "glfwgo: JoystickPresent: invalid joystick 16", func() {
		el.JoystickPresent(Joystick(16))
	})
	assert.Panics(t, func() { el.JoystickAxes(Joystick(-1)) })
}

func TestUpdateGamepadMappings(t *testing.T) {
	el, _ := newLoop(t)

	require.NoError(t, el.UpdateGamepadMappings("030000005e040000e002000000007801,Xbox,a:b0,b:b1,platform:Linux,"))
	assert.True(t, IsCode(el.UpdateGamepadMappings("not a mapping"), InvalidValue))
	assert.ErrorIs(t, el.UpdateGamepadMappings("a,b,c\x00"), ErrNulInString)
}
