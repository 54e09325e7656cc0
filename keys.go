package glfwgo

import (
	"fmt"

	"github.com/obinnaokechukwu/glfwgo/native"
)

// Key is a keyboard key, named after its position on a US layout.
type Key int

// Printable keys.
const (
	KeyUnknown      Key = native.KeyUnknown
	KeySpace        Key = 32
	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = 48
	Key1            Key = 49
	Key2            Key = 50
	Key3            Key = 51
	Key4            Key = 52
	Key5            Key = 53
	Key6            Key = 54
	Key7            Key = 55
	Key8            Key = 56
	Key9            Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGraveAccent  Key = 96
	KeyWorld1       Key = 161
	KeyWorld2       Key = 162
)

// Function keys.
const (
	KeyEscape Key = iota + 256
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

const (
	KeyCapsLock Key = iota + 280
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
)

const (
	KeyF1 Key = iota + 290
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyF25
)

const (
	KeyKP0 Key = iota + 320
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPDecimal
	KeyKPDivide
	KeyKPMultiply
	KeyKPSubtract
	KeyKPAdd
	KeyKPEnter
	KeyKPEqual
)

const (
	KeyLeftShift Key = iota + 340
	KeyLeftControl
	KeyLeftAlt
	KeyLeftSuper
	KeyRightShift
	KeyRightControl
	KeyRightAlt
	KeyRightSuper
	KeyMenu

	KeyLast = KeyMenu
)

var keyNames = map[Key]string{
	KeyUnknown:      "Unknown",
	KeySpace:        "Space",
	KeyApostrophe:   "Apostrophe",
	KeyComma:        "Comma",
	KeyMinus:        "Minus",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeySemicolon:    "Semicolon",
	KeyEqual:        "Equal",
	KeyLeftBracket:  "LeftBracket",
	KeyBackslash:    "Backslash",
	KeyRightBracket: "RightBracket",
	KeyGraveAccent:  "GraveAccent",
	KeyWorld1:       "World1",
	KeyWorld2:       "World2",
	KeyEscape:       "Escape",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyInsert:       "Insert",
	KeyDelete:       "Delete",
	KeyRight:        "Right",
	KeyLeft:         "Left",
	KeyDown:         "Down",
	KeyUp:           "Up",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyCapsLock:     "CapsLock",
	KeyScrollLock:   "ScrollLock",
	KeyNumLock:      "NumLock",
	KeyPrintScreen:  "PrintScreen",
	KeyPause:        "Pause",
	KeyKPDecimal:    "KPDecimal",
	KeyKPDivide:     "KPDivide",
	KeyKPMultiply:   "KPMultiply",
	KeyKPSubtract:   "KPSubtract",
	KeyKPAdd:        "KPAdd",
	KeyKPEnter:      "KPEnter",
	KeyKPEqual:      "KPEqual",
	KeyLeftShift:    "LeftShift",
	KeyLeftControl:  "LeftControl",
	KeyLeftAlt:      "LeftAlt",
	KeyLeftSuper:    "LeftSuper",
	KeyRightShift:   "RightShift",
	KeyRightControl: "RightControl",
	KeyRightAlt:     "RightAlt",
	KeyRightSuper:   "RightSuper",
	KeyMenu:         "Menu",
}

func init() {
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = string(rune('0' + k - Key0))
	}
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('A' + k - KeyA))
	}
	for k := KeyF1; k <= KeyF25; k++ {
		keyNames[k] = fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}
	for k := KeyKP0; k <= KeyKP9; k++ {
		keyNames[k] = fmt.Sprintf("KP%d", int(k-KeyKP0))
	}
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// UnmarshalText accepts the names String returns.
func (k *Key) UnmarshalText(text []byte) error {
	want := normalizeName(string(text))
	for key, name := range keyNames {
		if normalizeName(name) == want {
			*k = key
			return nil
		}
	}
	return fmt.Errorf("glfwgo: unknown Key %q", text)
}

// valid reports whether k is a key GLFW can deliver.
func (k Key) valid() bool {
	_, ok := keyNames[k]
	return ok
}

// KeyName returns the layout-specific name of a printable key, or "" for
// keys without one. If key is KeyUnknown, scancode identifies the key.
func (el *EventLoop) KeyName(key Key, scancode int) string {
	el.c.requireMain("KeyName")
	return el.c.drv.GetKeyName(int(key), scancode)
}

// RawMouseMotionSupported reports whether Window.SetRawMouseMotion can
// work on this system.
func (el *EventLoop) RawMouseMotionSupported() bool {
	el.c.requireMain("RawMouseMotionSupported")
	return el.c.drv.RawMouseMotionSupported()
}
