package glfwgo

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinnaokechukwu/glfwgo/internal/fakedriver"
	"github.com/obinnaokechukwu/glfwgo/native"
)

func newTestWindow(t *testing.T, el *EventLoop, cfg WindowConfig) *Window {
	t.Helper()
	w, err := NewWindow(el, 640, 480, "test", cfg)
	require.NoError(t, err)
	return w
}

func TestNewWindowAppliesHints(t *testing.T) {
	el, drv := newLoop(t)
	w := newTestWindow(t, el, WindowConfig{
		Resizable:    Bool(false),
		PositionX:    Int(10),
		PositionY:    Int(20),
		Samples:      Int(4),
		ClientAPI:    Ptr(OpenGLESAPI),
		X11ClassName: String("glfwgo-demo"),
	})

	assert.Equal(t, native.False, drv.WindowHintValue(native.Resizable))
	assert.Equal(t, 4, drv.WindowHintValue(native.Samples))
	assert.Equal(t, "glfwgo-demo", drv.WindowHintStringValue(native.X11ClassName))

	x, y := w.Pos()
	assert.Equal(t, 10, x)
	assert.Equal(t, 20, y)
	assert.Equal(t, native.False, w.Attrib(AttribResizable))
	assert.Equal(t, OpenGLESAPI, w.ClientAPI())
	assert.Equal(t, "test", w.Title())
	assert.Same(t, el, w.EventLoop())
}

func TestWindowHintsResetBetweenWindows(t *testing.T) {
	el, drv := newLoop(t)
	newTestWindow(t, el, WindowConfig{Resizable: Bool(false)})
	w := newTestWindow(t, el, WindowConfig{})

	assert.Equal(t, native.True, drv.WindowHintValue(native.Resizable))
	assert.Equal(t, native.True, w.Attrib(AttribResizable))
	assert.Equal(t, 2, el.WindowCount())
}

func TestRejectedWindowHintIsLogged(t *testing.T) {
	el, drv := newLoop(t)
	buf := captureLogs(t, LogWarn)
	drv.FailOn("WindowHint", native.InvalidEnum, "hint not supported")

	w := newTestWindow(t, el, WindowConfig{Samples: Int(4)})
	assert.True(t, w.IsAlive())
	assert.Contains(t, buf.String(), "window hint rejected")
	assert.Contains(t, buf.String(), "Samples")
}

func TestWindowHintStringWithNulIsSkipped(t *testing.T) {
	el, drv := newLoop(t)
	buf := captureLogs(t, LogWarn)

	newTestWindow(t, el, WindowConfig{WaylandAppID: String("bad\x00id")})
	assert.Zero(t, drv.Calls("WindowHintString"))
	assert.Contains(t, buf.String(), "window hint skipped")
}

func TestNewWindowErrors(t *testing.T) {
	el, drv := newLoop(t)

	_, err := NewWindow(el, 640, 480, "bad\x00title", WindowConfig{})
	assert.ErrorIs(t, err, ErrNulInString)
	assert.Zero(t, drv.Calls("CreateWindow"))

	_, err = NewWindow(el, 0, 480, "empty", WindowConfig{})
	assert.True(t, IsCode(err, InvalidValue))
	var glfwErr *Error
	require.ErrorAs(t, err, &glfwErr)
	assert.Equal(t, "CreateWindow", glfwErr.Op)
	assert.Equal(t, 0, el.WindowCount())

	shared := newTestWindow(t, el, WindowConfig{})
	shared.Destroy()
	_, err = NewWindow(el, 640, 480, "shared", WindowConfig{}, WithShare(shared))
	assert.True(t, IsDeadHandle(err))
}

func TestNewWindowWithShare(t *testing.T) {
	el, _ := newLoop(t)
	first := newTestWindow(t, el, WindowConfig{})
	second, err := NewWindow(el, 320, 240, "second", WindowConfig{}, WithShare(first))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestWindowPosUnavailableOnWayland(t *testing.T) {
	el, _ := newLoop(t, fakedriver.WithPlatform(native.PlatformWayland))
	w := newTestWindow(t, el, WindowConfig{})

	err := Check(func() { w.Pos() })
	assert.True(t, IsCode(err, FeatureUnavailable))
	assert.True(t, IsCode(w.SetPos(1, 2), FeatureUnavailable))
}

func TestWindowGeometry(t *testing.T) {
	el, _ := newLoop(t)
	w := newTestWindow(t, el, WindowConfig{})

	require.NoError(t, w.SetSize(800, 600))
	width, height := w.Size()
	assert.Equal(t, []int{800, 600}, []int{width, height})

	require.NoError(t, w.SetPos(30, 40))
	x, y := w.Pos()
	assert.Equal(t, []int{30, 40}, []int{x, y})

	require.NoError(t, w.SetSizeLimits(200, 200, DontCare, DontCare))
	require.NoError(t, w.SetAspectRatio(16, 9))

	require.NoError(t, w.SetOpacity(0.5))
	assert.Equal(t, float32(0.5), w.Opacity())

	require.NoError(t, w.SetTitle("renamed"))
	assert.Equal(t, "renamed", w.Title())
	assert.ErrorIs(t, w.SetTitle("a\x00b"), ErrNulInString)

	require.NoError(t, w.Maximize())
	require.NoError(t, w.Restore())
	require.NoError(t, w.Hide())
	require.NoError(t, w.Show())
	require.NoError(t, w.Focus())
}

func TestWindowDestroy(t *testing.T) {
	el, drv := newLoop(t)
	w := newTestWindow(t, el, WindowConfig{})
	h := w.d.handle

	w.Destroy()
	assert.False(t, w.IsAlive())
	assert.False(t, drv.WindowExists(h))
	assert.Equal(t, 0, el.WindowCount())

	assert.NotPanics(t, w.Destroy)
	assert.Equal(t, 1, drv.Calls("DestroyWindow"))
	assert.Panics(t, func() { w.Title() })
	assert.Panics(t, func() { w.ShouldClose() })
}

func TestCloseRequestCanBeVetoed(t *testing.T) {
	el, drv := newLoop(t)
	w := newTestWindow(t, el, WindowConfig{})

	drv.EmitCloseRequest(w.d.handle)
	events := el.PollEvents()
	require.Len(t, events, 1)
	assert.Equal(t, CloseEvent{Window: w.ID()}, events[0].Event)
	assert.True(t, w.ShouldClose())

	w.SetShouldClose(false)
	assert.False(t, w.ShouldClose())
}

func TestWindowEventsCarryWindowID(t *testing.T) {
	el, drv := newLoop(t)
	w := newTestWindow(t, el, WindowConfig{})

	drv.Emit(w.d.handle, func(cbs *native.WindowCallbacks) {
		cbs.Size(100, 200)
		cbs.Focus(true)
		cbs.MouseButton(int(MouseButtonRight), native.Press, native.ModControl)
		cbs.Scroll(0, -1)
		cbs.Char('é')
		cbs.Drop([]string{"/tmp/a.png", "/tmp/b.png"})
	})

	events := el.PollEvents()
	require.Len(t, events, 6)
	assert.Equal(t, SizeEvent{Window: w.ID(), Width: 100, Height: 200}, events[0].Event)
	assert.Equal(t, FocusEvent{Window: w.ID(), Focused: true}, events[1].Event)
	assert.Equal(t, MouseButtonEvent{Window: w.ID(), Button: MouseButtonRight, Action: Press, Mods: ModControl}, events[2].Event)
	assert.Equal(t, ScrollEvent{Window: w.ID(), X: 0, Y: -1}, events[3].Event)
	assert.Equal(t, CharEvent{Window: w.ID(), Char: 'é'}, events[4].Event)
	assert.Equal(t, DropEvent{Window: w.ID(), Paths: []string{"/tmp/a.png", "/tmp/b.png"}}, events[5].Event)

	for _, ev := range events {
		we, ok := ev.Event.(WindowEvent)
		require.True(t, ok)
		assert.Equal(t, w.ID(), we.WindowID())
	}
}

func TestMalformedInputIsDropped(t *testing.T) {
	el, drv := newLoop(t)
	w := newTestWindow(t, el, WindowConfig{})
	buf := captureLogs(t, LogError)

	drv.EmitKey(w.d.handle, 9999, 0, native.Press, 0)
	drv.EmitKey(w.d.handle, int(KeyA), 0, 7, 0)
	drv.EmitKey(w.d.handle, int(KeyA), 0, native.Press, 0x400)
	drv.Emit(w.d.handle, func(cbs *native.WindowCallbacks) {
		cbs.Char(0xD800)
		cbs.MouseButton(12, native.Press, 0)
	})

	assert.Empty(t, el.PollEvents())
	out := buf.String()
	assert.Contains(t, out, "dropping malformed key event")
	assert.Contains(t, out, "dropping char event with invalid code point")
	assert.Contains(t, out, "dropping malformed mouse button event")
}

func TestWindowAttribs(t *testing.T) {
	el, _ := newLoop(t)
	w := newTestWindow(t, el, WindowConfig{})

	require.NoError(t, w.SetAttrib(AttribFloating, true))
	assert.Equal(t, native.True, w.Attrib(AttribFloating))

	err := w.SetAttrib(AttribVisible, false)
	assert.True(t, IsCode(err, InvalidEnum))
}

func TestWindowInput(t *testing.T) {
	el, drv := newLoop(t)
	w := newTestWindow(t, el, WindowConfig{})

	assert.Equal(t, CursorNormal, w.CursorMode())
	require.NoError(t, w.SetCursorMode(CursorDisabled))
	assert.Equal(t, CursorDisabled, w.CursorMode())
	assert.True(t, IsCode(w.SetCursorMode(CursorMode(0x1234)), InvalidEnum))

	require.NoError(t, w.SetStickyKeys(true))
	require.NoError(t, w.SetStickyMouseButtons(true))
	require.NoError(t, w.SetLockKeyMods(true))
	require.NoError(t, w.SetRawMouseMotion(true))

	drv.SetKeyState(w.d.handle, int(KeyW), native.Press)
	assert.Equal(t, Press, w.Key(KeyW))
	assert.Equal(t, Release, w.Key(KeyS))

	drv.SetMouseButtonState(w.d.handle, int(MouseButtonLeft), native.Press)
	assert.Equal(t, Press, w.MouseButton(MouseButtonLeft))

	require.NoError(t, w.SetCursorPos(3, 4))
	x, y := w.CursorPos()
	assert.Equal(t, []float64{3, 4}, []float64{x, y})
}

func TestKeyNames(t *testing.T) {
	el, _ := newLoop(t)
	assert.Equal(t, "a", el.KeyName(KeyA, 0))
	assert.Equal(t, "b", el.KeyName(KeyUnknown, el.KeyScancode(KeyB)))
	assert.Equal(t, "", el.KeyName(KeyEscape, 0))
}

func TestClipboard(t *testing.T) {
	el, _ := newLoop(t)
	w := newTestWindow(t, el, WindowConfig{})

	require.NoError(t, w.SetClipboard("hello, clipboard"))
	assert.Equal(t, "hello, clipboard", w.Clipboard())
	assert.ErrorIs(t, w.SetClipboard("nul\x00"), ErrNulInString)
}

func TestSetIconScaled(t *testing.T) {
	el, drv := newLoop(t)
	w := newTestWindow(t, el, WindowConfig{})

	src := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	require.NoError(t, w.SetIconScaled(src))
	assert.Equal(t, len(DefaultIconSizes), drv.IconCount(w.d.handle))

	require.NoError(t, w.SetIconScaled(src, 24))
	assert.Equal(t, 1, drv.IconCount(w.d.handle))
}

func TestSetIconUnsupported(t *testing.T) {
	el, _ := newLoop(t, fakedriver.WithPlatform(native.PlatformWayland))
	w := newTestWindow(t, el, WindowConfig{})

	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	assert.True(t, IsCode(w.SetIcon(img), FeatureUnavailable))
}

func TestWindowRequiresMainThread(t *testing.T) {
	el, _ := newLoop(t)
	w := newTestWindow(t, el, WindowConfig{})

	r := onOtherThread(func() { w.Title() })
	require.IsType(t, "", r)
	assert.Contains(t, r, "Title must be called on the main thread")
}

func TestWindowProxyOffMainThread(t *testing.T) {
	el, _ := newLoop(t)
	w := newTestWindow(t, el, WindowConfig{})
	p := w.WindowProxy

	assert.Nil(t, onOtherThread(func() { p.SetShouldClose(true) }))
	assert.True(t, w.ShouldClose())
	assert.Equal(t, w.ID(), p.ID())
}

func TestWindowIDString(t *testing.T) {
	id := WindowID{h: native.Window(0x1234)}
	assert.Equal(t, "window(0x1234)", id.String())
	assert.Equal(t, uintptr(0x1234), id.Raw())
	assert.False(t, id.IsZero())
	assert.True(t, WindowID{}.IsZero())
}
