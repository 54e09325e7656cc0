package glfwgo

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinnaokechukwu/glfwgo/native"
)

func TestNewCursorFromPixelsValidatesLength(t *testing.T) {
	el, drv := newLoop(t)

	_, err := NewCursorFromPixels(el, 2, 2, make([]byte, 15), 0, 0)
	assert.ErrorIs(t, err, ErrInvalidImage)
	_, err = NewCursorFromPixels(el, 0, 2, nil, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidImage)
	assert.Zero(t, drv.Calls("CreateCursor"))

	cur, err := NewCursorFromPixels(el, 2, 2, make([]byte, 16), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, drv.CursorCount())
	cur.Destroy()
	assert.Equal(t, 0, drv.CursorCount())
}

func TestNewCursorFromImage(t *testing.T) {
	el, drv := newLoop(t)

	_, err := NewCursor(el, image.NewNRGBA(image.Rectangle{}), 0, 0)
	assert.ErrorIs(t, err, ErrInvalidImage)

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(4, 4, color.RGBA{A: 255})
	cur, err := NewCursor(el, img, 4, 4)
	require.NoError(t, err)
	assert.NotNil(t, cur)
	assert.Equal(t, 1, drv.CursorCount())
}

func TestSetCursor(t *testing.T) {
	el, drv := newLoop(t)
	w := newTestWindow(t, el, WindowConfig{})

	cur, err := NewStandardCursor(el, PointingHandCursor)
	require.NoError(t, err)
	require.NoError(t, w.SetCursor(cur))
	assert.Equal(t, cur.handle, drv.WindowCursor(w.d.handle))

	require.NoError(t, w.SetCursor(nil))
	assert.Equal(t, native.Cursor(0), drv.WindowCursor(w.d.handle))

	cur.Destroy()
	assert.NotPanics(t, cur.Destroy)
	assert.True(t, IsDeadHandle(w.SetCursor(cur)))
	assert.Equal(t, 1, drv.Calls("DestroyCursor"))
}

func TestNewStandardCursorInvalidShape(t *testing.T) {
	el, _ := newLoop(t)
	_, err := NewStandardCursor(el, StandardCursor(0x1234))
	assert.True(t, IsCode(err, InvalidEnum))
	var glfwErr *Error
	require.ErrorAs(t, err, &glfwErr)
	assert.Equal(t, "CreateStandardCursor", glfwErr.Op)
}
