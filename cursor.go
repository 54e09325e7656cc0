package glfwgo

import (
	"fmt"
	"image"

	"github.com/obinnaokechukwu/glfwgo/internal/logger"
	"github.com/obinnaokechukwu/glfwgo/native"
)

// Cursor is a cursor image. It belongs to the main thread and is destroyed
// by Destroy or by Terminate.
type Cursor struct {
	el     *EventLoop
	handle native.Cursor
}

// NewCursor creates a cursor from img with its hotspot at (xhot, yhot)
// pixels from the top-left corner.
func NewCursor(el *EventLoop, img image.Image, xhot, yhot int) (*Cursor, error) {
	el.c.requireMain("NewCursor")
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty cursor image", ErrInvalidImage)
	}
	return el.createCursor("CreateCursor", func() native.Cursor {
		return el.c.drv.CreateCursor(toNativeImage(img), xhot, yhot)
	})
}

// NewCursorFromPixels creates a cursor from width*height pixels of 8-bit
// non-premultiplied RGBA, row-major from the top-left corner.
func NewCursorFromPixels(el *EventLoop, width, height int, pixels []byte, xhot, yhot int) (*Cursor, error) {
	el.c.requireMain("NewCursorFromPixels")
	if err := validatePixels(width, height, pixels); err != nil {
		return nil, fmt.Errorf("%w: %dx%d cursor needs %d bytes, got %d", err, width, height, 4*width*height, len(pixels))
	}
	img := native.Image{Width: width, Height: height, Pixels: pixels}
	return el.createCursor("CreateCursor", func() native.Cursor {
		return el.c.drv.CreateCursor(img, xhot, yhot)
	})
}

// NewStandardCursor creates a cursor with a system shape.
func NewStandardCursor(el *EventLoop, shape StandardCursor) (*Cursor, error) {
	el.c.requireMain("NewStandardCursor")
	return el.createCursor("CreateStandardCursor", func() native.Cursor {
		return el.c.drv.CreateStandardCursor(int(shape))
	})
}

func (el *EventLoop) createCursor(op string, create func() native.Cursor) (*Cursor, error) {
	handle, err := checked(op, create)
	if handle == 0 {
		if err == nil {
			err = &Error{Code: PlatformError, Description: "cursor creation failed with no error reported", Op: op}
		}
		return nil, err
	}
	if err != nil {
		logger.Warn("glfw reported an error while creating a cursor", "err", err)
	}
	cur := &Cursor{el: el, handle: handle}
	el.trackCursor(cur)
	return cur, nil
}

// Destroy destroys the cursor. Windows using it revert to the default
// cursor. Destroy is idempotent.
func (cur *Cursor) Destroy() {
	if cur.handle == 0 {
		return
	}
	cur.el.c.requireMain("Cursor.Destroy")
	cur.destroy()
}

func (cur *Cursor) destroy() {
	if cur.handle == 0 {
		return
	}
	h := cur.handle
	cur.handle = 0
	LogErr(func() { cur.el.c.drv.DestroyCursor(h) })
	cur.el.forgetCursor(cur)
}
