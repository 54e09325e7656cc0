package fakedriver

import (
	"time"

	"github.com/obinnaokechukwu/glfwgo/native"
)

// Enqueue schedules fn to run on the thread that next processes events.
// GLFW only delivers callbacks from inside event processing, so tests use
// this to simulate input and device changes.
func (d *Driver) Enqueue(fn func()) {
	d.mu.Lock()
	d.pending = append(d.pending, fn)
	d.mu.Unlock()
	d.signal()
}

// Emit schedules a callback on w. fire receives the window's callbacks at
// delivery time and is skipped when w no longer exists.
func (d *Driver) Emit(w native.Window, fire func(cbs *native.WindowCallbacks)) {
	d.Enqueue(func() {
		d.mu.Lock()
		win, ok := d.windows[w]
		var cbs *native.WindowCallbacks
		if ok {
			cbs = win.callbacks
		}
		d.mu.Unlock()
		if cbs != nil {
			fire(cbs)
		}
	})
}

// EmitKey schedules a key callback.
func (d *Driver) EmitKey(w native.Window, key, scancode, action, mods int) {
	d.Emit(w, func(cbs *native.WindowCallbacks) {
		if cbs.Key != nil {
			cbs.Key(key, scancode, action, mods)
		}
	})
}

// EmitCursorPos schedules a cursor position callback.
func (d *Driver) EmitCursorPos(w native.Window, x, y float64) {
	d.Emit(w, func(cbs *native.WindowCallbacks) {
		if cbs.CursorPos != nil {
			cbs.CursorPos(x, y)
		}
	})
}

// EmitCloseRequest sets the close flag and schedules the close callback,
// in that order, like a user clicking the close button.
func (d *Driver) EmitCloseRequest(w native.Window) {
	d.Enqueue(func() {
		d.mu.Lock()
		win, ok := d.windows[w]
		var cbs *native.WindowCallbacks
		if ok {
			win.shouldClose = true
			cbs = win.callbacks
		}
		d.mu.Unlock()
		if cbs != nil && cbs.Close != nil {
			cbs.Close()
		}
	})
}

// EmitError schedules an asynchronous error, as platform code does when a
// request fails during event processing.
func (d *Driver) EmitError(code int, description string) {
	d.Enqueue(func() {
		d.report(code, description)
	})
}

// Pending returns the number of undelivered callbacks.
func (d *Driver) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

func (d *Driver) signal() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// dispatch runs every pending callback on the calling thread, including
// ones queued by the callbacks themselves.
func (d *Driver) dispatch() {
	for {
		d.mu.Lock()
		batch := d.pending
		d.pending = nil
		d.mu.Unlock()
		if len(batch) == 0 {
			return
		}
		for _, fn := range batch {
			fn()
		}
	}
}

func (d *Driver) hasPending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending) > 0
}

func (d *Driver) PollEvents() {
	if !d.enter("PollEvents") {
		return
	}
	d.dispatch()
}

// WaitEvents blocks until a callback is queued or PostEmptyEvent is called.
func (d *Driver) WaitEvents() {
	if !d.enter("WaitEvents") {
		return
	}
	if !d.hasPending() {
		<-d.wake
	}
	d.drainWake()
	d.dispatch()
}

func (d *Driver) WaitEventsTimeout(timeout float64) {
	if !d.enter("WaitEventsTimeout") {
		return
	}
	if timeout < 0 || timeout != timeout {
		d.report(native.InvalidValue, "Invalid time")
		return
	}
	if !d.hasPending() {
		timer := time.NewTimer(time.Duration(timeout * float64(time.Second)))
		select {
		case <-d.wake:
		case <-timer.C:
		}
		timer.Stop()
	}
	d.drainWake()
	d.dispatch()
}

func (d *Driver) drainWake() {
	select {
	case <-d.wake:
	default:
	}
}

// PostEmptyEvent wakes a blocked WaitEvents from any goroutine.
func (d *Driver) PostEmptyEvent() {
	if !d.enter("PostEmptyEvent") {
		return
	}
	d.signal()
}
