package glfwgo

import (
	"fmt"
	"sync"
	"sync/atomic"
	"weak"

	"github.com/obinnaokechukwu/glfwgo/internal/handles"
	"github.com/obinnaokechukwu/glfwgo/internal/logger"
	"github.com/obinnaokechukwu/glfwgo/internal/thread"
	"github.com/obinnaokechukwu/glfwgo/native"
)

// core is the state shared by an EventLoop and every handle derived from
// it. It outlives Terminate so stale handles can detect that they are dead.
type core struct {
	drv        native.Driver
	mainThread thread.ID

	alive       atomic.Bool
	dispatching atomic.Bool

	// monitors is the set of monitors known alive. Enumeration is the
	// source of truth; a disconnect callback removes early.
	monitors handles.Set[MonitorID]

	// stamping is set while pushError reads the clock, so an error raised
	// by that read is not queued in turn.
	stamping atomic.Bool

	mu     sync.Mutex // guards events
	events []TimedEvent
}

var (
	// lifecycleMu serializes Init and Terminate.
	lifecycleMu sync.Mutex

	// active is the core of the live EventLoop, looked up by native
	// callbacks that carry no user data.
	active atomic.Pointer[core]

	// loopRef lets Init tell a leaked EventLoop from a live one. Guarded by
	// lifecycleMu.
	loopRef weak.Pointer[EventLoop]
)

func (c *core) requireAlive(op string) {
	if c == nil || !c.alive.Load() {
		panic(fmt.Sprintf("glfwgo: %s called without a live EventLoop", op))
	}
}

// requireMain panics unless the loop is alive and the caller is on the
// thread that called Init.
func (c *core) requireMain(op string) {
	c.requireAlive(op)
	if id := thread.Current(); id != c.mainThread {
		panic(fmt.Sprintf("glfwgo: %s must be called on the main thread %s, not thread %s", op, c.mainThread, id))
	}
}

// push stamps ev with the current GLFW time and queues it.
func (c *core) push(ev Event) {
	t := c.drv.GetTime()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, TimedEvent{Time: t, Event: ev})
}

// pushError stamps and queues an ErrorEvent. Errors reported while the
// clock is being read are dropped from the queue.
func (c *core) pushError(e *Error) {
	if !c.stamping.CompareAndSwap(false, true) {
		return
	}
	t := c.drv.GetTime()
	c.stamping.Store(false)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, TimedEvent{Time: t, Event: ErrorEvent{Err: e}})
}

func (c *core) drain() []TimedEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	events := c.events
	c.events = nil
	return events
}

// pushEvent queues ev on the live loop. Events that arrive with no live
// loop are dropped.
func pushEvent(ev Event) {
	c := active.Load()
	if c == nil || !c.alive.Load() {
		logger.Warn("dropping event with no live EventLoop", "event", fmt.Sprintf("%T", ev))
		return
	}
	c.push(ev)
}

// errorBridge is installed as the GLFW error callback. Every fault lands in
// the calling thread's slot; faults raised on the main thread during event
// processing are also queued as events.
func errorBridge(c *core, user func(code ErrorCode, description string)) native.ErrorFunc {
	return func(code int, description string) {
		e := newError(code, description, "")
		if c.dispatching.Load() && thread.Current() == c.mainThread {
			ev := *e
			c.pushError(&ev)
		}
		// Stored after queuing so a clock error raised by pushError
		// cannot displace this one.
		storeError(e)
		if user != nil {
			user(e.Code, description)
			return
		}
		logger.Debug("glfw error", "code", e.Code, "description", description)
	}
}
