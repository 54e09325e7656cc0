package glfwgo

import (
	"fmt"
	"sync"

	"github.com/obinnaokechukwu/glfwgo/internal/logger"
	"github.com/obinnaokechukwu/glfwgo/internal/thread"
)

// trackers maps each thread to the window whose context it holds current.
// A thread has at most one; moving a context between threads goes through
// the window's mutex.
var trackers sync.Map // thread.ID -> *windowData

func currentOnThisThread() *windowData {
	v, ok := trackers.Load(thread.Current())
	if !ok {
		return nil
	}
	d := v.(*windowData)
	if !d.isAlive.Load() {
		trackers.Delete(thread.Current())
		return nil
	}
	return d
}

func clearTrackers() {
	trackers.Clear()
}

// makeCurrent binds d's context to the calling thread. A context current on
// another thread is a caller bug and panics: GLFW would silently share it.
func makeCurrent(d *windowData) error {
	id := thread.Current()
	var prev *windowData
	if v, ok := trackers.Load(id); ok {
		prev = v.(*windowData)
		if prev == d {
			return nil
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.isAlive.Load() {
		panic(fmt.Sprintf("glfwgo: MakeCurrent on destroyed %s", d.id()))
	}
	if d.isCurrent.Load() {
		panic(fmt.Sprintf("glfwgo: %s is already current on thread %s", d.id(), d.owner))
	}

	if err := check("MakeContextCurrent", func() { d.c.drv.MakeContextCurrent(d.handle) }); err != nil {
		return err
	}
	if prev != nil {
		prev.isCurrent.Store(false)
	}
	d.isCurrent.Store(true)
	d.owner = id
	trackers.Store(id, d)
	return nil
}

// makeUncurrent releases d's context if it is current on the calling
// thread, and does nothing otherwise.
func makeUncurrent(d *windowData) error {
	id := thread.Current()
	v, ok := trackers.Load(id)
	if !ok || v.(*windowData) != d {
		return nil
	}
	if !d.isAlive.Load() {
		panic(fmt.Sprintf("glfwgo: MakeUncurrent on destroyed %s", d.id()))
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	err := check("MakeContextCurrent", func() { d.c.drv.MakeContextCurrent(0) })
	d.isCurrent.Store(false)
	d.owner = 0
	trackers.Delete(id)
	if err != nil {
		logger.Warn("releasing context failed", "window", d.id(), "err", err)
	}
	return err
}
