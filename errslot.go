package glfwgo

import (
	"sync"

	"github.com/obinnaokechukwu/glfwgo/internal/logger"
	"github.com/obinnaokechukwu/glfwgo/internal/thread"
)

// GLFW reports errors through a callback on the thread that caused them.
// Each thread gets one slot holding its most recent unconsumed error.
var slots = struct {
	mu sync.Mutex
	m  map[thread.ID]*Error
}{m: make(map[thread.ID]*Error)}

func storeError(e *Error) {
	id := thread.Current()
	slots.mu.Lock()
	defer slots.mu.Unlock()
	if prev, ok := slots.m[id]; ok {
		logger.Debug("overwriting unconsumed glfw error", "thread", id, "code", prev.Code, "description", prev.Description)
	}
	slots.m[id] = e
}

// takeError removes and returns the calling thread's error, or nil.
func takeError() *Error {
	id := thread.Current()
	slots.mu.Lock()
	defer slots.mu.Unlock()
	e, ok := slots.m[id]
	if !ok {
		return nil
	}
	delete(slots.m, id)
	return e
}

func clearAllSlots() {
	slots.mu.Lock()
	defer slots.mu.Unlock()
	slots.m = make(map[thread.ID]*Error)
}

// GetError returns and clears the calling thread's pending GLFW error, or
// nil if there is none. The result is always an *Error when non-nil.
func GetError() error {
	if e := takeError(); e != nil {
		return e
	}
	return nil
}

// ClearError discards the calling thread's pending GLFW error.
func ClearError() {
	takeError()
}
