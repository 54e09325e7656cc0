// Package thread identifies the OS thread the calling goroutine runs on.
//
// The identity is only stable for goroutines that have called
// runtime.LockOSThread; every thread-affine check in glfwgo assumes its
// callers did.
package thread

import (
	"runtime"
	"strconv"
)

// ID identifies an OS thread. The zero value is never a valid thread.
type ID uint64

// Current returns the ID of the calling thread.
func Current() ID {
	return ID(current())
}

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// goroutineID returns the current goroutine's ID. It stands in for the
// thread ID on platforms x/sys cannot query; a locked goroutine owns its
// thread exclusively, so the two are interchangeable there.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] >= '0' && buf[i] <= '9' {
			id = id*10 + uint64(buf[i]-'0')
		} else {
			break
		}
	}
	return id
}
