package glfwgo

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/obinnaokechukwu/glfwgo/internal/logger"
)

// Methods that return an error consume any fault GLFW reports while they
// run. Methods that only return values leave faults in the calling thread's
// error slot; wrap them in Checked, Logged or Ignored to decide what happens
// to it.

// Checked clears the calling thread's error slot, runs f, and returns f's
// value together with any fault reported while it ran.
func Checked[T any](f func() T) (T, error) {
	ClearError()
	v := f()
	if e := takeError(); e != nil {
		return v, e
	}
	return v, nil
}

// Check is Checked for functions without a result.
func Check(f func()) error {
	_, err := Checked(func() struct{} {
		f()
		return struct{}{}
	})
	return err
}

// Logged runs f like Checked but logs a fault instead of returning it. The
// log record carries the caller's file and line as its context.
func Logged[T any](f func() T) T {
	ClearError()
	v := f()
	logPending(callerContext(1))
	return v
}

// LogErr is Logged for functions without a result.
func LogErr(f func()) {
	ClearError()
	f()
	logPending(callerContext(1))
}

// Ignored runs f and discards any fault it reports.
func Ignored[T any](f func() T) T {
	ClearError()
	v := f()
	ClearError()
	return v
}

// Ignore is Ignored for functions without a result.
func Ignore(f func()) {
	ClearError()
	f()
	ClearError()
}

func callerContext(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

func logPending(context string) {
	if e := takeError(); e != nil {
		logger.Error("glfw error", "context", context, "code", e.Code, "description", e.Description)
	}
}

// check runs f and returns its fault tagged with op.
func check(op string, f func()) error {
	ClearError()
	f()
	if e := takeError(); e != nil {
		e.Op = op
		return e
	}
	return nil
}

// checked is check for functions with a result.
func checked[T any](op string, f func() T) (T, error) {
	ClearError()
	v := f()
	if e := takeError(); e != nil {
		e.Op = op
		return v, e
	}
	return v, nil
}

// logged runs f and logs its fault with op as the context.
func logged[T any](op string, f func() T) T {
	ClearError()
	v := f()
	logPending(op)
	return v
}
