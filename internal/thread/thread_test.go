package thread

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentIsStableWhileLocked(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	first := Current()
	require.NotZero(t, first)
	for i := 0; i < 100; i++ {
		runtime.Gosched()
		assert.Equal(t, first, Current())
	}
}

func TestCurrentDiffersAcrossLockedGoroutines(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	mine := Current()

	other := make(chan ID)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		other <- Current()
	}()

	assert.NotEqual(t, mine, <-other)
}

func TestGoroutineID(t *testing.T) {
	id := goroutineID()
	assert.NotZero(t, id)

	ch := make(chan uint64)
	go func() { ch <- goroutineID() }()
	assert.NotEqual(t, id, <-ch)
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "42", ID(42).String())
}
