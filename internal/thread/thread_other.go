//go:build !linux && !windows

package thread

func current() uint64 {
	return goroutineID()
}
