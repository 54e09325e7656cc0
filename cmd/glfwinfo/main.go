// Command glfwinfo reports what the installed GLFW library and the current
// display offer: version, monitors, Vulkan support, joysticks, and a live
// event dump for a window built from a config profile.
package main

import (
	"os"
	"runtime"
)

func init() {
	// GLFW must stay on the thread that initialized it.
	runtime.LockOSThread()
}

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
