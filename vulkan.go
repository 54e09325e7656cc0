package glfwgo

import (
	"fmt"
	"strings"
)

// VulkanSupported reports whether a Vulkan loader and an ICD were found.
func (p Proxy) VulkanSupported() bool {
	p.c.requireAlive("VulkanSupported")
	return p.c.drv.VulkanSupported()
}

// RequiredInstanceExtensions returns the instance extensions GLFW needs to
// create window surfaces.
func (p Proxy) RequiredInstanceExtensions() ([]string, error) {
	p.c.requireAlive("RequiredInstanceExtensions")
	exts, err := checked("GetRequiredInstanceExtensions", p.c.drv.GetRequiredInstanceExtensions)
	if err == nil && exts == nil {
		err = &Error{Code: APIUnavailable, Description: "Vulkan is not available", Op: "GetRequiredInstanceExtensions"}
	}
	return exts, err
}

// InstanceProcAddress returns the address of a Vulkan function for
// instance, or 0. instance may be 0 for the global commands.
func (p Proxy) InstanceProcAddress(instance uintptr, name string) uintptr {
	p.c.requireAlive("InstanceProcAddress")
	if strings.IndexByte(name, 0) >= 0 {
		return 0
	}
	return p.c.drv.GetInstanceProcAddress(instance, name)
}

// PhysicalDevicePresentationSupport reports whether queueFamily of device
// can present to this platform's surfaces.
func (p Proxy) PhysicalDevicePresentationSupport(instance, device uintptr, queueFamily uint32) bool {
	p.c.requireAlive("PhysicalDevicePresentationSupport")
	return p.c.drv.GetPhysicalDevicePresentationSupport(instance, device, queueFamily)
}

// CreateWindowSurface creates a VkSurfaceKHR for the window. The window must
// have been created with ClientAPI set to NoAPI; anything else panics. A
// failure returns a *VulkanError, or the GLFW *Error when one was reported.
func (wp WindowProxy) CreateWindowSurface(instance, allocator uintptr) (uint64, error) {
	if wp.d.clientAPI != NoAPI {
		panic(fmt.Sprintf("glfwgo: CreateWindowSurface on %s with client API %s; create it with ClientAPI NoAPI", wp.d.id(), wp.d.clientAPI))
	}
	var (
		surface uint64
		result  int32
		err     error
	)
	wp.locked("CreateWindowSurface", func() {
		err = check("CreateWindowSurface", func() {
			surface, result = wp.d.c.drv.CreateWindowSurface(instance, wp.d.handle, allocator)
		})
	})
	if result != 0 {
		if err != nil {
			return 0, err
		}
		return 0, &VulkanError{Result: result, Op: "CreateWindowSurface"}
	}
	return surface, err
}
