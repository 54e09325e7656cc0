package fakedriver

import (
	"fmt"
	"strings"

	"github.com/obinnaokechukwu/glfwgo/native"
)

// ConnectJoystick plugs in a joystick and schedules the connected callback.
func (d *Driver) ConnectJoystick(jid int, js Joystick) {
	d.mu.Lock()
	copyJS := js
	d.joysticks[jid] = &copyJS
	d.mu.Unlock()
	d.Enqueue(func() { d.fireJoystick(jid, native.Connected) })
}

// DisconnectJoystick unplugs a joystick and schedules the disconnected
// callback.
func (d *Driver) DisconnectJoystick(jid int) {
	d.mu.Lock()
	delete(d.joysticks, jid)
	d.mu.Unlock()
	d.Enqueue(func() { d.fireJoystick(jid, native.Disconnected) })
}

func (d *Driver) fireJoystick(jid, event int) {
	d.mu.Lock()
	cb := d.joystickCB
	d.mu.Unlock()
	if cb != nil {
		cb(jid, event)
	}
}

func (d *Driver) joystick(function string, jid int) (*Joystick, bool) {
	if !d.enter(function) {
		return nil, false
	}
	if jid < 0 || jid > native.JoystickLast {
		d.report(native.InvalidEnum, fmt.Sprintf("Invalid joystick ID %d", jid))
		return nil, false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	js, ok := d.joysticks[jid]
	return js, ok
}

func (d *Driver) JoystickPresent(jid int) bool {
	_, ok := d.joystick("JoystickPresent", jid)
	return ok
}

func (d *Driver) GetJoystickAxes(jid int) []float32 {
	js, ok := d.joystick("GetJoystickAxes", jid)
	if !ok {
		return nil
	}
	return append([]float32(nil), js.Axes...)
}

func (d *Driver) GetJoystickButtons(jid int) []byte {
	js, ok := d.joystick("GetJoystickButtons", jid)
	if !ok {
		return nil
	}
	buttons := append([]byte(nil), js.Buttons...)
	d.mu.Lock()
	hatButtons := d.initHints[native.JoystickHatButtons] != native.False
	if _, set := d.initHints[native.JoystickHatButtons]; !set {
		hatButtons = true
	}
	d.mu.Unlock()
	if hatButtons {
		for _, hat := range js.Hats {
			for _, bit := range []byte{native.HatUp, native.HatRight, native.HatDown, native.HatLeft} {
				if hat&bit != 0 {
					buttons = append(buttons, native.Press)
				} else {
					buttons = append(buttons, native.Release)
				}
			}
		}
	}
	return buttons
}

func (d *Driver) GetJoystickHats(jid int) []byte {
	js, ok := d.joystick("GetJoystickHats", jid)
	if !ok {
		return nil
	}
	return append([]byte(nil), js.Hats...)
}

func (d *Driver) GetJoystickName(jid int) string {
	js, ok := d.joystick("GetJoystickName", jid)
	if !ok {
		return ""
	}
	return js.Name
}

func (d *Driver) GetJoystickGUID(jid int) string {
	js, ok := d.joystick("GetJoystickGUID", jid)
	if !ok {
		return ""
	}
	return js.GUID
}

func (d *Driver) JoystickIsGamepad(jid int) bool {
	js, ok := d.joystick("JoystickIsGamepad", jid)
	return ok && js.Gamepad != nil
}

func (d *Driver) GetGamepadName(jid int) string {
	js, ok := d.joystick("GetGamepadName", jid)
	if !ok || js.Gamepad == nil {
		return ""
	}
	return js.GamepadName
}

func (d *Driver) GetGamepadState(jid int) (native.GamepadState, bool) {
	js, ok := d.joystick("GetGamepadState", jid)
	if !ok || js.Gamepad == nil {
		return native.GamepadState{}, false
	}
	return *js.Gamepad, true
}

// UpdateGamepadMappings accepts any non-empty SDL_GameControllerDB text
// whose lines have at least three comma-separated fields.
func (d *Driver) UpdateGamepadMappings(mappings string) bool {
	if !d.enter("UpdateGamepadMappings") {
		return false
	}
	lines := strings.Split(strings.TrimSpace(mappings), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Count(line, ",") < 2 {
			d.report(native.InvalidValue, "Invalid gamepad mapping: "+line)
			return false
		}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mappings = append(d.mappings, mappings)
	return true
}

func (d *Driver) SetJoystickCallback(cb native.JoystickFunc) {
	d.enter("SetJoystickCallback")
	d.mu.Lock()
	d.joystickCB = cb
	d.mu.Unlock()
}

func (d *Driver) VulkanSupported() bool {
	if !d.enter("VulkanSupported") {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.vulkan
}

func (d *Driver) requireVulkan(function string) bool {
	if !d.enter(function) {
		return false
	}
	d.mu.Lock()
	ok := d.vulkan
	d.mu.Unlock()
	if !ok {
		d.report(native.APIUnavailable, "Vulkan: Loader not found")
	}
	return ok
}

func (d *Driver) GetRequiredInstanceExtensions() []string {
	if !d.requireVulkan("GetRequiredInstanceExtensions") {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.vulkanExts...)
}

func (d *Driver) GetInstanceProcAddress(instance uintptr, name string) uintptr {
	if !d.requireVulkan("GetInstanceProcAddress") {
		return 0
	}
	if !strings.HasPrefix(name, "vk") {
		return 0
	}
	return uintptr(0x7e000000 + len(name))
}

func (d *Driver) GetPhysicalDevicePresentationSupport(instance, device uintptr, queueFamily uint32) bool {
	if !d.requireVulkan("GetPhysicalDevicePresentationSupport") {
		return false
	}
	return queueFamily == 0
}

func (d *Driver) CreateWindowSurface(instance uintptr, w native.Window, allocator uintptr) (uint64, int32) {
	if !d.requireVulkan("CreateWindowSurface") {
		return 0, VkErrorInitializationFailed
	}
	win, ok := d.windowOp("CreateWindowSurface", w)
	if !ok {
		return 0, VkErrorInitializationFailed
	}
	d.mu.Lock()
	clientAPI := win.attribs[native.ClientAPI]
	d.mu.Unlock()
	if clientAPI != native.NoAPI {
		d.report(native.InvalidValue, "Vulkan: Window surface creation requires the window to have the client API set to GLFW_NO_API")
		return 0, VkErrorNativeWindowInUse
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	surface := uint64(d.newHandle())
	d.surfaces[w] = surface
	return surface, VkSuccess
}

// nativePlatforms maps accessor name fragments to the platform they need.
var nativePlatforms = map[string]int{
	"X11":     native.PlatformX11,
	"GLX":     native.PlatformX11,
	"Wayland": native.PlatformWayland,
	"Win32":   native.PlatformWin32,
	"WGL":     native.PlatformWin32,
	"Cocoa":   native.PlatformCocoa,
	"NSGL":    native.PlatformCocoa,
}

// NativeHandle fabricates handle+0x100 for accessors of the active platform
// and reports PlatformUnavailable for the others.
func (d *Driver) NativeHandle(symbol string, handle uintptr) (uintptr, bool) {
	if !d.enter("NativeHandle") {
		return 0, true
	}
	d.mu.Lock()
	platform := d.platform
	d.mu.Unlock()
	for frag, p := range nativePlatforms {
		if strings.Contains(symbol, frag) {
			if p != platform {
				d.report(native.PlatformUnavailable, symbol+": platform not initialized")
				return 0, true
			}
			return handle + 0x100, true
		}
	}
	return 0, false
}

// NativeString fabricates Win32 display device names for the string
// accessors: \\.\DISPLAY<handle> for the adapter, with \Monitor0 appended for
// the monitor.
func (d *Driver) NativeString(symbol string, handle uintptr) (string, bool) {
	if !d.enter("NativeString") {
		return "", true
	}
	d.mu.Lock()
	platform := d.platform
	d.mu.Unlock()
	if !strings.Contains(symbol, "Win32") {
		return "", false
	}
	if platform != native.PlatformWin32 {
		d.report(native.PlatformUnavailable, symbol+": platform not initialized")
		return "", true
	}
	adapter := fmt.Sprintf(`\\.\DISPLAY%d`, handle)
	if strings.HasSuffix(symbol, "Monitor") {
		return adapter + `\Monitor0`, true
	}
	return adapter, true
}
