package glfwgo

import (
	"strings"

	"github.com/obinnaokechukwu/glfwgo/internal/logger"
	"github.com/obinnaokechukwu/glfwgo/native"
)

// WindowConfig holds the window hints applied before a window is created.
// Every field is optional: nil leaves the GLFW default. Integer fields
// accept DontCare where GLFW does.
//
// The mapstructure tags let a WindowConfig be loaded from a config file; see
// the config package.
type WindowConfig struct {
	// Window behaviour
	Resizable              *bool `mapstructure:"resizable"`
	Visible                *bool `mapstructure:"visible"`
	Decorated              *bool `mapstructure:"decorated"`
	Focused                *bool `mapstructure:"focused"`
	AutoIconify            *bool `mapstructure:"auto_iconify"`
	Floating               *bool `mapstructure:"floating"`
	Maximized              *bool `mapstructure:"maximized"`
	CenterCursor           *bool `mapstructure:"center_cursor"`
	TransparentFramebuffer *bool `mapstructure:"transparent_framebuffer"`
	FocusOnShow            *bool `mapstructure:"focus_on_show"`
	ScaleToMonitor         *bool `mapstructure:"scale_to_monitor"`
	ScaleFramebuffer       *bool `mapstructure:"scale_framebuffer"`
	MousePassthrough       *bool `mapstructure:"mouse_passthrough"`
	PositionX              *int  `mapstructure:"position_x"`
	PositionY              *int  `mapstructure:"position_y"`

	// Framebuffer
	RedBits        *int  `mapstructure:"red_bits"`
	GreenBits      *int  `mapstructure:"green_bits"`
	BlueBits       *int  `mapstructure:"blue_bits"`
	AlphaBits      *int  `mapstructure:"alpha_bits"`
	DepthBits      *int  `mapstructure:"depth_bits"`
	StencilBits    *int  `mapstructure:"stencil_bits"`
	AccumRedBits   *int  `mapstructure:"accum_red_bits"`
	AccumGreenBits *int  `mapstructure:"accum_green_bits"`
	AccumBlueBits  *int  `mapstructure:"accum_blue_bits"`
	AccumAlphaBits *int  `mapstructure:"accum_alpha_bits"`
	AuxBuffers     *int  `mapstructure:"aux_buffers"`
	Samples        *int  `mapstructure:"samples"`
	RefreshRate    *int  `mapstructure:"refresh_rate"`
	Stereo         *bool `mapstructure:"stereo"`
	SRGBCapable    *bool `mapstructure:"srgb_capable"`
	Doublebuffer   *bool `mapstructure:"doublebuffer"`

	// Context
	ClientAPI              *ClientAPI          `mapstructure:"client_api"`
	ContextCreationAPI     *ContextCreationAPI `mapstructure:"context_creation_api"`
	ContextVersionMajor    *int                `mapstructure:"context_version_major"`
	ContextVersionMinor    *int                `mapstructure:"context_version_minor"`
	ContextRobustness      *ContextRobustness  `mapstructure:"context_robustness"`
	ContextReleaseBehavior *ReleaseBehavior    `mapstructure:"context_release_behavior"`
	OpenGLForwardCompat    *bool               `mapstructure:"opengl_forward_compat"`
	OpenGLDebugContext     *bool               `mapstructure:"opengl_debug_context"`
	OpenGLProfile          *OpenGLProfile      `mapstructure:"opengl_profile"`

	// Platform specific
	Win32KeyboardMenu      *bool   `mapstructure:"win32_keyboard_menu"`
	Win32ShowDefault       *bool   `mapstructure:"win32_show_default"`
	CocoaFrameName         *string `mapstructure:"cocoa_frame_name"`
	CocoaGraphicsSwitching *bool   `mapstructure:"cocoa_graphics_switching"`
	WaylandAppID           *string `mapstructure:"wayland_app_id"`
	X11ClassName           *string `mapstructure:"x11_class_name"`
	X11InstanceName        *string `mapstructure:"x11_instance_name"`
}

// Bool returns a pointer to b, for WindowConfig and EventLoopConfig fields.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// String returns a pointer to s.
func String(s string) *string { return &s }

// Ptr returns a pointer to v. It suits the enum-typed fields.
func Ptr[T any](v T) *T { return &v }

// hints lists the set fields in a fixed order.
func (cfg *WindowConfig) hints() []hintValue {
	var hints []hintValue
	b := func(name string, hint int, v *bool) {
		if v != nil {
			hints = append(hints, hintValue{name: name, hint: hint, value: boolHint(*v)})
		}
	}
	i := func(name string, hint int, v *int) {
		if v != nil {
			hints = append(hints, hintValue{name: name, hint: hint, value: *v})
		}
	}
	s := func(name string, hint int, v *string) {
		if v != nil {
			hints = append(hints, hintValue{name: name, hint: hint, str: *v, isStr: true})
		}
	}

	b("Resizable", native.Resizable, cfg.Resizable)
	b("Visible", native.Visible, cfg.Visible)
	b("Decorated", native.Decorated, cfg.Decorated)
	b("Focused", native.Focused, cfg.Focused)
	b("AutoIconify", native.AutoIconify, cfg.AutoIconify)
	b("Floating", native.Floating, cfg.Floating)
	b("Maximized", native.Maximized, cfg.Maximized)
	b("CenterCursor", native.CenterCursor, cfg.CenterCursor)
	b("TransparentFramebuffer", native.TransparentFramebuffer, cfg.TransparentFramebuffer)
	b("FocusOnShow", native.FocusOnShow, cfg.FocusOnShow)
	b("ScaleToMonitor", native.ScaleToMonitor, cfg.ScaleToMonitor)
	b("ScaleFramebuffer", native.ScaleFramebuffer, cfg.ScaleFramebuffer)
	b("MousePassthrough", native.MousePassthrough, cfg.MousePassthrough)
	i("PositionX", native.PositionX, cfg.PositionX)
	i("PositionY", native.PositionY, cfg.PositionY)

	i("RedBits", native.RedBits, cfg.RedBits)
	i("GreenBits", native.GreenBits, cfg.GreenBits)
	i("BlueBits", native.BlueBits, cfg.BlueBits)
	i("AlphaBits", native.AlphaBits, cfg.AlphaBits)
	i("DepthBits", native.DepthBits, cfg.DepthBits)
	i("StencilBits", native.StencilBits, cfg.StencilBits)
	i("AccumRedBits", native.AccumRedBits, cfg.AccumRedBits)
	i("AccumGreenBits", native.AccumGreenBits, cfg.AccumGreenBits)
	i("AccumBlueBits", native.AccumBlueBits, cfg.AccumBlueBits)
	i("AccumAlphaBits", native.AccumAlphaBits, cfg.AccumAlphaBits)
	i("AuxBuffers", native.AuxBuffers, cfg.AuxBuffers)
	i("Samples", native.Samples, cfg.Samples)
	i("RefreshRate", native.RefreshRate, cfg.RefreshRate)
	b("Stereo", native.Stereo, cfg.Stereo)
	b("SRGBCapable", native.SRGBCapable, cfg.SRGBCapable)
	b("Doublebuffer", native.Doublebuffer, cfg.Doublebuffer)

	if cfg.ClientAPI != nil {
		i("ClientAPI", native.ClientAPI, Int(int(*cfg.ClientAPI)))
	}
	if cfg.ContextCreationAPI != nil {
		i("ContextCreationAPI", native.ContextCreationAPI, Int(int(*cfg.ContextCreationAPI)))
	}
	i("ContextVersionMajor", native.ContextVersionMajor, cfg.ContextVersionMajor)
	i("ContextVersionMinor", native.ContextVersionMinor, cfg.ContextVersionMinor)
	if cfg.ContextRobustness != nil {
		i("ContextRobustness", native.ContextRobustness, Int(int(*cfg.ContextRobustness)))
	}
	if cfg.ContextReleaseBehavior != nil {
		i("ContextReleaseBehavior", native.ContextReleaseBehavior, Int(int(*cfg.ContextReleaseBehavior)))
	}
	b("OpenGLForwardCompat", native.OpenGLForwardCompat, cfg.OpenGLForwardCompat)
	b("OpenGLDebugContext", native.ContextDebug, cfg.OpenGLDebugContext)
	if cfg.OpenGLProfile != nil {
		i("OpenGLProfile", native.OpenGLProfile, Int(int(*cfg.OpenGLProfile)))
	}

	b("Win32KeyboardMenu", native.Win32KeyboardMenu, cfg.Win32KeyboardMenu)
	b("Win32ShowDefault", native.Win32ShowDefault, cfg.Win32ShowDefault)
	s("CocoaFrameName", native.CocoaFrameName, cfg.CocoaFrameName)
	b("CocoaGraphicsSwitching", native.CocoaGraphicsSwitching, cfg.CocoaGraphicsSwitching)
	s("WaylandAppID", native.WaylandAppID, cfg.WaylandAppID)
	s("X11ClassName", native.X11ClassName, cfg.X11ClassName)
	s("X11InstanceName", native.X11InstanceName, cfg.X11InstanceName)
	return hints
}

// apply resets the hints to their defaults and sets every non-nil field.
// Rejected hints are logged and skipped.
func (cfg *WindowConfig) apply(drv native.Driver) {
	LogErr(drv.DefaultWindowHints)
	for _, h := range cfg.hints() {
		var err error
		switch {
		case h.isStr && strings.IndexByte(h.str, 0) >= 0:
			logger.Warn("window hint skipped", "hint", h.name, "err", ErrNulInString)
			continue
		case h.isStr:
			err = check("WindowHintString", func() { drv.WindowHintString(h.hint, h.str) })
		default:
			err = check("WindowHint", func() { drv.WindowHint(h.hint, h.value) })
		}
		if err != nil {
			logger.Warn("window hint rejected", "hint", h.name, "err", err)
		}
	}
}
