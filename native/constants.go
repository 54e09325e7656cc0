package native

// GLFW 3.4 enumerants, as defined in glfw3.h.
const (
	True  = 1
	False = 0

	DontCare    = -1
	AnyPosition = -0x80000000
)

// Actions.
const (
	Release = 0
	Press   = 1
	Repeat  = 2
)

// Joystick hat states.
const (
	HatCentered = 0
	HatUp       = 1
	HatRight    = 2
	HatDown     = 4
	HatLeft     = 8
)

// Key range.
const (
	KeyUnknown = -1
	KeyFirst   = 32
	KeyLast    = 348
)

// Modifier bits.
const (
	ModShift    = 0x0001
	ModControl  = 0x0002
	ModAlt      = 0x0004
	ModSuper    = 0x0008
	ModCapsLock = 0x0010
	ModNumLock  = 0x0020
	ModAll      = ModShift | ModControl | ModAlt | ModSuper | ModCapsLock | ModNumLock
)

// Input device ranges.
const (
	MouseButtonLast   = 7
	JoystickLast      = 15
	GamepadButtonLast = 14
	GamepadAxisLast   = 5
)

// Error codes.
const (
	NoError              = 0
	NotInitialized       = 0x00010001
	NoCurrentContext     = 0x00010002
	InvalidEnum          = 0x00010003
	InvalidValue         = 0x00010004
	OutOfMemory          = 0x00010005
	APIUnavailable       = 0x00010006
	VersionUnavailable   = 0x00010007
	PlatformError        = 0x00010008
	FormatUnavailable    = 0x00010009
	NoWindowContext      = 0x0001000A
	CursorUnavailable    = 0x0001000B
	FeatureUnavailable   = 0x0001000C
	FeatureUnimplemented = 0x0001000D
	PlatformUnavailable  = 0x0001000E
)

// Window attributes and hints.
const (
	Focused                = 0x00020001
	Iconified              = 0x00020002
	Resizable              = 0x00020003
	Visible                = 0x00020004
	Decorated              = 0x00020005
	AutoIconify            = 0x00020006
	Floating               = 0x00020007
	Maximized              = 0x00020008
	CenterCursor           = 0x00020009
	TransparentFramebuffer = 0x0002000A
	Hovered                = 0x0002000B
	FocusOnShow            = 0x0002000C
	MousePassthrough       = 0x0002000D
	PositionX              = 0x0002000E
	PositionY              = 0x0002000F

	RedBits        = 0x00021001
	GreenBits      = 0x00021002
	BlueBits       = 0x00021003
	AlphaBits      = 0x00021004
	DepthBits      = 0x00021005
	StencilBits    = 0x00021006
	AccumRedBits   = 0x00021007
	AccumGreenBits = 0x00021008
	AccumBlueBits  = 0x00021009
	AccumAlphaBits = 0x0002100A
	AuxBuffers     = 0x0002100B
	Stereo         = 0x0002100C
	Samples        = 0x0002100D
	SRGBCapable    = 0x0002100E
	RefreshRate    = 0x0002100F
	Doublebuffer   = 0x00021010

	ClientAPI              = 0x00022001
	ContextVersionMajor    = 0x00022002
	ContextVersionMinor    = 0x00022003
	ContextRevision        = 0x00022004
	ContextRobustness      = 0x00022005
	OpenGLForwardCompat    = 0x00022006
	ContextDebug           = 0x00022007
	OpenGLProfile          = 0x00022008
	ContextReleaseBehavior = 0x00022009
	ContextNoError         = 0x0002200A
	ContextCreationAPI     = 0x0002200B
	ScaleToMonitor         = 0x0002200C
	ScaleFramebuffer       = 0x0002200D

	CocoaFrameName         = 0x00023002
	CocoaGraphicsSwitching = 0x00023003
	X11ClassName           = 0x00024001
	X11InstanceName        = 0x00024002
	Win32KeyboardMenu      = 0x00025001
	Win32ShowDefault       = 0x00025002
	WaylandAppID           = 0x00026001
)

// Hint values.
const (
	NoAPI       = 0
	OpenGLAPI   = 0x00030001
	OpenGLESAPI = 0x00030002

	NoRobustness        = 0
	NoResetNotification = 0x00031001
	LoseContextOnReset  = 0x00031002

	OpenGLAnyProfile    = 0
	OpenGLCoreProfile   = 0x00032001
	OpenGLCompatProfile = 0x00032002

	AnyReleaseBehavior   = 0
	ReleaseBehaviorFlush = 0x00035001
	ReleaseBehaviorNone  = 0x00035002

	NativeContextAPI = 0x00036001
	EGLContextAPI    = 0x00036002
	OSMesaContextAPI = 0x00036003

	AnglePlatformTypeNone     = 0x00037001
	AnglePlatformTypeOpenGL   = 0x00037002
	AnglePlatformTypeOpenGLES = 0x00037003
	AnglePlatformTypeD3D9     = 0x00037004
	AnglePlatformTypeD3D11    = 0x00037005
	AnglePlatformTypeVulkan   = 0x00037007
	AnglePlatformTypeMetal    = 0x00037008

	WaylandPreferLibdecor  = 0x00038001
	WaylandDisableLibdecor = 0x00038002
)

// Input modes and their values.
const (
	CursorMode         = 0x00033001
	StickyKeys         = 0x00033002
	StickyMouseButtons = 0x00033003
	LockKeyMods        = 0x00033004
	RawMouseMotion     = 0x00033005

	CursorNormal   = 0x00034001
	CursorHidden   = 0x00034002
	CursorDisabled = 0x00034003
	CursorCaptured = 0x00034004
)

// Standard cursor shapes.
const (
	ArrowCursor        = 0x00036001
	IBeamCursor        = 0x00036002
	CrosshairCursor    = 0x00036003
	PointingHandCursor = 0x00036004
	ResizeEWCursor     = 0x00036005
	ResizeNSCursor     = 0x00036006
	ResizeNWSECursor   = 0x00036007
	ResizeNESWCursor   = 0x00036008
	ResizeAllCursor    = 0x00036009
	NotAllowedCursor   = 0x0003600A
)

// Device connection events.
const (
	Connected    = 0x00040001
	Disconnected = 0x00040002
)

// Init hints.
const (
	JoystickHatButtons  = 0x00050001
	AnglePlatformType   = 0x00050002
	PlatformHint        = 0x00050003
	CocoaChdirResources = 0x00051001
	CocoaMenubar        = 0x00051002
	X11XCBVulkanSurface = 0x00052001
	WaylandLibdecor     = 0x00053001
)

// Platforms.
const (
	AnyPlatform     = 0x00060000
	PlatformWin32   = 0x00060001
	PlatformCocoa   = 0x00060002
	PlatformWayland = 0x00060003
	PlatformX11     = 0x00060004
	PlatformNull    = 0x00060005
)

// Version of the header these bindings were written against.
const (
	VersionMajor    = 3
	VersionMinor    = 4
	VersionRevision = 0
)
