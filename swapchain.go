package swapchain

import (
	"github.com/gogpu/swapchain/devicelost"
	"github.com/gogpu/swapchain/platform"
)

// SwapChain is a ring of presentable buffers bound to a window.
//
// The zero value is a swap chain without a live surface: Present returns
// 0 and the other operations do nothing. Accessors and Present also
// accept a nil *SwapChain.
type SwapChain struct {
	device  platform.Device
	window  platform.Window
	surface platform.Surface
	loss    *devicelost.Handler

	dims         Dimensions
	imageCount   uint32
	maxImages    uint32
	currentIndex uint32

	tearing    bool
	colorSpace platform.ColorSpace
	fullscreen FullscreenObservation
}

// Create builds a swap chain for window on device.
//
// A zero image count means DefaultImageCount; any other count is
// clamped to [MinImageCount, MaxImageCount] (see WithMaxImageCount). Mode switching is always allowed; tearing is
// enabled when the platform supports it, in which case the OS fullscreen
// toggle is disabled on the window. The display mode for dims.Format is
// configured before Create returns, and an unrecognized format panics
// before any native object is created.
//
// A failed native creation returns a *CreationError matching ErrCreation.
func Create(device platform.Device, window platform.Window, dims Dimensions, opts ...Option) (*SwapChain, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if window == 0 {
		return nil, ErrNilWindow
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	mustDisplayMode(dims.Format)
	dims.ImageCount = clampImageCount(dims.ImageCount, o.maxImageCount)

	factory := o.factory
	if factory == nil {
		factory = device.Factory()
	}
	tearing := ProbeTearingSupport(factory)

	flags := platform.FlagAllowModeSwitch
	if tearing {
		flags |= platform.FlagAllowTearing
	}
	desc := platform.SwapChainDesc{
		Width:       dims.Width,
		Height:      dims.Height,
		Format:      ConvertFormat(dims.Format),
		BufferCount: dims.ImageCount,
		SampleCount: 1,
		BufferUsage: platform.UsageRenderTargetOutput,
		Scaling:     platform.ScalingNone,
		SwapEffect:  platform.SwapEffectFlipSequential,
		Flags:       flags,
	}

	surface, res := device.CreateSwapChain(window, desc)
	if res.Failed() || surface == nil {
		if res.Succeeded() {
			res = platform.ErrorFail
		}
		Logger().Error("swapchain: create failed",
			"result", res.String(),
			"width", dims.Width,
			"height", dims.Height,
			"format", dims.Format.String())
		return nil, &CreationError{Code: res}
	}

	loss := o.lossHandler
	if loss == nil {
		loss = devicelost.NewHandler(device)
	}

	s := &SwapChain{
		device:     device,
		window:     window,
		surface:    surface,
		loss:       loss,
		dims:       dims,
		imageCount: dims.ImageCount,
		maxImages:  o.maxImageCount,
		tearing:    tearing,
		colorSpace: platform.ColorSpaceUnset,
		fullscreen: FullscreenObservation{Checkpoint: CheckpointCreate},
	}

	if tearing {
		s.disableFullscreenToggle()
	}
	s.ConfigureDisplayMode(dims)

	Logger().Info("swapchain: created",
		"width", dims.Width,
		"height", dims.Height,
		"format", dims.Format.String(),
		"images", dims.ImageCount,
		"tearing", tearing)
	return s, nil
}

// disableFullscreenToggle stops the OS from switching the window into
// exclusive fullscreen on Alt+Enter, which is incompatible with tearing.
func (s *SwapChain) disableFullscreenToggle() {
	parent, res := s.surface.Parent()
	if res.Failed() || parent == nil {
		Logger().Warn("swapchain: parent factory unavailable", "result", res.String())
		return
	}
	if res := parent.MakeWindowAssociation(s.window, platform.WindowAssociationNoAltEnter); res.Failed() {
		Logger().Warn("swapchain: window association failed", "result", res.String())
	}
}

// Destroy leaves exclusive fullscreen and releases the native surface.
// It is safe to call more than once and on a nil SwapChain.
func (s *SwapChain) Destroy() {
	if s == nil || s.surface == nil {
		return
	}
	if res := s.surface.SetFullscreenState(false); res.Failed() {
		Logger().Debug("swapchain: leave fullscreen on destroy failed", "result", res.String())
	}
	s.surface.Release()
	s.surface = nil
	s.currentIndex = 0
	s.fullscreen = FullscreenObservation{Checkpoint: CheckpointDestroy}
	Logger().Info("swapchain: destroyed")
}

// IsLive reports whether the swap chain holds a native surface.
func (s *SwapChain) IsLive() bool { return s != nil && s.surface != nil }

// Dimensions returns the dimensions the buffers were last built with.
func (s *SwapChain) Dimensions() Dimensions {
	if s == nil {
		return Dimensions{}
	}
	return s.dims
}

// ImageCount returns the number of buffers in the ring.
func (s *SwapChain) ImageCount() uint32 {
	if s == nil {
		return 0
	}
	return s.imageCount
}

// CurrentImageIndex returns the index of the buffer to render into next.
func (s *SwapChain) CurrentImageIndex() uint32 {
	if s == nil {
		return 0
	}
	return s.currentIndex
}

// TearingSupported reports whether tearing was enabled at creation.
func (s *SwapChain) TearingSupported() bool { return s != nil && s.tearing }

// ColorSpace returns the color space last committed to the surface, or
// platform.ColorSpaceUnset.
func (s *SwapChain) ColorSpace() platform.ColorSpace {
	if s == nil || s.device == nil {
		return platform.ColorSpaceUnset
	}
	return s.colorSpace
}

// Window returns the window the swap chain presents to.
func (s *SwapChain) Window() platform.Window {
	if s == nil {
		return 0
	}
	return s.window
}
