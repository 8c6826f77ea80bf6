package swapchain

import "github.com/gogpu/swapchain/platform"

// Resize rebuilds the buffers with the size and count in dims.
//
// The device is drained first, since buffers still referenced by
// in-flight work cannot be released. The buffer format and flags are
// taken from the live surface. On failure the swap chain is left exactly
// as it was and a *ResizeError matching ErrResize is returned. On
// success the current index restarts at 0, the display mode is
// reconfigured for dims.Format and the exclusive fullscreen state is
// observed again.
func (s *SwapChain) Resize(dims Dimensions) error {
	if s == nil || s.surface == nil {
		return ErrNotLive
	}
	mustDisplayMode(dims.Format)
	dims.ImageCount = clampImageCount(dims.ImageCount, s.maxImages)

	if err := s.device.WaitForIdle(); err != nil {
		Logger().Error("swapchain: idle wait before resize failed", "err", err)
		return &ResizeError{Code: platform.ErrorFail, Err: err}
	}

	desc, res := s.surface.Desc()
	if res.Failed() {
		Logger().Error("swapchain: read surface description failed", "result", res.String())
		return &ResizeError{Code: res}
	}

	res = s.surface.ResizeBuffers(dims.ImageCount, dims.Width, dims.Height, desc.Format, desc.Flags)
	if res.Failed() {
		Logger().Error("swapchain: resize buffers failed",
			"result", res.String(),
			"width", dims.Width,
			"height", dims.Height)
		return &ResizeError{Code: res}
	}

	s.dims = dims
	s.imageCount = dims.ImageCount
	s.currentIndex = 0
	s.ConfigureDisplayMode(dims)
	s.observeFullscreen(CheckpointResize)

	Logger().Info("swapchain: resized",
		"width", dims.Width,
		"height", dims.Height,
		"images", dims.ImageCount)
	return nil
}
