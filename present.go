package swapchain

import "github.com/gogpu/swapchain/platform"

// Present hands the current buffer to the display and returns the index
// of the next buffer to render into.
//
// The index advances even when the platform reports a failure, so the
// ring never stalls. A device-removed failure is passed to the loss
// handler; other failures are logged. Occlusion is not a failure. With a
// sync interval of zero, tearing is requested when it is supported and
// the window is not in exclusive fullscreen.
//
// On a swap chain without a live surface Present does nothing and
// returns the current index.
func (s *SwapChain) Present() uint32 {
	if s == nil || s.surface == nil {
		return s.CurrentImageIndex()
	}

	var flags platform.PresentFlags
	if s.dims.SyncInterval == 0 && s.tearing && !s.fullscreen.Exclusive {
		flags |= platform.PresentAllowTearing
	}

	res := s.surface.Present(s.dims.SyncInterval, flags)
	switch {
	case res == platform.ErrorDeviceRemoved:
		s.loss.OnPresentFailed(res)
	case res.Failed():
		Logger().Warn("swapchain: present failed", "result", res.String())
	case res == platform.StatusOccluded:
		Logger().Debug("swapchain: window occluded")
	}

	s.currentIndex = (s.currentIndex + 1) % s.imageCount
	return s.currentIndex
}
