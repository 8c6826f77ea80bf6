package swapchain

// FullscreenMode is a way of covering the whole display.
type FullscreenMode int

const (
	// Windowed is a regular window.
	Windowed FullscreenMode = iota

	// BorderlessFullscreen is a window sized to the display. The
	// compositor stays in charge, so tearing presents remain possible.
	BorderlessFullscreen

	// ExclusiveFullscreen hands the display to the swap chain.
	ExclusiveFullscreen
)

func (m FullscreenMode) String() string {
	switch m {
	case Windowed:
		return "Windowed"
	case BorderlessFullscreen:
		return "BorderlessFullscreen"
	case ExclusiveFullscreen:
		return "ExclusiveFullscreen"
	default:
		return "Unknown"
	}
}

// Checkpoint names the operation at which the exclusive fullscreen state
// was last observed.
type Checkpoint int

const (
	CheckpointNone Checkpoint = iota
	CheckpointCreate
	CheckpointResize
	CheckpointDestroy
)

func (c Checkpoint) String() string {
	switch c {
	case CheckpointCreate:
		return "Create"
	case CheckpointResize:
		return "Resize"
	case CheckpointDestroy:
		return "Destroy"
	default:
		return "None"
	}
}

// FullscreenObservation is the exclusive fullscreen state as last seen.
// The OS can change the real state at any time; the swap chain only
// looks at Create, Resize and Destroy.
type FullscreenObservation struct {
	Exclusive  bool
	Checkpoint Checkpoint
}

// PreferredFullscreenModeFor returns BorderlessFullscreen when tearing is
// supported and ExclusiveFullscreen otherwise.
func PreferredFullscreenModeFor(tearing bool) FullscreenMode {
	if tearing {
		return BorderlessFullscreen
	}
	return ExclusiveFullscreen
}

// PreferredFullscreenMode returns the preferred mode for the tearing
// support probed at creation.
func (s *SwapChain) PreferredFullscreenMode() FullscreenMode {
	return PreferredFullscreenModeFor(s.TearingSupported())
}

// RequestExclusiveFullscreen asks the platform to enter or leave
// exclusive fullscreen. It reports whether the last observed state
// already equals enable; the request itself is not observed until the
// next Resize, which the platform triggers on a mode change. Without a
// live surface only the observed state is compared.
func (s *SwapChain) RequestExclusiveFullscreen(enable bool) bool {
	if s == nil {
		return !enable
	}
	if s.surface == nil {
		return s.fullscreen.Exclusive == enable
	}
	if res := s.surface.SetFullscreenState(enable); res.Failed() {
		Logger().Warn("swapchain: set fullscreen state failed",
			"enable", enable,
			"result", res.String())
	}
	return s.fullscreen.Exclusive == enable
}

// ExclusiveFullscreenState returns the last observed exclusive state.
func (s *SwapChain) ExclusiveFullscreenState() bool {
	if s == nil {
		return false
	}
	return s.fullscreen.Exclusive
}

// FullscreenObservation returns the last observation and where it was
// made.
func (s *SwapChain) FullscreenObservation() FullscreenObservation {
	if s == nil {
		return FullscreenObservation{}
	}
	return s.fullscreen
}

func (s *SwapChain) observeFullscreen(at Checkpoint) {
	exclusive, res := s.surface.FullscreenState()
	if res.Failed() {
		Logger().Debug("swapchain: fullscreen state query failed", "result", res.String())
		exclusive = false
	}
	s.fullscreen = FullscreenObservation{Exclusive: exclusive, Checkpoint: at}
}
