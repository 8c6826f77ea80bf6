package swapchain

import (
	"fmt"

	"github.com/gogpu/swapchain/hdr"
	"github.com/gogpu/swapchain/platform"
)

// mustDisplayMode returns the display mode for f or panics.
func mustDisplayMode(f Format) hdr.DisplayMode {
	mode, ok := hdr.DisplayModeForFormat(ConvertFormat(f))
	if !ok {
		panic(fmt.Sprintf("swapchain: no display mode for format %s", f))
	}
	return mode
}

// ConfigureDisplayMode selects the color space for dims.Format and sets
// or clears HDR metadata to match. Nothing is sent to the platform when
// the color space is already active. It panics if dims.Format is neither
// FormatRGBA8Unorm nor FormatRGB10A2Unorm.
func (s *SwapChain) ConfigureDisplayMode(dims Dimensions) {
	mode := mustDisplayMode(dims.Format)
	if s.colorSpace == mode.ColorSpace {
		return
	}

	s.EnsureColorSpace(mode.ColorSpace)
	if mode.HDR {
		l := hdr.DefaultLuminance
		s.SetHDRMetaData(l.MaxOutputNits, l.MinOutputNits, l.MaxContentLightLevel, l.MaxFrameAverageLightLevel)
	} else {
		s.DisableHdr()
	}
}

// EnsureColorSpace commits cs to the surface if the surface can present
// in it. An unsupported color space is logged and left uncommitted. It
// panics on platform.ColorSpaceCustom.
func (s *SwapChain) EnsureColorSpace(cs platform.ColorSpace) {
	if cs == platform.ColorSpaceCustom {
		panic("swapchain: custom color space")
	}
	if s.surface == nil || s.colorSpace == cs {
		return
	}

	support, res := s.surface.CheckColorSpaceSupport(cs)
	if res.Failed() || support&platform.ColorSpaceSupportPresent == 0 {
		Logger().Warn("swapchain: color space not supported",
			"colorSpace", cs.String(),
			"result", res.String())
		return
	}
	if res := s.surface.SetColorSpace(cs); res.Failed() {
		Logger().Warn("swapchain: set color space failed",
			"colorSpace", cs.String(),
			"result", res.String())
		return
	}
	s.colorSpace = cs
	Logger().Debug("swapchain: color space set", "colorSpace", cs.String())
}

// SetHDRMetaData sends HDR10 mastering metadata built from the reference
// gamut of the active color space and the given light levels in nits.
// Without an active HDR color space nothing is sent.
func (s *SwapChain) SetHDRMetaData(maxOutputNits, minOutputNits, maxContentLightLevel, maxFrameAverageLightLevel float32) {
	if s.surface == nil {
		return
	}
	gamut, ok := hdr.GamutForColorSpace(s.colorSpace)
	if !ok {
		Logger().Warn("swapchain: no HDR color space active", "colorSpace", s.colorSpace.String())
		return
	}
	md := hdr.Encode(gamut, hdr.Luminance{
		MaxOutputNits:             maxOutputNits,
		MinOutputNits:             minOutputNits,
		MaxContentLightLevel:      maxContentLightLevel,
		MaxFrameAverageLightLevel: maxFrameAverageLightLevel,
	})
	if res := s.surface.SetHDRMetadata(platform.HDRMetadataHDR10, &md); res.Failed() {
		Logger().Warn("swapchain: set HDR metadata failed", "result", res.String())
		return
	}
	Logger().Debug("swapchain: HDR metadata set", "gamut", gamut.String(), "maxNits", maxOutputNits)
}

// DisableHdr clears HDR metadata on the surface.
func (s *SwapChain) DisableHdr() {
	if s.surface == nil {
		return
	}
	if res := s.surface.SetHDRMetadata(platform.HDRMetadataNone, nil); res.Failed() {
		Logger().Warn("swapchain: clear HDR metadata failed", "result", res.String())
	}
}
