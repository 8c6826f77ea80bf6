// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package noop

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/swapchain/platform"
)

// Surface is a noop platform.Surface.
type Surface struct {
	rec         *Recorder
	window      platform.Window
	desc        platform.SwapChainDesc
	factory     *Factory
	unsupported map[platform.ColorSpace]bool

	fullscreen bool
	colorSpace platform.ColorSpace
	hdrType    platform.HDRMetadataType
	hdr        platform.HDR10Metadata
	released   bool

	presentResults []platform.Result
	resizeResult   platform.Result
	presents       int
}

// QueuePresentResults makes the next Present calls return results in
// order. Once exhausted, Present returns ResultOK.
func (s *Surface) QueuePresentResults(results ...platform.Result) {
	s.presentResults = append(s.presentResults, results...)
}

// SetResizeResult sets the result of subsequent ResizeBuffers calls.
func (s *Surface) SetResizeResult(r platform.Result) { s.resizeResult = r }

// SimulateFullscreen changes the exclusive fullscreen state the way an
// OS-driven transition would, without going through SetFullscreenState.
func (s *Surface) SimulateFullscreen(fullscreen bool) { s.fullscreen = fullscreen }

// Window returns the window the surface was created for.
func (s *Surface) Window() platform.Window { return s.window }

// ColorSpace returns the color space last set on the surface.
func (s *Surface) ColorSpace() platform.ColorSpace { return s.colorSpace }

// HDRMetadata returns the metadata last set on the surface.
func (s *Surface) HDRMetadata() (platform.HDRMetadataType, platform.HDR10Metadata) {
	return s.hdrType, s.hdr
}

// Presents returns the number of Present calls.
func (s *Surface) Presents() int { return s.presents }

// Released reports whether Release was called.
func (s *Surface) Released() bool { return s.released }

// Present implements platform.Surface.
func (s *Surface) Present(syncInterval uint32, flags platform.PresentFlags) platform.Result {
	s.rec.record(OpPresent, syncInterval, flags)
	s.presents++
	if len(s.presentResults) == 0 {
		return platform.ResultOK
	}
	r := s.presentResults[0]
	s.presentResults = s.presentResults[1:]
	return r
}

// ResizeBuffers implements platform.Surface.
func (s *Surface) ResizeBuffers(bufferCount, width, height uint32, format gputypes.TextureFormat, flags platform.SwapChainFlags) platform.Result {
	s.rec.record(OpResizeBuffers, bufferCount, width, height, format, flags)
	if s.resizeResult.Failed() {
		return s.resizeResult
	}
	s.desc.BufferCount = bufferCount
	s.desc.Width = width
	s.desc.Height = height
	s.desc.Format = format
	s.desc.Flags = flags
	return platform.ResultOK
}

// Desc implements platform.Surface.
func (s *Surface) Desc() (platform.SwapChainDesc, platform.Result) {
	s.rec.record(OpDesc)
	return s.desc, platform.ResultOK
}

// SetFullscreenState implements platform.Surface.
func (s *Surface) SetFullscreenState(fullscreen bool) platform.Result {
	s.rec.record(OpSetFullscreenState, fullscreen)
	s.fullscreen = fullscreen
	return platform.ResultOK
}

// FullscreenState implements platform.Surface.
func (s *Surface) FullscreenState() (bool, platform.Result) {
	s.rec.record(OpFullscreenState)
	return s.fullscreen, platform.ResultOK
}

// CheckColorSpaceSupport implements platform.Surface.
func (s *Surface) CheckColorSpaceSupport(cs platform.ColorSpace) (platform.ColorSpaceSupport, platform.Result) {
	s.rec.record(OpCheckColorSpace, cs)
	if cs == platform.ColorSpaceCustom || cs == platform.ColorSpaceUnset {
		return 0, platform.ErrorInvalidArg
	}
	if s.unsupported[cs] {
		return 0, platform.ResultOK
	}
	return platform.ColorSpaceSupportPresent, platform.ResultOK
}

// SetColorSpace implements platform.Surface.
func (s *Surface) SetColorSpace(cs platform.ColorSpace) platform.Result {
	s.rec.record(OpSetColorSpace, cs)
	if s.unsupported[cs] {
		return platform.ErrorUnsupported
	}
	s.colorSpace = cs
	return platform.ResultOK
}

// SetHDRMetadata implements platform.Surface.
func (s *Surface) SetHDRMetadata(kind platform.HDRMetadataType, md *platform.HDR10Metadata) platform.Result {
	s.rec.record(OpSetHDRMetadata, kind)
	switch kind {
	case platform.HDRMetadataNone:
		s.hdrType = kind
		s.hdr = platform.HDR10Metadata{}
	case platform.HDRMetadataHDR10:
		if md == nil {
			return platform.ErrorInvalidArg
		}
		s.hdrType = kind
		s.hdr = *md
	default:
		return platform.ErrorUnsupported
	}
	return platform.ResultOK
}

// Parent implements platform.Surface.
func (s *Surface) Parent() (platform.Factory, platform.Result) {
	s.rec.record(OpParent)
	if s.factory == nil {
		return nil, platform.ErrorNoInterface
	}
	return s.factory, platform.ResultOK
}

// Release implements platform.Surface.
func (s *Surface) Release() {
	s.rec.record(OpRelease)
	s.released = true
}

var _ platform.Surface = (*Surface)(nil)
