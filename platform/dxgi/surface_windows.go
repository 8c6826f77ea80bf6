// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows && (amd64 || arm64)

package dxgi

import (
	"unsafe"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/swapchain/platform"
)

// Surface wraps an IDXGISwapChain4.
type Surface struct {
	obj    uintptr
	parent *Factory
}

// Present implements platform.Surface.
func (s *Surface) Present(syncInterval uint32, flags platform.PresentFlags) platform.Result {
	return comCall(s.obj, vtblPresent, uintptr(syncInterval), uintptr(flags))
}

// ResizeBuffers implements platform.Surface.
func (s *Surface) ResizeBuffers(bufferCount, width, height uint32, format gputypes.TextureFormat, flags platform.SwapChainFlags) platform.Result {
	return comCall(s.obj, vtblResizeBuffers,
		uintptr(bufferCount),
		uintptr(width),
		uintptr(height),
		uintptr(toDXGIFormat(format)),
		uintptr(flags))
}

// Desc implements platform.Surface.
func (s *Surface) Desc() (platform.SwapChainDesc, platform.Result) {
	var native swapChainDesc1
	res := comCall(s.obj, vtblGetDesc1, uintptr(unsafe.Pointer(&native)))
	if res.Failed() {
		return platform.SwapChainDesc{}, res
	}
	return platform.SwapChainDesc{
		Width:         native.Width,
		Height:        native.Height,
		Format:        fromDXGIFormat(native.Format),
		BufferCount:   native.BufferCount,
		SampleCount:   native.SampleCount,
		SampleQuality: native.SampleQuality,
		BufferUsage:   platform.Usage(native.BufferUsage),
		Scaling:       platform.Scaling(native.Scaling),
		SwapEffect:    platform.SwapEffect(native.SwapEffect),
		Flags:         platform.SwapChainFlags(native.Flags),
	}, res
}

// SetFullscreenState implements platform.Surface. The swap chain picks
// the output containing the window.
func (s *Surface) SetFullscreenState(fullscreen bool) platform.Result {
	return comCall(s.obj, vtblSetFullscreenState, boolArg(fullscreen), 0)
}

// FullscreenState implements platform.Surface.
func (s *Surface) FullscreenState() (bool, platform.Result) {
	var fullscreen int32
	res := comCall(s.obj, vtblGetFullscreenState, uintptr(unsafe.Pointer(&fullscreen)), 0)
	return fullscreen != 0, res
}

// CheckColorSpaceSupport implements platform.Surface.
func (s *Surface) CheckColorSpaceSupport(cs platform.ColorSpace) (platform.ColorSpaceSupport, platform.Result) {
	var support uint32
	res := comCall(s.obj, vtblCheckColorSpaceSupport, uintptr(cs), uintptr(unsafe.Pointer(&support)))
	return platform.ColorSpaceSupport(support), res
}

// SetColorSpace implements platform.Surface.
func (s *Surface) SetColorSpace(cs platform.ColorSpace) platform.Result {
	return comCall(s.obj, vtblSetColorSpace1, uintptr(cs))
}

// SetHDRMetadata implements platform.Surface.
func (s *Surface) SetHDRMetadata(kind platform.HDRMetadataType, md *platform.HDR10Metadata) platform.Result {
	if md == nil {
		return comCall(s.obj, vtblSetHDRMetaData, uintptr(kind), 0, 0)
	}
	return comCall(s.obj, vtblSetHDRMetaData,
		uintptr(kind),
		unsafe.Sizeof(*md),
		uintptr(unsafe.Pointer(md)))
}

// Parent implements platform.Surface. The factory is fetched once and
// released with the surface.
func (s *Surface) Parent() (platform.Factory, platform.Result) {
	if s.parent != nil {
		return s.parent, platform.ResultOK
	}
	var obj uintptr
	res := comCall(s.obj, vtblGetParent,
		uintptr(unsafe.Pointer(guidDXGIFactory2)),
		uintptr(unsafe.Pointer(&obj)))
	if res.Failed() {
		return nil, res
	}
	s.parent = &Factory{obj: obj}
	return s.parent, platform.ResultOK
}

// Release implements platform.Surface.
func (s *Surface) Release() {
	s.parent.release()
	s.parent = nil
	comRelease(s.obj)
	s.obj = 0
}

var _ platform.Surface = (*Surface)(nil)
