// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package dxgi is the Windows platform backend. It drives DXGI 1.6 swap
// chains on a Direct3D 12 command queue through COM vtable calls, without
// cgo.
//
// Importing the package registers the "dxgi" backend on 64-bit Windows.
// On other systems the package only provides the format and interface
// tables below, and the backend is not registered.
package dxgi

import "github.com/gogpu/gputypes"

// DXGI_FORMAT values for the formats swap chains accept.
const (
	formatUnknown      uint32 = 0
	formatR16G16B16A16 uint32 = 10
	formatR10G10B10A2  uint32 = 24
	formatR8G8B8A8     uint32 = 28
	formatB8G8R8A8     uint32 = 87
)

const (
	d3dFeatureLevel11_0   uint32 = 0xb000
	commandListTypeDirect uint32 = 0
)

// toDXGIFormat maps a texture format to its DXGI_FORMAT.
func toDXGIFormat(f gputypes.TextureFormat) uint32 {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm:
		return formatR8G8B8A8
	case gputypes.TextureFormatBGRA8Unorm:
		return formatB8G8R8A8
	case gputypes.TextureFormatRGB10A2Unorm:
		return formatR10G10B10A2
	case gputypes.TextureFormatRGBA16Float:
		return formatR16G16B16A16
	default:
		return formatUnknown
	}
}

// fromDXGIFormat is the inverse of toDXGIFormat.
func fromDXGIFormat(f uint32) gputypes.TextureFormat {
	switch f {
	case formatR8G8B8A8:
		return gputypes.TextureFormatRGBA8Unorm
	case formatB8G8R8A8:
		return gputypes.TextureFormatBGRA8Unorm
	case formatR10G10B10A2:
		return gputypes.TextureFormatRGB10A2Unorm
	case formatR16G16B16A16:
		return gputypes.TextureFormatRGBA16Float
	default:
		return gputypes.TextureFormatUndefined
	}
}

// Interface identifiers.
const (
	iidDXGIFactory2      = "{50c83a1c-e072-4c48-87b0-3630fa36a6d0}"
	iidDXGIFactory5      = "{7632e1f5-ee65-4dca-87fd-84cd75f8838d}"
	iidDXGISwapChain4    = "{3d585d5a-bd4a-489e-b1f4-3dbcb6452ffb}"
	iidD3D12Device       = "{189819f1-1db6-4b57-be54-1821339b85f7}"
	iidD3D12CommandQueue = "{0ec870a6-5d7e-4c22-8cfc-5baae07616ed}"
	iidD3D12Fence        = "{0a753dcf-c4d8-4b91-adf6-be5a60d95a76}"
)

// COM vtable indices. IUnknown occupies 0-2 in every interface.
const (
	vtblQueryInterface = 0

	// IDXGIObject
	vtblGetParent = 6

	// IDXGIFactory, IDXGIFactory2, IDXGIFactory5
	vtblMakeWindowAssociation  = 8
	vtblCreateSwapChainForHwnd = 15
	vtblCheckFeatureSupport    = 28

	// IDXGISwapChain .. IDXGISwapChain4
	vtblPresent                = 8
	vtblSetFullscreenState     = 10
	vtblGetFullscreenState     = 11
	vtblResizeBuffers          = 13
	vtblGetDesc1               = 18
	vtblCheckColorSpaceSupport = 37
	vtblSetColorSpace1         = 38
	vtblSetHDRMetaData         = 40

	// ID3D12Object
	vtblSetName = 6

	// ID3D12Device
	vtblCreateCommandQueue     = 8
	vtblCreateFence            = 36
	vtblGetDeviceRemovedReason = 37

	// ID3D12CommandQueue
	vtblQueueSignal = 14

	// ID3D12Fence
	vtblGetCompletedValue    = 8
	vtblSetEventOnCompletion = 9
)

// swapChainDesc1 matches DXGI_SWAP_CHAIN_DESC1.
type swapChainDesc1 struct {
	Width         uint32
	Height        uint32
	Format        uint32
	Stereo        int32
	SampleCount   uint32
	SampleQuality uint32
	BufferUsage   uint32
	BufferCount   uint32
	Scaling       uint32
	SwapEffect    uint32
	AlphaMode     uint32
	Flags         uint32
}

// commandQueueDesc matches D3D12_COMMAND_QUEUE_DESC.
type commandQueueDesc struct {
	Type     uint32
	Priority int32
	Flags    uint32
	NodeMask uint32
}
