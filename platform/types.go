// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package platform

import (
	"strconv"

	"github.com/gogpu/gputypes"
)

// Window is an opaque native window handle (an HWND on Windows).
// The zero value means "no window".
type Window uintptr

// Feature identifies an optional factory capability.
type Feature uint32

const (
	// FeaturePresentAllowTearing reports whether presentation may skip the
	// vertical-sync wait on variable refresh rate displays.
	FeaturePresentAllowTearing Feature = 0
)

// SwapChainFlags are creation and resize flags for a Surface.
type SwapChainFlags uint32

const (
	// FlagAllowModeSwitch lets the OS switch display mode when the
	// application enters exclusive fullscreen.
	FlagAllowModeSwitch SwapChainFlags = 2

	// FlagAllowTearing enables tearing presentation. Only valid if
	// FeaturePresentAllowTearing is supported.
	FlagAllowTearing SwapChainFlags = 2048
)

// PresentFlags modify a single Present call.
type PresentFlags uint32

const (
	// PresentAllowTearing presents without waiting for vertical sync.
	// Not allowed while in exclusive fullscreen.
	PresentAllowTearing PresentFlags = 0x200
)

// WindowAssociation flags control which OS shortcuts the factory handles
// on behalf of a window.
type WindowAssociation uint32

const (
	// WindowAssociationNoWindowChanges stops the factory from monitoring
	// the window message queue.
	WindowAssociationNoWindowChanges WindowAssociation = 1 << 0

	// WindowAssociationNoAltEnter disables the OS fullscreen toggle
	// shortcut for the window.
	WindowAssociationNoAltEnter WindowAssociation = 1 << 1

	// WindowAssociationNoPrintScreen disables print screen handling.
	WindowAssociationNoPrintScreen WindowAssociation = 1 << 2
)

// Usage describes how swap chain buffers are used.
type Usage uint32

const (
	// UsageRenderTargetOutput marks buffers as render targets.
	UsageRenderTargetOutput Usage = 0x20
)

// Scaling is the stretch behavior when buffer and window sizes differ.
type Scaling uint32

const (
	ScalingStretch Scaling = 0
	ScalingNone    Scaling = 1
)

// SwapEffect selects how buffer contents are handled after present.
type SwapEffect uint32

const (
	SwapEffectDiscard        SwapEffect = 0
	SwapEffectSequential     SwapEffect = 1
	SwapEffectFlipSequential SwapEffect = 3
	SwapEffectFlipDiscard    SwapEffect = 4
)

// SwapChainDesc is the creation descriptor for a Surface. Backends read it
// back from a live Surface through Surface.Desc.
type SwapChainDesc struct {
	Width         uint32
	Height        uint32
	Format        gputypes.TextureFormat
	BufferCount   uint32
	SampleCount   uint32
	SampleQuality uint32
	BufferUsage   Usage
	Scaling       Scaling
	SwapEffect    SwapEffect
	Flags         SwapChainFlags
}

// ColorSpace identifies an output color space. Values match
// DXGI_COLOR_SPACE_TYPE.
type ColorSpace uint32

const (
	// ColorSpaceRGBFullG22NoneP709 is sRGB-like standard dynamic range.
	ColorSpaceRGBFullG22NoneP709 ColorSpace = 0

	// ColorSpaceRGBFullG10NoneP709 is linear scRGB.
	ColorSpaceRGBFullG10NoneP709 ColorSpace = 1

	// ColorSpaceRGBFullG2084NoneP2020 is HDR10: Rec.2020 primaries with the
	// ST.2084 perceptual quantizer transfer function.
	ColorSpaceRGBFullG2084NoneP2020 ColorSpace = 12

	// ColorSpaceUnset marks a surface whose color space was never set.
	ColorSpaceUnset ColorSpace = 0xFFFFFFFE

	// ColorSpaceCustom is reserved and never valid for a swap chain.
	ColorSpaceCustom ColorSpace = 0xFFFFFFFF
)

// String returns a short name for cs.
func (cs ColorSpace) String() string {
	switch cs {
	case ColorSpaceRGBFullG22NoneP709:
		return "RGB_FULL_G22_NONE_P709"
	case ColorSpaceRGBFullG10NoneP709:
		return "RGB_FULL_G10_NONE_P709"
	case ColorSpaceRGBFullG2084NoneP2020:
		return "RGB_FULL_G2084_NONE_P2020"
	case ColorSpaceUnset:
		return "unset"
	case ColorSpaceCustom:
		return "CUSTOM"
	default:
		return "ColorSpace(" + strconv.FormatUint(uint64(cs), 10) + ")"
	}
}

// ColorSpaceSupport is the bitmask returned by a color space query.
type ColorSpaceSupport uint32

const (
	// ColorSpaceSupportPresent means the surface can present in the
	// queried color space.
	ColorSpaceSupportPresent ColorSpaceSupport = 0x1

	// ColorSpaceSupportOverlayPresent means overlay planes can present in
	// the queried color space.
	ColorSpaceSupportOverlayPresent ColorSpaceSupport = 0x2
)

// HDRMetadataType selects the metadata block passed to
// Surface.SetHDRMetadata.
type HDRMetadataType uint32

const (
	HDRMetadataNone      HDRMetadataType = 0
	HDRMetadataHDR10     HDRMetadataType = 1
	HDRMetadataHDR10Plus HDRMetadataType = 2
)

// HDR10Metadata is the static HDR10 metadata block. The field layout
// matches DXGI_HDR_METADATA_HDR10 so backends can pass it by pointer.
//
// Primaries and white point are in units of 0.00002, luminance bounds in
// units of 0.0001 nits, light levels in whole nits.
type HDR10Metadata struct {
	RedPrimary                [2]uint16
	GreenPrimary              [2]uint16
	BluePrimary               [2]uint16
	WhitePoint                [2]uint16
	MaxMasteringLuminance     uint32
	MinMasteringLuminance     uint32
	MaxContentLightLevel      uint16
	MaxFrameAverageLightLevel uint16
}
