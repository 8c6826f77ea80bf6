// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package hdr maps swap chain pixel formats to output color spaces and
// encodes HDR10 static metadata.
//
// The reference gamut table and the two scale factors are part of the
// HDR10 contract with the display: primaries are sent in units of 0.00002
// and mastering luminance in units of 0.0001 nits. Values are truncated,
// not rounded, when converted to fixed point.
package hdr

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/swapchain/platform"
)

// Fixed-point scale factors of the HDR10 metadata block.
const (
	ChromaticityScale = 50000
	LuminanceScale    = 10000
)

// Gamut selects a reference set of chromaticity primaries.
type Gamut int

const (
	// GamutStandard is the Rec.709 / sRGB gamut.
	GamutStandard Gamut = iota

	// GamutWide is the Rec.2020 gamut.
	GamutWide

	// GamutCount is the number of reference gamuts.
	GamutCount
)

// String returns the name of the gamut's standard.
func (g Gamut) String() string {
	switch g {
	case GamutStandard:
		return "Rec709"
	case GamutWide:
		return "Rec2020"
	default:
		return "Gamut(?)"
	}
}

// Chromaticities holds CIE 1931 xy coordinates of the red, green and blue
// primaries and the white point.
type Chromaticities struct {
	RedX, RedY     float32
	GreenX, GreenY float32
	BlueX, BlueY   float32
	WhiteX, WhiteY float32
}

var referenceGamuts = [GamutCount]Chromaticities{
	GamutStandard: {0.64000, 0.33000, 0.30000, 0.60000, 0.15000, 0.06000, 0.31270, 0.32900},
	GamutWide:     {0.70800, 0.29200, 0.17000, 0.79700, 0.13100, 0.04600, 0.31270, 0.32900},
}

// Reference returns the reference primaries of g.
// It panics if g is out of range.
func Reference(g Gamut) Chromaticities {
	return referenceGamuts[g]
}

// Luminance describes the mastering display and content light levels,
// all in nits.
type Luminance struct {
	MaxOutputNits             float32
	MinOutputNits             float32
	MaxContentLightLevel      float32
	MaxFrameAverageLightLevel float32
}

// DefaultLuminance is used when HDR output is enabled by display mode
// configuration.
// TODO: derive from the attached display's reported capabilities once the
// output query is exposed by platform.Device.
var DefaultLuminance = Luminance{
	MaxOutputNits:             1000,
	MinOutputNits:             0.001,
	MaxContentLightLevel:      2000,
	MaxFrameAverageLightLevel: 500,
}

// Encode converts g's primaries and l into an HDR10 metadata block.
func Encode(g Gamut, l Luminance) platform.HDR10Metadata {
	c := Reference(g)
	return platform.HDR10Metadata{
		RedPrimary:                [2]uint16{uint16(c.RedX * ChromaticityScale), uint16(c.RedY * ChromaticityScale)},
		GreenPrimary:              [2]uint16{uint16(c.GreenX * ChromaticityScale), uint16(c.GreenY * ChromaticityScale)},
		BluePrimary:               [2]uint16{uint16(c.BlueX * ChromaticityScale), uint16(c.BlueY * ChromaticityScale)},
		WhitePoint:                [2]uint16{uint16(c.WhiteX * ChromaticityScale), uint16(c.WhiteY * ChromaticityScale)},
		MaxMasteringLuminance:     uint32(l.MaxOutputNits * LuminanceScale),
		MinMasteringLuminance:     uint32(l.MinOutputNits * LuminanceScale),
		MaxContentLightLevel:      uint16(l.MaxContentLightLevel),
		MaxFrameAverageLightLevel: uint16(l.MaxFrameAverageLightLevel),
	}
}

// GamutForColorSpace returns the reference gamut used for HDR metadata
// in cs. Only the two HDR-capable color spaces have one.
func GamutForColorSpace(cs platform.ColorSpace) (Gamut, bool) {
	switch cs {
	case platform.ColorSpaceRGBFullG10NoneP709:
		return GamutStandard, true
	case platform.ColorSpaceRGBFullG2084NoneP2020:
		return GamutWide, true
	default:
		return 0, false
	}
}

// DisplayMode is the output configuration derived from a buffer format.
type DisplayMode struct {
	ColorSpace platform.ColorSpace
	HDR        bool
}

// DisplayModeForFormat returns the display mode for a swap chain buffer
// format. Only 8-bit RGBA (standard range) and 10-bit RGB10A2 (HDR10)
// are recognized.
func DisplayModeForFormat(format gputypes.TextureFormat) (DisplayMode, bool) {
	switch format {
	case gputypes.TextureFormatRGBA8Unorm:
		return DisplayMode{ColorSpace: platform.ColorSpaceRGBFullG22NoneP709}, true
	case gputypes.TextureFormatRGB10A2Unorm:
		return DisplayMode{ColorSpace: platform.ColorSpaceRGBFullG2084NoneP2020, HDR: true}, true
	default:
		return DisplayMode{ColorSpace: platform.ColorSpaceUnset}, false
	}
}
