// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hdr

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/swapchain/platform"
)

func TestEncodeWideGamut(t *testing.T) {
	md := Encode(GamutWide, DefaultLuminance)
	want := platform.HDR10Metadata{
		RedPrimary:                [2]uint16{35400, 14600},
		GreenPrimary:              [2]uint16{8500, 39850},
		BluePrimary:               [2]uint16{6550, 2300},
		WhitePoint:                [2]uint16{15635, 16450},
		MaxMasteringLuminance:     10000000,
		MinMasteringLuminance:     10,
		MaxContentLightLevel:      2000,
		MaxFrameAverageLightLevel: 500,
	}
	if md != want {
		t.Errorf("Encode(GamutWide) =\n%+v\nwant\n%+v", md, want)
	}
}

func TestEncodeStandardGamut(t *testing.T) {
	md := Encode(GamutStandard, DefaultLuminance)
	if md.RedPrimary != [2]uint16{32000, 16500} {
		t.Errorf("RedPrimary = %v", md.RedPrimary)
	}
	if md.GreenPrimary != [2]uint16{15000, 30000} {
		t.Errorf("GreenPrimary = %v", md.GreenPrimary)
	}
	if md.BluePrimary != [2]uint16{7500, 3000} {
		t.Errorf("BluePrimary = %v", md.BluePrimary)
	}
	if md.WhitePoint != [2]uint16{15635, 16450} {
		t.Errorf("WhitePoint = %v", md.WhitePoint)
	}
}

func TestEncodeTruncates(t *testing.T) {
	md := Encode(GamutStandard, Luminance{
		MaxOutputNits:             0.00019,
		MinOutputNits:             0.00009,
		MaxContentLightLevel:      1.9,
		MaxFrameAverageLightLevel: 0.5,
	})
	if md.MaxMasteringLuminance != 1 || md.MinMasteringLuminance != 0 {
		t.Errorf("luminance = %d/%d, want 1/0", md.MaxMasteringLuminance, md.MinMasteringLuminance)
	}
	if md.MaxContentLightLevel != 1 || md.MaxFrameAverageLightLevel != 0 {
		t.Errorf("light levels = %d/%d, want 1/0", md.MaxContentLightLevel, md.MaxFrameAverageLightLevel)
	}
}

func TestReferenceTable(t *testing.T) {
	wide := Reference(GamutWide)
	if wide.RedX != 0.708 || wide.GreenY != 0.797 || wide.BlueY != 0.046 {
		t.Errorf("Rec2020 primaries = %+v", wide)
	}
	std := Reference(GamutStandard)
	if std.WhiteX != wide.WhiteX || std.WhiteY != wide.WhiteY {
		t.Error("both gamuts must share the D65 white point")
	}
}

func TestGamutForColorSpace(t *testing.T) {
	tests := []struct {
		cs   platform.ColorSpace
		want Gamut
		ok   bool
	}{
		{platform.ColorSpaceRGBFullG10NoneP709, GamutStandard, true},
		{platform.ColorSpaceRGBFullG2084NoneP2020, GamutWide, true},
		{platform.ColorSpaceRGBFullG22NoneP709, 0, false},
		{platform.ColorSpaceUnset, 0, false},
	}
	for _, tt := range tests {
		got, ok := GamutForColorSpace(tt.cs)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("GamutForColorSpace(%v) = %v, %v; want %v, %v", tt.cs, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDisplayModeForFormat(t *testing.T) {
	m, ok := DisplayModeForFormat(gputypes.TextureFormatRGBA8Unorm)
	if !ok || m.HDR || m.ColorSpace != platform.ColorSpaceRGBFullG22NoneP709 {
		t.Errorf("RGBA8Unorm = %+v, %v", m, ok)
	}
	m, ok = DisplayModeForFormat(gputypes.TextureFormatRGB10A2Unorm)
	if !ok || !m.HDR || m.ColorSpace != platform.ColorSpaceRGBFullG2084NoneP2020 {
		t.Errorf("RGB10A2Unorm = %+v, %v", m, ok)
	}
	if g, _ := GamutForColorSpace(m.ColorSpace); g != GamutWide {
		t.Errorf("HDR display mode gamut = %v, want Rec2020", g)
	}
	if _, ok := DisplayModeForFormat(gputypes.TextureFormatBGRA8Unorm); ok {
		t.Error("BGRA8Unorm should not be a recognized display format")
	}
}
