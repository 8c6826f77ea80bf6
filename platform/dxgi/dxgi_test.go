// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dxgi

import (
	"regexp"
	"testing"
	"unsafe"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/swapchain/platform"
)

func TestFormatMapping(t *testing.T) {
	tests := []struct {
		tf   gputypes.TextureFormat
		dxgi uint32
	}{
		{gputypes.TextureFormatRGBA8Unorm, 28},
		{gputypes.TextureFormatBGRA8Unorm, 87},
		{gputypes.TextureFormatRGB10A2Unorm, 24},
		{gputypes.TextureFormatRGBA16Float, 10},
	}
	for _, tt := range tests {
		if got := toDXGIFormat(tt.tf); got != tt.dxgi {
			t.Errorf("toDXGIFormat(%v) = %d, want %d", tt.tf, got, tt.dxgi)
		}
		if got := fromDXGIFormat(tt.dxgi); got != tt.tf {
			t.Errorf("fromDXGIFormat(%d) = %v, want %v", tt.dxgi, got, tt.tf)
		}
	}
	if toDXGIFormat(gputypes.TextureFormatR8Unorm) != formatUnknown {
		t.Error("unmapped format should be DXGI_FORMAT_UNKNOWN")
	}
	if fromDXGIFormat(999) != gputypes.TextureFormatUndefined {
		t.Error("unmapped DXGI format should be undefined")
	}
}

func TestInterfaceIDs(t *testing.T) {
	re := regexp.MustCompile(`^\{[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\}$`)
	seen := map[string]bool{}
	for _, iid := range []string{
		iidDXGIFactory2, iidDXGIFactory5, iidDXGISwapChain4,
		iidD3D12Device, iidD3D12CommandQueue, iidD3D12Fence,
	} {
		if !re.MatchString(iid) {
			t.Errorf("malformed IID %s", iid)
		}
		if seen[iid] {
			t.Errorf("duplicate IID %s", iid)
		}
		seen[iid] = true
	}
}

func TestNativeLayouts(t *testing.T) {
	if got := unsafe.Sizeof(swapChainDesc1{}); got != 48 {
		t.Errorf("sizeof(DXGI_SWAP_CHAIN_DESC1) = %d, want 48", got)
	}
	if got := unsafe.Sizeof(commandQueueDesc{}); got != 16 {
		t.Errorf("sizeof(D3D12_COMMAND_QUEUE_DESC) = %d, want 16", got)
	}
	if got := unsafe.Sizeof(platform.HDR10Metadata{}); got != 28 {
		t.Errorf("sizeof(DXGI_HDR_METADATA_HDR10) = %d, want 28", got)
	}
}

func TestVtableOrder(t *testing.T) {
	// IDXGISwapChain4 methods follow IDXGISwapChain3 directly.
	if vtblSetColorSpace1 != vtblCheckColorSpaceSupport+1 || vtblSetHDRMetaData != vtblSetColorSpace1+2 {
		t.Error("swap chain vtable indices out of order")
	}
	if vtblGetDeviceRemovedReason != vtblCreateFence+1 {
		t.Error("device vtable indices out of order")
	}
}
