// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows && (amd64 || arm64)

package dxgi

import (
	"fmt"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"

	"github.com/gogpu/swapchain/platform"
)

// comCall invokes the COM method at vtableIdx on obj, a pointer to an
// interface (pointer to pointer to vtable), and returns its HRESULT.
func comCall(obj uintptr, vtableIdx int, args ...uintptr) platform.Result {
	return platform.Result(uint32(comCallRaw(obj, vtableIdx, args...)))
}

// comCallRaw is comCall for methods that do not return an HRESULT.
func comCallRaw(obj uintptr, vtableIdx int, args ...uintptr) uintptr {
	vtablePtr := *(*uintptr)(unsafe.Pointer(obj))
	fnPtr := *(*uintptr)(unsafe.Pointer(vtablePtr + uintptr(vtableIdx)*unsafe.Sizeof(uintptr(0))))
	allArgs := make([]uintptr, 0, 1+len(args))
	allArgs = append(allArgs, obj)
	allArgs = append(allArgs, args...)
	ret, _, _ := syscall.SyscallN(fnPtr, allArgs...)
	return ret
}

// comRelease calls IUnknown::Release.
func comRelease(obj uintptr) {
	if obj != 0 {
		vtablePtr := *(*uintptr)(unsafe.Pointer(obj))
		fnPtr := *(*uintptr)(unsafe.Pointer(vtablePtr + 2*unsafe.Sizeof(uintptr(0))))
		syscall.SyscallN(fnPtr, obj)
	}
}

// comQuery calls IUnknown::QueryInterface for iid.
func comQuery(obj uintptr, iid *ole.GUID) (uintptr, platform.Result) {
	var out uintptr
	res := comCall(obj, vtblQueryInterface, uintptr(unsafe.Pointer(iid)), uintptr(unsafe.Pointer(&out)))
	return out, res
}

// mustGUID parses an interface identifier from the tables in dxgi.go.
func mustGUID(s string) *ole.GUID {
	g := ole.NewGUID(s)
	if g == nil {
		panic(fmt.Sprintf("dxgi: bad GUID %s", s))
	}
	return g
}

var (
	guidDXGIFactory2      = mustGUID(iidDXGIFactory2)
	guidDXGIFactory5      = mustGUID(iidDXGIFactory5)
	guidDXGISwapChain4    = mustGUID(iidDXGISwapChain4)
	guidD3D12Device       = mustGUID(iidD3D12Device)
	guidD3D12CommandQueue = mustGUID(iidD3D12CommandQueue)
	guidD3D12Fence        = mustGUID(iidD3D12Fence)
)

func boolArg(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}
