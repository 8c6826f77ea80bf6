// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows && (amd64 || arm64)

package dxgi

import (
	"fmt"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/gogpu/swapchain/platform"
	"github.com/gogpu/swapchain/platform/halsync"
)

var (
	modDXGI  = windows.NewLazySystemDLL("dxgi.dll")
	modD3D12 = windows.NewLazySystemDLL("d3d12.dll")

	procCreateDXGIFactory2 = modDXGI.NewProc("CreateDXGIFactory2")
	procD3D12CreateDevice  = modD3D12.NewProc("D3D12CreateDevice")
)

func init() {
	platform.Register(platform.BackendDXGI, func() platform.Backend {
		return Backend{}
	})
}

// Backend is the registry entry for DXGI.
type Backend struct{}

// Name returns platform.BackendDXGI.
func (Backend) Name() string { return platform.BackendDXGI }

// Available reports whether the DXGI and Direct3D 12 runtimes can be
// loaded.
func (Backend) Available() bool {
	return procCreateDXGIFactory2.Find() == nil && procD3D12CreateDevice.Find() == nil
}

// OpenDevice creates a DXGI factory and a Direct3D 12 device with a
// direct command queue on the default adapter. The returned device must
// be closed. Crash tracking is not available on this backend.
func (Backend) OpenDevice(opts platform.DeviceOptions) (platform.Device, error) {
	var factory uintptr
	r, _, _ := procCreateDXGIFactory2.Call(0,
		uintptr(unsafe.Pointer(guidDXGIFactory2)),
		uintptr(unsafe.Pointer(&factory)))
	if res := platform.Result(uint32(r)); res.Failed() {
		return nil, fmt.Errorf("dxgi: create factory: %w", res)
	}

	d := &Device{factory: &Factory{obj: factory}}

	r, _, _ = procD3D12CreateDevice.Call(0,
		uintptr(d3dFeatureLevel11_0),
		uintptr(unsafe.Pointer(guidD3D12Device)),
		uintptr(unsafe.Pointer(&d.device)))
	if res := platform.Result(uint32(r)); res.Failed() {
		d.Close()
		return nil, fmt.Errorf("dxgi: create device: %w", res)
	}

	if opts.Label != "" {
		if name, err := windows.UTF16PtrFromString(opts.Label); err == nil {
			comCall(d.device, vtblSetName, uintptr(unsafe.Pointer(name)))
		}
	}

	desc := commandQueueDesc{Type: commandListTypeDirect}
	if res := comCall(d.device, vtblCreateCommandQueue,
		uintptr(unsafe.Pointer(&desc)),
		uintptr(unsafe.Pointer(guidD3D12CommandQueue)),
		uintptr(unsafe.Pointer(&d.queue))); res.Failed() {
		d.Close()
		return nil, fmt.Errorf("dxgi: create command queue: %w", res)
	}

	if res := comCall(d.device, vtblCreateFence, 0, 0,
		uintptr(unsafe.Pointer(guidD3D12Fence)),
		uintptr(unsafe.Pointer(&d.fence))); res.Failed() {
		d.Close()
		return nil, fmt.Errorf("dxgi: create fence: %w", res)
	}
	return d, nil
}

// Device is a Direct3D 12 device with one direct command queue.
type Device struct {
	factory *Factory
	device  uintptr
	queue   uintptr

	mu         sync.Mutex
	fence      uintptr
	fenceValue uint64
}

// Close releases the COM objects owned by the device.
func (d *Device) Close() error {
	comRelease(d.fence)
	comRelease(d.queue)
	comRelease(d.device)
	d.factory.release()
	d.fence, d.queue, d.device = 0, 0, 0
	return nil
}

// Factory implements platform.Device.
func (d *Device) Factory() platform.Factory { return d.factory }

// CreateSwapChain implements platform.Device. The swap chain is created
// on the device's command queue.
func (d *Device) CreateSwapChain(window platform.Window, desc platform.SwapChainDesc) (platform.Surface, platform.Result) {
	native := swapChainDesc1{
		Width:         desc.Width,
		Height:        desc.Height,
		Format:        toDXGIFormat(desc.Format),
		SampleCount:   desc.SampleCount,
		SampleQuality: desc.SampleQuality,
		BufferUsage:   uint32(desc.BufferUsage),
		BufferCount:   desc.BufferCount,
		Scaling:       uint32(desc.Scaling),
		SwapEffect:    uint32(desc.SwapEffect),
		Flags:         uint32(desc.Flags),
	}
	var sc1 uintptr
	res := comCall(d.factory.obj, vtblCreateSwapChainForHwnd,
		d.queue,
		uintptr(window),
		uintptr(unsafe.Pointer(&native)),
		0, 0,
		uintptr(unsafe.Pointer(&sc1)))
	if res.Failed() {
		return nil, res
	}
	defer comRelease(sc1)

	sc4, res := comQuery(sc1, guidDXGISwapChain4)
	if res.Failed() {
		return nil, res
	}
	return &Surface{obj: sc4}, platform.ResultOK
}

// WaitForIdle signals the queue and blocks until the GPU reaches the
// signal, or halsync.DefaultTimeout passes.
func (d *Device) WaitForIdle() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.queue == 0 || d.fence == 0 {
		return halsync.ErrNoDevice
	}

	d.fenceValue++
	value := d.fenceValue
	if res := comCall(d.queue, vtblQueueSignal, d.fence, uintptr(value)); res.Failed() {
		return fmt.Errorf("dxgi: signal: %w", res)
	}
	if uint64(comCallRaw(d.fence, vtblGetCompletedValue)) >= value {
		return nil
	}

	event, err := windows.CreateEvent(nil, 0, 0, nil)
	if err != nil {
		return fmt.Errorf("dxgi: create event: %w", err)
	}
	defer windows.CloseHandle(event)

	if res := comCall(d.fence, vtblSetEventOnCompletion, uintptr(value), uintptr(event)); res.Failed() {
		return fmt.Errorf("dxgi: set event on completion: %w", res)
	}
	ret, err := windows.WaitForSingleObject(event, uint32(halsync.DefaultTimeout/time.Millisecond))
	if err != nil {
		return fmt.Errorf("dxgi: wait: %w", err)
	}
	if ret != windows.WAIT_OBJECT_0 {
		return halsync.ErrTimeout
	}
	return nil
}

// DeviceRemovedReason implements platform.Device.
func (d *Device) DeviceRemovedReason() platform.Result {
	if d.device == 0 {
		return platform.ErrorInvalidCall
	}
	return comCall(d.device, vtblGetDeviceRemovedReason)
}

// CrashTracker implements platform.Device. DXGI devices have none.
func (d *Device) CrashTracker() platform.CrashTracker { return nil }

// Factory wraps an IDXGIFactory2.
type Factory struct {
	obj uintptr
}

func (f *Factory) release() {
	if f != nil {
		comRelease(f.obj)
		f.obj = 0
	}
}

// CheckFeatureSupport implements platform.Factory. It needs
// IDXGIFactory5; older factories report E_NOINTERFACE.
func (f *Factory) CheckFeatureSupport(feature platform.Feature) (bool, platform.Result) {
	f5, res := comQuery(f.obj, guidDXGIFactory5)
	if res.Failed() {
		return false, res
	}
	defer comRelease(f5)

	var supported int32
	res = comCall(f5, vtblCheckFeatureSupport,
		uintptr(feature),
		uintptr(unsafe.Pointer(&supported)),
		unsafe.Sizeof(supported))
	return supported != 0, res
}

// MakeWindowAssociation implements platform.Factory.
func (f *Factory) MakeWindowAssociation(window platform.Window, flags platform.WindowAssociation) platform.Result {
	return comCall(f.obj, vtblMakeWindowAssociation, uintptr(window), uintptr(flags))
}

var (
	_ platform.Device  = (*Device)(nil)
	_ platform.Factory = (*Factory)(nil)
	_ platform.Backend = Backend{}
)
