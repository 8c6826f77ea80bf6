// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package platform

import "github.com/gogpu/gputypes"

// Factory is the object that owns adapter enumeration and swap chain
// creation on the backend. The core uses it for capability checks and for
// window association.
type Factory interface {
	// CheckFeatureSupport reports whether feature is available.
	// A failed Result means the query itself could not be answered.
	CheckFeatureSupport(feature Feature) (bool, Result)

	// MakeWindowAssociation controls which OS shortcuts the factory
	// handles for window.
	MakeWindowAssociation(window Window, flags WindowAssociation) Result
}

// Device is the rendering device a swap chain presents for.
//
// Implementations are driven from the thread that owns the device's
// submission queue. The core performs no locking of its own.
type Device interface {
	// Factory returns the factory used for capability checks.
	// It may return nil if the backend has no such object.
	Factory() Factory

	// CreateSwapChain creates a native swap chain bound to window.
	// On failure the returned Surface is nil.
	CreateSwapChain(window Window, desc SwapChainDesc) (Surface, Result)

	// WaitForIdle blocks until all work submitted to the device has
	// retired on the GPU.
	WaitForIdle() error

	// DeviceRemovedReason returns the reason the device entered the
	// removed state, or ResultOK if it has not.
	DeviceRemovedReason() Result

	// CrashTracker returns the active GPU crash-capture integration,
	// or nil if none is active.
	CrashTracker() CrashTracker
}

// Surface is a live native swap chain.
type Surface interface {
	// Present queues the current back buffer for display. syncInterval 0
	// presents immediately; n > 0 waits for n vertical blanks.
	Present(syncInterval uint32, flags PresentFlags) Result

	// ResizeBuffers recreates all buffers. No buffer may be referenced by
	// in-flight GPU work when this is called.
	ResizeBuffers(bufferCount, width, height uint32, format gputypes.TextureFormat, flags SwapChainFlags) Result

	// Desc returns the descriptor of the live swap chain.
	Desc() (SwapChainDesc, Result)

	// SetFullscreenState requests entry to or exit from exclusive
	// fullscreen. The transition completes asynchronously.
	SetFullscreenState(fullscreen bool) Result

	// FullscreenState reports whether the swap chain is currently in
	// exclusive fullscreen.
	FullscreenState() (bool, Result)

	// CheckColorSpaceSupport queries presentation support for cs.
	CheckColorSpaceSupport(cs ColorSpace) (ColorSpaceSupport, Result)

	// SetColorSpace sets the output color space.
	SetColorSpace(cs ColorSpace) Result

	// SetHDRMetadata sets or clears the HDR metadata. md is ignored
	// for HDRMetadataNone.
	SetHDRMetadata(kind HDRMetadataType, md *HDR10Metadata) Result

	// Parent returns the factory that created the swap chain.
	Parent() (Factory, Result)

	// Release frees the native object. The Surface must not be used
	// afterwards.
	Release()
}

// CrashTracker is a GPU crash-capture integration (for example a vendor
// crash dump writer running out of process).
type CrashTracker interface {
	// LastExecutingScope returns the name of the GPU-side marker scope
	// that was executing when the device was lost. The answer is a hint,
	// not a guarantee.
	LastExecutingScope() (string, error)
}

// DeviceOptions configures Backend.OpenDevice.
type DeviceOptions struct {
	// Label is a debug label applied to the device where supported.
	Label string

	// EnableCrashTracker asks the backend to activate its GPU crash
	// tracker, if it has one.
	EnableCrashTracker bool
}

// Backend opens devices on one particular graphics API.
type Backend interface {
	// Name returns the registry name of the backend.
	Name() string

	// Available reports whether the backend can run on this system.
	Available() bool

	// OpenDevice opens a device suitable for presentation. Devices that
	// hold resources implement io.Closer.
	OpenDevice(opts DeviceOptions) (Device, error)
}
