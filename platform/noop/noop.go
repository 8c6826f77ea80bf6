// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package noop provides an in-memory platform backend.
//
// Nothing is displayed. Every platform call is recorded in order, and the
// results of capability checks, creation, resize, present and device
// removal queries are configurable, which makes the backend suitable for
// tests and for exercising the swap chain core on machines without a
// display. The device-idle barrier runs on a real gogpu/wgpu noop HAL
// device.
package noop

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	halnoop "github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/swapchain/platform"
	"github.com/gogpu/swapchain/platform/halsync"
)

func init() {
	platform.Register(platform.BackendNoop, func() platform.Backend {
		return Backend{}
	})
}

// Backend is the registry entry for the noop platform.
type Backend struct{}

// Name returns platform.BackendNoop.
func (Backend) Name() string { return platform.BackendNoop }

// Available always returns true.
func (Backend) Available() bool { return true }

// OpenDevice opens a noop device with tearing support enabled.
func (Backend) OpenDevice(opts platform.DeviceOptions) (platform.Device, error) {
	return NewDevice(Config{
		Label:            opts.Label,
		TearingSupported: true,
		CrashTracker:     opts.EnableCrashTracker,
	})
}

// Config controls the behavior of a noop Device.
type Config struct {
	// Label is recorded for diagnostics only.
	Label string

	// TearingSupported is the answer to the tearing capability check.
	TearingSupported bool

	// FeatureResult is the result code of the capability check itself.
	FeatureResult platform.Result

	// NoFactory makes Device.Factory return nil.
	NoFactory bool

	// CreateResult is returned by CreateSwapChain. A failure code
	// prevents creation.
	CreateResult platform.Result

	// UnsupportedColorSpaces are reported as not presentable.
	UnsupportedColorSpaces []platform.ColorSpace

	// CrashTracker activates a crash tracker reporting LastScope.
	CrashTracker bool
	LastScope    string

	// Provider, when set, supplies the HAL device used for the idle
	// barrier instead of a private wgpu noop device. It must expose
	// HalDevice() and HalQueue() (see halsync.FromProvider). The device
	// does not own it and Close leaves it open.
	Provider gpucontext.DeviceProvider
}

// Device is a noop platform.Device.
type Device struct {
	cfg     Config
	rec     *Recorder
	factory *Factory
	surface *Surface

	instance hal.Instance
	halDev   hal.Device
	idle     *halsync.IdleWaiter
	idleErr  error

	removedReason platform.Result
	tracker       *crashTracker
}

// NewDevice opens a noop device backed by a wgpu noop HAL device, or by
// the host device in cfg.Provider. Close must be called to release the
// HAL device.
func NewDevice(cfg Config) (*Device, error) {
	if cfg.Provider != nil {
		idle, err := halsync.FromProvider(cfg.Provider)
		if err != nil {
			return nil, fmt.Errorf("noop: %w", err)
		}
		return newDevice(cfg, idle, nil, nil), nil
	}

	api := halnoop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("noop: create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("noop: no adapters")
	}
	open, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("noop: open device: %w", err)
	}

	return newDevice(cfg, halsync.New(open.Device, open.Queue), instance, open.Device), nil
}

func newDevice(cfg Config, idle *halsync.IdleWaiter, instance hal.Instance, halDev hal.Device) *Device {
	rec := &Recorder{}
	d := &Device{
		cfg:      cfg,
		rec:      rec,
		instance: instance,
		halDev:   halDev,
		idle:     idle,
	}
	if !cfg.NoFactory {
		d.factory = &Factory{rec: rec, tearing: cfg.TearingSupported, result: cfg.FeatureResult}
	}
	if cfg.CrashTracker {
		d.tracker = &crashTracker{rec: rec, scope: cfg.LastScope}
	}
	return d
}

// Close releases the HAL device. It is safe to call more than once.
func (d *Device) Close() error {
	if d.halDev != nil {
		d.halDev.Destroy()
		d.halDev = nil
	}
	if d.instance != nil {
		d.instance.Destroy()
		d.instance = nil
	}
	return nil
}

// Recorder returns the call log shared by the device, its factory and
// its surfaces.
func (d *Device) Recorder() *Recorder { return d.rec }

// Surface returns the most recently created surface, or nil.
func (d *Device) Surface() *Surface { return d.surface }

// SetRemovedReason sets the value returned by DeviceRemovedReason.
func (d *Device) SetRemovedReason(r platform.Result) { d.removedReason = r }

// SetIdleError makes the next WaitForIdle calls fail with err.
func (d *Device) SetIdleError(err error) { d.idleErr = err }

// Factory implements platform.Device.
func (d *Device) Factory() platform.Factory {
	if d.factory == nil {
		return nil
	}
	return d.factory
}

// CreateSwapChain implements platform.Device.
func (d *Device) CreateSwapChain(window platform.Window, desc platform.SwapChainDesc) (platform.Surface, platform.Result) {
	d.rec.record(OpCreateSwapChain, desc.BufferCount, desc.Width, desc.Height, desc.Flags)
	if d.cfg.CreateResult.Failed() {
		return nil, d.cfg.CreateResult
	}
	unsupported := make(map[platform.ColorSpace]bool, len(d.cfg.UnsupportedColorSpaces))
	for _, cs := range d.cfg.UnsupportedColorSpaces {
		unsupported[cs] = true
	}
	d.surface = &Surface{
		rec:         d.rec,
		window:      window,
		desc:        desc,
		factory:     d.factory,
		colorSpace:  platform.ColorSpaceRGBFullG22NoneP709,
		unsupported: unsupported,
	}
	return d.surface, platform.ResultOK
}

// WaitForIdle implements platform.Device.
func (d *Device) WaitForIdle() error {
	d.rec.record(OpWaitForIdle)
	if d.idleErr != nil {
		return d.idleErr
	}
	return d.idle.WaitForIdle()
}

// DeviceRemovedReason implements platform.Device.
func (d *Device) DeviceRemovedReason() platform.Result {
	d.rec.record(OpDeviceRemovedReason)
	return d.removedReason
}

// CrashTracker implements platform.Device.
func (d *Device) CrashTracker() platform.CrashTracker {
	if d.tracker == nil {
		return nil
	}
	return d.tracker
}

// Factory is a noop platform.Factory.
type Factory struct {
	rec     *Recorder
	tearing bool
	result  platform.Result
	assoc   map[platform.Window]platform.WindowAssociation
}

// CheckFeatureSupport implements platform.Factory.
func (f *Factory) CheckFeatureSupport(feature platform.Feature) (bool, platform.Result) {
	f.rec.record(OpCheckFeatureSupport, feature)
	if f.result.Failed() {
		return false, f.result
	}
	if feature != platform.FeaturePresentAllowTearing {
		return false, platform.ResultOK
	}
	return f.tearing, platform.ResultOK
}

// MakeWindowAssociation implements platform.Factory.
func (f *Factory) MakeWindowAssociation(window platform.Window, flags platform.WindowAssociation) platform.Result {
	f.rec.record(OpMakeWindowAssociation, window, flags)
	if f.assoc == nil {
		f.assoc = make(map[platform.Window]platform.WindowAssociation)
	}
	f.assoc[window] = flags
	return platform.ResultOK
}

// Association returns the flags last associated with window.
func (f *Factory) Association(window platform.Window) (platform.WindowAssociation, bool) {
	flags, ok := f.assoc[window]
	return flags, ok
}

type crashTracker struct {
	rec   *Recorder
	scope string
}

func (c *crashTracker) LastExecutingScope() (string, error) {
	c.rec.record(OpLastExecutingScope)
	if c.scope == "" {
		return "", fmt.Errorf("noop: no scope recorded")
	}
	return c.scope, nil
}

var (
	_ platform.Device  = (*Device)(nil)
	_ platform.Factory = (*Factory)(nil)
	_ platform.Backend = Backend{}
)
