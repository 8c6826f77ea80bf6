// Package halsync implements the device-idle barrier on top of a
// gogpu/wgpu HAL device.
//
// Backends that share a device with a wgpu-based renderer can embed an
// IdleWaiter to satisfy platform.Device.WaitForIdle.
package halsync

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// DefaultTimeout bounds a single idle wait.
const DefaultTimeout = 5 * time.Second

var (
	// ErrNoDevice is returned when the waiter has no device or queue.
	ErrNoDevice = errors.New("halsync: no HAL device")

	// ErrTimeout is returned when the GPU did not go idle in time.
	ErrTimeout = errors.New("halsync: timed out waiting for GPU idle")
)

// IdleWaiter blocks until all work submitted to a HAL queue has retired.
// It is not safe for concurrent use; callers drive it from the thread
// that owns the queue.
type IdleWaiter struct {
	device  hal.Device
	queue   hal.Queue
	timeout time.Duration
}

// New returns an IdleWaiter for device and queue.
func New(device hal.Device, queue hal.Queue) *IdleWaiter {
	return &IdleWaiter{device: device, queue: queue, timeout: DefaultTimeout}
}

// FromProvider builds an IdleWaiter from a host-supplied device provider.
// The provider must also expose its HAL objects through
// HalDevice() any and HalQueue() any.
func FromProvider(provider gpucontext.DeviceProvider) (*IdleWaiter, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("halsync: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("halsync: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("halsync: provider HalQueue is not hal.Queue")
	}
	return New(device, queue), nil
}

// SetTimeout changes the bound on a single wait. Non-positive values
// restore DefaultTimeout.
func (w *IdleWaiter) SetTimeout(d time.Duration) {
	if d <= 0 {
		d = DefaultTimeout
	}
	w.timeout = d
}

// Device returns the underlying HAL device.
func (w *IdleWaiter) Device() hal.Device { return w.device }

// WaitForIdle submits an empty batch signalling a fresh fence and waits
// for it. Everything submitted before the call has retired on return.
func (w *IdleWaiter) WaitForIdle() error {
	if w == nil || w.device == nil || w.queue == nil {
		return ErrNoDevice
	}

	fence, err := w.device.CreateFence()
	if err != nil {
		return fmt.Errorf("halsync: create fence: %w", err)
	}
	defer w.device.DestroyFence(fence)

	if err := w.queue.Submit(nil, fence, 1); err != nil {
		return fmt.Errorf("halsync: submit: %w", err)
	}

	ok, err := w.device.Wait(fence, 1, w.timeout)
	if err != nil {
		return fmt.Errorf("halsync: wait for GPU: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w after %v", ErrTimeout, w.timeout)
	}
	return nil
}
