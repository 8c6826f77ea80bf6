package halsync

import (
	"errors"
	"testing"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice creates a noop device and queue for testing.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		openDev.Device.Destroy()
		instance.Destroy()
	})
	return openDev.Device, openDev.Queue
}

func TestWaitForIdle(t *testing.T) {
	device, queue := createNoopDevice(t)
	w := New(device, queue)
	if err := w.WaitForIdle(); err != nil {
		t.Fatalf("WaitForIdle() error = %v", err)
	}
	// A second barrier must also succeed; fences are not reused.
	if err := w.WaitForIdle(); err != nil {
		t.Fatalf("second WaitForIdle() error = %v", err)
	}
}

func TestWaitForIdleNoDevice(t *testing.T) {
	var w *IdleWaiter
	if err := w.WaitForIdle(); !errors.Is(err, ErrNoDevice) {
		t.Errorf("nil waiter err = %v, want ErrNoDevice", err)
	}
	if err := New(nil, nil).WaitForIdle(); !errors.Is(err, ErrNoDevice) {
		t.Errorf("empty waiter err = %v, want ErrNoDevice", err)
	}
}

func TestSetTimeout(t *testing.T) {
	w := New(nil, nil)
	w.SetTimeout(time.Second)
	if w.timeout != time.Second {
		t.Errorf("timeout = %v, want 1s", w.timeout)
	}
	w.SetTimeout(0)
	if w.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want default", w.timeout)
	}
}

type plainProvider struct{}

func (plainProvider) Device() gpucontext.Device   { return nil }
func (plainProvider) Queue() gpucontext.Queue     { return nil }
func (plainProvider) Adapter() gpucontext.Adapter { return nil }
func (plainProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

type halProvider struct {
	plainProvider
	device hal.Device
	queue  hal.Queue
}

func (p halProvider) HalDevice() any { return p.device }
func (p halProvider) HalQueue() any  { return p.queue }

func TestFromProvider(t *testing.T) {
	if _, err := FromProvider(plainProvider{}); err == nil {
		t.Error("FromProvider(plain) = nil error, want failure")
	}

	device, queue := createNoopDevice(t)
	w, err := FromProvider(halProvider{device: device, queue: queue})
	if err != nil {
		t.Fatalf("FromProvider() error = %v", err)
	}
	if w.Device() != device {
		t.Error("device not stored correctly")
	}
	if err := w.WaitForIdle(); err != nil {
		t.Errorf("WaitForIdle() error = %v", err)
	}
}
