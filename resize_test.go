package swapchain

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	halnoop "github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/swapchain/platform"
	"github.com/gogpu/swapchain/platform/noop"
)

func TestResizeWaitsForIdleFirst(t *testing.T) {
	dev := newDevice(t, noop.Config{})
	sc := mustCreate(t, dev, sdrDims())
	rec := dev.Recorder()
	rec.Reset()

	dims := sdrDims()
	dims.Width, dims.Height = 1920, 1080
	if err := sc.Resize(dims); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}

	idle := rec.Index(noop.OpWaitForIdle, 0)
	resize := rec.Index(noop.OpResizeBuffers, 0)
	if idle != 0 {
		t.Errorf("WaitForIdle at %d, want first call; ops = %v", idle, rec.Ops())
	}
	if resize < 0 || resize < idle {
		t.Errorf("ResizeBuffers at %d, WaitForIdle at %d; ops = %v", resize, idle, rec.Ops())
	}

	desc, _ := dev.Surface().Desc()
	if desc.Width != 1920 || desc.Height != 1080 {
		t.Errorf("surface size = %dx%d, want 1920x1080", desc.Width, desc.Height)
	}
	if got := sc.Dimensions(); got.Width != 1920 || got.Height != 1080 {
		t.Errorf("Dimensions() = %+v", got)
	}
}

func TestResizeUsesLiveFormatAndFlags(t *testing.T) {
	dev := newDevice(t, noop.Config{TearingSupported: true})
	sc := mustCreate(t, dev, sdrDims())
	rec := dev.Recorder()
	rec.Reset()

	dims := sdrDims()
	dims.ImageCount = 2
	if err := sc.Resize(dims); err != nil {
		t.Fatal(err)
	}
	calls := rec.Calls()
	i := rec.Index(noop.OpResizeBuffers, 0)
	if i < 0 {
		t.Fatal("ResizeBuffers not called")
	}
	args := calls[i].Args
	if args[0] != uint32(2) {
		t.Errorf("buffer count = %v, want 2", args[0])
	}
	if args[3] != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("format = %v, want live RGBA8Unorm", args[3])
	}
	if args[4] != platform.FlagAllowModeSwitch|platform.FlagAllowTearing {
		t.Errorf("flags = %v, want live creation flags", args[4])
	}
	if sc.ImageCount() != 2 {
		t.Errorf("ImageCount() = %d, want 2", sc.ImageCount())
	}
}

func TestResizeResetsIndex(t *testing.T) {
	dev := newDevice(t, noop.Config{})
	sc := mustCreate(t, dev, sdrDims())
	sc.Present()
	sc.Present()

	dims := sdrDims()
	dims.ImageCount = 2
	if err := sc.Resize(dims); err != nil {
		t.Fatal(err)
	}
	if sc.CurrentImageIndex() != 0 {
		t.Errorf("index after resize = %d, want 0", sc.CurrentImageIndex())
	}
	for i, want := range []uint32{1, 0, 1} {
		if got := sc.Present(); got != want {
			t.Errorf("Present #%d = %d, want %d", i+1, got, want)
		}
	}
}

func TestResizeFailureLeavesStateUnchanged(t *testing.T) {
	captureLogs(t)
	dev := newDevice(t, noop.Config{})
	sc := mustCreate(t, dev, sdrDims())
	sc.Present()
	before := sc.Dimensions()
	dev.Surface().SetResizeResult(platform.ErrorInvalidCall)

	dims := sdrDims()
	dims.Width, dims.Height, dims.ImageCount = 640, 480, 2
	err := sc.Resize(dims)
	if !errors.Is(err, ErrResize) {
		t.Fatalf("Resize() error = %v, want ErrResize", err)
	}
	var re *ResizeError
	if !errors.As(err, &re) || re.Code != platform.ErrorInvalidCall {
		t.Errorf("ResizeError = %v, want INVALID_CALL", err)
	}
	if sc.Dimensions() != before {
		t.Errorf("Dimensions() = %+v, want %+v", sc.Dimensions(), before)
	}
	if sc.ImageCount() != 3 || sc.CurrentImageIndex() != 1 {
		t.Errorf("count/index = %d/%d, want 3/1", sc.ImageCount(), sc.CurrentImageIndex())
	}
	if !sc.IsLive() {
		t.Error("failed resize must keep the surface")
	}
}

func TestResizeIdleFailure(t *testing.T) {
	captureLogs(t)
	dev := newDevice(t, noop.Config{})
	sc := mustCreate(t, dev, sdrDims())
	idleErr := errors.New("fence lost")
	dev.SetIdleError(idleErr)
	dev.Recorder().Reset()

	err := sc.Resize(sdrDims())
	if !errors.Is(err, ErrResize) || !errors.Is(err, idleErr) {
		t.Fatalf("Resize() error = %v, want ErrResize wrapping idle error", err)
	}
	if n := dev.Recorder().Count(noop.OpResizeBuffers); n != 0 {
		t.Errorf("ResizeBuffers called %d times after idle failure", n)
	}
}

func TestResizeNotLive(t *testing.T) {
	var zero SwapChain
	if err := zero.Resize(sdrDims()); !errors.Is(err, ErrNotLive) {
		t.Errorf("Resize() on zero value = %v, want ErrNotLive", err)
	}
}

func TestResizeSwitchesDisplayMode(t *testing.T) {
	dev := newDevice(t, noop.Config{})
	sc := mustCreate(t, dev, sdrDims())

	dims := sdrDims()
	dims.Format = FormatRGB10A2Unorm
	if err := sc.Resize(dims); err != nil {
		t.Fatal(err)
	}
	if sc.ColorSpace() != platform.ColorSpaceRGBFullG2084NoneP2020 {
		t.Errorf("ColorSpace() = %v, want HDR10", sc.ColorSpace())
	}
	kind, _ := dev.Surface().HDRMetadata()
	if kind != platform.HDRMetadataHDR10 {
		t.Errorf("metadata kind = %v, want HDR10", kind)
	}
}

type hostProvider struct {
	device hal.Device
	queue  hal.Queue
}

func (hostProvider) Device() gpucontext.Device   { return nil }
func (hostProvider) Queue() gpucontext.Queue     { return nil }
func (hostProvider) Adapter() gpucontext.Adapter { return nil }
func (hostProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}
func (p hostProvider) HalDevice() any { return p.device }
func (p hostProvider) HalQueue() any  { return p.queue }

func TestResizeWithHostDevice(t *testing.T) {
	instance, err := halnoop.API{}.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance() error = %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	open, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		open.Device.Destroy()
		instance.Destroy()
	})

	dev := newDevice(t, noop.Config{Provider: hostProvider{device: open.Device, queue: open.Queue}})
	sc := mustCreate(t, dev, sdrDims())
	rec := dev.Recorder()
	rec.Reset()

	dims := sdrDims()
	dims.Width, dims.Height = 800, 600
	if err := sc.Resize(dims); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if rec.Index(noop.OpWaitForIdle, 0) != 0 {
		t.Errorf("ops = %v, want WaitForIdle first", rec.Ops())
	}
	if got := sc.Dimensions(); got.Width != 800 || got.Height != 600 {
		t.Errorf("Dimensions() = %+v", got)
	}
}
