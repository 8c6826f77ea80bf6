package devicelost

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/swapchain/platform"
	"github.com/gogpu/swapchain/platform/noop"
)

func newDevice(t *testing.T, cfg noop.Config) *noop.Device {
	t.Helper()
	d, err := noop.NewDevice(cfg)
	if err != nil {
		t.Fatalf("noop.NewDevice() error = %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestClassify(t *testing.T) {
	tests := []struct {
		reason platform.Result
		want   Cause
	}{
		{platform.ErrorDeviceHung, DeviceHung},
		{platform.ErrorDeviceRemoved, DeviceRemoved},
		{platform.ErrorDeviceReset, DeviceReset},
		{platform.ErrorDriverInternalError, DriverInternalError},
		{platform.ErrorInvalidCall, InvalidCall},
		{platform.ErrorAccessDenied, AccessDenied},
		{platform.ResultOK, Unexpected},
		{platform.ErrorFail, Unexpected},
		{platform.Result(0xDEADBEEF), Unexpected},
	}
	for _, tt := range tests {
		t.Run(tt.reason.String(), func(t *testing.T) {
			d := Classify(tt.reason)
			if d.Cause != tt.want {
				t.Errorf("Classify(%v).Cause = %v, want %v", tt.reason, d.Cause, tt.want)
			}
			if d.Reason != tt.reason {
				t.Errorf("Reason = %v, want %v", d.Reason, tt.reason)
			}
			if d.Description == "" || d.Remediation == "" {
				t.Error("diagnostic text must not be empty")
			}
		})
	}
}

func TestCauseString(t *testing.T) {
	if DeviceReset.String() != "DeviceReset" {
		t.Errorf("String() = %q", DeviceReset.String())
	}
	if Cause(99).String() != "Cause(?)" {
		t.Errorf("out of range String() = %q", Cause(99).String())
	}
}

func TestOnPresentFailedIgnoresOtherResults(t *testing.T) {
	dev := newDevice(t, noop.Config{})
	h := NewHandler(dev)
	for _, r := range []platform.Result{platform.ResultOK, platform.ErrorDeviceReset, platform.StatusOccluded} {
		if _, ok := h.OnPresentFailed(r); ok {
			t.Errorf("OnPresentFailed(%v) handled, want ignored", r)
		}
	}
	if n := dev.Recorder().Count(noop.OpDeviceRemovedReason); n != 0 {
		t.Errorf("removal reason queried %d times, want 0", n)
	}
}

func TestOnPresentFailedClassifies(t *testing.T) {
	buf := captureLogs(t)
	dev := newDevice(t, noop.Config{})
	dev.SetRemovedReason(platform.ErrorDeviceHung)

	slept := false
	h := NewHandler(dev, WithSleep(func(time.Duration) { slept = true }))
	d, ok := h.OnPresentFailed(platform.ErrorDeviceRemoved)
	if !ok {
		t.Fatal("OnPresentFailed(DEVICE_REMOVED) not handled")
	}
	if d.Cause != DeviceHung {
		t.Errorf("Cause = %v, want DeviceHung", d.Cause)
	}
	if slept {
		t.Error("slept without an active crash tracker")
	}
	if !strings.Contains(buf.String(), "DeviceHung") {
		t.Errorf("log missing cause: %s", buf.String())
	}
}

func TestOnPresentFailedUnknownReason(t *testing.T) {
	dev := newDevice(t, noop.Config{})
	dev.SetRemovedReason(platform.Result(0x887A00EE))
	d, ok := NewHandler(dev).OnPresentFailed(platform.ErrorDeviceRemoved)
	if !ok || d.Cause != Unexpected {
		t.Errorf("OnPresentFailed = %v, %v; want Unexpected, true", d.Cause, ok)
	}
}

func TestOnPresentFailedCrashTracker(t *testing.T) {
	buf := captureLogs(t)
	dev := newDevice(t, noop.Config{CrashTracker: true, LastScope: "ShadowPass"})
	dev.SetRemovedReason(platform.ErrorDeviceRemoved)

	var slept time.Duration
	h := NewHandler(dev, WithSleep(func(d time.Duration) { slept += d }))
	if _, ok := h.OnPresentFailed(platform.ErrorDeviceRemoved); !ok {
		t.Fatal("not handled")
	}
	if slept != CrashDumpGrace {
		t.Errorf("slept %v, want %v", slept, CrashDumpGrace)
	}

	ops := dev.Recorder().Ops()
	if len(ops) != 2 || ops[0] != noop.OpDeviceRemovedReason || ops[1] != noop.OpLastExecutingScope {
		t.Errorf("ops = %v", ops)
	}
	if !strings.Contains(buf.String(), "ShadowPass") {
		t.Errorf("log missing last scope: %s", buf.String())
	}
}

func TestOnPresentFailedTrackerError(t *testing.T) {
	dev := newDevice(t, noop.Config{CrashTracker: true})
	h := NewHandler(dev, WithSleep(func(time.Duration) {}))
	d, ok := h.OnPresentFailed(platform.ErrorDeviceRemoved)
	if !ok || d.Cause != Unexpected {
		t.Errorf("OnPresentFailed = %v, %v", d.Cause, ok)
	}
}

func TestNilHandler(t *testing.T) {
	var h *Handler
	if _, ok := h.OnPresentFailed(platform.ErrorDeviceRemoved); ok {
		t.Error("nil handler reported handled")
	}
}
