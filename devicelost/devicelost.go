// Package devicelost classifies and reports device-removal events seen
// during presentation.
//
// Device removal is never returned as an error from here. The handler
// records what happened and how to recover; destroying and recreating the
// device belongs to whoever owns the device's lifetime.
package devicelost

import (
	"time"

	"github.com/gogpu/swapchain/platform"
)

// CrashDumpGrace is how long OnPresentFailed waits for an out-of-process
// GPU crash dump writer before reporting the last executing scope.
const CrashDumpGrace = 3 * time.Second

// Cause classifies a device removal.
type Cause int

const (
	// Unexpected covers any reason outside the known set, including a
	// reported success.
	Unexpected Cause = iota
	DeviceHung
	DeviceRemoved
	DeviceReset
	DriverInternalError
	InvalidCall
	AccessDenied
)

var causeNames = [...]string{
	Unexpected:          "Unexpected",
	DeviceHung:          "DeviceHung",
	DeviceRemoved:       "DeviceRemoved",
	DeviceReset:         "DeviceReset",
	DriverInternalError: "DriverInternalError",
	InvalidCall:         "InvalidCall",
	AccessDenied:        "AccessDenied",
}

func (c Cause) String() string {
	if c >= 0 && int(c) < len(causeNames) {
		return causeNames[c]
	}
	return "Cause(?)"
}

// Diagnostic is one device-loss report.
type Diagnostic struct {
	Cause       Cause
	Reason      platform.Result
	Description string
	Remediation string
}

type entry struct {
	cause       Cause
	description string
	remediation string
}

var table = map[platform.Result]entry{
	platform.ErrorDeviceHung: {
		DeviceHung,
		"the device failed due to badly formed commands sent by the application",
		"design-time issue: investigate and fix the command stream",
	},
	platform.ErrorDeviceRemoved: {
		DeviceRemoved,
		"the video card was physically removed or its driver was upgraded",
		"destroy and recreate the device and its swap chains",
	},
	platform.ErrorDeviceReset: {
		DeviceReset,
		"the device failed due to a badly formed command",
		"run-time issue: destroy and recreate the device",
	},
	platform.ErrorDriverInternalError: {
		DriverInternalError,
		"the driver encountered a problem and put the device into the removed state",
		"destroy and recreate the device; report the driver version if it repeats",
	},
	platform.ErrorInvalidCall: {
		InvalidCall,
		"the application provided invalid parameter data",
		"debug and fix before release",
	},
	platform.ErrorAccessDenied: {
		AccessDenied,
		"a resource was used without the required access privileges",
		"check for writes to shared resources opened read-only",
	},
}

var unexpected = entry{
	Unexpected,
	"no recognized removal reason was reported",
	"destroy and recreate the device",
}

// Classify maps a device-removal reason to a diagnostic. Unknown reasons,
// including ResultOK, classify as Unexpected.
func Classify(reason platform.Result) Diagnostic {
	e, ok := table[reason]
	if !ok {
		e = unexpected
	}
	return Diagnostic{
		Cause:       e.cause,
		Reason:      reason,
		Description: e.description,
		Remediation: e.remediation,
	}
}

// Handler reports device removal for one device.
type Handler struct {
	device platform.Device
	sleep  func(time.Duration)
}

// Option configures a Handler.
type Option func(*Handler)

// WithSleep replaces time.Sleep for the crash-dump grace delay.
func WithSleep(sleep func(time.Duration)) Option {
	return func(h *Handler) {
		if sleep != nil {
			h.sleep = sleep
		}
	}
}

// NewHandler returns a Handler that queries device for removal reasons.
func NewHandler(device platform.Device, opts ...Option) *Handler {
	h := &Handler{device: device, sleep: time.Sleep}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// OnPresentFailed inspects a failed present result. If it indicates device
// removal, the removal reason is classified and logged and the diagnostic
// is returned with true. Any other result is ignored.
//
// When a crash tracker is active the call blocks for CrashDumpGrace before
// asking the tracker for the last executing GPU scope. The wait cannot be
// cancelled.
func (h *Handler) OnPresentFailed(result platform.Result) (Diagnostic, bool) {
	if result != platform.ErrorDeviceRemoved || h == nil || h.device == nil {
		return Diagnostic{}, false
	}

	d := Classify(h.device.DeviceRemovedReason())
	slogger().Error("device removed",
		"cause", d.Cause.String(),
		"reason", d.Reason.String(),
		"description", d.Description,
		"remediation", d.Remediation)

	if tracker := h.device.CrashTracker(); tracker != nil {
		h.sleep(CrashDumpGrace)
		scope, err := tracker.LastExecutingScope()
		if err != nil {
			slogger().Warn("last executing GPU scope unavailable", "err", err)
		} else {
			slogger().Error("last executing GPU scope", "scope", scope)
		}
	}
	return d, true
}
