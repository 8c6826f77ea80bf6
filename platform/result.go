// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package platform

import "fmt"

// Result is a raw backend result code. Values follow HRESULT conventions:
// the high bit marks failure, everything else is success.
type Result uint32

// Result codes understood by the swap chain core.
const (
	ResultOK Result = 0x00000000

	StatusOccluded Result = 0x087A0001

	ErrorFail         Result = 0x80004005
	ErrorNoInterface  Result = 0x80004002
	ErrorOutOfMemory  Result = 0x8007000E
	ErrorInvalidArg   Result = 0x80070057
	ErrorNotImplement Result = 0x80004001

	ErrorInvalidCall           Result = 0x887A0001
	ErrorNotFound              Result = 0x887A0002
	ErrorUnsupported           Result = 0x887A0004
	ErrorDeviceRemoved         Result = 0x887A0005
	ErrorDeviceHung            Result = 0x887A0006
	ErrorDeviceReset           Result = 0x887A0007
	ErrorWasStillDrawing       Result = 0x887A000A
	ErrorDriverInternalError   Result = 0x887A0020
	ErrorNotCurrentlyAvailable Result = 0x887A0022
	ErrorAccessDenied          Result = 0x887A002B
)

var resultNames = map[Result]string{
	ResultOK:                   "S_OK",
	StatusOccluded:             "DXGI_STATUS_OCCLUDED",
	ErrorFail:                  "E_FAIL",
	ErrorNoInterface:           "E_NOINTERFACE",
	ErrorOutOfMemory:           "E_OUTOFMEMORY",
	ErrorInvalidArg:            "E_INVALIDARG",
	ErrorNotImplement:          "E_NOTIMPL",
	ErrorInvalidCall:           "DXGI_ERROR_INVALID_CALL",
	ErrorNotFound:              "DXGI_ERROR_NOT_FOUND",
	ErrorUnsupported:           "DXGI_ERROR_UNSUPPORTED",
	ErrorDeviceRemoved:         "DXGI_ERROR_DEVICE_REMOVED",
	ErrorDeviceHung:            "DXGI_ERROR_DEVICE_HUNG",
	ErrorDeviceReset:           "DXGI_ERROR_DEVICE_RESET",
	ErrorWasStillDrawing:       "DXGI_ERROR_WAS_STILL_DRAWING",
	ErrorDriverInternalError:   "DXGI_ERROR_DRIVER_INTERNAL_ERROR",
	ErrorNotCurrentlyAvailable: "DXGI_ERROR_NOT_CURRENTLY_AVAILABLE",
	ErrorAccessDenied:          "DXGI_ERROR_ACCESS_DENIED",
}

// Failed reports whether r is a failure code.
func (r Result) Failed() bool { return int32(r) < 0 }

// Succeeded reports whether r is a success code. Status codes such as
// StatusOccluded count as success.
func (r Result) Succeeded() bool { return !r.Failed() }

// String returns the symbolic name of r, or its hex value if unknown.
func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("0x%08X", uint32(r))
}

// Error implements the error interface so a Result can be wrapped directly.
func (r Result) Error() string {
	return fmt.Sprintf("platform: %s (0x%08X)", r.String(), uint32(r))
}

// Err returns r as an error, or nil if r is a success code.
func (r Result) Err() error {
	if r.Succeeded() {
		return nil
	}
	return r
}
