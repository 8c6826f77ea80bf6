package swapchain

import (
	"errors"
	"fmt"

	"github.com/gogpu/swapchain/platform"
)

// Package errors.
var (
	// ErrNilDevice is returned when Create is called without a device.
	ErrNilDevice = errors.New("swapchain: nil device")

	// ErrNilWindow is returned when Create is called without a window.
	ErrNilWindow = errors.New("swapchain: nil window")

	// ErrNotLive is returned by operations that need a native surface
	// after Destroy or before a successful Create.
	ErrNotLive = errors.New("swapchain: no live surface")

	// ErrCreation matches every *CreationError.
	ErrCreation = errors.New("swapchain: creation failed")

	// ErrResize matches every *ResizeError.
	ErrResize = errors.New("swapchain: resize failed")
)

// CreationError reports a failed Create. Code is the backend result.
type CreationError struct {
	Code platform.Result
}

func (e *CreationError) Error() string {
	return "swapchain: creation failed: " + e.Code.String()
}

// Is reports whether target is ErrCreation.
func (e *CreationError) Is(target error) bool { return target == ErrCreation }

// Unwrap returns the backend result as an error.
func (e *CreationError) Unwrap() error { return e.Code }

// ResizeError reports a failed Resize. Code is the backend result; Err is
// set when the failure came from the device idle barrier instead.
type ResizeError struct {
	Code platform.Result
	Err  error
}

func (e *ResizeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("swapchain: resize failed: %v", e.Err)
	}
	return "swapchain: resize failed: " + e.Code.String()
}

// Is reports whether target is ErrResize.
func (e *ResizeError) Is(target error) bool { return target == ErrResize }

// Unwrap returns the idle barrier error, or the backend result.
func (e *ResizeError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Code
}
