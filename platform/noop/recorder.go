// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package noop

import (
	"fmt"
	"strings"
)

// Op names a recorded platform call.
type Op string

// Recorded operations.
const (
	OpCheckFeatureSupport   Op = "CheckFeatureSupport"
	OpMakeWindowAssociation Op = "MakeWindowAssociation"
	OpCreateSwapChain       Op = "CreateSwapChain"
	OpWaitForIdle           Op = "WaitForIdle"
	OpDeviceRemovedReason   Op = "DeviceRemovedReason"
	OpLastExecutingScope    Op = "LastExecutingScope"
	OpPresent               Op = "Present"
	OpResizeBuffers         Op = "ResizeBuffers"
	OpDesc                  Op = "Desc"
	OpSetFullscreenState    Op = "SetFullscreenState"
	OpFullscreenState       Op = "FullscreenState"
	OpCheckColorSpace       Op = "CheckColorSpaceSupport"
	OpSetColorSpace         Op = "SetColorSpace"
	OpSetHDRMetadata        Op = "SetHDRMetadata"
	OpParent                Op = "Parent"
	OpRelease               Op = "Release"
)

// Call is one recorded platform call.
type Call struct {
	Op   Op
	Args []any
}

// String formats the call as Op(arg, arg).
func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return string(c.Op) + "(" + strings.Join(args, ", ") + ")"
}

// Recorder is an ordered log of platform calls.
type Recorder struct {
	calls []Call
}

func (r *Recorder) record(op Op, args ...any) {
	r.calls = append(r.calls, Call{Op: op, Args: args})
}

// Calls returns a copy of the log.
func (r *Recorder) Calls() []Call {
	return append([]Call(nil), r.calls...)
}

// Ops returns the operation names in call order.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.calls))
	for i, c := range r.calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many times op was called.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Index returns the position of the first call to op at or after from,
// or -1.
func (r *Recorder) Index(op Op, from int) int {
	for i := from; i < len(r.calls); i++ {
		if r.calls[i].Op == op {
			return i
		}
	}
	return -1
}

// Reset clears the log.
func (r *Recorder) Reset() { r.calls = r.calls[:0] }
