// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package platform defines the boundary between the swap chain core and the
// device/windowing layer that actually talks to the GPU driver.
//
// The core never calls a graphics API directly. Everything it needs is
// expressed as one of four small interfaces:
//
//   - Factory: capability checks and window association
//   - Device: swap chain creation, idle barrier, removal reason
//   - Surface: the native swap chain object (present, resize, fullscreen,
//     color space, HDR metadata)
//   - CrashTracker: optional GPU crash-capture integration
//
// Result codes, color spaces, flags and the HDR10 metadata layout use the
// DXGI numeric values so a Windows backend can pass them through unchanged.
// Other backends map onto these values.
//
// Backends register themselves by name (see Register) so that tools can
// select one at runtime:
//
//	import _ "github.com/gogpu/swapchain/platform/noop"
//
//	b := platform.Get("noop")
//	dev, err := b.OpenDevice(platform.DeviceOptions{})
package platform
