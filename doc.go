// Package swapchain presents rendered frames to a window through a
// flip-model swap chain.
//
// A SwapChain wraps a native presentation surface obtained from a
// platform backend (see package platform). It owns the buffer ring,
// keeps the surface color space in step with the buffer format, emits
// HDR10 mastering metadata for 10-bit output, negotiates exclusive
// fullscreen and hands device-removal failures to package devicelost.
//
// # Quick Start
//
//	backend, err := platform.Open("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dev, err := backend.OpenDevice(platform.DeviceOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sc, err := swapchain.Create(dev, hwnd, swapchain.Dimensions{
//	    Width: 1280, Height: 720,
//	    Format:       swapchain.FormatRGBA8Unorm,
//	    ImageCount:   3,
//	    SyncInterval: 1,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sc.Destroy()
//
//	for running {
//	    // render into buffer sc.CurrentImageIndex()
//	    sc.Present()
//	}
//
// # Display Modes
//
// RGBA8Unorm buffers are presented in the sRGB (gamma 2.2, Rec.709)
// color space with HDR metadata cleared. RGB10A2Unorm buffers are
// presented in the HDR10 (PQ, Rec.2020) color space with mastering
// metadata derived from hdr.DefaultLuminance. Any other format is a
// programming error and panics when the display mode is configured.
//
// # Fullscreen
//
// When the platform supports tearing, the swap chain prefers borderless
// fullscreen and disables the OS Alt+Enter toggle on the window.
// Otherwise exclusive fullscreen is preferred. The exclusive state is
// observed only at Create, Resize and Destroy.
//
// # Concurrency
//
// A SwapChain is not safe for concurrent use. All methods must be called
// from the thread that drives presentation.
//
// # Logging
//
// The package is silent by default. Use SetLogger to route diagnostics
// to a slog.Logger.
package swapchain
