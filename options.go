package swapchain

import (
	"github.com/gogpu/swapchain/devicelost"
	"github.com/gogpu/swapchain/platform"
)

// Option configures a SwapChain during Create.
//
// Example:
//
//	sc, err := swapchain.Create(dev, hwnd, dims,
//	    swapchain.WithMaxImageCount(2))
type Option func(*options)

// options holds optional configuration for Create.
type options struct {
	maxImageCount uint32
	factory       platform.Factory
	lossHandler   *devicelost.Handler
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		maxImageCount: MaxImageCount,
		factory:       nil, // device.Factory() if nil
		lossHandler:   nil, // devicelost.NewHandler(device) if nil
	}
}

// WithMaxImageCount lowers or raises the platform maximum used to clamp
// Dimensions.ImageCount. Values below MinImageCount are ignored.
func WithMaxImageCount(n uint32) Option {
	return func(o *options) {
		if n >= MinImageCount {
			o.maxImageCount = n
		}
	}
}

// WithFactory sets the factory used for the tearing capability check
// instead of the device's own.
func WithFactory(f platform.Factory) Option {
	return func(o *options) {
		o.factory = f
	}
}

// WithLossHandler sets the handler that receives device-removal failures
// from Present.
func WithLossHandler(h *devicelost.Handler) Option {
	return func(o *options) {
		o.lossHandler = h
	}
}
