package swapchain

import "github.com/gogpu/swapchain/platform"

// ProbeTearingSupport reports whether f supports tearing presentation.
// A nil factory or a failed capability query counts as unsupported.
func ProbeTearingSupport(f platform.Factory) bool {
	if f == nil {
		return false
	}
	supported, res := f.CheckFeatureSupport(platform.FeaturePresentAllowTearing)
	if res.Failed() {
		Logger().Debug("swapchain: tearing capability check failed", "result", res.String())
		return false
	}
	return supported
}
