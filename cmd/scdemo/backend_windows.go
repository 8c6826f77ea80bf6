//go:build windows && (amd64 || arm64)

package main

import _ "github.com/gogpu/swapchain/platform/dxgi"
