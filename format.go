package swapchain

import "github.com/gogpu/gputypes"

// Image count limits. Flip-model presentation needs at least two buffers;
// the upper bound is the device's frame count.
const (
	MinImageCount     = 2
	DefaultImageCount = 3
	MaxImageCount     = 3
)

// Format is the semantic pixel format of swap chain buffers.
type Format uint8

const (
	FormatUnknown Format = iota

	// FormatRGBA8Unorm is the standard dynamic range format.
	FormatRGBA8Unorm

	// FormatBGRA8Unorm is a valid buffer format that display mode
	// configuration does not accept.
	FormatBGRA8Unorm

	// FormatRGB10A2Unorm is the HDR10 output format.
	FormatRGB10A2Unorm

	// FormatRGBA16Float is a valid buffer format that display mode
	// configuration does not accept.
	FormatRGBA16Float
)

func (f Format) String() string {
	switch f {
	case FormatRGBA8Unorm:
		return "RGBA8Unorm"
	case FormatBGRA8Unorm:
		return "BGRA8Unorm"
	case FormatRGB10A2Unorm:
		return "RGB10A2Unorm"
	case FormatRGBA16Float:
		return "RGBA16Float"
	default:
		return "Unknown"
	}
}

// ConvertFormat converts a semantic format to the backend texture format.
func ConvertFormat(f Format) gputypes.TextureFormat {
	switch f {
	case FormatRGBA8Unorm:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatBGRA8Unorm:
		return gputypes.TextureFormatBGRA8Unorm
	case FormatRGB10A2Unorm:
		return gputypes.TextureFormatRGB10A2Unorm
	case FormatRGBA16Float:
		return gputypes.TextureFormatRGBA16Float
	default:
		return gputypes.TextureFormatUndefined
	}
}

// Dimensions describes the buffers of a swap chain.
type Dimensions struct {
	Width  uint32
	Height uint32
	Format Format

	// ImageCount is the requested number of buffers. Zero selects
	// DefaultImageCount; other values are clamped to [MinImageCount, max]
	// where max defaults to MaxImageCount.
	ImageCount uint32

	// SyncInterval is the number of vertical blanks to wait per present.
	// Zero presents immediately.
	SyncInterval uint32
}

func clampImageCount(n, max uint32) uint32 {
	if n == 0 {
		n = DefaultImageCount
	}
	if n < MinImageCount {
		return MinImageCount
	}
	if n > max {
		return max
	}
	return n
}
