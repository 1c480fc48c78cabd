package pulse

import (
	"errors"

	"github.com/cogentcore/webgpu/wgpu"
)

var ErrNoSurfaceFormat = errors.New("surface does not support any texture format")

// ChooseSurfaceFormat picks the first sRGB format of the given list, as
// colors written to an sRGB surface are gamma encoded by the hardware.
// If the surface does not support any sRGB format, the first supported
// format is used.
func ChooseSurfaceFormat(formats []wgpu.TextureFormat) (wgpu.TextureFormat, error) {
	if len(formats) == 0 {
		return wgpu.TextureFormatUndefined, ErrNoSurfaceFormat
	}

	for _, format := range formats {
		if IsSRGB(format) {
			return format, nil
		}
	}

	return formats[0], nil
}

// IsSRGB returns true if the format stores its color channels sRGB encoded.
func IsSRGB(format wgpu.TextureFormat) bool {
	switch format {
	// the remaining sRGB formats are block compressed and can not be
	// rendered to, a surface never reports them
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	}

	return false
}
