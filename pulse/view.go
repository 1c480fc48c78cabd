package pulse

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// View owns the configuration of the Surface of a Context.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration

	clear *ClearCommand
}

// NewView negotiates the surface configuration. Rendering is vsync locked
// and uses the first sRGB format the surface supports. The surface is not
// configured until the first call to Configure.
func NewView(ctx *Context) (*View, error) {
	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	format, err := ChooseSurfaceFormat(caps.Formats)
	if err != nil {
		return nil, fmt.Errorf("choose surface format: %w", err)
	}

	slog.Info("Surface format chosen", slog.Any("format", format))

	view := &View{
		Context: ctx,
		clear:   NewClear(ctx),

		surfaceConfig: &wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      format,
			PresentMode: wgpu.PresentModeFifo,
			AlphaMode:   wgpu.CompositeAlphaModeAuto,
		},
	}

	return view, nil
}

// Configure (re)configures the surface with the given size. Both
// dimensions must be positive.
func (vs *View) Configure(width, height uint32) {
	slog.Debug("Configure surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height
	vs.Surface.Configure(vs.Adapter, vs.Device, vs.surfaceConfig)
}
