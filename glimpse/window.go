package glimpse

import "github.com/cogentcore/webgpu/wgpu"

type Window interface {
	// GetSize returns the size of the framebuffer in physical pixels
	GetSize() (uint32, uint32)

	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Run dispatches window events to the handler until the handler
	// asks to exit or returns an error.
	Run(handler Handler) error

	Terminate()
}
