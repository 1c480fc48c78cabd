package pulse

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

var errNoSurfaceTexture = errors.New("surface returned no texture")

// wgpu.Texture must consist of exactly the device and the texture reference,
// see surfaceTextureIsNull.
var _ = [1]struct{}{}[unsafe.Sizeof(wgpu.Texture{})-2*unsafe.Sizeof(unsafe.Pointer(nil))]

// Frame is the surface texture that is presented next.
type Frame struct {
	view   *View
	target *wgpu.TextureView
}

// AcquireFrame gets the next texture of the surface. If the texture is not
// available, the returned error is a *SurfaceError.
//
// The binding drops the acquire status and always returns a texture. A failed
// acquire leaves a texture without a native reference, we report it as
// SurfaceErrorLost, as reconfiguring the surface recovers from both a lost
// and an outdated surface.
func (vs *View) AcquireFrame() (*Frame, error) {
	texture, err := vs.Surface.GetCurrentTexture()
	if err != nil {
		return nil, ClassifySurfaceError(err)
	}

	if surfaceTextureIsNull(texture) {
		return nil, NewSurfaceError(SurfaceErrorLost, errNoSurfaceTexture)
	}

	// the surface owns its textures, they must never be released by us
	target, err := texture.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("create view: %w", err)
	}

	return &Frame{view: vs, target: target}, nil
}

// surfaceTextureIsNull reports whether texture wraps a null texture reference.
// wgpu.Texture is laid out as {deviceRef, ref}.
func surfaceTextureIsNull(texture *wgpu.Texture) bool {
	if texture == nil {
		return true
	}

	fields := (*[2]unsafe.Pointer)(unsafe.Pointer(texture))
	return fields[1] == nil
}

// Clear fills the whole frame with the given color.
func (f *Frame) Clear(color Color) error {
	return f.view.clear.Clear(f.target, color)
}

// Present schedules the frame to be shown on the surface.
func (f *Frame) Present() {
	f.view.Surface.Present()
}

// Release releases the view of the frame. The texture itself stays
// owned by the surface.
func (f *Frame) Release() {
	if f.target != nil {
		f.target.Release()
		f.target = nil
	}
}
