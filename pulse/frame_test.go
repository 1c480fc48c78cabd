package pulse

import (
	"testing"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestSurfaceTextureIsNull(t *testing.T) {
	if !surfaceTextureIsNull(nil) {
		t.Fatal("nil texture must be null")
	}

	// the binding wraps a failed acquire like this
	if !surfaceTextureIsNull(new(wgpu.Texture)) {
		t.Fatal("texture without a reference must be null")
	}

	var native int
	var texture wgpu.Texture
	(*[2]unsafe.Pointer)(unsafe.Pointer(&texture))[1] = unsafe.Pointer(&native)

	if surfaceTextureIsNull(&texture) {
		t.Fatal("texture with a reference must not be null")
	}
}
