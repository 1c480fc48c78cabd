package pulse

import (
	"errors"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

//go:generate go tool stringer -type=SurfaceErrorKind -trimprefix=SurfaceError

// SurfaceErrorKind classifies why the next frame could not be acquired.
type SurfaceErrorKind uint8

const (
	SurfaceErrorOther SurfaceErrorKind = iota
	SurfaceErrorTimeout
	SurfaceErrorOutdated
	SurfaceErrorLost
	SurfaceErrorOutOfMemory
)

var (
	ErrSurfaceOther       = errors.New("surface error")
	ErrSurfaceTimeout     = errors.New("surface timeout")
	ErrSurfaceOutdated    = errors.New("surface outdated")
	ErrSurfaceLost        = errors.New("surface lost")
	ErrSurfaceOutOfMemory = errors.New("surface out of memory")
)

func (k SurfaceErrorKind) sentinel() error {
	switch k {
	case SurfaceErrorTimeout:
		return ErrSurfaceTimeout
	case SurfaceErrorOutdated:
		return ErrSurfaceOutdated
	case SurfaceErrorLost:
		return ErrSurfaceLost
	case SurfaceErrorOutOfMemory:
		return ErrSurfaceOutOfMemory
	default:
		return ErrSurfaceOther
	}
}

// SurfaceError is returned if a frame could not be acquired from the surface.
// Use errors.Is with one of the ErrSurface values to check for a specific kind.
type SurfaceError struct {
	Kind SurfaceErrorKind

	// the error as reported by webgpu, might be nil
	Err error
}

func NewSurfaceError(kind SurfaceErrorKind, err error) *SurfaceError {
	return &SurfaceError{Kind: kind, Err: err}
}

func (e *SurfaceError) Error() string {
	if e.Err == nil {
		return e.Kind.sentinel().Error()
	}

	return e.Kind.sentinel().Error() + ": " + e.Err.Error()
}

func (e *SurfaceError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}

// surfaceStatusKinds maps the acquire statuses of webgpu to a SurfaceErrorKind.
// DeviceLost must be checked before Lost as its name contains the other.
var surfaceStatusKinds = []struct {
	status wgpu.SurfaceGetCurrentTextureStatus
	kind   SurfaceErrorKind
}{
	// reconfiguring the surface does not bring back the device
	{wgpu.SurfaceGetCurrentTextureStatusDeviceLost, SurfaceErrorOther},
	{wgpu.SurfaceGetCurrentTextureStatusOutOfMemory, SurfaceErrorOutOfMemory},
	{wgpu.SurfaceGetCurrentTextureStatusLost, SurfaceErrorLost},
	{wgpu.SurfaceGetCurrentTextureStatusOutdated, SurfaceErrorOutdated},
	{wgpu.SurfaceGetCurrentTextureStatusTimeout, SurfaceErrorTimeout},
}

// SurfaceErrorKindOf returns the kind of error for an acquire status.
// Success maps to SurfaceErrorOther as it is not an error at all.
func SurfaceErrorKindOf(status wgpu.SurfaceGetCurrentTextureStatus) SurfaceErrorKind {
	for _, entry := range surfaceStatusKinds {
		if entry.status == status {
			return entry.kind
		}
	}

	return SurfaceErrorOther
}

var statusNameReplacer = strings.NewReplacer(" ", "", "_", "", "-", "")

func normalizeStatusName(value string) string {
	return statusNameReplacer.Replace(strings.ToLower(value))
}

// ClassifySurfaceError maps an error reported while acquiring the current surface
// texture to a SurfaceError. The device error callback only carries a message, so
// the message is searched for the name of one of the acquire statuses,
// e.g. "out-of-memory" or "device-lost".
func ClassifySurfaceError(err error) *SurfaceError {
	var surfaceErr *SurfaceError
	if errors.As(err, &surfaceErr) {
		return surfaceErr
	}

	message := normalizeStatusName(err.Error())

	for _, entry := range surfaceStatusKinds {
		if strings.Contains(message, normalizeStatusName(entry.status.String())) {
			return NewSurfaceError(entry.kind, err)
		}
	}

	return NewSurfaceError(SurfaceErrorOther, err)
}
