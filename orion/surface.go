package orion

import "github.com/oliverbestmann/skeleton/pulse"

// Surface is the part of the screen the State renders into.
type Surface interface {
	// Configure resizes the surface. Width and height are always positive.
	Configure(width, height uint32)

	// AcquireFrame returns the next frame to render to. If no frame
	// is available, the error wraps one of the pulse.ErrSurface values.
	AcquireFrame() (Frame, error)
}

type Frame interface {
	Clear(color pulse.Color) error
	Present()
	Release()
}

// ViewSurface adapts a pulse.View to the Surface interface.
func ViewSurface(view *pulse.View) Surface {
	return viewSurface{view: view}
}

type viewSurface struct {
	view *pulse.View
}

func (s viewSurface) Configure(width, height uint32) {
	s.view.Configure(width, height)
}

func (s viewSurface) AcquireFrame() (Frame, error) {
	frame, err := s.view.AcquireFrame()
	if err != nil {
		return nil, err
	}

	return frame, nil
}
