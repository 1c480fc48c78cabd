package orion

import (
	"github.com/oliverbestmann/skeleton/pulse"
)

type size struct {
	Width, Height uint32
}

type fakeSurface struct {
	configured []size

	// errors returned by the next calls to AcquireFrame
	errs []error

	frames []*fakeFrame

	// every call, successful or not
	acquired int
}

func (f *fakeSurface) Configure(width, height uint32) {
	f.configured = append(f.configured, size{width, height})
}

func (f *fakeSurface) AcquireFrame() (Frame, error) {
	f.acquired++

	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return nil, err
	}

	frame := &fakeFrame{}
	f.frames = append(f.frames, frame)
	return frame, nil
}

func (f *fakeSurface) presented() int {
	var count int
	for _, frame := range f.frames {
		count += frame.presented
	}

	return count
}

type fakeFrame struct {
	cleared   []pulse.Color
	presented int
	released  int
	clearErr  error
}

func (f *fakeFrame) Clear(color pulse.Color) error {
	f.cleared = append(f.cleared, color)
	return f.clearErr
}

func (f *fakeFrame) Present() {
	f.presented++
}

func (f *fakeFrame) Release() {
	f.released++
}
