package orion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/skeleton/glimpse"
	"github.com/oliverbestmann/skeleton/pulse"
)

var ErrEmptySurface = errors.New("surface must have a positive width and height")

// State holds everything needed to draw a frame: the surface and its
// current size, the color to clear the surface to and the input state
// of the window.
type State struct {
	surface Surface

	width, height uint32

	clearColor pulse.Color

	input glimpse.InputState
}

// NewState configures the surface with the given initial size.
func NewState(surface Surface, width, height uint32, clearColor pulse.Color) (*State, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("initial size %dx%d: %w", width, height, ErrEmptySurface)
	}

	st := &State{
		surface:    surface,
		width:      width,
		height:     height,
		clearColor: clearColor,
	}

	surface.Configure(width, height)

	return st, nil
}

// Size returns the size the surface is currently configured with.
func (s *State) Size() (uint32, uint32) {
	return s.width, s.height
}

func (s *State) InputState() *glimpse.InputState {
	return &s.input
}

// Resize reconfigures the surface. A size with a zero dimension is
// silently ignored, e.g. when the window gets minimized.
func (s *State) Resize(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}

	s.width = width
	s.height = height
	s.surface.Configure(width, height)
}

// Input records the event into the input state. It reports whether
// the event was fully consumed, which currently never happens.
func (s *State) Input(event glimpse.Event) bool {
	if s.input.Record(event) {
		slog.Debug("Input recorded", slog.Any("event", event))
	}

	return false
}

// Update advances the input state to the next tick.
func (s *State) Update() {
	s.input.NextTick()
}

// Render clears the next frame to the clear color and presents it.
func (s *State) Render() error {
	frame, err := s.surface.AcquireFrame()
	if err != nil {
		return err
	}

	defer frame.Release()

	if err := frame.Clear(s.clearColor); err != nil {
		return fmt.Errorf("clear frame: %w", err)
	}

	frame.Present()

	return nil
}
