package orion

import (
	"errors"
	"testing"

	"github.com/oliverbestmann/skeleton/glimpse"
	"github.com/oliverbestmann/skeleton/pulse"
)

func newTestState(t *testing.T) (*State, *fakeSurface) {
	t.Helper()

	surface := &fakeSurface{}

	state, err := NewState(surface, 800, 600, pulse.ColorWhite)
	if err != nil {
		t.Fatalf("create state: %s", err)
	}

	return state, surface
}

func TestNewStateConfiguresSurface(t *testing.T) {
	_, surface := newTestState(t)

	if len(surface.configured) != 1 || surface.configured[0] != (size{800, 600}) {
		t.Fatalf("expected a single configure with 800x600, got %v", surface.configured)
	}
}

func TestNewStateRejectsEmptySize(t *testing.T) {
	surface := &fakeSurface{}

	_, err := NewState(surface, 0, 600, pulse.ColorWhite)
	if !errors.Is(err, ErrEmptySurface) {
		t.Fatalf("expected ErrEmptySurface, got %v", err)
	}

	if len(surface.configured) != 0 {
		t.Fatalf("surface must not be configured, got %v", surface.configured)
	}
}

func TestResize(t *testing.T) {
	tests := []struct {
		width, height uint32
	}{
		{1, 1},
		{1920, 1080},
		{300, 4000},
	}

	for _, test := range tests {
		state, surface := newTestState(t)

		state.Resize(test.width, test.height)

		width, height := state.Size()
		if width != test.width || height != test.height {
			t.Errorf("expected size %dx%d, got %dx%d", test.width, test.height, width, height)
		}

		last := surface.configured[len(surface.configured)-1]
		if last != (size{test.width, test.height}) {
			t.Errorf("expected surface configured with %dx%d, got %v", test.width, test.height, last)
		}
	}
}

func TestResizeIgnoresEmptySize(t *testing.T) {
	tests := []struct {
		width, height uint32
	}{
		{0, 0},
		{0, 100},
		{100, 0},
	}

	for _, test := range tests {
		state, surface := newTestState(t)

		state.Resize(test.width, test.height)

		width, height := state.Size()
		if width != 800 || height != 600 {
			t.Errorf("size changed to %dx%d after resize to %dx%d", width, height, test.width, test.height)
		}

		if len(surface.configured) != 1 {
			t.Errorf("surface reconfigured after resize to %dx%d: %v", test.width, test.height, surface.configured)
		}
	}
}

func TestRenderClearsToWhite(t *testing.T) {
	state, surface := newTestState(t)

	if err := state.Render(); err != nil {
		t.Fatalf("render: %s", err)
	}

	if len(surface.frames) != 1 {
		t.Fatalf("expected one frame, got %d", len(surface.frames))
	}

	frame := surface.frames[0]

	if len(frame.cleared) != 1 {
		t.Fatalf("expected a single clear, got %d", len(frame.cleared))
	}

	r, g, b, a := frame.cleared[0].Components()
	if r != 1 || g != 1 || b != 1 || a != 1 {
		t.Fatalf("expected opaque white, got %f %f %f %f", r, g, b, a)
	}

	if frame.presented != 1 || frame.released != 1 {
		t.Fatalf("expected frame to be presented and released once, got %d/%d", frame.presented, frame.released)
	}
}

func TestRenderUsesClearColor(t *testing.T) {
	black := pulse.ColorLinearRGBA(0, 0, 0, 1)
	surface := &fakeSurface{}

	state, err := NewState(surface, 10, 10, black)
	if err != nil {
		t.Fatalf("create state: %s", err)
	}

	if err := state.Render(); err != nil {
		t.Fatalf("render: %s", err)
	}

	if surface.frames[0].cleared[0] != black {
		t.Fatalf("expected black, got %v", surface.frames[0].cleared[0])
	}
}

func TestRenderReturnsSurfaceError(t *testing.T) {
	state, surface := newTestState(t)
	surface.errs = []error{pulse.NewSurfaceError(pulse.SurfaceErrorLost, nil)}

	err := state.Render()
	if !errors.Is(err, pulse.ErrSurfaceLost) {
		t.Fatalf("expected ErrSurfaceLost, got %v", err)
	}

	if surface.presented() != 0 {
		t.Fatal("nothing must be presented")
	}
}

func TestRenderDoesNotPresentIfClearFails(t *testing.T) {
	errClear := errors.New("encoder failed")

	state, _ := newTestState(t)

	frame := &fakeFrame{clearErr: errClear}
	state.surface = &singleFrameSurface{frame: frame}

	if err := state.Render(); !errors.Is(err, errClear) {
		t.Fatalf("expected clear error, got %v", err)
	}

	if frame.presented != 0 || frame.released != 1 {
		t.Fatalf("expected frame released but not presented, got %d/%d", frame.presented, frame.released)
	}
}

type singleFrameSurface struct {
	frame *fakeFrame
}

func (s *singleFrameSurface) Configure(width, height uint32) {}

func (s *singleFrameSurface) AcquireFrame() (Frame, error) {
	return s.frame, nil
}

func TestInputIsNeverConsumed(t *testing.T) {
	state, _ := newTestState(t)

	events := []glimpse.Event{
		glimpse.KeyboardInput{Key: glimpse.KeyA, Action: glimpse.Press},
		glimpse.MouseInput{Button: 0, Action: glimpse.Press},
		glimpse.CursorMoved{X: 1, Y: 1},
		glimpse.CloseRequested{},
		glimpse.Resized{Width: 1, Height: 1},
	}

	for _, event := range events {
		if state.Input(event) {
			t.Errorf("event %#v was consumed", event)
		}
	}

	if !state.InputState().Keys.JustPressed[glimpse.KeyA] {
		t.Fatal("key press should be recorded")
	}

	state.Update()

	if state.InputState().Keys.JustPressed[glimpse.KeyA] {
		t.Fatal("update should advance the input state")
	}

	if !state.InputState().Keys.Pressed[glimpse.KeyA] {
		t.Fatal("key should still be pressed")
	}
}
