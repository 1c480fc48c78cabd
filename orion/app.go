package orion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/skeleton/glimpse"
	"github.com/oliverbestmann/skeleton/pulse"
)

// App drives a State from the events of a window.
type App struct {
	State *State

	Times FrameTimes
}

func NewApp(state *State) *App {
	return &App{State: state}
}

func (a *App) WindowEvent(event glimpse.Event) glimpse.ControlFlow {
	if a.State.Input(event) {
		return glimpse.Continue
	}

	switch ev := event.(type) {
	case glimpse.CloseRequested:
		return glimpse.Exit

	case glimpse.KeyboardInput:
		if ev.Key == glimpse.KeyEscape && ev.Action == glimpse.Press {
			return glimpse.Exit
		}

	case glimpse.Resized:
		a.State.Resize(ev.Width, ev.Height)

	case glimpse.ScaleFactorChanged:
		slog.Info("Scale factor changed", slog.Float64("scale", float64(ev.ScaleFactor)))
		a.State.Resize(ev.Width, ev.Height)
	}

	return glimpse.Continue
}

func (a *App) RedrawRequested() error {
	a.State.Update()

	err := a.State.Render()
	switch {
	case err == nil:

	case errors.Is(err, pulse.ErrSurfaceLost):
		// reconfigure the surface, the next frame will try again
		slog.Warn("Surface lost, reconfigure surface")
		a.State.Resize(a.State.Size())

	case errors.Is(err, pulse.ErrSurfaceOutOfMemory):
		return fmt.Errorf("render frame: %w", err)

	default:
		slog.Error("Dropped frame", slog.String("err", err.Error()))
	}

	if a.Times.Tick() {
		slog.Debug("Frame times",
			slog.Uint64("frames", a.Times.FrameCount),
			slog.Float64("fps", a.Times.FPS()),
			slog.Duration("max", a.Times.MaxDuration),
		)
	}

	return nil
}
