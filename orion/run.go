package orion

import (
	"fmt"

	"github.com/oliverbestmann/skeleton/glimpse"
	"github.com/oliverbestmann/skeleton/pulse"
	"github.com/pkg/profile"
)

type ProfileMode string

const (
	ProfileNone  ProfileMode = ""
	ProfileCPU   ProfileMode = "cpu"
	ProfileMem   ProfileMode = "mem"
	ProfileTrace ProfileMode = "trace"
)

type RunOptions struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// color the screen is cleared to. The zero value is opaque white.
	ClearColor pulse.Color

	// writes a profile to the working directory if set
	Profile ProfileMode
}

func (opts RunOptions) withDefaults() RunOptions {
	if opts.WindowWidth <= 0 {
		opts.WindowWidth = 1000
	}

	if opts.WindowHeight <= 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "Orion"
	}

	return opts
}

// Run opens a window and clears it every frame until the window is closed,
// escape is pressed or the surface runs out of memory.
func Run(opts RunOptions) error {
	opts = opts.withDefaults()

	prof, err := startProfile(opts.Profile)
	if err != nil {
		return err
	}

	defer prof.Stop()

	// create a new window
	win, err := glimpse.NewWindow(
		opts.WindowWidth,
		opts.WindowHeight,
		opts.WindowTitle,
	)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	// initialize the webgpu device
	ctx, err := pulse.New(win.SurfaceDescriptor())
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer ctx.Release()

	view, err := pulse.NewView(ctx)
	if err != nil {
		return fmt.Errorf("create view: %w", err)
	}

	width, height := win.GetSize()

	state, err := NewState(ViewSurface(view), width, height, opts.ClearColor)
	if err != nil {
		return fmt.Errorf("create state: %w", err)
	}

	return win.Run(NewApp(state))
}

type stopper interface{ Stop() }

type noopStopper struct{}

func (noopStopper) Stop() {}

func startProfile(mode ProfileMode) (stopper, error) {
	switch mode {
	case ProfileNone:
		return noopStopper{}, nil
	case ProfileCPU:
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook), nil
	case ProfileMem:
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook), nil
	case ProfileTrace:
		return profile.Start(profile.TraceProfile, profile.ProfilePath("."), profile.NoShutdownHook), nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
}
