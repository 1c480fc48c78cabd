package orion

import (
	"strings"
	"testing"
	"time"
)

func TestRunOptionsDefaults(t *testing.T) {
	opts := RunOptions{}.withDefaults()

	if opts.WindowWidth != 1000 || opts.WindowHeight != 600 {
		t.Fatalf("unexpected default size %dx%d", opts.WindowWidth, opts.WindowHeight)
	}

	if opts.WindowTitle != "Orion" {
		t.Fatalf("unexpected default title %q", opts.WindowTitle)
	}

	opts = RunOptions{WindowWidth: 320, WindowHeight: 200, WindowTitle: "Clear"}.withDefaults()

	if opts.WindowWidth != 320 || opts.WindowHeight != 200 || opts.WindowTitle != "Clear" {
		t.Fatalf("explicit options were overwritten: %+v", opts)
	}
}

func TestStartProfileRejectsUnknownMode(t *testing.T) {
	_, err := startProfile("gpu")
	if err == nil || !strings.Contains(err.Error(), "unknown profile mode") {
		t.Fatalf("expected unknown profile mode error, got %v", err)
	}
}

func TestStartProfileNone(t *testing.T) {
	prof, err := startProfile(ProfileNone)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	prof.Stop()
}

func TestHandle(t *testing.T) {
	Handle(nil, "nothing to see")

	defer func() {
		text, _ := recover().(string)
		if text != "create window 1: no display" {
			t.Fatalf("unexpected panic %q", text)
		}
	}()

	Handle(errString("no display"), "create window %d", 1)
}

type errString string

func (e errString) Error() string { return string(e) }

func TestFrameTimes(t *testing.T) {
	var times FrameTimes

	start := time.Unix(0, 0)

	for idx := range 60 {
		report := times.tickAt(start.Add(time.Duration(idx) * 10 * time.Millisecond))
		if report != (idx == 59) {
			t.Fatalf("unexpected report at frame %d", idx+1)
		}
	}

	if times.Delta != 10*time.Millisecond {
		t.Fatalf("unexpected delta %s", times.Delta)
	}

	if times.MaxDuration != 10*time.Millisecond {
		t.Fatalf("unexpected max duration %s", times.MaxDuration)
	}

	if fps := times.FPS(); fps < 99 || fps > 101 {
		t.Fatalf("expected about 100 fps, got %f", fps)
	}

	var empty FrameTimes
	if empty.FPS() != 0 {
		t.Fatal("expected zero fps without frames")
	}
}
