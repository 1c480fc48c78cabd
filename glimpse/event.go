package glimpse

// Event is something that happened to a window. The concrete type
// is one of the event structs in this file.
type Event interface {
	isEvent()
}

type Action uint8

const (
	Release Action = iota
	Press
)

// CloseRequested is emitted when the user asks the window to close,
// e.g. by clicking the close button of the window decoration.
type CloseRequested struct{}

// Resized holds the new size of the framebuffer in physical pixels.
type Resized struct {
	Width, Height uint32
}

// ScaleFactorChanged is emitted when the window moved to a monitor
// with a different pixel density. Width and Height hold the new inner
// size of the window in physical pixels.
type ScaleFactorChanged struct {
	ScaleFactor   float32
	Width, Height uint32
}

type KeyboardInput struct {
	Key    Key
	Action Action
}

type MouseInput struct {
	Button MouseButton
	Action Action
}

type CursorMoved struct {
	X, Y float32
}

func (CloseRequested) isEvent()     {}
func (Resized) isEvent()            {}
func (ScaleFactorChanged) isEvent() {}
func (KeyboardInput) isEvent()      {}
func (MouseInput) isEvent()         {}
func (CursorMoved) isEvent()        {}

// ControlFlow tells the event loop whether to keep running.
type ControlFlow uint8

const (
	Continue ControlFlow = iota
	Exit
)

// Handler receives the events of a window.
type Handler interface {
	// WindowEvent is called once for every event, in the order the
	// events arrived.
	WindowEvent(event Event) ControlFlow

	// RedrawRequested is called once all pending events were dispatched.
	// A non nil error stops the event loop and is returned from Run.
	RedrawRequested() error
}
