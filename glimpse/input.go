package glimpse

type MouseButton uint32

type KeysState struct {
	// the keys that are currently marked as "pressed"
	Pressed map[Key]bool

	// keys that where just pressed after the last call to NextTick()
	JustPressed map[Key]bool

	// keys that were just released after the last call to NextTick()
	JustReleased map[Key]bool
}

func (k *KeysState) press(key Key) {
	setTrue(&k.Pressed, key)
	setTrue(&k.JustPressed, key)
}

func (k *KeysState) release(key Key) {
	setFalse(&k.Pressed, key)
	setTrue(&k.JustReleased, key)
}

func (k *KeysState) nextTick() {
	clear(k.JustPressed)
	clear(k.JustReleased)
}

type MouseState struct {
	CursorX, CursorY float32

	// cursor movement since the last tick
	DeltaX, DeltaY float32

	Pressed map[MouseButton]bool

	// mouse buttons that were just clicked after the last call to NextTick()
	JustPressed map[MouseButton]bool

	// mouse buttons that were just released after the last call to NextTick()
	JustReleased map[MouseButton]bool

	hasPosition bool
}

func (m *MouseState) press(button MouseButton) {
	setTrue(&m.Pressed, button)
	setTrue(&m.JustPressed, button)
}

func (m *MouseState) release(button MouseButton) {
	setFalse(&m.Pressed, button)
	setTrue(&m.JustReleased, button)
}

func (m *MouseState) position(x, y float32) {
	// the very first position is not a movement
	if m.hasPosition {
		m.DeltaX += x - m.CursorX
		m.DeltaY += y - m.CursorY
	}

	m.CursorX = x
	m.CursorY = y
	m.hasPosition = true
}

func (m *MouseState) nextTick() {
	m.DeltaX = 0
	m.DeltaY = 0

	clear(m.JustPressed)
	clear(m.JustReleased)
}

// InputState accumulates the keyboard and mouse events of a window
// between two ticks.
type InputState struct {
	Keys  KeysState
	Mouse MouseState
}

// Record updates the input state with the given event. It reports
// whether the event carried any input information.
func (s *InputState) Record(event Event) bool {
	switch ev := event.(type) {
	case KeyboardInput:
		switch ev.Action {
		case Press:
			s.Keys.press(ev.Key)
		case Release:
			s.Keys.release(ev.Key)
		}

	case MouseInput:
		switch ev.Action {
		case Press:
			s.Mouse.press(ev.Button)
		case Release:
			s.Mouse.release(ev.Button)
		}

	case CursorMoved:
		s.Mouse.position(ev.X, ev.Y)

	default:
		return false
	}

	return true
}

// NextTick forgets everything that happened only during the last tick.
func (s *InputState) NextTick() {
	s.Keys.nextTick()
	s.Mouse.nextTick()
}

func setTrue[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = true
}

func setFalse[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = false
}
