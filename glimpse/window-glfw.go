package glimpse

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type glfwWindow struct {
	win    *glfw.Window
	events eventQueue
}

func NewWindow(width, height int, title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	// webgpu manages the surface, we do not want an opengl context
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{win: window}

	configureCallbacks(window, &w.events)

	return w, nil
}

func (g *glfwWindow) ShouldClose() bool {
	return g.win.ShouldClose()
}

func (g *glfwWindow) PollEvents() []Event {
	glfw.PollEvents()
	return g.events.drain()
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return clampSize(width), clampSize(height)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) Terminate() {
	g.win.Destroy()
	glfw.Terminate()
}

func (g *glfwWindow) Run(handler Handler) error {
	return runLoop(g, handler)
}

func configureCallbacks(window *glfw.Window, events *eventQueue) {
	window.SetCloseCallback(func(win *glfw.Window) {
		// the handler decides if the window really closes
		win.SetShouldClose(false)
		events.push(CloseRequested{})
	})

	window.SetFramebufferSizeCallback(func(_win *glfw.Window, width, height int) {
		events.push(Resized{
			Width:  clampSize(width),
			Height: clampSize(height),
		})
	})

	window.SetContentScaleCallback(func(win *glfw.Window, x float32, y float32) {
		width, height := win.GetFramebufferSize()

		events.push(ScaleFactorChanged{
			ScaleFactor: x,
			Width:       clampSize(width),
			Height:      clampSize(height),
		})
	})

	window.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}

		key, ok := keyOf(glfwKey, scancode)
		if !ok {
			return
		}

		events.push(KeyboardInput{Key: key, Action: actionOf(action)})
	})

	window.SetMouseButtonCallback(func(_win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		events.push(MouseInput{Button: MouseButton(btn), Action: actionOf(action)})
	})

	window.SetCursorPosCallback(func(_win *glfw.Window, xpos float64, ypos float64) {
		events.push(CursorMoved{X: float32(xpos), Y: float32(ypos)})
	})
}

func actionOf(action glfw.Action) Action {
	if action == glfw.Press {
		return Press
	}

	return Release
}

func clampSize(value int) uint32 {
	return uint32(max(value, 0))
}

func keyOf(glfwKey glfw.Key, scancode int) (key Key, ok bool) {
	key, ok = glfwToKey[glfwKey]
	if !ok {
		slog.Warn(
			"Unknown key code",
			slog.Int("code", int(glfwKey)),
			slog.String("key", glfw.GetKeyName(glfwKey, scancode)),
		)
	}

	return
}

var glfwToKey = map[glfw.Key]Key{
	glfw.KeyEscape:       KeyEscape,
	glfw.KeyEnter:        KeyEnter,
	glfw.KeyTab:          KeyTab,
	glfw.KeyBackspace:    KeyBackspace,
	glfw.KeySpace:        KeySpace,
	glfw.KeyLeft:         KeyLeft,
	glfw.KeyRight:        KeyRight,
	glfw.KeyUp:           KeyUp,
	glfw.KeyDown:         KeyDown,
	glfw.KeyLeftShift:    KeyLeftShift,
	glfw.KeyRightShift:   KeyRightShift,
	glfw.KeyLeftControl:  KeyLeftControl,
	glfw.KeyRightControl: KeyRightControl,
	glfw.KeyLeftAlt:      KeyLeftAlt,
	glfw.KeyRightAlt:     KeyRightAlt,

	glfw.KeyA: KeyA,
	glfw.KeyB: KeyB,
	glfw.KeyC: KeyC,
	glfw.KeyD: KeyD,
	glfw.KeyE: KeyE,
	glfw.KeyF: KeyF,
	glfw.KeyG: KeyG,
	glfw.KeyH: KeyH,
	glfw.KeyI: KeyI,
	glfw.KeyJ: KeyJ,
	glfw.KeyK: KeyK,
	glfw.KeyL: KeyL,
	glfw.KeyM: KeyM,
	glfw.KeyN: KeyN,
	glfw.KeyO: KeyO,
	glfw.KeyP: KeyP,
	glfw.KeyQ: KeyQ,
	glfw.KeyR: KeyR,
	glfw.KeyS: KeyS,
	glfw.KeyT: KeyT,
	glfw.KeyU: KeyU,
	glfw.KeyV: KeyV,
	glfw.KeyW: KeyW,
	glfw.KeyX: KeyX,
	glfw.KeyY: KeyY,
	glfw.KeyZ: KeyZ,

	glfw.Key0: Key0,
	glfw.Key1: Key1,
	glfw.Key2: Key2,
	glfw.Key3: Key3,
	glfw.Key4: Key4,
	glfw.Key5: Key5,
	glfw.Key6: Key6,
	glfw.Key7: Key7,
	glfw.Key8: Key8,
	glfw.Key9: Key9,

	glfw.KeyF1:  KeyF1,
	glfw.KeyF2:  KeyF2,
	glfw.KeyF3:  KeyF3,
	glfw.KeyF4:  KeyF4,
	glfw.KeyF5:  KeyF5,
	glfw.KeyF6:  KeyF6,
	glfw.KeyF7:  KeyF7,
	glfw.KeyF8:  KeyF8,
	glfw.KeyF9:  KeyF9,
	glfw.KeyF10: KeyF10,
	glfw.KeyF11: KeyF11,
	glfw.KeyF12: KeyF12,
}
