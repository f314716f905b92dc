//go:build !js

package platform

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type glfwWindow struct {
	win    *glfw.Window
	events chan Event
}

// NewWindow opens a fixed-size GLFW window with a 3.3 core context and
// makes the context current on the calling goroutine. The caller must be
// locked to the main OS thread.
func NewWindow(conf Config) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	w := &glfwWindow{win: win, events: make(chan Event, 64)}

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		x, y := win.GetCursorPos()
		w.push(ButtonPress{Button: int(button), X: int(x), Y: int(y)})
	})
	win.SetCharCallback(func(_ *glfw.Window, ch rune) {
		w.push(KeyPress{Label: string(ch)})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		switch key {
		case glfw.KeyEnter, glfw.KeyKPEnter:
			w.push(KeyPress{Label: "Enter"})
		case glfw.KeyBackspace:
			w.push(KeyPress{Label: "Backspace"})
		case glfw.KeyEscape:
			w.push(KeyPress{Label: "Escape"})
		}
	})
	win.SetRefreshCallback(func(_ *glfw.Window) {
		w.push(Expose{})
	})

	return w, nil
}

func (w *glfwWindow) push(ev Event) {
	select {
	case w.events <- ev:
	default:
	}
}

func (w *glfwWindow) Size() (int, int) {
	return w.win.GetFramebufferSize()
}

// GLContext returns nil: on desktop the context is current on the calling
// thread and the GL bindings reach it directly.
func (w *glfwWindow) GLContext() any { return nil }

func (w *glfwWindow) PollEvent() Event {
	glfw.PollEvents()
	select {
	case ev := <-w.events:
		return ev
	default:
		return nil
	}
}

func (w *glfwWindow) Events() <-chan Event {
	return w.events
}

func (w *glfwWindow) Swap() {
	w.win.SwapBuffers()
}

func (w *glfwWindow) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *glfwWindow) Close() {
	w.win.Destroy()
	glfw.Terminate()
}
