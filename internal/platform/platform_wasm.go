//go:build js && wasm

package platform

import (
	"fmt"
	"syscall/js"
)

type wasmWindow struct {
	canvas js.Value
	gl     js.Value
	events chan Event
	conf   Config
	closed bool

	removes []struct {
		target js.Value
		typ    string
		fn     js.Func
	}
}

// NewWindow appends a canvas to the document body and acquires a WebGL1
// context on it.
func NewWindow(conf Config) (Window, error) {
	doc := js.Global().Get("document")
	doc.Set("title", conf.Title)

	canvas := doc.Call("createElement", "canvas")
	canvas.Set("width", conf.Width)
	canvas.Set("height", conf.Height)
	canvas.Call("setAttribute", "tabindex", "0")
	doc.Get("body").Call("appendChild", canvas)

	attrs := js.Global().Get("Object").New()
	attrs.Set("alpha", true)
	attrs.Set("depth", false)
	attrs.Set("antialias", true)
	gl := canvas.Call("getContext", "webgl", attrs)
	if gl.IsNull() || gl.IsUndefined() {
		canvas.Call("remove")
		return nil, fmt.Errorf("webgl context unavailable")
	}

	w := &wasmWindow{
		canvas: canvas,
		gl:     gl,
		events: make(chan Event, 64),
		conf:   conf,
	}

	w.listen(canvas, "mousedown", func(ev js.Value) {
		w.push(ButtonPress{
			Button: ev.Get("button").Int(),
			X:      ev.Get("offsetX").Int(),
			Y:      ev.Get("offsetY").Int(),
		})
	})
	w.listen(canvas, "keydown", func(ev js.Value) {
		key := ev.Get("key").String()
		switch key {
		case "Enter", "Backspace", "Escape":
			ev.Call("preventDefault")
			w.push(KeyPress{Label: key})
		default:
			if len(key) == 1 {
				w.push(KeyPress{Label: key})
			}
		}
	})
	canvas.Call("focus")

	return w, nil
}

func (w *wasmWindow) listen(target js.Value, typ string, handler func(js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		handler(args[0])
		return nil
	})
	target.Call("addEventListener", typ, fn)
	w.removes = append(w.removes, struct {
		target js.Value
		typ    string
		fn     js.Func
	}{target, typ, fn})
}

func (w *wasmWindow) push(ev Event) {
	select {
	case w.events <- ev:
	default:
	}
}

func (w *wasmWindow) Size() (int, int) {
	return w.conf.Width, w.conf.Height
}

func (w *wasmWindow) GLContext() any { return w.gl }

func (w *wasmWindow) PollEvent() Event {
	select {
	case ev := <-w.events:
		return ev
	default:
		return nil
	}
}

func (w *wasmWindow) Events() <-chan Event {
	return w.events
}

// Swap is a no-op: the browser composites the canvas when the handler that
// drew into it returns.
func (w *wasmWindow) Swap() {}

func (w *wasmWindow) ShouldClose() bool { return w.closed }

func (w *wasmWindow) Close() {
	for _, r := range w.removes {
		r.target.Call("removeEventListener", r.typ, r.fn)
		r.fn.Release()
	}
	w.removes = nil
	w.canvas.Call("remove")
	w.closed = true
}
