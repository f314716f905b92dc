package platform

// Config describes the single rendering surface a grid host needs.
type Config struct {
	Title  string
	Width  int
	Height int
}

type Event interface{}

type ButtonPress struct {
	Button int
	X, Y   int
}

type KeyPress struct {
	// Label is the printable character, or a key name such as "Enter",
	// "Backspace" or "Escape" for non-printable keys.
	Label string
}

type Expose struct{}

// Window is a surface with a current GL context and an input event queue.
// PollEvent pumps the platform and returns nil when nothing is pending;
// hosts that live inside an external event loop (the browser) block on
// Events instead.
type Window interface {
	Size() (int, int)
	GLContext() any
	PollEvent() Event
	Events() <-chan Event
	Swap()
	ShouldClose() bool
	Close()
}
