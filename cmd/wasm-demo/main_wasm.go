//go:build js && wasm

package main

import (
	"log"
	"syscall/js"
	"time"

	"github.com/kjkrol/gokgrid/internal/board"
	"github.com/kjkrol/gokgrid/internal/platform"
	"github.com/kjkrol/gokgrid/pkg/cellgrid"
)

const (
	gridRows = 8
	gridCols = 5
)

func main() {
	win, err := platform.NewWindow(platform.Config{
		Title:  "gokgrid wasm demo",
		Width:  900,
		Height: 600,
	})
	if err != nil {
		log.Fatalf("window: %v", err)
	}
	defer win.Close()

	dev, err := cellgrid.NewWebGLDevice(win.GLContext())
	if err != nil {
		log.Fatalf("device: %v", err)
	}
	grid, err := cellgrid.New(dev, cellgrid.Options{})
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}
	width, height := win.Size()
	if err := grid.Init(width, height); err != nil {
		log.Fatalf("init: %v", err)
	}
	if err := grid.InitGrid(gridRows, gridCols); err != nil {
		log.Fatalf("init grid: %v", err)
	}

	b, err := board.New(grid, time.Now().UnixNano())
	if err != nil {
		log.Fatalf("board: %v", err)
	}
	grid.Render()

	// Hit-testing for page scripts. The JS boundary is untyped, so the
	// cell travels packed as row*256+col; -1 means no cell.
	cellAt := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 2 {
			return -1
		}
		row, col, ok := grid.HitTest(float32(args[0].Float()), float32(args[1].Float()))
		if !ok {
			return -1
		}
		return row*256 + col
	})
	defer cellAt.Release()
	js.Global().Set("gridCellAt", cellAt)

	tick := time.NewTicker(time.Second)
	defer tick.Stop()
	blink := time.NewTicker(500 * time.Millisecond)
	defer blink.Stop()

	// Each arm renders independently; Render resets context state on
	// entry, so their interleaving can be arbitrary.
	for {
		select {
		case ev := <-win.Events():
			switch ev := ev.(type) {
			case platform.ButtonPress:
				clipX := 2*float32(ev.X)/float32(width) - 1
				clipY := 1 - 2*float32(ev.Y)/float32(height)
				b.Click(clipX, clipY)
			case platform.KeyPress:
				b.Key(ev.Label)
			}
			grid.Render()
		case <-tick.C:
			b.Tick()
			grid.Render()
		case <-blink.C:
			b.Blink()
			grid.Render()
		}
	}
}
