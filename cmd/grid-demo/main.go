//go:build !js

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kjkrol/gokgrid/internal/board"
	"github.com/kjkrol/gokgrid/internal/platform"
	"github.com/kjkrol/gokgrid/pkg/cellgrid"
)

func init() {
	// GLFW and the GL context must stay on the main OS thread.
	runtime.LockOSThread()
}

type config struct {
	Rows        int `yaml:"rows"`
	Cols        int `yaml:"cols"`
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	TickMillis  int `yaml:"tick_millis"`
	BlinkMillis int `yaml:"blink_millis"`
}

func defaultConfig() config {
	return config{Rows: 8, Cols: 5, Width: 900, Height: 600, TickMillis: 1000, BlinkMillis: 500}
}

func loadConfig(path string) (config, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("parse %s: %w", path, err)
	}
	return conf, nil
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	conf, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	win, err := platform.NewWindow(platform.Config{
		Title:  "gokgrid demo",
		Width:  conf.Width,
		Height: conf.Height,
	})
	if err != nil {
		log.Fatalf("window: %v", err)
	}
	defer win.Close()

	dev, err := cellgrid.NewGLDevice()
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
	if err := grid.InitGrid(conf.Rows, conf.Cols); err != nil {
		log.Fatalf("init grid: %v", err)
	}

	b, err := board.New(grid, time.Now().UnixNano())
	if err != nil {
		log.Fatalf("board: %v", err)
	}

	tick := time.NewTicker(time.Duration(conf.TickMillis) * time.Millisecond)
	defer tick.Stop()
	blink := time.NewTicker(time.Duration(conf.BlinkMillis) * time.Millisecond)
	defer blink.Stop()

	log.Printf("grid %dx%d on %dx%d surface", conf.Rows, conf.Cols, width, height)

	for !win.ShouldClose() {
		for ev := win.PollEvent(); ev != nil; ev = win.PollEvent() {
			switch ev := ev.(type) {
			case platform.ButtonPress:
				clipX := 2*float32(ev.X)/float32(width) - 1
				clipY := 1 - 2*float32(ev.Y)/float32(height)
				b.Click(clipX, clipY)
			case platform.KeyPress:
				b.Key(ev.Label)
			}
		}
		select {
		case <-tick.C:
			b.Tick()
		case <-blink.C:
			b.Blink()
		default:
		}
		grid.Render()
		win.Swap()
	}
}
