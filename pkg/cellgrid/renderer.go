package cellgrid

import (
	"fmt"
	"math"
)

const backgroundStride = 5 * 4 // x, y, r, g, b per vertex, in bytes

// Options bound the renderer's fixed-capacity tables. Zero fields take the
// defaults; tests use small grids to keep tables cheap.
type Options struct {
	MaxRows    int     // text table row capacity (default 256)
	MaxCols    int     // text table column capacity (default 64)
	MaxCellLen int     // visible characters stored per cell (default 31)
	CellPad    float32 // clip-space gutter around each cell (default 0.005)
}

func (o Options) withDefaults() Options {
	if o.MaxRows <= 0 {
		o.MaxRows = 256
	}
	if o.MaxCols <= 0 {
		o.MaxCols = 64
	}
	if o.MaxCellLen <= 0 {
		o.MaxCellLen = 31
	}
	if o.CellPad <= 0 {
		o.CellPad = 0.005
	}
	return o
}

// Renderer draws a uniform rows x cols grid on the [-1,1] clip plane:
// opaque cell backgrounds, batched bitmap-font text and an edit cursor
// bar, in three draw calls per frame. It owns every piece of host-side
// state; nothing lives in package globals, so independent grids can
// coexist and tests can run without a real context.
//
// All methods are synchronous and must run on the goroutine that owns the
// device context. Mutators never touch the device except where documented;
// Render leaves the context in a clean state every time it is entered.
type Renderer struct {
	dev  Device
	opts Options

	rows int
	cols int

	gridProgram uint32
	textProgram uint32
	textTried   bool
	textErr     error
	fontTexture uint32
	gridVbo     uint32
	textVbo     uint32
	cursorVbo   uint32

	vertices   []float32
	baseColors [][3]float32
	cellText   [][]string
	textBatch  []float32

	cursor cursorState
}

// New wraps a device. The renderer draws nothing until InitGrid defines a
// grid shape.
func New(dev Device, opts Options) (*Renderer, error) {
	if dev == nil {
		return nil, fmt.Errorf("device is required")
	}
	opts = opts.withDefaults()
	r := &Renderer{dev: dev, opts: opts}
	r.cellText = make([][]string, opts.MaxRows)
	for i := range r.cellText {
		r.cellText[i] = make([]string, opts.MaxCols)
	}
	return r, nil
}

// Init sets the viewport. Call it once after the context exists and again
// whenever the surface size changes.
func (r *Renderer) Init(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("viewport %dx%d is not drawable", width, height)
	}
	r.dev.Viewport(width, height)
	return nil
}

// InitGrid (re)allocates the grid: background geometry for rows x cols
// cells with the default tint scheme, uploaded to the device immediately.
// Cell text is cleared; the renderer does not migrate text across a shape
// change, callers repopulate after resizing. The cursor is kept as set.
func (r *Renderer) InitGrid(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("grid %dx%d is empty", rows, cols)
	}
	if rows > r.opts.MaxRows || cols > r.opts.MaxCols {
		return fmt.Errorf("grid %dx%d exceeds capacity %dx%d", rows, cols, r.opts.MaxRows, r.opts.MaxCols)
	}

	if r.gridProgram == 0 {
		program, err := r.buildProgram(gridVertexSrc, gridFragmentSrc)
		if err != nil {
			return fmt.Errorf("grid program: %w", err)
		}
		r.gridProgram = program
	}

	r.rows = rows
	r.cols = cols
	r.buildBackground()
	for i := range r.cellText {
		for j := range r.cellText[i] {
			r.cellText[i][j] = ""
		}
	}
	r.textBatch = r.textBatch[:0]

	if r.gridVbo == 0 {
		r.gridVbo = r.dev.CreateBuffer()
	}
	r.dev.BindArrayBuffer(r.gridVbo)
	r.dev.BufferData(r.vertices)
	return nil
}

// Rows and Cols report the current grid shape; both are zero before the
// first InitGrid.
func (r *Renderer) Rows() int { return r.rows }
func (r *Renderer) Cols() int { return r.cols }

// Render draws one complete frame: clear, backgrounds, text batch, cursor
// bar, in that order. It is idempotent and safe to call from any number of
// uncoordinated call sites (click handler, blink timer, data tick); shared
// context state is reset on entry rather than trusted from the last call.
func (r *Renderer) Render() {
	r.dev.ResetState()
	r.dev.ClearColor(0.08, 0.08, 0.14, 1)
	r.dev.Clear()
	r.drawBackground()
	r.drawText()
	r.drawCursor()
}

// HitTest resolves a clip-space point to the cell under it. ok is false
// outside the grid or before InitGrid.
func (r *Renderer) HitTest(clipX, clipY float32) (row, col int, ok bool) {
	if r.rows <= 0 || r.cols <= 0 {
		return 0, 0, false
	}
	cellW := 2.0 / float64(r.cols)
	cellH := 2.0 / float64(r.rows)
	col = int(math.Floor((float64(clipX) + 1) / cellW))
	row = int(math.Floor((1 - float64(clipY)) / cellH))
	if row < 0 || row >= r.rows || col < 0 || col >= r.cols {
		return 0, 0, false
	}
	return row, col, true
}

func (r *Renderer) buildProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertex, err := r.dev.CompileShader(VertexStage, vertexSrc)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	fragment, err := r.dev.CompileShader(FragmentStage, fragmentSrc)
	if err != nil {
		r.dev.DeleteShader(vertex)
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	program, err := r.dev.LinkProgram(vertex, fragment)
	r.dev.DeleteShader(vertex)
	r.dev.DeleteShader(fragment)
	if err != nil {
		return 0, err
	}
	return program, nil
}
