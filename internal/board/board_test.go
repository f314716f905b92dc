package board

import (
	"strconv"
	"testing"

	"github.com/kjkrol/gokgrid/pkg/cellgrid"
)

// stubDevice satisfies the device surface with no-ops so board logic can
// drive a real renderer without a GL context.
type stubDevice struct {
	next uint32
}

var _ cellgrid.Device = (*stubDevice)(nil)

func (d *stubDevice) handle() uint32 {
	d.next++
	return d.next
}

func (d *stubDevice) Viewport(width, height int) {}
func (d *stubDevice) CompileShader(stage cellgrid.ShaderStage, source string) (uint32, error) {
	return d.handle(), nil
}
func (d *stubDevice) LinkProgram(vertex, fragment uint32) (uint32, error) {
	return d.handle(), nil
}
func (d *stubDevice) DeleteShader(shader uint32)                           {}
func (d *stubDevice) UseProgram(program uint32)                            {}
func (d *stubDevice) AttribLocation(program uint32, name string) int32     { return 0 }
func (d *stubDevice) UniformLocation(program uint32, name string) int32    { return 0 }
func (d *stubDevice) Uniform1i(location int32, value int)                  {}
func (d *stubDevice) Uniform3f(location int32, x, y, z float32)            {}
func (d *stubDevice) CreateBuffer() uint32                                 { return d.handle() }
func (d *stubDevice) BindArrayBuffer(buffer uint32)                        {}
func (d *stubDevice) BufferData(data []float32)                            {}
func (d *stubDevice) BufferSubData(offset int, data []float32)             {}
func (d *stubDevice) CreateAlphaTexture(w, h int, pixels []byte) uint32    { return d.handle() }
func (d *stubDevice) BindTexture(texture uint32)                           {}
func (d *stubDevice) EnableVertexAttrib(location int32)                    {}
func (d *stubDevice) DisableVertexAttrib(location int32)                   {}
func (d *stubDevice) VertexAttribPointer(loc int32, size, stride, off int) {}
func (d *stubDevice) SetBlend(enabled bool)                                {}
func (d *stubDevice) ClearColor(r, g, b, a float32)                        {}
func (d *stubDevice) Clear()                                               {}
func (d *stubDevice) DrawTriangles(first, count int)                       {}
func (d *stubDevice) ResetState()                                          {}

func newBoard(t *testing.T, rows, cols int) (*Board, *cellgrid.Renderer) {
	t.Helper()
	grid, err := cellgrid.New(&stubDevice{}, cellgrid.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := grid.InitGrid(rows, cols); err != nil {
		t.Fatal(err)
	}
	b, err := New(grid, 42)
	if err != nil {
		t.Fatal(err)
	}
	return b, grid
}

// cellCenter converts a cell to the clip-space point a click there lands on.
func cellCenter(row, col, rows, cols int) (float32, float32) {
	cellW := 2.0 / float32(cols)
	cellH := 2.0 / float32(rows)
	return -1 + (float32(col)+0.5)*cellW, 1 - (float32(row)+0.5)*cellH
}

func TestNewPopulatesHeadersAndPrices(t *testing.T) {
	_, grid := newBoard(t, 4, 3)
	if got := grid.CellText(0, 0); got != "COL 1" {
		t.Errorf("header (0,0) = %q, want COL 1", got)
	}
	if got := grid.CellText(0, 2); got != "COL 3" {
		t.Errorf("header (0,2) = %q, want COL 3", got)
	}
	for row := 1; row < 4; row++ {
		for col := 0; col < 3; col++ {
			text := grid.CellText(row, col)
			price, err := strconv.ParseFloat(text, 64)
			if err != nil {
				t.Fatalf("cell (%d,%d) holds %q, not a price", row, col, text)
			}
			if price < 50 || price > 1000 {
				t.Errorf("cell (%d,%d) price %v outside the seed range", row, col, price)
			}
		}
	}
}

func TestNewRejectsGridWithoutDataRows(t *testing.T) {
	grid, err := cellgrid.New(&stubDevice{}, cellgrid.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := grid.InitGrid(1, 3); err != nil {
		t.Fatal(err)
	}
	if _, err := New(grid, 1); err == nil {
		t.Fatal("accepted a grid with only a header row")
	}
}

func TestClickStartsEditing(t *testing.T) {
	b, grid := newBoard(t, 4, 3)
	orig := grid.CellText(2, 1)

	x, y := cellCenter(2, 1, 4, 3)
	b.Click(x, y)
	b.Key("7")
	if got := grid.CellText(2, 1); got != orig+"7" {
		t.Fatalf("cell text %q after keypress, want %q", got, orig+"7")
	}
}

func TestHeaderClickCancelsEdit(t *testing.T) {
	b, grid := newBoard(t, 4, 3)
	orig := grid.CellText(2, 1)

	x, y := cellCenter(2, 1, 4, 3)
	b.Click(x, y)
	b.Key("7")
	hx, hy := cellCenter(0, 1, 4, 3)
	b.Click(hx, hy)

	if got := grid.CellText(2, 1); got != orig {
		t.Errorf("cancelled edit left %q, want %q restored", got, orig)
	}
	b.Key("9")
	if got := grid.CellText(2, 1); got != orig {
		t.Errorf("keypress without a selection changed the cell to %q", got)
	}
}

func TestEnterCommitsEscapeReverts(t *testing.T) {
	b, grid := newBoard(t, 4, 3)
	orig := grid.CellText(1, 0)
	x, y := cellCenter(1, 0, 4, 3)

	b.Click(x, y)
	b.Key("9")
	b.Key("Enter")
	committed := orig + "9"
	if got := grid.CellText(1, 0); got != committed {
		t.Fatalf("Enter left %q, want %q committed", got, committed)
	}

	b.Click(x, y)
	b.Key("5")
	b.Key("Escape")
	if got := grid.CellText(1, 0); got != committed {
		t.Fatalf("Escape left %q, want %q restored", got, committed)
	}
}

func TestBackspaceShortensBuffer(t *testing.T) {
	b, grid := newBoard(t, 4, 3)
	orig := grid.CellText(3, 2)
	x, y := cellCenter(3, 2, 4, 3)

	b.Click(x, y)
	b.Key("Backspace")
	if got := grid.CellText(3, 2); got != orig[:len(orig)-1] {
		t.Fatalf("Backspace left %q, want %q", got, orig[:len(orig)-1])
	}
}

func TestTickLeavesEditedCellAlone(t *testing.T) {
	b, grid := newBoard(t, 4, 3)
	x, y := cellCenter(1, 0, 4, 3)
	b.Click(x, y)
	b.Key("A")
	buf := grid.CellText(1, 0)

	for i := 0; i < 50; i++ {
		b.Tick()
	}
	if got := grid.CellText(1, 0); got != buf {
		t.Fatalf("tick rewrote the cell being edited: %q, want %q", got, buf)
	}
}

func TestTickRewritesPrices(t *testing.T) {
	b, grid := newBoard(t, 8, 5)
	before := make(map[[2]int]string)
	for row := 1; row < 8; row++ {
		for col := 0; col < 5; col++ {
			before[[2]int{row, col}] = grid.CellText(row, col)
		}
	}
	for i := 0; i < 10; i++ {
		b.Tick()
	}
	changed := 0
	for ref, text := range before {
		got := grid.CellText(ref[0], ref[1])
		if _, err := strconv.ParseFloat(got, 64); err != nil {
			t.Fatalf("cell %v holds %q after ticks, not a price", ref, got)
		}
		if got != text {
			changed++
		}
	}
	if changed == 0 {
		t.Fatal("ten ticks moved no prices")
	}
}

func TestBlinkWithoutEditIsSafe(t *testing.T) {
	b, _ := newBoard(t, 4, 3)
	b.Blink()
	b.Blink()
}
