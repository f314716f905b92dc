package cellgrid

import (
	"fmt"
	"image/color"
)

// Default tint scheme: row 0 is the header, body rows alternate by parity.
var (
	headerTint   = [3]float32{0.0, 0.5, 0.7}
	bodyTintEven = [3]float32{0.15, 0.15, 0.25}
	bodyTintOdd  = [3]float32{0.2, 0.2, 0.32}
)

func defaultTint(row int) [3]float32 {
	switch {
	case row == 0:
		return headerTint
	case row%2 == 0:
		return bodyTintEven
	default:
		return bodyTintOdd
	}
}

// buildBackground fills the host-side vertex array with one quad per cell
// (two triangles, five floats per vertex) and records each cell's base
// tint so highlights can be restored exactly instead of being recomputed.
func (r *Renderer) buildBackground() {
	cells := r.rows * r.cols
	r.vertices = make([]float32, 0, cells*6*5)
	r.baseColors = make([][3]float32, cells)

	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			box := cellToClip(row, col, r.rows, r.cols, r.opts.CellPad)
			tint := defaultTint(row)
			r.baseColors[row*r.cols+col] = tint

			c := tint
			r.vertices = append(r.vertices,
				box.x1, box.y1, c[0], c[1], c[2],
				box.x2, box.y1, c[0], c[1], c[2],
				box.x2, box.y2, c[0], c[1], c[2],
				box.x1, box.y1, c[0], c[1], c[2],
				box.x2, box.y2, c[0], c[1], c[2],
				box.x1, box.y2, c[0], c[1], c[2],
			)
		}
	}
}

// SetCellColor overwrites the displayed color of one cell in the host-side
// copy only; UpdateBackgroundBuffer pushes pending edits to the device in
// one transfer. Out-of-range cells are rejected so a bad index can never
// scribble over a neighbour's vertices.
func (r *Renderer) SetCellColor(row, col int, c color.Color) error {
	if row < 0 || row >= r.rows || col < 0 || col >= r.cols {
		return fmt.Errorf("cell (%d,%d) outside %dx%d grid", row, col, r.rows, r.cols)
	}
	r.writeCellColor(row, col, colorToFloat(c))
	return nil
}

// ResetCellColor restores the cell's base tint recorded at InitGrid time.
// Highlights are overrides, not recolorings; restoring from the stored
// base keeps selection logic independent of the tint scheme.
func (r *Renderer) ResetCellColor(row, col int) error {
	if row < 0 || row >= r.rows || col < 0 || col >= r.cols {
		return fmt.Errorf("cell (%d,%d) outside %dx%d grid", row, col, r.rows, r.cols)
	}
	r.writeCellColor(row, col, r.baseColors[row*r.cols+col])
	return nil
}

func (r *Renderer) writeCellColor(row, col int, c [3]float32) {
	base := (row*r.cols + col) * 6 * 5
	for v := 0; v < 6; v++ {
		offset := base + v*5 + 2
		r.vertices[offset] = c[0]
		r.vertices[offset+1] = c[1]
		r.vertices[offset+2] = c[2]
	}
}

// UpdateBackgroundBuffer flushes the whole host-side vertex array to the
// device. Callers batch any number of color edits behind one call; a no-op
// before InitGrid.
func (r *Renderer) UpdateBackgroundBuffer() {
	if r.gridVbo == 0 || len(r.vertices) == 0 {
		return
	}
	r.dev.BindArrayBuffer(r.gridVbo)
	r.dev.BufferSubData(0, r.vertices)
}

func (r *Renderer) drawBackground() {
	if r.gridProgram == 0 || r.gridVbo == 0 || len(r.vertices) == 0 {
		return
	}
	r.dev.UseProgram(r.gridProgram)
	r.dev.BindArrayBuffer(r.gridVbo)
	aPos := r.dev.AttribLocation(r.gridProgram, "a_position")
	aCol := r.dev.AttribLocation(r.gridProgram, "a_color")
	r.dev.EnableVertexAttrib(aPos)
	r.dev.EnableVertexAttrib(aCol)
	r.dev.VertexAttribPointer(aPos, 2, backgroundStride, 0)
	r.dev.VertexAttribPointer(aCol, 3, backgroundStride, 2*4)
	r.dev.DrawTriangles(0, r.rows*r.cols*6)
	r.dev.DisableVertexAttrib(aPos)
	r.dev.DisableVertexAttrib(aCol)
}

func colorToFloat(c color.Color) [3]float32 {
	if c == nil {
		return [3]float32{}
	}
	cr, cg, cb, _ := c.RGBA()
	const inv = 1.0 / 65535.0
	return [3]float32{
		float32(cr) * inv,
		float32(cg) * inv,
		float32(cb) * inv,
	}
}
