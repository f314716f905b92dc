package cellgrid

type cursorState struct {
	row     int
	col     int
	charPos int
	visible bool
}

// SetCursor records the edit cursor's cell, character slot and visibility.
// Nothing is drawn until the next Render; blink timers toggle visible and
// trigger redraws without touching any other state. Row or col of -1
// clears the cursor.
func (r *Renderer) SetCursor(row, col, charPos int, visible bool) {
	r.cursor = cursorState{row: row, col: col, charPos: charPos, visible: visible}
}

// drawCursor places a thin bar at the cursor's character boundary. The bar
// derives its position from the same layout as the cell's glyphs; charPos
// equal to the text length lands immediately after the last one.
func (r *Renderer) drawCursor() {
	cur := r.cursor
	if !cur.visible || cur.row < 0 || cur.col < 0 {
		return
	}
	if cur.row >= r.rows || cur.col >= r.cols || r.gridProgram == 0 {
		return
	}

	box := cellToClip(cur.row, cur.col, r.rows, r.cols, r.opts.CellPad)
	layout := layoutCellText(box, len(r.cellText[cur.row][cur.col]))
	cx := layout.slotX(cur.charPos)
	barW := layout.glyphW * 0.15
	y0, y1 := layout.originY, layout.originY+layout.glyphH

	verts := []float32{
		cx, y0, 1, 1, 1,
		cx + barW, y0, 1, 1, 1,
		cx + barW, y1, 1, 1, 1,
		cx, y0, 1, 1, 1,
		cx + barW, y1, 1, 1, 1,
		cx, y1, 1, 1, 1,
	}

	r.dev.UseProgram(r.gridProgram)
	if r.cursorVbo == 0 {
		r.cursorVbo = r.dev.CreateBuffer()
	}
	r.dev.BindArrayBuffer(r.cursorVbo)
	r.dev.BufferData(verts)

	aPos := r.dev.AttribLocation(r.gridProgram, "a_position")
	aCol := r.dev.AttribLocation(r.gridProgram, "a_color")
	r.dev.EnableVertexAttrib(aPos)
	r.dev.EnableVertexAttrib(aCol)
	r.dev.VertexAttribPointer(aPos, 2, backgroundStride, 0)
	r.dev.VertexAttribPointer(aCol, 3, backgroundStride, 2*4)
	r.dev.DrawTriangles(0, 6)
	r.dev.DisableVertexAttrib(aPos)
	r.dev.DisableVertexAttrib(aCol)
}
