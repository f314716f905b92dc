package cellgrid

import "log"

const textStride = 4 * 4 // x, y, u, v per vertex, in bytes

// SetCellText stores a cell's text, truncated to the per-cell capacity.
// Cells outside the table capacity are a silent no-op: text addressed
// beyond the current grid is harmless and simply never drawn. Runes the
// font lacks are kept verbatim and skipped at layout time.
func (r *Renderer) SetCellText(row, col int, text string) {
	if row < 0 || row >= r.opts.MaxRows || col < 0 || col >= r.opts.MaxCols {
		return
	}
	if len(text) > r.opts.MaxCellLen {
		text = text[:r.opts.MaxCellLen]
	}
	r.cellText[row][col] = text
}

// CellText returns the stored text for a cell, or "" outside capacity.
func (r *Renderer) CellText(row, col int) string {
	if row < 0 || row >= r.opts.MaxRows || col < 0 || col >= r.opts.MaxCols {
		return ""
	}
	return r.cellText[row][col]
}

// drawText rebuilds the glyph batch from scratch and submits it in one
// blended draw call. The batch is derived state; rebuilding it every frame
// means it can never disagree with the text table.
func (r *Renderer) drawText() {
	if r.rows <= 0 {
		return
	}
	if r.textProgram == 0 {
		if r.textTried {
			return
		}
		r.textTried = true
		program, err := r.buildProgram(textVertexSrc, textFragmentSrc)
		if err != nil {
			r.textErr = err
			log.Printf("cellgrid: text program unavailable: %v", err)
			return
		}
		r.textProgram = program
	}
	if r.fontTexture == 0 {
		r.fontTexture = r.dev.CreateAlphaTexture(atlasWidth, atlasHeight, fontAtlasPixels())
	}

	r.textBatch = r.textBatch[:0]
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			text := r.cellText[row][col]
			if text == "" {
				continue
			}
			box := cellToClip(row, col, r.rows, r.cols, r.opts.CellPad)
			r.textBatch = appendCellGlyphs(r.textBatch, box, text)
		}
	}
	if len(r.textBatch) == 0 {
		return
	}

	r.dev.SetBlend(true)
	r.dev.UseProgram(r.textProgram)
	r.dev.BindTexture(r.fontTexture)
	r.dev.Uniform1i(r.dev.UniformLocation(r.textProgram, "u_texture"), 0)
	r.dev.Uniform3f(r.dev.UniformLocation(r.textProgram, "u_color"), 1, 1, 1)

	if r.textVbo == 0 {
		r.textVbo = r.dev.CreateBuffer()
	}
	r.dev.BindArrayBuffer(r.textVbo)
	r.dev.BufferData(r.textBatch)

	aPos := r.dev.AttribLocation(r.textProgram, "a_position")
	aUV := r.dev.AttribLocation(r.textProgram, "a_uv")
	r.dev.EnableVertexAttrib(aPos)
	r.dev.EnableVertexAttrib(aUV)
	r.dev.VertexAttribPointer(aPos, 2, textStride, 0)
	r.dev.VertexAttribPointer(aUV, 2, textStride, 2*4)
	r.dev.DrawTriangles(0, len(r.textBatch)/4)
	r.dev.DisableVertexAttrib(aPos)
	r.dev.DisableVertexAttrib(aUV)

	r.dev.SetBlend(false)
}

// appendCellGlyphs emits two textured triangles per drawable glyph into
// dst. Every character advances the pen, drawable or not; emission stops
// once the next glyph would cross the cell's right edge.
func appendCellGlyphs(dst []float32, box cellBox, text string) []float32 {
	layout := layoutCellText(box, len(text))
	pen := layout.originX
	cy := layout.originY

	for i := 0; i < len(text); i++ {
		idx := glyphIndex(text[i])
		if idx < 0 {
			pen += layout.advance
			continue
		}
		u0, v0, u1, v1 := glyphUV(idx)
		x0, x1 := pen, pen+layout.glyphW
		y0, y1 := cy, cy+layout.glyphH
		dst = append(dst,
			x0, y0, u0, v1,
			x1, y0, u1, v1,
			x1, y1, u1, v0,
			x0, y0, u0, v1,
			x1, y1, u1, v0,
			x0, y1, u0, v0,
		)
		pen += layout.advance
		if pen+layout.glyphW > box.x2 {
			break
		}
	}
	return dst
}
