package cellgrid

// cellBox is a cell's clip-space rectangle; x1,y1 is the bottom-left
// corner, x2,y2 the top-right.
type cellBox struct {
	x1, y1, x2, y2 float32
}

func (b cellBox) width() float32  { return b.x2 - b.x1 }
func (b cellBox) height() float32 { return b.y2 - b.y1 }

// cellToClip maps a cell to its clip-space quad. Row 0 is the topmost row;
// pad leaves a visible gutter between neighbouring cells.
func cellToClip(row, col, rows, cols int, pad float32) cellBox {
	cellW := 2.0 / float32(cols)
	cellH := 2.0 / float32(rows)
	return cellBox{
		x1: -1 + float32(col)*cellW + pad,
		x2: -1 + float32(col+1)*cellW - pad,
		y1: 1 - float32(row+1)*cellH + pad,
		y2: 1 - float32(row)*cellH - pad,
	}
}

// textLayout places a string of n glyph slots inside a cell. Both the text
// batcher and the cursor derive their geometry from it; keeping the math in
// one place is what keeps the cursor on the character boundary it names.
type textLayout struct {
	glyphW  float32
	glyphH  float32
	advance float32
	originX float32 // left edge of the first glyph slot
	originY float32 // bottom of the glyph box
}

// layoutCellText centers n glyph slots in box. Glyphs take 65% of the cell
// height at the font's 5:7 aspect ratio; the pen advances 0.85 glyph widths
// per slot. Every slot advances the pen, including ones the font cannot
// draw, so cursor positions stay aligned with character indices.
func layoutCellText(box cellBox, n int) textLayout {
	glyphH := box.height() * 0.65
	glyphW := glyphH * (float32(glyphCols) / float32(glyphRows))
	advance := glyphW * 0.85
	totalW := float32(n) * advance
	return textLayout{
		glyphW:  glyphW,
		glyphH:  glyphH,
		advance: advance,
		originX: box.x1 + (box.width()-totalW)*0.5,
		originY: box.y1 + (box.height()-glyphH)*0.5,
	}
}

// slotX returns the left edge of glyph slot i.
func (l textLayout) slotX(i int) float32 {
	return l.originX + float32(i)*l.advance
}
