package cellgrid

// 5x7 bitmap font. Each glyph is seven row bytes, low five bits are the
// pixels, bit 4 is the leftmost column. The alphabet covers digits,
// '.', '-', '+', space and A-Z; lowercase letters fold onto uppercase.
const (
	glyphCols  = 5
	glyphRows  = 7
	glyphCount = 40

	atlasGlyphsPerRow = 8
	atlasCellW        = glyphCols + 1
	atlasCellH        = glyphRows + 1
	atlasWidth        = atlasGlyphsPerRow * atlasCellW
	atlasHeight       = (glyphCount + atlasGlyphsPerRow - 1) / atlasGlyphsPerRow * atlasCellH
)

var font5x7 = [glyphCount][glyphRows]byte{
	{0x0E, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0E}, // 0
	{0x04, 0x0C, 0x04, 0x04, 0x04, 0x04, 0x0E}, // 1
	{0x0E, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1F}, // 2
	{0x0E, 0x11, 0x01, 0x06, 0x01, 0x11, 0x0E}, // 3
	{0x02, 0x06, 0x0A, 0x12, 0x1F, 0x02, 0x02}, // 4
	{0x1F, 0x10, 0x1E, 0x01, 0x01, 0x11, 0x0E}, // 5
	{0x06, 0x08, 0x10, 0x1E, 0x11, 0x11, 0x0E}, // 6
	{0x1F, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08}, // 7
	{0x0E, 0x11, 0x11, 0x0E, 0x11, 0x11, 0x0E}, // 8
	{0x0E, 0x11, 0x11, 0x0F, 0x01, 0x02, 0x0C}, // 9
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x0C}, // .
	{0x00, 0x00, 0x00, 0x1F, 0x00, 0x00, 0x00}, // -
	{0x00, 0x04, 0x04, 0x1F, 0x04, 0x04, 0x00}, // +
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // space
	{0x0E, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11}, // A
	{0x1E, 0x11, 0x11, 0x1E, 0x11, 0x11, 0x1E}, // B
	{0x0E, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0E}, // C
	{0x1E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x1E}, // D
	{0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x1F}, // E
	{0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x10}, // F
	{0x0E, 0x11, 0x10, 0x17, 0x11, 0x11, 0x0F}, // G
	{0x11, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11}, // H
	{0x0E, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E}, // I
	{0x07, 0x02, 0x02, 0x02, 0x02, 0x12, 0x0C}, // J
	{0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11}, // K
	{0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1F}, // L
	{0x11, 0x1B, 0x15, 0x15, 0x11, 0x11, 0x11}, // M
	{0x11, 0x19, 0x15, 0x13, 0x11, 0x11, 0x11}, // N
	{0x0E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E}, // O
	{0x1E, 0x11, 0x11, 0x1E, 0x10, 0x10, 0x10}, // P
	{0x0E, 0x11, 0x11, 0x11, 0x15, 0x12, 0x0D}, // Q
	{0x1E, 0x11, 0x11, 0x1E, 0x14, 0x12, 0x11}, // R
	{0x0E, 0x11, 0x10, 0x0E, 0x01, 0x11, 0x0E}, // S
	{0x1F, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04}, // T
	{0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E}, // U
	{0x11, 0x11, 0x11, 0x11, 0x0A, 0x0A, 0x04}, // V
	{0x11, 0x11, 0x11, 0x15, 0x15, 0x1B, 0x11}, // W
	{0x11, 0x11, 0x0A, 0x04, 0x0A, 0x11, 0x11}, // X
	{0x11, 0x11, 0x0A, 0x04, 0x04, 0x04, 0x04}, // Y
	{0x1F, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1F}, // Z
}

// glyphIndex maps a byte to its slot in the atlas, or -1 when the font has
// no glyph for it.
func glyphIndex(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c == '.':
		return 10
	case c == '-':
		return 11
	case c == '+':
		return 12
	case c == ' ':
		return 13
	case c >= 'A' && c <= 'Z':
		return 14 + int(c-'A')
	case c >= 'a' && c <= 'z':
		return 14 + int(c-'a')
	}
	return -1
}

// fontAtlasPixels expands the bit patterns into a single-channel image,
// one glyph per 6x8 atlas cell with a one pixel gutter.
func fontAtlasPixels() []byte {
	pixels := make([]byte, atlasWidth*atlasHeight)
	for g := 0; g < glyphCount; g++ {
		ox := g % atlasGlyphsPerRow * atlasCellW
		oy := g / atlasGlyphsPerRow * atlasCellH
		for y := 0; y < glyphRows; y++ {
			bits := font5x7[g][y]
			for x := 0; x < glyphCols; x++ {
				if bits&(1<<(glyphCols-1-x)) != 0 {
					pixels[(oy+y)*atlasWidth+ox+x] = 255
				}
			}
		}
	}
	return pixels
}

// glyphUV returns the atlas sub-rectangle for a glyph slot. v0 is the top
// of the glyph; callers map it to the quad's upper edge because texture
// rows grow downward while clip-space y grows upward.
func glyphUV(idx int) (u0, v0, u1, v1 float32) {
	col := idx % atlasGlyphsPerRow
	row := idx / atlasGlyphsPerRow
	u0 = float32(col*atlasCellW) / atlasWidth
	u1 = float32(col*atlasCellW+glyphCols) / atlasWidth
	v0 = float32(row*atlasCellH) / atlasHeight
	v1 = float32(row*atlasCellH+glyphRows) / atlasHeight
	return u0, v0, u1, v1
}
