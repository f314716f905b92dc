package cellgrid

import "testing"

func TestGlyphIndex(t *testing.T) {
	cases := []struct {
		in   byte
		want int
	}{
		{'0', 0}, {'9', 9},
		{'.', 10}, {'-', 11}, {'+', 12}, {' ', 13},
		{'A', 14}, {'Z', 39},
		{'a', 14}, {'z', 39}, {'c', 16},
		{'#', -1}, {'_', -1}, {'\n', -1},
	}
	for _, c := range cases {
		if got := glyphIndex(c.in); got != c.want {
			t.Errorf("glyphIndex(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestAtlasDimensions(t *testing.T) {
	if atlasWidth != 48 || atlasHeight != 40 {
		t.Fatalf("atlas is %dx%d, want 48x40", atlasWidth, atlasHeight)
	}
	if got := len(fontAtlasPixels()); got != atlasWidth*atlasHeight {
		t.Fatalf("atlas pixel count %d, want %d", got, atlasWidth*atlasHeight)
	}
}

func TestAtlasPixelExpansion(t *testing.T) {
	pixels := fontAtlasPixels()

	// Glyph '1' (slot 1, atlas cell at x=6): top row is 0x04, only the
	// middle column set.
	rowStart := 0*atlasWidth + 1*atlasCellW
	want := []byte{0, 0, 255, 0, 0}
	for x, w := range want {
		if pixels[rowStart+x] != w {
			t.Errorf("glyph '1' top row pixel %d = %d, want %d", x, pixels[rowStart+x], w)
		}
	}

	// Glyph 'Z' (slot 39, atlas cell col 7 row 4): top row 0x1F is solid.
	zStart := 4*atlasCellH*atlasWidth + 7*atlasCellW
	for x := 0; x < glyphCols; x++ {
		if pixels[zStart+x] != 255 {
			t.Errorf("glyph 'Z' top row pixel %d = %d, want 255", x, pixels[zStart+x])
		}
	}

	// The gutter column right of every glyph stays empty.
	for g := 0; g < glyphCount; g++ {
		ox := g%atlasGlyphsPerRow*atlasCellW + glyphCols
		oy := g / atlasGlyphsPerRow * atlasCellH
		for y := 0; y < glyphRows; y++ {
			if pixels[(oy+y)*atlasWidth+ox] != 0 {
				t.Fatalf("glyph %d row %d: gutter pixel set", g, y)
			}
		}
	}
}

func TestGlyphUV(t *testing.T) {
	u0, v0, u1, v1 := glyphUV(0)
	if u0 != 0 || v0 != 0 {
		t.Errorf("glyph 0 starts at (%v,%v), want origin", u0, v0)
	}
	if absDiff(u1, 5.0/48.0) > eps || absDiff(v1, 7.0/40.0) > eps {
		t.Errorf("glyph 0 extent (%v,%v), want (5/48, 7/40)", u1, v1)
	}

	// Slot 9 wraps to atlas column 1, row 1.
	u0, v0, u1, v1 = glyphUV(9)
	if absDiff(u0, 6.0/48.0) > eps || absDiff(v0, 8.0/40.0) > eps {
		t.Errorf("glyph 9 starts at (%v,%v), want (6/48, 8/40)", u0, v0)
	}
	if absDiff(u1, 11.0/48.0) > eps || absDiff(v1, 15.0/40.0) > eps {
		t.Errorf("glyph 9 extent (%v,%v), want (11/48, 15/40)", u1, v1)
	}
}
