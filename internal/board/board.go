package board

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/kjkrol/gokgrid/pkg/cellgrid"
)

var (
	upTint       = color.RGBA{R: 0x20, G: 0x9A, B: 0x50, A: 0xFF}
	downTint     = color.RGBA{R: 0xB0, G: 0x38, B: 0x40, A: 0xFF}
	selectedTint = color.RGBA{R: 0x46, G: 0x6E, B: 0xB4, A: 0xFF}
)

type cellRef struct {
	row, col int
}

// Board is the demo host around a grid renderer: a header row, simulated
// prices underneath, click-to-edit with a blinking cursor. It only
// mutates renderer state; the callers decide when to render.
type Board struct {
	grid *cellgrid.Renderer
	rng  *rand.Rand

	prices  [][]float64
	flashed []cellRef

	selRow, selCol int
	editBuf        string
	editOrig       string
	editing        bool
	blinkOn        bool
}

// New populates the grid with column headers and starting prices. The grid
// must already have its shape from InitGrid.
func New(grid *cellgrid.Renderer, seed int64) (*Board, error) {
	rows, cols := grid.Rows(), grid.Cols()
	if rows < 2 || cols < 1 {
		return nil, fmt.Errorf("board needs a header row and data, got %dx%d", rows, cols)
	}
	b := &Board{
		grid:   grid,
		rng:    rand.New(rand.NewSource(seed)),
		selRow: -1,
		selCol: -1,
	}
	b.prices = make([][]float64, rows)
	for row := range b.prices {
		b.prices[row] = make([]float64, cols)
	}
	for col := 0; col < cols; col++ {
		grid.SetCellText(0, col, fmt.Sprintf("COL %d", col+1))
	}
	for row := 1; row < rows; row++ {
		for col := 0; col < cols; col++ {
			price := 50 + b.rng.Float64()*950
			b.prices[row][col] = price
			grid.SetCellText(row, col, fmt.Sprintf("%.2f", price))
		}
	}
	return b, nil
}

// Tick advances the price simulation: last tick's flashes fade back to the
// base tint, then a random subset of data cells moves and flashes green or
// red. One background upload covers all of it.
func (b *Board) Tick() {
	for _, c := range b.flashed {
		if c.row == b.selRow && c.col == b.selCol {
			continue
		}
		_ = b.grid.ResetCellColor(c.row, c.col)
	}
	b.flashed = b.flashed[:0]

	for row := 1; row < b.grid.Rows(); row++ {
		for col := 0; col < b.grid.Cols(); col++ {
			if b.rng.Float64() > 0.2 {
				continue
			}
			if b.editing && row == b.selRow && col == b.selCol {
				continue
			}
			move := (b.rng.Float64() - 0.5) * 0.02
			b.prices[row][col] *= 1 + move
			b.grid.SetCellText(row, col, fmt.Sprintf("%.2f", b.prices[row][col]))
			if row == b.selRow && col == b.selCol {
				continue
			}
			tint := upTint
			if move < 0 {
				tint = downTint
			}
			_ = b.grid.SetCellColor(row, col, tint)
			b.flashed = append(b.flashed, cellRef{row, col})
		}
	}
	b.grid.UpdateBackgroundBuffer()
}

// Click resolves a clip-space point and moves the edit selection there.
// Header cells and misses just drop the current selection.
func (b *Board) Click(clipX, clipY float32) {
	row, col, ok := b.grid.HitTest(clipX, clipY)
	if !ok || row == 0 {
		b.clearSelection(true)
		b.grid.UpdateBackgroundBuffer()
		return
	}
	if b.editing && row == b.selRow && col == b.selCol {
		return
	}
	b.clearSelection(true)

	b.selRow, b.selCol = row, col
	b.editOrig = b.grid.CellText(row, col)
	b.editBuf = b.editOrig
	b.editing = true
	b.blinkOn = true
	_ = b.grid.SetCellColor(row, col, selectedTint)
	b.grid.SetCursor(row, col, len(b.editBuf), true)
	b.grid.UpdateBackgroundBuffer()
}

// Key feeds one key into the edit buffer. Printable characters append,
// Backspace deletes, Enter commits, Escape restores the pre-edit text.
func (b *Board) Key(label string) {
	if !b.editing {
		return
	}
	switch label {
	case "Enter":
		b.clearSelection(false)
		b.grid.UpdateBackgroundBuffer()
	case "Escape":
		b.grid.SetCellText(b.selRow, b.selCol, b.editOrig)
		b.clearSelection(false)
		b.grid.UpdateBackgroundBuffer()
	case "Backspace":
		if len(b.editBuf) > 0 {
			b.editBuf = b.editBuf[:len(b.editBuf)-1]
			b.grid.SetCellText(b.selRow, b.selCol, b.editBuf)
			b.grid.SetCursor(b.selRow, b.selCol, len(b.editBuf), b.blinkOn)
		}
	default:
		if len(label) != 1 {
			return
		}
		b.editBuf += label
		b.grid.SetCellText(b.selRow, b.selCol, b.editBuf)
		b.grid.SetCursor(b.selRow, b.selCol, len(b.editBuf), b.blinkOn)
	}
}

// Blink toggles cursor visibility while an edit is active.
func (b *Board) Blink() {
	if !b.editing {
		return
	}
	b.blinkOn = !b.blinkOn
	b.grid.SetCursor(b.selRow, b.selCol, len(b.editBuf), b.blinkOn)
}

// clearSelection ends the current edit; when revert is false the buffer
// text stays committed in the cell.
func (b *Board) clearSelection(revert bool) {
	if b.selRow >= 0 && b.selCol >= 0 {
		if revert && b.editing {
			b.grid.SetCellText(b.selRow, b.selCol, b.editOrig)
		}
		_ = b.grid.ResetCellColor(b.selRow, b.selCol)
	}
	b.selRow, b.selCol = -1, -1
	b.editing = false
	b.editBuf = ""
	b.editOrig = ""
	b.grid.SetCursor(-1, -1, 0, false)
}
