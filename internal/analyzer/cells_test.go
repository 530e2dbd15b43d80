package analyzer

import "testing"

// paintRowRule marks a full-width line on row y.
func paintRowRule(m *Mask, y int) {
	for x := 0; x < m.Width; x++ {
		m.Set(x, y, Line)
	}
}

// paintColumnRule marks a full-height line on column x.
func paintColumnRule(m *Mask, x int) {
	for y := 0; y < m.Height; y++ {
		m.Set(x, y, Line)
	}
}

// gridMask builds a 200×150 line mask with three row rules and two column
// rules: a 4×3 grid once the image borders close the last row and column.
func gridMask() *Mask {
	m := NewMask(200, 150)
	for _, y := range []int{20, 70, 120} {
		paintRowRule(m, y)
	}
	for _, x := range []int{60, 130} {
		paintColumnRule(m, x)
	}
	return m
}

func TestDetectCellsGrid(t *testing.T) {
	p := DefaultParams()
	cells := DetectCells(gridMask(), p)

	if len(cells) != 12 {
		t.Fatalf("expected 12 cells, got %d", len(cells))
	}

	// First row sits above the rule at y=20 and is closed by it.
	first := cells[0]
	if first.Row != 0 || first.Col != 0 || first.X != 0 || first.Y != 0 {
		t.Errorf("unexpected first cell: %+v", first)
	}
	if first.Width != 59 || first.Height != 19 {
		t.Errorf("first cell box: got %dx%d, want 59x19", first.Width, first.Height)
	}

	// Last cell of the last row is closed by the right image border.
	last := cells[len(cells)-1]
	if last.Row != 3 || last.Col != 2 {
		t.Errorf("unexpected last cell position: %+v", last)
	}
	if last.X != 131 || last.Width != 68 {
		t.Errorf("last cell box: got x=%d w=%d, want x=131 w=68", last.X, last.Width)
	}
}

func TestCellOrderingAndBoxes(t *testing.T) {
	p := DefaultParams()
	m := gridMask()
	cells := DetectCells(m, p)

	prevRow, prevCol := 0, -1
	rowY := map[int]int{}
	rowHeight := map[int]int{}

	for _, c := range cells {
		if c.Row < prevRow {
			t.Fatalf("row order broken at %+v", c)
		}
		if c.Row == prevRow {
			if c.Col != prevCol+1 {
				t.Fatalf("column order broken at %+v", c)
			}
		} else if c.Col != 0 {
			t.Fatalf("column numbering did not reset at %+v", c)
		}
		prevRow, prevCol = c.Row, c.Col

		if y, ok := rowY[c.Row]; ok && (y != c.Y || rowHeight[c.Row] != c.Height) {
			t.Fatalf("cell %+v disagrees with its row's vertical extent", c)
		}
		rowY[c.Row], rowHeight[c.Row] = c.Y, c.Height

		if c.X < 0 || c.Y < 0 || c.X+c.Width > m.Width || c.Y+c.Height > m.Height {
			t.Fatalf("cell %+v outside the image", c)
		}
	}
}

func TestSkipWindowOnThickRule(t *testing.T) {
	p := DefaultParams()
	m := NewMask(100, 40)

	// A rule several pixels thick must produce one boundary, not a train
	// of zero-width cells.
	for x := 50; x <= 53; x++ {
		paintColumnRule(m, x)
	}

	cells := DetectCells(m, p)

	if len(cells) != 2 {
		t.Fatalf("expected 2 cells around the thick rule, got %d", len(cells))
	}
	if cells[0].Width != 49 {
		t.Errorf("left cell width: got %d, want 49", cells[0].Width)
	}
	if cells[1].X != 51 || cells[1].Width != 48 {
		t.Errorf("right cell: got x=%d w=%d, want x=51 w=48", cells[1].X, cells[1].Width)
	}
}

func TestThinBottomStripDropped(t *testing.T) {
	p := DefaultParams()
	m := NewMask(100, 100)
	paintRowRule(m, 95)

	cells := DetectCells(m, p)

	if len(cells) != 1 {
		t.Fatalf("expected 1 cell, got %d", len(cells))
	}
	if cells[0].Height != 94 {
		t.Errorf("cell height: got %d, want 94", cells[0].Height)
	}
	for _, c := range cells {
		if c.Y > 0 {
			t.Errorf("strip below the last rule should have been dropped: %+v", c)
		}
	}
}

func TestDegenerateTinyMask(t *testing.T) {
	p := DefaultParams()
	cells := DetectCells(NewMask(6, 6), p)

	if len(cells) != 0 {
		t.Errorf("tiny mask produced %d cells, want none", len(cells))
	}
}
