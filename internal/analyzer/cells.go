package analyzer

// Cell is one rectangular unit of the detected table grid.
type Cell struct {
	// Row and Col are zero-based grid coordinates. Column numbering is
	// per row; different rows may have different column counts.
	Row int
	Col int

	// Bounding box in the source image's pixel coordinates.
	X      int
	Y      int
	Width  int
	Height int
}

// detectCellsInRow marches rightward along one row of the line mask and
// appends a Cell for every column it closes.
func detectCellsInRow(acc []Cell, lines *Mask, row, yTop, yBottom int, p Params) []Cell {
	width := lines.Width

	// All cells in the row share the same vertical extent. The rule pixel
	// row itself is excluded.
	cellY := yTop
	cellHeight := yBottom - yTop - 1

	// Vertical rules are sampled halfway down the row.
	yMedian := cellY + cellHeight/2

	col := 0
	prevX := 0
	x := p.CellMinWidth - 1

	for x < width {
		if lines.At(x, yMedian) != Background {
			acc = append(acc, Cell{
				Row:    row,
				Col:    col,
				X:      prevX,
				Y:      cellY,
				Width:  x - prevX - 1,
				Height: cellHeight,
			})

			prevX = x + 1
			col++

			// Skip window: a painted rule is thicker than one pixel
			// and must not register as several zero-width columns.
			x += p.CellMinWidth
		} else {
			x++
		}
	}

	// The image's right edge closes the final cell.
	if prevX+p.CellMinWidth < width {
		acc = append(acc, Cell{
			Row:    row,
			Col:    col,
			X:      prevX,
			Y:      cellY,
			Width:  width - prevX - 1,
			Height: cellHeight,
		})
	}

	return acc
}

// DetectCells walks a line mask and returns the table cells it describes,
// ordered by (row, col). Rows shorter than CellMinHeight are dropped.
func DetectCells(lines *Mask, p Params) []Cell {
	height := lines.Height

	var cells []Cell

	row := 0
	prevY := 0

	// Row rules were extended to the left wall, so the leftmost column of
	// pixels is enough to find row boundaries. The bottom border counts
	// as an implicit rule.
	y := p.CellMinHeight - 1
	for y < height {
		if lines.At(0, y) != Background || y == height-1 {
			cells = detectCellsInRow(cells, lines, row, prevY, y, p)

			prevY = y + 1
			y += p.CellMinHeight
			row++
		} else {
			y++
		}
	}

	// A trailing strip tall enough to be a row is closed by the image's
	// bottom edge.
	if prevY+p.CellMinHeight < height {
		cells = detectCellsInRow(cells, lines, row, prevY, height-1, p)
	}

	return cells
}
