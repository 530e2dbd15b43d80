package analyzer

import "image"

// Detector is the interface for table-structure recovery strategies.
type Detector interface {
	Detect(img image.Image) ([]Cell, error)
}

// GridDetector recovers the cell grid of a ruled table in three passes:
// feature classification, rule line detection, cell segmentation. Each
// pass is a pure function of the previous pass's full output.
type GridDetector struct {
	Params Params
}

// NewGridDetector returns a GridDetector with the default thresholds.
func NewGridDetector() *GridDetector {
	return &GridDetector{Params: DefaultParams()}
}

// Detect returns the cells of the table depicted in img, ordered by
// (row, col).
func (d *GridDetector) Detect(img image.Image) ([]Cell, error) {
	features := DetectFeatures(img, d.Params)
	lines := DetectLines(features, d.Params)
	return DetectCells(lines, d.Params), nil
}
