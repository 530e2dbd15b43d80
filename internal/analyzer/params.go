package analyzer

// Params carries the tunable thresholds of the detection pipeline.
// The zero value is not useful; start from DefaultParams.
type Params struct {
	// LineMinLength is the minimum stretch of pixels that can make up a
	// rule line.
	LineMinLength int `yaml:"line_min_length"`

	// LineFeaturefulThreshold is the fraction of pixels in a span of
	// LineMinLength pixels that must be featureful for the span to be
	// considered a solid line.
	LineFeaturefulThreshold float64 `yaml:"line_featureful_threshold"`

	// FeatureBoundary is the band along the image border that is ignored
	// during feature detection.
	FeatureBoundary int `yaml:"feature_boundary"`

	// CellMinHeight is the minimum height of a cell.
	CellMinHeight int `yaml:"cell_min_height"`

	// CellMinWidth is the minimum width of a cell.
	CellMinWidth int `yaml:"cell_min_width"`

	// DarknessThreshold is the grayscale channel value at or below which
	// a pixel counts as ink. The comparison is inclusive.
	DarknessThreshold uint8 `yaml:"darkness_threshold"`
}

// DefaultParams returns the thresholds tuned against scanned sports
// result sheets.
func DefaultParams() Params {
	return Params{
		LineMinLength:           50,
		LineFeaturefulThreshold: 0.95,
		FeatureBoundary:         8,
		CellMinHeight:           10,
		CellMinWidth:            8,
		DarknessThreshold:       130,
	}
}
