package analyzer

// isLineToRight reports whether the LineMinLength pixels starting at (x, y)
// and extending rightward are featureful enough to form a solid line.
// The caller must guarantee x+LineMinLength <= width.
func isLineToRight(features *Mask, x, y int, p Params) bool {
	count := 0
	for k := x; k < x+p.LineMinLength; k++ {
		if features.At(k, y) != Background {
			count++
		}
	}
	return float64(count)/float64(p.LineMinLength) >= p.LineFeaturefulThreshold
}

// isLineDownward is the vertical counterpart of isLineToRight.
// The caller must guarantee y+LineMinLength <= height.
func isLineDownward(features *Mask, x, y int, p Params) bool {
	count := 0
	for k := y; k < y+p.LineMinLength; k++ {
		if features.At(x, k) != Background {
			count++
		}
	}
	return float64(count)/float64(p.LineMinLength) >= p.LineFeaturefulThreshold
}

// closeLeftMargin extends detected row rules back across the suppressed
// left border band, so that the segmenter can treat the image's left wall
// as an implicit rule. A row is closed when the pixel just past the band
// is a line pixel.
//
// Known approximation: a genuine rule whose detected start sits more than
// one pixel past the band is not closed, and its row is lost.
func closeLeftMargin(lines *Mask, p Params) {
	if lines.Width <= p.FeatureBoundary+1 {
		return
	}
	for y := 0; y < lines.Height; y++ {
		if lines.At(p.FeatureBoundary+1, y) != Background {
			for x := 0; x <= p.FeatureBoundary; x++ {
				lines.Set(x, y, Line)
			}
		}
	}
}

// DetectLines reduces a feature mask to the pixels that sit on straight
// rule lines. Lines are always scanned to the right or downward; a feature
// pixel can seed both directions, and painting is purely additive.
func DetectLines(features *Mask, p Params) *Mask {
	width, height := features.Width, features.Height
	lines := NewMask(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if features.At(x, y) == Background {
				continue
			}

			if x < width-p.LineMinLength && isLineToRight(features, x, y, p) {
				for k := x; k < x+p.LineMinLength; k++ {
					lines.Set(k, y, Line)
				}
			}

			if y < height-p.LineMinLength && isLineDownward(features, x, y, p) {
				for k := y; k < y+p.LineMinLength; k++ {
					lines.Set(x, k, Line)
				}
			}
		}
	}

	closeLeftMargin(lines, p)

	return lines
}
