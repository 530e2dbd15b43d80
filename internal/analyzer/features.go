package analyzer

import (
	"image"
	"image/color"
)

// toGrayscale converts an image to grayscale.
func toGrayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}

	return gray
}

// DetectFeatures classifies every pixel of the image as Feature (candidate
// rule or text ink) or Background. Classification happens on the grayscale
// version of the image: anything at or below the darkness threshold is a
// feature. Assumes the text and lines are dark on a light background.
func DetectFeatures(img image.Image, p Params) *Mask {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	gray := toGrayscale(img)

	features := NewMask(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y <= p.DarknessThreshold {
				features.Set(x, y, Feature)
			}
		}
	}

	if width < p.FeatureBoundary || height < p.FeatureBoundary {
		return features
	}

	// Scanner edges and physical paper borders are non-informative and
	// otherwise register as spurious lines. Wipe the band along each side.
	suppress := func(x0, y0, x1, y1 int) {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				features.Set(x, y, Background)
			}
		}
	}
	suppress(0, 0, min(p.FeatureBoundary, width), height)
	suppress(width-p.FeatureBoundary, 0, width, height)
	suppress(0, 0, width, min(p.FeatureBoundary, height))
	suppress(0, height-p.FeatureBoundary, width, height)

	return features
}
