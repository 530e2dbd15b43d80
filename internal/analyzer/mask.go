package analyzer

import (
	"image"
	"image/color"
)

// State classifies a single mask pixel.
type State uint8

const (
	Background State = iota
	Feature
	Line
)

// Marker colors used when a mask is rendered to an image for inspection.
var (
	FeatureColor = color.RGBA{R: 255, B: 255, A: 255} // magenta
	LineColor    = color.RGBA{R: 255, A: 255}         // red
)

// Mask is a width×height grid of States with the origin at the top-left.
// Keeping the classification as an explicit enum (rather than encoding it
// in pixel colors) means a marker can never collide with real image content.
type Mask struct {
	Width  int
	Height int
	states []State
}

// NewMask returns a mask of the given dimensions with every pixel set to
// Background.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		states: make([]State, width*height),
	}
}

func (m *Mask) At(x, y int) State {
	return m.states[y*m.Width+x]
}

func (m *Mask) Set(x, y int, s State) {
	m.states[y*m.Width+x] = s
}

// Image renders the mask as an RGBA image: Background pixels are black,
// everything else takes the given foreground color.
func (m *Mask) Image(fg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	black := color.RGBA{A: 255}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.At(x, y) == Background {
				img.SetRGBA(x, y, black)
			} else {
				img.SetRGBA(x, y, fg)
			}
		}
	}
	return img
}
