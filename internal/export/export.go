package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/avolkov/img2table/internal/analyzer"
)

// Fixed filenames for the debug mask dumps.
const (
	FeatureMaskFile = "features.png"
	LineMaskFile    = "lines.png"
)

// WriteMaskPNG renders a mask with the given foreground color and writes
// it as a PNG file.
func WriteMaskPNG(m *analyzer.Mask, fg color.RGBA, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, m.Image(fg)); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}

// CellWriter writes one grayscale crop of the source image per detected
// cell, named {row}-{col}.png.
type CellWriter struct {
	// Workers bounds the number of crops encoded concurrently.
	// Zero or negative means no bound.
	Workers int
}

// WriteCrops writes every cell's crop into dir. Crops are independent of
// one another, so they are encoded by a bounded worker pool; the set of
// files produced is identical to a sequential run. The first error aborts
// the export.
func (w *CellWriter) WriteCrops(img image.Image, cells []analyzer.Cell, dir string) error {
	var g errgroup.Group
	if w.Workers > 0 {
		g.SetLimit(w.Workers)
	}

	for _, cell := range cells {
		g.Go(func() error {
			crop := grayCrop(img, cell)
			path := filepath.Join(dir, fmt.Sprintf("%d-%d.png", cell.Row, cell.Col))

			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := png.Encode(f, crop); err != nil {
				f.Close()
				return fmt.Errorf("encode %s: %w", path, err)
			}
			return f.Close()
		})
	}

	return g.Wait()
}

// grayCrop extracts the cell's bounding box from the source image as a
// grayscale image.
func grayCrop(img image.Image, c analyzer.Cell) *image.Gray {
	origin := img.Bounds().Min
	out := image.NewGray(image.Rect(0, 0, c.Width, c.Height))

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			out.Set(x, y, color.GrayModel.Convert(img.At(origin.X+c.X+x, origin.Y+c.Y+y)))
		}
	}

	return out
}
