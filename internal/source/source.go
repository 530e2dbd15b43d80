package source

import (
	"image"

	"github.com/gen2brain/go-fitz"
)

// Source yields document pages as raster images.
type Source interface {
	PageCount() int
	// RenderPage rasterizes the page at the given index. The DPI is only
	// meaningful for vector-backed sources.
	RenderPage(index int, dpi int) (image.Image, error)
	Close() error
}

// FitzPDFSource renders PDF pages through MuPDF. Scanned tables often
// arrive wrapped in a PDF rather than as a bare image file.
type FitzPDFSource struct {
	doc *fitz.Document
}

func NewFitzPDFSource(path string) (*FitzPDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &FitzPDFSource{doc: doc}, nil
}

func (f *FitzPDFSource) PageCount() int {
	return f.doc.NumPage()
}

func (f *FitzPDFSource) RenderPage(index int, dpi int) (image.Image, error) {
	return f.doc.ImageDPI(index, float64(dpi))
}

func (f *FitzPDFSource) Close() error {
	return f.doc.Close()
}
