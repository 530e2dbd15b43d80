package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/avolkov/img2table/internal/analyzer"
	"github.com/avolkov/img2table/internal/config"
	"github.com/avolkov/img2table/internal/export"
	"github.com/avolkov/img2table/internal/source"
	"github.com/avolkov/img2table/internal/system"
)

func main() {
	system.InitResourceLimits()

	outPtr := flag.String("out", ".", "Directory for the per-cell crops")
	variantPtr := flag.String("detector", "grid", "Detector variant")
	tuningPtr := flag.String("tuning", "", "Path to a YAML tuning profile")
	debugPtr := flag.Bool("debug", false, "Also write the feature and line masks (features.png, lines.png)")
	pagePtr := flag.Int("page", 0, "Page index for PDF input")
	dpiPtr := flag.Int("dpi", 300, "Render DPI for PDF input")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Parallel crop writers")
	statsPtr := flag.Bool("stats", false, "Print a resource usage report")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("[-] Missing filename argument.")
	}

	cfg := &config.Config{
		InputPath:  flag.Arg(0),
		OutputDir:  *outPtr,
		Variant:    *variantPtr,
		TuningPath: *tuningPtr,
		Page:       *pagePtr,
		DPI:        *dpiPtr,
		Workers:    *workersPtr,
		Debug:      *debugPtr,
		ShowStats:  *statsPtr,
	}

	if err := run(cfg); err != nil {
		log.Fatalf("[-] %v", err)
	}
}

func run(cfg *config.Config) error {
	params := analyzer.DefaultParams()
	if cfg.TuningPath != "" {
		var err error
		params, err = config.LoadParams(cfg.TuningPath)
		if err != nil {
			return err
		}
	}

	det, err := analyzer.NewDetector(cfg.Variant, params)
	if err != nil {
		return err
	}

	src, err := openSource(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", cfg.InputPath, err)
	}
	defer src.Close()

	if cfg.Page < 0 || cfg.Page >= src.PageCount() {
		return fmt.Errorf("page %d out of range: %s has %d page(s)", cfg.Page, cfg.InputPath, src.PageCount())
	}

	img, err := src.RenderPage(cfg.Page, cfg.DPI)
	if err != nil {
		return fmt.Errorf("render %s page %d: %w", cfg.InputPath, cfg.Page, err)
	}

	start := time.Now()

	var cells []analyzer.Cell
	if grid, ok := det.(*analyzer.GridDetector); ok && cfg.Debug {
		// Run the stages by hand so the intermediate masks can be dumped.
		features := analyzer.DetectFeatures(img, grid.Params)
		lines := analyzer.DetectLines(features, grid.Params)
		cells = analyzer.DetectCells(lines, grid.Params)

		if err := export.WriteMaskPNG(features, analyzer.FeatureColor, export.FeatureMaskFile); err != nil {
			return err
		}
		if err := export.WriteMaskPNG(lines, analyzer.LineColor, export.LineMaskFile); err != nil {
			return err
		}
	} else {
		cells, err = det.Detect(img)
		if err != nil {
			return err
		}
	}

	fmt.Printf("[*] %s: %d cells in %s\n",
		filepath.Base(cfg.InputPath), len(cells), time.Since(start).Round(time.Millisecond))

	writer := &export.CellWriter{Workers: cfg.Workers}
	if err := writer.WriteCrops(img, cells, cfg.OutputDir); err != nil {
		return err
	}

	if cfg.ShowStats {
		report, err := system.ResourceReport()
		if err != nil {
			log.Printf("[!] resource report unavailable: %v", err)
		} else {
			fmt.Printf("[*] %s\n", report)
		}
	}

	return nil
}

func openSource(path string) (source.Source, error) {
	if strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return source.NewFitzPDFSource(path)
	}
	return source.NewImageSource(path)
}
