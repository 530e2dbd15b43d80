package analyzer

import "fmt"

// NewDetector creates a detector based on the specified variant.
func NewDetector(variant string, p Params) (Detector, error) {
	switch variant {
	case "grid", "":
		return &GridDetector{Params: p}, nil
	case "words":
		// Stroke-width word-region refinement within detected cells.
		return nil, fmt.Errorf("words detector not yet implemented")
	default:
		return nil, fmt.Errorf("unknown detector variant: %s", variant)
	}
}
