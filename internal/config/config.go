package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avolkov/img2table/internal/analyzer"
)

// Config carries the runtime options resolved from the command line.
type Config struct {
	InputPath  string
	OutputDir  string
	Variant    string
	TuningPath string
	Page       int
	DPI        int
	Workers    int
	Debug      bool
	ShowStats  bool
}

// LoadParams reads a YAML tuning profile. Fields absent from the file keep
// their default values, so a profile only needs to name the thresholds it
// changes.
func LoadParams(path string) (analyzer.Params, error) {
	p := analyzer.DefaultParams()

	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse tuning profile %s: %w", path, err)
	}

	return p, nil
}

// SaveParams writes a tuning profile to a YAML file.
func SaveParams(p analyzer.Params, path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
