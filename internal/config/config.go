package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ptrciafae/hotels-map/internal/geo"
)

// DefaultPath is the optional config file looked up in the working directory
const DefaultPath = "hotelsmap.yaml"

// Config holds every knob of a run. The zero-config run uses Default().
type Config struct {
	Input struct {
		Path        string `yaml:"path"`         // hotels table, .csv or .xlsx
		Sheet       string `yaml:"sheet"`        // xlsx sheet name, first sheet when empty
		MappingPath string `yaml:"mapping_path"` // column mapping json, embedded default when empty
	} `yaml:"input"`
	Interactive struct {
		Output string  `yaml:"output"`
		Title  string  `yaml:"title"`
		Offset float64 `yaml:"offset"` // degrees, displacement of colliding markers
		Margin float64 `yaml:"margin"` // degrees, padding around the marker extent
		Wrap   float64 `yaml:"wrap"`   // degrees of longitude allowed beyond the extent
		Zoom   int     `yaml:"zoom"`
	} `yaml:"interactive"`
	Static struct {
		PNGOutput         string  `yaml:"png_output"`
		SVGOutput         string  `yaml:"svg_output"`
		Title             string  `yaml:"title"`
		Width             int     `yaml:"width"`
		BordersPath       string  `yaml:"borders_path"`       // geojson with country borders and coastlines, built-in world when empty
		SimplifyTolerance float64 `yaml:"simplify_tolerance"` // degrees, 0 disables simplification
	} `yaml:"static"`
}

// Default returns the fixed settings used when no config file is present.
func Default() Config {
	var c Config

	c.Input.Path = "hotels.csv"

	c.Interactive.Output = "hotels_interactive_map.html"
	c.Interactive.Title = "Top 50 Hotels Interactive Map"
	c.Interactive.Offset = geo.DefaultOffset
	c.Interactive.Margin = geo.DefaultMargin
	c.Interactive.Wrap = geo.DefaultWrap
	c.Interactive.Zoom = 2

	c.Static.PNGOutput = "hotels_map.png"
	c.Static.SVGOutput = "hotels_map.svg"
	c.Static.Title = "Top 50 Hotels of the World by Location"
	c.Static.Width = 3200
	c.Static.SimplifyTolerance = 0.05

	return c
}

// Load overlays the YAML file at path onto Default(). A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}

	if cfg.Static.Width <= 0 {
		return Config{}, fmt.Errorf("parse config %q: static.width must be positive, got %d", path, cfg.Static.Width)
	}

	return cfg, nil
}
