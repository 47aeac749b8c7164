package static

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ptrciafae/hotels-map/internal/hotels"
)

// Options controls the static world map
type Options struct {
	Title             string
	Width             int     // px
	BordersPath       string  // geojson override, embedded World when empty. Drawn without borders when unreadable
	SimplifyTolerance float64 // degrees
}

// WriteFiles renders the hotels at their original coordinates into a PNG and
// an SVG file
func WriteFiles(pngPath, svgPath string, h hotels.Hotels, opts Options) error {
	borders, err := LoadBorders(opts.BordersPath, opts.SimplifyTolerance)
	if err != nil {
		log.Printf("warning: drawing map without borders: %v", err)
	}

	scene := BuildScene(h, borders, opts.Width, opts.Title)
	log.Printf("static scene lines=%d dots=%d size=%dx%d", len(scene.Lines), len(scene.Dots), scene.Width, scene.Height)

	if err := writeFile(pngPath, scene, RenderPNG); err != nil {
		return err
	}
	return writeFile(svgPath, scene, RenderSVG)
}

func writeFile(path string, s *Scene, render func(io.Writer, *Scene) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := render(f, s); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}
