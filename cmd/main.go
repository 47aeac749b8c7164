package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ptrciafae/hotels-map/internal/config"
	"github.com/ptrciafae/hotels-map/internal/hotels"
	"github.com/ptrciafae/hotels-map/internal/mapper"
	"github.com/ptrciafae/hotels-map/internal/platform/obs"
	"github.com/ptrciafae/hotels-map/internal/render/interactive"
	"github.com/ptrciafae/hotels-map/internal/render/static"
)

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		fmt.Printf("error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) (err error) {
	defer obs.Time("run")(&err)

	mappingConfig := mapper.DefaultMapping
	if cfg.Input.MappingPath != "" {
		mappingConfig, err = os.ReadFile(cfg.Input.MappingPath)
		if err != nil {
			return fmt.Errorf("error reading mapping file: %w", err)
		}
	}

	engine, err := mapper.NewMappingEngine(mappingConfig)
	if err != nil {
		return fmt.Errorf("error creating mapping engine: %w", err)
	}

	list, err := loadHotels(cfg, engine)
	if err != nil {
		return err
	}

	if err := renderInteractive(cfg, list); err != nil {
		return err
	}
	log.Printf("Interactive map saved as %s", cfg.Interactive.Output)

	if err := renderStatic(cfg, list); err != nil {
		return err
	}
	log.Printf("Static map saved as %s and %s", cfg.Static.PNGOutput, cfg.Static.SVGOutput)

	return nil
}

func loadHotels(cfg config.Config, engine *mapper.MappingEngine) (_ hotels.Hotels, err error) {
	defer obs.Time("hotels.load")(&err)
	return hotels.Load(cfg.Input.Path, cfg.Input.Sheet, engine)
}

func renderInteractive(cfg config.Config, list hotels.Hotels) (err error) {
	defer obs.Time("render.interactive")(&err)
	return interactive.WriteFile(cfg.Interactive.Output, list, interactive.Options{
		Title:  cfg.Interactive.Title,
		Offset: cfg.Interactive.Offset,
		Margin: cfg.Interactive.Margin,
		Wrap:   cfg.Interactive.Wrap,
		Zoom:   cfg.Interactive.Zoom,
	})
}

// the static map plots original coordinates, no offset pass
func renderStatic(cfg config.Config, list hotels.Hotels) (err error) {
	defer obs.Time("render.static")(&err)
	return static.WriteFiles(cfg.Static.PNGOutput, cfg.Static.SVGOutput, list, static.Options{
		Title:             cfg.Static.Title,
		Width:             cfg.Static.Width,
		BordersPath:       cfg.Static.BordersPath,
		SimplifyTolerance: cfg.Static.SimplifyTolerance,
	})
}
