package interactive

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/ptrciafae/hotels-map/internal/geo"
	"github.com/ptrciafae/hotels-map/internal/hotels"
)

//go:embed assets/map.html.tmpl assets/style.css assets/main.js
var assets embed.FS

var page = template.Must(template.ParseFS(assets, "assets/map.html.tmpl"))

const (
	tileURL         = "https://{s}.basemaps.cartocdn.com/rastertiles/voyager/{z}/{x}/{y}{r}.png"
	tileAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors &copy; <a href="https://carto.com/attributions">CARTO</a>`
)

// fallback view when there is nothing to fit
var worldCentre = [2]float64{20, 0}

// Options controls the interactive map
type Options struct {
	Title  string
	Offset float64 // degrees, displacement of markers sharing coordinates
	Margin float64 // degrees, padding around the marker extent
	Wrap   float64 // degrees of longitude allowed beyond the extent
	Zoom   int
}

// MapConfig is handed to the page script as a JSON literal
type MapConfig struct {
	Center    [2]float64     `json:"center"`
	Zoom      int            `json:"zoom"`
	Bounds    *[2][2]float64 `json:"bounds"`    // [[south, west], [north, east]], nil when empty
	MaxBounds *[2][2]float64 `json:"maxBounds"` // panning limit, full latitude range with the Bounds longitudes
	Tiles     TileConfig     `json:"tiles"`
	Marker    MarkerStyle    `json:"marker"`
	Markers   []Marker       `json:"markers"`
}

type TileConfig struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

type MarkerStyle struct {
	Radius      float64 `json:"radius"`
	Color       string  `json:"color"`
	Weight      int     `json:"weight"`
	Fill        bool    `json:"fill"`
	FillColor   string  `json:"fillColor"`
	FillOpacity float64 `json:"fillOpacity"`
}

type Marker struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Website string  `json:"website"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

var defaultMarkerStyle = MarkerStyle{
	Radius:      4.5,
	Color:       "#fff",
	Weight:      2,
	Fill:        true,
	FillColor:   "#5c6bc0",
	FillOpacity: 0.92,
}

type pageData struct {
	Title  string
	Hotels hotels.Hotels
	Config MapConfig
	Style  template.CSS
	Script template.JS
}

// BuildConfig offsets colliding hotels and computes the map view. Markers
// follow the hotel order.
func BuildConfig(h hotels.Hotels, opts Options) MapConfig {
	spread := h.OffsetDuplicates(opts.Offset)
	points := spread.Points()

	cfg := MapConfig{
		Center:  worldCentre,
		Zoom:    opts.Zoom,
		Tiles:   TileConfig{URL: tileURL, Attribution: tileAttribution},
		Marker:  defaultMarkerStyle,
		Markers: make([]Marker, len(spread)),
	}

	if lat, lng, ok := geo.Centre(points); ok {
		cfg.Center = [2]float64{lat, lng}
	}
	if b, ok := geo.WrapBounds(points, opts.Margin, opts.Wrap); ok {
		cfg.Bounds = &[2][2]float64{
			{b.Min.Lat(), b.Min.Lon()},
			{b.Max.Lat(), b.Max.Lon()},
		}
		cfg.MaxBounds = &[2][2]float64{
			{-90, b.Min.Lon()},
			{90, b.Max.Lon()},
		}
	}

	for i, hotel := range spread {
		cfg.Markers[i] = Marker{
			ID:      hotel.Id,
			Name:    hotel.Name,
			Website: hotel.Website,
			Lat:     hotel.Location.Lat,
			Lng:     hotel.Location.Lng,
		}
	}

	return cfg
}

// Render writes the interactive map page for the hotels
func Render(w io.Writer, h hotels.Hotels, opts Options) error {
	style, err := assets.ReadFile("assets/style.css")
	if err != nil {
		return fmt.Errorf("render interactive: read style: %w", err)
	}
	script, err := assets.ReadFile("assets/main.js")
	if err != nil {
		return fmt.Errorf("render interactive: read script: %w", err)
	}

	data := pageData{
		Title:  opts.Title,
		Hotels: h,
		Config: BuildConfig(h, opts),
		Style:  template.CSS(style),
		Script: template.JS(script),
	}

	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("render interactive: %w", err)
	}
	return nil
}

// WriteFile renders the interactive map into the file at path
func WriteFile(path string, h hotels.Hotels, opts Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return Render(f, h, opts)
}
