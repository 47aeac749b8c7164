package static

import (
	"image/color"

	"github.com/paulmach/orb"

	"github.com/ptrciafae/hotels-map/internal/hotels"
)

// reference width the stroke and marker sizes below are tuned for
const referenceWidth = 3200.0

var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorBorder     = color.RGBA{0, 0, 0, 255}
	colorHotel      = color.RGBA{255, 0, 0, 255}
	colorTitle      = color.RGBA{0, 0, 0, 255}
)

// Scene is the pixel space drawing shared by the PNG and SVG renderers
type Scene struct {
	Width, Height int
	Title         string
	TitleSize     float64   // px
	TitleBaseline float64   // px from the top
	Frame         Rect      // map area
	Lines         [][]Pixel // borders and coastlines
	Dots          []Pixel   // one per plotted hotel
	LineWidth     float64   // px
	DotRadius     float64   // px
}

// Pixel is a point in image coordinates
type Pixel struct {
	X, Y float64
}

// BuildScene lays out the title band and the world map, projecting borders
// and hotel coordinates as given. Hotels outside the visible latitude band
// are not plotted.
func BuildScene(h hotels.Hotels, borders []orb.LineString, width int, title string) *Scene {
	scale := float64(width) / referenceWidth
	pad := 20 * scale
	titleSize := 50 * scale

	titleBand := 0.0
	if title != "" {
		titleBand = titleSize * 2
	}

	proj := NewProjection(pad, pad+titleBand, float64(width)-2*pad)

	s := &Scene{
		Width:         width,
		Height:        int(proj.Frame.Y + proj.Frame.H + pad + 0.5),
		Title:         title,
		TitleSize:     titleSize,
		TitleBaseline: pad + titleSize*1.25,
		Frame:         proj.Frame,
		LineWidth:     1.4 * scale,
		DotRadius:     5.5 * scale,
	}

	for _, ls := range borders {
		if len(ls) < 2 {
			continue
		}
		line := make([]Pixel, len(ls))
		for i, pt := range ls {
			x, y := proj.Point(pt.Lon(), pt.Lat())
			line[i] = Pixel{X: x, Y: y}
		}
		s.Lines = append(s.Lines, line)
	}

	for _, hotel := range h {
		if !proj.Contains(hotel.Location.Lng, hotel.Location.Lat) {
			continue
		}
		x, y := proj.Point(hotel.Location.Lng, hotel.Location.Lat)
		s.Dots = append(s.Dots, Pixel{X: x, Y: y})
	}

	return s
}
