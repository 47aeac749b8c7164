package static

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// Visible latitude range of the world map, beyond it Mercator blows up
const (
	MinLat = -80.0
	MaxLat = 84.0
)

// Rect is an axis aligned pixel rectangle
type Rect struct {
	X, Y, W, H float64
}

// Projection maps WGS84 coordinates onto a pixel rectangle using web
// Mercator, covering all longitudes and the [MinLat, MaxLat] band.
type Projection struct {
	Frame      Rect
	halfWorld  float64 // mercator x of lng 180
	minY, maxY float64 // mercator y of MinLat and MaxLat
}

// NewProjection fits the world into a frame of the given pixel width at
// (x, y). The frame height follows from the projection's aspect ratio.
func NewProjection(x, y, width float64) *Projection {
	p := &Projection{
		halfWorld: project.WGS84.ToMercator(orb.Point{180, 0})[0],
		minY:      project.WGS84.ToMercator(orb.Point{0, MinLat})[1],
		maxY:      project.WGS84.ToMercator(orb.Point{0, MaxLat})[1],
	}
	p.Frame = Rect{
		X: x,
		Y: y,
		W: width,
		H: width * (p.maxY - p.minY) / (2 * p.halfWorld),
	}
	return p
}

// Contains reports whether the coordinate lies inside the visible band
func (p *Projection) Contains(lng, lat float64) bool {
	return lat >= MinLat && lat <= MaxLat && lng >= -180 && lng <= 180
}

// Point projects lng/lat to pixels. Latitudes outside the visible band are
// clamped onto the frame edge.
func (p *Projection) Point(lng, lat float64) (float64, float64) {
	lat = math.Max(MinLat, math.Min(MaxLat, lat))
	m := project.WGS84.ToMercator(orb.Point{lng, lat})

	x := p.Frame.X + (m[0]+p.halfWorld)/(2*p.halfWorld)*p.Frame.W
	y := p.Frame.Y + (p.maxY-m[1])/(p.maxY-p.minY)*p.Frame.H
	return x, y
}
