package geo

import "github.com/paulmach/orb"

const (
	// DefaultMargin is the padding in degrees added around the point extent
	DefaultMargin = 2.0
	// DefaultWrap is the longitude allowance on each side for world wrap
	DefaultWrap = 720.0
)

// Centre returns the mean latitude and longitude of the points.
func Centre(points []Point) (lat, lng float64, ok bool) {
	if len(points) == 0 {
		return 0, 0, false
	}

	for _, p := range points {
		lat += p.Lat
		lng += p.Lng
	}
	n := float64(len(points))
	return lat / n, lng / n, true
}

// WrapBounds returns the extent of the points padded by margin degrees and
// widened by wrap degrees of longitude on both sides, so a tiled world map
// keeps every marker copy inside the view while panning horizontally.
func WrapBounds(points []Point, margin, wrap float64) (orb.Bound, bool) {
	if len(points) == 0 {
		return orb.Bound{}, false
	}

	mp := make(orb.MultiPoint, len(points))
	for i, p := range points {
		mp[i] = p.Orb()
	}

	b := mp.Bound().Pad(margin)
	b.Min[0] -= wrap
	b.Max[0] += wrap
	return b, true
}
