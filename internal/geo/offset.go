package geo

import "math"

// DefaultOffset is the displacement in degrees applied to colliding points
const DefaultOffset = 0.01

type coordKey struct {
	lat, lng float64
}

// OffsetDuplicates spreads points that share equal coordinates
// evenly around a circle of radius offset centered on the shared coordinate.
// Points with unique or NaN coordinates are returned untouched. The input
// slice is never modified.
func OffsetDuplicates(points []Point, offset float64) []Point {
	out := make([]Point, len(points))
	copy(out, points)

	// group indexes by equal coordinates, keeping input order inside groups.
	// Float keys compare with ==, so 0 and -0 share a group and NaN never does.
	groups := make(map[coordKey][]int)
	for i, p := range points {
		if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) {
			continue
		}
		key := coordKey{lat: p.Lat, lng: p.Lng}
		groups[key] = append(groups[key], i)
	}

	for _, group := range groups {
		k := len(group)
		if k < 2 {
			continue
		}
		for i, idx := range group {
			angle := 2 * math.Pi * float64(i) / float64(k)
			out[idx].Lat += offset * math.Cos(angle)
			out[idx].Lng += offset * math.Sin(angle)
		}
	}

	return out
}
