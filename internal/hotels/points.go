package hotels

import (
	"fmt"

	"github.com/ptrciafae/hotels-map/internal/geo"
)

// Points returns one point per hotel, identified by hotel Id
func (h Hotels) Points() []geo.Point {
	points := make([]geo.Point, len(h))
	for i, hotel := range h {
		points[i] = geo.Point{
			ID:  hotel.Id,
			Lat: hotel.Location.Lat,
			Lng: hotel.Location.Lng,
		}
	}
	return points
}

// WithPoints returns a copy of the hotels with coordinates taken from
// points. Points are matched by position and must carry the same Ids.
func (h Hotels) WithPoints(points []geo.Point) (Hotels, error) {
	if len(points) != len(h) {
		return nil, fmt.Errorf("with points: got %d points for %d hotels", len(points), len(h))
	}

	out := make(Hotels, len(h))
	copy(out, h)
	for i, p := range points {
		if p.ID != out[i].Id {
			return nil, fmt.Errorf("with points: point %d has id %q, hotel has %q", i, p.ID, out[i].Id)
		}
		out[i].Location.Lat = p.Lat
		out[i].Location.Lng = p.Lng
	}
	return out, nil
}

// OffsetDuplicates spreads hotels sharing coordinates around a circle of
// radius offset degrees, leaving every other field untouched. Points come
// back in hotel order, so they are matched by position only.
func (h Hotels) OffsetDuplicates(offset float64) Hotels {
	points := geo.OffsetDuplicates(h.Points(), offset)

	out := make(Hotels, len(h))
	copy(out, h)
	for i, p := range points {
		out[i].Location.Lat = p.Lat
		out[i].Location.Lng = p.Lng
	}
	return out
}
