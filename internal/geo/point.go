package geo

import "github.com/paulmach/orb"

// Point is a labeled geographic coordinate
type Point struct {
	ID  string
	Lat float64
	Lng float64
}

// Orb returns the point as an orb.Point ([lng, lat])
func (p Point) Orb() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}
