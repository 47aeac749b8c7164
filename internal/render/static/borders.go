package static

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"
)

// World holds the Natural Earth 110m country outlines (public domain), used
// when no borders file is configured.
//
//go:embed world.geojson
var World []byte

// LoadBorders reads country borders and coastlines from the GeoJSON file at
// path, or from World when path is empty.
func LoadBorders(path string, tolerance float64) ([]orb.LineString, error) {
	if path == "" {
		lines, err := ParseBorders(World, tolerance)
		if err != nil {
			return nil, fmt.Errorf("parse embedded borders: %w", err)
		}
		return lines, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read borders %s: %w", path, err)
	}

	lines, err := ParseBorders(data, tolerance)
	if err != nil {
		return nil, fmt.Errorf("parse borders %s: %w", path, err)
	}
	return lines, nil
}

// ParseBorders flattens every geometry of a GeoJSON feature collection into
// line strings. Lines are simplified with Douglas-Peucker when tolerance
// (degrees) is positive.
func ParseBorders(data []byte, tolerance float64) ([]orb.LineString, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}

	var lines []orb.LineString
	for _, f := range fc.Features {
		lines = appendLines(lines, f.Geometry)
	}

	if tolerance > 0 {
		s := simplify.DouglasPeucker(tolerance)
		for i, ls := range lines {
			simplified, ok := s.Simplify(ls.Clone()).(orb.LineString)
			if !ok || len(simplified) < 2 {
				continue
			}
			lines[i] = simplified
		}
	}

	return lines, nil
}

func appendLines(lines []orb.LineString, g orb.Geometry) []orb.LineString {
	switch v := g.(type) {
	case orb.LineString:
		lines = append(lines, v)
	case orb.MultiLineString:
		lines = append(lines, v...)
	case orb.Ring:
		lines = append(lines, orb.LineString(v))
	case orb.Polygon:
		for _, ring := range v {
			lines = append(lines, orb.LineString(ring))
		}
	case orb.MultiPolygon:
		for _, poly := range v {
			lines = appendLines(lines, poly)
		}
	case orb.Collection:
		for _, child := range v {
			lines = appendLines(lines, child)
		}
	}
	return lines
}
