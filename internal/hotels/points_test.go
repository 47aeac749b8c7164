package hotels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptrciafae/hotels-map/internal/geo"
)

func sampleHotels() Hotels {
	return Hotels{
		{Id: "hotel-0", Rank: 1, Name: "A", Website: "https://a.example", Location: Location{Lat: 10, Lng: 20, City: "X", Country: "Y"}},
		{Id: "hotel-1", Rank: 2, Name: "B", Website: "https://b.example", Location: Location{Lat: 10, Lng: 20, City: "X", Country: "Y"}},
		{Id: "hotel-2", Rank: 3, Name: "C", Website: "https://c.example", Location: Location{Lat: -5, Lng: 7, City: "Z", Country: "W"}},
	}
}

func TestHotels_Points(t *testing.T) {
	points := sampleHotels().Points()
	assert.Equal(t, []geo.Point{
		{ID: "hotel-0", Lat: 10, Lng: 20},
		{ID: "hotel-1", Lat: 10, Lng: 20},
		{ID: "hotel-2", Lat: -5, Lng: 7},
	}, points)
}

func TestHotels_WithPointsMismatch(t *testing.T) {
	h := sampleHotels()

	_, err := h.WithPoints(h.Points()[:2])
	assert.Error(t, err)

	points := h.Points()
	points[1].ID = "other"
	_, err = h.WithPoints(points)
	assert.Error(t, err)
}

func TestHotels_OffsetDuplicatesPreservesFields(t *testing.T) {
	original := sampleHotels()
	out := original.OffsetDuplicates(0.01)
	require.Len(t, out, len(original))

	for i := range original {
		want := original[i]
		got := out[i]
		// everything but coordinates is preserved
		got.Location.Lat, got.Location.Lng = want.Location.Lat, want.Location.Lng
		assert.Equal(t, want, got)
	}

	assert.InDelta(t, 10.01, out[0].Location.Lat, 1e-12)
	assert.InDelta(t, 9.99, out[1].Location.Lat, 1e-12)
	assert.Equal(t, original[2].Location, out[2].Location)

	// caller's hotels untouched
	assert.Equal(t, sampleHotels(), original)
}

func TestHotels_OffsetDuplicatesWithoutIds(t *testing.T) {
	// hotels built by hand may carry no Id at all
	h := Hotels{
		{Name: "First", Location: Location{Lat: 1, Lng: 2}},
		{Name: "Second", Location: Location{Lat: 1, Lng: 2}},
	}

	out := h.OffsetDuplicates(0.01)
	require.Len(t, out, 2)
	assert.InDelta(t, 1.01, out[0].Location.Lat, 1e-12)
	assert.InDelta(t, 0.99, out[1].Location.Lat, 1e-12)
	assert.Equal(t, "Second", out[1].Name)
}
