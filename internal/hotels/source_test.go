package hotels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ptrciafae/hotels-map/internal/mapper"
)

const sampleCSV = `Hotel Name,Website,City,Country,Latitude,Longitude
Capella Bangkok,https://capellahotels.com/en/capella-bangkok,Bangkok,Thailand,13.7236,100.5131
"Passalacqua, Lake Como",passalacqua.it,Moltrasio,Italy,45.8606,9.0958

Rosewood Hong Kong,https://www.rosewoodhotels.com/en/hong-kong,Hong Kong,China,22.2944,114.1747
`

func defaultEngine(t *testing.T) *mapper.MappingEngine {
	t.Helper()
	engine, err := mapper.NewMappingEngine(mapper.DefaultMapping)
	require.NoError(t, err)
	return engine
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeFile(t, "hotels.csv", sampleCSV)

	hotels, err := Load(path, "", defaultEngine(t))
	require.NoError(t, err)
	require.Len(t, hotels, 3)

	assert.Equal(t, Hotel{
		Id:      "hotel-0",
		Rank:    1,
		Name:    "Capella Bangkok",
		Website: "https://capellahotels.com/en/capella-bangkok",
		Location: Location{
			Lat:     13.7236,
			Lng:     100.5131,
			City:    "Bangkok",
			Country: "Thailand",
		},
	}, hotels[0])

	assert.Equal(t, "Passalacqua, Lake Como", hotels[1].Name)
	assert.Equal(t, "https://passalacqua.it", hotels[1].Website)
	assert.Equal(t, 2, hotels[1].Rank)

	// blank line skipped, ranking continues
	assert.Equal(t, "hotel-2", hotels[2].Id)
	assert.Equal(t, 3, hotels[2].Rank)
	assert.Equal(t, "Hong Kong", hotels[2].Location.City)
}

func TestLoad_CSVWithBOM(t *testing.T) {
	path := writeFile(t, "hotels.csv", "\ufeffHotel Name,Latitude,Longitude\nA,1,2\n")

	hotels, err := Load(path, "", defaultEngine(t))
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "A", hotels[0].Name)
}

func TestLoad_XLSXMatchesCSV(t *testing.T) {
	csvPath := writeFile(t, "hotels.csv", sampleCSV)
	fromCSV, err := Load(csvPath, "", defaultEngine(t))
	require.NoError(t, err)

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Hotel Name", "Website", "City", "Country", "Latitude", "Longitude"},
		{"Capella Bangkok", "https://capellahotels.com/en/capella-bangkok", "Bangkok", "Thailand", "13.7236", "100.5131"},
		{"Passalacqua, Lake Como", "passalacqua.it", "Moltrasio", "Italy", "45.8606", "9.0958"},
		{"Rosewood Hong Kong", "https://www.rosewoodhotels.com/en/hong-kong", "Hong Kong", "China", "22.2944", "114.1747"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	xlsxPath := filepath.Join(t.TempDir(), "hotels.xlsx")
	require.NoError(t, f.SaveAs(xlsxPath))
	require.NoError(t, f.Close())

	fromXLSX, err := Load(xlsxPath, "", defaultEngine(t))
	require.NoError(t, err)
	assert.Equal(t, fromCSV, fromXLSX)
}

func TestLoad_XLSXMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	path := filepath.Join(t.TempDir(), "hotels.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := Load(path, "Ranking", defaultEngine(t))
	assert.Error(t, err)
}

func TestLoad_MalformedLatitude(t *testing.T) {
	path := writeFile(t, "hotels.csv", "Hotel Name,Latitude,Longitude\nA,1,2\nB,north,2\n")

	_, err := Load(path, "", defaultEngine(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "location.lat")
}

func TestLoad_MissingCoordinateColumn(t *testing.T) {
	path := writeFile(t, "hotels.csv", "Hotel Name,Latitude\nA,1\n")

	_, err := Load(path, "", defaultEngine(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2: missing location.lng")
}

func TestLoad_ShortRowsArePadded(t *testing.T) {
	path := writeFile(t, "hotels.csv", "Hotel Name,Latitude,Longitude,City\nA,1,2\n")

	hotels, err := Load(path, "", defaultEngine(t))
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Empty(t, hotels[0].Location.City)
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeFile(t, "hotels.csv", "Hotel Name,Latitude,Longitude\n")

	hotels, err := Load(path, "", defaultEngine(t))
	require.NoError(t, err)
	assert.Empty(t, hotels)
}

func TestLoad_Errors(t *testing.T) {
	engine := defaultEngine(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), "", engine)
	assert.Error(t, err)

	_, err = Load(writeFile(t, "hotels.json", "[]"), "", engine)
	assert.ErrorContains(t, err, "unsupported extension")

	_, err = Load(writeFile(t, "empty.csv", ""), "", engine)
	assert.ErrorContains(t, err, "missing header row")
}
