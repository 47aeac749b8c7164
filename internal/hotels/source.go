package hotels

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xuri/excelize/v2"

	"github.com/ptrciafae/hotels-map/internal/mapper"
)

// Required fields every mapped hotel must carry, as gjson paths
var requiredFields = []string{"name", "location.lat", "location.lng"}

// Table is a tabular source read fully into memory
type Table struct {
	Header []string
	Rows   [][]string
	Lines  []int // 1-based source line of each row, for error messages
}

// Load reads the hotels table at path (.csv or .xlsx) and maps each row to a
// hotel. Row order is the ranking. Sheet selects the xlsx sheet, the first
// one when empty.
func Load(path, sheet string, engine *mapper.MappingEngine) (Hotels, error) {
	table, err := ReadTable(path, sheet)
	if err != nil {
		return nil, err
	}

	hotels, err := Normalize(table, engine)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	log.Printf("loaded hotels=%d path=%s", len(hotels), path)
	return hotels, nil
}

// ReadTable reads a csv or xlsx file based on its extension
func ReadTable(path, sheet string) (*Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", "":
		return readCSV(path)
	case ".xlsx", ".xlsm":
		return readXLSX(path, sheet)
	default:
		return nil, fmt.Errorf("read table %s: unsupported extension %q", path, ext)
	}
}

func readCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening csv file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var rows [][]string
	var lines []int
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading csv %s: %w", path, err)
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, record)
		lines = append(lines, line)
	}

	return newTable(path, rows, lines)
}

func readXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening xlsx file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("read xlsx %s: no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read xlsx %s sheet %q: %w", path, sheet, err)
	}

	lines := make([]int, len(rows))
	for i := range rows {
		lines[i] = i + 1
	}

	return newTable(path, rows, lines)
}

// newTable splits off the header and drops blank rows
func newTable(path string, rows [][]string, lines []int) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("read table %s: missing header row", path)
	}

	header := make([]string, len(rows[0]))
	for i, col := range rows[0] {
		header[i] = strings.TrimSpace(col)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	table := &Table{Header: header}
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		table.Rows = append(table.Rows, row)
		table.Lines = append(table.Lines, lines[i+1])
	}

	return table, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Records encodes every row as a JSON object keyed by header. Short rows are
// padded with empty strings. With duplicate headers the first column wins.
func (t *Table) Records() ([]mapper.Record, error) {
	records := make([]mapper.Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		obj := make(map[string]string, len(t.Header))
		for i, col := range t.Header {
			if col == "" {
				continue
			}
			if _, seen := obj[col]; seen {
				continue
			}
			if i < len(row) {
				obj[col] = row[i]
			} else {
				obj[col] = ""
			}
		}

		raw, err := json.Marshal(obj)
		if err != nil {
			return nil, fmt.Errorf("encode row: %w", err)
		}
		records = append(records, mapper.Record(raw))
	}
	return records, nil
}

// Normalize maps table rows to hotels and assigns Ids and ranks from row order
func Normalize(table *Table, engine *mapper.MappingEngine) (Hotels, error) {
	records, err := table.Records()
	if err != nil {
		return nil, err
	}

	normalizedData, err := engine.Transform(records)
	if err != nil {
		return nil, fmt.Errorf("error transforming data: %w", err)
	}

	for i, item := range gjson.ParseBytes(normalizedData).Array() {
		for _, field := range requiredFields {
			if !item.Get(field).Exists() {
				return nil, fmt.Errorf("line %d: missing %s", table.Lines[i], field)
			}
		}
	}

	var hotels Hotels
	if err := json.Unmarshal(normalizedData, &hotels); err != nil {
		return nil, fmt.Errorf("error unmarshaling normalized data: %w", err)
	}

	for i := range hotels {
		hotels[i].Id = fmt.Sprintf("hotel-%d", i)
		hotels[i].Rank = i + 1
	}

	return hotels, nil
}
