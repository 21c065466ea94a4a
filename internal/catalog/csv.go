package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	domainerrors "github.com/listenupapp/catalog-insights/internal/errors"
)

// utf8BOM is stripped from the first header cell; spreadsheet exports often carry it.
const utf8BOM = "\ufeff"

// ReadCSV reads a catalog table. The first row is the header; columns are matched by name
// (case-insensitive), unknown columns are ignored and short rows leave trailing fields empty.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, domainerrors.Validation("csv input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		columns[i] = normalizeColumnName(h)
	}

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}

		var rec Record
		for i, value := range row {
			if i >= len(columns) {
				break
			}
			rec.set(columns[i], value)
		}
		records = append(records, rec)
	}

	return &Table{Columns: columns, Records: records}, nil
}

// LoadCSV opens and reads a catalog table from disk.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path) //#nosec G304 -- input path comes from the user
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domainerrors.NotFoundf("catalog file not found: %s", path)
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	table, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return table, nil
}
