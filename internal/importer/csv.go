package importer

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// readCSVRows reads a comma-separated statement file. A UTF-8 BOM, variable
// field counts, and surrounding whitespace are all tolerated.
func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "importer: open csv")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // allow variable fields

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, eris.Wrap(err, "importer: read csv row")
		}
		for i, field := range record {
			record[i] = strings.TrimSpace(strings.TrimPrefix(field, "\uFEFF"))
		}
		rows = append(rows, record)
	}
}
