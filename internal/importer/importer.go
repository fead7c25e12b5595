// Package importer reads fiscal-year statement workbooks (XLSX or CSV)
// into statement snapshots. The expected layout is one labeled line item
// per row with fiscal years across the columns; unknown labels and
// unparseable cells are skipped rather than failing the import.
package importer

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/midori-advisory/finplan-cli/internal/statement"
)

// Options configures an import.
type Options struct {
	CompanyID  string
	SheetName  string // XLSX only; overrides SheetIndex
	SheetIndex int    // XLSX only; default 0
}

// ImportFile reads snapshots from an XLSX or CSV statement file, dispatching
// on the file extension.
func ImportFile(path string, opts Options) ([]statement.Snapshot, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSXRows(path, opts)
	case ".csv":
		rows, err = readCSVRows(path)
	default:
		return nil, eris.Errorf("importer: unsupported file type %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	return parseGrid(rows, opts.CompanyID)
}

// parseGrid converts the label/year grid into one snapshot per year column.
func parseGrid(rows [][]string, companyID string) ([]statement.Snapshot, error) {
	if len(rows) < 2 {
		return nil, eris.New("importer: file has no data rows")
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, eris.New("importer: header has no year columns")
	}

	years := make([]int, 0, len(header)-1)
	for _, cell := range header[1:] {
		year, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(cell, "年度")))
		if err != nil {
			return nil, eris.Wrapf(err, "importer: parse year column %q", cell)
		}
		years = append(years, year)
	}

	snaps := make([]statement.Snapshot, len(years))
	for i, year := range years {
		snaps[i] = statement.Snapshot{CompanyID: companyID, FiscalYear: year}
	}

	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		set, ok := fieldSetters[normalizeLabel(row[0])]
		if !ok {
			continue
		}
		for i := range years {
			if i+1 >= len(row) {
				break
			}
			if v, ok := parseAmount(row[i+1]); ok {
				set(&snaps[i], v)
			}
		}
	}

	for i := range snaps {
		snaps[i] = snaps[i].Normalized()
	}
	return snaps, nil
}
