package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/buildsbyrafael/datapersistence/internal/shared/apperror"

	"golang.org/x/text/encoding/charmap"
)

// Table is a header-indexed view over one uploaded CSV payload. The portal
// exports are Latin-1 encoded and semicolon delimited.
type Table struct {
	cols map[string]int
	rows [][]string
}

// Read decodes the payload and splits header from data rows. Rows with a
// field count different from the header are kept; missing trailing fields
// read as empty strings.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidInput, "payload is not valid CSV", http.StatusBadRequest)
	}
	if len(records) == 0 {
		return nil, apperror.New(apperror.CodeInvalidInput, "payload has no header row", http.StatusBadRequest)
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.TrimSpace(name)] = i
	}

	return &Table{cols: cols, rows: records[1:]}, nil
}

// Require fails the whole import when any expected source column is absent.
func (t *Table) Require(cols ...string) error {
	for _, col := range cols {
		if _, ok := t.cols[col]; !ok {
			return apperror.New(
				apperror.CodeSchemaError,
				fmt.Sprintf("coluna ausente no CSV: %s", col),
				http.StatusBadRequest,
			)
		}
	}
	return nil
}

func (t *Table) Rows() [][]string {
	return t.rows
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Field returns the raw value of col for the given row, or "" when the
// column does not exist or the row is short.
func (t *Table) Field(row []string, col string) string {
	idx, ok := t.cols[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
