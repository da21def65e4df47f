package assay

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/mhctools/mhclab/errors"
)

// WriteTSV writes the table as tab-separated values with a header row.
// Nil cells render as empty fields.
func WriteTSV(w io.Writer, table *Table) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(table.Columns(), "\t") + "\n"); err != nil {
		return errors.Wrap(err, "failed to write TSV header")
	}

	cells := make([]string, len(OutputColumns))
	for _, rec := range table.Records() {
		for i, col := range OutputColumns {
			cells[i] = ""
			if v := rec.Field(col); v != nil {
				cells[i] = *v
			}
		}
		if _, err := bw.WriteString(strings.Join(cells, "\t") + "\n"); err != nil {
			return errors.Wrap(err, "failed to write TSV row")
		}
	}

	return bw.Flush()
}

// WriteJSON writes the table as a JSON array of objects keyed by the
// canonical column names. Nil cells render as JSON null.
func WriteJSON(w io.Writer, table *Table) error {
	rows := make([]map[string]*string, 0, table.Len())
	for _, rec := range table.Records() {
		row := make(map[string]*string, len(OutputColumns))
		for _, col := range OutputColumns {
			row[col] = rec.Field(col)
		}
		rows = append(rows, row)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return errors.Wrap(err, "failed to encode table as JSON")
	}
	return nil
}
