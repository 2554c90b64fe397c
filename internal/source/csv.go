// Package source is the external data producer for the viewer: it loads
// record collections from CSV or JSON files, normalizes them the way the
// upstream literature pipeline does, and computes the aggregation summary
// the chart selects from. The viewer core consumes these artifacts and never
// calls back in.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/litgrid/litgrid/internal/record"
)

// ReadCSV loads records from a CSV file. The first row is the header and
// fixes each record's field order; later rows become one record each. A
// leading UTF-8 BOM (Excel's utf-8-sig) is stripped. Rows that fail to parse
// are skipped and counted, never repaired; short rows read as empty values
// and cells beyond the header are dropped.
func ReadCSV(path string) (record.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := readCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

func readCSV(r io.Reader) (record.Collection, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	fields := make([]string, len(header))
	copy(fields, header)

	var out record.Collection
	skipped := 0
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				skipped++
				slog.Warn("skipping malformed csv row", "error", err)
				continue
			}
			// Not a row-level problem; the stream itself failed.
			return nil, fmt.Errorf("reading rows: %w", err)
		}
		rec := record.New()
		for i, field := range fields {
			v := ""
			if i < len(row) {
				v = row[i]
			}
			rec.Set(field, v)
		}
		out = append(out, rec)
	}
	if skipped > 0 {
		slog.Warn("skipped malformed csv rows", "count", skipped)
	}
	return out, nil
}
