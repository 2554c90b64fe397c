package source

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tidwall/gjson"

	"github.com/litgrid/litgrid/internal/record"
)

// ReadJSON loads records from a file holding a JSON array of flat objects.
// Each object's key order is preserved as the record's field order, which
// map-based decoding would lose; parsing goes through gjson's ordered
// iteration instead. Elements that are not objects are skipped and counted.
func ReadJSON(path string) (record.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	rows, err := parseRecords(data)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

func parseRecords(data []byte) (record.Collection, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		// The collection must be list-like; anything else is a producer
		// defect the caller logs before rendering the no-data state.
		return nil, fmt.Errorf("top-level JSON value is not an array of records")
	}

	var out record.Collection
	skipped := 0
	root.ForEach(func(_, el gjson.Result) bool {
		if !el.IsObject() {
			skipped++
			return true
		}
		rec := record.New()
		el.ForEach(func(k, v gjson.Result) bool {
			rec.Set(k.String(), scalarText(v))
			return true
		})
		out = append(out, rec)
		return true
	})
	if skipped > 0 {
		slog.Warn("skipped non-record elements in JSON input", "count", skipped)
	}
	return out, nil
}

// scalarText renders a JSON value the way a cell shows it: strings
// unescaped, numbers and booleans as text, null as empty. Composite values
// pass through as their raw JSON.
func scalarText(v gjson.Result) string {
	if v.Type == gjson.Null {
		return ""
	}
	return v.String()
}

// ReadSummary loads an externally computed aggregation summary:
//
//	{
//	  "time_field": "publish_time",
//	  "time":   {"2021-03-01": 2, ...},
//	  "years":  {"2020": 5, ...},
//	  "journals": {...},
//	  "keywords": {...},
//	  "total": 12
//	}
//
// Bucket maps keep their document order. Missing or null maps load as empty
// series; the chart's selection policy decides what that means.
func ReadSummary(path string) (*record.Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	sum, err := parseSummary(data)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return sum, nil
}

func parseSummary(data []byte) (*record.Summary, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("summary is not a JSON object")
	}

	readSeries := func(key string) record.Series {
		var s record.Series
		root.Get(key).ForEach(func(k, v gjson.Result) bool {
			s.Add(k.String(), int(v.Int()))
			return true
		})
		return s
	}

	return &record.Summary{
		TimeField: root.Get("time_field").String(),
		Time:      readSeries("time"),
		Years:     readSeries("years"),
		Journals:  readSeries("journals"),
		Keywords:  readSeries("keywords"),
		Total:     int(root.Get("total").Int()),
	}, nil
}
