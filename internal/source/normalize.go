package source

import (
	"strconv"
	"strings"

	"github.com/litgrid/litgrid/internal/record"
	"github.com/litgrid/litgrid/internal/schema"
)

const pubmedBase = "https://pubmed.ncbi.nlm.nih.gov/"

// Normalize prepares raw records the way the upstream pipeline does before
// handing them to the viewer:
//
//   - a sequential id starting at 1
//   - every canonical field present, empty when the source lacks it
//   - a PubMed link synthesized into url when the source has none but
//     carries a pmid
//   - year backfilled from the record's time value when it contains a
//     four-digit year
//
// Extra source fields survive untouched, after the canonical ones, in their
// own order. Nil records are dropped. The input records are not modified.
func Normalize(rows record.Collection) record.Collection {
	preferPubDate := hasPubDateColumn(rows)
	canonical := schema.CanonicalFields()

	out := make(record.Collection, 0, len(rows))
	for _, src := range rows {
		if src == nil {
			continue
		}
		dst := record.New()
		dst.Set("id", strconv.Itoa(len(out)+1))
		for _, f := range canonical {
			if f == "id" {
				continue
			}
			dst.Set(f, src.Get(f))
		}
		for _, k := range src.Keys() {
			if !dst.Has(k) {
				dst.Set(k, src.Get(k))
			}
		}
		if dst.Get("url") == "" {
			if pmid := dst.Get("pmid"); pmid != "" {
				dst.Set("url", pubmedBase+pmid)
			}
		}
		if _, v := timeSource(dst, preferPubDate); v != "" {
			if y := yearFrom(v); y != "" {
				dst.Set("year", y)
			}
		}
		out = append(out, dst)
	}
	return out
}

// hasPubDateColumn mirrors the pipeline's column probe: pub_date is
// preferred as the time source only when the first record carries the
// column at all.
func hasPubDateColumn(rows record.Collection) bool {
	for _, r := range rows {
		if r == nil {
			continue
		}
		return r.Has("pub_date")
	}
	return false
}

// timeSource returns the field and value time buckets derive from: pub_date
// when that column is preferred and non-empty, else the first non-empty
// temporal synonym in fallback order.
func timeSource(r *record.Record, preferPubDate bool) (field, value string) {
	if preferPubDate {
		if v := r.Get("pub_date"); v != "" {
			return "pub_date", v
		}
	}
	for _, f := range schema.TemporalFields() {
		if v := r.Get(f); v != "" {
			return f, v
		}
	}
	return "", ""
}

// yearFrom extracts a year from a time value: the value's first four digits,
// if it has at least four. The round-trip through Atoi strips leading zeros
// the same way the pipeline's int() cast did.
func yearFrom(v string) string {
	var digits strings.Builder
	for i := 0; i < len(v) && digits.Len() < 4; i++ {
		if v[i] >= '0' && v[i] <= '9' {
			digits.WriteByte(v[i])
		}
	}
	if digits.Len() < 4 {
		return ""
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return ""
	}
	return strconv.Itoa(n)
}
