// Package record defines the schema-less literature record model shared by
// every viewer surface. A record is an ordered field→value mapping; the field
// set is discovered from the data at load time, never declared up front.
package record

import "strings"

// Record is one literature entry. Fields keep first-set order, which the
// schema layer relies on when it emits non-priority fields in first-seen
// order. A field that was never set reads as the empty string.
type Record struct {
	keys   []string
	values map[string]string
}

// New returns an empty record.
func New() *Record {
	return &Record{values: make(map[string]string)}
}

// Set stores value under key. The first Set of a key fixes its position in
// the record's field order; later Sets overwrite the value in place.
func (r *Record) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for key, or "" when the field is absent.
func (r *Record) Get(key string) string {
	return r.values[key]
}

// Lookup returns the value for key and whether the field is present.
func (r *Record) Lookup(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether the field is present, even with an empty value.
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns the record's fields in first-set order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields present.
func (r *Record) Len() int {
	return len(r.keys)
}

// getFold returns the value of the first field whose key matches fold
// case-insensitively. Cell formatting matches identifier fields this way.
func (r *Record) getFold(key string) string {
	if v, ok := r.values[key]; ok {
		return v
	}
	for _, k := range r.keys {
		if strings.EqualFold(k, key) {
			return r.values[k]
		}
	}
	return ""
}

// PMID returns the PubMed identifier, matching the field case-insensitively.
func (r *Record) PMID() string { return r.getFold("pmid") }

// DOI returns the digital object identifier, matching case-insensitively.
func (r *Record) DOI() string { return r.getFold("doi") }

// URL returns the record's link field, matching case-insensitively.
func (r *Record) URL() string { return r.getFold("url") }

// Collection is an immutable-by-convention set of records supplied once at
// load time.
type Collection []*Record

// Len returns the number of records, treating nil as empty.
func (c Collection) Len() int { return len(c) }
