// Package schema derives the display schema for a record collection: which
// fields exist, the order they appear in, and the label each one renders
// under. The schema is computed once per load and frozen; header, body,
// column selector and search dropdown all share it.
package schema

import "github.com/litgrid/litgrid/internal/record"

// priorityFields is the fixed ordering for well-known fields. Fields present
// in the collection are emitted in exactly this order, ahead of everything
// else. The tail of the list is the temporal synonym group; see labels.go.
var priorityFields = []string{
	"id",
	"title",
	"translated_title",
	"authors",
	"journal",
	"year",
	"pmid",
	"doi",
	"url",
	"abstract",
	"translated_abstract",
	"keywords",
	"translated_keywords",
	"quartile",
	"impact_factor",
	"publish_time",
	"pub_time",
	"publication_date",
	"date",
	"time",
	"datetime",
	"created_at",
	"updated_at",
}

// temporalFields is the synonym group of time-like field keys. Any number of
// them may coexist on a record; they share one display label and feed the
// producer's time-bucket extraction in fallback order.
var temporalFields = []string{
	"publish_time",
	"pub_time",
	"publication_date",
	"date",
	"time",
	"datetime",
	"created_at",
	"updated_at",
}

// CanonicalFields returns the non-temporal priority fields, the set the
// producer guarantees on every normalized record.
func CanonicalFields() []string {
	out := make([]string, 0, len(priorityFields)-len(temporalFields))
	out = append(out, priorityFields[:len(priorityFields)-len(temporalFields)]...)
	return out
}

// TemporalFields returns the temporal synonym group in fallback order.
func TemporalFields() []string {
	out := make([]string, len(temporalFields))
	copy(out, temporalFields)
	return out
}

// Infer returns the ordered, de-duplicated field keys for a collection:
// priority fields actually present first, in priority order, then all
// remaining fields in first-seen order. Nil records are skipped. An empty or
// nil collection yields nil; callers render an explicit no-data state rather
// than an empty table shell.
func Infer(records record.Collection) []string {
	present := make(map[string]struct{})
	var firstSeen []string
	for _, r := range records {
		if r == nil {
			continue
		}
		for _, k := range r.Keys() {
			if _, ok := present[k]; !ok {
				present[k] = struct{}{}
				firstSeen = append(firstSeen, k)
			}
		}
	}
	if len(present) == 0 {
		return nil
	}

	out := make([]string, 0, len(present))
	for _, k := range priorityFields {
		if _, ok := present[k]; ok {
			out = append(out, k)
			delete(present, k)
		}
	}
	for _, k := range firstSeen {
		if _, ok := present[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// Field describes one inferred column: its key, display label and position
// in the priority list (-1 for discovered fields).
type Field struct {
	Key      string
	Label    string
	Priority int
}

// PriorityRank returns the index of key in the priority list, or -1.
func PriorityRank(key string) int {
	for i, k := range priorityFields {
		if k == key {
			return i
		}
	}
	return -1
}

// Describe resolves the inferred key order into field descriptors.
func Describe(keys []string) []Field {
	fields := make([]Field, len(keys))
	for i, k := range keys {
		fields[i] = Field{
			Key:      k,
			Label:    Label(k),
			Priority: PriorityRank(k),
		}
	}
	return fields
}
