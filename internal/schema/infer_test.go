package schema

import (
	"reflect"
	"testing"

	"github.com/litgrid/litgrid/internal/record"
)

func rec(pairs ...string) *record.Record {
	r := record.New()
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i], pairs[i+1])
	}
	return r
}

func TestInfer(t *testing.T) {
	tests := []struct {
		name    string
		records record.Collection
		want    []string
	}{
		// Priority ordering
		{
			"priority fields reordered",
			record.Collection{rec("year", "2020", "title", "A", "id", "1")},
			[]string{"id", "title", "year"},
		},
		{
			"priority before discovered",
			record.Collection{rec("reviewer", "x", "journal", "Nature", "score", "5")},
			[]string{"journal", "reviewer", "score"},
		},
		{
			"temporal synonyms keep priority order",
			record.Collection{rec("updated_at", "2021-01-02", "pmid", "1", "date", "2021-01-01")},
			[]string{"pmid", "date", "updated_at"},
		},

		// Union across heterogeneous records
		{
			"union of keys, first seen order for discovered",
			record.Collection{
				rec("title", "A", "venue_rank", "B1"),
				rec("title", "B", "reviewer", "x", "venue_rank", "A2"),
			},
			[]string{"title", "venue_rank", "reviewer"},
		},

		// Degenerate inputs
		{"nil collection", nil, nil},
		{"empty collection", record.Collection{}, nil},
		{"only nil records", record.Collection{nil, nil}, nil},
		{
			"nil record skipped",
			record.Collection{nil, rec("title", "A")},
			[]string{"title"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Infer(tt.records); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Infer() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Field order must be a function of the key set only, not of values or
// record count.
func TestInferDependsOnKeySetOnly(t *testing.T) {
	a := record.Collection{
		rec("title", "A", "pmid", "1", "custom", "x"),
	}
	b := record.Collection{
		rec("title", "zzz", "pmid", "", "custom", ""),
		rec("title", "B", "pmid", "9", "custom", "y"),
	}
	if got, want := Infer(a), Infer(b); !reflect.DeepEqual(got, want) {
		t.Errorf("same key set inferred differently: %v vs %v", got, want)
	}
}

func TestInferPriorityAlwaysBeforeDiscovered(t *testing.T) {
	records := record.Collection{
		rec("zeta", "1", "abstract", "a", "alpha", "2", "doi", "d"),
	}
	got := Infer(records)
	lastPriority, firstDiscovered := -1, len(got)
	for i, k := range got {
		if PriorityRank(k) >= 0 {
			lastPriority = i
		} else if i < firstDiscovered {
			firstDiscovered = i
		}
	}
	if lastPriority > firstDiscovered {
		t.Errorf("priority field after discovered field in %v", got)
	}
}

func TestDescribe(t *testing.T) {
	fields := Describe([]string{"title", "date", "venue_rank"})
	want := []Field{
		{Key: "title", Label: "Title", Priority: 1},
		{Key: "date", Label: "Time", Priority: 18},
		{Key: "venue_rank", Label: "venue_rank", Priority: -1},
	}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("Describe() = %+v, want %+v", fields, want)
	}
}

func TestCanonicalAndTemporalFields(t *testing.T) {
	if got := len(CanonicalFields()); got != 15 {
		t.Errorf("CanonicalFields() has %d entries, want 15", got)
	}
	if got := len(TemporalFields()); got != 8 {
		t.Errorf("TemporalFields() has %d entries, want 8", got)
	}
	for _, k := range CanonicalFields() {
		if IsTemporal(k) {
			t.Errorf("canonical field %q reported temporal", k)
		}
	}
	for _, k := range TemporalFields() {
		if !IsTemporal(k) {
			t.Errorf("temporal field %q not reported temporal", k)
		}
	}
}
