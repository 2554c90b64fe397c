package record

import (
	"reflect"
	"testing"
)

func TestRecordOrderAndOverwrite(t *testing.T) {
	r := New()
	r.Set("title", "Alpha")
	r.Set("journal", "Nature")
	r.Set("title", "Beta")
	r.Set("year", "2021")

	want := []string{"title", "journal", "year"}
	if got := r.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if got := r.Get("title"); got != "Beta" {
		t.Errorf("Get(title) = %q, want %q (overwrite must keep position, change value)", got, "Beta")
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}

func TestRecordAbsentFields(t *testing.T) {
	r := New()
	r.Set("title", "Alpha")
	r.Set("abstract", "")

	if got := r.Get("missing"); got != "" {
		t.Errorf("Get(missing) = %q, want empty", got)
	}
	if _, ok := r.Lookup("missing"); ok {
		t.Error("Lookup(missing) reported present")
	}
	// A field set to "" is present, just empty.
	if !r.Has("abstract") {
		t.Error("Has(abstract) = false for empty-valued field")
	}
	if v, ok := r.Lookup("abstract"); !ok || v != "" {
		t.Errorf("Lookup(abstract) = (%q, %v), want (\"\", true)", v, ok)
	}
}

func TestRecordIdentifierAccessors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		get  func(*Record) string
	}{
		{"pmid lowercase", "pmid", (*Record).PMID},
		{"pmid uppercase", "PMID", (*Record).PMID},
		{"doi mixed case", "Doi", (*Record).DOI},
		{"url uppercase", "URL", (*Record).URL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			r.Set("title", "x")
			r.Set(tt.key, "12345")
			if got := tt.get(r); got != "12345" {
				t.Errorf("accessor = %q, want %q", got, "12345")
			}
		})
	}

	r := New()
	r.Set("title", "no identifiers")
	if got := r.PMID(); got != "" {
		t.Errorf("PMID() on record without pmid = %q, want empty", got)
	}
}

func TestSeriesAdd(t *testing.T) {
	var s Series
	if !s.Empty() {
		t.Error("zero Series not Empty()")
	}
	s.Add("2020", 3)
	s.Add("2021", 5)
	if s.Len() != 2 || s.Empty() {
		t.Errorf("Len() = %d, Empty() = %v after two Adds", s.Len(), s.Empty())
	}
	if !reflect.DeepEqual(s.Labels, []string{"2020", "2021"}) {
		t.Errorf("Labels = %v", s.Labels)
	}
	if !reflect.DeepEqual(s.Counts, []int{3, 5}) {
		t.Errorf("Counts = %v", s.Counts)
	}
}
