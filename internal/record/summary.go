package record

// Series is an index-aligned label→count distribution with an optional
// display title. It is produced by the external producer (or loaded from a
// summary file); the viewer only selects between candidate series and never
// recomputes one from raw records.
type Series struct {
	Labels []string
	Counts []int
	Title  string
}

// Add appends one label/count pair.
func (s *Series) Add(label string, count int) {
	s.Labels = append(s.Labels, label)
	s.Counts = append(s.Counts, count)
}

// Len returns the number of buckets.
func (s *Series) Len() int { return len(s.Labels) }

// Empty reports whether the series has no buckets.
func (s *Series) Empty() bool { return len(s.Labels) == 0 }

// Summary is the precomputed aggregation bundle handed to the viewer at load
// time. Time and Years are the two chart candidates; Journals and Keywords
// are producer statistics carried along for export and logging, never
// charted.
type Summary struct {
	// TimeField names the record field the time buckets were derived from,
	// "" when no temporal field was found.
	TimeField string
	Time      Series
	Years     Series
	Journals  Series
	Keywords  Series
	// Total is the number of records the producer processed.
	Total int
}
