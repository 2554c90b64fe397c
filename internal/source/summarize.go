package source

import (
	"sort"
	"strconv"
	"strings"

	"github.com/litgrid/litgrid/internal/record"
)

// DefaultMaxKeywords caps the keyword distribution when no limit is given.
const DefaultMaxKeywords = 50

// Summarize computes the aggregation bundle for a collection, normally after
// Normalize:
//
//   - time buckets keyed by the time value's first space-separated token,
//     sorted ascending; TimeField records which field they came from
//   - yearly buckets from the year field, integer-parsed, sorted ascending
//   - journal counts, keeping only journals with more than one article
//   - the maxKeywords most frequent entries of translated_keywords
//     (semicolon-separated), ties kept in first-seen order
//
// maxKeywords <= 0 means DefaultMaxKeywords. Records without a usable value
// simply do not contribute to that bucket; nothing is repaired or invented.
func Summarize(rows record.Collection, maxKeywords int) *record.Summary {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}
	preferPubDate := hasPubDateColumn(rows)

	timeCounts := make(map[string]int)
	yearCounts := make(map[string]int)
	journalCounts := make(map[string]int)
	var journalOrder []string
	keywordCounts := make(map[string]int)
	var keywordOrder []string

	timeField := ""
	total := 0
	for _, r := range rows {
		if r == nil {
			continue
		}
		total++

		if field, v := timeSource(r, preferPubDate); v != "" {
			timeField = field
			timeCounts[strings.Split(v, " ")[0]]++
		}
		if y := r.Get("year"); y != "" {
			if n, err := strconv.Atoi(strings.TrimSpace(y)); err == nil {
				yearCounts[strconv.Itoa(n)]++
			}
		}
		if j := r.Get("journal"); j != "" {
			if _, seen := journalCounts[j]; !seen {
				journalOrder = append(journalOrder, j)
			}
			journalCounts[j]++
		}
		if kw := r.Get("translated_keywords"); kw != "" {
			for _, k := range strings.Split(kw, ";") {
				k = strings.TrimSpace(k)
				if k == "" {
					continue
				}
				if _, seen := keywordCounts[k]; !seen {
					keywordOrder = append(keywordOrder, k)
				}
				keywordCounts[k]++
			}
		}
	}

	sum := &record.Summary{Total: total}
	if len(timeCounts) > 0 {
		sum.TimeField = timeField
	}
	sum.Time = sortedSeries(timeCounts)
	sum.Years = sortedSeries(yearCounts)

	for _, j := range journalOrder {
		if journalCounts[j] > 1 {
			sum.Journals.Add(j, journalCounts[j])
		}
	}

	// Most frequent first; the stable sort keeps first-seen order for ties.
	sort.SliceStable(keywordOrder, func(i, j int) bool {
		return keywordCounts[keywordOrder[i]] > keywordCounts[keywordOrder[j]]
	})
	if len(keywordOrder) > maxKeywords {
		keywordOrder = keywordOrder[:maxKeywords]
	}
	for _, k := range keywordOrder {
		sum.Keywords.Add(k, keywordCounts[k])
	}

	return sum
}

func sortedSeries(counts map[string]int) record.Series {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var s record.Series
	for _, k := range keys {
		s.Add(k, counts[k])
	}
	return s
}
