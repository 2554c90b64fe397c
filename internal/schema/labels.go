package schema

import (
	"fmt"
	"sync"
)

// builtinLabels maps well-known field keys to display labels. Every key in
// the temporal synonym group deliberately shares the one "Time" label:
// multiple distinct temporal fields may coexist and will render under the
// same heading. Toggles and search scoping therefore always key on the field
// key, never on the label.
var builtinLabels = map[string]string{
	"id":                  "ID",
	"title":               "Title",
	"translated_title":    "Translated Title",
	"authors":             "Authors",
	"journal":             "Journal",
	"year":                "Year",
	"pmid":                "PMID",
	"doi":                 "DOI",
	"url":                 "Link",
	"abstract":            "Abstract",
	"translated_abstract": "Translated Abstract",
	"keywords":            "Keywords",
	"translated_keywords": "Translated Keywords",
	"quartile":            "Quartile",
	"impact_factor":       "Impact Factor",
}

func init() {
	for _, k := range temporalFields {
		builtinLabels[k] = "Time"
	}
}

var (
	labelOverrides   = make(map[string]string)
	labelOverridesMu sync.RWMutex
)

// RegisterLabel installs a producer-supplied display label for a field key,
// shadowing the built-in label if one exists.
// Panics on an empty key or label.
func RegisterLabel(key, label string) {
	if key == "" || label == "" {
		panic(fmt.Sprintf("schema: invalid label registration %q=%q", key, label))
	}
	labelOverridesMu.Lock()
	defer labelOverridesMu.Unlock()
	labelOverrides[key] = label
}

// ClearLabelOverrides removes all registered overrides, restoring the
// built-in labels. Primarily useful for testing.
func ClearLabelOverrides() {
	labelOverridesMu.Lock()
	defer labelOverridesMu.Unlock()
	labelOverrides = make(map[string]string)
}

// Label returns the display label for a field key. Total: unknown keys fall
// back to the raw key text, so a label always exists.
func Label(key string) string {
	labelOverridesMu.RLock()
	if l, ok := labelOverrides[key]; ok {
		labelOverridesMu.RUnlock()
		return l
	}
	labelOverridesMu.RUnlock()

	if l, ok := builtinLabels[key]; ok {
		return l
	}
	return key
}

// IsTemporal reports whether key belongs to the temporal synonym group.
func IsTemporal(key string) bool {
	for _, k := range temporalFields {
		if k == key {
			return true
		}
	}
	return false
}
