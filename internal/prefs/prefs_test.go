package prefs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "litgrid", "prefs.json")
	s := NewFileStore(path)

	// Nothing saved yet.
	_, ok, err := s.Load()
	if err != nil {
		t.Fatalf("Load before save: %v", err)
	}
	if ok {
		t.Fatal("Load reported ok before any save")
	}

	want := Preferences{
		VisibleColumns: []string{"title", "year"},
		SearchField:    "journal",
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := s.Load()
	if err != nil {
		t.Fatalf("Load after save: %v", err)
	}
	if !ok {
		t.Fatal("Load reported ok=false after save")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestFileStoreRevisionChangesPerSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	s := NewFileStore(path)
	p := Preferences{VisibleColumns: []string{"title"}}

	readRevision := func() string {
		t.Helper()
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading prefs file: %v", err)
		}
		var doc fileDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			t.Fatalf("decoding prefs file: %v", err)
		}
		return doc.Revision
	}

	if err := s.Save(p); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	first := readRevision()
	if first == "" {
		t.Fatal("revision empty after save")
	}
	if err := s.Save(p); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if second := readRevision(); second == first {
		t.Error("revision did not change across saves of identical content")
	}
}

func TestFileStoreEmptyVisibleSetDistinctFromUnsaved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	s := NewFileStore(path)

	if err := s.Save(Preferences{VisibleColumns: []string{}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("ok=false for explicitly saved empty set")
	}
	if got.VisibleColumns == nil {
		t.Error("explicitly saved empty set loaded as nil")
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := NewFileStore(path).Load(); err == nil {
		t.Error("Load succeeded on corrupt file")
	}
}

func TestCookieStoreRoundTrip(t *testing.T) {
	// Save onto a response...
	rec := httptest.NewRecorder()
	saveReq := httptest.NewRequest(http.MethodPost, "/prefs", nil)
	if err := NewCookieStore(rec, saveReq).Save(Preferences{
		VisibleColumns: []string{"title", "journal"},
		SearchField:    "journal",
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 2 {
		t.Fatalf("Save set %d cookies, want 2 slots", len(cookies))
	}

	// ...then load from a request carrying those cookies back.
	loadReq := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		loadReq.AddCookie(c)
	}
	got, ok, err := NewCookieStore(nil, loadReq).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("Load reported ok=false with both cookies present")
	}
	if !reflect.DeepEqual(got.VisibleColumns, []string{"title", "journal"}) {
		t.Errorf("VisibleColumns = %v", got.VisibleColumns)
	}
	if got.SearchField != "journal" {
		t.Errorf("SearchField = %q", got.SearchField)
	}
}

func TestCookieStoreNoCookies(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok, err := NewCookieStore(nil, req).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("Load reported ok=true with no cookies")
	}
}

func TestCookieStoreEmptySearchFieldMeansGlobal(t *testing.T) {
	rec := httptest.NewRecorder()
	saveReq := httptest.NewRequest(http.MethodPost, "/prefs", nil)
	if err := NewCookieStore(rec, saveReq).Save(Preferences{
		VisibleColumns: []string{"title"},
		SearchField:    "",
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loadReq := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		loadReq.AddCookie(c)
	}
	got, ok, err := NewCookieStore(nil, loadReq).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("Load reported ok=false")
	}
	if got.SearchField != "" {
		t.Errorf("SearchField = %q, want empty (whole-table search)", got.SearchField)
	}
}
