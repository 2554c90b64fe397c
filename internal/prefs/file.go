package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// fileDoc is the on-disk shape. Revision changes on every save so tests and
// debugging can tell two saves of identical content apart.
type fileDoc struct {
	VisibleColumns []string  `json:"visible_columns"`
	SearchField    string    `json:"search_field"`
	Revision       string    `json:"revision"`
	SavedAt        time.Time `json:"saved_at"`
}

// FileStore keeps preferences in a JSON file, used by the terminal and
// export surfaces where there is no browser to hold them.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the per-user preference file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "litgrid", "prefs.json"), nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Load reads both slots. A missing file is not an error; it reports ok=false.
func (s *FileStore) Load() (Preferences, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Preferences{}, false, nil
		}
		return Preferences{}, false, fmt.Errorf("reading preferences: %w", err)
	}
	var doc fileDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return Preferences{}, false, fmt.Errorf("decoding preferences %s: %w", s.path, err)
	}
	return Preferences{
		VisibleColumns: doc.VisibleColumns,
		SearchField:    doc.SearchField,
	}, true, nil
}

// Save overwrites both slots with a fresh revision.
func (s *FileStore) Save(p Preferences) error {
	doc := fileDoc{
		VisibleColumns: p.VisibleColumns,
		SearchField:    p.SearchField,
		Revision:       uuid.NewString(),
		SavedAt:        time.Now().UTC(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating preferences dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}
