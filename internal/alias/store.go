// SPDX-License-Identifier: MPL-2.0

package alias

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

// catalogSuffix completes the per-tool catalog file name: a dotfile named
// after the tool, e.g. ~/.reprise-aliases.toml.
const catalogSuffix = "-aliases.toml"

type (
	// Store owns loading and saving alias tables. Each tool identity gets its
	// own catalog file under Dir; different tools never share a table.
	Store struct {
		// Dir is the directory holding catalog files. Empty means the user's
		// home directory, resolved at call time.
		Dir string
	}

	// recordDoc is the persisted form of a Record.
	recordDoc struct {
		Description string    `toml:"description,omitempty"`
		Command     []string  `toml:"command"`
		UpdatedAt   time.Time `toml:"updated_at"`
	}
)

// NewStore returns a store rooted at dir. Pass "" for the default per-user
// location.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// CatalogPath returns the catalog file path for the given tool identity.
func (s *Store) CatalogPath(tool string) (string, error) {
	dir := s.Dir
	if dir == "" {
		home, err := homeDir()
		if err != nil {
			return "", fmt.Errorf("resolving catalog directory: %w", err)
		}
		dir = home
	}
	return filepath.Join(dir, "."+tool+catalogSuffix), nil
}

// Load reads the alias table for a tool. A missing file yields an empty
// table; an unparsable file fails with ErrStoreCorrupt. Individual records
// that violate the schema (empty key or empty command) are dropped with a
// warning and freeze the table, so a later Save cannot silently overwrite
// the damaged file.
func (s *Store) Load(tool string) (*Table, error) {
	catalogPath, err := s.CatalogPath(tool)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(catalogPath)
	if os.IsNotExist(err) {
		return NewTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStoreCorrupt, catalogPath, err)
	}

	var doc map[string]recordDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStoreCorrupt, catalogPath, err)
	}

	table := NewTable()
	for key, rd := range doc {
		switch {
		case key == "" || !strings.HasPrefix(key, "/"):
			log.Warn("dropping alias with non-canonical key", "catalog", catalogPath, "key", key)
			table.frozen = true
		case len(rd.Command) == 0:
			log.Warn("dropping alias with empty command", "catalog", catalogPath, "key", key)
			table.frozen = true
		default:
			table.records[CanonicalKey(key)] = Record{
				Command:     rd.Command,
				Description: rd.Description,
				UpdatedAt:   rd.UpdatedAt,
			}
		}
	}
	return table, nil
}

// Save writes the table back to the tool's catalog file. The write is atomic
// with respect to process crash: the document is written to a temporary file
// in the same directory and renamed into place, so the catalog is never
// observed half-written. Failures surface ErrStoreWriteFailed; the in-memory
// table keeps its mutations either way.
func (s *Store) Save(t *Table, tool string) error {
	catalogPath, err := s.CatalogPath(tool)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWriteFailed, err)
	}
	if t.frozen {
		return fmt.Errorf("%w: %s failed validation at load; fix or delete it before saving",
			ErrStoreWriteFailed, catalogPath)
	}

	doc := make(map[string]recordDoc, t.Len())
	for key, rec := range t.records {
		doc[string(key)] = recordDoc{
			Description: rec.Description,
			Command:     rec.Command,
			UpdatedAt:   rec.UpdatedAt,
		}
	}
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrStoreWriteFailed, catalogPath, err)
	}

	if err := writeFileAtomic(catalogPath, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStoreWriteFailed, catalogPath, err)
	}
	t.dirty = false
	return nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place, so a crash mid-write never leaves a torn catalog behind.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	// Best-effort; some filesystems do not support chmod here.
	_ = tmp.Chmod(perm)

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	committed = true
	return nil
}
