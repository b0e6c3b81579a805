// SPDX-License-Identifier: MPL-2.0

package alias

import (
	"slices"
	"strings"
	"time"
)

type (
	// Record is one stored alias: the ordered command tokens, an optional
	// description, and the creation/update timestamp. Records are mutated
	// only through explicit Set/Delete/Rename calls, never by lookups.
	Record struct {
		Command     []string
		Description string
		UpdatedAt   time.Time
	}

	// Entry pairs a canonical key with its record for listings.
	Entry struct {
		Key    CanonicalKey
		Record Record
	}

	// Table is the in-memory alias table for one tool identity. It is loaded
	// wholesale by Store.Load, owned exclusively by the invoking process, and
	// written back by Store.Save when mutated.
	Table struct {
		records map[CanonicalKey]Record
		dirty   bool
		// frozen marks a table whose persisted file contained invalid records.
		// A frozen table can be read but refuses to save, so corruption is
		// surfaced to the user instead of being silently rewritten.
		frozen bool
	}
)

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{records: make(map[CanonicalKey]Record)}
}

// Len returns the number of aliases in the table.
func (t *Table) Len() int { return len(t.records) }

// Dirty reports whether the table has unsaved mutations.
func (t *Table) Dirty() bool { return t.dirty }

// Frozen reports whether the table refuses saving because its persisted
// file failed validation at load time.
func (t *Table) Frozen() bool { return t.frozen }

// Get looks up a record by canonical key. Pure lookup, no side effects.
func (t *Table) Get(key CanonicalKey) (Record, bool) {
	rec, ok := t.records[key]
	return rec, ok
}

// Set inserts or unconditionally overwrites the record for key and reports
// whether it was created (true) or updated (false). Old and new token lists
// are never merged. An empty description on update keeps the previous one.
func (t *Table) Set(key CanonicalKey, command []string, description string) (Record, bool) {
	prev, existed := t.records[key]
	if description == "" && existed {
		description = prev.Description
	}
	rec := Record{
		Command:     slices.Clone(command),
		Description: description,
		UpdatedAt:   time.Now().UTC(),
	}
	t.records[key] = rec
	t.dirty = true
	return rec, !existed
}

// Delete removes the record for key and reports whether anything was
// removed. Deleting an absent key is not an error.
func (t *Table) Delete(key CanonicalKey) bool {
	if _, ok := t.records[key]; !ok {
		return false
	}
	delete(t.records, key)
	t.dirty = true
	return true
}

// Rename moves a record to a new key. It fails with ErrAliasNotFound when
// the source is absent and with ErrAliasExists when the target is taken.
func (t *Table) Rename(from, to CanonicalKey) error {
	rec, ok := t.records[from]
	if !ok {
		return ErrAliasNotFound
	}
	if _, taken := t.records[to]; taken {
		return ErrAliasExists
	}
	delete(t.records, from)
	rec.UpdatedAt = time.Now().UTC()
	t.records[to] = rec
	t.dirty = true
	return nil
}

type scopeKind int

const (
	scopeAll scopeKind = iota
	scopeGlobal
	scopeDir
)

// ScopeFilter selects which aliases List returns: everything, only global
// aliases, or only aliases scoped to one directory.
type ScopeFilter struct {
	kind scopeKind
	dir  string
}

// AllScopes matches every alias.
func AllScopes() ScopeFilter { return ScopeFilter{kind: scopeAll} }

// GlobalScope matches only global aliases.
func GlobalScope() ScopeFilter { return ScopeFilter{kind: scopeGlobal} }

// DirScope matches only aliases scoped to the given directory.
func DirScope(dir string) ScopeFilter {
	return ScopeFilter{kind: scopeDir, dir: canonicalDir(dir)}
}

func (f ScopeFilter) matches(key CanonicalKey) bool {
	switch f.kind {
	case scopeGlobal:
		return key.IsGlobal()
	case scopeDir:
		return key.ScopeDir() == f.dir
	default:
		return true
	}
}

// List returns the matching entries ordered by bare name, then scope
// directory, so that the same label groups together across scopes.
func (t *Table) List(filter ScopeFilter) []Entry {
	entries := make([]Entry, 0, len(t.records))
	for key, rec := range t.records {
		if filter.matches(key) {
			entries = append(entries, Entry{Key: key, Record: rec})
		}
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := strings.Compare(a.Key.Label(), b.Key.Label()); c != 0 {
			return c
		}
		return strings.Compare(a.Key.ScopeDir(), b.Key.ScopeDir())
	})
	return entries
}
