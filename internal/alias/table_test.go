// SPDX-License-Identifier: MPL-2.0

package alias

import (
	"errors"
	"slices"
	"testing"
)

func TestTableSet(t *testing.T) {
	t.Parallel()

	t.Run("first set creates", func(t *testing.T) {
		t.Parallel()
		table := NewTable()
		rec, created := table.Set("/b", []string{"task", "build"}, "builds")
		if !created {
			t.Error("expected created = true on first set")
		}
		if !slices.Equal(rec.Command, []string{"task", "build"}) {
			t.Errorf("unexpected command: %v", rec.Command)
		}
		if rec.UpdatedAt.IsZero() {
			t.Error("expected a timestamp")
		}
		if !table.Dirty() {
			t.Error("expected the table to be dirty after a set")
		}
	})

	t.Run("second set replaces, never merges", func(t *testing.T) {
		t.Parallel()
		table := NewTable()
		table.Set("/b", []string{"task", "build", "--fast"}, "")
		rec, created := table.Set("/b", []string{"task", "test"}, "")
		if created {
			t.Error("expected created = false on overwrite")
		}
		if !slices.Equal(rec.Command, []string{"task", "test"}) {
			t.Errorf("expected the old tokens to be gone, got %v", rec.Command)
		}
	})

	t.Run("empty description keeps the previous one", func(t *testing.T) {
		t.Parallel()
		table := NewTable()
		table.Set("/b", []string{"a"}, "original note")
		rec, _ := table.Set("/b", []string{"b"}, "")
		if rec.Description != "original note" {
			t.Errorf("expected the description to survive, got %q", rec.Description)
		}
		rec, _ = table.Set("/b", []string{"c"}, "new note")
		if rec.Description != "new note" {
			t.Errorf("expected the description to be replaced, got %q", rec.Description)
		}
	})

	t.Run("stored command is a copy", func(t *testing.T) {
		t.Parallel()
		table := NewTable()
		command := []string{"task", "build"}
		table.Set("/b", command, "")
		command[0] = "mutated"
		rec, _ := table.Get("/b")
		if rec.Command[0] != "task" {
			t.Error("table aliased the caller's slice")
		}
	})
}

func TestTableDelete(t *testing.T) {
	t.Parallel()
	table := NewTable()
	table.Set("/b", []string{"x"}, "")

	if !table.Delete("/b") {
		t.Error("expected delete of a present key to report true")
	}
	if table.Delete("/b") {
		t.Error("expected delete of an absent key to report false")
	}
	if _, ok := table.Get("/b"); ok {
		t.Error("record survived deletion")
	}
}

func TestTableRename(t *testing.T) {
	t.Parallel()

	t.Run("moves the record", func(t *testing.T) {
		t.Parallel()
		table := NewTable()
		table.Set("/old", []string{"x"}, "note")
		if err := table.Rename("/old", "/new"); err != nil {
			t.Fatalf("Rename failed: %v", err)
		}
		if _, ok := table.Get("/old"); ok {
			t.Error("old key still present")
		}
		rec, ok := table.Get("/new")
		if !ok {
			t.Fatal("new key absent")
		}
		if rec.Description != "note" {
			t.Errorf("description lost in rename: %q", rec.Description)
		}
	})

	t.Run("absent source", func(t *testing.T) {
		t.Parallel()
		table := NewTable()
		if err := table.Rename("/missing", "/x"); !errors.Is(err, ErrAliasNotFound) {
			t.Errorf("expected ErrAliasNotFound, got %v", err)
		}
	})

	t.Run("occupied target", func(t *testing.T) {
		t.Parallel()
		table := NewTable()
		table.Set("/a", []string{"x"}, "")
		table.Set("/b", []string{"y"}, "")
		if err := table.Rename("/a", "/b"); !errors.Is(err, ErrAliasExists) {
			t.Errorf("expected ErrAliasExists, got %v", err)
		}
	})
}

func TestTableList(t *testing.T) {
	t.Parallel()
	table := NewTable()
	table.Set("/b", []string{"global-b"}, "")
	table.Set("/proj/b", []string{"local-b"}, "")
	table.Set("/proj/a", []string{"local-a"}, "")
	table.Set("/other/c", []string{"other-c"}, "")

	t.Run("all scopes, sorted by label then scope", func(t *testing.T) {
		t.Parallel()
		entries := table.List(AllScopes())
		got := make([]CanonicalKey, len(entries))
		for i, e := range entries {
			got[i] = e.Key
		}
		want := []CanonicalKey{"/proj/a", "/b", "/proj/b", "/other/c"}
		if !slices.Equal(got, want) {
			t.Errorf("List(AllScopes()) order = %v, want %v", got, want)
		}
	})

	t.Run("global only", func(t *testing.T) {
		t.Parallel()
		entries := table.List(GlobalScope())
		if len(entries) != 1 || entries[0].Key != "/b" {
			t.Errorf("List(GlobalScope()) = %v", entries)
		}
	})

	t.Run("one directory", func(t *testing.T) {
		t.Parallel()
		entries := table.List(DirScope("/proj"))
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[0].Key != "/proj/a" || entries[1].Key != "/proj/b" {
			t.Errorf("List(DirScope(/proj)) = %v", entries)
		}
	})
}
