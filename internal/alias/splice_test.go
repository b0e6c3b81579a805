// SPDX-License-Identifier: MPL-2.0

package alias

import (
	"slices"
	"testing"
)

func TestSplice(t *testing.T) {
	t.Parallel()

	t.Run("stored tokens first, trailing after", func(t *testing.T) {
		t.Parallel()
		rec := Record{Command: []string{"task", "run", "build"}}
		got := Splice(rec, []string{"--fast", "x"})
		want := []string{"task", "run", "build", "--fast", "x"}
		if !slices.Equal(got, want) {
			t.Errorf("Splice = %v, want %v", got, want)
		}
	})

	t.Run("no trailing arguments", func(t *testing.T) {
		t.Parallel()
		rec := Record{Command: []string{"task", "build"}}
		got := Splice(rec, nil)
		if !slices.Equal(got, []string{"task", "build"}) {
			t.Errorf("Splice = %v", got)
		}
	})

	t.Run("does not mutate the record", func(t *testing.T) {
		t.Parallel()
		rec := Record{Command: []string{"task"}}
		_ = Splice(rec, []string{"extra"})
		if !slices.Equal(rec.Command, []string{"task"}) {
			t.Errorf("record mutated: %v", rec.Command)
		}
	})
}
