// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("permission denied")
	err := NewErrorContext().
		WithOperation("save alias catalog").
		WithResource("/home/user/.reprise-aliases.toml").
		Wrap(cause).
		BuildError()

	want := "failed to save alias catalog: /home/user/.reprise-aliases.toml: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable through errors.Is")
	}
}

func TestActionableErrorFormat(t *testing.T) {
	t.Parallel()

	inner := errors.New("disk full")
	wrapped := fmt.Errorf("write failed: %w", inner)
	ae := NewErrorContext().
		WithOperation("save alias catalog").
		WithSuggestion("Free some disk space").
		WithSuggestion("Check directory permissions").
		Wrap(wrapped).
		Build()

	t.Run("concise form lists suggestions", func(t *testing.T) {
		t.Parallel()
		out := ae.Format(false)
		if !strings.Contains(out, "• Free some disk space") {
			t.Errorf("missing first suggestion:\n%s", out)
		}
		if !strings.Contains(out, "• Check directory permissions") {
			t.Errorf("missing second suggestion:\n%s", out)
		}
		if strings.Contains(out, "Error chain") {
			t.Error("concise form must not print the error chain")
		}
	})

	t.Run("verbose form prints the chain", func(t *testing.T) {
		t.Parallel()
		out := ae.Format(true)
		if !strings.Contains(out, "Error chain:") {
			t.Errorf("missing error chain:\n%s", out)
		}
		if !strings.Contains(out, "1. write failed: disk full") {
			t.Errorf("missing chain entry:\n%s", out)
		}
		if !strings.Contains(out, "2. disk full") {
			t.Errorf("missing unwrapped entry:\n%s", out)
		}
	})
}

func TestBuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if err := NewErrorContext().WithResource("x").BuildError(); err != nil {
		t.Errorf("expected nil without an operation, got %v", err)
	}
}

func TestCatalogCards(t *testing.T) {
	t.Parallel()

	for _, id := range []Id{
		AliasNotFoundId, CatalogCorruptId, ScopeOutOfRangeId,
		TaskfileNotFoundId, TaskNotFoundId, ConfigLoadFailedId, ShellNotFoundId,
	} {
		card := Get(id)
		if card == nil {
			t.Errorf("Get(%d) = nil", id)
			continue
		}
		if card.Id() != id {
			t.Errorf("card %d reports id %d", id, card.Id())
		}
		if strings.TrimSpace(card.MarkdownMsg()) == "" {
			t.Errorf("card %d has no content", id)
		}
	}

	if Get(Id(9999)) != nil {
		t.Error("expected nil for an unknown id")
	}

	all := Values()
	if len(all) != 7 {
		t.Errorf("Values() returned %d cards, want 7", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Id() >= all[i].Id() {
			t.Error("Values() is not ordered by id")
			break
		}
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	out, err := Get(AliasNotFoundId).Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "Alias not found") {
		t.Errorf("rendered card lost its heading:\n%s", out)
	}
}
