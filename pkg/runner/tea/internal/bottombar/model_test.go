package bottombar

import (
	"strings"
	"testing"

	"tableflip.dev/habits/pkg/runner/tea/internal/theme"
)

func TestViewJoinsSegments(t *testing.T) {
	m := New(theme.FooterTheme{})
	m.SetHelp("q quit")
	m.SetToast("Task deleted")
	m.SetBusy(true)
	got := m.View()
	for _, want := range []string{"Task deleted", "Completing...", "q quit"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
	if strings.Index(got, "Task deleted") > strings.Index(got, "q quit") {
		t.Fatalf("expected toast before help: %q", got)
	}
}

func TestSearchModeShowsInput(t *testing.T) {
	m := New(theme.FooterTheme{})
	m.SetHelp("q quit")
	m.SetMode(ModeSearch)
	m.UpdateSearchInput("milk")
	if got := m.View(); got != "/milk" {
		t.Fatalf("expected search line, got %q", got)
	}
	m.SetMode(ModeNormal)
	if got := m.View(); got != "q quit" {
		t.Fatalf("expected help line after leaving search, got %q", got)
	}
}
