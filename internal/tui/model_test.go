package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/readnum/internal/config"
)

// newTestModel returns an explorer model with a laid-out window.
func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(config.DefaultConfig(), "test")
	if err != nil {
		t.Fatalf("NewModel returned error: %v", err)
	}
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

// typeString feeds each rune of s to the model as a key press.
func typeString(m Model, s string) Model {
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func pressKey(m Model, keyType tea.KeyType) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: keyType})
	return updated.(Model)
}

func TestModel_LivePreview(t *testing.T) {
	m := newTestModel(t)
	m = typeString(m, "1234567.89")

	view := m.View()
	if !strings.Contains(view, "1,234,567.89") {
		t.Errorf("expected view to contain the formatted preview, got:\n%s", view)
	}
	if !strings.Contains(view, "grouped") {
		t.Errorf("expected view to name the representation mode, got:\n%s", view)
	}
}

func TestModel_PreviewExactIntegers(t *testing.T) {
	m := newTestModel(t)

	formatted, mode, err := m.preview("9007199254740993")
	if err != nil {
		t.Fatalf("preview returned error: %v", err)
	}
	if formatted != "9,007,199,254,740,993" {
		t.Errorf("preview = %q; want exact grouped digits", formatted)
	}
	if mode != "grouped" {
		t.Errorf("mode = %q; want grouped", mode)
	}
}

func TestModel_PreviewBadToken(t *testing.T) {
	m := newTestModel(t)

	if _, _, err := m.preview("wibble"); err == nil {
		t.Error("expected error for unparsable token")
	}
}

func TestModel_ToggleShortform(t *testing.T) {
	m := newTestModel(t)
	m = typeString(m, "12345678")

	m = pressKey(m, tea.KeyCtrlS)

	if !m.formatter.Options().UseShortform {
		t.Fatal("expected shortform to be enabled after toggle")
	}
	view := m.View()
	if !strings.Contains(view, "12M") {
		t.Errorf("expected shortform preview, got:\n%s", view)
	}

	m = pressKey(m, tea.KeyCtrlS)
	if m.formatter.Options().UseShortform {
		t.Error("expected second toggle to disable shortform")
	}
}

func TestModel_PrecisionAdjustment(t *testing.T) {
	m := newTestModel(t)

	if m.formatter.Options().Precision != nil {
		t.Fatal("precondition: precision should start natural")
	}

	// natural -> 0 -> 1
	m = pressKey(m, tea.KeyUp)
	m = pressKey(m, tea.KeyUp)
	opts := m.formatter.Options()
	if opts.Precision == nil || *opts.Precision != 1 {
		t.Fatalf("expected precision 1 after two increments, got %v", opts.Precision)
	}

	// 1 -> 0 -> natural
	m = pressKey(m, tea.KeyDown)
	m = pressKey(m, tea.KeyDown)
	if m.formatter.Options().Precision != nil {
		t.Error("expected precision to return to natural")
	}

	// stepping below natural stays natural
	m = pressKey(m, tea.KeyDown)
	if m.formatter.Options().Precision != nil {
		t.Error("expected precision to stay natural")
	}
}

func TestModel_CommitToHistory(t *testing.T) {
	m := newTestModel(t)
	m = typeString(m, "1234567")
	m = pressKey(m, tea.KeyEnter)

	if len(m.history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(m.history))
	}
	if m.history[0].formatted != "1,234,567" {
		t.Errorf("history entry = %q; want %q", m.history[0].formatted, "1,234,567")
	}
	if m.input.Value() != "" {
		t.Errorf("expected input to be cleared after commit, got %q", m.input.Value())
	}
	if m.metrics.formatted != 1 {
		t.Errorf("expected session counter 1, got %d", m.metrics.formatted)
	}

	view := m.View()
	if !strings.Contains(view, "History") {
		t.Errorf("expected history panel in view, got:\n%s", view)
	}
}

func TestModel_CommitIgnoresEmptyAndInvalid(t *testing.T) {
	m := newTestModel(t)

	m = pressKey(m, tea.KeyEnter)
	if len(m.history) != 0 {
		t.Error("empty input should not be committed")
	}

	m = typeString(m, "xyz")
	m = pressKey(m, tea.KeyEnter)
	if len(m.history) != 0 {
		t.Error("invalid input should not be committed")
	}
}

func TestModel_HistoryBounded(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < maxHistory+3; i++ {
		m = typeString(m, "42")
		m = pressKey(m, tea.KeyEnter)
	}

	if len(m.history) != maxHistory {
		t.Errorf("expected history capped at %d entries, got %d", maxHistory, len(m.history))
	}
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("expected tea.Quit message, got %T", msg)
	}
}

func TestModel_MemStats(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(MemStatsMsg{Alloc: 1024 * 1024, NumGoroutine: 4})
	m = updated.(Model)

	if m.metrics.alloc != 1024*1024 {
		t.Errorf("expected alloc to be recorded, got %d", m.metrics.alloc)
	}
}
