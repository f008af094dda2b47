package cli

import (
	"context"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/reorder/internal/config"
	"github.com/matzehuels/reorder/pkg/core/dnd"
	"github.com/matzehuels/reorder/pkg/errors"
	"github.com/matzehuels/reorder/pkg/scene"
)

var (
	keyJ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	keyK     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func newTestModel(t *testing.T) ReorderModel {
	t.Helper()
	m, err := NewReorderModel(context.Background(), scene.Default(), newKeyMap(config.Default().Keys), "", 10)
	if err != nil {
		t.Fatalf("NewReorderModel() error = %v", err)
	}
	return m
}

func press(m ReorderModel, keys ...tea.KeyMsg) ReorderModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(ReorderModel)
	}
	return m
}

func TestReorderModelCursor(t *testing.T) {
	m := newTestModel(t)

	m = press(m, keyJ, keyJ)
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
	m = press(m, keyK, keyK, keyK)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 (clamped)", m.cursor)
	}
	m = press(m, keyJ, keyJ, keyJ, keyJ, keyJ, keyJ)
	if m.cursor != len(m.order)-1 {
		t.Errorf("cursor = %d, want %d (clamped)", m.cursor, len(m.order)-1)
	}
}

func TestReorderModelDrop(t *testing.T) {
	m := newTestModel(t)

	// Lift "bump" and jump it one slot toward the start.
	m = press(m, keyJ, keyJ, keyEnter)
	if m.drag == nil || m.drag.DraggableID != "bump" {
		t.Fatalf("drag = %v, want bump lifted", m.drag)
	}
	m = press(m, keyK)
	if m.cursor != 1 {
		t.Errorf("cursor during drag = %d, want 1", m.cursor)
	}
	want := []dnd.DraggableID{"triage", "bump", "changelog", "tag", "announce"}
	if got := m.visibleOrder(); !slices.Equal(got, want) {
		t.Errorf("visibleOrder() = %v, want %v", got, want)
	}

	m = press(m, keyEnter)
	if m.drag != nil {
		t.Fatal("drag should end on drop")
	}
	if m.Drops() != 1 {
		t.Errorf("Drops() = %d, want 1", m.Drops())
	}
	if !slices.Equal(m.order, want) {
		t.Errorf("order after drop = %v, want %v", m.order, want)
	}
	if m.cursor != 1 {
		t.Errorf("cursor after drop = %d, want 1", m.cursor)
	}
}

func TestReorderModelCancel(t *testing.T) {
	m := newTestModel(t)
	before := slices.Clone(m.order)

	m = press(m, keyJ, keyEnter, keyJ, keyJ, keyEsc)
	if m.drag != nil {
		t.Fatal("drag should end on cancel")
	}
	if !slices.Equal(m.order, before) {
		t.Errorf("order after cancel = %v, want %v", m.order, before)
	}
	if m.cursor != 1 {
		t.Errorf("cursor after cancel = %d, want home index 1", m.cursor)
	}
	if m.Drops() != 0 {
		t.Errorf("Drops() = %d, want 0", m.Drops())
	}
}

func TestReorderModelRejectedMove(t *testing.T) {
	m := newTestModel(t)

	m = press(m, keyEnter, keyK)
	if m.drag == nil {
		t.Fatal("rejected move should keep the drag active")
	}
	if !strings.Contains(m.status, string(errors.ErrCodeOutOfRange)) {
		t.Errorf("status = %q, want it to mention %s", m.status, errors.ErrCodeOutOfRange)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestReorderModelNextList(t *testing.T) {
	m := newTestModel(t)

	m = press(m, keyTab)
	want := []dnd.DraggableID{"save", "open", "close"}
	if !slices.Equal(m.order, want) {
		t.Errorf("order = %v, want %v", m.order, want)
	}
	m = press(m, keyTab)
	if m.order[0] != "triage" {
		t.Errorf("tab should wrap back to backlog, got %v", m.order)
	}
}

func TestReorderModelQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestReorderModelView(t *testing.T) {
	m := newTestModel(t)
	m = press(m, keyEnter)

	view := m.View()
	for _, want := range []string{"Release checklist", "Triage open issues", "lift/drop", "cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestNewReorderModelUnknownDroppable(t *testing.T) {
	_, err := NewReorderModel(context.Background(), scene.Default(), newKeyMap(config.Default().Keys), "nope", 10)
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestHelpKeys(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{[]string{"down", "j"}, "↓/j"},
		{[]string{"space", " ", "enter"}, "space/⏎"},
		{[]string{"esc"}, "esc"},
	}
	for _, tt := range tests {
		if got := helpKeys(tt.keys); got != tt.want {
			t.Errorf("helpKeys(%v) = %q, want %q", tt.keys, got, tt.want)
		}
	}
}
