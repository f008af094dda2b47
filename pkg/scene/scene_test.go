package scene

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/reorder/pkg/core/dnd"
	"github.com/matzehuels/reorder/pkg/core/geom"
	"github.com/matzehuels/reorder/pkg/errors"
)

const board = `
title = "test"

[[droppable]]
id = "col"
axis = "vertical"
x = 2
y = 5
cross = 10
gap = 1

  [[droppable.item]]
  id = "a"
  size = 3
  margin = { top = 1, bottom = 2 }

  [[droppable.item]]
  id = "b"
  label = "Bee"
  size = 4
  cross = 6

[[droppable]]
id = "row"
axis = "horizontal"
cross = 2

  [[droppable.item]]
  id = "x"
  size = 5

  [[droppable.item]]
  id = "y"
  size = 5
`

func TestParseAndSnapshot(t *testing.T) {
	s, err := Parse([]byte(board))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Title != "test" || len(s.Droppables) != 2 {
		t.Fatalf("unexpected scene: %+v", s)
	}

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	a := snap.Draggables["a"]
	if want := geom.NewRect(2, 6, 10, 3); a.Page.WithoutMargin != want {
		t.Errorf("a = %+v, want %+v", a.Page.WithoutMargin, want)
	}
	if a.Page.WithMargin.Height() != 6 {
		t.Errorf("a with margin height = %v, want 6", a.Page.WithMargin.Height())
	}

	// a occupies 5..11 with margins, then a gap of 1.
	b := snap.Draggables["b"]
	if want := geom.NewRect(2, 12, 6, 4); b.Page.WithoutMargin != want {
		t.Errorf("b = %+v, want %+v", b.Page.WithoutMargin, want)
	}

	col := snap.Droppables["col"]
	if col.Axis != geom.Vertical {
		t.Errorf("col axis = %+v", col.Axis)
	}
	if col.Page.WithoutMargin.Height() != 12 || col.Page.WithoutMargin.Width() != 10 {
		t.Errorf("col bounds = %+v", col.Page.WithoutMargin)
	}

	row := snap.Droppables["row"]
	if row.Axis != geom.Horizontal {
		t.Errorf("row axis = %+v", row.Axis)
	}
	if y := snap.Draggables["y"].Page.WithoutMargin; y.Left != 5 || y.Height() != 2 {
		t.Errorf("y = %+v", y)
	}

	got := dnd.MemberIDs(dnd.Members(context.Background(), col, snap.Draggables))
	if !slices.Equal(got, []dnd.DraggableID{"a", "b"}) {
		t.Errorf("col members = %v", got)
	}
}

func TestLabel(t *testing.T) {
	s, err := Parse([]byte(board))
	if err != nil {
		t.Fatal(err)
	}
	if s.Label("b") != "Bee" || s.Label("a") != "a" || s.Label("zzz") != "zzz" {
		t.Error("Label fallback mismatch")
	}
	if s.Droppable("row") == nil || s.Droppable("nope") != nil {
		t.Error("Droppable lookup mismatch")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		board string
	}{
		{"no droppables", `title = "x"`},
		{"bad axis", "[[droppable]]\nid = \"d\"\naxis = \"diagonal\"\ncross = 1\n"},
		{"empty droppable id", "[[droppable]]\nid = \"\"\ncross = 1\n"},
		{"duplicate droppable", "[[droppable]]\nid = \"d\"\ncross = 1\n[[droppable]]\nid = \"d\"\ncross = 1\n"},
		{"duplicate item", "[[droppable]]\nid = \"d\"\ncross = 1\n[[droppable.item]]\nid = \"i\"\nsize = 1\n[[droppable.item]]\nid = \"i\"\nsize = 1\n"},
		{"zero size", "[[droppable]]\nid = \"d\"\ncross = 1\n[[droppable.item]]\nid = \"i\"\n"},
		{"no cross", "[[droppable]]\nid = \"d\"\n[[droppable.item]]\nid = \"i\"\nsize = 1\n"},
		{"space in id", "[[droppable]]\nid = \"d\"\ncross = 1\n[[droppable.item]]\nid = \"a b\"\nsize = 1\n"},
		{"malformed toml", "[[droppable"},
		{"negative gap", "[[droppable]]\nid = \"d\"\ncross = 1\ngap = -2\n"},
		{"negative margin", "[[droppable]]\nid = \"d\"\ncross = 1\n[[droppable.item]]\nid = \"i\"\nsize = 1\nmargin = { top = -1 }\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.board))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !errors.Is(err, errors.ErrCodeInvalidScene) {
				t.Errorf("error code = %v, want %s", errors.GetCode(err), errors.ErrCodeInvalidScene)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.toml")
	if err := os.WriteFile(path, []byte(board), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Title != "test" {
		t.Errorf("Title = %q", s.Title)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file: err = %v", err)
	}
	if _, err := Load(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("empty path: err = %v", err)
	}
}

func TestDefault(t *testing.T) {
	s := Default()
	if s.Droppable("backlog") == nil || s.Droppable("toolbar") == nil {
		t.Fatal("default board should have backlog and toolbar")
	}
	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	members := dnd.Members(context.Background(), snap.Droppables["backlog"], snap.Draggables)
	if len(members) != 5 || members[0].ID != "triage" {
		t.Errorf("backlog members = %v", dnd.MemberIDs(members))
	}
}

func TestApplyOrder(t *testing.T) {
	s, err := Parse([]byte(board))
	if err != nil {
		t.Fatal(err)
	}

	if err := s.ApplyOrder("col", []dnd.DraggableID{"b", "a"}); err != nil {
		t.Fatalf("ApplyOrder() error = %v", err)
	}
	snap, err := s.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	members := dnd.Members(context.Background(), snap.Droppables["col"], snap.Draggables)
	if got := dnd.MemberIDs(members); !slices.Equal(got, []dnd.DraggableID{"b", "a"}) {
		t.Errorf("members after ApplyOrder = %v, want [b a]", got)
	}
	// b now leads the column at y=5.
	if top := snap.Draggables["b"].Page.WithoutMargin.Top; top != 5 {
		t.Errorf("b top = %v, want 5", top)
	}

	tests := []struct {
		name      string
		droppable string
		order     []dnd.DraggableID
		code      errors.Code
	}{
		{"unknown droppable", "nope", []dnd.DraggableID{"a"}, errors.ErrCodeNotFound},
		{"short order", "col", []dnd.DraggableID{"a"}, errors.ErrCodeInvalidInput},
		{"foreign item", "col", []dnd.DraggableID{"a", "x"}, errors.ErrCodeInvalidInput},
		{"duplicate item", "col", []dnd.DraggableID{"a", "a"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ApplyOrder(tt.droppable, tt.order)
			if !errors.Is(err, tt.code) {
				t.Errorf("ApplyOrder() error = %v, want %s", err, tt.code)
			}
		})
	}
}
