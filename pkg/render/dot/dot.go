// Package dot renders a droppable's drag state as a Graphviz diagram.
//
// Members are chained in display order. Displaced items are filled, the
// dragged item is outlined in bold and the destination slot is labelled, so
// the diagram shows at a glance what a keyboard jump did. It is a debugging
// aid for the CLI, not part of the jump computation.
package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/reorder/pkg/core/dnd"
	"github.com/matzehuels/reorder/pkg/core/geom"
)

// Options controls labelling.
type Options struct {
	// Label returns the display text for an item. Nil shows ids.
	Label func(dnd.DraggableID) string
}

// ToDOT returns a Graphviz DOT digraph for members of droppable under
// impact, with dragging as the held item.
//
// Vertical droppables are drawn top to bottom and horizontal ones left to
// right. The members slice is not modified.
func ToDOT(droppable *dnd.DroppableDimension, members []*dnd.DraggableDimension, impact dnd.DragImpact, dragging dnd.DraggableID, opts Options) string {
	rankdir := "TB"
	if droppable.Axis.Direction == geom.DirectionHorizontal {
		rankdir = "LR"
	}
	label := opts.Label
	if label == nil {
		label = func(id dnd.DraggableID) string { return string(id) }
	}

	destIndex := -1
	if d := impact.Destination; d != nil && d.DroppableID == droppable.ID {
		destIndex = d.Index
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", string(droppable.ID))
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, shape=box, style=\"rounded\"];\n")
	buf.WriteString("  edge [arrowhead=none, color=\"#999999\"];\n\n")

	for i, m := range members {
		text := fmt.Sprintf("%d: %s", i, label(m.ID))
		attrs := ""
		switch {
		case m.ID == dragging:
			attrs = ", penwidth=2.5, color=\"#0f766e\""
		case impact.IsDisplaced(m.ID):
			attrs = ", style=\"rounded,filled\", fillcolor=\"#fde68a\""
		}
		if i == destIndex {
			text += " ◂ destination"
		}
		fmt.Fprintf(&buf, "  n%d [label=%q%s];\n", i, text, attrs)
	}
	if len(members) > 1 {
		buf.WriteString("\n")
	}
	for i := 1; i < len(members); i++ {
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", i-1, i)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT document to SVG with Graphviz.
//
// Errors are wrapped with context using fmt.Errorf with %w.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
