package scene

import (
	"github.com/matzehuels/reorder/pkg/core/dnd"
	"github.com/matzehuels/reorder/pkg/core/geom"
)

// Snapshot lays out every droppable and returns the dimension maps.
func (s *Scene) Snapshot() (dnd.Snapshot, error) {
	snap := dnd.Snapshot{
		Draggables: dnd.DraggableMap{},
		Droppables: dnd.DroppableMap{},
	}
	for _, d := range s.Droppables {
		droppable, items, err := d.layout()
		if err != nil {
			return dnd.Snapshot{}, err
		}
		snap.Droppables[droppable.ID] = droppable
		for _, it := range items {
			snap.Draggables[it.ID] = it
		}
	}
	return snap, nil
}

// layout places items back to back along the axis. Each item occupies its
// leading margin, its size and its trailing margin, followed by the gap.
func (d Droppable) layout() (*dnd.DroppableDimension, []*dnd.DraggableDimension, error) {
	axis, err := d.axis()
	if err != nil {
		return nil, nil, err
	}

	origin := geom.Position{X: d.X, Y: d.Y}
	cursor := origin.Get(axis.Line)
	crossStart := origin.Get(axis.CrossLine)
	maxCross := d.Cross

	items := make([]*dnd.DraggableDimension, 0, len(d.Items))
	for _, it := range d.Items {
		cross := it.Cross
		if cross == 0 {
			cross = d.Cross
		}
		maxCross = max(maxCross, cross)

		start := cursor + it.Margin.Start(axis)
		topLeft := geom.Patch(axis.Line, start, crossStart)
		size := geom.Patch(axis.Line, it.Size, cross)
		rect := geom.NewRect(topLeft.X, topLeft.Y, size.X, size.Y)

		items = append(items, &dnd.DraggableDimension{
			ID:          dnd.DraggableID(it.ID),
			DroppableID: dnd.DroppableID(d.ID),
			Page:        dnd.NewBox(rect, it.Margin),
		})
		cursor = start + it.Size + it.Margin.End(axis) + d.Gap
	}

	extent := geom.Patch(axis.Line, cursor-origin.Get(axis.Line), maxCross)
	bounds := geom.NewRect(origin.X, origin.Y, extent.X, extent.Y)
	droppable := &dnd.DroppableDimension{
		ID:   dnd.DroppableID(d.ID),
		Axis: axis,
		Page: dnd.NewBox(bounds, geom.Spacing{}),
	}
	return droppable, items, nil
}
