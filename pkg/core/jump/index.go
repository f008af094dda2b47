package jump

import (
	"context"
	"slices"

	"github.com/matzehuels/reorder/pkg/core/dnd"
)

// indexKey identifies a lookup by the identity of the member slice and the
// target, never by their contents.
type indexKey struct {
	head   **dnd.DraggableDimension
	length int
	target *dnd.DraggableDimension
}

// resolveIndex returns the position of target in members, or -1.
func (j *Jumper) resolveIndex(ctx context.Context, members []*dnd.DraggableDimension, target *dnd.DraggableDimension) int {
	key := indexKey{length: len(members), target: target}
	if len(members) > 0 {
		key.head = &members[0]
	}
	return j.index.Get(ctx, "index", key, func() int {
		return slices.Index(members, target)
	})
}
