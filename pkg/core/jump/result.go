package jump

import (
	"github.com/matzehuels/reorder/pkg/core/dnd"
	"github.com/matzehuels/reorder/pkg/core/geom"
)

// Outcome is the terminal state of a jump.
type Outcome int

const (
	Rejected Outcome = iota
	Accepted
)

func (o Outcome) String() string {
	if o == Accepted {
		return "accepted"
	}
	return "rejected"
}

// Result is either Rejected with a Reason, or Accepted with the centre the
// dragged item should move to and the new impact.
type Result struct {
	Outcome Outcome
	Center  geom.Position
	Impact  dnd.DragImpact
	Reason  error
}

// IsAccepted reports whether the jump produced a new impact.
func (r Result) IsAccepted() bool { return r.Outcome == Accepted }

func accepted(center geom.Position, impact dnd.DragImpact) Result {
	return Result{Outcome: Accepted, Center: center, Impact: impact}
}

func rejected(reason error) Result {
	return Result{Outcome: Rejected, Reason: reason}
}
