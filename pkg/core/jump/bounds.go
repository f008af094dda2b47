package jump

import "github.com/matzehuels/reorder/pkg/errors"

// proposeIndex returns currentIndex moved one slot in the direction of
// travel. Indexes outside [0, count-1] are rejected, never clamped or
// wrapped.
func proposeIndex(currentIndex, count int, isMovingForward bool) (int, error) {
	proposed := currentIndex - 1
	if isMovingForward {
		proposed = currentIndex + 1
	}

	if proposed > count-1 {
		return 0, errors.New(errors.ErrCodeOutOfRange, "cannot move forward beyond the last item (index %d of %d)", proposed, count)
	}
	if proposed < 0 {
		return 0, errors.New(errors.ErrCodeOutOfRange, "cannot move before the first item")
	}
	return proposed, nil
}
