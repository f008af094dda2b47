package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/reorder/pkg/core/dnd"
	"github.com/matzehuels/reorder/pkg/core/geom"
	"github.com/matzehuels/reorder/pkg/core/jump"
	"github.com/matzehuels/reorder/pkg/errors"
	"github.com/matzehuels/reorder/pkg/session"
)

// jumpOpts holds the command-line flags for the jump command.
type jumpOpts struct {
	board  string // board file (default: configured or built-in board)
	drag   string // draggable to lift
	moves  string // move script, e.g. "ffb"
	cancel bool   // cancel instead of dropping after the last move
	json   bool   // emit a JSON report instead of styled text
}

// stepReport is one move of a jump replay.
type stepReport struct {
	Move        string                 `json:"move"`
	Outcome     string                 `json:"outcome"`
	Center      *geom.Position         `json:"center,omitempty"`
	Destination *dnd.DraggableLocation `json:"destination,omitempty"`
	Displaced   []dnd.DraggableID      `json:"displaced,omitempty"`
	Code        errors.Code            `json:"code,omitempty"`
	Reason      string                 `json:"reason,omitempty"`
}

// jumpReport is the JSON document written by jump --json.
type jumpReport struct {
	Session string             `json:"session"`
	Steps   []stepReport       `json:"steps"`
	Result  session.DropResult `json:"result"`
}

// jumpCommand creates the jump command for replaying keyboard moves.
func (c *CLI) jumpCommand() *cobra.Command {
	var opts jumpOpts

	cmd := &cobra.Command{
		Use:   "jump",
		Short: "Lift an item and replay keyboard moves against a board",
		Long: `Lift an item and replay keyboard moves against a board.

The move script is a string of 'f' (one slot forward) and 'b' (one slot
backward). Each move is reported with the item's new center, its destination
slot and the siblings displaced to make room. Moves past either end of the
list are rejected and leave the drag unchanged.

After the last move the item is dropped and the new order printed.`,
		Example: `  reorder jump --drag bump --moves bb
  reorder jump --scene board.toml --drag save --moves ff --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runJump(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.board, "scene", "s", "", "board file (default: configured or built-in board)")
	cmd.Flags().StringVarP(&opts.drag, "drag", "d", "", "id of the item to lift")
	cmd.Flags().StringVarP(&opts.moves, "moves", "m", "", "move script of f (forward) and b (backward)")
	cmd.Flags().BoolVar(&opts.cancel, "cancel", false, "cancel the drag after the last move instead of dropping")
	cmd.Flags().BoolVar(&opts.json, "json", false, "write a JSON report")
	_ = cmd.MarkFlagRequired("drag")
	_ = cmd.MarkFlagRequired("moves")
	_ = cmd.RegisterFlagCompletionFunc("drag", c.itemIDs)

	return cmd
}

// runJump lifts the item, replays the moves and ends the drag.
func (c *CLI) runJump(ctx context.Context, opts jumpOpts) error {
	logger := loggerFromContext(ctx)

	dirs, err := parseMoves(opts.moves)
	if err != nil {
		return err
	}
	board, err := c.loadBoard(ctx, opts.board)
	if err != nil {
		return err
	}
	s, _, err := liftItem(ctx, board, opts.drag)
	if err != nil {
		return err
	}
	logger.Debug("Lifted", "session", s.ID, "draggable", s.DraggableID, "index", s.Source.Index)

	prog := newProgress(logger)
	steps := make([]stepReport, 0, len(dirs))
	for _, forward := range dirs {
		if err := ctx.Err(); err != nil {
			return err
		}
		steps = append(steps, newStepReport(forward, s.Move(ctx, forward)))
	}

	var res session.DropResult
	if opts.cancel {
		res, err = s.Cancel(ctx)
	} else {
		res, err = s.Drop(ctx)
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Replayed %d moves", len(dirs)))

	if opts.json {
		return writeJSON(c.out, jumpReport{Session: s.ID, Steps: steps, Result: res})
	}
	printJumpReport(c.out, board.Label(s.DraggableID), steps, res)
	return nil
}

func newStepReport(forward bool, res jump.Result) stepReport {
	step := stepReport{Move: direction(forward), Outcome: res.Outcome.String()}
	if !res.IsAccepted() {
		step.Code = errors.GetCode(res.Reason)
		step.Reason = errors.UserMessage(res.Reason)
		return step
	}
	center := res.Center
	step.Center = &center
	step.Destination = res.Impact.Destination
	step.Displaced = res.Impact.Movement.Draggables
	return step
}

func printJumpReport(w io.Writer, label string, steps []stepReport, res session.DropResult) {
	printInfo(w, "Lifted %s from %s[%d]", StyleHighlight.Render(label), res.Source.DroppableID, res.Source.Index)
	for _, st := range steps {
		if st.Code != "" {
			printError(w, "%-8s rejected (%s)", st.Move, st.Code)
			continue
		}
		printSuccess(w, "%-8s %s %s[%d] at (%g, %g)", st.Move, iconArrow,
			st.Destination.DroppableID, st.Destination.Index, st.Center.X, st.Center.Y)
		if len(st.Displaced) > 0 {
			ids := make([]string, len(st.Displaced))
			for i, id := range st.Displaced {
				ids[i] = string(id)
			}
			printDetail(w, "displaced: %s", styleDisplaced.Render(fmt.Sprint(ids)))
		}
	}
	printNewline(w)

	if res.Cancelled {
		printKeyValue(w, "Cancelled", fmt.Sprintf("back at index %d", res.Source.Index))
	} else if res.Destination != nil {
		printKeyValue(w, "Dropped", fmt.Sprintf("%s[%d]", res.Destination.DroppableID, res.Destination.Index))
	}
	order := make([]string, len(res.Order))
	for i, id := range res.Order {
		order[i] = string(id)
	}
	printOrder(w, order, string(res.DraggableID))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
