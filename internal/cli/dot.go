package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/reorder/pkg/core/dnd"
	"github.com/matzehuels/reorder/pkg/errors"
	"github.com/matzehuels/reorder/pkg/render/dot"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// dotOpts holds the command-line flags for the dot command.
type dotOpts struct {
	board  string // board file
	drag   string // draggable to lift
	moves  string // optional move script applied before rendering
	output string // output file; stdout when empty
	format string // dot or svg; inferred from output when empty
}

// dotCommand creates the dot command for diagramming a drag.
func (c *CLI) dotCommand() *cobra.Command {
	var opts dotOpts

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Diagram a droppable's drag state with Graphviz",
		Long: `Diagram a droppable's drag state with Graphviz.

Lifts an item, applies an optional move script and writes the droppable as a
Graphviz graph: the held item is outlined, displaced siblings are filled and
the destination slot is labelled. The format is taken from --format or the
output file extension (.dot or .svg).`,
		Example: `  reorder dot --drag bump --moves b
  reorder dot --drag save --moves f -o toolbar.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDot(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.board, "scene", "s", "", "board file (default: configured or built-in board)")
	cmd.Flags().StringVarP(&opts.drag, "drag", "d", "", "id of the item to lift")
	cmd.Flags().StringVarP(&opts.moves, "moves", "m", "", "move script of f (forward) and b (backward)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: DOT on stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, svg")
	_ = cmd.MarkFlagRequired("drag")
	_ = cmd.RegisterFlagCompletionFunc("drag", c.itemIDs)

	return cmd
}

func (c *CLI) runDot(ctx context.Context, opts dotOpts) error {
	logger := loggerFromContext(ctx)

	format, err := outputFormat(opts.format, opts.output)
	if err != nil {
		return err
	}
	if opts.output != "" {
		if err := errors.ValidatePath(opts.output); err != nil {
			return err
		}
	}

	board, err := c.loadBoard(ctx, opts.board)
	if err != nil {
		return err
	}
	s, snapshot, err := liftItem(ctx, board, opts.drag)
	if err != nil {
		return err
	}
	if opts.moves != "" {
		dirs, err := parseMoves(opts.moves)
		if err != nil {
			return err
		}
		for _, forward := range dirs {
			if res := s.Move(ctx, forward); !res.IsAccepted() {
				logger.Warn("Move rejected", "move", direction(forward), "code", errors.GetCode(res.Reason))
			}
		}
	}

	droppable := snapshot.Droppables[s.Source.DroppableID]
	members := dnd.Members(ctx, droppable, snapshot.Draggables)
	doc := dot.ToDOT(droppable, members, s.Impact(), s.DraggableID, dot.Options{Label: board.Label})

	data := []byte(doc)
	if format == formatSVG {
		prog := newProgress(logger)
		data, err = dot.RenderSVG(ctx, doc)
		if err != nil {
			return err
		}
		prog.done("Rendered SVG")
	}

	if opts.output == "" {
		_, err := c.out.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", opts.output, err)
	}
	printSuccess(c.out, "Diagram written")
	printFile(c.out, opts.output)
	return nil
}

// outputFormat resolves the format from the flag or the output extension.
func outputFormat(flag, output string) (string, error) {
	format := strings.ToLower(flag)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}
	switch format {
	case "", formatDOT, "gv":
		return formatDOT, nil
	case formatSVG:
		return formatSVG, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unsupported output format %q (use dot or svg)", format)
}
