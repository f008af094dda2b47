package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/reorder/pkg/core/dnd"
	"github.com/matzehuels/reorder/pkg/core/geom"
	"github.com/matzehuels/reorder/pkg/errors"
)

// memberReport is one member in members --json output.
type memberReport struct {
	Index  int             `json:"index"`
	ID     dnd.DraggableID `json:"id"`
	Label  string          `json:"label"`
	Center geom.Position   `json:"center"`
}

// droppableReport is one droppable in members --json output.
type droppableReport struct {
	ID      dnd.DroppableID `json:"id"`
	Axis    geom.Direction  `json:"axis"`
	Members []memberReport  `json:"members"`
}

// membersCommand creates the members command for listing droppable contents.
func (c *CLI) membersCommand() *cobra.Command {
	var (
		board  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "members [droppable]",
		Short: "List each droppable's members in display order",
		Long: `List each droppable's members in display order.

Members are ordered by the center of their content box along the droppable's
axis. This is the order keyboard jumps step through.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var only string
			if len(args) == 1 {
				only = args[0]
			}
			return c.runMembers(cmd.Context(), board, only, asJSON)
		},
	}

	cmd.Flags().StringVarP(&board, "scene", "s", "", "board file (default: configured or built-in board)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "write JSON")

	return cmd
}

func (c *CLI) runMembers(ctx context.Context, path, only string, asJSON bool) error {
	board, err := c.loadBoard(ctx, path)
	if err != nil {
		return err
	}
	snapshot, err := board.Snapshot()
	if err != nil {
		return err
	}

	var reports []droppableReport
	for _, d := range board.Droppables {
		if only != "" && d.ID != only {
			continue
		}
		droppable := snapshot.Droppables[dnd.DroppableID(d.ID)]
		report := droppableReport{ID: droppable.ID, Axis: droppable.Axis.Direction}
		for i, m := range dnd.Members(ctx, droppable, snapshot.Draggables) {
			report.Members = append(report.Members, memberReport{
				Index:  i,
				ID:     m.ID,
				Label:  board.Label(m.ID),
				Center: m.Page.WithoutMargin.Center(),
			})
		}
		reports = append(reports, report)
	}
	if only != "" && len(reports) == 0 {
		return errors.New(errors.ErrCodeNotFound, "droppable %q not found", only)
	}

	if asJSON {
		return writeJSON(c.out, reports)
	}

	for i, r := range reports {
		if i > 0 {
			printNewline(c.out)
		}
		fmt.Fprintln(c.out, StyleTitle.Render(string(r.ID))+" "+StyleDim.Render(string(r.Axis)))
		for _, m := range r.Members {
			fmt.Fprintf(c.out, "  %s %s %s\n",
				StyleNumber.Render(fmt.Sprintf("%2d", m.Index)),
				StyleValue.Render(m.Label),
				StyleDim.Render(fmt.Sprintf("%s (%g, %g)", m.ID, m.Center.X, m.Center.Y)))
		}
	}
	if len(reports) > 0 && len(reports[0].Members) > 0 {
		printNewline(c.out)
		printNextStep(c.out, "Try", fmt.Sprintf("%s jump --drag %s --moves f", appName, reports[0].Members[0].ID))
	}
	return nil
}
