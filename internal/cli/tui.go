package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/reorder/pkg/core/dnd"
	"github.com/matzehuels/reorder/pkg/core/geom"
	"github.com/matzehuels/reorder/pkg/errors"
	"github.com/matzehuels/reorder/pkg/scene"
	"github.com/matzehuels/reorder/pkg/session"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
	listBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// =============================================================================
// ReorderModel - Interactive keyboard reordering
// =============================================================================

// ReorderModel is the bubbletea model for reordering one droppable at a time.
//
// While nothing is lifted the forward and backward keys move the cursor.
// Lifting starts a drag session; the same keys then jump the held item one
// slot at a time until it is dropped or the drag is cancelled.
type ReorderModel struct {
	ctx   context.Context
	board *scene.Scene
	keys  keyMap

	snapshot  dnd.Snapshot
	droppable int
	order     []dnd.DraggableID
	cursor    int
	drag      *session.Session

	status string
	err    error
	height int
	offset int
	drops  int
}

// NewReorderModel creates a reorder model for board, starting on the
// droppable with id start (or the first one when empty).
func NewReorderModel(ctx context.Context, board *scene.Scene, keys keyMap, start string, height int) (ReorderModel, error) {
	m := ReorderModel{ctx: ctx, board: board, keys: keys, height: height}
	if start != "" {
		m.droppable = slices.IndexFunc(board.Droppables, func(d scene.Droppable) bool { return d.ID == start })
		if m.droppable == -1 {
			return ReorderModel{}, errors.New(errors.ErrCodeNotFound, "droppable %q not found", start)
		}
	}
	if err := m.relayout(); err != nil {
		return ReorderModel{}, err
	}
	return m, nil
}

// relayout recomputes the snapshot and the current droppable's order.
func (m *ReorderModel) relayout() error {
	snapshot, err := m.board.Snapshot()
	if err != nil {
		return err
	}
	m.snapshot = snapshot
	id := dnd.DroppableID(m.board.Droppables[m.droppable].ID)
	m.order = dnd.MemberIDs(dnd.Members(m.ctx, snapshot.Droppables[id], snapshot.Draggables))
	m.cursor = min(m.cursor, max(len(m.order)-1, 0))
	return nil
}

// Drops returns how many drags ended in a drop.
func (m ReorderModel) Drops() int { return m.drops }

// Board returns the board with every drop applied.
func (m ReorderModel) Board() *scene.Scene { return m.board }

// Err returns the error that stopped the model, if any.
func (m ReorderModel) Err() error { return m.err }

func (m ReorderModel) Init() tea.Cmd {
	return nil
}

func (m ReorderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.drag != nil {
			return m.updateLifted(msg)
		}
		return m.updateIdle(msg)
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-8, 3)
	}
	return m, nil
}

func (m ReorderModel) updateIdle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Cancel):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Forward):
		if m.cursor < len(m.order)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Backward):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.NextList):
		m.droppable = (m.droppable + 1) % len(m.board.Droppables)
		m.cursor = 0
		m.offset = 0
		m.status = ""
		if err := m.relayout(); err != nil {
			m.err = err
			return m, tea.Quit
		}
	case key.Matches(msg, m.keys.Lift):
		if len(m.order) == 0 {
			return m, nil
		}
		s, err := session.Lift(m.ctx, newJumper(m.ctx), m.snapshot, m.order[m.cursor])
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.drag = s
		m.status = "lifted " + m.board.Label(s.DraggableID)
	}
	m.scroll()
	return m, nil
}

func (m ReorderModel) updateLifted(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Forward), key.Matches(msg, m.keys.Backward):
		forward := key.Matches(msg, m.keys.Forward)
		res := m.drag.Move(m.ctx, forward)
		if !res.IsAccepted() {
			m.status = fmt.Sprintf("cannot move %s (%s)", direction(forward), errors.GetCode(res.Reason))
			return m, nil
		}
		m.cursor = res.Impact.Destination.Index
		m.status = fmt.Sprintf("%s %s position %d", m.board.Label(m.drag.DraggableID), iconArrow, m.cursor+1)
	case key.Matches(msg, m.keys.Lift):
		res, err := m.drag.Drop(m.ctx)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.drag = nil
		m.drops++
		if err := m.board.ApplyOrder(string(res.Source.DroppableID), res.Order); err != nil {
			m.err = err
			return m, tea.Quit
		}
		if err := m.relayout(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		if res.Destination != nil {
			m.cursor = res.Destination.Index
		}
		m.status = fmt.Sprintf("dropped %s at position %d", m.board.Label(res.DraggableID), m.cursor+1)
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		res, err := m.drag.Cancel(m.ctx)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.drag = nil
		m.cursor = res.Source.Index
		m.status = "cancelled"
	}
	m.scroll()
	return m, nil
}

// scroll keeps the cursor inside the visible window.
func (m *ReorderModel) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

// visibleOrder is the order the user sees: during a drag the held item sits
// at its destination and the displaced siblings have made room.
func (m ReorderModel) visibleOrder() []dnd.DraggableID {
	if m.drag == nil {
		return m.order
	}
	dest := m.drag.Impact().Destination
	if dest == nil {
		return m.order
	}
	return session.Reorder(m.order, m.drag.Source.Index, dest.Index)
}

func (m ReorderModel) View() string {
	var b strings.Builder

	d := m.board.Droppables[m.droppable]
	title := d.ID
	if m.board.Title != "" {
		title = m.board.Title + " › " + d.ID
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n\n")

	var impact dnd.DragImpact
	var dragging dnd.DraggableID
	if m.drag != nil {
		impact = m.drag.Impact()
		dragging = m.drag.DraggableID
	}

	order := m.visibleOrder()
	axis := m.snapshot.Droppables[dnd.DroppableID(d.ID)].Axis
	cells := make([]string, 0, len(order))
	for i, id := range order {
		if axis.Direction == geom.DirectionVertical && (i < m.offset || i >= m.offset+m.height) {
			continue
		}
		cells = append(cells, m.cell(i, id, dragging, impact))
	}

	if axis.Direction == geom.DirectionHorizontal {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	} else {
		b.WriteString(listBoxStyle.Render(strings.Join(cells, "\n")))
	}
	b.WriteString("\n\n")

	if m.status != "" {
		style := listDimStyle
		if strings.HasPrefix(m.status, "cannot") {
			style = listErrorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.footer())
	return b.String()
}

func (m ReorderModel) cell(i int, id, dragging dnd.DraggableID, impact dnd.DragImpact) string {
	label := m.board.Label(id)
	switch {
	case id == dragging:
		label = listSelectedStyle.Render("≡ " + label)
	case impact.IsDisplaced(id):
		label = styleDisplaced.Render(label)
	case i == m.cursor:
		label = listSelectedStyle.Render("▸ " + label)
	default:
		label = listNormalStyle.Render("  " + label)
	}
	if m.snapshot.Droppables[dnd.DroppableID(m.board.Droppables[m.droppable].ID)].Axis.Direction == geom.DirectionHorizontal {
		return listBoxStyle.Render(label)
	}
	return label
}

func (m ReorderModel) footer() string {
	var parts []string
	for _, kb := range m.keys.shortHelp(m.drag != nil) {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return listDimStyle.Render(strings.Join(parts, "  "))
}

// =============================================================================
// Command
// =============================================================================

// tuiCommand creates the tui command for interactive reordering.
func (c *CLI) tuiCommand() *cobra.Command {
	var (
		board     string
		droppable string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Reorder a board interactively from the keyboard",
		Long: `Reorder a board interactively from the keyboard.

Move the cursor with the forward and backward keys, lift the item under the
cursor, jump it one slot at a time and drop it. Tab switches between lists.
Key bindings can be changed in the [keys] section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context(), board, droppable)
		},
	}

	cmd.Flags().StringVarP(&board, "scene", "s", "", "board file (default: configured or built-in board)")
	cmd.Flags().StringVar(&droppable, "droppable", "", "droppable to start on (default: first)")

	return cmd
}

func (c *CLI) runTUI(ctx context.Context, path, droppable string) error {
	board, err := c.loadBoard(ctx, path)
	if err != nil {
		return err
	}
	if droppable == "" {
		droppable = c.Config.Scene.Droppable
	}
	m, err := NewReorderModel(ctx, board, newKeyMap(c.Config.Keys), droppable, c.Config.TUI.Height)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(c.out)).Run()
	if err != nil {
		return fmt.Errorf("run interactive list: %w", err)
	}
	result := final.(ReorderModel)
	if result.Err() != nil {
		return result.Err()
	}

	printSuccess(c.out, "%d drops", result.Drops())
	for _, d := range result.Board().Droppables {
		order := make([]string, len(d.Items))
		for i, it := range d.Items {
			order[i] = it.ID
		}
		printKeyValue(c.out, d.ID, "")
		printOrder(c.out, order, "")
	}
	return nil
}
