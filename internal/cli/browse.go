package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/errors"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/model"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/mxfile"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand opens an interactive cell browser for a diagram file.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse a diagram's cells interactively",
		Long: `Browse loads a diagram and opens an interactive list of its cells:
ids, kinds, labels, parents, and geometry. Navigate with the arrow
keys, quit with q.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args[0])
			if err != nil {
				return err
			}

			m := model.New()
			if _, err := mxfile.Import(m, text); err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}

			browser := NewCellBrowserModel(m, args[0])
			_, err = tea.NewProgram(browser).Run()
			return err
		},
	}
}

// =============================================================================
// CellBrowserModel - Interactive cell listing
// =============================================================================

// cellRow is one rendered line of the browser.
type cellRow struct {
	ID     string
	Kind   string
	Label  string
	Parent string
	Detail string
	Layer  bool // layer header row
}

// CellBrowserModel is the bubbletea model for the cell browser.
type CellBrowserModel struct {
	Title  string
	Rows   []cellRow
	Cursor int
	Height int
	Offset int
}

// NewCellBrowserModel builds the browser from a loaded diagram.
func NewCellBrowserModel(m *model.Model, title string) CellBrowserModel {
	return CellBrowserModel{
		Title:  title,
		Rows:   cellRows(m),
		Height: 15,
	}
}

// cellRows flattens the model into display rows, grouped by layer.
func cellRows(m *model.Model) []cellRow {
	var rows []cellRow
	for _, l := range m.Layers() {
		rows = append(rows, cellRow{ID: l.ID, Label: l.Name, Layer: true})
		for _, c := range m.ListCells() {
			if rootLayer(m, c) != l.ID {
				continue
			}
			rows = append(rows, cellRow{
				ID:     c.ID,
				Kind:   c.Kind.String(),
				Label:  c.Label,
				Parent: c.Parent,
				Detail: cellDetail(c),
			})
		}
	}
	return rows
}

// rootLayer walks parent pointers up to the owning layer. Cells inside
// groups list under the group's layer.
func rootLayer(m *model.Model, c *model.Cell) string {
	parent := c.Parent
	for {
		g := m.CellByID(parent)
		if g == nil {
			return parent
		}
		parent = g.Parent
	}
}

// cellDetail renders the kind-specific summary column.
func cellDetail(c *model.Cell) string {
	switch {
	case c.IsEdge():
		return fmt.Sprintf("%s %s %s", c.Edge.Source, iconArrow, c.Edge.Target)
	case c.IsGroup():
		return fmt.Sprintf("group, %d children", len(c.Vertex.Children))
	default:
		return fmt.Sprintf("(%.0f, %.0f) %gx%g", c.Vertex.X, c.Vertex.Y, c.Vertex.Width, c.Vertex.Height)
	}
}

func (m CellBrowserModel) Init() tea.Cmd {
	return nil
}

func (m CellBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m CellBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		if r.Layer {
			rows = append(rows, []string{cursor, r.ID, "layer", r.Label, ""})
			continue
		}
		rows = append(rows, []string{cursor, r.ID, r.Kind, r.Label, r.Detail})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Kind", "Label", "Detail").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			actualIdx := m.Offset + row
			if actualIdx >= len(m.Rows) {
				return lipgloss.NewStyle()
			}
			r := m.Rows[actualIdx]
			base := lipgloss.NewStyle()
			if actualIdx == m.Cursor {
				return base.Foreground(colorGreen).Bold(true)
			}
			if r.Layer {
				return base.Foreground(colorCyan)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}
