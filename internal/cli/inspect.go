package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgeom/pkg/core/geometry"
	"github.com/matzehuels/chartgeom/pkg/core/primitive"
	"github.com/matzehuels/chartgeom/pkg/pipeline"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "inspect [chart]",
		Short: "Browse the painted shapes of a chart",
		Long: `Paint a chart and list every element with its id, kind, color and
bounding box. Select an element with enter to print its data row.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the element table and exit")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, path string, plain bool) error {
	rows, title, err := c.paintRows(ctx, path)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		printWarning("%s has no shapes", title)
		return nil
	}

	if plain {
		fmt.Println(elementTable(rows, -1))
		return nil
	}

	finalModel, err := tea.NewProgram(newElementListModel(title, rows), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	fm, ok := finalModel.(elementListModel)
	if !ok || fm.Selected == nil {
		printDetail("No selection made")
		return nil
	}
	printElement(*fm.Selected)
	return nil
}

// paintRows loads and paints a chart without rendering it.
func (c *CLI) paintRows(ctx context.Context, path string) ([]elementRow, string, error) {
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	opts := pipeline.Options{ChartPath: path, Logger: c.Logger}
	doc, err := runner.Load(ctx, opts)
	if err != nil {
		return nil, "", err
	}
	engine, err := runner.Paint(ctx, doc, opts)
	if err != nil {
		return nil, "", err
	}
	defer engine.Destroy()

	title := doc.Title
	if title == "" {
		title = path
	}
	rows := make([]elementRow, len(engine.Elements()))
	for i, el := range engine.Elements() {
		rows[i] = newElementRow(el)
	}
	return rows, title, nil
}

// =============================================================================
// Element rows
// =============================================================================

// elementRow is the flattened view of one painted element.
type elementRow struct {
	ID     string
	Kind   primitive.Kind
	Color  string
	BBox   primitive.BBox
	Origin map[string]any
}

func newElementRow(el *geometry.Element) elementRow {
	color := el.Shape.Style.String(primitive.StyleFill)
	if color == "" || color == "none" {
		color = el.Shape.Style.String(primitive.StyleStroke)
	}
	row := elementRow{
		ID:    el.ID.String(),
		Kind:  el.Shape.Kind,
		Color: color,
		BBox:  el.Shape.BBox(),
	}
	if el.Record != nil {
		row.Origin = el.Record.Origin
	}
	return row
}

func (r elementRow) cells(cursor bool) []string {
	marker := "  "
	if cursor {
		marker = "▸ "
	}
	return []string{
		marker,
		r.ID[:8],
		string(r.Kind),
		r.Color,
		fmt.Sprintf("%.1f,%.1f", r.BBox.MinX, r.BBox.MinY),
		fmt.Sprintf("%.1f×%.1f", r.BBox.Width(), r.BBox.Height()),
		originSummary(r.Origin),
	}
}

// originSummary renders a data row as sorted key=value pairs.
func originSummary(origin map[string]any) string {
	keys := make([]string, 0, len(origin))
	for k := range origin {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, origin[k])
	}
	return strings.Join(parts, " ")
}

// elementTable renders rows as a bordered table, highlighting the row at
// cursor. A negative cursor highlights nothing.
func elementTable(rows []elementRow, cursor int) string {
	return elementTableWindow(rows, cursor, 0)
}

func elementTableWindow(rows []elementRow, cursor, offset int) string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = r.cells(offset+i == cursor)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("", "ID", "Kind", "Color", "At", "Size", "Data").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			base := lipgloss.NewStyle()
			if col == 3 && row >= 0 && row < len(rows) {
				if fg := rows[row].Color; strings.HasPrefix(fg, "#") {
					base = base.Foreground(lipgloss.Color(fg))
				}
			}
			if offset+row == cursor {
				return base.Bold(true)
			}
			if col == 6 {
				return base.Foreground(colorMuted)
			}
			return base
		})
	return t.Render()
}

func printElement(r elementRow) {
	printKeyValue("id", r.ID)
	printKeyValue("kind", string(r.Kind))
	printKeyValue("color", swatch(r.Color))
	printKeyValue("bbox", fmt.Sprintf("%.2f,%.2f %.2f×%.2f", r.BBox.MinX, r.BBox.MinY, r.BBox.Width(), r.BBox.Height()))
	keys := make([]string, 0, len(r.Origin))
	for k := range r.Origin {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		printKeyValue(k, fmt.Sprint(r.Origin[k]))
	}
}

// =============================================================================
// elementListModel - Interactive element browser
// =============================================================================

// elementListModel is the bubbletea model for browsing painted elements.
type elementListModel struct {
	Title    string
	Rows     []elementRow
	Cursor   int
	Offset   int
	Height   int
	Selected *elementRow
}

func newElementListModel(title string, rows []elementRow) elementListModel {
	return elementListModel{Title: title, Rows: rows, Height: 15}
}

func (m elementListModel) Init() tea.Cmd {
	return nil
}

func (m elementListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = len(m.Rows) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		case "enter":
			row := m.Rows[m.Cursor]
			m.Selected = &row
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m elementListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Rows))
	b.WriteString(elementTableWindow(m.Rows[m.Offset:end], m.Cursor, m.Offset))
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}
