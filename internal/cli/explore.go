package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mlenz/regionmap/pkg/pipeline"
	"github.com/mlenz/regionmap/pkg/region"
)

// List styles
var (
	exploreSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	exploreDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// newExploreCmd creates the explore command, an interactive terminal view of
// a map definition. The cursor acts as the hovered region, enter clicks it,
// and the table shows the live resolved output of every region.
func newExploreCmd() *cobra.Command {
	var mapPath, valuesPath string

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Explore a map definition interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd.Context(), mapPath, valuesPath)
		},
	}

	cmd.Flags().StringVarP(&mapPath, "map", "m", "", "map definition file (TOML)")
	cmd.Flags().StringVar(&valuesPath, "values", "", "seed values (JSON)")

	return cmd
}

func runExplore(ctx context.Context, mapPath, valuesPath string) error {
	def, err := loadDef(mapPath)
	if err != nil {
		return err
	}
	values, err := seedValues(def, valuesPath)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(def, loggerFromContext(ctx))
	model := newExploreModel(ctx, runner, values)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}

	// Print the final values so the session's outcome survives the TUI.
	if m, ok := final.(exploreModel); ok {
		printValues(runner, m.values)
	}
	return nil
}

// =============================================================================
// exploreModel - Interactive region table
// =============================================================================

// exploreModel is the bubbletea model for the explore command.
type exploreModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	values region.ValueMap
	out    []pipeline.RegionRender
	cursor int
	offset int
	height int
}

func newExploreModel(ctx context.Context, runner *pipeline.Runner, values region.ValueMap) exploreModel {
	m := exploreModel{
		ctx:    ctx,
		runner: runner,
		values: values,
		height: 15,
	}
	m.out = m.resolve()
	return m
}

// resolve runs a pass with the cursor as the hovered region.
func (m *exploreModel) resolve() []pipeline.RegionRender {
	hover := ""
	if regions := m.runner.Def().Regions; m.cursor < len(regions) {
		hover = regions[m.cursor].ID
	}
	return m.runner.Pass(m.ctx, m.values, hover)
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
				m.out = m.resolve()
			}
		case "down", "j":
			if m.cursor < len(m.out)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
				m.out = m.resolve()
			}
		case "enter", " ":
			target := m.out[m.cursor].ID
			m.values = m.runner.Click(m.ctx, m.values, target)
			m.out = m.resolve()
		case "r":
			m.values = m.runner.Def().Values.Clone()
			m.out = m.resolve()
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m exploreModel) View() string {
	var b strings.Builder

	def := m.runner.Def()
	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s (%s mode)", def.Name, def.Mode.Name())))
	b.WriteString("\n")
	b.WriteString(exploreDimStyle.Render("↑/↓ hover  ⏎ click  r reset  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.out) {
		end = len(m.out)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		r := m.out[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		selected := ""
		if r.Selected {
			selected = "✓"
		}

		label := r.Label
		if label == "" {
			label = "—"
		}

		rows = append(rows, []string{
			cursor, r.ID, label, fmt.Sprintf("%d", r.Count), selected,
			string(r.Tier), r.Style.FillColor.String(),
			fmt.Sprintf("%s/%g", r.Style.StrokeColor, r.Style.StrokeWidth),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Region", "Label", "Count", "Sel", "Tier", "Fill", "Stroke").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.offset+row == m.cursor {
				return exploreSelectedStyle
			}
			return StyleValue
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}
