package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/planforge/pkg/plan"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PlanListModel - Interactive polygon inspection
// =============================================================================

// PlanListModel is the bubbletea model for browsing the polygons of a plan.
type PlanListModel struct {
	Plan     *plan.Plan
	Cursor   int
	Selected *plan.Polygon
	Height   int
	Offset   int
}

// NewPlanListModel creates a new plan list model.
func NewPlanListModel(pl *plan.Plan) PlanListModel {
	return PlanListModel{
		Plan:   pl,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m PlanListModel) Init() tea.Cmd {
	return nil
}

func (m PlanListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Plan.Polygons)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = &m.Plan.Polygons[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PlanListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Polygon"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Plan.Polygons) {
		end = len(m.Plan.Polygons)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p := &m.Plan.Polygons[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		status := "unsolved"
		if p.Locked {
			status = "solved"
		}

		area := "-"
		if p.Area != nil {
			area = fmt.Sprintf("%.2f m²", *p.Area)
		}

		links := 0
		for _, e := range p.Edges {
			if e.LinkedEdgeID != "" {
				links++
			}
		}

		rows = append(rows, []string{
			cursor + displayName(p),
			fmt.Sprintf("%d corners", len(p.Vertices)),
			status,
			area,
			fmt.Sprintf("%d links", links),
		})
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row >= 0 && row < len(rows) && m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return listNormalStyle
		}).
		Rows(rows...)

	b.WriteString(t.Render())
	b.WriteString("\n")

	if len(m.Plan.Polygons) > m.Height {
		b.WriteString(listDimStyle.Render(
			fmt.Sprintf("%d-%d of %d", m.Offset+1, end, len(m.Plan.Polygons))))
		b.WriteString("\n")
	}

	return b.String()
}
