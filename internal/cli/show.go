package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	planio "github.com/matzehuels/planforge/pkg/io"
	"github.com/matzehuels/planforge/pkg/plan"
)

// newShowCmd creates the show command for inspecting a plan document.
func newShowCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Inspect a plan document",
		Long: `Show prints a summary of every polygon in the plan: vertex and edge
counts, solve status, area and group membership. With --interactive an
inspector opens for browsing polygons and their links.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), args[0], interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse polygons interactively")
	return cmd
}

func runShow(ctx context.Context, input string, interactive bool) error {
	pl, err := planio.ImportJSON(input)
	if err != nil {
		return err
	}

	if interactive {
		model := NewPlanListModel(&pl)
		final, err := tea.NewProgram(model).Run()
		if err != nil {
			return err
		}
		if m, ok := final.(PlanListModel); ok && m.Selected != nil {
			printNewline()
			printPolygonDetail(&pl, m.Selected)
		}
		return nil
	}

	fmt.Println(StyleTitle.Render(input))
	printStats(len(pl.Polygons), countLinks(&pl), false)
	printNewline()

	for i := range pl.Polygons {
		p := &pl.Polygons[i]
		printKeyValue(displayName(p), polygonSummary(p))
	}
	return nil
}

// countLinks counts joined edge pairs; links are stored on both sides.
func countLinks(pl *plan.Plan) int {
	n := 0
	for _, p := range pl.Polygons {
		for _, e := range p.Edges {
			if e.LinkedEdgeID != "" {
				n++
			}
		}
	}
	return n / 2
}

// polygonSummary renders one status line for a polygon.
func polygonSummary(p *plan.Polygon) string {
	status := StyleWarning.Render("unsolved")
	if p.Locked {
		status = StyleSuccess.Render("solved")
	}
	s := fmt.Sprintf("%d corners, %d edges, %s", len(p.Vertices), len(p.Edges), status)
	if p.Area != nil {
		s += StyleDim.Render(fmt.Sprintf(" · %.2f m²", *p.Area))
	}
	if p.GroupID != "" {
		s += StyleDim.Render(" · grouped")
	}
	return s
}

// printPolygonDetail prints the full breakdown of one polygon.
func printPolygonDetail(pl *plan.Plan, p *plan.Polygon) {
	fmt.Println(StyleTitle.Render(displayName(p)))
	printDetail("%s", polygonSummary(p))
	printNewline()

	owners := pl.EdgeIndex()
	for _, e := range p.Edges {
		line := fmt.Sprintf("%s  %s %s %s  %.2f m", e.ID, e.Start, iconArrow, e.End, e.Length)
		if e.Kind == plan.KindDiagonal {
			line += StyleDim.Render(" diagonal")
		}
		if e.LinkedEdgeID != "" {
			line += StyleHighlight.Render(fmt.Sprintf("  linked to %s (%s)", e.LinkedEdgeID, owners[e.LinkedEdgeID]))
		}
		if e.Thickness != nil {
			line += StyleDim.Render(fmt.Sprintf("  wall %.0f cm", *e.Thickness))
		}
		printDetail("%s", line)
	}
}
