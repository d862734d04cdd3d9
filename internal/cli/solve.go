package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	planio "github.com/matzehuels/planforge/pkg/io"
	"github.com/matzehuels/planforge/pkg/plan"
	"github.com/matzehuels/planforge/pkg/solver"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	polygonID string // solve a single polygon, empty for all
	output    string // output file path, empty to overwrite the input
}

// newSolveCmd creates the solve command. It recomputes polygon geometry
// from the measured edge lengths and fixed angles stored in the plan file.
func newSolveCmd() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Recompute polygon geometry from measurements",
		Long: `Solve recomputes exact vertex positions for the polygons of a plan from
their measured edge lengths, diagonals and fixed angles. Successfully
solved polygons are locked and annotated with their area; failed polygons
keep their sketched shape and report why they could not be solved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.polygonID, "polygon", "p", "", "solve only this polygon ID")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input)")

	return cmd
}

func runSolve(ctx context.Context, input string, opts *solveOpts) error {
	logger := loggerFromContext(ctx)

	pl, err := planio.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded plan: %d polygons", len(pl.Polygons))

	prog := newProgress(logger)
	solved, failed := 0, 0
	for i := range pl.Polygons {
		p := &pl.Polygons[i]
		if opts.polygonID != "" && p.ID != opts.polygonID {
			continue
		}

		res := solver.Solve(*p)
		*p = res.Polygon
		if res.Err != nil {
			failed++
			printError("%s: %s", displayName(p), solveFailureWording(res.Err))
			continue
		}
		solved++
		if res.Approximated {
			printWarning("%s solved with tolerance snapping, area %.2f m²", displayName(p), *p.Area)
		} else {
			printSuccess("%s solved, area %.2f m²", displayName(p), *p.Area)
		}
	}

	if opts.polygonID != "" && solved+failed == 0 {
		return fmt.Errorf("polygon %s not found", opts.polygonID)
	}
	prog.done(fmt.Sprintf("Solved %d of %d polygons", solved, solved+failed))

	output := opts.output
	if output == "" {
		output = input
	}
	if err := planio.ExportJSON(&pl, output); err != nil {
		return err
	}
	printFile(output)
	return nil
}

// displayName prefers the polygon's name over its ID.
func displayName(p *plan.Polygon) string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// solveFailureWording maps solver error codes to user-facing wording.
func solveFailureWording(err *plan.Error) string {
	switch err.Code {
	case plan.ErrCodeSeparated:
		return "measurements cannot meet, some lengths are too short"
	case plan.ErrCodeContained:
		return "measurements cannot meet, one length swallows another"
	case plan.ErrCodeUnderconstrained:
		return "not enough diagonals or angles to pin the shape down"
	case plan.ErrCodeUnreachable:
		return "constraints do not reach every corner"
	case plan.ErrCodeTooFewVertices:
		return "a polygon needs at least three corners"
	default:
		return err.Message
	}
}
