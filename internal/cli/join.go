package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/planforge/pkg/assembly"
	planio "github.com/matzehuels/planforge/pkg/io"
	"github.com/matzehuels/planforge/pkg/plan"
)

// joinOpts holds the command-line flags for the join command.
type joinOpts struct {
	offset    float64 // slide offset along the target edge, meters
	inPlace   bool    // derive the offset from the current relative placement
	thickness float64 // resolution for thickness conflicts, cm
	resolved  bool    // whether --thickness was given
	output    string  // output file path, empty to overwrite the input
}

// newJoinCmd creates the join command. It snaps a solved polygon against
// another along a pair of edges, separated by the shared wall thickness.
func newJoinCmd() *cobra.Command {
	var opts joinOpts

	cmd := &cobra.Command{
		Use:   "join [file] [source-edge] [target-edge]",
		Short: "Snap two solved polygons together along an edge pair",
		Long: `Join aligns the source polygon's edge against the target polygon's edge,
outward faces toward each other, separated by the wall thickness. The
source polygon and everything already joined to it move as one rigid
body; the target side never moves.

If the two edges disagree on wall thickness the join is suspended; pass
--thickness to settle on a value and complete it.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.resolved = cmd.Flags().Changed("thickness")
			return runJoin(cmd.Context(), args[0], args[1], args[2], &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.offset, "offset", 0, "slide along the target edge in meters")
	cmd.Flags().BoolVar(&opts.inPlace, "in-place", false, "keep the current relative placement instead of snapping to offset 0")
	cmd.Flags().Float64Var(&opts.thickness, "thickness", 0, "wall thickness in cm, settles a thickness conflict")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input)")

	return cmd
}

func runJoin(ctx context.Context, input, srcEdge, dstEdge string, opts *joinOpts) error {
	logger := loggerFromContext(ctx)

	pl, err := planio.ImportJSON(input)
	if err != nil {
		return err
	}

	offset := opts.offset
	if opts.inPlace {
		off, perr := assembly.InPlaceOffset(&pl, srcEdge, dstEdge)
		if perr != nil {
			return perr
		}
		offset = off
		logger.Debugf("In-place offset: %.3f m", offset)
	}

	res := assembly.Join(pl, srcEdge, dstEdge, offset)
	switch {
	case res.Err != nil:
		return joinFailure(res.Err)
	case res.Conflict != nil:
		if !opts.resolved {
			printWarning("Edges disagree on wall thickness (%s vs %s)",
				formatThickness(res.Conflict.SourceThickness),
				formatThickness(res.Conflict.TargetThickness))
			printNextStep("Settle it with", fmt.Sprintf("planforge join %s %s %s --thickness <cm>", input, srcEdge, dstEdge))
			return fmt.Errorf("thickness conflict unresolved")
		}
		out, perr := assembly.Resolve(pl, *res.Conflict, opts.thickness)
		if perr != nil {
			return perr
		}
		res.Plan = out
		printSuccess("Joined %s to %s at %.0f cm wall thickness", srcEdge, dstEdge, opts.thickness)
	default:
		printSuccess("Joined %s to %s", srcEdge, dstEdge)
	}

	return writePlan(&res.Plan, input, opts.output)
}

// formatThickness renders an optional thickness for conflict messages.
func formatThickness(t *float64) string {
	if t == nil {
		return "unset"
	}
	return fmt.Sprintf("%.0f cm", *t)
}

// joinFailure maps join error codes to user-facing wording.
func joinFailure(err *plan.Error) error {
	switch err.Code {
	case plan.ErrCodeSelfJoin:
		return fmt.Errorf("a polygon cannot be joined to itself")
	case plan.ErrCodeTargetUnlocked:
		return fmt.Errorf("both polygons must be solved before joining (run solve first)")
	case plan.ErrCodeAlreadyLinked:
		return fmt.Errorf("these polygons are already joined (unlink first)")
	default:
		return err
	}
}

// writePlan writes the plan to output, falling back to input, and prints
// the written path.
func writePlan(pl *plan.Plan, input, output string) error {
	if output == "" {
		output = input
	}
	if err := planio.ExportJSON(pl, output); err != nil {
		return err
	}
	printFile(output)
	return nil
}
