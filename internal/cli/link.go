package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/planforge/pkg/assembly"
	planio "github.com/matzehuels/planforge/pkg/io"
)

// newUnlinkCmd creates the unlink command, severing an existing join.
func newUnlinkCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "unlink [file] [edge]",
		Short: "Sever the join on an edge",
		Long: `Unlink removes the link between the given edge and its partner. Both
polygons keep their current positions; only the rigid coupling and the
stored alignment offset go away. Groups are recomputed from the links
that remain.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pl, err := planio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			out, perr := assembly.Unlink(pl, args[1])
			if perr != nil {
				return perr
			}
			printSuccess("Unlinked %s", args[1])
			return writePlan(&out, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	return cmd
}

// newOffsetCmd creates the offset command, sliding an existing join.
func newOffsetCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "offset [file] [edge] [meters]",
		Short: "Slide an existing join along its wall",
		Long: `Offset re-aligns a joined edge pair with a new slide offset along the
target edge. The cluster hanging off the source side of the link moves
rigidly; the target side stays put.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return err
			}
			pl, err := planio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			out, perr := assembly.UpdateOffset(pl, args[1], offset)
			if perr != nil {
				return perr
			}
			printSuccess("Offset of %s set to %.3f m", args[1], offset)
			return writePlan(&out, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	return cmd
}

// newThicknessCmd creates the thickness command, changing the wall of an
// existing join.
func newThicknessCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "thickness [file] [edge] [cm]",
		Short: "Change the wall thickness of an existing join",
		Long: `Thickness sets the wall thickness of a joined edge pair on both sides
and re-aligns them with the stored slide offset. The cluster hanging off
the source side of the link moves rigidly to absorb the new gap.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			thickness, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return err
			}
			pl, err := planio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			out, perr := assembly.UpdateThickness(pl, args[1], thickness)
			if perr != nil {
				return perr
			}
			printSuccess("Wall thickness of %s set to %.0f cm", args[1], thickness)
			return writePlan(&out, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	return cmd
}
