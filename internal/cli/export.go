package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/planforge/pkg/export/dxf"
	planio "github.com/matzehuels/planforge/pkg/io"
)

// newExportCmd creates the export command for CAD interchange.
func newExportCmd() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export a plan to JSON or DXF",
		Long: `Export writes the plan in an interchange format. JSON preserves the
full document; DXF carries the polygon outlines as line drawings for CAD
tools, one layer per polygon, in meters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args[0], format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dxf", "output format: dxf (default), json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: derived from input)")
	return cmd
}

func runExport(input, format, output string) error {
	pl, err := planio.ImportJSON(input)
	if err != nil {
		return err
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	}

	switch format {
	case "json":
		err = planio.ExportJSON(&pl, output)
	case "dxf":
		err = dxf.Export(&pl, output)
	default:
		return fmt.Errorf("invalid format: %s (must be 'dxf' or 'json')", format)
	}
	if err != nil {
		return err
	}

	printSuccess("Exported %s", output)
	return nil
}
