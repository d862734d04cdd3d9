// Package dxf emits floor plans as DXF line drawings for CAD interchange.
//
// Each polygon becomes one layer carrying its perimeter as LINE entities.
// Coordinates are written in meters with the y axis flipped, since DXF uses
// mathematical orientation while plan space is screen-oriented.
package dxf

import (
	"fmt"
	"strings"

	yofudxf "github.com/yofu/dxf"

	"github.com/matzehuels/planforge/pkg/plan"
)

// Export writes the plan's polygons to a DXF file at path. Diagonal edges
// are measurement aids, not walls, and are skipped.
func Export(pl *plan.Plan, path string) error {
	d := yofudxf.NewDrawing()

	for i := range pl.Polygons {
		poly := &pl.Polygons[i]
		layer := LayerName(poly)
		if _, err := d.AddLayer(layer, yofudxf.DefaultColor, yofudxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("layer %s: %w", layer, err)
		}
		for _, e := range poly.Edges {
			if e.Kind != plan.KindPerimeter {
				continue
			}
			v1 := poly.Vertex(e.Start)
			v2 := poly.Vertex(e.End)
			if v1 == nil || v2 == nil {
				return fmt.Errorf("edge %s: references missing vertices", e.ID)
			}
			_, err := d.Line(
				v1.X/plan.UnitsPerMeter, -v1.Y/plan.UnitsPerMeter, 0,
				v2.X/plan.UnitsPerMeter, -v2.Y/plan.UnitsPerMeter, 0,
			)
			if err != nil {
				return fmt.Errorf("edge %s: %w", e.ID, err)
			}
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// LayerName derives a DXF-safe layer name from the polygon's display name,
// falling back to its ID. DXF layer names avoid spaces and are
// conventionally uppercase.
func LayerName(p *plan.Polygon) string {
	name := p.Name
	if name == "" {
		name = p.ID
	}
	name = strings.ToUpper(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
}
