// Package io provides JSON import and export for floor-plan documents.
//
// # JSON Format
//
// A plan file is a single object with a "polygons" array. Each polygon
// carries its vertices, edges and derived state:
//
//	{
//	  "polygons": [
//	    {
//	      "id": "kitchen",
//	      "vertices": [{"id": "v1", "x": 0, "y": 0}, ...],
//	      "edges": [
//	        {"id": "e1", "start": "v1", "end": "v2",
//	         "length": 2.5, "kind": "perimeter"}
//	      ]
//	    }
//	  ]
//	}
//
// Lengths are meters, coordinates world units, thickness centimeters.
// Optional fields (solved flags, lock state, group IDs, link references,
// alignment offsets) round-trip unchanged, so export followed by re-import
// reproduces the document exactly.
//
// # Validation
//
// [ReadPlan] rejects documents with duplicate polygon or edge IDs and edges
// referencing vertices that do not exist in their polygon. Link references
// are not validated here - a dangling LinkedEdgeID is legal document state
// (it resolves to nothing) and is repaired by group recalculation.
//
// # Usage
//
//	pl, err := io.ImportJSON("flat.json")    // file -> plan
//	err = io.ExportJSON(&pl, "out.json")     // plan -> file
package io
