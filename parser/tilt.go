package parser

import (
	"fmt"

	"github.com/lumatools/ieskit/ir"
	"github.com/lumatools/ieskit/scanner"
)

// parseTilt reads a TILT block: the orientation code line, the pair count
// line, and, when the count is positive, the angle and multiplying factor
// arrays, in that order. The block may sit inline after the TILT directive
// or be the whole content of an external tilt file.
func parseTilt(cur *scanner.Cursor) (*ir.Tilt, error) {
	vals, err := scanner.ReadFields(cur, []scanner.Kind{scanner.Int})
	if err != nil {
		return nil, fmt.Errorf("orientation: %w", err)
	}
	tilt := &ir.Tilt{Orientation: ir.TiltOrientation(vals[0].I)}

	vals, err = scanner.ReadFields(cur, []scanner.Kind{scanner.Int})
	if err != nil {
		return nil, fmt.Errorf("pair count: %w", err)
	}
	tilt.NumPairs = int(vals[0].I)

	if tilt.NumPairs > 0 {
		angles, err := scanner.ReadFloatArray(cur, tilt.NumPairs)
		if err != nil {
			return nil, fmt.Errorf("angles: %w", err)
		}
		factors, err := scanner.ReadFloatArray(cur, tilt.NumPairs)
		if err != nil {
			return nil, fmt.Errorf("multiplying factors: %w", err)
		}
		tilt.Angles = angles
		tilt.MultFactors = factors
	}
	return tilt, nil
}
