// Package transform implements geometric transforms over photometric
// documents. Transforms are pure: they never mutate their input and return
// a fresh document sharing no state with it.
package transform

import (
	"errors"
	"math"

	"github.com/lumatools/ieskit/ir"
)

// ErrConeAngle is returned when the rescale cone angle falls outside the
// valid [0, 180] degree range.
var ErrConeAngle = errors.New("rescale cone angle outside [0, 180]")

func degToRad(d float64) float64 { return d * (math.Pi / 180.0) }
func radToDeg(r float64) float64 { return r * (180.0 / math.Pi) }

// Rescale remaps the vertical emission distribution of doc into a cone of
// coneAngle degrees, assuming the original profile spans the full [0, 180]
// hemisphere pair. Candela samples <= 0 are left untouched, as are their
// vertical angles.
//
// With preserveIntensity false (the default mode), the horizontal projection
// of each sample is scaled towards the vertical axis and the sample magnitude
// recomputed from the projections, foreshortening the profile while keeping
// its overall shape. With preserveIntensity true, the original magnitude is
// kept (except inside the near-horizontal band, where the scaled projection
// is used), funneling the profile into the new cone.
//
// The vertical angle array is shared across all horizontal planes, yet each
// plane's loop writes its own remapped angle into it; the stored angle at an
// index is whichever plane was processed last. That last-write-wins behavior
// is intentional and kept observable: a plane that skips a non-positive
// sample leaves the angle from the previous plane in place.
func Rescale(doc *ir.Document, coneAngle float64, preserveIntensity bool) (*ir.Document, error) {
	if coneAngle < 0 || coneAngle > 180 {
		return nil, ErrConeAngle
	}

	// Samples within 1 degree of horizontal must not be rotated into either
	// hemisphere: double-sided emitters would get gaps in the profile center.
	nearHorzThreshold := math.Abs(math.Cos(degToRad(90 + 1)))

	// Uniform scale for all horizontally projected values; coneAngle near 0
	// squashes the emission profile into a single vertical line.
	xScale := math.Sin(degToRad(coneAngle * 0.5))

	out := doc.Clone()

	for i := 0; i < doc.Photo.NumHorzAngles; i++ {
		for j := 0; j < doc.Photo.NumVertAngles; j++ {
			candela := doc.Photo.Candelas[i][j]
			if candela <= 0 {
				continue
			}

			vertAngle := doc.Photo.VertAngles[j]
			topHemisphere := vertAngle > 90
			v0 := vertAngle
			if topHemisphere {
				v0 = 180 - vertAngle
			}
			v0Rad := degToRad(v0)
			projY := candela * math.Cos(v0Rad)
			projX := candela * math.Sin(v0Rad)
			nearHorz := math.Abs(math.Cos(v0Rad)) <= nearHorzThreshold

			var scaledAngle, scaledCandela float64
			xScaled := projX * xScale
			if !preserveIntensity {
				scaledAngle = radToDeg(math.Atan(xScaled / projY))
				if nearHorz {
					scaledAngle = v0
				}
				scaledCandela = math.Sqrt(projY*projY + xScaled*xScaled)
			} else {
				scaledAngle = radToDeg(math.Asin(xScaled / candela))
				if nearHorz {
					scaledAngle = v0
					scaledCandela = xScaled
				} else {
					scaledCandela = candela
				}
			}

			if topHemisphere {
				scaledAngle = 180 - scaledAngle
			}
			out.Photo.VertAngles[j] = scaledAngle
			out.Photo.Candelas[i][j] = scaledCandela
		}
	}

	return out, nil
}
