package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumatools/ieskit/ir"
)

// profileDoc builds a single-plane document with the given vertical angles
// and candela row.
func profileDoc(vertAngles []float64, candelas ...[]float64) *ir.Document {
	doc := &ir.Document{}
	doc.File.Format = ir.FormatLM63_2002
	doc.Lamp = ir.Lamp{TiltRef: ir.TiltRefNone, NumLamps: 1, LumensPerLamp: 1000, Multiplier: 1}
	doc.Units = ir.Meters
	doc.Elec = ir.Electrical{BallastFactor: 1, BallastLampFactor: 1, InputWatts: 60}
	doc.Photo = ir.Photometry{
		Gonio:         ir.TypeC,
		NumVertAngles: len(vertAngles),
		NumHorzAngles: len(candelas),
		VertAngles:    append([]float64(nil), vertAngles...),
		HorzAngles:    make([]float64, len(candelas)),
		Candelas:      candelas,
	}
	for i := range doc.Photo.HorzAngles {
		doc.Photo.HorzAngles[i] = float64(i * 90)
	}
	return doc
}

func TestRescale_ConeAngleBounds(t *testing.T) {
	doc := profileDoc([]float64{0, 45, 90}, []float64{100, 80, 20})

	_, err := Rescale(doc, -0.1, false)
	require.ErrorIs(t, err, ErrConeAngle)
	_, err = Rescale(doc, 180.1, false)
	require.ErrorIs(t, err, ErrConeAngle)

	_, err = Rescale(doc, 0, false)
	require.NoError(t, err)
	_, err = Rescale(doc, 180, false)
	require.NoError(t, err)
}

func TestRescale_FullConeIsIdentity(t *testing.T) {
	doc := profileDoc([]float64{0, 30, 60, 90}, []float64{100, 80, 50, 20})

	out, err := Rescale(doc, 180, false)
	require.NoError(t, err)

	for j, v := range doc.Photo.VertAngles {
		assert.InDelta(t, v, out.Photo.VertAngles[j], 1e-9, "angle %d", j)
		assert.InDelta(t, doc.Photo.Candelas[0][j], out.Photo.Candelas[0][j], 1e-9, "candela %d", j)
	}
}

func TestRescale_DefaultMode(t *testing.T) {
	doc := profileDoc([]float64{45}, []float64{100})

	out, err := Rescale(doc, 90, false)
	require.NoError(t, err)

	// Both projections start at 100*cos(45); the horizontal one is scaled
	// by sin(45), giving atan(sin 45) for the angle and the recomputed
	// magnitude sqrt(5000 + 2500).
	assert.InDelta(t, 35.26438968, out.Photo.VertAngles[0], 1e-6)
	assert.InDelta(t, math.Sqrt(7500), out.Photo.Candelas[0][0], 1e-6)
}

func TestRescale_PreserveMode(t *testing.T) {
	doc := profileDoc([]float64{45}, []float64{100})

	out, err := Rescale(doc, 90, true)
	require.NoError(t, err)

	// asin(100*sin(45)*sin(45) / 100) = 30 degrees, magnitude unchanged.
	assert.InDelta(t, 30, out.Photo.VertAngles[0], 1e-6)
	assert.InDelta(t, 100, out.Photo.Candelas[0][0], 1e-6)
}

func TestRescale_NearHorizontalBand(t *testing.T) {
	doc := profileDoc([]float64{90}, []float64{100})

	// Default mode keeps the angle but recomputes the magnitude from the
	// projections, which at 90 degrees collapses to the scaled horizontal
	// component.
	out, err := Rescale(doc, 90, false)
	require.NoError(t, err)
	assert.InDelta(t, 90, out.Photo.VertAngles[0], 1e-9)
	assert.InDelta(t, 100*math.Sin(math.Pi/4), out.Photo.Candelas[0][0], 1e-6)

	// Preserve mode inside the band also falls back to the scaled
	// horizontal component instead of the original magnitude.
	out, err = Rescale(doc, 90, true)
	require.NoError(t, err)
	assert.InDelta(t, 90, out.Photo.VertAngles[0], 1e-9)
	assert.InDelta(t, 100*math.Sin(math.Pi/4), out.Photo.Candelas[0][0], 1e-6)
}

func TestRescale_TopHemisphereFolds(t *testing.T) {
	doc := profileDoc([]float64{135}, []float64{100})

	out, err := Rescale(doc, 90, false)
	require.NoError(t, err)

	// 135 folds to 45, remaps to atan(sin 45) and unfolds back above 90.
	assert.InDelta(t, 180-35.26438968, out.Photo.VertAngles[0], 1e-6)
	assert.InDelta(t, math.Sqrt(7500), out.Photo.Candelas[0][0], 1e-6)
}

func TestRescale_SkipsNonPositiveSamples(t *testing.T) {
	doc := profileDoc([]float64{30, 60}, []float64{0, -5})

	out, err := Rescale(doc, 90, false)
	require.NoError(t, err)

	// Every sample is skipped, so angles and candelas survive untouched.
	assert.Equal(t, doc.Photo.VertAngles, out.Photo.VertAngles)
	assert.Equal(t, doc.Photo.Candelas, out.Photo.Candelas)
}

func TestRescale_LastPlaneWinsSharedAngles(t *testing.T) {
	// The second plane has a non-positive sample: it skips the write, so the
	// shared vertical angle keeps the value written by the first plane.
	doc := profileDoc([]float64{45},
		[]float64{100},
		[]float64{0})

	out, err := Rescale(doc, 90, false)
	require.NoError(t, err)

	assert.InDelta(t, 35.26438968, out.Photo.VertAngles[0], 1e-6)
	assert.InDelta(t, math.Sqrt(7500), out.Photo.Candelas[0][0], 1e-6)
	assert.Equal(t, 0.0, out.Photo.Candelas[1][0])
}

func TestRescale_InputNotMutated(t *testing.T) {
	doc := profileDoc([]float64{45}, []float64{100})
	snapshot := doc.Clone()

	_, err := Rescale(doc, 45, true)
	require.NoError(t, err)
	require.True(t, doc.Equal(snapshot), "input document was mutated")
}
