// Package render draws quick polar previews of a document's candela
// distribution. The preview is a diagnostic aid, not a photometric report:
// it plots the first horizontal plane on the right half of the chart and
// the plane closest to 180 degrees, when one exists, mirrored on the left.
package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/vector"

	"github.com/lumatools/ieskit/ir"
)

var ErrNoData = errors.New("document has no candela data")

// Options controls the rendered preview.
type Options struct {
	// Size is the output image width and height in pixels. Zero selects 512.
	Size int
}

const defaultSize = 512

var (
	background = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	gridColor  = color.NRGBA{R: 0xd0, G: 0xd4, B: 0xda, A: 0xff}
	curveColor = color.NRGBA{R: 0x1f, G: 0x6f, B: 0xc4, A: 0xb0}
)

// Polar renders the candela distribution of doc as a PNG image.
func Polar(doc *ir.Document, opts Options) ([]byte, error) {
	if len(doc.Photo.Candelas) == 0 || len(doc.Photo.VertAngles) == 0 {
		return nil, ErrNoData
	}

	size := opts.Size
	if size <= 0 {
		size = defaultSize
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	cx := float64(size) / 2
	cy := float64(size) / 2
	radius := float64(size)/2 - float64(size)/16

	// Reference rings at 25/50/75/100% of peak intensity, drawn as filled
	// discs from the outside in so each ring shows as a thin annulus.
	for i := 4; i >= 1; i-- {
		r := radius * float64(i) / 4
		fillCircle(dst, cx, cy, r, gridColor)
		fillCircle(dst, cx, cy, r-1.5, background)
	}

	peak := maxCandela(doc)
	if peak <= 0 {
		// All-zero table: the empty grid is the whole preview.
		return encode(dst)
	}

	right := doc.Photo.Candelas[0]
	left := doc.Photo.Candelas[planeNearest180(doc)]
	if len(right) < len(doc.Photo.VertAngles) || len(left) < len(doc.Photo.VertAngles) {
		return nil, ErrNoData
	}

	path := polarPath(doc.Photo.VertAngles, right, left, cx, cy, radius/peak)
	fillPath(dst, path, curveColor)

	return encode(dst)
}

// planeNearest180 picks the horizontal plane whose angle is closest to 180
// degrees; for single-plane documents this is plane 0 and the preview is
// symmetric.
func planeNearest180(doc *ir.Document) int {
	best, bestDist := 0, math.Inf(1)
	for i, h := range doc.Photo.HorzAngles {
		if d := math.Abs(180 - h); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func maxCandela(doc *ir.Document) float64 {
	peak := 0.0
	for _, row := range doc.Photo.Candelas {
		for _, c := range row {
			if c > peak {
				peak = c
			}
		}
	}
	return peak
}

type point struct{ x, y float32 }

// polarPath builds the closed profile outline. Vertical angle 0 points down
// (nadir); the right lobe follows the vertical angles forward, the left lobe
// mirrors them back to close the polygon.
func polarPath(vertAngles, right, left []float64, cx, cy, scale float64) []point {
	pts := make([]point, 0, 2*len(vertAngles))
	for j, v := range vertAngles {
		r := right[j] * scale
		if r < 0 {
			r = 0
		}
		rad := degToRad(v)
		pts = append(pts, point{
			x: float32(cx + r*math.Sin(rad)),
			y: float32(cy + r*math.Cos(rad)),
		})
	}
	for j := len(vertAngles) - 1; j >= 0; j-- {
		r := left[j] * scale
		if r < 0 {
			r = 0
		}
		rad := degToRad(vertAngles[j])
		pts = append(pts, point{
			x: float32(cx - r*math.Sin(rad)),
			y: float32(cy + r*math.Cos(rad)),
		})
	}
	return pts
}

func fillPath(dst *image.RGBA, pts []point, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	ras := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	ras.MoveTo(pts[0].x, pts[0].y)
	for _, p := range pts[1:] {
		ras.LineTo(p.x, p.y)
	}
	ras.ClosePath()
	ras.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// fillCircle rasterizes a filled circle from four cubic Bezier arcs.
func fillCircle(dst *image.RGBA, cx, cy, r float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	const kappa = 0.5522847498
	k := float32(r * kappa)
	x, y, rr := float32(cx), float32(cy), float32(r)

	ras := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	ras.MoveTo(x+rr, y)
	ras.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	ras.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	ras.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	ras.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	ras.ClosePath()
	ras.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

func encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func degToRad(d float64) float64 { return d * (math.Pi / 180.0) }
