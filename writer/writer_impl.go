package writer

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/lumatools/ieskit/ir"
	"github.com/lumatools/ieskit/observability"
)

var (
	ErrUnknownFormat  = errors.New("unknown format dialect")
	ErrMissingTilt    = errors.New("tilt reference set but tilt data missing")
	ErrRaggedCandelas = errors.New("candela table does not match declared angle counts")
)

type impl struct {
	cfg Config
}

func (w *impl) Write(doc *ir.Document) ([]byte, error) {
	if err := validate(doc); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	tag, err := formatTag(doc.File.Format)
	if err != nil {
		return nil, err
	}
	buf.WriteString(tag)
	buf.WriteByte('\n')

	for _, label := range doc.Labels {
		buf.WriteString(label)
		buf.WriteByte('\n')
	}

	writeTilt(&buf, doc)

	// Header line: 10 space-separated fields.
	fmt.Fprintf(&buf, "%d %s %s %d %d %d %d %s %s %s\n",
		doc.Lamp.NumLamps,
		formatFloat(doc.Lamp.LumensPerLamp),
		formatFloat(doc.Lamp.Multiplier),
		doc.Photo.NumVertAngles,
		doc.Photo.NumHorzAngles,
		int(doc.Photo.Gonio),
		int(doc.Units),
		formatFloat(doc.Dim.Width),
		formatFloat(doc.Dim.Length),
		formatFloat(doc.Dim.Height))

	fmt.Fprintf(&buf, "%s %s %s\n",
		formatFloat(doc.Elec.BallastFactor),
		formatFloat(doc.Elec.BallastLampFactor),
		formatFloat(doc.Elec.InputWatts))

	writeFloatLine(&buf, doc.Photo.VertAngles)
	writeFloatLine(&buf, doc.Photo.HorzAngles)
	for _, row := range doc.Photo.Candelas {
		writeFloatLine(&buf, row)
	}

	w.cfg.Logger.Debug("serialized photometric document",
		observability.String("format", doc.File.Format.String()),
		observability.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

func formatTag(f ir.Format) (string, error) {
	switch f {
	case ir.FormatLM63_1995:
		return "IESNA:LM-63-1995", nil
	case ir.FormatLM63_2002:
		return "IESNA:LM-63-2002", nil
	case ir.FormatLM63_1991:
		return "IESNA91", nil
	case ir.FormatLM63_1986:
		return "IESNA86", nil
	default:
		return "", ErrUnknownFormat
	}
}

// writeTilt emits "TILT=NONE" when the reference is the NONE sentinel, and
// an embedded "TILT=INCLUDE" block otherwise. External tilt references are
// never round-tripped as references; the payload is always inlined.
func writeTilt(buf *bytes.Buffer, doc *ir.Document) {
	if doc.Lamp.TiltRef == ir.TiltRefNone {
		buf.WriteString("TILT=NONE\n")
		return
	}
	t := doc.Lamp.Tilt
	buf.WriteString("TILT=INCLUDE\n")
	fmt.Fprintf(buf, "%d\n%d\n", int(t.Orientation), t.NumPairs)
	writeFloatLine(buf, t.Angles)
	writeFloatLine(buf, t.MultFactors)
}

// writeFloatLine emits the values space-separated on one newline-terminated
// line, or nothing at all for an empty slice.
func writeFloatLine(buf *bytes.Buffer, vals []float64) {
	if len(vals) == 0 {
		return
	}
	for i, v := range vals {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(formatFloat(v))
	}
	buf.WriteByte('\n')
}

func validate(doc *ir.Document) error {
	if doc.Lamp.TiltRef != ir.TiltRefNone && doc.Lamp.Tilt == nil {
		return ErrMissingTilt
	}
	p := &doc.Photo
	if len(p.VertAngles) != p.NumVertAngles || len(p.HorzAngles) != p.NumHorzAngles {
		return ErrRaggedCandelas
	}
	if len(p.Candelas) != p.NumHorzAngles {
		return ErrRaggedCandelas
	}
	for _, row := range p.Candelas {
		if len(row) != p.NumVertAngles {
			return ErrRaggedCandelas
		}
	}
	return nil
}
