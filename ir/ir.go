// Package ir holds the in-memory representation of an IESNA LM-63
// photometric document. A Document is constructed once by the parser and
// never mutated afterwards; transforms produce fresh copies.
package ir

// Format identifies the LM-63 dialect a document was read from (or will be
// written as). The 1986 dialect has no tag line in the file.
type Format int

const (
	FormatLM63_1986 Format = iota
	FormatLM63_1991
	FormatLM63_1995
	FormatLM63_2002
)

func (f Format) String() string {
	switch f {
	case FormatLM63_1986:
		return "LM-63-1986"
	case FormatLM63_1991:
		return "LM-63-1991"
	case FormatLM63_1995:
		return "LM-63-1995"
	case FormatLM63_2002:
		return "LM-63-2002"
	default:
		return "unknown"
	}
}

// TiltOrientation is the lamp-to-luminaire geometry code from the TILT block.
type TiltOrientation int

const (
	LampVertical   TiltOrientation = 1
	LampHorizontal TiltOrientation = 2
	LampTilted     TiltOrientation = 3
)

// Units is the measurement system for the luminous opening dimensions.
type Units int

const (
	Feet   Units = 1
	Meters Units = 2
)

// GonioType classifies the goniometer geometry used for the measurement.
type GonioType int

const (
	TypeC GonioType = 1
	TypeB GonioType = 2
	TypeA GonioType = 3
)

// TiltRefNone is the TILT directive value meaning no tilt data is present.
const TiltRefNone = "NONE"

// TiltRefInclude is the TILT directive value meaning the tilt block follows
// inline in the same document.
const TiltRefInclude = "INCLUDE"

// FileMeta carries the optional display name and the detected dialect.
// The name is informational only and excluded from Equal.
type FileMeta struct {
	Name   string
	Format Format
}

// Tilt is the optional lamp tilt table. When NumPairs <= 0 both slices are
// empty; otherwise both have length NumPairs.
type Tilt struct {
	Orientation TiltOrientation
	NumPairs    int
	Angles      []float64
	MultFactors []float64
}

// Lamp groups the lamp parameters from the header line. Tilt is nil exactly
// when TiltRef is "NONE".
type Lamp struct {
	NumLamps      int
	LumensPerLamp float64
	Multiplier    float64
	TiltRef       string
	Tilt          *Tilt
}

// Dimensions of the luminous opening, in Units.
type Dimensions struct {
	Width  float64
	Length float64
	Height float64
}

// Electrical is the ballast/input data line.
type Electrical struct {
	BallastFactor     float64
	BallastLampFactor float64
	InputWatts        float64
}

// Photometry is the candela table. Candelas is indexed by horizontal angle
// first: Candelas[i][j] is the sample at HorzAngles[i], VertAngles[j], so
// every row has length NumVertAngles and there are NumHorzAngles rows.
type Photometry struct {
	Gonio         GonioType
	NumVertAngles int
	NumHorzAngles int
	VertAngles    []float64
	HorzAngles    []float64
	Candelas      [][]float64
}

// Document is a complete LM-63 photometric record.
type Document struct {
	File   FileMeta
	Labels []string
	Lamp   Lamp
	Units  Units
	Dim    Dimensions
	Elec   Electrical
	Photo  Photometry
}

// Clone returns a deep copy sharing no slices with d.
func (d *Document) Clone() *Document {
	out := *d
	out.Labels = append([]string(nil), d.Labels...)
	if d.Lamp.Tilt != nil {
		t := *d.Lamp.Tilt
		t.Angles = append([]float64(nil), d.Lamp.Tilt.Angles...)
		t.MultFactors = append([]float64(nil), d.Lamp.Tilt.MultFactors...)
		out.Lamp.Tilt = &t
	}
	out.Photo.VertAngles = append([]float64(nil), d.Photo.VertAngles...)
	out.Photo.HorzAngles = append([]float64(nil), d.Photo.HorzAngles...)
	out.Photo.Candelas = make([][]float64, len(d.Photo.Candelas))
	for i, row := range d.Photo.Candelas {
		out.Photo.Candelas[i] = append([]float64(nil), row...)
	}
	return &out
}

// Equal reports whether two documents hold the same data. The display name
// is ignored: otherwise identical files may carry different names.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.File.Format != o.File.Format {
		return false
	}
	if !stringsEqual(d.Labels, o.Labels) {
		return false
	}
	if d.Lamp.NumLamps != o.Lamp.NumLamps ||
		d.Lamp.LumensPerLamp != o.Lamp.LumensPerLamp ||
		d.Lamp.Multiplier != o.Lamp.Multiplier ||
		d.Lamp.TiltRef != o.Lamp.TiltRef {
		return false
	}
	if !tiltEqual(d.Lamp.Tilt, o.Lamp.Tilt) {
		return false
	}
	if d.Units != o.Units || d.Dim != o.Dim || d.Elec != o.Elec {
		return false
	}
	p, q := &d.Photo, &o.Photo
	if p.Gonio != q.Gonio || p.NumVertAngles != q.NumVertAngles || p.NumHorzAngles != q.NumHorzAngles {
		return false
	}
	if !floatsEqual(p.VertAngles, q.VertAngles) || !floatsEqual(p.HorzAngles, q.HorzAngles) {
		return false
	}
	if len(p.Candelas) != len(q.Candelas) {
		return false
	}
	for i := range p.Candelas {
		if !floatsEqual(p.Candelas[i], q.Candelas[i]) {
			return false
		}
	}
	return true
}

func tiltEqual(a, b *Tilt) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Orientation == b.Orientation &&
		a.NumPairs == b.NumPairs &&
		floatsEqual(a.Angles, b.Angles) &&
		floatsEqual(a.MultFactors, b.MultFactors)
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
