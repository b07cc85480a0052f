// Package parser assembles ir.Documents from IESNA LM-63 bytes. Parsing is
// all-or-nothing: the first structural or numeric failure voids the whole
// document and propagates to the caller.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lumatools/ieskit/ir"
	"github.com/lumatools/ieskit/observability"
	"github.com/lumatools/ieskit/resources"
	"github.com/lumatools/ieskit/scanner"
)

// tiltPrefix terminates the label section. The match is case-sensitive and
// exact on the first five characters of the line.
const tiltPrefix = "TILT="

var (
	ErrEmptyDocument     = errors.New("document is empty")
	ErrUnterminatedLabel = errors.New("label section not terminated by TILT directive")
	ErrNoTiltSource      = errors.New("no source configured for external tilt file")
	ErrLimitExceeded     = errors.New("document exceeds configured limit")
)

// Limits bounds the table sizes a document may declare. Zero means no limit.
type Limits struct {
	MaxLabels int
	MaxAngles int
}

func DefaultLimits() Limits {
	return Limits{MaxLabels: 4096, MaxAngles: 4096}
}

// Config controls document parsing.
type Config struct {
	// Source supplies the bytes of external TILT files. Leaving it nil makes
	// any "TILT=<filename>" document fail to parse.
	Source resources.Source
	Limits Limits
	Logger observability.Logger
}

// DocumentParser parses complete LM-63 documents.
type DocumentParser struct {
	cfg Config
}

func New(cfg Config) *DocumentParser {
	if cfg.Logger == nil {
		cfg.Logger = observability.NopLogger{}
	}
	return &DocumentParser{cfg: cfg}
}

// Parse reads one photometric document from data. name is an optional
// display name stored on the result; it does not participate in equality.
func (p *DocumentParser) Parse(data []byte, name string) (*ir.Document, error) {
	cur := scanner.NewCursor(data)
	doc := &ir.Document{}
	doc.File.Name = name

	if err := p.resolveFormat(cur, doc); err != nil {
		return nil, err
	}
	tiltRef, err := p.parseLabels(cur, doc)
	if err != nil {
		return nil, err
	}
	if err := p.resolveTilt(cur, doc, tiltRef); err != nil {
		return nil, err
	}
	if err := p.parseHeader(cur, doc); err != nil {
		return nil, err
	}
	if err := p.parseElectrical(cur, doc); err != nil {
		return nil, err
	}
	if err := p.parseAngles(cur, doc); err != nil {
		return nil, err
	}
	if err := p.parseCandelas(cur, doc); err != nil {
		return nil, err
	}

	p.cfg.Logger.Debug("parsed photometric document",
		observability.String("format", doc.File.Format.String()),
		observability.Int("labels", len(doc.Labels)),
		observability.Int("vert_angles", doc.Photo.NumVertAngles),
		observability.Int("horz_angles", doc.Photo.NumHorzAngles))
	return doc, nil
}

// resolveFormat reads the first line and matches it verbatim against the
// three modern dialect tags. The 1986 dialect has no tag line: on no match
// the cursor is rewound so the line is re-offered to the label scanner.
func (p *DocumentParser) resolveFormat(cur *scanner.Cursor, doc *ir.Document) error {
	line, ok := cur.NextLine()
	if !ok || line == "" {
		return ErrEmptyDocument
	}
	switch line {
	case "IESNA:LM-63-1995":
		doc.File.Format = ir.FormatLM63_1995
	case "IESNA:LM-63-2002":
		doc.File.Format = ir.FormatLM63_2002
	case "IESNA91":
		doc.File.Format = ir.FormatLM63_1991
	default:
		doc.File.Format = ir.FormatLM63_1986
		cur.Rewind()
	}
	return nil
}

// parseLabels collects label lines until the TILT directive and returns the
// directive's value. Running out of input before TILT is a failure: the
// label section has no implicit terminator.
func (p *DocumentParser) parseLabels(cur *scanner.Cursor, doc *ir.Document) (string, error) {
	for {
		line, ok := cur.NextLine()
		if !ok || line == "" {
			return "", ErrUnterminatedLabel
		}
		if strings.HasPrefix(line, tiltPrefix) {
			return line[len(tiltPrefix):], nil
		}
		if p.cfg.Limits.MaxLabels > 0 && len(doc.Labels) >= p.cfg.Limits.MaxLabels {
			return "", fmt.Errorf("label count: %w", ErrLimitExceeded)
		}
		doc.Labels = append(doc.Labels, line)
	}
}

// resolveTilt interprets the TILT directive value. "NONE" leaves the tilt
// record absent, "INCLUDE" parses it from the same stream, and anything else
// names an external resource parsed on its own.
func (p *DocumentParser) resolveTilt(cur *scanner.Cursor, doc *ir.Document, tiltRef string) error {
	doc.Lamp.TiltRef = tiltRef
	switch tiltRef {
	case ir.TiltRefNone:
		return nil
	case ir.TiltRefInclude:
		tilt, err := parseTilt(cur)
		if err != nil {
			return fmt.Errorf("inline tilt: %w", err)
		}
		doc.Lamp.Tilt = tilt
		return nil
	default:
		if p.cfg.Source == nil {
			return ErrNoTiltSource
		}
		data, err := p.cfg.Source.Acquire(tiltRef)
		if err != nil {
			return fmt.Errorf("tilt file %s: %w", tiltRef, err)
		}
		tilt, err := parseTilt(scanner.NewCursor(data))
		if err != nil {
			return fmt.Errorf("tilt file %s: %w", tiltRef, err)
		}
		doc.Lamp.Tilt = tilt
		return nil
	}
}

// parseHeader reads the 10-field lamp/photometry line.
func (p *DocumentParser) parseHeader(cur *scanner.Cursor, doc *ir.Document) error {
	kinds := []scanner.Kind{
		scanner.Int,   // number of lamps
		scanner.Float, // lumens per lamp
		scanner.Float, // candela multiplier
		scanner.Int,   // vertical angle count
		scanner.Int,   // horizontal angle count
		scanner.Int,   // goniometer type
		scanner.Int,   // units
		scanner.Float, // width
		scanner.Float, // length
		scanner.Float, // height
	}
	vals, err := scanner.ReadFields(cur, kinds)
	if err != nil {
		return fmt.Errorf("header line: %w", err)
	}
	doc.Lamp.NumLamps = int(vals[0].I)
	doc.Lamp.LumensPerLamp = vals[1].F
	doc.Lamp.Multiplier = vals[2].F
	doc.Photo.NumVertAngles = int(vals[3].I)
	doc.Photo.NumHorzAngles = int(vals[4].I)
	doc.Photo.Gonio = ir.GonioType(vals[5].I)
	doc.Units = ir.Units(vals[6].I)
	doc.Dim.Width = vals[7].F
	doc.Dim.Length = vals[8].F
	doc.Dim.Height = vals[9].F

	if doc.Photo.NumVertAngles < 0 || doc.Photo.NumHorzAngles < 0 {
		return fmt.Errorf("header line: negative angle count")
	}
	if lim := p.cfg.Limits.MaxAngles; lim > 0 &&
		(doc.Photo.NumVertAngles > lim || doc.Photo.NumHorzAngles > lim) {
		return fmt.Errorf("angle count: %w", ErrLimitExceeded)
	}
	return nil
}

// parseElectrical reads the 3-float ballast line.
func (p *DocumentParser) parseElectrical(cur *scanner.Cursor, doc *ir.Document) error {
	kinds := []scanner.Kind{scanner.Float, scanner.Float, scanner.Float}
	vals, err := scanner.ReadFields(cur, kinds)
	if err != nil {
		return fmt.Errorf("electrical line: %w", err)
	}
	doc.Elec.BallastFactor = vals[0].F
	doc.Elec.BallastLampFactor = vals[1].F
	doc.Elec.InputWatts = vals[2].F
	return nil
}

func (p *DocumentParser) parseAngles(cur *scanner.Cursor, doc *ir.Document) error {
	vert, err := scanner.ReadFloatArray(cur, doc.Photo.NumVertAngles)
	if err != nil {
		return fmt.Errorf("vertical angles: %w", err)
	}
	horz, err := scanner.ReadFloatArray(cur, doc.Photo.NumHorzAngles)
	if err != nil {
		return fmt.Errorf("horizontal angles: %w", err)
	}
	doc.Photo.VertAngles = vert
	doc.Photo.HorzAngles = horz
	return nil
}

// parseCandelas reads one candela row per horizontal angle, each of
// NumVertAngles values. A short or missing row voids the entire document.
func (p *DocumentParser) parseCandelas(cur *scanner.Cursor, doc *ir.Document) error {
	rows := make([][]float64, doc.Photo.NumHorzAngles)
	for i := range rows {
		row, err := scanner.ReadFloatArray(cur, doc.Photo.NumVertAngles)
		if err != nil {
			return fmt.Errorf("candela row %d: %w", i, err)
		}
		rows[i] = row
	}
	doc.Photo.Candelas = rows
	return nil
}
