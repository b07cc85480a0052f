package scanner

import (
	"errors"
	"strconv"
)

// Kind selects the numeric type of a requested field.
type Kind int

const (
	Int Kind = iota
	Float
)

// Value holds one parsed field. Exactly one of I or F is meaningful,
// selected by Kind.
type Value struct {
	Kind Kind
	I    int64
	F    float64
}

var (
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	ErrEmptyLine     = errors.New("empty line where content was expected")
	ErrBadNumber     = errors.New("malformed numeric token")
)

// Cursor walks an in-memory buffer one LF-terminated line at a time.
// A trailing CR is stripped from every line. Rewind resets the cursor to
// the start of the buffer; the format resolver needs exactly one re-read.
type Cursor struct {
	data []byte
	pos  int
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// NextLine returns the next line without its terminator. ok is false once
// the cursor has consumed the whole buffer. A final line without a trailing
// LF is still returned.
func (c *Cursor) NextLine() (string, bool) {
	if c.pos >= len(c.data) {
		return "", false
	}
	start := c.pos
	for c.pos < len(c.data) && c.data[c.pos] != '\n' {
		c.pos++
	}
	end := c.pos
	if c.pos < len(c.data) {
		c.pos++ // consume LF
	}
	if end > start && c.data[end-1] == '\r' {
		end--
	}
	return string(c.data[start:end]), true
}

// Rewind resets the cursor to the start of the buffer.
func (c *Cursor) Rewind() { c.pos = 0 }

func isLineSpace(b byte) bool { return b == ' ' || b == '\t' }

func isDelimiter(b byte) bool { return isLineSpace(b) || b == ',' }

// ReadFields reads one typed value per entry of kinds, in order, starting on
// a fresh line from cur. Delimiters (spaces, tabs, commas) may span line
// boundaries between tokens; a single token may not. The buffer running out
// with fields still pending is an error and no partial result is returned.
func ReadFields(cur *Cursor, kinds []Kind) ([]Value, error) {
	if len(kinds) == 0 {
		return nil, nil
	}
	line, ok := cur.NextLine()
	if !ok {
		return nil, ErrUnexpectedEOF
	}
	if line == "" {
		return nil, ErrEmptyLine
	}

	// Leading delimiters never span onto the next line.
	i := 0
	for i < len(line) && isDelimiter(line[i]) {
		i++
	}
	if i == len(line) {
		return nil, ErrEmptyLine
	}

	out := make([]Value, 0, len(kinds))
	for n, kind := range kinds {
		val, next, err := scanNumber(line, i, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
		i = next
		if n == len(kinds)-1 {
			break
		}
		line, i, err = skipDelimiters(cur, line, i)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ReadFloatArray reads exactly n floats starting on a fresh line from cur,
// with the same delimiter and line-spanning rules as ReadFields.
func ReadFloatArray(cur *Cursor, n int) ([]float64, error) {
	if n <= 0 {
		return nil, nil
	}
	line, ok := cur.NextLine()
	if !ok {
		return nil, ErrUnexpectedEOF
	}
	if line == "" {
		return nil, ErrEmptyLine
	}

	i := 0
	for i < len(line) && isDelimiter(line[i]) {
		i++
	}
	if i == len(line) {
		return nil, ErrEmptyLine
	}

	out := make([]float64, 0, n)
	for {
		val, next, err := scanNumber(line, i, Float)
		if err != nil {
			return nil, err
		}
		out = append(out, val.F)
		i = next
		if len(out) == n {
			return out, nil
		}
		line, i, err = skipDelimiters(cur, line, i)
		if err != nil {
			return nil, err
		}
	}
}

// skipDelimiters advances past a run of delimiter characters, fetching
// further lines whenever the current one is exhausted. It returns the line
// and index positioned at the next non-delimiter byte.
func skipDelimiters(cur *Cursor, line string, i int) (string, int, error) {
	for {
		if i >= len(line) {
			next, ok := cur.NextLine()
			if !ok {
				return "", 0, ErrUnexpectedEOF
			}
			if next == "" {
				return "", 0, ErrEmptyLine
			}
			line, i = next, 0
			continue
		}
		if isDelimiter(line[i]) {
			i++
			continue
		}
		return line, i, nil
	}
}

// scanNumber parses the longest numeric prefix of the requested kind at
// line[i:]: an optional leading '-', digits, and for floats at most one '.'.
// A prefix that does not parse as the requested kind is a hard failure.
func scanNumber(line string, i int, kind Kind) (Value, int, error) {
	start := i
	if i < len(line) && line[i] == '-' {
		i++
	}
	sawDot := false
	for i < len(line) {
		b := line[i]
		if b >= '0' && b <= '9' {
			i++
			continue
		}
		if b == '.' && kind == Float && !sawDot {
			sawDot = true
			i++
			continue
		}
		break
	}
	tok := line[start:i]
	if tok == "" || tok == "-" {
		return Value{}, 0, ErrBadNumber
	}
	switch kind {
	case Int:
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return Value{}, 0, ErrBadNumber
		}
		return Value{Kind: Int, I: v}, i, nil
	default:
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Value{}, 0, ErrBadNumber
		}
		return Value{Kind: Float, F: v}, i, nil
	}
}
