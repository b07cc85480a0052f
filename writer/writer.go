// Package writer serializes ir.Documents to canonical IESNA LM-63 bytes.
// The output is the structural inverse of the parser, with two normalizing
// rules: floats are written at fixed 2-decimal precision with trailing zeros
// (and a dangling point) stripped, and any tilt data is embedded as
// "TILT=INCLUDE" regardless of whether it originally came from an external
// file.
package writer

import (
	"github.com/lumatools/ieskit/ir"
	"github.com/lumatools/ieskit/observability"
)

// Config controls serialization.
type Config struct {
	Logger observability.Logger
}

// Writer produces canonical LM-63 bytes from a document.
type Writer interface {
	Write(doc *ir.Document) ([]byte, error)
}

func New(cfg Config) Writer {
	if cfg.Logger == nil {
		cfg.Logger = observability.NopLogger{}
	}
	return &impl{cfg: cfg}
}
