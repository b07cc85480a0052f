package render

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/lumatools/ieskit/ir"
)

func previewDoc() *ir.Document {
	doc := &ir.Document{}
	doc.Lamp.TiltRef = ir.TiltRefNone
	doc.Photo = ir.Photometry{
		Gonio:         ir.TypeC,
		NumVertAngles: 4,
		NumHorzAngles: 2,
		VertAngles:    []float64{0, 30, 60, 90},
		HorzAngles:    []float64{0, 180},
		Candelas: [][]float64{
			{100, 80, 40, 5},
			{90, 70, 30, 2},
		},
	}
	return doc
}

func TestPolar_ProducesDecodablePNG(t *testing.T) {
	out, err := Polar(previewDoc(), Options{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 512 || b.Dy() != 512 {
		t.Fatalf("expected default 512x512 image, got %v", b)
	}
}

func TestPolar_CustomSize(t *testing.T) {
	out, err := Polar(previewDoc(), Options{Size: 64})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("expected 64x64 image, got %v", b)
	}
}

func TestPolar_NoData(t *testing.T) {
	doc := &ir.Document{}
	if _, err := Polar(doc, Options{}); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestPolar_ShortRow(t *testing.T) {
	doc := previewDoc()
	doc.Photo.Candelas[0] = doc.Photo.Candelas[0][:2]
	if _, err := Polar(doc, Options{Size: 32}); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData for short candela row, got %v", err)
	}
}

func TestPolar_AllZeroTable(t *testing.T) {
	doc := previewDoc()
	for i := range doc.Photo.Candelas {
		for j := range doc.Photo.Candelas[i] {
			doc.Photo.Candelas[i][j] = 0
		}
	}
	out, err := Polar(doc, Options{Size: 32})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(out)); err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
}
