package observability

import (
	"context"
	"errors"
	"testing"
)

func TestNopTracer(t *testing.T) {
	tracer := NopTracer()
	ctx := context.Background()
	ctx2, span := tracer.StartSpan(ctx, "test")
	if ctx2 != ctx {
		t.Fatalf("nop tracer should return same context")
	}
	span.SetTag("key", "value")
	span.SetError(nil)
	span.Finish()
}

func TestFields(t *testing.T) {
	if f := String("k", "v"); f.Key() != "k" || f.Value() != "v" {
		t.Fatalf("string field: %v=%v", f.Key(), f.Value())
	}
	if f := Int("n", 3); f.Key() != "n" || f.Value() != 3 {
		t.Fatalf("int field: %v=%v", f.Key(), f.Value())
	}
	if f := Float64("x", 1.5); f.Key() != "x" || f.Value() != 1.5 {
		t.Fatalf("float field: %v=%v", f.Key(), f.Value())
	}
	err := errors.New("boom")
	if f := Error("err", err); f.Key() != "err" || f.Value() != err {
		t.Fatalf("error field: %v=%v", f.Key(), f.Value())
	}
}

func TestNopLogger(t *testing.T) {
	var logger Logger = NopLogger{}
	logger = logger.With(String("component", "test"))
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error", Error("err", errors.New("boom")))
}
