package wire

import (
	"errors"
	"testing"
)

func TestFieldErrorWrapsPath(t *testing.T) {
	err := wrapWithField(ErrBounds, "inner")
	err = wrapWithField(err, "outer")

	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FieldError, got %T", err)
	}
	if len(fe.FieldPath) != 2 || fe.FieldPath[0] != "outer" || fe.FieldPath[1] != "inner" {
		t.Fatalf("unexpected field path: %v", fe.FieldPath)
	}
	if !errors.Is(err, ErrBounds) {
		t.Fatalf("errors.Is(err, ErrBounds) should hold through the wrap")
	}
}

func TestFieldErrorIsMatchesAnyPath(t *testing.T) {
	a := wrapWithField(ErrBounds, "a")
	b := &FieldError{}
	if !errors.Is(a, b) {
		t.Fatalf("FieldError.Is should match any *FieldError regardless of path")
	}
}

func TestMessageFieldErrorPropagatesNestedFieldName(t *testing.T) {
	w := NewWriter()
	err := w.Message(1, failingMarshaler{})
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FieldError, got %T: %v", err, err)
	}
	if len(fe.FieldPath) == 0 {
		t.Fatalf("expected non-empty field path")
	}
}

type failingMarshaler struct{}

func (failingMarshaler) MarshalTo(w *Writer) error {
	return w.Int32(0, 1) // field 0 is invalid, triggers ErrInvalidFieldNumber
}
