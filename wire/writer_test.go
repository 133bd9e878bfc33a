package wire

import (
	"errors"
	"testing"
)

func TestWriterRejectsFieldNumberZero(t *testing.T) {
	w := NewWriter()
	err := w.Int32(0, 1)
	if !errors.Is(err, ErrInvalidFieldNumber) {
		t.Fatalf("got %v, want ErrInvalidFieldNumber", err)
	}
}

func TestUint64CapAt2Pow63(t *testing.T) {
	w := NewWriter()
	if err := w.Uint64(1, 1<<63-1); err != nil {
		t.Fatalf("largest legal value rejected: %v", err)
	}
	w2 := NewWriter()
	err := w2.Uint64(1, 1<<63)
	if !errors.Is(err, ErrRangeViolation) {
		t.Fatalf("got %v, want ErrRangeViolation at the 2^63 boundary", err)
	}
}

func TestSint64InRangeValueIsWrittenNotDropped(t *testing.T) {
	// Sint64 takes a native int64, so every Go int64 value is already in
	// range and no value is dropped — zigzag folding itself never
	// overflows.
	w := NewWriter()
	if err := w.Sint64(1, -1); err != nil {
		t.Fatalf("unexpected error for an in-range value: %v", err)
	}
}

func TestDelimitedScopeNestsCorrectly(t *testing.T) {
	inner := &innerMessage{v: 11}
	w := NewWriter()
	if err := w.Message(1, inner); err != nil {
		t.Fatal(err)
	}
	encoded := w.Bytes()

	// tag(1, DELIMITED) + length + inner's own (tag, payload)
	r := NewReader(encoded)
	if ok, err := r.NextField(); err != nil || !ok {
		t.Fatal(err)
	}
	if r.WireType() != WireDelimited {
		t.Fatalf("got wire type %d, want DELIMITED", r.WireType())
	}
	got := &innerMessage{}
	if err := r.Message(got); err != nil {
		t.Fatal(err)
	}
	if got.v != 11 {
		t.Fatalf("got %d, want 11", got.v)
	}
}

func TestBeginEndDelimitedSplicesCorrectLength(t *testing.T) {
	w := NewWriter()
	bookmark, err := w.beginDelimited(9)
	if err != nil {
		t.Fatal(err)
	}
	w.enc.RawBytes([]byte{1, 2, 3, 4, 5})
	w.endDelimited(bookmark)

	r := NewReader(w.Bytes())
	if ok, err := r.NextField(); err != nil || !ok {
		t.Fatal(err)
	}
	payload, err := r.ReadBytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytesEqual(payload, []byte{1, 2, 3, 4, 5}) {
		t.Fatalf("got % X", payload)
	}
}

func TestMessageErrorWrapsFieldLabel(t *testing.T) {
	w := NewWriter()
	err := w.Message(3, failingMarshaler{})
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FieldError, got %T", err)
	}
	if fe.FieldPath[0] != "field_3" {
		t.Fatalf("got field path %v, want [field_3 ...]", fe.FieldPath)
	}
}

func TestStringLengthLimitEnforced(t *testing.T) {
	old := GetConfig()
	defer SetConfig(old)
	SetConfig(Config{MaxStringLength: 2})

	w := NewWriter()
	if err := w.String(1, "abc"); !errors.Is(err, ErrLengthLimit) {
		t.Fatalf("got %v, want ErrLengthLimit", err)
	}
}
