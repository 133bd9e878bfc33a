package wire

import (
	"errors"
	"testing"
)

func TestNextFieldRejectsGroupWireTypes(t *testing.T) {
	for _, wt := range []WireType{WireStartGrp, WireEndGrp} {
		tag := MakeTag(1, wt)
		enc := NewEncoder()
		enc.UnsignedVarint(uint64(tag))
		r := NewReader(enc.Bytes())
		_, err := r.NextField()
		if !errors.Is(err, ErrInvalidWireType) {
			t.Fatalf("wire type %d: got %v, want ErrInvalidWireType", wt, err)
		}
	}
}

func TestNextFieldRejectsUnrecognizedWireType(t *testing.T) {
	tag := uint64(1)<<3 | 6 // wire type 6 does not exist
	enc := NewEncoder()
	enc.UnsignedVarint(tag)
	r := NewReader(enc.Bytes())
	_, err := r.NextField()
	if !errors.Is(err, ErrInvalidWireType) {
		t.Fatalf("got %v, want ErrInvalidWireType", err)
	}
}

func TestNextFieldRejectsFieldNumberZero(t *testing.T) {
	tag := MakeTag(0, WireVarint)
	enc := NewEncoder()
	enc.UnsignedVarint(uint64(tag))
	r := NewReader(enc.Bytes())
	_, err := r.NextField()
	if !errors.Is(err, ErrInvalidFieldNumber) {
		t.Fatalf("got %v, want ErrInvalidFieldNumber", err)
	}
}

func TestNextFieldFalseAtEnd(t *testing.T) {
	r := NewReader(nil)
	more, err := r.NextField()
	if err != nil || more {
		t.Fatalf("got more=%v err=%v, want false, nil", more, err)
	}
}

func TestSkipFieldEveryWireType(t *testing.T) {
	w := NewWriter()
	_ = w.Int32(1, 5)
	_ = w.Fixed64(2, 9)
	_ = w.WriteBytes(3, []byte{1, 2, 3})
	_ = w.Fixed32(4, 7)

	r := NewReader(w.Bytes())
	for i := 0; i < 4; i++ {
		more, err := r.NextField()
		if err != nil || !more {
			t.Fatalf("field %d: NextField ok=%v err=%v", i, more, err)
		}
		if err := r.SkipField(); err != nil {
			t.Fatalf("field %d: SkipField: %v", i, err)
		}
	}
	if !r.Done() {
		t.Fatalf("expected reader to be exhausted")
	}
}

func TestReadUnknownCapturesRawBytes(t *testing.T) {
	w := NewWriter()
	_ = w.Int32(1, 300)
	r := NewReader(w.Bytes())
	if ok, err := r.NextField(); err != nil || !ok {
		t.Fatal(err)
	}
	raw, err := r.ReadUnknown()
	if err != nil {
		t.Fatal(err)
	}
	if raw.FieldNumber != 1 || raw.WireType != WireVarint {
		t.Fatalf("unexpected raw value: %+v", raw)
	}
	if !r.Done() {
		t.Fatalf("expected reader to be exhausted after ReadUnknown")
	}
}

type innerMessage struct {
	v int32
}

func (m *innerMessage) MarshalTo(w *Writer) error {
	return w.Int32(1, m.v)
}

func (m *innerMessage) UnmarshalFrom(r *Reader) error {
	for {
		more, err := r.NextField()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		switch r.FieldNumber() {
		case 1:
			v, err := r.ReadVarint32()
			if err != nil {
				return err
			}
			m.v = v
		default:
			if err := r.SkipField(); err != nil {
				return err
			}
		}
	}
}

func TestMessageDescentRestoresEndOnShortRead(t *testing.T) {
	inner := &innerMessage{v: 42}
	outer := NewWriter()
	if err := outer.Message(5, inner); err != nil {
		t.Fatal(err)
	}
	// Append a trailing field after the nested message to prove End is
	// restored correctly even when the nested decoder stops early.
	_ = outer.Int32(6, 99)

	r := NewReader(outer.Bytes())
	if ok, err := r.NextField(); err != nil || !ok {
		t.Fatal(err)
	}
	got := &innerMessage{}
	// Simulate a decoder that stops after reading nothing at all.
	if err := r.Message(stopImmediately{}); err != nil {
		t.Fatal(err)
	}
	if ok, err := r.NextField(); err != nil || !ok {
		t.Fatalf("expected trailing field 6 to still be reachable: ok=%v err=%v", ok, err)
	}
	if r.FieldNumber() != 6 {
		t.Fatalf("got field %d, want 6", r.FieldNumber())
	}
	v, err := r.ReadVarint32()
	if err != nil || v != 99 {
		t.Fatalf("got %d, %v", v, err)
	}
	_ = got
}

type stopImmediately struct{}

func (stopImmediately) UnmarshalFrom(r *Reader) error { return nil }

func TestMessageBytesReturnsRawPayload(t *testing.T) {
	inner := &innerMessage{v: 7}
	innerBytes, err := EncodeMessage(inner)
	if err != nil {
		t.Fatal(err)
	}
	outer := NewWriter()
	if err := outer.MessageBytes(1, innerBytes); err != nil {
		t.Fatal(err)
	}
	r := NewReader(outer.Bytes())
	if ok, err := r.NextField(); err != nil || !ok {
		t.Fatal(err)
	}
	got, err := r.MessageBytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytesEqual(got, innerBytes) {
		t.Fatalf("got % X, want % X", got, innerBytes)
	}
}
