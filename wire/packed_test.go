package wire

import "testing"

func TestPackedInt32Scenario(t *testing.T) {
	// spec.md §8 scenario 5: PackedInt32(field=5, value=[3,270,86942]) ->
	// "2A 06 03 8E 02 9E A7 05"
	w := NewWriter()
	if err := w.PackedInt32(5, []int32{3, 270, 86942}); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x2A, 0x06, 0x03, 0x8E, 0x02, 0x9E, 0xA7, 0x05}
	if !bytesEqual(w.Bytes(), want) {
		t.Fatalf("got % X, want % X", w.Bytes(), want)
	}

	r := NewReader(w.Bytes())
	if ok, err := r.NextField(); err != nil || !ok {
		t.Fatal(err)
	}
	got, err := r.ReadPackedInt32()
	if err != nil {
		t.Fatal(err)
	}
	want32 := []int32{3, 270, 86942}
	if len(got) != len(want32) {
		t.Fatalf("got %v, want %v", got, want32)
	}
	for i := range want32 {
		if got[i] != want32[i] {
			t.Fatalf("got %v, want %v", got, want32)
		}
	}
}

func TestPackedFixed32NoBookmarkNeeded(t *testing.T) {
	w := NewWriter()
	values := []uint32{1, 2, 3}
	if err := w.PackedFixed32(1, values); err != nil {
		t.Fatal(err)
	}
	r := NewReader(w.Bytes())
	if ok, err := r.NextField(); err != nil || !ok {
		t.Fatal(err)
	}
	got, err := r.ReadPackedFixed32()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("got %v", got)
	}
}

func TestPackedDoubleRoundTrip(t *testing.T) {
	w := NewWriter()
	values := []float64{1.5, -2.25, 0}
	if err := w.PackedDouble(2, values); err != nil {
		t.Fatal(err)
	}
	r := NewReader(w.Bytes())
	if ok, err := r.NextField(); err != nil || !ok {
		t.Fatal(err)
	}
	got, err := r.ReadPackedDouble()
	if err != nil {
		t.Fatal(err)
	}
	for i := range values {
		if got[i] != values[i] {
			t.Fatalf("got %v, want %v", got, values)
		}
	}
}

func TestPackedBoolRoundTrip(t *testing.T) {
	w := NewWriter()
	values := []bool{true, false, true}
	if err := w.PackedBool(3, values); err != nil {
		t.Fatal(err)
	}
	r := NewReader(w.Bytes())
	if ok, err := r.NextField(); err != nil || !ok {
		t.Fatal(err)
	}
	got, err := r.ReadPackedBool()
	if err != nil {
		t.Fatal(err)
	}
	for i := range values {
		if got[i] != values[i] {
			t.Fatalf("got %v, want %v", got, values)
		}
	}
}

func TestPackedScalarGenericDispatch(t *testing.T) {
	w := NewWriter()
	values := []interface{}{int32(1), int32(-2), int32(3)}
	if err := w.PackedScalar(6, TypeSint32, values); err != nil {
		t.Fatal(err)
	}
	r := NewReader(w.Bytes())
	if ok, err := r.NextField(); err != nil || !ok {
		t.Fatal(err)
	}
	got, err := r.ReadPacked(TypeSint32)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %v", got)
	}
	for i, v := range []int32{1, -2, 3} {
		if got[i].(int32) != v {
			t.Fatalf("element %d: got %v, want %d", i, got[i], v)
		}
	}
}

func TestPackedScalarRejectsUnpackableType(t *testing.T) {
	w := NewWriter()
	err := w.PackedScalar(1, TypeString, []interface{}{"a"})
	if err == nil {
		t.Fatal("expected error for packing a string field")
	}
}
