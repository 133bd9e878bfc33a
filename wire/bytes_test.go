package wire

import (
	"errors"
	"testing"
)

func TestStringScenario(t *testing.T) {
	// spec.md §8 scenario 2: String(field=2, value="testing") ->
	// "12 07 74 65 73 74 69 6E 67"
	w := NewWriter()
	if err := w.String(2, "testing"); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x12, 0x07, 0x74, 0x65, 0x73, 0x74, 0x69, 0x6E, 0x67}
	if !bytesEqual(w.Bytes(), want) {
		t.Fatalf("got % X, want % X", w.Bytes(), want)
	}
	r := NewReader(w.Bytes())
	if ok, err := r.NextField(); err != nil || !ok {
		t.Fatal(err)
	}
	got, err := r.ReadString()
	if err != nil || got != "testing" {
		t.Fatalf("ReadString: %q, %v", got, err)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	data := []byte{0x00, 0x01, 0xFF, 0x80, 0x7F}
	w := NewWriter()
	if err := w.WriteBytes(7, data); err != nil {
		t.Fatal(err)
	}
	r := NewReader(w.Bytes())
	if ok, err := r.NextField(); err != nil || !ok {
		t.Fatal(err)
	}
	got, err := r.ReadBytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytesEqual(got, data) {
		t.Fatalf("got % X, want % X", got, data)
	}
}

func TestEncoderBytesAppendsEveryByte(t *testing.T) {
	// Regression test for the apply-spread no-op bug documented in
	// spec.md §9: Encoder.RawBytes must append the full payload, not drop it.
	enc := NewEncoder()
	enc.RawBytes([]byte{1, 2, 3})
	enc.RawBytes([]byte{4, 5})
	if !bytesEqual(enc.Bytes(), []byte{1, 2, 3, 4, 5}) {
		t.Fatalf("got % X", enc.Bytes())
	}
}

func TestReadStringResyncsMalformedUTF8(t *testing.T) {
	old := GetConfig()
	defer SetConfig(old)
	SetConfig(Config{RejectMalformedUTF8: false})

	raw := append([]byte("ab"), 0x80) // stray continuation byte
	raw = append(raw, []byte("cd")...)
	w := NewWriter()
	if err := w.WriteBytes(1, raw); err != nil {
		t.Fatal(err)
	}
	r := NewReader(w.Bytes())
	if ok, err := r.NextField(); err != nil || !ok {
		t.Fatal(err)
	}
	got, err := r.ReadString()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "abcd" {
		t.Fatalf("got %q, want %q", got, "abcd")
	}
}

func TestReadStringRejectsMalformedUTF8WhenConfigured(t *testing.T) {
	old := GetConfig()
	defer SetConfig(old)
	SetConfig(Config{RejectMalformedUTF8: true})

	raw := append([]byte("ab"), 0x80)
	w := NewWriter()
	if err := w.WriteBytes(1, raw); err != nil {
		t.Fatal(err)
	}
	r := NewReader(w.Bytes())
	if ok, err := r.NextField(); err != nil || !ok {
		t.Fatal(err)
	}
	_, err := r.ReadString()
	if !errors.Is(err, ErrMalformedUTF8) {
		t.Fatalf("got %v, want ErrMalformedUTF8", err)
	}
}

func TestBytesLengthLimit(t *testing.T) {
	old := GetConfig()
	defer SetConfig(old)
	SetConfig(Config{MaxStringLength: 3})

	w := NewWriter()
	err := w.WriteBytes(1, []byte{1, 2, 3, 4})
	if !errors.Is(err, ErrLengthLimit) {
		t.Fatalf("got %v, want ErrLengthLimit", err)
	}
}
