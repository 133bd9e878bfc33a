package wire

// Marshaler is the only polymorphic surface this codec defines: a
// generated (or hand-written) message type that knows how to serialize
// itself field by field against a Writer. Writer.Message and the
// top-level EncodeMessage helper both drive this interface.
type Marshaler interface {
	MarshalTo(w *Writer) error
}

// Unmarshaler is Marshaler's decode-side counterpart: a message type that
// knows how to read its own fields from a Reader, typically by looping
// NextField until the reader's current scope is exhausted. Reader.Message
// and the top-level DecodeMessage helper both drive this interface.
type Unmarshaler interface {
	UnmarshalFrom(r *Reader) error
}

// EncodeMessage is the top-level encode entry point for a Marshaler: it
// allocates a fresh Encoder/Writer pair, asks m to serialize itself, and
// returns the resulting bytes.
func EncodeMessage(m Marshaler) ([]byte, error) {
	w := NewWriter()
	if err := m.MarshalTo(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// DecodeMessage is the top-level decode entry point for an Unmarshaler:
// it wraps data in a Reader and asks m to populate itself by looping
// NextField until the buffer is exhausted.
func DecodeMessage(data []byte, m Unmarshaler) error {
	r := NewReader(data)
	return m.UnmarshalFrom(r)
}
