package wire

// Encoder is a linear byte sink. Its primitives never validate range or
// field numbers — that domain-checking lives in Writer. Encoder owns no
// framing logic of its own; the streaming envelope is assembled by Writer
// directly against the buffer it holds.
type Encoder struct {
	buf []byte
}

// NewEncoder creates an empty encoder.
func NewEncoder() *Encoder {
	return &Encoder{buf: make([]byte, 0)}
}

// Bytes returns the bytes written so far. The returned slice aliases the
// encoder's internal buffer; callers that keep it past the next write
// should copy it.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// Reset clears the encoder's buffer for reuse.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// Bool emits a single byte: 0x00 or 0x01.
func (e *Encoder) Bool(b bool) {
	if b {
		e.buf = append(e.buf, 1)
	} else {
		e.buf = append(e.buf, 0)
	}
}

// RawBytes copies data verbatim into the stream with no length prefix.
func (e *Encoder) RawBytes(data []byte) {
	e.buf = append(e.buf, data...)
}

// String appends s's UTF-8 bytes verbatim, with no length prefix. Go
// strings are already a UTF-8 byte sequence, so — unlike a host language
// whose native string type is UTF-16 — there is no surrogate-pair
// recombination to perform here; the bytes of s are the encoding. Returns
// the number of bytes written.
func (e *Encoder) String(s string) int {
	e.buf = append(e.buf, s...)
	return len(s)
}
