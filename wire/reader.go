package wire

import "fmt"

// Reader is a cursored, non-owning view over an immutable input buffer.
// It tracks the field number and wire type most recently parsed by
// NextField so typed read operations know what they're pulling off the
// wire, plus the bounds of the current length-delimited scope (end) and
// the cumulative extent of a multi-message stream (streamEnd).
//
// A Reader is single-threaded and non-reentrant: sharing one instance
// across goroutines is undefined, exactly like Writer and Encoder.
type Reader struct {
	buf    []byte
	cursor int
	end    int

	currentField    FieldNumber
	currentWireType WireType

	inStream  bool // true while end is narrowed to the current streamed message
	streamEnd int  // outer end saved by Header, restored when the next frame starts
}

// NewReader creates a reader over data. The reader does not copy data and
// does not outlive it — the caller must keep the buffer alive for as long
// as the reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{buf: data, cursor: 0, end: len(data)}
}

// Cursor returns the reader's current byte offset into its input buffer.
func (r *Reader) Cursor() int { return r.cursor }

// End returns the byte offset the reader currently treats as the end of
// the active scope (the whole buffer, or a narrower length-delimited or
// streamed-message window).
func (r *Reader) End() int { return r.end }

// Len returns the total length of the reader's backing buffer.
func (r *Reader) Len() int { return len(r.buf) }

// FieldNumber returns the field number most recently parsed by NextField.
func (r *Reader) FieldNumber() FieldNumber { return r.currentField }

// WireType returns the wire type most recently parsed by NextField.
func (r *Reader) WireType() WireType { return r.currentWireType }

// Done reports whether the cursor has reached the end of the active
// scope — no more fields remain to read.
func (r *Reader) Done() bool { return r.cursor >= r.end }

// NextField advances past the next field's tag, validates its wire type,
// and records both the field number and wire type for subsequent typed
// reads. It returns false, nil at the end of the current scope (the whole
// buffer, or a narrower message/stream window). Tags carrying
// START_GROUP, END_GROUP, or any other unrecognized wire type make
// NextField fail rather than silently continue.
func (r *Reader) NextField() (bool, error) {
	if r.cursor >= r.end {
		return false, nil
	}
	raw, err := r.decodeVarintRaw()
	if err != nil {
		return false, err
	}
	fieldNumber, wireType := ParseTag(Tag(raw))
	if fieldNumber < 1 {
		return false, ErrInvalidFieldNumber
	}
	if !IsValidWireType(wireType) {
		return false, fmt.Errorf("%w: wire type %d on field %d", ErrInvalidWireType, wireType, fieldNumber)
	}
	r.currentField = fieldNumber
	r.currentWireType = wireType
	return true, nil
}

// SkipField advances the cursor past the payload of the field whose tag
// NextField most recently parsed, without decoding it. This is the path
// for fields a caller's message type doesn't recognize; this codec never
// preserves unknown fields for re-serialization.
func (r *Reader) SkipField() error {
	switch r.currentWireType {
	case WireVarint:
		return r.skipVarint()
	case WireFixed64:
		if r.cursor+8 > r.end {
			return ErrBounds
		}
		r.cursor += 8
		return nil
	case WireFixed32:
		if r.cursor+4 > r.end {
			return ErrBounds
		}
		r.cursor += 4
		return nil
	case WireDelimited:
		return r.skipBytes()
	default:
		return fmt.Errorf("%w: cannot skip wire type %d", ErrInvalidWireType, r.currentWireType)
	}
}

// ReadUnknown captures the raw bytes of the field whose tag NextField most
// recently parsed, for callers that want to report on unrecognized fields
// without simply discarding them. It advances the cursor exactly as
// SkipField does.
func (r *Reader) ReadUnknown() (*RawValue, error) {
	start := r.cursor
	if err := r.SkipField(); err != nil {
		return nil, err
	}
	data := make([]byte, r.cursor-start)
	copy(data, r.buf[start:r.cursor])
	return &RawValue{FieldNumber: r.currentField, WireType: r.currentWireType, Data: data}, nil
}

// Message descends into a length-delimited payload and hands the reader
// to u for field-by-field decoding, then restores the reader's scope
// exactly as it was before — even if u stopped short of the declared
// length. The current wire type must be DELIMITED.
func (r *Reader) Message(u Unmarshaler) error {
	if r.currentWireType != WireDelimited {
		return fmt.Errorf("%w: message field must be wire type DELIMITED, got %d", ErrInvalidWireType, r.currentWireType)
	}
	field := r.currentField
	length, err := r.readLength()
	if err != nil {
		return err
	}
	start := r.cursor
	if start+int(length) > r.end {
		return ErrBounds
	}
	payloadEnd := start + int(length)

	savedEnd := r.end
	r.end = payloadEnd
	err = u.UnmarshalFrom(r)
	r.cursor = payloadEnd
	r.end = savedEnd
	return wrapWithField(err, fieldLabel(field))
}

// MessageBytes descends into a length-delimited payload exactly like
// Message, but returns the raw encoded bytes instead of driving an
// Unmarshaler — useful for callers that want to defer decoding or simply
// forward the bytes unexamined.
func (r *Reader) MessageBytes() ([]byte, error) {
	if r.currentWireType != WireDelimited {
		return nil, fmt.Errorf("%w: message field must be wire type DELIMITED, got %d", ErrInvalidWireType, r.currentWireType)
	}
	return r.ReadBytes()
}
