package wire

// Streaming envelope: a 5-byte big-endian unsigned length prefix separating
// consecutive messages in a back-to-back response. This is not gRPC's
// 5-byte header (1 compressed-flag byte + 4-byte length) and not a
// protobuf length-delimited field — it is this package's own framing,
// layered on top of the plain message encoding.

const streamHeaderSize = 5

// maxStreamFrameLength is the largest payload length a 5-byte big-endian
// prefix can carry: 2^40 - 1.
const maxStreamFrameLength = uint64(1)<<40 - 1

// WriteHeader writes a 5-byte big-endian length prefix for the next
// message in a stream. A caller frames a multi-message stream by calling
// WriteHeader, then writing that message's fields, once per message, and
// finishes the stream with WriteHeader(0).
func (w *Writer) WriteHeader(length uint64) error {
	if length > maxStreamFrameLength {
		return ErrLengthLimit
	}
	var hdr [streamHeaderSize]byte
	hdr[0] = byte(length >> 32)
	hdr[1] = byte(length >> 24)
	hdr[2] = byte(length >> 16)
	hdr[3] = byte(length >> 8)
	hdr[4] = byte(length)
	w.enc.RawBytes(hdr[:])
	return nil
}

// WriteRaw appends data to the stream with no tag and no length prefix of
// its own. It exists for the streaming envelope: the bytes following a
// WriteHeader call are a complete, already-self-delimited message (its own
// fields carry their own tags), so nothing further needs to wrap them.
func (w *Writer) WriteRaw(data []byte) {
	w.enc.RawBytes(data)
}

// Header reads a 5-byte big-endian length prefix and narrows the reader's
// scope to exactly that many bytes, so a subsequent NextField loop
// terminates at the end of this message rather than running into the next
// frame's header. A zero length signals the end of the stream: more is
// false and the reader's scope is left untouched. Callers decode one
// message fully (until Done() reports true) between calls to Header.
func (r *Reader) Header() (length uint64, more bool, err error) {
	if r.inStream {
		r.cursor = r.end
		r.end = r.streamEnd
		r.inStream = false
	}

	if r.cursor+streamHeaderSize > r.end {
		return 0, false, ErrBounds
	}
	length = uint64(r.buf[r.cursor])<<32 |
		uint64(r.buf[r.cursor+1])<<24 |
		uint64(r.buf[r.cursor+2])<<16 |
		uint64(r.buf[r.cursor+3])<<8 |
		uint64(r.buf[r.cursor+4])
	r.cursor += streamHeaderSize

	if length == 0 {
		return 0, false, nil
	}
	if r.cursor+int(length) > r.end {
		return 0, false, ErrBounds
	}

	r.streamEnd = r.end
	r.end = r.cursor + int(length)
	r.inStream = true
	return length, true, nil
}
