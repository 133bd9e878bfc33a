package wire

import (
	"strings"
	"unicode/utf8"
)

// ===== READER: length-delimited decoding =====

// readLength decodes the varint length prefix shared by strings, bytes
// and embedded messages, and validates it against the configured ceiling
// (2^52 by default, per the wire format spec).
func (r *Reader) readLength() (uint64, error) {
	length, err := r.decodeVarintRaw()
	if err != nil {
		return 0, err
	}
	if length > config.maxStringLength() {
		return 0, ErrLengthLimit
	}
	return length, nil
}

// ReadBytes decodes a length-delimited byte sequence and returns a copy
// of it, leaving the reader's backing buffer untouched.
func (r *Reader) ReadBytes() ([]byte, error) {
	raw, err := r.readRawBytes()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// readRawBytes decodes a length-delimited byte sequence and returns a
// slice aliasing the reader's backing buffer. Internal to the package;
// callers that need to retain the result must copy it.
func (r *Reader) readRawBytes() ([]byte, error) {
	length, err := r.readLength()
	if err != nil {
		return nil, err
	}
	if r.cursor+int(length) > r.end {
		return nil, ErrBounds
	}
	data := r.buf[r.cursor : r.cursor+int(length)]
	r.cursor += int(length)
	return data, nil
}

// ReadString decodes a length-delimited UTF-8 string. By default,
// malformed input is tolerated with a best-effort resync: any byte that
// would need to lead a multi-byte sequence but instead looks like a stray
// continuation byte is dropped, and decoding continues from the next byte.
// Setting Config.RejectMalformedUTF8 makes malformed input a hard error
// instead.
func (r *Reader) ReadString() (string, error) {
	raw, err := r.readRawBytes()
	if err != nil {
		return "", err
	}
	if config.RejectMalformedUTF8 {
		if !utf8.Valid(raw) {
			return "", ErrMalformedUTF8
		}
		return string(raw), nil
	}
	return resyncUTF8(raw), nil
}

// resyncUTF8 decodes raw as UTF-8, dropping any byte that utf8.DecodeRune
// cannot make sense of on its own — in practice, a continuation byte
// encountered where a leader byte was expected. This is the "skip and
// keep going" tolerance the wire format spec calls for instead of failing
// the whole decode over one bad byte.
func resyncUTF8(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		b.WriteRune(r)
		i += size
	}
	return b.String()
}

// skipBytes advances the cursor past a length-delimited payload without
// decoding it.
func (r *Reader) skipBytes() error {
	length, err := r.readLength()
	if err != nil {
		return err
	}
	if r.cursor+int(length) > r.end {
		return ErrBounds
	}
	r.cursor += int(length)
	return nil
}

// BytesSize returns the number of bytes a length-delimited encoding of
// data would occupy, including its length prefix.
func BytesSize(data []byte) int {
	return VarintSize(uint64(len(data))) + len(data)
}

// StringSize returns the number of bytes a length-delimited encoding of s
// would occupy, including its length prefix.
func StringSize(s string) int {
	return VarintSize(uint64(len(s))) + len(s)
}
