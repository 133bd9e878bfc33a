package wire

import (
	"fmt"
	"math"
)

// ===== WRITER: packed repeated fields =====
//
// Packed encodes a repeated scalar field as one DELIMITED blob of
// concatenated element payloads with no per-element tag, rather than
// repeating (tag, payload) once per element. Fixed-width element types
// know their total length up front (count * width) and can emit the tag
// and length directly; varint-backed element types need the
// begin/endDelimited bookmark because their total length isn't known
// until every element is written.

// PackedInt32 writes values as a packed repeated int32 field.
func (w *Writer) PackedInt32(field FieldNumber, values []int32) error {
	bookmark, err := w.beginDelimited(field)
	if err != nil {
		return err
	}
	for _, v := range values {
		w.enc.Varint32(v)
	}
	w.endDelimited(bookmark)
	return nil
}

// PackedInt64 writes values as a packed repeated int64 field.
func (w *Writer) PackedInt64(field FieldNumber, values []int64) error {
	bookmark, err := w.beginDelimited(field)
	if err != nil {
		return err
	}
	for _, v := range values {
		w.enc.Varint(v)
	}
	w.endDelimited(bookmark)
	return nil
}

// PackedUint32 writes values as a packed repeated uint32 field.
func (w *Writer) PackedUint32(field FieldNumber, values []uint32) error {
	bookmark, err := w.beginDelimited(field)
	if err != nil {
		return err
	}
	for _, v := range values {
		w.enc.UnsignedVarint32(v)
	}
	w.endDelimited(bookmark)
	return nil
}

// PackedUint64 writes values as a packed repeated uint64 field.
func (w *Writer) PackedUint64(field FieldNumber, values []uint64) error {
	for _, v := range values {
		if v >= maxUint64AsWritten {
			return ErrRangeViolation
		}
	}
	bookmark, err := w.beginDelimited(field)
	if err != nil {
		return err
	}
	for _, v := range values {
		w.enc.UnsignedVarint(v)
	}
	w.endDelimited(bookmark)
	return nil
}

// PackedSint32 writes values as a packed repeated sint32 field.
func (w *Writer) PackedSint32(field FieldNumber, values []int32) error {
	bookmark, err := w.beginDelimited(field)
	if err != nil {
		return err
	}
	for _, v := range values {
		w.enc.Zigzag32(v)
	}
	w.endDelimited(bookmark)
	return nil
}

// PackedSint64 writes values as a packed repeated sint64 field.
func (w *Writer) PackedSint64(field FieldNumber, values []int64) error {
	bookmark, err := w.beginDelimited(field)
	if err != nil {
		return err
	}
	for _, v := range values {
		w.enc.Zigzag64(v)
	}
	w.endDelimited(bookmark)
	return nil
}

// PackedBool writes values as a packed repeated bool field.
func (w *Writer) PackedBool(field FieldNumber, values []bool) error {
	bookmark, err := w.beginDelimited(field)
	if err != nil {
		return err
	}
	for _, v := range values {
		w.enc.Bool(v)
	}
	w.endDelimited(bookmark)
	return nil
}

// PackedEnum writes values as a packed repeated enum field.
func (w *Writer) PackedEnum(field FieldNumber, values []int32) error {
	bookmark, err := w.beginDelimited(field)
	if err != nil {
		return err
	}
	for _, v := range values {
		w.enc.Varint32(v)
	}
	w.endDelimited(bookmark)
	return nil
}

// PackedFixed32 writes values as a packed repeated fixed32 field. The
// total payload length (4 bytes per element) is known up front, so the
// tag and length are emitted directly with no bookmark splice.
func (w *Writer) PackedFixed32(field FieldNumber, values []uint32) error {
	if err := w.writeTag(field, WireDelimited); err != nil {
		return err
	}
	w.enc.UnsignedVarint(uint64(len(values) * 4))
	for _, v := range values {
		w.enc.Fixed32(v)
	}
	return nil
}

// PackedFixed64 writes values as a packed repeated fixed64 field.
func (w *Writer) PackedFixed64(field FieldNumber, values []uint64) error {
	if err := w.writeTag(field, WireDelimited); err != nil {
		return err
	}
	w.enc.UnsignedVarint(uint64(len(values) * 8))
	for _, v := range values {
		w.enc.Fixed64(v)
	}
	return nil
}

// PackedSfixed32 writes values as a packed repeated sfixed32 field.
func (w *Writer) PackedSfixed32(field FieldNumber, values []int32) error {
	if err := w.writeTag(field, WireDelimited); err != nil {
		return err
	}
	w.enc.UnsignedVarint(uint64(len(values) * 4))
	for _, v := range values {
		w.enc.Sfixed32(v)
	}
	return nil
}

// PackedSfixed64 writes values as a packed repeated sfixed64 field.
func (w *Writer) PackedSfixed64(field FieldNumber, values []int64) error {
	if err := w.writeTag(field, WireDelimited); err != nil {
		return err
	}
	w.enc.UnsignedVarint(uint64(len(values) * 8))
	for _, v := range values {
		w.enc.Sfixed64(v)
	}
	return nil
}

// PackedFloat writes values as a packed repeated float field.
func (w *Writer) PackedFloat(field FieldNumber, values []float32) error {
	for _, v := range values {
		if !(math.Abs(float64(v)) < math.MaxFloat32) {
			return ErrRangeViolation
		}
	}
	if err := w.writeTag(field, WireDelimited); err != nil {
		return err
	}
	w.enc.UnsignedVarint(uint64(len(values) * 4))
	for _, v := range values {
		w.enc.Float(v)
	}
	return nil
}

// PackedDouble writes values as a packed repeated double field.
func (w *Writer) PackedDouble(field FieldNumber, values []float64) error {
	for _, v := range values {
		if !(math.Abs(v) < math.MaxFloat64) {
			return ErrRangeViolation
		}
	}
	if err := w.writeTag(field, WireDelimited); err != nil {
		return err
	}
	w.enc.UnsignedVarint(uint64(len(values) * 8))
	for _, v := range values {
		w.enc.Double(v)
	}
	return nil
}

// ===== READER: packed repeated fields =====

// beginPacked validates the current wire type and returns the byte offset
// at which the packed blob ends.
func (r *Reader) beginPacked() (int, error) {
	if r.currentWireType != WireDelimited {
		return 0, fmt.Errorf("%w: packed field must be wire type DELIMITED, got %d", ErrInvalidWireType, r.currentWireType)
	}
	length, err := r.readLength()
	if err != nil {
		return 0, err
	}
	packedEnd := r.cursor + int(length)
	if packedEnd > r.end {
		return 0, ErrBounds
	}
	return packedEnd, nil
}

// ReadPackedInt32 decodes a packed repeated int32 field.
func (r *Reader) ReadPackedInt32() ([]int32, error) {
	packedEnd, err := r.beginPacked()
	if err != nil {
		return nil, err
	}
	savedEnd := r.end
	r.end = packedEnd
	defer func() { r.end = savedEnd }()

	var out []int32
	for r.cursor < r.end {
		v, err := r.ReadVarint32()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadPackedInt64 decodes a packed repeated int64 field.
func (r *Reader) ReadPackedInt64() ([]int64, error) {
	packedEnd, err := r.beginPacked()
	if err != nil {
		return nil, err
	}
	savedEnd := r.end
	r.end = packedEnd
	defer func() { r.end = savedEnd }()

	var out []int64
	for r.cursor < r.end {
		v, err := r.ReadVarint()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadPackedUint32 decodes a packed repeated uint32 field.
func (r *Reader) ReadPackedUint32() ([]uint32, error) {
	packedEnd, err := r.beginPacked()
	if err != nil {
		return nil, err
	}
	savedEnd := r.end
	r.end = packedEnd
	defer func() { r.end = savedEnd }()

	var out []uint32
	for r.cursor < r.end {
		v, err := r.ReadUnsignedVarint32()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadPackedUint64 decodes a packed repeated uint64 field.
func (r *Reader) ReadPackedUint64() ([]uint64, error) {
	packedEnd, err := r.beginPacked()
	if err != nil {
		return nil, err
	}
	savedEnd := r.end
	r.end = packedEnd
	defer func() { r.end = savedEnd }()

	var out []uint64
	for r.cursor < r.end {
		v, err := r.ReadUnsignedVarint()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadPackedSint32 decodes a packed repeated sint32 field.
func (r *Reader) ReadPackedSint32() ([]int32, error) {
	packedEnd, err := r.beginPacked()
	if err != nil {
		return nil, err
	}
	savedEnd := r.end
	r.end = packedEnd
	defer func() { r.end = savedEnd }()

	var out []int32
	for r.cursor < r.end {
		v, err := r.ReadZigzag32()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadPackedSint64 decodes a packed repeated sint64 field.
func (r *Reader) ReadPackedSint64() ([]int64, error) {
	packedEnd, err := r.beginPacked()
	if err != nil {
		return nil, err
	}
	savedEnd := r.end
	r.end = packedEnd
	defer func() { r.end = savedEnd }()

	var out []int64
	for r.cursor < r.end {
		v, err := r.ReadZigzag64()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadPackedBool decodes a packed repeated bool field.
func (r *Reader) ReadPackedBool() ([]bool, error) {
	packedEnd, err := r.beginPacked()
	if err != nil {
		return nil, err
	}
	savedEnd := r.end
	r.end = packedEnd
	defer func() { r.end = savedEnd }()

	var out []bool
	for r.cursor < r.end {
		v, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadPackedFixed32 decodes a packed repeated fixed32 field.
func (r *Reader) ReadPackedFixed32() ([]uint32, error) {
	packedEnd, err := r.beginPacked()
	if err != nil {
		return nil, err
	}
	savedEnd := r.end
	r.end = packedEnd
	defer func() { r.end = savedEnd }()

	var out []uint32
	for r.cursor < r.end {
		v, err := r.ReadFixed32()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadPackedFixed64 decodes a packed repeated fixed64 field.
func (r *Reader) ReadPackedFixed64() ([]uint64, error) {
	packedEnd, err := r.beginPacked()
	if err != nil {
		return nil, err
	}
	savedEnd := r.end
	r.end = packedEnd
	defer func() { r.end = savedEnd }()

	var out []uint64
	for r.cursor < r.end {
		v, err := r.ReadFixed64()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadPackedSfixed32 decodes a packed repeated sfixed32 field.
func (r *Reader) ReadPackedSfixed32() ([]int32, error) {
	packedEnd, err := r.beginPacked()
	if err != nil {
		return nil, err
	}
	savedEnd := r.end
	r.end = packedEnd
	defer func() { r.end = savedEnd }()

	var out []int32
	for r.cursor < r.end {
		v, err := r.ReadSfixed32()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadPackedSfixed64 decodes a packed repeated sfixed64 field.
func (r *Reader) ReadPackedSfixed64() ([]int64, error) {
	packedEnd, err := r.beginPacked()
	if err != nil {
		return nil, err
	}
	savedEnd := r.end
	r.end = packedEnd
	defer func() { r.end = savedEnd }()

	var out []int64
	for r.cursor < r.end {
		v, err := r.ReadSfixed64()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadPackedFloat decodes a packed repeated float field.
func (r *Reader) ReadPackedFloat() ([]float32, error) {
	packedEnd, err := r.beginPacked()
	if err != nil {
		return nil, err
	}
	savedEnd := r.end
	r.end = packedEnd
	defer func() { r.end = savedEnd }()

	var out []float32
	for r.cursor < r.end {
		v, err := r.ReadFloat()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadPackedDouble decodes a packed repeated double field.
func (r *Reader) ReadPackedDouble() ([]float64, error) {
	packedEnd, err := r.beginPacked()
	if err != nil {
		return nil, err
	}
	savedEnd := r.end
	r.end = packedEnd
	defer func() { r.end = savedEnd }()

	var out []float64
	for r.cursor < r.end {
		v, err := r.ReadDouble()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ===== generic FieldType-driven packed access =====
//
// The typed PackedXxx methods above cover the case where a message's
// field types are known at compile time. PackedScalar/ReadPacked cover the
// dynamic case — a caller (such as a generic map-of-repeated-scalars
// encoding, or a tool walking a descriptor at runtime) that only has a
// FieldType value in hand, mirroring how MapEntry dispatches on FieldType
// rather than on a Go type parameter.

// PackedScalar writes values as a packed repeated field of the scalar
// type ft. ft must be packable: string, bytes, and message fields have no
// packed form and must use repeated (tag, payload) pairs instead.
func (w *Writer) PackedScalar(field FieldNumber, ft FieldType, values []interface{}) error {
	if !isPackable(ft) {
		return fmt.Errorf("%w: %s cannot be packed", ErrInvalidMapFieldType, ft)
	}
	bookmark, err := w.beginDelimited(field)
	if err != nil {
		return err
	}
	for _, v := range values {
		if err := writeScalarPayload(w.enc, ft, v); err != nil {
			w.endDelimited(bookmark)
			return err
		}
	}
	w.endDelimited(bookmark)
	return nil
}

// writeScalarPayload writes value's payload only, with no tag — the shape
// every element of a packed blob takes (unlike a map entry's key/value,
// which are each preceded by their own tag).
func writeScalarPayload(enc *Encoder, ft FieldType, value interface{}) error {
	switch ft {
	case TypeInt32:
		enc.Varint32(value.(int32))
	case TypeInt64:
		enc.Varint(value.(int64))
	case TypeUint32:
		enc.UnsignedVarint32(value.(uint32))
	case TypeUint64:
		v := value.(uint64)
		if v >= maxUint64AsWritten {
			return ErrRangeViolation
		}
		enc.UnsignedVarint(v)
	case TypeSint32:
		enc.Zigzag32(value.(int32))
	case TypeSint64:
		enc.Zigzag64(value.(int64))
	case TypeBool:
		enc.Bool(value.(bool))
	case TypeEnum:
		enc.Varint32(value.(int32))
	case TypeFixed32:
		enc.Fixed32(value.(uint32))
	case TypeFixed64:
		enc.Fixed64(value.(uint64))
	case TypeSfixed32:
		enc.Sfixed32(value.(int32))
	case TypeSfixed64:
		enc.Sfixed64(value.(int64))
	case TypeFloat:
		v := value.(float32)
		if !(math.Abs(float64(v)) < math.MaxFloat32) {
			return ErrRangeViolation
		}
		enc.Float(v)
	case TypeDouble:
		v := value.(float64)
		if !(math.Abs(v) < math.MaxFloat64) {
			return ErrRangeViolation
		}
		enc.Double(v)
	default:
		return fmt.Errorf("%w: %s cannot be packed", ErrInvalidMapFieldType, ft)
	}
	return nil
}

// ReadPacked decodes a packed repeated field of the scalar type ft.
func (r *Reader) ReadPacked(ft FieldType) ([]interface{}, error) {
	if !isPackable(ft) {
		return nil, fmt.Errorf("%w: %s cannot be packed", ErrInvalidMapFieldType, ft)
	}
	packedEnd, err := r.beginPacked()
	if err != nil {
		return nil, err
	}
	savedEnd := r.end
	r.end = packedEnd
	defer func() { r.end = savedEnd }()

	wantWireType, err := WireTypeForField(ft)
	if err != nil {
		return nil, err
	}
	r.currentWireType = wantWireType

	var out []interface{}
	for r.cursor < r.end {
		v, err := r.readScalar(ft)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
