package wire

import "fmt"

// MapEntry decodes a map entry: a length-delimited submessage shaped like
// a tiny two-field message, field 1 holding the key and field 2 the
// value. The current wire type must be DELIMITED. keyType and valueType
// must satisfy the map-field-type constraints the wire format spec
// imposes (no DOUBLE/FLOAT/BYTES keys, no GROUP values).
func (r *Reader) MapEntry(keyType, valueType FieldType) (key, value interface{}, err error) {
	if !IsValidMapKeyType(keyType) {
		return nil, nil, fmt.Errorf("%w: %s is not a valid map key type", ErrInvalidMapFieldType, keyType)
	}
	if !IsValidMapValueType(valueType) {
		return nil, nil, fmt.Errorf("%w: %s is not a valid map value type", ErrInvalidMapFieldType, valueType)
	}
	if r.currentWireType != WireDelimited {
		return nil, nil, fmt.Errorf("%w: map entry must be wire type DELIMITED, got %d", ErrInvalidWireType, r.currentWireType)
	}

	entryBytes, err := r.ReadBytes()
	if err != nil {
		return nil, nil, err
	}
	entry := NewReader(entryBytes)

	for {
		more, err := entry.NextField()
		if err != nil {
			return nil, nil, err
		}
		if !more {
			break
		}
		switch entry.currentField {
		case 1:
			key, err = entry.readScalar(keyType)
			if err != nil {
				return nil, nil, wrapWithField(err, "key")
			}
		case 2:
			value, err = entry.readScalar(valueType)
			if err != nil {
				return nil, nil, wrapWithField(err, "value")
			}
		default:
			if err := entry.SkipField(); err != nil {
				return nil, nil, err
			}
		}
	}
	return key, value, nil
}

// readScalar reads the value of the field whose tag NextField most
// recently parsed, dispatching on ft. Messages decode to their raw bytes
// since map values have no schema to recurse into here — callers that
// need a typed nested message decode the returned bytes themselves, e.g.
// with DecodeMessage.
func (r *Reader) readScalar(ft FieldType) (interface{}, error) {
	wantWireType, err := WireTypeForField(ft)
	if err != nil {
		return nil, err
	}
	if r.currentWireType != wantWireType {
		return nil, fmt.Errorf("%w: %s expects wire type %d, got %d", ErrInvalidWireType, ft, wantWireType, r.currentWireType)
	}
	switch ft {
	case TypeInt32:
		return r.ReadVarint32()
	case TypeInt64:
		return r.ReadVarint()
	case TypeUint32:
		return r.ReadUnsignedVarint32()
	case TypeUint64:
		return r.ReadUnsignedVarint()
	case TypeSint32:
		return r.ReadZigzag32()
	case TypeSint64:
		return r.ReadZigzag64()
	case TypeBool:
		return r.ReadBool()
	case TypeEnum:
		return r.ReadEnum()
	case TypeFixed32:
		return r.ReadFixed32()
	case TypeFixed64:
		return r.ReadFixed64()
	case TypeSfixed32:
		return r.ReadSfixed32()
	case TypeSfixed64:
		return r.ReadSfixed64()
	case TypeFloat:
		return r.ReadFloat()
	case TypeDouble:
		return r.ReadDouble()
	case TypeString:
		return r.ReadString()
	case TypeBytes:
		return r.ReadBytes()
	case TypeMessage:
		return r.ReadBytes()
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidMapFieldType, ft)
	}
}

// MapEntry writes a single map entry as field's length-delimited
// submessage, with key at field number 1 and value at field number 2.
// keyType/valueType select the wire encoding for key/value; a caller
// writing several entries for one map field calls MapEntry once per
// entry, each with the same field number (mirroring how repeated message
// fields are written, one tag per element).
func (w *Writer) MapEntry(field FieldNumber, keyType, valueType FieldType, key, value interface{}) error {
	if !IsValidMapKeyType(keyType) {
		return fmt.Errorf("%w: %s is not a valid map key type", ErrInvalidMapFieldType, keyType)
	}
	if !IsValidMapValueType(valueType) {
		return fmt.Errorf("%w: %s is not a valid map value type", ErrInvalidMapFieldType, valueType)
	}

	bookmark, err := w.beginDelimited(field)
	if err != nil {
		return err
	}
	if err := w.writeScalarField(1, keyType, key); err != nil {
		w.endDelimited(bookmark)
		return wrapWithField(err, "key")
	}
	if err := w.writeScalarField(2, valueType, value); err != nil {
		w.endDelimited(bookmark)
		return wrapWithField(err, "value")
	}
	w.endDelimited(bookmark)
	return nil
}

// writeScalarField writes field's tag plus a ft-typed payload for value.
// It is the map/packed-repeated counterpart of the public per-type
// Writer methods, taking the FieldType as data instead of baking it into
// the method name.
func (w *Writer) writeScalarField(field FieldNumber, ft FieldType, value interface{}) error {
	switch ft {
	case TypeInt32:
		return w.Int32(field, value.(int32))
	case TypeInt64:
		return w.Int64(field, value.(int64))
	case TypeUint32:
		return w.Uint32(field, value.(uint32))
	case TypeUint64:
		return w.Uint64(field, value.(uint64))
	case TypeSint32:
		return w.Sint32(field, value.(int32))
	case TypeSint64:
		return w.Sint64(field, value.(int64))
	case TypeBool:
		return w.Bool(field, value.(bool))
	case TypeEnum:
		return w.Enum(field, value.(int32))
	case TypeFixed32:
		return w.Fixed32(field, value.(uint32))
	case TypeFixed64:
		return w.Fixed64(field, value.(uint64))
	case TypeSfixed32:
		return w.Sfixed32(field, value.(int32))
	case TypeSfixed64:
		return w.Sfixed64(field, value.(int64))
	case TypeFloat:
		return w.Float(field, value.(float32))
	case TypeDouble:
		return w.Double(field, value.(float64))
	case TypeString:
		return w.String(field, value.(string))
	case TypeBytes, TypeMessage:
		return w.WriteBytes(field, value.([]byte))
	default:
		return fmt.Errorf("%w: %s", ErrInvalidMapFieldType, ft)
	}
}
