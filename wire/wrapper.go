package wire

// Well-known wrapper types. Each is an ordinary message with a single
// scalar at field number 1 — google.protobuf.{Double,Float,Int64,UInt64,
// Int32,UInt32,Bool,String,Bytes}Value. They need no schema awareness
// beyond "field 1 holds the payload," so they're implemented here as thin
// convenience functions over Writer.Message/Reader.Message rather than
// through any registry or reflection layer.

const wrapperFieldNumber FieldNumber = 1

// WriteWrapperDouble writes field as a google.protobuf.DoubleValue.
func (w *Writer) WriteWrapperDouble(field FieldNumber, v float64) error {
	return w.Message(field, wrapperMarshalFunc(func(iw *Writer) error {
		return iw.Double(wrapperFieldNumber, v)
	}))
}

// ReadWrapperDouble reads a google.protobuf.DoubleValue.
func (r *Reader) ReadWrapperDouble() (float64, error) {
	var v float64
	err := r.Message(wrapperUnmarshalFunc(func(ir *Reader) error {
		return readWrapperScalar(ir, func() (err error) { v, err = ir.ReadDouble(); return }, TypeDouble)
	}))
	return v, err
}

// WriteWrapperFloat writes field as a google.protobuf.FloatValue.
func (w *Writer) WriteWrapperFloat(field FieldNumber, v float32) error {
	return w.Message(field, wrapperMarshalFunc(func(iw *Writer) error {
		return iw.Float(wrapperFieldNumber, v)
	}))
}

// ReadWrapperFloat reads a google.protobuf.FloatValue.
func (r *Reader) ReadWrapperFloat() (float32, error) {
	var v float32
	err := r.Message(wrapperUnmarshalFunc(func(ir *Reader) error {
		return readWrapperScalar(ir, func() (err error) { v, err = ir.ReadFloat(); return }, TypeFloat)
	}))
	return v, err
}

// WriteWrapperInt64 writes field as a google.protobuf.Int64Value.
func (w *Writer) WriteWrapperInt64(field FieldNumber, v int64) error {
	return w.Message(field, wrapperMarshalFunc(func(iw *Writer) error {
		return iw.Int64(wrapperFieldNumber, v)
	}))
}

// ReadWrapperInt64 reads a google.protobuf.Int64Value.
func (r *Reader) ReadWrapperInt64() (int64, error) {
	var v int64
	err := r.Message(wrapperUnmarshalFunc(func(ir *Reader) error {
		return readWrapperScalar(ir, func() (err error) { v, err = ir.ReadVarint(); return }, TypeInt64)
	}))
	return v, err
}

// WriteWrapperUint64 writes field as a google.protobuf.UInt64Value.
func (w *Writer) WriteWrapperUint64(field FieldNumber, v uint64) error {
	return w.Message(field, wrapperMarshalFunc(func(iw *Writer) error {
		return iw.Uint64(wrapperFieldNumber, v)
	}))
}

// ReadWrapperUint64 reads a google.protobuf.UInt64Value.
func (r *Reader) ReadWrapperUint64() (uint64, error) {
	var v uint64
	err := r.Message(wrapperUnmarshalFunc(func(ir *Reader) error {
		return readWrapperScalar(ir, func() (err error) { v, err = ir.ReadUnsignedVarint(); return }, TypeUint64)
	}))
	return v, err
}

// WriteWrapperInt32 writes field as a google.protobuf.Int32Value.
func (w *Writer) WriteWrapperInt32(field FieldNumber, v int32) error {
	return w.Message(field, wrapperMarshalFunc(func(iw *Writer) error {
		return iw.Int32(wrapperFieldNumber, v)
	}))
}

// ReadWrapperInt32 reads a google.protobuf.Int32Value.
func (r *Reader) ReadWrapperInt32() (int32, error) {
	var v int32
	err := r.Message(wrapperUnmarshalFunc(func(ir *Reader) error {
		return readWrapperScalar(ir, func() (err error) { v, err = ir.ReadVarint32(); return }, TypeInt32)
	}))
	return v, err
}

// WriteWrapperUint32 writes field as a google.protobuf.UInt32Value.
func (w *Writer) WriteWrapperUint32(field FieldNumber, v uint32) error {
	return w.Message(field, wrapperMarshalFunc(func(iw *Writer) error {
		return iw.Uint32(wrapperFieldNumber, v)
	}))
}

// ReadWrapperUint32 reads a google.protobuf.UInt32Value.
func (r *Reader) ReadWrapperUint32() (uint32, error) {
	var v uint32
	err := r.Message(wrapperUnmarshalFunc(func(ir *Reader) error {
		return readWrapperScalar(ir, func() (err error) { v, err = ir.ReadUnsignedVarint32(); return }, TypeUint32)
	}))
	return v, err
}

// WriteWrapperBool writes field as a google.protobuf.BoolValue.
func (w *Writer) WriteWrapperBool(field FieldNumber, v bool) error {
	return w.Message(field, wrapperMarshalFunc(func(iw *Writer) error {
		return iw.Bool(wrapperFieldNumber, v)
	}))
}

// ReadWrapperBool reads a google.protobuf.BoolValue.
func (r *Reader) ReadWrapperBool() (bool, error) {
	var v bool
	err := r.Message(wrapperUnmarshalFunc(func(ir *Reader) error {
		return readWrapperScalar(ir, func() (err error) { v, err = ir.ReadBool(); return }, TypeBool)
	}))
	return v, err
}

// WriteWrapperString writes field as a google.protobuf.StringValue.
func (w *Writer) WriteWrapperString(field FieldNumber, v string) error {
	return w.Message(field, wrapperMarshalFunc(func(iw *Writer) error {
		return iw.String(wrapperFieldNumber, v)
	}))
}

// ReadWrapperString reads a google.protobuf.StringValue.
func (r *Reader) ReadWrapperString() (string, error) {
	var v string
	err := r.Message(wrapperUnmarshalFunc(func(ir *Reader) error {
		return readWrapperScalar(ir, func() (err error) { v, err = ir.ReadString(); return }, TypeString)
	}))
	return v, err
}

// WriteWrapperBytes writes field as a google.protobuf.BytesValue.
func (w *Writer) WriteWrapperBytes(field FieldNumber, v []byte) error {
	return w.Message(field, wrapperMarshalFunc(func(iw *Writer) error {
		return iw.WriteBytes(wrapperFieldNumber, v)
	}))
}

// ReadWrapperBytes reads a google.protobuf.BytesValue.
func (r *Reader) ReadWrapperBytes() ([]byte, error) {
	var v []byte
	err := r.Message(wrapperUnmarshalFunc(func(ir *Reader) error {
		return readWrapperScalar(ir, func() (err error) { v, err = ir.ReadBytes(); return }, TypeBytes)
	}))
	return v, err
}

// wrapperMarshalFunc adapts a plain func(*Writer) error to the Marshaler
// interface Writer.Message expects.
type wrapperMarshalFunc func(w *Writer) error

func (f wrapperMarshalFunc) MarshalTo(w *Writer) error { return f(w) }

// wrapperUnmarshalFunc adapts a plain func(*Reader) error to the
// Unmarshaler interface Reader.Message expects.
type wrapperUnmarshalFunc func(r *Reader) error

func (f wrapperUnmarshalFunc) UnmarshalFrom(r *Reader) error { return f(r) }

// readWrapperScalar loops the wrapper submessage's one field (field 1) and
// reads it with readOne. A wrapper message with zero fields decodes to the
// type's zero value, matching how an unset wrapper field behaves.
func readWrapperScalar(r *Reader, readOne func() error, want FieldType) error {
	for {
		more, err := r.NextField()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		if r.FieldNumber() != wrapperFieldNumber {
			if err := r.SkipField(); err != nil {
				return err
			}
			continue
		}
		wantWireType, err := WireTypeForField(want)
		if err != nil {
			return err
		}
		if r.WireType() != wantWireType {
			return ErrInvalidWireType
		}
		if err := readOne(); err != nil {
			return wrapWithField(err, "value")
		}
	}
}
