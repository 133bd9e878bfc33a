package wire

import "fmt"

// FieldType is the logical protobuf declared type, numbered the same way
// as the public FieldDescriptorProto.Type enum (1..18). GROUP (10) is kept
// only so the codec can name it in error messages; it is never valid.
type FieldType int32

const (
	TypeDouble   FieldType = 1
	TypeFloat    FieldType = 2
	TypeInt64    FieldType = 3
	TypeUint64   FieldType = 4
	TypeInt32    FieldType = 5
	TypeFixed64  FieldType = 6
	TypeFixed32  FieldType = 7
	TypeBool     FieldType = 8
	TypeString   FieldType = 9
	TypeGroup    FieldType = 10 // invalid, always rejected
	TypeMessage  FieldType = 11
	TypeBytes    FieldType = 12
	TypeUint32   FieldType = 13
	TypeEnum     FieldType = 14
	TypeSfixed32 FieldType = 15
	TypeSfixed64 FieldType = 16
	TypeSint32   FieldType = 17
	TypeSint64   FieldType = 18
)

func (ft FieldType) String() string {
	switch ft {
	case TypeDouble:
		return "double"
	case TypeFloat:
		return "float"
	case TypeInt64:
		return "int64"
	case TypeUint64:
		return "uint64"
	case TypeInt32:
		return "int32"
	case TypeFixed64:
		return "fixed64"
	case TypeFixed32:
		return "fixed32"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeGroup:
		return "group"
	case TypeMessage:
		return "message"
	case TypeBytes:
		return "bytes"
	case TypeUint32:
		return "uint32"
	case TypeEnum:
		return "enum"
	case TypeSfixed32:
		return "sfixed32"
	case TypeSfixed64:
		return "sfixed64"
	case TypeSint32:
		return "sint32"
	case TypeSint64:
		return "sint64"
	default:
		return fmt.Sprintf("FieldType(%d)", int32(ft))
	}
}

// WireTypeForField returns the wire type a given FieldType is carried over.
func WireTypeForField(ft FieldType) (WireType, error) {
	switch ft {
	case TypeDouble, TypeFixed64, TypeSfixed64:
		return WireFixed64, nil
	case TypeFloat, TypeFixed32, TypeSfixed32:
		return WireFixed32, nil
	case TypeInt64, TypeUint64, TypeInt32, TypeUint32, TypeBool, TypeEnum, TypeSint32, TypeSint64:
		return WireVarint, nil
	case TypeString, TypeMessage, TypeBytes:
		return WireDelimited, nil
	case TypeGroup:
		return 0, fmt.Errorf("%w: GROUP is not a supported field type", ErrInvalidWireType)
	default:
		return 0, fmt.Errorf("unknown field type %s", ft)
	}
}

// IsValidMapKeyType reports whether ft may be used as a protobuf map key.
// Per the wire format, any scalar type except DOUBLE, FLOAT and BYTES
// qualifies; messages, groups and enums used as keys are never legal.
func IsValidMapKeyType(ft FieldType) bool {
	switch ft {
	case TypeDouble, TypeFloat, TypeBytes, TypeMessage, TypeGroup, TypeEnum:
		return false
	case TypeInt64, TypeUint64, TypeInt32, TypeUint32, TypeBool, TypeSint32, TypeSint64,
		TypeFixed32, TypeFixed64, TypeSfixed32, TypeSfixed64, TypeString:
		return true
	default:
		return false
	}
}

// IsValidMapValueType reports whether ft may be used as a protobuf map
// value. Any non-group type qualifies (maps of maps are not representable
// on the wire, so a nested map FieldType never reaches here).
func IsValidMapValueType(ft FieldType) bool {
	return ft != TypeGroup
}

// isPackable reports whether ft's repeated form may be packed into a
// single length-delimited blob of concatenated scalar payloads.
func isPackable(ft FieldType) bool {
	switch ft {
	case TypeString, TypeBytes, TypeMessage, TypeGroup:
		return false
	default:
		return true
	}
}
