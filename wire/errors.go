package wire

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. These are sentinel values so callers can classify a failure
// with errors.Is regardless of which operation produced it.
var (
	// ErrBounds: the cursor would advance past end during a read.
	ErrBounds = errors.New("wire: read past end of buffer")
	// ErrVarintOverflow: a varint extends beyond its declared width.
	ErrVarintOverflow = errors.New("wire: varint overflow")
	// ErrInvalidWireType: a tag carries wire type 3, 4, 6 or 7, or a typed
	// read was requested against a non-matching current wire type.
	ErrInvalidWireType = errors.New("wire: invalid wire type")
	// ErrInvalidFieldNumber: a writer was asked to emit field < 1.
	ErrInvalidFieldNumber = errors.New("wire: invalid field number")
	// ErrRangeViolation: a value is outside the declared domain of its
	// target field type.
	ErrRangeViolation = errors.New("wire: value out of range for field type")
	// ErrLengthLimit: a string/bytes/message length exceeds the configured
	// ceiling (2^52 unless Config.MaxStringLength sets another), or a
	// stream frame length exceeds what the 5-byte envelope can carry.
	ErrLengthLimit = errors.New("wire: length exceeds limit")
	// ErrInvalidMapFieldType: a map key or value type is unsupported.
	ErrInvalidMapFieldType = errors.New("wire: unsupported map field type")
	// ErrMalformedUTF8: strict decoding rejected a non-UTF-8 string.
	ErrMalformedUTF8 = errors.New("wire: malformed UTF-8")
)

// FieldError decorates an underlying error with the dotted path of field
// names that led to it, so a caller debugging a deeply nested message can
// see exactly which field failed.
type FieldError struct {
	FieldPath []string
	Err       error
}

func (e *FieldError) Error() string {
	if len(e.FieldPath) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("wire: field %s: %v", strings.Join(e.FieldPath, "."), e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Is lets errors.Is match any *FieldError regardless of path, mirroring
// the behavior callers expect from errors.As.
func (e *FieldError) Is(target error) bool {
	_, ok := target.(*FieldError)
	return ok
}

// wrapWithField prepends fieldName to err's field path, or starts a new
// path if err isn't already a *FieldError.
func wrapWithField(err error, fieldName string) error {
	if err == nil {
		return nil
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		path := make([]string, 0, len(fe.FieldPath)+1)
		path = append(path, fieldName)
		path = append(path, fe.FieldPath...)
		return &FieldError{FieldPath: path, Err: fe.Err}
	}
	return &FieldError{FieldPath: []string{fieldName}, Err: err}
}
