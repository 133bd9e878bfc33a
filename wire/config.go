package wire

import "os"

// Config controls the handful of optional strictness knobs this codec
// exposes. Defaults preserve the behavior documented in the wire format
// spec's error-handling section.
type Config struct {
	// RejectMalformedUTF8: when true, String decode fails with
	// ErrMalformedUTF8 on any non-UTF-8 byte sequence. When false
	// (default), decode falls back to best-effort resync: stray
	// continuation bytes are skipped and decoding continues.
	RejectMalformedUTF8 bool

	// MaxStringLength caps the declared length of a string/bytes segment.
	// Zero means "use the codec default" (2^52, per the wire format spec).
	// Callers may tighten this to bound decode work on untrusted input.
	MaxStringLength uint64
}

const defaultMaxStringLength = uint64(1) << 52

var config = Config{}

// SetConfig installs c as the package-wide configuration. Unset (zero)
// fields fall back to their documented defaults.
func SetConfig(c Config) { config = c }

// GetConfig returns the currently installed configuration.
func GetConfig() Config { return config }

func (c Config) maxStringLength() uint64 {
	if c.MaxStringLength == 0 {
		return defaultMaxStringLength
	}
	return c.MaxStringLength
}

func init() {
	if v := os.Getenv("WIRE_REJECT_MALFORMED_UTF8"); v == "1" || v == "true" {
		config.RejectMalformedUTF8 = true
	}
}
