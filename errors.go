package opensshkey

import "errors"

// Error kinds surfaced at the codec and envelope boundary. Callers match
// against these with errors.Is; propagation wraps them with fmt.Errorf's
// %w so the underlying offending field or byte offset stays attached.
var (
	// ErrShortRead means a read consumed more bytes than remained in the buffer.
	ErrShortRead = errors.New("opensshkey: short read")

	// ErrFormatMismatch means a value read or about to be written does not
	// satisfy the wire type its schema field declares.
	ErrFormatMismatch = errors.New("opensshkey: format mismatch")

	// ErrUnknownKeyType means the key_type string has no registry entry.
	ErrUnknownKeyType = errors.New("opensshkey: unknown key type")

	// ErrNoPrivateForKeyType means the registry entry for this key type has
	// no private variant (certificate types, for instance).
	ErrNoPrivateForKeyType = errors.New("opensshkey: no private variant for key type")

	// ErrUnsupportedConversion means ConvertFrom/ConvertTo found no adapter
	// for the given object or target type, or Generate was called on a
	// variant that has no generator.
	ErrUnsupportedConversion = errors.New("opensshkey: unsupported conversion")

	// ErrInvalidParameterValue means a hard invariant on a parameter value
	// (e.g. a fixed-length field's length) was violated.
	ErrInvalidParameterValue = errors.New("opensshkey: invalid parameter value")
)
