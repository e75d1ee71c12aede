package opensshkey

import "fmt"

// Tag names a wire primitive type a schema field decodes to.
type Tag int

const (
	// TagString is a length-prefixed UTF-8 string.
	TagString Tag = iota
	// TagBytes is a length-prefixed opaque byte sequence.
	TagBytes
	// TagMPInt is a length-prefixed signed arbitrary-precision integer.
	TagMPInt
	// TagFixedBytes is an unprefixed, fixed-length byte sequence.
	TagFixedBytes
	// TagU8 is a single unprefixed byte.
	TagU8
	// TagU32 is a big-endian fixed-width uint32.
	TagU32
	// TagU64 is a big-endian fixed-width uint64.
	TagU64
)

// Field is one named, typed entry in a Schema.
type Field struct {
	Name string
	Tag  Tag
	// Len is the byte length of a TagFixedBytes field. Ignored otherwise.
	Len int
}

// Schema is an ordered list of named, typed fields. Order is part of the
// schema: it is both the wire order and the read order. Two schemas with
// the same fields in different orders are distinct schemas.
type Schema []Field

// Read consumes one value per field, in declaration order, and returns
// them keyed by field name.
func (s Schema) Read(r *Reader) (map[string]Value, error) {
	out := make(map[string]Value, len(s))
	for _, f := range s {
		v, err := readField(r, f)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		out[f.Name] = v
	}
	return out, nil
}

func readField(r *Reader, f Field) (Value, error) {
	switch f.Tag {
	case TagString:
		s, err := r.ReadString()
		if err != nil {
			return Value{}, err
		}
		return Text(s), nil
	case TagBytes:
		b, err := r.ReadBytes()
		if err != nil {
			return Value{}, err
		}
		return BytesValue(b), nil
	case TagFixedBytes:
		b, err := r.ReadFixed(f.Len)
		if err != nil {
			return Value{}, err
		}
		cp := make([]byte, len(b))
		copy(cp, b)
		return BytesValue(cp), nil
	case TagU8:
		v, err := r.ReadU8()
		if err != nil {
			return Value{}, err
		}
		return U8(v), nil
	case TagU32:
		v, err := r.ReadUint32()
		if err != nil {
			return Value{}, err
		}
		return U32(v), nil
	case TagU64:
		v, err := r.ReadUint64()
		if err != nil {
			return Value{}, err
		}
		return U64(v), nil
	case TagMPInt:
		n, err := r.ReadMPInt()
		if err != nil {
			return Value{}, err
		}
		return MPInt(n), nil
	default:
		return Value{}, fmt.Errorf("%w: unknown tag %d", ErrFormatMismatch, f.Tag)
	}
}

// Write encodes one value per field, in declaration order, taking values
// from the given mapping. Every declared field must be present with a
// value matching its tag, or Write fails with ErrFormatMismatch (wrong
// runtime type, or a negative integer in a field this domain always
// stores as non-negative) or ErrInvalidParameterValue (missing field, or
// a fixed-length field of the wrong length).
func (s Schema) Write(w *Writer, values map[string]Value) error {
	for _, f := range s {
		v, ok := values[f.Name]
		if !ok {
			return fmt.Errorf("%w: missing field %q", ErrInvalidParameterValue, f.Name)
		}
		if err := writeField(w, f, v); err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
	}
	return nil
}

func writeField(w *Writer, f Field, v Value) error {
	switch f.Tag {
	case TagString:
		if v.Kind != KindText {
			return fmt.Errorf("%w: expected text", ErrFormatMismatch)
		}
		w.WriteString(v.Text)
	case TagBytes:
		if v.Kind != KindBytes {
			return fmt.Errorf("%w: expected bytes", ErrFormatMismatch)
		}
		w.WriteBytes(v.Bytes)
	case TagFixedBytes:
		if v.Kind != KindBytes {
			return fmt.Errorf("%w: expected bytes", ErrFormatMismatch)
		}
		if len(v.Bytes) != f.Len {
			return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidParameterValue, f.Len, len(v.Bytes))
		}
		w.WriteFixed(v.Bytes)
	case TagU8:
		if v.Kind != KindU8 {
			return fmt.Errorf("%w: expected u8", ErrFormatMismatch)
		}
		w.WriteU8(v.U8)
	case TagU32:
		if v.Kind != KindU32 {
			return fmt.Errorf("%w: expected u32", ErrFormatMismatch)
		}
		w.WriteUint32(v.U32)
	case TagU64:
		if v.Kind != KindU64 {
			return fmt.Errorf("%w: expected u64", ErrFormatMismatch)
		}
		w.WriteUint64(v.U64)
	case TagMPInt:
		if v.Kind != KindMPInt || v.Int == nil {
			return fmt.Errorf("%w: expected mpint", ErrFormatMismatch)
		}
		if v.Int.Sign() < 0 {
			return fmt.Errorf("%w: must be non-negative", ErrFormatMismatch)
		}
		w.WriteMPInt(v.Int)
	default:
		return fmt.Errorf("%w: unknown tag %d", ErrFormatMismatch, f.Tag)
	}
	return nil
}

// CheckMatches performs structural validation: for each field in s, it
// asserts presence and a runtime type compatible with the field's tag. A
// mismatch emits a WarnSoftValidationFailed warning, one per offending
// field, and never aborts — this is a separate contract from Read/Write,
// which fail hard.
func (s Schema) CheckMatches(values map[string]Value, sink Sink) {
	for _, f := range s {
		v, ok := values[f.Name]
		if !ok {
			warnf(sink, WarnSoftValidationFailed, "missing field %q", f.Name)
			continue
		}
		if !tagAccepts(f.Tag, v) {
			warnf(sink, WarnSoftValidationFailed, "field %q has the wrong type for its schema", f.Name)
			continue
		}
		if f.Tag == TagFixedBytes && len(v.Bytes) != f.Len {
			warnf(sink, WarnSoftValidationFailed, "field %q is %d bytes, expected %d", f.Name, len(v.Bytes), f.Len)
		}
	}
}

func tagAccepts(t Tag, v Value) bool {
	switch t {
	case TagString:
		return v.Kind == KindText
	case TagBytes, TagFixedBytes:
		return v.Kind == KindBytes
	case TagU8:
		return v.Kind == KindU8
	case TagU32:
		return v.Kind == KindU32
	case TagU64:
		return v.Kind == KindU64
	case TagMPInt:
		return v.Kind == KindMPInt && v.Int != nil
	default:
		return false
	}
}
