package opensshkey

import (
	"bytes"
	"math/big"
)

// Kind tags which field of Value holds the value's data.
type Kind int

const (
	KindMPInt Kind = iota
	KindBytes
	KindText
	KindU8
	KindU32
	KindU64
)

// Value is a dynamically-typed field value: one of an arbitrary-precision
// integer, a byte sequence, a string, or a fixed-width unsigned integer.
// Exactly one of Int/Bytes/Text/U8/U32/U64 is meaningful, selected by Kind.
type Value struct {
	Kind  Kind
	Int   *big.Int
	Bytes []byte
	Text  string
	U8    uint8
	U32   uint32
	U64   uint64
}

// MPInt wraps an arbitrary-precision integer value.
func MPInt(n *big.Int) Value { return Value{Kind: KindMPInt, Int: n} }

// BytesValue wraps a byte-sequence value.
func BytesValue(b []byte) Value { return Value{Kind: KindBytes, Bytes: b} }

// Text wraps a string value.
func Text(s string) Value { return Value{Kind: KindText, Text: s} }

// U8 wraps a single-byte unsigned integer value.
func U8(v uint8) Value { return Value{Kind: KindU8, U8: v} }

// U32 wraps a 32-bit unsigned integer value.
func U32(v uint32) Value { return Value{Kind: KindU32, U32: v} }

// U64 wraps a 64-bit unsigned integer value.
func U64(v uint64) Value { return Value{Kind: KindU64, U64: v} }

// Equal reports whether v and o hold the same kind and value.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindMPInt:
		if v.Int == nil || o.Int == nil {
			return v.Int == o.Int
		}
		return v.Int.Cmp(o.Int) == 0
	case KindBytes:
		return bytes.Equal(v.Bytes, o.Bytes)
	case KindText:
		return v.Text == o.Text
	case KindU8:
		return v.U8 == o.U8
	case KindU32:
		return v.U32 == o.U32
	case KindU64:
		return v.U64 == o.U64
	default:
		return false
	}
}

// Params is an ordered-by-schema name→value mapping conforming to a
// variant's schema. Fields outside the schema may be present (preserved
// across the lifetime of the object) but are never written on Encode.
type Params struct {
	KeyType KeyType
	Values  map[string]Value
}

// NewParams builds a Params for keyType from values.
func NewParams(keyType KeyType, values map[string]Value) *Params {
	return &Params{KeyType: keyType, Values: values}
}

// Get returns the named field value, if present.
func (p *Params) Get(name string) (Value, bool) {
	v, ok := p.Values[name]
	return v, ok
}

// Equal reports whether p and o have the same KeyType and identical field
// values, including any fields outside either's schema.
func (p *Params) Equal(o *Params) bool {
	if p == nil || o == nil {
		return p == o
	}
	if p.KeyType != o.KeyType {
		return false
	}
	if len(p.Values) != len(o.Values) {
		return false
	}
	for name, v := range p.Values {
		ov, ok := o.Values[name]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
