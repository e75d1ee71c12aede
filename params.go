package opensshkey

import (
	"fmt"
	"reflect"
)

// KeyType is an OpenSSH algorithm identifier string, e.g. "ssh-ed25519" or
// "ecdsa-sha2-nistp256-cert-v01@openssh.com". Identifiers are exact-match,
// case-sensitive, including vendor suffixes like "@openssh.com".
type KeyType string

// Algorithm identifiers for every variant this module supports.
const (
	TypeRSA        KeyType = "ssh-rsa"
	TypeDSS        KeyType = "ssh-dss"
	TypeEd25519    KeyType = "ssh-ed25519"
	TypeECDSA256   KeyType = "ecdsa-sha2-nistp256"
	TypeECDSA384   KeyType = "ecdsa-sha2-nistp384"
	TypeECDSA521   KeyType = "ecdsa-sha2-nistp521"
	TypeSKEd25519  KeyType = "sk-ssh-ed25519@openssh.com"
	TypeSKECDSA256 KeyType = "sk-ecdsa-sha2-nistp256@openssh.com"

	TypeCertRSA        KeyType = "ssh-rsa-cert-v01@openssh.com"
	TypeCertDSS        KeyType = "ssh-dss-cert-v01@openssh.com"
	TypeCertEd25519    KeyType = "ssh-ed25519-cert-v01@openssh.com"
	TypeCertECDSA256   KeyType = "ecdsa-sha2-nistp256-cert-v01@openssh.com"
	TypeCertECDSA384   KeyType = "ecdsa-sha2-nistp384-cert-v01@openssh.com"
	TypeCertECDSA521   KeyType = "ecdsa-sha2-nistp521-cert-v01@openssh.com"
	TypeCertSKEd25519  KeyType = "sk-ssh-ed25519-cert-v01@openssh.com"
	TypeCertSKECDSA256 KeyType = "sk-ecdsa-sha2-nistp256-cert-v01@openssh.com"
)

// adapterEntry is one (object type, conversion pair) a variant can use to
// exchange its parameters with an external crypto-library key object.
type adapterEntry struct {
	typ        reflect.Type
	fromObject func(obj interface{}) (map[string]Value, error)
	toObject   func(p *Params) (interface{}, error)
}

// Variant is one algorithm's pair of (public schema, optional private
// schema) plus its conversion adapters and, for private variants, its key
// generator. A flat tagged-variant table takes the place of a class
// hierarchy: every algorithm's shape is data, not a distinct type.
type Variant struct {
	keyType         KeyType
	publicSchema    Schema
	privateSchema   Schema
	publicAdapters  []adapterEntry
	privateAdapters []adapterEntry
	validatePublic  func(values map[string]Value, sink Sink)
	validatePrivate func(values map[string]Value, sink Sink)
	generate        func(opts interface{}) (*Params, error)
}

// KeyType returns the algorithm identifier this variant answers to.
func (v *Variant) KeyType() KeyType { return v.keyType }

// PublicSchema returns the ordered field schema for this variant's public
// parameters.
func (v *Variant) PublicSchema() Schema { return v.publicSchema }

// PrivateSchema returns the ordered field schema for this variant's
// private parameters, or nil if this variant has no private form.
func (v *Variant) PrivateSchema() Schema { return v.privateSchema }

// HasPrivate reports whether this variant has a private schema.
func (v *Variant) HasPrivate() bool { return v.privateSchema != nil }

// NewPublicParams constructs a public Params, running structural and
// soft validation against sink. Construction never fails: a malformed
// mapping is retained as-is so callers can inspect it.
func (v *Variant) NewPublicParams(values map[string]Value, sink Sink) *Params {
	v.publicSchema.CheckMatches(values, sink)
	if v.validatePublic != nil {
		v.validatePublic(values, sink)
	}
	return NewParams(v.keyType, values)
}

// NewPrivateParams constructs a private Params, running structural and
// soft validation against sink.
func (v *Variant) NewPrivateParams(values map[string]Value, sink Sink) *Params {
	v.privateSchema.CheckMatches(values, sink)
	if v.validatePrivate != nil {
		v.validatePrivate(values, sink)
	}
	return NewParams(v.keyType, values)
}

// Generate produces a freshly generated private Params using opts, which
// each variant interprets as its own options type (e.g. *RSAGenerateOptions).
func (v *Variant) Generate(opts interface{}) (*Params, error) {
	if v.generate == nil {
		return nil, fmt.Errorf("%w: %s has no generator", ErrUnsupportedConversion, v.keyType)
	}
	return v.generate(opts)
}

func narrowToSchema(m map[string]Value, s Schema) map[string]Value {
	out := make(map[string]Value, len(s))
	for _, f := range s {
		if v, ok := m[f.Name]; ok {
			out[f.Name] = v
		}
	}
	return out
}

func tryFromAdapters(adapters []adapterEntry, obj interface{}) (map[string]Value, bool, error) {
	ot := reflect.TypeOf(obj)
	if ot == nil {
		return nil, false, nil
	}
	for _, a := range adapters {
		if ot.AssignableTo(a.typ) {
			m, err := a.fromObject(obj)
			return m, true, err
		}
	}
	return nil, false, nil
}

// ConvertFromPublic builds a public Params for this variant from an
// external key object. It searches this variant's own public adapters
// first; if none match, it tries the private adapters (if any) and
// narrows the resulting mapping down to the public fields, so a private
// key object can still produce a public Params when no public-only
// adapter matches it.
func (v *Variant) ConvertFromPublic(obj interface{}) (*Params, error) {
	if m, ok, err := tryFromAdapters(v.publicAdapters, obj); ok {
		if err != nil {
			return nil, err
		}
		return v.NewPublicParams(narrowToSchema(m, v.publicSchema), DiscardSink), nil
	}
	if v.privateAdapters != nil {
		if m, ok, err := tryFromAdapters(v.privateAdapters, obj); ok {
			if err != nil {
				return nil, err
			}
			return v.NewPublicParams(narrowToSchema(m, v.publicSchema), DiscardSink), nil
		}
	}
	return nil, fmt.Errorf("%w: %s has no adapter for %T", ErrUnsupportedConversion, v.keyType, obj)
}

// ConvertFromPrivate builds a private Params for this variant from an
// external key object using this variant's private adapters.
func (v *Variant) ConvertFromPrivate(obj interface{}) (*Params, error) {
	if !v.HasPrivate() {
		return nil, fmt.Errorf("%w: %s", ErrNoPrivateForKeyType, v.keyType)
	}
	if m, ok, err := tryFromAdapters(v.privateAdapters, obj); ok {
		if err != nil {
			return nil, err
		}
		return v.NewPrivateParams(narrowToSchema(m, v.privateSchema), DiscardSink), nil
	}
	return nil, fmt.Errorf("%w: %s has no adapter for %T", ErrUnsupportedConversion, v.keyType, obj)
}

func tryToAdapters(adapters []adapterEntry, p *Params, target reflect.Type) (interface{}, bool, error) {
	for _, a := range adapters {
		if a.typ.AssignableTo(target) {
			obj, err := a.toObject(p)
			return obj, true, err
		}
	}
	return nil, false, nil
}

// ConvertToFromPublic converts p, a public Params for this variant, to an
// object of the given target type token (a concrete type, or an
// interface the adapter's type implements).
func (v *Variant) ConvertToFromPublic(p *Params, target reflect.Type) (interface{}, error) {
	if obj, ok, err := tryToAdapters(v.publicAdapters, p, target); ok {
		return obj, err
	}
	return nil, fmt.Errorf("%w: %s has no adapter producing %v", ErrUnsupportedConversion, v.keyType, target)
}

// ConvertToFromPrivate converts p, a private Params for this variant, to
// an object of the given target type token. It tries this variant's own
// private adapters first, then falls back to its public adapters.
func (v *Variant) ConvertToFromPrivate(p *Params, target reflect.Type) (interface{}, error) {
	if v.privateAdapters != nil {
		if obj, ok, err := tryToAdapters(v.privateAdapters, p, target); ok {
			return obj, err
		}
	}
	if obj, ok, err := tryToAdapters(v.publicAdapters, p, target); ok {
		return obj, err
	}
	return nil, fmt.Errorf("%w: %s has no adapter producing %v", ErrUnsupportedConversion, v.keyType, target)
}
