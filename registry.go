package opensshkey

import "fmt"

// registry is the algorithm factory: every key type this module knows how
// to decode, mapped to the Variant that carries its schemas. A package-
// level map built once at init stands in for a runtime class registry.
var registry = map[KeyType]*Variant{
	TypeRSA:        rsaVariant,
	TypeDSS:        dssVariant,
	TypeEd25519:    ed25519Variant,
	TypeECDSA256:   ecdsa256Variant,
	TypeECDSA384:   ecdsa384Variant,
	TypeECDSA521:   ecdsa521Variant,
	TypeSKEd25519:  skEd25519Variant,
	TypeSKECDSA256: skECDSA256Variant,

	TypeCertRSA:        certRSAVariant,
	TypeCertDSS:        certDSSVariant,
	TypeCertEd25519:    certEd25519Variant,
	TypeCertECDSA256:   certECDSA256Variant,
	TypeCertECDSA384:   certECDSA384Variant,
	TypeCertECDSA521:   certECDSA521Variant,
	TypeCertSKEd25519:  certSKEd25519Variant,
	TypeCertSKECDSA256: certSKECDSA256Variant,
}

// VariantFor returns the Variant registered for name, regardless of
// whether it has a private form.
func VariantFor(name KeyType) (*Variant, error) {
	v, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKeyType, name)
	}
	return v, nil
}

// PublicVariantFor returns the Variant registered for name, for decoding
// or constructing a public key.
func PublicVariantFor(name KeyType) (*Variant, error) {
	return VariantFor(name)
}

// PrivateVariantFor returns the Variant registered for name, only if it
// has a private schema.
func PrivateVariantFor(name KeyType) (*Variant, error) {
	v, err := VariantFor(name)
	if err != nil {
		return nil, err
	}
	if !v.HasPrivate() {
		return nil, fmt.Errorf("%w: %s", ErrNoPrivateForKeyType, name)
	}
	return v, nil
}

// KnownKeyTypes returns every algorithm identifier this module's registry
// answers to, in no particular order.
func KnownKeyTypes() []KeyType {
	out := make([]KeyType, 0, len(registry))
	for kt := range registry {
		out = append(out, kt)
	}
	return out
}
