package opensshkey

// Certificate variants wrap a base public variant's fields with a leading
// nonce and a trailing block of certificate metadata. critical_options
// and extensions are carried as opaque STRING blobs rather than parsed
// into their inner sub-records. Certificates have no private schema (the
// private material belongs to the signing CA, not the certified key) and
// no generator or conversion adapters: signing a certificate is out of
// scope for this module.
var certSuffixFields = Schema{
	{Name: "serial", Tag: TagU64},
	{Name: "type", Tag: TagU32},
	{Name: "key_id", Tag: TagString},
	{Name: "valid_principals", Tag: TagString},
	{Name: "valid_after", Tag: TagU64},
	{Name: "valid_before", Tag: TagU64},
	{Name: "critical_options", Tag: TagString},
	{Name: "extensions", Tag: TagString},
	{Name: "reserved", Tag: TagString},
	{Name: "signature_key", Tag: TagString},
	{Name: "signature", Tag: TagString},
}

func certSchema(base Schema) Schema {
	out := make(Schema, 0, len(base)+1+len(certSuffixFields))
	out = append(out, Field{Name: "nonce", Tag: TagBytes})
	out = append(out, base...)
	out = append(out, certSuffixFields...)
	return out
}

func newCertVariant(keyType KeyType, base Schema) *Variant {
	return &Variant{
		keyType:      keyType,
		publicSchema: certSchema(base),
	}
}

var certRSAVariant = newCertVariant(TypeCertRSA, rsaVariant.PublicSchema())
var certDSSVariant = newCertVariant(TypeCertDSS, dssVariant.PublicSchema())
var certEd25519Variant = newCertVariant(TypeCertEd25519, ed25519Variant.PublicSchema())
var certECDSA256Variant = newCertVariant(TypeCertECDSA256, ecdsa256Variant.PublicSchema())
var certECDSA384Variant = newCertVariant(TypeCertECDSA384, ecdsa384Variant.PublicSchema())
var certECDSA521Variant = newCertVariant(TypeCertECDSA521, ecdsa521Variant.PublicSchema())
var certSKEd25519Variant = newCertVariant(TypeCertSKEd25519, skEd25519Variant.PublicSchema())
var certSKECDSA256Variant = newCertVariant(TypeCertSKECDSA256, skECDSA256Variant.PublicSchema())
