package opensshkey

// The envelope layer is the outermost shape of an OpenSSH key blob: a
// header naming the algorithm, the algorithm's own parameter body, and a
// footer (none for public keys, a comment for private keys), re-expressed
// as plain structs over the registry and schema machinery already built.

var headerSchema = Schema{{Name: "key_type", Tag: TagString}}
var privateFooterSchema = Schema{{Name: "comment", Tag: TagString}}

// PublicKey is a decoded OpenSSH public key blob: an algorithm identifier
// plus its public parameters. Remainder holds any bytes left over after
// the body, e.g. a trailing newline or an appended comment, so a caller
// can inspect or keep them. EncodePublic does not write Remainder.
type PublicKey struct {
	KeyType   KeyType
	Params    *Params
	Remainder []byte
}

// PrivateKey is a decoded OpenSSH private key blob: an algorithm
// identifier, its private parameters, a trailing comment field, and any
// bytes left over after the comment.
type PrivateKey struct {
	KeyType   KeyType
	Params    *Params
	Comment   string
	Remainder []byte
}

// DecodePublic parses an OpenSSH public key blob: a key_type header, the
// body fields for that algorithm's public schema, and no footer. Any
// trailing bytes after the body are both reported to sink as
// WarnExcessBytes and attached to the returned key as Remainder.
func DecodePublic(data []byte, sink Sink) (*PublicKey, error) {
	r := NewReader(data)
	header, err := headerSchema.Read(r)
	if err != nil {
		return nil, err
	}
	kt := KeyType(header["key_type"].Text)
	variant, err := PublicVariantFor(kt)
	if err != nil {
		return nil, err
	}
	values, err := variant.PublicSchema().Read(r)
	if err != nil {
		return nil, err
	}
	params := variant.NewPublicParams(values, sink)
	remainder := r.Remaining()
	if len(remainder) > 0 {
		warnf(sink, WarnExcessBytes, "%d bytes remain after %s public body", len(remainder), kt)
	}
	return &PublicKey{KeyType: kt, Params: params, Remainder: append([]byte(nil), remainder...)}, nil
}

// EncodePublic renders k back to an OpenSSH public key blob.
func (k *PublicKey) EncodePublic() ([]byte, error) {
	variant, err := PublicVariantFor(k.KeyType)
	if err != nil {
		return nil, err
	}
	w := &Writer{}
	if err := headerSchema.Write(w, map[string]Value{"key_type": Text(string(k.KeyType))}); err != nil {
		return nil, err
	}
	if err := variant.PublicSchema().Write(w, k.Params.Values); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// DecodePrivate parses an OpenSSH private key blob: a key_type header,
// the body fields for that algorithm's private schema, then a comment
// footer. Returns ErrNoPrivateForKeyType if the named algorithm has no
// private form (e.g. any certificate type).
func DecodePrivate(data []byte, sink Sink) (*PrivateKey, error) {
	r := NewReader(data)
	header, err := headerSchema.Read(r)
	if err != nil {
		return nil, err
	}
	kt := KeyType(header["key_type"].Text)
	variant, err := PrivateVariantFor(kt)
	if err != nil {
		return nil, err
	}
	values, err := variant.PrivateSchema().Read(r)
	if err != nil {
		return nil, err
	}
	params := variant.NewPrivateParams(values, sink)
	footer, err := privateFooterSchema.Read(r)
	if err != nil {
		return nil, err
	}
	remainder := r.Remaining()
	if len(remainder) > 0 {
		warnf(sink, WarnExcessBytes, "%d bytes remain after %s private footer", len(remainder), kt)
	}
	return &PrivateKey{KeyType: kt, Params: params, Comment: footer["comment"].Text, Remainder: append([]byte(nil), remainder...)}, nil
}

// EncodePrivate renders k back to an OpenSSH private key blob.
func (k *PrivateKey) EncodePrivate() ([]byte, error) {
	variant, err := PrivateVariantFor(k.KeyType)
	if err != nil {
		return nil, err
	}
	w := &Writer{}
	if err := headerSchema.Write(w, map[string]Value{"key_type": Text(string(k.KeyType))}); err != nil {
		return nil, err
	}
	if err := variant.PrivateSchema().Write(w, k.Params.Values); err != nil {
		return nil, err
	}
	if err := privateFooterSchema.Write(w, map[string]Value{"comment": Text(k.Comment)}); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
