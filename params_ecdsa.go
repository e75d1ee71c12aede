package opensshkey

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"reflect"

	"golang.org/x/crypto/ssh"
)

var ecdsaPublicKeyGoType = reflect.TypeOf((*ecdsa.PublicKey)(nil))
var ecdsaPrivateKeyGoType = reflect.TypeOf((*ecdsa.PrivateKey)(nil))

// ecdsaCurve binds an OpenSSH curve identifier string (the wire "q" field's
// companion "identifier" string, distinct from the ecdsa-sha2-nistpNNN key
// type) to the stdlib curve it names.
type ecdsaCurve struct {
	identifier string
	curve      elliptic.Curve
}

var ecdsaCurves = map[KeyType]ecdsaCurve{
	TypeECDSA256: {identifier: "nistp256", curve: elliptic.P256()},
	TypeECDSA384: {identifier: "nistp384", curve: elliptic.P384()},
	TypeECDSA521: {identifier: "nistp521", curve: elliptic.P521()},
}

func newECDSAVariant(keyType KeyType, info ecdsaCurve) *Variant {
	publicToValues := func(obj interface{}) (map[string]Value, error) {
		key := obj.(*ecdsa.PublicKey)
		if key.Curve != info.curve {
			return nil, fmt.Errorf("%w: key is not on curve %s", ErrUnsupportedConversion, info.identifier)
		}
		return map[string]Value{
			"identifier": Text(info.identifier),
			"q":          BytesValue(elliptic.Marshal(info.curve, key.X, key.Y)),
		}, nil
	}
	valuesToPublic := func(p *Params) (interface{}, error) {
		q, ok := p.Get("q")
		if !ok || q.Kind != KindBytes {
			return nil, fmt.Errorf("%w: missing q", ErrInvalidParameterValue)
		}
		x, y := elliptic.Unmarshal(info.curve, q.Bytes)
		if x == nil {
			return nil, fmt.Errorf("%w: q is not a valid point on %s", ErrInvalidParameterValue, info.identifier)
		}
		return &ecdsa.PublicKey{Curve: info.curve, X: x, Y: y}, nil
	}
	privateToValues := func(obj interface{}) (map[string]Value, error) {
		key := obj.(*ecdsa.PrivateKey)
		pub, err := publicToValues(&key.PublicKey)
		if err != nil {
			return nil, err
		}
		pub["d"] = MPInt(key.D)
		return pub, nil
	}
	valuesToPrivate := func(p *Params) (interface{}, error) {
		pub, err := valuesToPublic(p)
		if err != nil {
			return nil, err
		}
		d, ok := p.Get("d")
		if !ok || d.Int == nil {
			return nil, fmt.Errorf("%w: missing d", ErrInvalidParameterValue)
		}
		return &ecdsa.PrivateKey{PublicKey: *pub.(*ecdsa.PublicKey), D: d.Int}, nil
	}
	publicFromSSH := func(obj interface{}) (map[string]Value, error) {
		pub, err := cryptoPublicKeyFromSSH(obj.(ssh.PublicKey))
		if err != nil {
			return nil, err
		}
		ecPub, ok := pub.(*ecdsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an ECDSA public key", ErrUnsupportedConversion)
		}
		return publicToValues(ecPub)
	}
	valuesToSSH := func(p *Params) (interface{}, error) {
		pub, err := valuesToPublic(p)
		if err != nil {
			return nil, err
		}
		return ssh.NewPublicKey(pub.(*ecdsa.PublicKey))
	}
	generate := func(opts interface{}) (*Params, error) {
		key, err := ecdsa.GenerateKey(info.curve, rand.Reader)
		if err != nil {
			return nil, err
		}
		values, err := privateToValues(key)
		if err != nil {
			return nil, err
		}
		return ecdsaVariants[keyType].NewPrivateParams(values, DiscardSink), nil
	}

	return &Variant{
		keyType: keyType,
		publicSchema: Schema{
			{Name: "identifier", Tag: TagString},
			{Name: "q", Tag: TagBytes},
		},
		privateSchema: Schema{
			{Name: "identifier", Tag: TagString},
			{Name: "q", Tag: TagBytes},
			{Name: "d", Tag: TagMPInt},
		},
		publicAdapters: []adapterEntry{
			{typ: ecdsaPublicKeyGoType, fromObject: publicToValues, toObject: valuesToPublic},
			{typ: sshPublicKeyType, fromObject: publicFromSSH, toObject: valuesToSSH},
		},
		privateAdapters: []adapterEntry{
			{typ: ecdsaPrivateKeyGoType, fromObject: privateToValues, toObject: valuesToPrivate},
		},
		generate: generate,
	}
}

var ecdsaVariants = func() map[KeyType]*Variant {
	m := make(map[KeyType]*Variant, len(ecdsaCurves))
	for kt, info := range ecdsaCurves {
		m[kt] = newECDSAVariant(kt, info)
	}
	return m
}()

var ecdsa256Variant = ecdsaVariants[TypeECDSA256]
var ecdsa384Variant = ecdsaVariants[TypeECDSA384]
var ecdsa521Variant = ecdsaVariants[TypeECDSA521]
