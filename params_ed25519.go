package opensshkey

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"reflect"

	"golang.org/x/crypto/ssh"
)

const ed25519PublicKeySize = 32
const ed25519PrivatePublicSize = 64

var ed25519PublicKeyGoType = reflect.TypeOf(ed25519.PublicKey(nil))
var ed25519PrivateKeyGoType = reflect.TypeOf(ed25519.PrivateKey(nil))

func ed25519PublicKeyToValues(obj interface{}) (map[string]Value, error) {
	pub := obj.(ed25519.PublicKey)
	return map[string]Value{
		"public": BytesValue(append([]byte(nil), pub...)),
	}, nil
}

func ed25519ValuesToPublicKey(p *Params) (interface{}, error) {
	pub, ok := p.Get("public")
	if !ok || pub.Kind != KindBytes {
		return nil, fmt.Errorf("%w: missing public", ErrInvalidParameterValue)
	}
	return ed25519.PublicKey(append([]byte(nil), pub.Bytes...)), nil
}

func ed25519PrivateKeyToValues(obj interface{}) (map[string]Value, error) {
	priv := obj.(ed25519.PrivateKey)
	if len(priv) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: malformed ed25519 private key", ErrInvalidParameterValue)
	}
	pub := priv.Public().(ed25519.PublicKey)
	return map[string]Value{
		"public":         BytesValue(append([]byte(nil), pub...)),
		"private_public": BytesValue(append([]byte(nil), priv...)),
	}, nil
}

func ed25519ValuesToPrivateKey(p *Params) (interface{}, error) {
	pp, ok := p.Get("private_public")
	if !ok || pp.Kind != KindBytes {
		return nil, fmt.Errorf("%w: missing private_public", ErrInvalidParameterValue)
	}
	return ed25519.PrivateKey(append([]byte(nil), pp.Bytes...)), nil
}

func generateEd25519(opts interface{}) (*Params, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	values, err := ed25519PrivateKeyToValues(priv)
	if err != nil {
		return nil, err
	}
	return ed25519Variant.NewPrivateParams(values, DiscardSink), nil
}

func validateEd25519Public(values map[string]Value, sink Sink) {
	pub, ok := values["public"]
	if !ok || pub.Kind != KindBytes {
		return
	}
	if len(pub.Bytes) != ed25519PublicKeySize {
		warnf(sink, WarnSoftValidationFailed, "ed25519 public key is %d bytes, expected %d", len(pub.Bytes), ed25519PublicKeySize)
	}
}

func validateEd25519Private(values map[string]Value, sink Sink) {
	validateEd25519Public(values, sink)
	pp, ok := values["private_public"]
	if !ok || pp.Kind != KindBytes {
		return
	}
	if len(pp.Bytes) != ed25519PrivatePublicSize {
		warnf(sink, WarnSoftValidationFailed, "ed25519 private_public is %d bytes, expected %d", len(pp.Bytes), ed25519PrivatePublicSize)
		return
	}
	pub, ok := values["public"]
	if ok && pub.Kind == KindBytes && len(pub.Bytes) == ed25519PublicKeySize {
		if string(pp.Bytes[ed25519PublicKeySize:]) != string(pub.Bytes) {
			warnf(sink, WarnSoftValidationFailed, "ed25519 private_public's embedded public key does not match public")
		}
	}
}

func ed25519PublicKeyFromSSH(obj interface{}) (map[string]Value, error) {
	pub, err := cryptoPublicKeyFromSSH(obj.(ssh.PublicKey))
	if err != nil {
		return nil, err
	}
	edPub, ok := pub.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an Ed25519 public key", ErrUnsupportedConversion)
	}
	return ed25519PublicKeyToValues(edPub)
}

func ed25519ValuesToSSHPublicKey(p *Params) (interface{}, error) {
	pub, err := ed25519ValuesToPublicKey(p)
	if err != nil {
		return nil, err
	}
	return ssh.NewPublicKey(pub.(ed25519.PublicKey))
}

var ed25519Variant = &Variant{
	keyType: TypeEd25519,
	publicSchema: Schema{
		{Name: "public", Tag: TagBytes},
	},
	privateSchema: Schema{
		{Name: "public", Tag: TagBytes},
		{Name: "private_public", Tag: TagBytes},
	},
	publicAdapters: []adapterEntry{
		{typ: ed25519PublicKeyGoType, fromObject: ed25519PublicKeyToValues, toObject: ed25519ValuesToPublicKey},
		{typ: sshPublicKeyType, fromObject: ed25519PublicKeyFromSSH, toObject: ed25519ValuesToSSHPublicKey},
	},
	privateAdapters: []adapterEntry{
		{typ: ed25519PrivateKeyGoType, fromObject: ed25519PrivateKeyToValues, toObject: ed25519ValuesToPrivateKey},
	},
	validatePublic:  validateEd25519Public,
	validatePrivate: validateEd25519Private,
	generate:        generateEd25519,
}
