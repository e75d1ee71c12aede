package opensshkey

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"math/big"
	"reflect"

	"golang.org/x/crypto/ssh"
)

// RSAGenerateOptions configures RSA key generation. A zero value uses the
// defaults: public exponent 65537, 4096-bit modulus.
type RSAGenerateOptions struct {
	PublicExponent int
	Bits           int
}

const (
	defaultRSAPublicExponent = 65537
	defaultRSABits           = 4096
)

var rsaPublicKeyGoType = reflect.TypeOf((*rsa.PublicKey)(nil))
var rsaPrivateKeyGoType = reflect.TypeOf((*rsa.PrivateKey)(nil))

func rsaPublicKeyToValues(obj interface{}) (map[string]Value, error) {
	key := obj.(*rsa.PublicKey)
	return map[string]Value{
		"e": MPInt(big.NewInt(int64(key.E))),
		"n": MPInt(key.N),
	}, nil
}

func rsaValuesToPublicKey(p *Params) (interface{}, error) {
	e, ok := p.Get("e")
	if !ok || e.Int == nil {
		return nil, fmt.Errorf("%w: missing e", ErrInvalidParameterValue)
	}
	n, ok := p.Get("n")
	if !ok || n.Int == nil {
		return nil, fmt.Errorf("%w: missing n", ErrInvalidParameterValue)
	}
	return &rsa.PublicKey{N: n.Int, E: int(e.Int.Int64())}, nil
}

func rsaPrivateKeyToValues(obj interface{}) (map[string]Value, error) {
	key := obj.(*rsa.PrivateKey)
	if len(key.Primes) != 2 {
		return nil, fmt.Errorf("%w: multi-prime RSA keys are not supported", ErrUnsupportedConversion)
	}
	key.Precompute()
	return map[string]Value{
		"n":    MPInt(key.N),
		"e":    MPInt(big.NewInt(int64(key.E))),
		"d":    MPInt(key.D),
		"iqmp": MPInt(key.Precomputed.Qinv),
		"p":    MPInt(key.Primes[0]),
		"q":    MPInt(key.Primes[1]),
	}, nil
}

func rsaValuesToPrivateKey(p *Params) (interface{}, error) {
	for _, name := range []string{"n", "e", "d", "p", "q"} {
		v, ok := p.Get(name)
		if !ok || v.Int == nil {
			return nil, fmt.Errorf("%w: missing %s", ErrInvalidParameterValue, name)
		}
	}
	n, _ := p.Get("n")
	e, _ := p.Get("e")
	d, _ := p.Get("d")
	pp, _ := p.Get("p")
	q, _ := p.Get("q")
	key := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{N: n.Int, E: int(e.Int.Int64())},
		D:         d.Int,
		Primes:    []*big.Int{pp.Int, q.Int},
	}
	key.Precompute()
	return key, nil
}

func generateRSA(opts interface{}) (*Params, error) {
	o, _ := opts.(*RSAGenerateOptions)
	bits := defaultRSABits
	exponent := defaultRSAPublicExponent
	if o != nil {
		if o.Bits != 0 {
			bits = o.Bits
		}
		if o.PublicExponent != 0 {
			exponent = o.PublicExponent
		}
	}
	if exponent != defaultRSAPublicExponent {
		// The crypto/rsa collaborator this module builds on only ever
		// generates keys with the fixed public exponent 65537.
		return nil, fmt.Errorf("%w: rsa.GenerateKey only supports public exponent 65537", ErrInvalidParameterValue)
	}
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, err
	}
	values, err := rsaPrivateKeyToValues(key)
	if err != nil {
		return nil, err
	}
	return rsaVariant.NewPrivateParams(values, DiscardSink), nil
}

var rsaVariant = &Variant{
	keyType: TypeRSA,
	publicSchema: Schema{
		{Name: "e", Tag: TagMPInt},
		{Name: "n", Tag: TagMPInt},
	},
	privateSchema: Schema{
		{Name: "n", Tag: TagMPInt},
		{Name: "e", Tag: TagMPInt},
		{Name: "d", Tag: TagMPInt},
		{Name: "iqmp", Tag: TagMPInt},
		{Name: "p", Tag: TagMPInt},
		{Name: "q", Tag: TagMPInt},
	},
	publicAdapters: []adapterEntry{
		{typ: rsaPublicKeyGoType, fromObject: rsaPublicKeyToValues, toObject: rsaValuesToPublicKey},
		{typ: sshPublicKeyType, fromObject: rsaPublicKeyFromSSH, toObject: rsaValuesToSSHPublicKey},
	},
	privateAdapters: []adapterEntry{
		{typ: rsaPrivateKeyGoType, fromObject: rsaPrivateKeyToValues, toObject: rsaValuesToPrivateKey},
	},
	generate: generateRSA,
}

func rsaPublicKeyFromSSH(obj interface{}) (map[string]Value, error) {
	pub, err := cryptoPublicKeyFromSSH(obj.(ssh.PublicKey))
	if err != nil {
		return nil, err
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA public key", ErrUnsupportedConversion)
	}
	return rsaPublicKeyToValues(rsaPub)
}

func rsaValuesToSSHPublicKey(p *Params) (interface{}, error) {
	pub, err := rsaValuesToPublicKey(p)
	if err != nil {
		return nil, err
	}
	return ssh.NewPublicKey(pub.(*rsa.PublicKey))
}
