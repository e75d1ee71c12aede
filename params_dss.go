package opensshkey

import (
	"crypto/dsa"
	"crypto/rand"
	"fmt"
	"reflect"

	"golang.org/x/crypto/ssh"
)

// dssKeySize is the only modulus size OpenSSH's "ssh-dss" ever supported
// (FIPS 186 at 1024 bits).
const dssKeySize = 1024

var dssPublicKeyGoType = reflect.TypeOf((*dsa.PublicKey)(nil))
var dssPrivateKeyGoType = reflect.TypeOf((*dsa.PrivateKey)(nil))

func dssPublicKeyToValues(obj interface{}) (map[string]Value, error) {
	key := obj.(*dsa.PublicKey)
	return map[string]Value{
		"p": MPInt(key.P),
		"q": MPInt(key.Q),
		"g": MPInt(key.G),
		"y": MPInt(key.Y),
	}, nil
}

func dssValuesToPublicKey(p *Params) (interface{}, error) {
	for _, name := range []string{"p", "q", "g", "y"} {
		v, ok := p.Get(name)
		if !ok || v.Int == nil {
			return nil, fmt.Errorf("%w: missing %s", ErrInvalidParameterValue, name)
		}
	}
	pv, _ := p.Get("p")
	qv, _ := p.Get("q")
	gv, _ := p.Get("g")
	yv, _ := p.Get("y")
	return &dsa.PublicKey{
		Parameters: dsa.Parameters{P: pv.Int, Q: qv.Int, G: gv.Int},
		Y:          yv.Int,
	}, nil
}

func dssPrivateKeyToValues(obj interface{}) (map[string]Value, error) {
	key := obj.(*dsa.PrivateKey)
	return map[string]Value{
		"p": MPInt(key.P),
		"q": MPInt(key.Q),
		"g": MPInt(key.G),
		"y": MPInt(key.Y),
		"x": MPInt(key.X),
	}, nil
}

func dssValuesToPrivateKey(p *Params) (interface{}, error) {
	for _, name := range []string{"p", "q", "g", "y", "x"} {
		v, ok := p.Get(name)
		if !ok || v.Int == nil {
			return nil, fmt.Errorf("%w: missing %s", ErrInvalidParameterValue, name)
		}
	}
	pv, _ := p.Get("p")
	qv, _ := p.Get("q")
	gv, _ := p.Get("g")
	yv, _ := p.Get("y")
	xv, _ := p.Get("x")
	return &dsa.PrivateKey{
		PublicKey: dsa.PublicKey{
			Parameters: dsa.Parameters{P: pv.Int, Q: qv.Int, G: gv.Int},
			Y:          yv.Int,
		},
		X: xv.Int,
	}, nil
}

func generateDSS(opts interface{}) (*Params, error) {
	var params dsa.Parameters
	if err := dsa.GenerateParameters(&params, rand.Reader, dsa.L1024N160); err != nil {
		return nil, err
	}
	var key dsa.PrivateKey
	key.Parameters = params
	if err := dsa.GenerateKey(&key, rand.Reader); err != nil {
		return nil, err
	}
	values, err := dssPrivateKeyToValues(&key)
	if err != nil {
		return nil, err
	}
	return dssVariant.NewPrivateParams(values, DiscardSink), nil
}

func dssPublicKeyFromSSH(obj interface{}) (map[string]Value, error) {
	pub, err := cryptoPublicKeyFromSSH(obj.(ssh.PublicKey))
	if err != nil {
		return nil, err
	}
	dssPub, ok := pub.(*dsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not a DSS public key", ErrUnsupportedConversion)
	}
	return dssPublicKeyToValues(dssPub)
}

func dssValuesToSSHPublicKey(p *Params) (interface{}, error) {
	pub, err := dssValuesToPublicKey(p)
	if err != nil {
		return nil, err
	}
	return ssh.NewPublicKey(pub.(*dsa.PublicKey))
}

var dssVariant = &Variant{
	keyType: TypeDSS,
	publicSchema: Schema{
		{Name: "p", Tag: TagMPInt},
		{Name: "q", Tag: TagMPInt},
		{Name: "g", Tag: TagMPInt},
		{Name: "y", Tag: TagMPInt},
	},
	privateSchema: Schema{
		{Name: "p", Tag: TagMPInt},
		{Name: "q", Tag: TagMPInt},
		{Name: "g", Tag: TagMPInt},
		{Name: "y", Tag: TagMPInt},
		{Name: "x", Tag: TagMPInt},
	},
	publicAdapters: []adapterEntry{
		{typ: dssPublicKeyGoType, fromObject: dssPublicKeyToValues, toObject: dssValuesToPublicKey},
		{typ: sshPublicKeyType, fromObject: dssPublicKeyFromSSH, toObject: dssValuesToSSHPublicKey},
	},
	privateAdapters: []adapterEntry{
		{typ: dssPrivateKeyGoType, fromObject: dssPrivateKeyToValues, toObject: dssValuesToPrivateKey},
	},
	generate: generateDSS,
}
