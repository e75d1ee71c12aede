package opensshkey

import (
	"crypto"
	"fmt"
	"reflect"

	"golang.org/x/crypto/ssh"
)

// sshPublicKeyType is the type token for golang.org/x/crypto/ssh.PublicKey,
// the one external object type every variant that has conversion adapters
// (all but the security-key and certificate variants) can convert to,
// mirroring protocol.go's SSHWireRSAPublicKeyToRSAPublicKey bridge between
// this codec's domain and the x/crypto/ssh wire representation.
var sshPublicKeyType = reflect.TypeOf((*ssh.PublicKey)(nil)).Elem()

// cryptoPublicKeyFromSSH extracts the stdlib crypto.PublicKey underlying
// an ssh.PublicKey, when the concrete implementation exposes one.
func cryptoPublicKeyFromSSH(pub ssh.PublicKey) (crypto.PublicKey, error) {
	cpk, ok := pub.(ssh.CryptoPublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: %T does not expose a crypto.PublicKey", ErrUnsupportedConversion, pub)
	}
	return cpk.CryptoPublicKey(), nil
}
