package opensshkey

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"math/big"
	"testing"
)

func TestEncodePublicRSALiteralWireVector(t *testing.T) {
	var want []byte
	want = append(want, 0, 0, 0, 7)
	want = append(want, []byte("ssh-rsa")...)
	want = append(want, 0, 0, 0, 3, 0x01, 0x00, 0x01) // e = 65537
	want = append(want, 0, 0, 0, 2, 0x00, 0xff)       // n = 255, leading zero for the sign bit

	pk := &PublicKey{
		KeyType: TypeRSA,
		Params: rsaVariant.NewPublicParams(map[string]Value{
			"e": MPInt(big.NewInt(65537)),
			"n": MPInt(big.NewInt(255)),
		}, DiscardSink),
	}
	got, err := pk.EncodePublic()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("EncodePublic = % x, want % x", got, want)
	}

	decoded, err := DecodePublic(want, DiscardSink)
	if err != nil {
		t.Fatal(err)
	}
	if !decoded.Params.Equal(pk.Params) {
		t.Fatal("decoding the literal vector did not recover the expected params")
	}
}

func TestEncodeDecodePublicRSARoundTrip(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatal(err)
	}
	values, err := rsaPublicKeyToValues(&key.PublicKey)
	if err != nil {
		t.Fatal(err)
	}
	pk := &PublicKey{KeyType: TypeRSA, Params: rsaVariant.NewPublicParams(values, DiscardSink)}
	blob, err := pk.EncodePublic()
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodePublic(blob, DiscardSink)
	if err != nil {
		t.Fatal(err)
	}
	if !decoded.Params.Equal(pk.Params) {
		t.Fatal("decoded RSA public key does not match original")
	}
}

func TestEncodeDecodePublicEd25519RoundTrip(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	values, err := ed25519PublicKeyToValues(pub)
	if err != nil {
		t.Fatal(err)
	}
	pk := &PublicKey{KeyType: TypeEd25519, Params: ed25519Variant.NewPublicParams(values, DiscardSink)}
	blob, err := pk.EncodePublic()
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodePublic(blob, DiscardSink)
	if err != nil {
		t.Fatal(err)
	}
	if !decoded.Params.Equal(pk.Params) {
		t.Fatal("decoded ed25519 public key does not match original")
	}
}

func TestDecodePublicUnknownType(t *testing.T) {
	w := &Writer{}
	w.WriteString("not-a-real-key-type")
	_, err := DecodePublic(w.Bytes(), DiscardSink)
	if !errors.Is(err, ErrUnknownKeyType) {
		t.Fatalf("expected ErrUnknownKeyType, got %v", err)
	}
}

func TestDecodePublicTruncatedMPInt(t *testing.T) {
	w := &Writer{}
	w.WriteString(string(TypeRSA))
	w.WriteUint32(4) // e's length prefix claims 4 bytes
	w.WriteFixed([]byte{1, 2})
	_, err := DecodePublic(w.Bytes(), DiscardSink)
	if !errors.Is(err, ErrShortRead) {
		t.Fatalf("expected ErrShortRead, got %v", err)
	}
}

func TestEncodeDecodePrivateWithCommentRoundTrip(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	_ = pub
	values, err := ed25519PrivateKeyToValues(priv)
	if err != nil {
		t.Fatal(err)
	}
	sk := &PrivateKey{
		KeyType: TypeEd25519,
		Params:  ed25519Variant.NewPrivateParams(values, DiscardSink),
		Comment: "user@host",
	}
	blob, err := sk.EncodePrivate()
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodePrivate(blob, DiscardSink)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Comment != "user@host" {
		t.Fatalf("got comment %q", decoded.Comment)
	}
	if !decoded.Params.Equal(sk.Params) {
		t.Fatal("decoded private key params do not match original")
	}
}

func TestDecodePrivateCertTypeHasNoPrivateForm(t *testing.T) {
	w := &Writer{}
	w.WriteString(string(TypeCertRSA))
	_, err := DecodePrivate(w.Bytes(), DiscardSink)
	if !errors.Is(err, ErrNoPrivateForKeyType) {
		t.Fatalf("expected ErrNoPrivateForKeyType, got %v", err)
	}
}

func TestDecodePublicSoftWarningOnShortEd25519Key(t *testing.T) {
	w := &Writer{}
	w.WriteString(string(TypeEd25519))
	w.WriteBytes([]byte{1, 2, 3}) // too short to be a real ed25519 public key
	sink := &CollectSink{}
	decoded, err := DecodePublic(w.Bytes(), sink)
	if err != nil {
		t.Fatal(err)
	}
	if len(sink.Warnings) == 0 {
		t.Fatal("expected a soft validation warning for a malformed ed25519 public key")
	}
	pub, _ := decoded.Params.Get("public")
	if len(pub.Bytes) != 3 {
		t.Fatal("decode should retain the malformed value rather than reject it")
	}
}

func TestDecodePublicWarnsOnExcessBytes(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	values, err := ed25519PublicKeyToValues(pub)
	if err != nil {
		t.Fatal(err)
	}
	pk := &PublicKey{KeyType: TypeEd25519, Params: ed25519Variant.NewPublicParams(values, DiscardSink)}
	blob, err := pk.EncodePublic()
	if err != nil {
		t.Fatal(err)
	}
	trailer := []byte{0xDE, 0xAD}
	blob = append(blob, trailer...)
	sink := &CollectSink{}
	decoded, err := DecodePublic(blob, sink)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, w := range sink.Warnings {
		if w.Kind == WarnExcessBytes {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a WarnExcessBytes warning for trailing bytes")
	}
	if !bytes.Equal(decoded.Remainder, trailer) {
		t.Fatalf("Remainder = % x, want % x", decoded.Remainder, trailer)
	}
}

func TestDecodePrivateRemainderMatchesTrailer(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	values, err := ed25519PrivateKeyToValues(priv)
	if err != nil {
		t.Fatal(err)
	}
	sk := &PrivateKey{
		KeyType: TypeEd25519,
		Params:  ed25519Variant.NewPrivateParams(values, DiscardSink),
		Comment: "user@host",
	}
	blob, err := sk.EncodePrivate()
	if err != nil {
		t.Fatal(err)
	}
	trailer := []byte("\n")
	blob = append(blob, trailer...)
	decoded, err := DecodePrivate(blob, DiscardSink)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded.Remainder, trailer) {
		t.Fatalf("Remainder = % x, want % x", decoded.Remainder, trailer)
	}
}
