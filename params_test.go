package opensshkey

import (
	"crypto/ed25519"
	"reflect"
	"testing"

	"golang.org/x/crypto/ssh"
)

func TestConvertFromPublicEd25519(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	p, err := ed25519Variant.ConvertFromPublic(pub)
	if err != nil {
		t.Fatal(err)
	}
	if p.KeyType != TypeEd25519 {
		t.Fatalf("got key type %s", p.KeyType)
	}
	v, ok := p.Get("public")
	if !ok || len(v.Bytes) != ed25519.PublicKeySize {
		t.Fatalf("public field missing or wrong size: %+v", v)
	}
}

func TestConvertFromPublicViaSSHPublicKeyAdapter(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	sshPub, err := ssh.NewPublicKey(pub)
	if err != nil {
		t.Fatal(err)
	}
	// sshPub's concrete type is unexported; the adapter must match it via
	// the ssh.PublicKey interface, not by exact concrete type.
	p, err := ed25519Variant.ConvertFromPublic(sshPub)
	if err != nil {
		t.Fatal(err)
	}
	if p.KeyType != TypeEd25519 {
		t.Fatalf("got key type %s", p.KeyType)
	}
}

func TestConvertFromPublicUnsupportedType(t *testing.T) {
	if _, err := ed25519Variant.ConvertFromPublic(42); err == nil {
		t.Fatal("expected ErrUnsupportedConversion for an unrelated type")
	}
}

func TestConvertFromPrivateNoPrivateAdapters(t *testing.T) {
	if _, err := skEd25519Variant.ConvertFromPrivate(nil); err == nil {
		t.Fatal("expected error converting to a variant with no private adapters")
	}
}

func TestConvertToFromPublicEd25519RoundTrip(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	p, err := ed25519Variant.ConvertFromPublic(pub)
	if err != nil {
		t.Fatal(err)
	}
	obj, err := ed25519Variant.ConvertToFromPublic(p, ed25519PublicKeyGoType)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := obj.(ed25519.PublicKey)
	if !ok {
		t.Fatalf("expected ed25519.PublicKey, got %T", obj)
	}
	if !reflect.DeepEqual([]byte(got), []byte(pub)) {
		t.Fatal("round-trip produced a different public key")
	}
}
