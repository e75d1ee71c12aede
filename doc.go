// Package opensshkey reads, writes, and represents OpenSSH-format public
// and private keys: a typed wire codec over the Pascal-style byte stream
// OpenSSH uses for key material, plus a per-algorithm parameter model for
// ssh-rsa, ssh-ed25519, ssh-dss, ecdsa-sha2-nistp{256,384,521}, their
// security-key (sk-*) variants, and the corresponding certificate types.
//
// Signing, passphrase encryption of private keys, PEM/armor framing, file
// I/O, and any network transport are out of scope.
package opensshkey
