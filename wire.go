package opensshkey

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"
)

// Reader is a cursor over an in-memory buffer that decodes the primitive
// wire types OpenSSH key blobs are built from. It owns only the buffer it
// was constructed with; nothing it does can block or suspend.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps b for reading. b is not copied; callers must not mutate
// it while the Reader is in use.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Remaining returns the bytes not yet consumed.
func (r *Reader) Remaining() []byte {
	return r.buf[r.pos:]
}

// ReadFixed consumes exactly n unprefixed bytes.
func (r *Reader) ReadFixed(n int) ([]byte, error) {
	if n < 0 || n > len(r.buf)-r.pos {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrShortRead, n, len(r.buf)-r.pos)
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadUint32 reads a big-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.ReadFixed(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadUint64 reads a big-endian uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.ReadFixed(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadU8 reads a single unprefixed byte.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.ReadFixed(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadLengthPrefixed reads a uint32 length L followed by L bytes.
func (r *Reader) ReadLengthPrefixed() ([]byte, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	return r.ReadFixed(int(n))
}

// ReadString reads a length-prefixed UTF-8 string.
func (r *Reader) ReadString() (string, error) {
	b, err := r.ReadLengthPrefixed()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadBytes reads a length-prefixed opaque byte sequence. The returned
// slice is a copy; it does not alias the Reader's backing buffer.
func (r *Reader) ReadBytes() ([]byte, error) {
	b, err := r.ReadLengthPrefixed()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// ReadMPInt reads a length-prefixed SSH mpint. A zero-length field decodes
// to zero. Non-minimal encodings (a redundant leading 0x00, or a leading
// 0xFF that adds no information) are accepted on read.
func (r *Reader) ReadMPInt() (*big.Int, error) {
	b, err := r.ReadLengthPrefixed()
	if err != nil {
		return nil, err
	}
	return decodeMPInt(b), nil
}

func decodeMPInt(b []byte) *big.Int {
	n := new(big.Int)
	if len(b) == 0 {
		return n
	}
	if b[0]&0x80 == 0 {
		return n.SetBytes(b)
	}
	// Negative: b is the two's-complement representation. Recover the
	// magnitude by inverting every bit and adding one, then negate.
	inv := make([]byte, len(b))
	for i, c := range b {
		inv[i] = ^c
	}
	mag := new(big.Int).SetBytes(inv)
	mag.Add(mag, big.NewInt(1))
	return n.Neg(mag)
}

// Writer accumulates encoded wire bytes. Encoding is deterministic: the
// same sequence of writes always produces the same bytes.
type Writer struct {
	buf bytes.Buffer
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// WriteFixed writes b with no length prefix.
func (w *Writer) WriteFixed(b []byte) {
	w.buf.Write(b)
}

// WriteUint32 writes v big-endian.
func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// WriteUint64 writes v big-endian.
func (w *Writer) WriteUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// WriteU8 writes a single byte.
func (w *Writer) WriteU8(v uint8) {
	w.buf.WriteByte(v)
}

func (w *Writer) writeLengthPrefixed(b []byte) {
	w.WriteUint32(uint32(len(b)))
	w.buf.Write(b)
}

// WriteString writes s length-prefixed.
func (w *Writer) WriteString(s string) {
	w.writeLengthPrefixed([]byte(s))
}

// WriteBytes writes b length-prefixed.
func (w *Writer) WriteBytes(b []byte) {
	w.writeLengthPrefixed(b)
}

// WriteMPInt writes n as a canonical, minimal SSH mpint: zero emits a
// zero-length field, non-negative values whose top bit would otherwise be
// set gain a single leading zero byte, and negative values are encoded in
// the shortest two's-complement form that still carries their sign.
func (w *Writer) WriteMPInt(n *big.Int) {
	w.writeLengthPrefixed(encodeMPInt(n))
}

func encodeMPInt(n *big.Int) []byte {
	switch n.Sign() {
	case 0:
		return nil
	case 1:
		b := n.Bytes()
		if len(b) > 0 && b[0]&0x80 != 0 {
			out := make([]byte, len(b)+1)
			copy(out[1:], b)
			return out
		}
		return b
	default:
		// Minimal byte length for two's complement: one more than the
		// number of bits needed to hold |n|-1, rounded up to a byte.
		magLessOne := new(big.Int).Neg(n)
		magLessOne.Sub(magLessOne, big.NewInt(1))
		bitsNeeded := magLessOne.BitLen() + 1
		byteLen := (bitsNeeded + 7) / 8

		mod := new(big.Int).Lsh(big.NewInt(1), uint(byteLen*8))
		twosComplement := mod.Add(mod, n)
		b := twosComplement.Bytes()
		if len(b) == byteLen {
			return b
		}
		out := make([]byte, byteLen)
		copy(out[byteLen-len(b):], b)
		return out
	}
}
