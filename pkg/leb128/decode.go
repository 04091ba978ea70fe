package leb128

import (
	"errors"
	"io"
)

var (
	// ErrTruncated is returned when the input runs out of bytes before a
	// byte with a clear continuation bit is found.
	ErrTruncated = errors.New("leb128: truncated input")
	// ErrOverflow is returned when the encoded value does not fit in a
	// 64-bit unsigned integer.
	ErrOverflow = errors.New("leb128: value overflows a 64-bit integer")
)

// Reader is an io.ByteReader with a Len method. This interface is
// satisfied by both bytes.Buffer and bytes.Reader.
type Reader interface {
	io.ByteReader
	io.Reader
	Len() int
}

// Decode reads an unsigned Little Endian Base 128 represented number
// from the first length bytes of buf.
//
// Decode returns 0 both when the input legitimately encodes zero and
// when decoding fails, either because length bytes run out before a
// terminating byte or because the shift offset reaches 63 before the
// value ends. The three cases are not distinguishable by the caller;
// use Uint64 to tell them apart.
func Decode(buf []byte, length int) uint64 {
	var (
		n     uint64
		shift uint
		read  int
	)

	for {
		// EOF
		if read >= length {
			return 0
		}

		// Overflow
		if shift >= 63 {
			return 0
		}

		b := buf[read]
		read++

		// Remove the continue bit, then add the group.
		n += uint64(b&^continueBit) << shift

		// If the continue bit is 0, the integer has ended.
		if b&continueBit == 0 {
			return n
		}

		shift += 7
	}
}

// Uint64 decodes an unsigned Little Endian Base 128 represented number
// from buf, returning the value and the number of bytes consumed.
// It fails with ErrTruncated if buf ends before a terminating byte and
// with ErrOverflow if the value needs more than 64 bits. A tenth byte
// may only contribute bit 63, so any tenth byte greater than 1 is an
// overflow.
func Uint64(buf []byte) (uint64, int, error) {
	var (
		v     uint64
		shift uint
	)

	for i, b := range buf {
		if i == MaxLen64-1 && b > 1 {
			return 0, 0, ErrOverflow
		}

		v |= uint64(b&^continueBit) << shift

		if b&continueBit == 0 {
			return v, i + 1, nil
		}

		shift += 7
	}

	return 0, 0, ErrTruncated
}

// ReadUint64 decodes an unsigned Little Endian Base 128 represented
// number from r, returning the value and the number of bytes consumed.
// The failure taxonomy is the same as Uint64's.
func ReadUint64(r Reader) (uint64, uint32, error) {
	var (
		v      uint64
		shift  uint
		length uint32
	)

	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, length, ErrTruncated
		}
		length++

		if length == MaxLen64 && b > 1 {
			return 0, length, ErrOverflow
		}

		v |= uint64(b&^continueBit) << shift

		// If high order bit is 0 the integer has ended.
		if b&continueBit == 0 {
			return v, length, nil
		}

		shift += 7
	}
}
