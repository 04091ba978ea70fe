package leb128

import (
	"io"
)

// MaxLen64 is the maximum number of bytes in the encoding of a 64-bit
// unsigned integer: ceil(64 / 7).
const MaxLen64 = 10

const continueBit = 1 << 7

// Encode writes the Little Endian Base 128 representation of value into
// the first capacity bytes of buf and returns the number of bytes
// written. If capacity is exhausted before the encoding is complete the
// written bytes are a prefix of the full encoding and will not decode
// back to value; no error is reported. Use PutUint64 to detect this.
//
// buf must have room for at least capacity bytes. Encode never touches
// buf beyond index capacity-1.
func Encode(value uint64, buf []byte, capacity int) int {
	written := 0

	for {
		b := byte(value) &^ continueBit

		// Move to the next group of 7 bits.
		value >>= 7

		// If there are more bytes following we need to set the continue bit.
		if value != 0 {
			b |= continueBit
		}

		if written >= capacity {
			return written
		}

		buf[written] = b
		written++

		if value == 0 {
			return written
		}
	}
}

// Len returns the number of bytes in the encoding of v. The result is
// always between 1 and MaxLen64.
func Len(v uint64) int {
	n := 1
	for v >>= 7; v != 0; v >>= 7 {
		n++
	}
	return n
}

// PutUint64 encodes v into buf exactly like Encode with the buffer's
// length as capacity, and additionally reports whether the full encoding
// fit. When complete is false the output is a truncated prefix.
func PutUint64(buf []byte, v uint64) (n int, complete bool) {
	n = Encode(v, buf, len(buf))
	return n, n == Len(v)
}

// AppendUint64 appends the full encoding of v to buf and returns the
// extended slice.
func AppendUint64(buf []byte, v uint64) []byte {
	for v >= continueBit {
		buf = append(buf, byte(v)|continueBit)
		v >>= 7
	}
	return append(buf, byte(v))
}

// WriteUint64 writes the full encoding of v to w and returns the number
// of bytes written.
func WriteUint64(w io.ByteWriter, v uint64) (int, error) {
	n := 0

	for {
		b := byte(v) &^ continueBit
		v >>= 7
		if v != 0 {
			b |= continueBit
		}

		if err := w.WriteByte(b); err != nil {
			return n, err
		}
		n++

		if v == 0 {
			return n, nil
		}
	}
}
