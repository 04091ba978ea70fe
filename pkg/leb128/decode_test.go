package leb128

import (
	"bytes"
	"testing"
)

func TestDecodeKnownVectors(t *testing.T) {
	tc := []struct {
		buf []byte
		v   uint64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x7f}, 0x7f},
		{[]byte{0xAC, 0x02}, 300},
		{[]byte{0xE5, 0x8E, 0x26}, 624485},
	}
	for i := range tc {
		if v := Decode(tc[i].buf, len(tc[i].buf)); v != tc[i].v {
			t.Errorf("Decode(% x) = %d, want %d", tc[i].buf, v, tc[i].v)
		}
		v, n, err := Uint64(tc[i].buf)
		if err != nil {
			t.Fatal(err)
		}
		if v != tc[i].v || n != len(tc[i].buf) {
			t.Errorf("Uint64(% x) = (%d, %d), want (%d, %d)", tc[i].buf, v, n, tc[i].v, len(tc[i].buf))
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	if v := Decode(nil, 0); v != 0 {
		t.Errorf("Decode(nil, 0) = %d, want 0", v)
	}
	if v := Decode([]byte{0xAC, 0x02}, 0); v != 0 {
		t.Errorf("Decode with length 0 = %d, want 0", v)
	}
	if _, _, err := Uint64(nil); err != ErrTruncated {
		t.Errorf("Uint64(nil) error = %v, want ErrTruncated", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	// First byte of the encoding of 300, continuation bit still set.
	buf := []byte{0xAC}

	if v := Decode(buf, 1); v != 0 {
		t.Errorf("Decode of truncated input = %d, want sentinel 0", v)
	}
	if _, _, err := Uint64(buf); err != ErrTruncated {
		t.Errorf("Uint64 of truncated input error = %v, want ErrTruncated", err)
	}
}

func TestDecodeOverflow(t *testing.T) {
	// Ten bytes, all with the continuation bit set. The tenth byte
	// promises an eleventh, which no 64-bit value can need.
	buf := bytes.Repeat([]byte{0x80 | 0x01}, 10)

	if v := Decode(buf, len(buf)); v != 0 {
		t.Errorf("Decode of overlong input = %d, want sentinel 0", v)
	}
	if _, _, err := Uint64(buf); err != ErrOverflow {
		t.Errorf("Uint64 of overlong input error = %v, want ErrOverflow", err)
	}

	// A tenth byte wider than a single bit exceeds 64 bits even with the
	// continuation bit clear.
	buf = append(bytes.Repeat([]byte{0xFF}, 9), 0x02)
	if _, _, err := Uint64(buf); err != ErrOverflow {
		t.Errorf("Uint64 of 65-bit input error = %v, want ErrOverflow", err)
	}
}

func TestDecodeTenByteBoundary(t *testing.T) {
	// The largest 64-bit value needs all ten bytes; the sentinel decoder
	// rejects every ten-byte encoding at shift 63, Uint64 accepts them.
	enc := AppendUint64(nil, ^uint64(0))
	if len(enc) != MaxLen64 {
		t.Fatalf("encoding of max uint64 is %d bytes, want %d", len(enc), MaxLen64)
	}

	if v := Decode(enc, len(enc)); v != 0 {
		t.Errorf("sentinel decode of ten-byte input = %d, want 0", v)
	}

	v, n, err := Uint64(enc)
	if err != nil {
		t.Fatal(err)
	}
	if v != ^uint64(0) || n != MaxLen64 {
		t.Errorf("Uint64 = (%#x, %d), want (%#x, %d)", v, n, ^uint64(0), MaxLen64)
	}

	v, n, err = Uint64(AppendUint64(nil, 1<<63))
	if err != nil {
		t.Fatal(err)
	}
	if v != 1<<63 || n != MaxLen64 {
		t.Errorf("Uint64 = (%#x, %d), want (%#x, %d)", v, n, uint64(1)<<63, MaxLen64)
	}
}

func TestRoundTrip(t *testing.T) {
	var tc []uint64
	for shift := uint(0); shift < 63; shift++ {
		tc = append(tc, uint64(1)<<shift, uint64(1)<<shift-1, uint64(1)<<shift+1)
	}
	tc = append(tc, 300, 624485, 1<<63-1)

	buf := make([]byte, MaxLen64)
	for i := range tc {
		n := Encode(tc[i], buf, MaxLen64)
		if v := Decode(buf, n); v != tc[i] {
			t.Errorf("round trip of %#x through % x gave %#x", tc[i], buf[:n], v)
		}
		v, c, err := Uint64(buf[:n])
		if err != nil {
			t.Fatal(err)
		}
		if v != tc[i] || c != n {
			t.Errorf("Uint64 round trip of %#x gave (%#x, %d)", tc[i], v, c)
		}
	}
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	buf := []byte{0xAC, 0x02, 0xFF, 0xFF}

	if v := Decode(buf, len(buf)); v != 300 {
		t.Errorf("Decode = %d, want 300", v)
	}
	v, n, err := Uint64(buf)
	if err != nil {
		t.Fatal(err)
	}
	if v != 300 || n != 2 {
		t.Errorf("Uint64 = (%d, %d), want (300, 2)", v, n)
	}
}

func TestReadUint64(t *testing.T) {
	leb := bytes.NewBuffer([]byte{0xE5, 0x8E, 0x26})

	v, c, err := ReadUint64(leb)
	if err != nil {
		t.Fatal(err)
	}
	if v != 624485 {
		t.Fatal("number was not decoded properly, got: ", v, c)
	}
	if c != 3 {
		t.Fatal("count not returned correctly")
	}
}

func TestReadUint64Errors(t *testing.T) {
	if _, _, err := ReadUint64(bytes.NewReader(nil)); err != ErrTruncated {
		t.Errorf("empty reader error = %v, want ErrTruncated", err)
	}
	if _, _, err := ReadUint64(bytes.NewReader([]byte{0xAC})); err != ErrTruncated {
		t.Errorf("truncated reader error = %v, want ErrTruncated", err)
	}
	overlong := bytes.Repeat([]byte{0x81}, 10)
	if _, _, err := ReadUint64(bytes.NewReader(overlong)); err != ErrOverflow {
		t.Errorf("overlong reader error = %v, want ErrOverflow", err)
	}
}
