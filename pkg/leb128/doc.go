// Package leb128 encodes and decodes unsigned integers in the Little
// Endian Base 128 format. Each encoded byte carries seven bits of the
// integer, least significant group first, and uses its high bit as a
// continuation flag: 1 means more bytes follow, 0 terminates the value.
package leb128
