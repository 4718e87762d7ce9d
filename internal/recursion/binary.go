package recursion

import (
	"fmt"
	"io"
)

// WriteBinary writes the binary representation of x to w, most significant
// bit first. The remainder is written after the recursive call, which
// reverses the bottom-up order in which the bits are produced.
//
// An input of 0 writes nothing: the base case returns before any output.
func WriteBinary(w io.Writer, x uint64) {
	if x == 0 {
		return
	}
	WriteBinary(w, x/2)
	fmt.Fprintf(w, "%d", x%2)
}

// FixedBinaryWidth is the bit width used by WriteBinaryFixed.
const FixedBinaryWidth = 32

// WriteBinaryFixed writes the 32-bit two's-complement bit pattern of x to w
// as a fixed-width binary string. Negative inputs are reinterpreted as
// unsigned: the bit pattern is identical, only the decimal reading differs.
// Unlike WriteBinary, an input of 0 produces 32 zero characters.
func WriteBinaryFixed(w io.Writer, x int32) {
	writeFixedBits(w, uint32(x), FixedBinaryWidth)
}

// writeFixedBits recurses on the high bits first, then emits the lowest bit,
// padding with leading zeros to exactly width characters.
func writeFixedBits(w io.Writer, x uint32, width int) {
	if width == 0 {
		return
	}
	writeFixedBits(w, x/2, width-1)
	fmt.Fprintf(w, "%d", x%2)
}
