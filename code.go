package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// maxCodeSize is the deepest a leaf can sit in a Tree built over a byte
// alphabet (256 leaves, fully skewed).
const maxCodeSize = 255

// Code represents a sequence of bits: the path from the root of a Tree to
// one of its leaves, with 0 meaning "left" and 1 meaning "right".
//
// Codes are immutable; Append returns a new Code.
type Code struct {
	size uint

	// bits holds the bits packed most significant bit first.  Bits past
	// size are always zero.
	bits []byte
}

// ParseCode constructs a Code from a string of '0' and '1' characters.
func ParseCode(str string) (Code, error) {
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("invalid character %q at index %d in code %q", str[i], i, str)
		}
	}
	return hc, nil
}

// MustParseCode is like ParseCode, but panics on error.
func MustParseCode(str string) Code {
	hc, err := ParseCode(str)
	if err != nil {
		panic(err)
	}
	return hc
}

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return int(hc.size)
}

// Bit returns the i'th bit of this Code, either 0 or 1.
func (hc Code) Bit(i int) byte {
	assert.Assertf(i >= 0 && uint(i) < hc.size, "bit index %d out of range [0, %d)", i, hc.size)
	return (hc.bits[i>>3] >> (7 - uint(i&7))) & 1
}

// Append returns a new Code consisting of this Code followed by bit.
func (hc Code) Append(bit byte) Code {
	assert.Assertf(bit <= 1, "bit %d is not 0 or 1", bit)
	assert.Assertf(hc.size < maxCodeSize, "code size %d exceeds maximum %d", hc.size+1, maxCodeSize)

	size := hc.size + 1
	bits := make([]byte, (size+7)>>3)
	copy(bits, hc.bits)
	if bit != 0 {
		bits[hc.size>>3] |= 0x80 >> (hc.size & 7)
	}
	return Code{size: size, bits: bits}
}

// HasPrefix returns true iff prefix is a (not necessarily proper) prefix of
// this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.size > hc.size {
		return false
	}
	for i := 0; i < int(prefix.size); i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// Equal returns true iff both Codes hold the same bit sequence.
func (hc Code) Equal(other Code) bool {
	return hc.size == other.size && hc.HasPrefix(other)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.size == 0 {
		return "\"\""
	}
	var buf strings.Builder
	buf.Grow(int(hc.size))
	for i := 0; i < int(hc.size); i++ {
		buf.WriteByte('0' + hc.Bit(i))
	}
	return strconv.Quote(buf.String())
}

var _ fmt.Stringer = Code{}
