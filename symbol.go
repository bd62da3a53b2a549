package huffman

import (
	"fmt"
	"math"
	"strconv"
)

// Symbol represents a symbol in the input alphabet.  Every byte value is a
// valid symbol.
type Symbol byte

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxUint8)

// String returns the string representation of this Symbol: a quoted
// character if printable ASCII, otherwise a hex byte.
func (s Symbol) String() string {
	if s < 0x20 || s >= 0x7f {
		return fmt.Sprintf("0x%02x", byte(s))
	}
	return strconv.QuoteRune(rune(s))
}

var _ fmt.Stringer = Symbol(0)
