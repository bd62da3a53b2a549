package huffman

import (
	"errors"
	"fmt"
)

// ErrFormat is returned (wrapped) by Decompress when the compressed input
// is truncated or corrupt.  Use errors.Is to test for it.
var ErrFormat = errors.New("malformed Huffman bitstream")

// IOError reports a failure of the underlying byte stream.
type IOError struct {
	// Op is the failed operation: "open", "create", "read", "write", or
	// "close".
	Op string

	// Path is the file name, or empty if the stream was not opened by
	// this package.
	Path string

	Err error
}

// Error fulfills the error interface.
func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("huffman: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("huffman: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// UnknownSymbolError is returned by Compress when the input contains a
// Symbol that has no entry in the Table.  This means the Table was built
// from some other input.
type UnknownSymbolError struct {
	Symbol Symbol

	// Offset is the byte offset of the Symbol in the input.
	Offset int64
}

// Error fulfills the error interface.
func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffman: symbol %v at offset %d is not in the code table", e.Symbol, e.Offset)
}

func formatErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrFormat}, args...)...)
}

var (
	_ error = (*IOError)(nil)
	_ error = (*UnknownSymbolError)(nil)
)
