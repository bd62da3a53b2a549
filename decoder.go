package huffman

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
)

// Decompress reads a packed bitstream produced by Compress from r, walks
// the Tree once per bit, and writes each decoded Symbol to w.  Buffered
// output is flushed before Decompress returns, on success or failure; w
// itself is not closed.
//
// A nil Tree decodes to nothing, and r is not read at all.
//
// The Tree's weight is the number of Symbols to decode.  Decompress returns
// an error wrapping ErrFormat if the meaningful bits yield fewer or more
// Symbols than that, end anywhere but at the root of the Tree, or lead to a
// Placeholder.  A Tree whose weight saturated at
// math.MaxUint64 skips the count check.
//
func Decompress(r io.Reader, w io.Writer, t *Tree) (err error) {
	if t == nil {
		return nil
	}

	out := bufio.NewWriter(w)
	defer func() {
		if flushErr := out.Flush(); flushErr != nil && err == nil {
			err = &IOError{Op: "write", Err: flushErr}
		}
	}()

	br := newBitReader(r)
	var pos Node = t.root
	var depth int
	var count uint64
	want, exact := t.Weight(), t.Weight() != math.MaxUint64
	for {
		bit, err := br.readBit()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if exact && count == want {
			return formatErrorf("meaningful bits continue past symbol #%d", count)
		}

		internal := pos.(*Internal)
		if bit == 0 {
			pos = internal.Left
		} else {
			pos = internal.Right
		}
		depth++

		switch x := pos.(type) {
		case *Leaf:
			if err := out.WriteByte(byte(x.Symbol)); err != nil {
				return &IOError{Op: "write", Err: err}
			}
			pos, depth = t.root, 0
			count++
		case *Placeholder:
			return formatErrorf("code at byte offset %d after symbol #%d leads to no symbol", br.off, count)
		}
	}

	if pos != Node(t.root) {
		return formatErrorf("bitstream ends %d bit(s) into a code after symbol #%d", depth, count)
	}
	if exact && count != want {
		return formatErrorf("bitstream ends after symbol #%d of %d", count, want)
	}
	return nil
}

// DecompressFile is like Decompress, but reads the file named srcPath and
// creates (or truncates) the file named dstPath.  Both files are closed
// before DecompressFile returns.
func DecompressFile(srcPath, dstPath string, t *Tree) (err error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return &IOError{Op: "open", Path: srcPath, Err: err}
	}
	defer closeFile(src, srcPath, &err)

	dst, err := os.Create(dstPath)
	if err != nil {
		return &IOError{Op: "create", Path: dstPath, Err: err}
	}
	defer closeFile(dst, dstPath, &err)

	err = Decompress(src, dst, t)
	if err != nil && !isIOError(err) {
		return fmt.Errorf("%s: %w", srcPath, err)
	}
	return withPath(err, srcPath, dstPath)
}

func isIOError(err error) bool {
	_, ok := err.(*IOError)
	return ok
}
