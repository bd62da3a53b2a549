package huffman

import (
	"bufio"
	"io"
	"os"
)

// Compress reads Symbols from r until EOF and writes the concatenation of
// their Codes to w as a packed bitstream.  Buffered output is flushed
// before Compress returns, on success or failure; w itself is not closed.
//
// An empty input produces no output at all.  If the input contains a Symbol
// not present in table, Compress returns *UnknownSymbolError.
//
func Compress(table Table, r io.Reader, w io.Writer) (err error) {
	bw := newBitWriter(w)
	defer func() {
		flushErr := bw.close()
		if err == nil {
			err = flushErr
		}
	}()

	br := bufio.NewReader(r)
	for offset := int64(0); ; offset++ {
		ch, err := br.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &IOError{Op: "read", Err: err}
		}

		symbol := Symbol(ch)
		hc, found := table[symbol]
		if !found {
			return &UnknownSymbolError{Symbol: symbol, Offset: offset}
		}
		if err := bw.writeCode(hc); err != nil {
			return err
		}
	}
}

// CompressFile is like Compress, but reads the file named srcPath and
// creates (or truncates) the file named dstPath.  Both files are closed
// before CompressFile returns.
func CompressFile(table Table, srcPath, dstPath string) (err error) {
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

	err = Compress(table, src, dst)
	return withPath(err, srcPath, dstPath)
}

// closeFile closes f and reports a close failure through errp, unless an
// earlier error is already there.
func closeFile(f *os.File, path string, errp *error) {
	closeErr := f.Close()
	if closeErr != nil && *errp == nil {
		*errp = &IOError{Op: "close", Path: path, Err: closeErr}
	}
}

// withPath fills in IOError.Path: reads come from src, writes go to dst.
func withPath(err error, src, dst string) error {
	if ioErr, ok := err.(*IOError); ok && ioErr.Path == "" {
		switch ioErr.Op {
		case "read":
			ioErr.Path = src
		case "write":
			ioErr.Path = dst
		}
	}
	return err
}
