package huffman

import (
	"bufio"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Packed bitstream layout:
//
//     data byte 0 .. data byte N-1, trailer
//
// Bits are packed most significant bit first.  The trailer holds the number
// of meaningful bits (1..8) in data byte N-1; the rest of that byte is zero
// padding.  A bitstream with no bits at all is zero bytes long, with no
// trailer.

// bitWriter packs bits into bytes.  Write errors are sticky and reported by
// writeCode, close, and err.
type bitWriter struct {
	w     *bufio.Writer
	err   error
	cur   byte
	nbits uint // number of bits in cur; always < 8
	any   bool // true once a full byte has been written
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{w: bufio.NewWriter(w)}
}

func (bw *bitWriter) writeBit(bit byte) {
	bw.cur |= bit << (7 - bw.nbits)
	bw.nbits++
	if bw.nbits == 8 {
		bw.writeByte(bw.cur)
		bw.cur = 0
		bw.nbits = 0
		bw.any = true
	}
}

func (bw *bitWriter) writeCode(hc Code) error {
	for i := 0; i < hc.Len(); i++ {
		bw.writeBit(hc.Bit(i))
	}
	return bw.err
}

func (bw *bitWriter) writeByte(ch byte) {
	if bw.err != nil {
		return
	}
	if err := bw.w.WriteByte(ch); err != nil {
		bw.err = &IOError{Op: "write", Err: err}
	}
}

// close writes the final partial byte and the trailer, then flushes.  It
// does not close the underlying writer.
func (bw *bitWriter) close() error {
	switch {
	case bw.nbits != 0:
		assert.Assertf(bw.nbits < 8, "nbits %d >= 8", bw.nbits)
		bw.writeByte(bw.cur)
		bw.writeByte(byte(bw.nbits))
	case bw.any:
		bw.writeByte(8)
	}
	bw.cur, bw.nbits = 0, 0
	return bw.flush()
}

func (bw *bitWriter) flush() error {
	if bw.err != nil {
		return bw.err
	}
	if err := bw.w.Flush(); err != nil {
		bw.err = &IOError{Op: "write", Err: err}
	}
	return bw.err
}

// bitReader unpacks bits written by bitWriter.
type bitReader struct {
	r     *bufio.Reader
	cur   byte
	nbits uint // unread bits left in cur
	last  bool // cur is the final data byte
	off   int64
}

func newBitReader(r io.Reader) *bitReader {
	return &bitReader{r: bufio.NewReader(r)}
}

// readBit returns the next bit, or io.EOF once every meaningful bit has been
// read.
func (br *bitReader) readBit() (byte, error) {
	if br.nbits == 0 {
		if err := br.fill(); err != nil {
			return 0, err
		}
	}
	bit := br.cur >> 7
	br.cur <<= 1
	br.nbits--
	return bit, nil
}

func (br *bitReader) fill() error {
	if br.last {
		return io.EOF
	}

	ch, err := br.r.ReadByte()
	if err == io.EOF {
		// Only reachable before the first byte: later bytes are
		// always followed by at least the trailer.
		return io.EOF
	}
	if err != nil {
		return &IOError{Op: "read", Err: err}
	}
	br.off++

	ahead, err := br.r.Peek(2)
	switch {
	case len(ahead) == 2:
		br.cur, br.nbits = ch, 8
		return nil

	case len(ahead) == 1 && err == io.EOF:
		trailer := ahead[0]
		if trailer == 0 || trailer > 8 {
			return formatErrorf("trailer byte at offset %d is %d, expected 1..8", br.off, trailer)
		}
		if _, err := br.r.Discard(1); err != nil {
			return &IOError{Op: "read", Err: err}
		}
		br.off++
		br.cur, br.nbits, br.last = ch, uint(trailer), true
		return nil

	case err == io.EOF:
		return formatErrorf("stream of %d byte(s) has no trailer", br.off)

	default:
		return &IOError{Op: "read", Err: err}
	}
}
