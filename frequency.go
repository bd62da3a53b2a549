package huffman

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	json "github.com/json-iterator/go"
)

// Frequencies maps each Symbol seen in an input to its number of
// occurrences.  Symbols that never occurred are absent.  A Frequencies
// value is not modified after it has been built.
type Frequencies map[Symbol]uint64

// CountFrequencies reads r to the end and counts how many times each Symbol
// occurs.  An empty input yields an empty, non-nil Frequencies.
func CountFrequencies(r io.Reader) (Frequencies, error) {
	var counts [int(MaxSymbol) + 1]uint64

	var buf [4096]byte
	for {
		n, err := r.Read(buf[:])
		for _, ch := range buf[:n] {
			counts[ch]++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &IOError{Op: "read", Err: err}
		}
	}

	freqs := make(Frequencies)
	for symbol, count := range counts {
		if count != 0 {
			freqs[Symbol(symbol)] = count
		}
	}
	return freqs, nil
}

// CountFileFrequencies is like CountFrequencies, but reads the named file.
func CountFileFrequencies(path string) (freqs Frequencies, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		closeErr := f.Close()
		if closeErr != nil && err == nil {
			freqs, err = nil, &IOError{Op: "close", Path: path, Err: closeErr}
		}
	}()

	freqs, err = CountFrequencies(f)
	if ioErr, ok := err.(*IOError); ok {
		ioErr.Path = path
	}
	return freqs, err
}

// Symbols returns the Symbols present in this Frequencies, in ascending
// order.
func (freqs Frequencies) Symbols() []Symbol {
	out := make([]Symbol, 0, len(freqs))
	for symbol := range freqs {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Total returns the sum of all counts, i.e. the length of the input.
func (freqs Frequencies) Total() uint64 {
	var sum uint64
	for _, count := range freqs {
		sum += count
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of this Frequencies to
// the given writer.
func (freqs Frequencies) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Frequencies{\n")
	for _, symbol := range freqs.Symbols() {
		fmt.Fprintf(&buf, "\t%v: %d\n", symbol, freqs[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type frequencyEntry struct {
	Symbol Symbol `json:"s"`
	Count  uint64 `json:"n"`
}

// MarshalJSON encodes this Frequencies as a list of {"s":symbol,"n":count}
// objects in ascending Symbol order.  Because BuildTree is deterministic,
// the encoded form is enough to rebuild the same Tree elsewhere.
func (freqs Frequencies) MarshalJSON() ([]byte, error) {
	entries := make([]frequencyEntry, 0, len(freqs))
	for _, symbol := range freqs.Symbols() {
		entries = append(entries, frequencyEntry{symbol, freqs[symbol]})
	}
	return json.Marshal(entries)
}

// UnmarshalJSON decodes the output of MarshalJSON.
func (freqs *Frequencies) UnmarshalJSON(raw []byte) error {
	var entries []frequencyEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return err
	}
	out := make(Frequencies, len(entries))
	var total uint64
	for _, entry := range entries {
		if _, dup := out[entry.Symbol]; dup {
			return fmt.Errorf("duplicate symbol %v in frequency table", entry.Symbol)
		}
		if total+entry.Count < total {
			return fmt.Errorf("frequency table total overflows at symbol %v", entry.Symbol)
		}
		total += entry.Count
		out[entry.Symbol] = entry.Count
	}
	*freqs = out
	return nil
}
