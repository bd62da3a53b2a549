// Command huff compresses and decompresses files with a Huffman code.
//
//     huff compress file       writes file.huff and file.huff.freq.json
//     huff decompress file.huff
//
// The .freq.json sidecar holds the frequency table.  The code tree is
// rebuilt from it on decompression.
package main

import (
	"errors"
	"io"
	"os"

	huffman "github.com/chronos-tachyon/huffman-tree"
	"github.com/chronos-tachyon/huffman-tree/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		logger.New(stderr, false).Errorf("%v", err)
		return 2
	}
	logg := logger.New(stderr, cfg.Verbose)

	switch cfg.Mode {
	case "compress":
		err = compress(cfg, logg)
	case "decompress":
		err = decompress(cfg, logg)
	}
	if err != nil {
		logg.Errorf("%s %s: %v", cfg.Mode, cfg.Input, err)
		var unknown *huffman.UnknownSymbolError
		if errors.Is(err, huffman.ErrFormat) || errors.As(err, &unknown) {
			return 3
		}
		return 1
	}
	return 0
}

func compress(cfg *Config, logg logger.Logger) error {
	freqs, err := huffman.CountFileFrequencies(cfg.Input)
	if err != nil {
		return err
	}
	tree := huffman.BuildTree(freqs)
	table := huffman.BuildTable(tree)

	if err := huffman.CompressFile(table, cfg.Input, cfg.Output); err != nil {
		return err
	}
	if err := writeFrequencies(cfg.freqPath(), freqs); err != nil {
		return err
	}

	bits, _ := table.EncodedSize(freqs)
	total := freqs.Total()
	if total == 0 {
		logg.Infof("%s: empty input", cfg.Input)
	} else {
		logg.Infof("%s: %d symbols (%d distinct) -> %d bits, %.1f%% of original",
			cfg.Input, total, len(freqs), bits, 100*float64(bits)/float64(8*total))
	}
	logg.Infof("wrote %s and %s", cfg.Output, cfg.freqPath())
	return nil
}

func decompress(cfg *Config, logg logger.Logger) error {
	freqs, err := readFrequencies(cfg.freqPath())
	if err != nil {
		return err
	}
	tree := huffman.BuildTree(freqs)

	if err := huffman.DecompressFile(cfg.Input, cfg.Output, tree); err != nil {
		return err
	}
	logg.Infof("wrote %s (%d symbols)", cfg.Output, tree.Weight())
	return nil
}

func writeFrequencies(path string, freqs huffman.Frequencies) error {
	raw, err := freqs.MarshalJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, raw, 0o666); err != nil {
		return &huffman.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func readFrequencies(path string) (huffman.Frequencies, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &huffman.IOError{Op: "read", Path: path, Err: err}
	}
	var freqs huffman.Frequencies
	if err := freqs.UnmarshalJSON(raw); err != nil {
		return nil, err
	}
	return freqs, nil
}
