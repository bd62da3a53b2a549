package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Config holds the settings for one invocation of huff.
type Config struct {
	// Mode is "compress" or "decompress".
	Mode string
	// Input is the file to read.
	Input string
	// Output is the file to write.  Derived from Input if not set.
	Output string
	// Suffix is appended to compressed file names.
	Suffix string
	// FreqSuffix is appended to the compressed file name to name the
	// frequency table sidecar.
	FreqSuffix string
	// Verbose enables informational logging.
	Verbose bool
}

// Default returns the default Config.
func Default() *Config {
	return &Config{
		Mode:       "compress",
		Suffix:     ".huff",
		FreqSuffix: ".freq.json",
	}
}

const usage = "usage: huff [-v] [-o output] (compress|decompress) file"

// parseArgs builds a Config from command-line arguments.
func parseArgs(args []string, stderr io.Writer) (*Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("huff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprintln(stderr, usage) }
	fs.StringVar(&cfg.Output, "o", "", "output file")
	fs.StringVar(&cfg.Suffix, "suffix", cfg.Suffix, "compressed file suffix")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() != 2 {
		return nil, fmt.Errorf("expected 2 arguments, got %d\n%s", fs.NArg(), usage)
	}
	cfg.Mode, cfg.Input = fs.Arg(0), fs.Arg(1)

	switch cfg.Mode {
	case "compress":
		if cfg.Output == "" {
			cfg.Output = cfg.Input + cfg.Suffix
		}
	case "decompress":
		if cfg.Output == "" {
			if !strings.HasSuffix(cfg.Input, cfg.Suffix) || len(cfg.Input) == len(cfg.Suffix) {
				return nil, fmt.Errorf("file to decompress must be named something%s, or use -o", cfg.Suffix)
			}
			cfg.Output = strings.TrimSuffix(cfg.Input, cfg.Suffix)
		}
	default:
		return nil, fmt.Errorf("unknown mode %q\n%s", cfg.Mode, usage)
	}
	return cfg, nil
}

// freqPath names the frequency table sidecar of a compressed file.
func (cfg *Config) freqPath() string {
	if cfg.Mode == "compress" {
		return cfg.Output + cfg.FreqSuffix
	}
	return cfg.Input + cfg.FreqSuffix
}
