package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	var stderr strings.Builder

	cfg, err := parseArgs([]string{"compress", "a.txt"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "a.txt.huff", cfg.Output)
	assert.Equal(t, "a.txt.huff.freq.json", cfg.freqPath())

	cfg, err = parseArgs([]string{"-v", "decompress", "a.txt.huff"}, &stderr)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "a.txt", cfg.Output)
	assert.Equal(t, "a.txt.huff.freq.json", cfg.freqPath())

	cfg, err = parseArgs([]string{"-o", "b.txt", "decompress", "a.bin"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "b.txt", cfg.Output)

	for _, args := range [][]string{
		{},
		{"compress"},
		{"explode", "a.txt"},
		{"decompress", "a.txt"},
		{"decompress", ".huff"},
	} {
		_, err := parseArgs(args, &stderr)
		assert.Error(t, err, "%q", args)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "hello.txt")
	out := filepath.Join(dir, "hello.out")
	content := "hello, hello, hello world\n"
	require.NoError(t, os.WriteFile(src, []byte(content), 0o666))

	var stderr strings.Builder
	require.Equal(t, 0, run([]string{"-v", "compress", src}, &stderr), stderr.String())
	assert.FileExists(t, src+".huff")
	assert.FileExists(t, src+".huff.freq.json")
	assert.Contains(t, stderr.String(), "[INFO]")

	require.Equal(t, 0, run([]string{"-o", out, "decompress", src + ".huff"}, &stderr), stderr.String())
	actual, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, content, string(actual))

	// Corrupt the compressed file: cut off everything after the first byte.
	require.NoError(t, os.WriteFile(src+".huff", []byte{0x4f}, 0o666))
	stderr.Reset()
	assert.Equal(t, 3, run([]string{"-o", out, "decompress", src + ".huff"}, &stderr))
	assert.Contains(t, stderr.String(), "[ERROR]")

	assert.Equal(t, 1, run([]string{"compress", filepath.Join(dir, "missing")}, &stderr))
	assert.Equal(t, 2, run([]string{"bogus"}, &stderr))
}
