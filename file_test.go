package huffman

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, content := range []string{"", "AAAA", "hello", uniuri.NewLen(5000)} {
		src := filepath.Join(dir, "input.txt")
		packed := filepath.Join(dir, "input.txt.huff")
		unpacked := filepath.Join(dir, "output.txt")
		require.NoError(t, os.WriteFile(src, []byte(content), 0o666))

		freqs, err := CountFileFrequencies(src)
		require.NoError(t, err)
		tree := BuildTree(freqs)

		require.NoError(t, CompressFile(BuildTable(tree), src, packed))
		require.NoError(t, DecompressFile(packed, unpacked, tree))

		actual, err := os.ReadFile(unpacked)
		require.NoError(t, err)
		assert.Equal(t, content, string(actual))
	}
}

func TestFile_Missing(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing")
	out := filepath.Join(dir, "out")

	_, err := CountFileFrequencies(missing)
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "open", ioErr.Op)
	assert.Equal(t, missing, ioErr.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	err = CompressFile(Table{}, missing, out)
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "open", ioErr.Op)

	err = DecompressFile(missing, out, BuildTree(Frequencies{'a': 1, 'b': 1}))
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "open", ioErr.Op)
	assert.NoFileExists(t, out)
}

func TestFile_Errors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(src, []byte("help"), 0o666))

	table := BuildTable(BuildTree(Frequencies{'h': 1, 'e': 1, 'l': 2, 'o': 1}))
	err := CompressFile(table, src, filepath.Join(dir, "input.txt.huff"))
	var unknown *UnknownSymbolError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, Symbol('p'), unknown.Symbol)

	corrupt := filepath.Join(dir, "corrupt.huff")
	require.NoError(t, os.WriteFile(corrupt, []byte{0x48, 0x05}, 0o666))
	err = DecompressFile(corrupt, filepath.Join(dir, "out"), BuildTree(Frequencies{'h': 1, 'e': 1, 'l': 2, 'o': 1}))
	assert.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), corrupt)
}
