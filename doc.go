// Package huffman implements classic Huffman coding over a byte alphabet.
//
// The pipeline has four stages, each consuming the previous one's output:
//
//     CountFrequencies → BuildTree → BuildTable → Compress
//
// and the Tree returned by BuildTree is handed to Decompress to invert the
// transform.  BuildTree is deterministic, so a Tree can also be rebuilt in
// another process from a saved Frequencies value.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
