/*
Package trie implements the compiled dictionary's on-disk and in-memory
representation: a flat, byte-addressable array of tagged node records
produced once at compile time (Flatten) and read many times at query time
(Reader) without ever reconstructing a pointer-based tree.

Every sibling group of the build-time pkg/patricia trie is reduced by
pkg/heuristic to a short run of slots, each slot becoming exactly one
record in the flat array:

	Naive     a single Unicode scalar
	Patricia  an inline multi-scalar label (tchap's patricia package calls
	          this a "prefix"; here it's just []rune bytes inline)
	Range     a contiguous lexicographic run of single-scalar siblings,
	          some of which may be absent, stored as one record

Records are variable length, so a parallel offset table (one uint32 per
global slot index) gives O(1) random access into the record blob; every
node within one sibling group occupies a contiguous run of global indices,
which is what lets exact search (Reader.FindChild) binary-search a group
instead of scanning it.

The file format:

	magic        [4]byte  "VGT1"
	endianness   byte     0x01 little-endian, 0x02 big-endian; this package
	                      only ever writes 0x01 and rejects anything else,
	                      so a file produced on a foreign-arch build is
	                      caught instead of silently misparsed
	version      byte     1
	reserved     [2]byte  zero
	nodeCount    uint32   total slot records in the array
	arrayOffset  uint32   byte offset of the offset table (immediately
	                      after this header)
	... nodeCount x uint32 offset table ...
	... record blob ...
*/
package trie

import "errors"

const (
	magic         = "VGT1"
	endianLittle  = byte(0x01)
	formatVersion = byte(1)
	headerSize    = 4 + 1 + 1 + 2 + 4 + 4 // magic + endian + version + reserved + nodeCount + arrayOffset
)

// Shape tags a flat-array record. Values are the on-disk tag byte.
type Shape byte

const (
	ShapeNaive    Shape = 0
	ShapePatricia Shape = 1
	ShapeRange    Shape = 2
)

// noChild marks a record's firstChildIndex field as absent. Index 0 is
// always the root, so it can never legitimately be a child of anything.
const noChild = ^uint32(0)

// FormatMismatch is returned when a file's magic, endianness marker, or
// version doesn't match what this package writes and reads.
var FormatMismatch = errors.New("trie: format mismatch")

// FormatTruncated is returned by NewReader when a file is shorter than the
// header itself or than the offset table the header describes. Record
// bytes and child indices are not checked: a record or child index that
// lies past the end of the data makes Reader.Node panic.
var FormatTruncated = errors.New("trie: format truncated")
