package trie

import (
	"encoding/binary"
	"fmt"
)

// Reader is a read-only view over a compiled dictionary. Its backing bytes
// may be a mmap'd file or an ordinary in-memory buffer (see
// pkg/dictionary); Reader itself never does I/O.
type Reader struct {
	data        []byte
	nodeCount   uint32
	tableStart  int
	blobStart   int
}

// NewReader validates header framing and wraps data for lookups. data is
// retained, not copied: callers that mmap a file must keep the mapping
// alive for the Reader's lifetime.
func NewReader(data []byte) (*Reader, error) {
	if len(data) < headerSize {
		return nil, FormatTruncated
	}
	if string(data[0:4]) != magic {
		return nil, FormatMismatch
	}
	if data[4] != endianLittle {
		return nil, FormatMismatch
	}
	if data[5] != formatVersion {
		return nil, FormatMismatch
	}
	nodeCount := binary.LittleEndian.Uint32(data[8:12])
	arrayOffset := binary.LittleEndian.Uint32(data[12:16])

	tableStart := int(arrayOffset)
	tableSize := int(nodeCount) * 4
	blobStart := tableStart + tableSize
	if blobStart > len(data) {
		return nil, FormatTruncated
	}

	return &Reader{
		data:       data,
		nodeCount:  nodeCount,
		tableStart: tableStart,
		blobStart:  blobStart,
	}, nil
}

// NodeCount returns the total number of slot records in the compiled
// trie, root included.
func (r *Reader) NodeCount() uint32 { return r.nodeCount }

func (r *Reader) offsetOf(index uint32) int {
	pos := r.tableStart + int(index)*4
	return int(binary.LittleEndian.Uint32(r.data[pos : pos+4]))
}

// Node is a decoded view of one flat-array record. Its Shape determines
// which of the remaining fields are meaningful.
type Node struct {
	Shape       Shape
	Index       uint32
	NumSiblings uint16

	// Naive, Patricia
	Label      []rune
	HasFreq    bool
	Freq       uint32
	HasChild   bool
	FirstChild uint32

	// Range
	Lo, Hi rune
	raw    []byte // range member bytes, decoded lazily by RangeSlot
}

// Root decodes the trie's root node (global index 0).
func (r *Reader) Root() Node { return r.Node(0) }

// Node decodes the record at global index i.
func (r *Reader) Node(i uint32) Node {
	pos := r.offsetOf(i)
	buf := r.data[pos:]
	shape := Shape(buf[0])

	switch shape {
	case ShapeNaive:
		ch := rune(binary.LittleEndian.Uint32(buf[1:5]))
		hasFreq, freq, numSiblings, hasChild, firstChild := readFreqHeader(buf[5:])
		return Node{
			Shape: shape, Index: i, NumSiblings: numSiblings,
			Label: []rune{ch}, HasFreq: hasFreq, Freq: freq,
			HasChild: hasChild, FirstChild: firstChild,
		}
	case ShapePatricia:
		labelLen := int(binary.LittleEndian.Uint16(buf[1:3]))
		label := make([]rune, labelLen)
		off := 3
		for k := 0; k < labelLen; k++ {
			label[k] = rune(binary.LittleEndian.Uint32(buf[off : off+4]))
			off += 4
		}
		hasFreq, freq, numSiblings, hasChild, firstChild := readFreqHeader(buf[off:])
		return Node{
			Shape: shape, Index: i, NumSiblings: numSiblings,
			Label: label, HasFreq: hasFreq, Freq: freq,
			HasChild: hasChild, FirstChild: firstChild,
		}
	case ShapeRange:
		lo := rune(binary.LittleEndian.Uint32(buf[1:5]))
		hi := rune(binary.LittleEndian.Uint32(buf[5:9]))
		numSiblings := binary.LittleEndian.Uint16(buf[9:11])
		span := int(hi-lo) + 1
		return Node{
			Shape: shape, Index: i, NumSiblings: numSiblings,
			Lo: lo, Hi: hi, raw: buf[11 : 11+9*span],
		}
	default:
		panic(fmt.Sprintf("trie: corrupt tag %d at index %d", shape, i))
	}
}

func readFreqHeader(buf []byte) (hasFreq bool, freq uint32, numSiblings uint16, hasChild bool, firstChild uint32) {
	hasFreq = buf[0] == 1
	freq = binary.LittleEndian.Uint32(buf[1:5])
	numSiblings = binary.LittleEndian.Uint16(buf[5:7])
	hasChild = buf[7] == 1
	firstChild = binary.LittleEndian.Uint32(buf[8:12])
	return
}

// RangeSlot decodes the member of a Range node at scalar ch. present is false
// if ch falls outside [Lo, Hi] or the dictionary has no word at that
// position.
func (n Node) RangeSlot(ch rune) (present bool, hasFreq bool, freq uint32, hasChild bool, firstChild uint32) {
	if ch < n.Lo || ch > n.Hi {
		return false, false, 0, false, 0
	}
	off := int(ch-n.Lo) * 9
	flags := n.raw[off]
	freq = binary.LittleEndian.Uint32(n.raw[off+1 : off+5])
	firstChild = binary.LittleEndian.Uint32(n.raw[off+5 : off+9])
	return flags&1 != 0, flags&2 != 0, freq, flags&4 != 0, firstChild
}

// LeadChar returns the scalar value this node would be matched against
// when binary-searching its sibling group: the first label scalar for
// Naive/Patricia, or Lo for Range.
func (n Node) LeadChar() rune {
	if n.Shape == ShapeRange {
		return n.Lo
	}
	return n.Label[0]
}

// FindChild binary-searches the sibling group starting at parent.FirstChild
// for the node whose span covers ch, returning (Node, true), or a zero
// Node and false if no sibling covers ch. parent must have HasChild set.
func (r *Reader) FindChild(parent Node, ch rune) (Node, bool) {
	if !parent.HasChild {
		return Node{}, false
	}
	first := parent.FirstChild
	count := int(r.Node(first).NumSiblings)

	lo, hi := 0, count-1
	for lo <= hi {
		mid := (lo + hi) / 2
		cand := r.Node(first + uint32(mid))
		if cand.Shape == ShapeRange {
			switch {
			case ch < cand.Lo:
				hi = mid - 1
			case ch > cand.Hi:
				lo = mid + 1
			default:
				return cand, true
			}
			continue
		}
		switch c := cand.Label[0]; {
		case ch < c:
			hi = mid - 1
		case ch > c:
			lo = mid + 1
		default:
			return cand, true
		}
	}
	return Node{}, false
}

// Children decodes every sibling in parent's child group, in ascending
// order. Unlike FindChild this does not interpret Range or multi-scalar
// Patricia labels; callers that need to walk every outgoing character
// (approximate search) do that themselves via Node.Label and
// Node.RangeSlot.
func (r *Reader) Children(parent Node) []Node {
	if !parent.HasChild {
		return nil
	}
	first := parent.FirstChild
	count := int(r.Node(first).NumSiblings)
	out := make([]Node, count)
	for i := 0; i < count; i++ {
		out[i] = r.Node(first + uint32(i))
	}
	return out
}
