package trie

import (
	"encoding/binary"

	"github.com/kjhall/vaguetrie/pkg/heuristic"
	"github.com/kjhall/vaguetrie/pkg/patricia"
)

// record is the mutable, in-progress form of one flat-array slot. Its
// firstChild/hasChild fields (and, for a range, each member's) are filled
// in later by the write-back closure of whichever group gets processed
// for that child, since BFS visits a node's children strictly after the
// node itself has been assigned an index.
type record struct {
	shape Shape

	// Naive: label has length 1. Patricia: length >= 0 (root is length 0).
	label []rune

	hasFreq bool
	freq    uint32

	hasChild    bool
	firstChild  uint32
	numSiblings uint16

	// Range only. lo/hi bound the scalar window; the four member slices
	// are parallel and indexed by scalar - lo.
	lo, hi           rune
	present          []bool
	memberHasFreq    []bool
	memberFreq       []uint32
	memberHasChild   []bool
	memberFirstChild []uint32
}

// pending is one group-planning task in the BFS queue: plan children's
// children, then report the resulting first-child index back to whoever
// is holding a slot for this node (or range member).
type pending struct {
	node     *patricia.Node
	writeBack func(firstChild uint32, hasChild bool)
}

// Flatten reduces a build-time Patricia trie into the compiled, serialized
// form described in format.go. minRangeSpan is forwarded to
// heuristic.Plan for every sibling group.
func Flatten(t *patricia.Trie, minRangeSpan int) []byte {
	var records []*record

	root := &record{shape: ShapePatricia, label: nil, hasFreq: t.Root.HasFreq, freq: t.Root.Freq}
	records = append(records, root)

	queue := []pending{{
		node: t.Root,
		writeBack: func(fc uint32, hasChild bool) {
			root.hasChild = hasChild
			root.firstChild = fc
		},
	}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		slots := heuristic.Plan(item.node.Children, minRangeSpan)
		if len(slots) == 0 {
			item.writeBack(noChild, false)
			continue
		}

		groupStart := uint32(len(records))
		item.writeBack(groupStart, true)
		numSiblings := uint16(len(slots))

		for _, slot := range slots {
			switch slot.Shape {
			case heuristic.ShapeNaive, heuristic.ShapePatricia:
				shape := ShapeNaive
				if slot.Shape == heuristic.ShapePatricia {
					shape = ShapePatricia
				}
				rec := &record{
					shape:       shape,
					label:       slot.Node.Label,
					hasFreq:     slot.Node.HasFreq,
					freq:        slot.Node.Freq,
					numSiblings: numSiblings,
					firstChild:  noChild,
				}
				records = append(records, rec)
				node := slot.Node
				queue = append(queue, pending{
					node: node,
					writeBack: func(fc uint32, hasChild bool) {
						rec.hasChild = hasChild
						rec.firstChild = fc
					},
				})

			case heuristic.ShapeRange:
				span := len(slot.Members)
				rec := &record{
					shape:            ShapeRange,
					lo:               slot.Lo,
					hi:               slot.Hi,
					numSiblings:      numSiblings,
					present:          make([]bool, span),
					memberHasFreq:    make([]bool, span),
					memberFreq:       make([]uint32, span),
					memberHasChild:   make([]bool, span),
					memberFirstChild: make([]uint32, span),
				}
				for i, m := range slot.Members {
					if m == nil {
						rec.memberFirstChild[i] = noChild
						continue
					}
					rec.present[i] = true
					rec.memberHasFreq[i] = m.HasFreq
					rec.memberFreq[i] = m.Freq
					rec.memberFirstChild[i] = noChild
					member := m
					pos := i
					queue = append(queue, pending{
						node: member,
						writeBack: func(fc uint32, hasChild bool) {
							rec.memberHasChild[pos] = hasChild
							rec.memberFirstChild[pos] = fc
						},
					})
				}
				records = append(records, rec)
			}
		}
	}

	return serialize(records)
}

// serialize lays out records into the VGT1 byte format: header, offset
// table, then the record blob in ascending global-index order.
func serialize(records []*record) []byte {
	sizes := make([]int, len(records))
	for i, r := range records {
		sizes[i] = recordSize(r)
	}

	offsets := make([]uint32, len(records))
	blobSize := 0
	for i, s := range sizes {
		offsets[i] = uint32(blobSize)
		blobSize += s
	}

	tableSize := len(records) * 4
	out := make([]byte, headerSize+tableSize+blobSize)

	copy(out[0:4], magic)
	out[4] = endianLittle
	out[5] = formatVersion
	// out[6:8] reserved, left zero
	binary.LittleEndian.PutUint32(out[8:12], uint32(len(records)))
	binary.LittleEndian.PutUint32(out[12:16], uint32(headerSize))

	tableStart := headerSize
	blobStart := tableStart + tableSize
	for i, off := range offsets {
		binary.LittleEndian.PutUint32(out[tableStart+i*4:tableStart+i*4+4], uint32(blobStart)+off)
	}

	for i, r := range records {
		pos := blobStart + int(offsets[i])
		writeRecord(out[pos:pos+sizes[i]], r)
	}

	return out
}

func recordSize(r *record) int {
	switch r.shape {
	case ShapeNaive:
		return 17
	case ShapePatricia:
		return 15 + 4*len(r.label)
	case ShapeRange:
		return 11 + 9*len(r.present)
	}
	panic("trie: unknown shape")
}

func writeRecord(buf []byte, r *record) {
	buf[0] = byte(r.shape)
	switch r.shape {
	case ShapeNaive:
		binary.LittleEndian.PutUint32(buf[1:5], uint32(r.label[0]))
		writeFreqHeader(buf[5:], r.hasFreq, r.freq, r.numSiblings, r.hasChild, r.firstChild)
	case ShapePatricia:
		binary.LittleEndian.PutUint16(buf[1:3], uint16(len(r.label)))
		off := 3
		for _, ch := range r.label {
			binary.LittleEndian.PutUint32(buf[off:off+4], uint32(ch))
			off += 4
		}
		writeFreqHeader(buf[off:], r.hasFreq, r.freq, r.numSiblings, r.hasChild, r.firstChild)
	case ShapeRange:
		binary.LittleEndian.PutUint32(buf[1:5], uint32(r.lo))
		binary.LittleEndian.PutUint32(buf[5:9], uint32(r.hi))
		binary.LittleEndian.PutUint16(buf[9:11], r.numSiblings)
		off := 11
		for i := range r.present {
			var flags byte
			if r.present[i] {
				flags |= 1
			}
			if r.memberHasFreq[i] {
				flags |= 2
			}
			if r.memberHasChild[i] {
				flags |= 4
			}
			buf[off] = flags
			binary.LittleEndian.PutUint32(buf[off+1:off+5], r.memberFreq[i])
			binary.LittleEndian.PutUint32(buf[off+5:off+9], r.memberFirstChild[i])
			off += 9
		}
	}
}

// writeFreqHeader writes the common hasFreq/freq/numSiblings/hasChild/
// firstChild tail shared by naive and Patricia records.
func writeFreqHeader(buf []byte, hasFreq bool, freq uint32, numSiblings uint16, hasChild bool, firstChild uint32) {
	if hasFreq {
		buf[0] = 1
	}
	binary.LittleEndian.PutUint32(buf[1:5], freq)
	binary.LittleEndian.PutUint16(buf[5:7], numSiblings)
	if hasChild {
		buf[7] = 1
	}
	binary.LittleEndian.PutUint32(buf[8:12], firstChild)
}
