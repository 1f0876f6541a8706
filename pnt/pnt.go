// Package pnt reads and writes PNT ("panekit node tree") files, a compact
// little-endian binary description of a layout node tree. A document is a
// fixed header followed by one record per node in preorder; each record
// carries the node's id, axis, sizing policy and child count, which is
// enough to rebuild the tree without offsets or back references.
package pnt

import (
	"encoding/binary"
	"math"

	"github.com/panekit/panekit/layout"
)

// Format version expected by this reader.
const (
	SpecVersionMajor = 0
	SpecVersionMinor = 1
	ExpectedVersion  = uint16(SpecVersionMinor<<8 | SpecVersionMajor)
)

// Magic number identifying a PNT file.
var MagicNumber = [4]byte{'P', 'N', 'T', '1'}

// Axis bytes as stored on disk.
const (
	AxisHorizontal uint8 = 0x00
	AxisVertical   uint8 = 0x01
)

// Size-kind bytes as stored on disk.
const (
	SizeAbsolute uint8 = 0x00
	SizeRelative uint8 = 0x01
)

// Header is the PNT file header.
type Header struct {
	Magic      [4]byte
	Version    uint16 // raw version from file, minor<<8 | major
	Flags      uint16 // reserved, must be zero
	NodeCount  uint16
	Reserved   uint16
	NodeOffset uint32 // byte offset of the first node record
	TotalSize  uint32
}

const HeaderSize = 20

// NodeRecord is one node as stored in the file. Records appear in
// preorder: a record is immediately followed by the records of its
// ChildCount child subtrees.
type NodeRecord struct {
	ID         uint32
	Axis       uint8
	SizeKind   uint8
	ChildCount uint16
	SizeValue  float32
}

const NodeRecordSize = 12

// Document holds a parsed PNT file in memory.
type Document struct {
	Header       Header
	VersionMajor uint8
	VersionMinor uint8
	Nodes        []NodeRecord
}

// BuildTree reconstructs the layout node tree described by the document.
// It fails if any record carries an unknown axis or size kind, if a child
// count runs past the end of the record list, or if records are left over
// after the root subtree is consumed.
func (doc *Document) BuildTree() (*layout.Node, error) {
	if len(doc.Nodes) == 0 {
		return nil, errNoNodes
	}
	root, next, err := buildSubtree(doc.Nodes, 0)
	if err != nil {
		return nil, err
	}
	if next != len(doc.Nodes) {
		return nil, &TrailingRecordsError{Consumed: next, Total: len(doc.Nodes)}
	}
	return root, nil
}

func buildSubtree(records []NodeRecord, idx int) (*layout.Node, int, error) {
	if idx >= len(records) {
		return nil, 0, &TruncatedTreeError{Index: idx, Total: len(records)}
	}
	rec := records[idx]

	var axis layout.Axis
	switch rec.Axis {
	case AxisHorizontal:
		axis = layout.Horizontal
	case AxisVertical:
		axis = layout.Vertical
	default:
		return nil, 0, &BadRecordError{Index: idx, Field: "axis", Value: rec.Axis}
	}

	var size layout.Size
	switch rec.SizeKind {
	case SizeAbsolute:
		size = layout.Absolute(rec.SizeValue)
	case SizeRelative:
		size = layout.Relative(rec.SizeValue)
	default:
		return nil, 0, &BadRecordError{Index: idx, Field: "size kind", Value: rec.SizeKind}
	}

	node := layout.NewNode(rec.ID, axis, size)
	next := idx + 1
	for i := uint16(0); i < rec.ChildCount; i++ {
		child, after, err := buildSubtree(records, next)
		if err != nil {
			return nil, 0, err
		}
		node.AddChild(child)
		next = after
	}
	return node, next, nil
}

// Helpers to read little-endian scalars from byte slices.

func readU16LE(data []byte) uint16 {
	if len(data) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(data)
}

func readU32LE(data []byte) uint32 {
	if len(data) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(data)
}

func readF32LE(data []byte) float32 {
	if len(data) < 4 {
		return 0
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(data))
}
