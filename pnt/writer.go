package pnt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/panekit/panekit/layout"
)

// WriteDocument serializes the tree rooted at root as a PNT file. Node
// and child counts must fit the format's uint16 fields.
func WriteDocument(w io.Writer, root *layout.Node) error {
	count := root.Count()
	if count > math.MaxUint16 {
		return fmt.Errorf("pnt write: tree has %d nodes, format limit is %d", count, math.MaxUint16)
	}

	buf := make([]byte, HeaderSize+count*NodeRecordSize)

	copy(buf[0:4], MagicNumber[:])
	binary.LittleEndian.PutUint16(buf[4:6], ExpectedVersion)
	binary.LittleEndian.PutUint16(buf[6:8], 0) // flags
	binary.LittleEndian.PutUint16(buf[8:10], uint16(count))
	binary.LittleEndian.PutUint16(buf[10:12], 0) // reserved
	binary.LittleEndian.PutUint32(buf[12:16], HeaderSize)
	binary.LittleEndian.PutUint32(buf[16:20], uint32(len(buf)))

	if _, err := appendRecords(buf, HeaderSize, root); err != nil {
		return err
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("pnt write: %w", err)
	}
	return nil
}

// appendRecords writes the preorder records for the subtree rooted at n
// starting at byte offset off, returning the offset past the subtree.
func appendRecords(buf []byte, off int, n *layout.Node) (int, error) {
	children := n.Children()
	if len(children) > math.MaxUint16 {
		return 0, fmt.Errorf("pnt write: node %d has %d children, format limit is %d", n.ID(), len(children), math.MaxUint16)
	}

	var axis uint8
	switch n.Axis() {
	case layout.Horizontal:
		axis = AxisHorizontal
	case layout.Vertical:
		axis = AxisVertical
	default:
		return 0, fmt.Errorf("pnt write: node %d has unknown axis %v", n.ID(), n.Axis())
	}

	var kind uint8
	switch n.Size().Kind {
	case layout.SizeAbsolute:
		kind = SizeAbsolute
	case layout.SizeRelative:
		kind = SizeRelative
	default:
		return 0, fmt.Errorf("pnt write: node %d has unknown size kind %v", n.ID(), n.Size().Kind)
	}

	rec := buf[off : off+NodeRecordSize]
	binary.LittleEndian.PutUint32(rec[0:4], n.ID())
	rec[4] = axis
	rec[5] = kind
	binary.LittleEndian.PutUint16(rec[6:8], uint16(len(children)))
	binary.LittleEndian.PutUint32(rec[8:12], math.Float32bits(n.Size().Value))

	off += NodeRecordSize
	for _, c := range children {
		var err error
		off, err = appendRecords(buf, off, c)
		if err != nil {
			return 0, err
		}
	}
	return off, nil
}
