package pnt

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/panekit/panekit/layout"
)

// ReadDocument parses a PNT file from the given reader into a Document.
// The reader must also implement io.Seeker so the node block can be
// located from its header offset.
func ReadDocument(r io.ReadSeeker) (*Document, error) {
	doc := &Document{}

	headerBuf := make([]byte, HeaderSize)
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("pnt read: failed to seek to header: %w", err)
	}
	if _, err := io.ReadFull(r, headerBuf); err != nil {
		return nil, fmt.Errorf("pnt read: failed to read header: %w", err)
	}

	copy(doc.Header.Magic[:], headerBuf[0:4])
	doc.Header.Version = readU16LE(headerBuf[4:6])
	doc.Header.Flags = readU16LE(headerBuf[6:8])
	doc.Header.NodeCount = readU16LE(headerBuf[8:10])
	doc.Header.Reserved = readU16LE(headerBuf[10:12])
	doc.Header.NodeOffset = readU32LE(headerBuf[12:16])
	doc.Header.TotalSize = readU32LE(headerBuf[16:20])

	if !bytes.Equal(doc.Header.Magic[:], MagicNumber[:]) {
		return nil, fmt.Errorf("pnt read: invalid magic number %v", doc.Header.Magic)
	}

	doc.VersionMajor = uint8(doc.Header.Version & 0x00FF)
	doc.VersionMinor = uint8(doc.Header.Version >> 8)

	if doc.Header.Version != ExpectedVersion {
		log.Printf("WARN: PNT version mismatch. File is %d.%d, reader expects %d.%d. Parsing continues...",
			doc.VersionMajor, doc.VersionMinor, SpecVersionMajor, SpecVersionMinor)
	}

	if doc.Header.NodeCount == 0 {
		return nil, errNoNodes
	}
	if doc.Header.NodeOffset < HeaderSize {
		return nil, fmt.Errorf("pnt read: node offset %d overlaps header", doc.Header.NodeOffset)
	}

	if _, err := r.Seek(int64(doc.Header.NodeOffset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("pnt read: failed to seek to node block offset %d: %w", doc.Header.NodeOffset, err)
	}

	doc.Nodes = make([]NodeRecord, doc.Header.NodeCount)
	recordBuf := make([]byte, NodeRecordSize)
	for i := uint16(0); i < doc.Header.NodeCount; i++ {
		if _, err := io.ReadFull(r, recordBuf); err != nil {
			return nil, fmt.Errorf("pnt read: failed to read node record %d/%d: %w", i+1, doc.Header.NodeCount, err)
		}
		doc.Nodes[i] = NodeRecord{
			ID:         readU32LE(recordBuf[0:4]),
			Axis:       recordBuf[4],
			SizeKind:   recordBuf[5],
			ChildCount: readU16LE(recordBuf[6:8]),
			SizeValue:  readF32LE(recordBuf[8:12]),
		}
	}

	return doc, nil
}

// ReadTree parses a PNT file and rebuilds its node tree in one step.
func ReadTree(r io.ReadSeeker) (*layout.Node, error) {
	doc, err := ReadDocument(r)
	if err != nil {
		return nil, err
	}
	return doc.BuildTree()
}
