package pnt

import (
	"errors"
	"fmt"
)

var errNoNodes = errors.New("pnt: document has no node records")

// BadRecordError reports a node record with an out-of-range field value.
type BadRecordError struct {
	Index int
	Field string
	Value uint8
}

func (e *BadRecordError) Error() string {
	return fmt.Sprintf("pnt: node record %d: bad %s 0x%02X", e.Index, e.Field, e.Value)
}

// TruncatedTreeError reports a child count pointing past the end of the
// record list.
type TruncatedTreeError struct {
	Index int
	Total int
}

func (e *TruncatedTreeError) Error() string {
	return fmt.Sprintf("pnt: tree truncated: record %d referenced but only %d records present", e.Index, e.Total)
}

// TrailingRecordsError reports records left over after the root subtree
// was fully consumed.
type TrailingRecordsError struct {
	Consumed int
	Total    int
}

func (e *TrailingRecordsError) Error() string {
	return fmt.Sprintf("pnt: %d trailing node records after root subtree (%d of %d consumed)", e.Total-e.Consumed, e.Consumed, e.Total)
}
