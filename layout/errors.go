package layout

import "fmt"

// The layout preconditions are configuration errors, not transient runtime
// conditions: a tree that trips one is mis-built and will trip it on every
// pass. Each error names the offending node so the caller can find it.

// InsufficientSpaceError reports that a node's fixed-size children meet or
// exceed the space the node was given along its main axis, leaving nothing
// to distribute.
type InsufficientSpaceError struct {
	NodeID    uint32
	Axis      Axis
	Extent    float32
	FreeSpace float32
}

func (e *InsufficientSpaceError) Error() string {
	return fmt.Sprintf("layout: node %d: absolute children leave no free space along %s axis (extent %.1f, free %.1f)",
		e.NodeID, e.Axis, e.Extent, e.FreeSpace)
}

// ZeroWeightError reports a node with relative children whose weights sum
// to zero, which would divide the free space by zero.
type ZeroWeightError struct {
	NodeID uint32
}

func (e *ZeroWeightError) Error() string {
	return fmt.Sprintf("layout: node %d: relative children with zero total weight", e.NodeID)
}

// BufferTooSmallError reports an output buffer shorter than the subtree's
// node count. Re-run AllocRectBuffer after changing the tree.
type BufferTooSmallError struct {
	NodeID uint32
	Need   int
	Have   int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("layout: node %d: rect buffer too small (need %d slots, have %d)", e.NodeID, e.Need, e.Have)
}
