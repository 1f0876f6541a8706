// Package layout resolves a tree of abstractly sized nodes into absolute
// screen-space rectangles. Each node declares how its children stack
// (horizontally or vertically) and how much of its parent's main axis it
// takes up (a fixed pixel length or a share of the space left over after
// fixed siblings). One layout pass writes every node's rectangle into a
// caller-owned buffer, so repeated passes (e.g. on every window resize)
// allocate nothing.
package layout

// Axis selects how a node arranges its children.
type Axis uint8

const (
	// Horizontal stacks children left to right; the main axis is width.
	Horizontal Axis = iota
	// Vertical stacks children top to bottom; the main axis is height.
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	}
	return "Axis(?)"
}

// SizeKind discriminates the two sizing policies.
type SizeKind uint8

const (
	// SizeAbsolute is a fixed length in pixels, independent of siblings.
	SizeAbsolute SizeKind = iota
	// SizeRelative is a weight; the node gets weight/total-weight of the
	// space left after all absolute siblings along the parent's main axis.
	SizeRelative
)

func (k SizeKind) String() string {
	switch k {
	case SizeAbsolute:
		return "Absolute"
	case SizeRelative:
		return "Relative"
	}
	return "SizeKind(?)"
}

// Size is a node's sizing policy along its parent's main axis. It is only
// ever interpreted by the parent; a node's own Axis governs its children.
type Size struct {
	Kind  SizeKind
	Value float32
}

// Absolute returns a fixed length of px pixels.
func Absolute(px float32) Size {
	return Size{Kind: SizeAbsolute, Value: px}
}

// Relative returns a proportional length with the given weight. With
// siblings weighted 1, 2, 1 and 400px of free space they get 100, 200 and
// 100 pixels respectively.
func Relative(weight float32) Size {
	return Size{Kind: SizeRelative, Value: weight}
}

// Node is one element of a layout tree. A node exclusively owns its
// children; order is the stacking order along the main axis.
type Node struct {
	id       uint32
	axis     Axis
	size     Size
	children []*Node
}

// NewNode returns a childless node. The id is opaque to the engine and is
// copied verbatim into the node's Rect; keeping ids unique is the caller's
// business.
func NewNode(id uint32, axis Axis, size Size) *Node {
	return &Node{id: id, axis: axis, size: size}
}

// AddChild appends one child. The tree must not be modified while a
// Layout call is in progress, and adding or removing nodes invalidates any
// buffer obtained from AllocRectBuffer.
func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
}

// AddChildren appends children in order.
func (n *Node) AddChildren(children ...*Node) {
	n.children = append(n.children, children...)
}

// ID returns the externally assigned identifier.
func (n *Node) ID() uint32 { return n.id }

// Axis returns the axis along which this node's children stack.
func (n *Node) Axis() Axis { return n.axis }

// Size returns this node's sizing policy.
func (n *Node) Size() Size { return n.size }

// Children returns the node's children. The slice is owned by the node;
// callers must not mutate it.
func (n *Node) Children() []*Node { return n.children }

// Count returns the number of nodes in the subtree rooted at n, including
// n itself. A layout pass over n produces exactly this many rectangles.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.children {
		total += c.Count()
	}
	return total
}

// Rect is one resolved node: position and size in the coordinate space
// given to Layout, plus a stacking layer (see Layout).
type Rect struct {
	ID   uint32
	X, Y float32
	W, H float32
	// Layer is a depth index for stacking: the base layer passed to Layout
	// plus the node's depth in the tree. Deeper nodes get higher layers and
	// should draw in front.
	Layer float32
}

// AllocRectBuffer returns a buffer of placeholder rects sized exactly for
// the subtree rooted at n, one slot per node. Allocate it once per tree
// shape and reuse it across layout passes; re-run it after adding or
// removing nodes.
func (n *Node) AllocRectBuffer() []Rect {
	buf := make([]Rect, 0, n.Count())
	return n.appendPlaceholders(buf)
}

func (n *Node) appendPlaceholders(buf []Rect) []Rect {
	for _, c := range n.children {
		buf = c.appendPlaceholders(buf)
	}
	return append(buf, Rect{ID: n.id})
}

// Layout computes the rectangle of every node in the subtree rooted at n
// and writes them into buf, which must hold at least n.Count() slots.
// (x, y) is the subtree's top-left corner, (w, h) its extents, and layer
// the depth index assigned to n itself; each level below n gets layer+1.
//
// Children are packed along n's axis in declaration order with no gaps:
// absolute children take their fixed length, relative children split the
// remaining space by weight, and every child spans the full cross axis.
// Declared children narrower than the available space leave the remainder
// unassigned; there is no implicit stretch.
//
// Rects are written in postorder, each node's own rect directly after its
// descendants', and the returned count is the number of slots filled
// (n.Count() on success). The call is atomic: the whole subtree is
// validated before anything is written, so on error buf is untouched.
func (n *Node) Layout(buf []Rect, x, y, w, h, layer float32) (int, error) {
	if len(buf) < n.Count() {
		return 0, &BufferTooSmallError{NodeID: n.id, Need: n.Count(), Have: len(buf)}
	}
	if err := n.validate(w, h); err != nil {
		return 0, err
	}
	return n.place(buf, x, y, w, h, layer), nil
}

// span splits (w, h) into main- and cross-axis extents for n's children.
func (n *Node) span(w, h float32) (main, cross float32) {
	if n.axis == Horizontal {
		return w, h
	}
	return h, w
}

// distribution sums up what the children claim along the main axis: the
// space left over for relative children and the total relative weight.
func (n *Node) distribution(mainExtent float32) (freeSpace, totalWeight float32) {
	freeSpace = mainExtent
	for _, c := range n.children {
		switch c.size.Kind {
		case SizeAbsolute:
			freeSpace -= c.size.Value
		case SizeRelative:
			totalWeight += c.size.Value
		}
	}
	return freeSpace, totalWeight
}

// childMain resolves one child's main-axis length.
func childMain(c *Node, freeSpace, totalWeight float32) float32 {
	if c.size.Kind == SizeAbsolute {
		return c.size.Value
	}
	return freeSpace * c.size.Value / totalWeight
}

// validate dry-runs the sizing math for the whole subtree without touching
// the output buffer, so a failed Layout leaves no partial writes.
func (n *Node) validate(w, h float32) error {
	if len(n.children) == 0 {
		return nil
	}
	mainExtent, crossExtent := n.span(w, h)
	freeSpace, totalWeight := n.distribution(mainExtent)
	if freeSpace <= 0 {
		return &InsufficientSpaceError{NodeID: n.id, Axis: n.axis, Extent: mainExtent, FreeSpace: freeSpace}
	}
	hasRelative := false
	for _, c := range n.children {
		if c.size.Kind == SizeRelative {
			hasRelative = true
			break
		}
	}
	if hasRelative && totalWeight <= 0 {
		return &ZeroWeightError{NodeID: n.id}
	}
	for _, c := range n.children {
		cMain := childMain(c, freeSpace, totalWeight)
		cw, ch := cMain, crossExtent
		if n.axis == Vertical {
			cw, ch = crossExtent, cMain
		}
		if err := c.validate(cw, ch); err != nil {
			return err
		}
	}
	return nil
}

// place writes the subtree's rects into buf and returns how many slots it
// filled. buf length and sizing preconditions are already checked.
func (n *Node) place(buf []Rect, x, y, w, h, layer float32) int {
	mainExtent, crossExtent := n.span(w, h)
	freeSpace, totalWeight := n.distribution(mainExtent)

	used := float32(0)
	idx := 0
	for _, c := range n.children {
		cMain := childMain(c, freeSpace, totalWeight)
		used += cMain

		var cx, cy, cw, ch float32
		if n.axis == Horizontal {
			cx, cy = x+used-cMain, y
			cw, ch = cMain, crossExtent
		} else {
			cx, cy = x, y+used-cMain
			cw, ch = crossExtent, cMain
		}
		idx += c.place(buf[idx:], cx, cy, cw, ch, layer+1)
	}

	buf[idx] = Rect{ID: n.id, X: x, Y: y, W: w, H: h, Layer: layer}
	return idx + 1
}
