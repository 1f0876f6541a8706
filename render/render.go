// Package render defines the boundary between the layout engine and a
// windowed rendering backend: a Scene that owns a node tree plus its
// reused rect buffer, and the Renderer interface backends implement.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/panekit/panekit/layout"
)

// Style carries the per-element visuals a backend applies to a rect,
// keyed by node id. Elements without a style fall back to the backend's
// generated palette.
type Style struct {
	Fill rl.Color
}

// WindowConfig holds application-level window settings.
type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	DefaultBg rl.Color
}

// DefaultWindowConfig returns the library defaults.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     800,
		Height:    600,
		Title:     "Panekit",
		Resizable: true,
		DefaultBg: rl.Black,
	}
}

// Scene owns a layout tree together with the rect buffer sized for it.
// The buffer is allocated once and rewritten in place by every Relayout,
// so a scene laid out per resize event allocates nothing after
// construction. Scenes are not safe for concurrent use; drive them from a
// single render loop.
type Scene struct {
	root   *layout.Node
	rects  []layout.Rect
	filled int
	styles map[uint32]Style
}

// NewScene wraps a built tree. The tree must not gain or lose nodes
// afterwards; build a new scene if the shape changes.
func NewScene(root *layout.Node) *Scene {
	return &Scene{
		root:   root,
		rects:  root.AllocRectBuffer(),
		styles: make(map[uint32]Style),
	}
}

// Root returns the scene's tree.
func (s *Scene) Root() *layout.Node { return s.root }

// SetStyle registers visuals for the node with the given id.
func (s *Scene) SetStyle(id uint32, style Style) {
	s.styles[id] = style
}

// StyleFor looks up the visuals registered for a node id.
func (s *Scene) StyleFor(id uint32) (Style, bool) {
	style, ok := s.styles[id]
	return style, ok
}

// Relayout runs one layout pass at the given viewport extents, origin
// (0, 0) and base layer 0, reusing the scene's buffer, and returns the
// filled rects. On error nothing is written and the previously filled
// rects are preserved.
func (s *Scene) Relayout(w, h float32) ([]layout.Rect, error) {
	count, err := s.root.Layout(s.rects, 0, 0, w, h, 0)
	if err != nil {
		return nil, err
	}
	s.filled = count
	return s.rects[:count], nil
}

// Rects returns the rects filled by the most recent successful Relayout.
func (s *Scene) Rects() []layout.Rect {
	return s.rects[:s.filled]
}

// Renderer is the interface a windowed backend implements. The usage
// pattern mirrors an immediate-mode loop:
//
//	renderer.Init(config)
//	defer renderer.Cleanup()
//	for !renderer.ShouldClose() {
//		renderer.PollEvents()
//		renderer.BeginFrame()
//		renderer.RenderFrame(scene)
//		renderer.EndFrame()
//	}
type Renderer interface {
	// Init creates the window according to the configuration.
	Init(config WindowConfig) error

	// ShouldClose reports whether the window has been asked to close.
	ShouldClose() bool

	// PollEvents handles window events and input.
	PollEvents()

	// BeginFrame starts a frame and clears the background.
	BeginFrame()

	// RenderFrame lays the scene out against the current window extents
	// (reusing the scene's buffer; a pass only runs when the extents
	// changed) and draws one quad per rect, deeper layers in front.
	RenderFrame(scene *Scene)

	// EndFrame submits the frame.
	EndFrame()

	// Cleanup closes the window and releases backend resources.
	Cleanup()
}
