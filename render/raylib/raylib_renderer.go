// Package raylib implements the render.Renderer interface with the Raylib
// graphics library: one window, one filled rectangle per laid-out pane,
// deeper layers painted in front.
package raylib

import (
	"fmt"
	"log"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/panekit/panekit/layout"
	"github.com/panekit/panekit/render"
)

// outlineAlpha fades the pane outlines against the fills.
const outlineAlpha = 0.4

// Renderer draws scenes with Raylib. It relays the scene out only when
// the window extents change, reusing the scene's rect buffer, and keeps a
// layer-sorted draw order so deeper panes paint on top (Raylib's 2D mode
// has no depth buffer to bias, unlike a GL pipeline).
type Renderer struct {
	config    render.WindowConfig
	drawOrder []int
	laidOutW  int
	laidOutH  int
	laidOut   bool
	layoutErr string
}

// NewRenderer returns an uninitialized renderer; call Init before use.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Init opens the Raylib window according to the provided configuration.
func (r *Renderer) Init(config render.WindowConfig) error {
	r.config = config

	log.Printf("raylib Init: opening window %dx%d, title %q, resizable=%t",
		config.Width, config.Height, config.Title, config.Resizable)

	rl.InitWindow(int32(config.Width), int32(config.Height), config.Title)

	if config.Resizable {
		rl.SetWindowState(rl.FlagWindowResizable)
	} else {
		rl.ClearWindowState(rl.FlagWindowResizable)
		rl.SetWindowSize(config.Width, config.Height)
	}

	rl.SetTargetFPS(60)

	if !rl.IsWindowReady() {
		return fmt.Errorf("raylib Init: window is not ready after InitWindow")
	}
	return nil
}

// ShouldClose reports whether the window close was requested.
func (r *Renderer) ShouldClose() bool {
	return rl.IsWindowReady() && rl.WindowShouldClose()
}

// PollEvents handles window events. Non-resizable windows are snapped
// back to their configured size here.
func (r *Renderer) PollEvents() {
	if !rl.IsWindowReady() {
		return
	}
	if !r.config.Resizable {
		w := int(rl.GetScreenWidth())
		h := int(rl.GetScreenHeight())
		if w != r.config.Width || h != r.config.Height {
			rl.SetWindowSize(r.config.Width, r.config.Height)
		}
	}
}

// BeginFrame starts drawing and clears to the configured background.
func (r *Renderer) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(r.config.DefaultBg)
}

// EndFrame submits the frame.
func (r *Renderer) EndFrame() {
	rl.EndDrawing()
}

// RenderFrame draws the scene. A layout pass runs only on the first frame
// and after the window extents change; a pass that fails (a mis-built
// tree) is logged once and the previously laid-out panes keep drawing.
func (r *Renderer) RenderFrame(scene *render.Scene) {
	width := int(rl.GetScreenWidth())
	height := int(rl.GetScreenHeight())

	if r.config.Resizable && (width != r.config.Width || height != r.config.Height) {
		r.config.Width = width
		r.config.Height = height
		log.Printf("raylib RenderFrame: window resized to %dx%d, recalculating layout", width, height)
	}

	if !r.laidOut || width != r.laidOutW || height != r.laidOutH {
		rects, err := scene.Relayout(float32(width), float32(height))
		if err != nil {
			if err.Error() != r.layoutErr {
				log.Printf("raylib RenderFrame: layout failed: %v", err)
				r.layoutErr = err.Error()
			}
		} else {
			r.layoutErr = ""
			r.laidOut = true
			r.laidOutW = width
			r.laidOutH = height
			r.rebuildDrawOrder(rects)
		}
	}

	rects := scene.Rects()
	for _, idx := range r.drawOrder {
		rect := rects[idx]
		fill := paletteColor(idx, len(rects))
		if style, ok := scene.StyleFor(rect.ID); ok {
			fill = style.Fill
		}
		bounds := rl.NewRectangle(rect.X, rect.Y, rect.W, rect.H)
		rl.DrawRectangleRec(bounds, fill)
		rl.DrawRectangleLinesEx(bounds, 1, rl.Fade(rl.Black, outlineAlpha))
	}
}

// rebuildDrawOrder sorts pane indices by ascending layer. The sort is
// stable, so siblings on the same layer keep their buffer (declaration)
// order.
func (r *Renderer) rebuildDrawOrder(rects []layout.Rect) {
	if cap(r.drawOrder) < len(rects) {
		r.drawOrder = make([]int, len(rects))
	}
	r.drawOrder = r.drawOrder[:len(rects)]
	for i := range r.drawOrder {
		r.drawOrder[i] = i
	}
	sort.SliceStable(r.drawOrder, func(a, b int) bool {
		return rects[r.drawOrder[a]].Layer < rects[r.drawOrder[b]].Layer
	})
}

// Cleanup closes the Raylib window.
func (r *Renderer) Cleanup() {
	if rl.IsWindowReady() {
		log.Println("raylib Cleanup: closing window")
		rl.CloseWindow()
	}
}
