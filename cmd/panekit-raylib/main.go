// Command panekit-raylib renders a pane tree in a Raylib window. Pass
// -file with a PNT document, or run bare for the built-in split view;
// resizing the window re-runs layout into the same rect buffer.
package main

import (
	"github.com/panekit/panekit/internal/app"
	"github.com/panekit/panekit/render/raylib"
)

func main() {
	app.Run(raylib.NewRenderer())
}
