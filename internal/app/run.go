// Package app holds the renderer-agnostic application shell: flag
// parsing, PNT loading and the main loop. Backends are wired in by the
// cmd binaries.
package app

import (
	"flag"
	"log"
	"os"

	"github.com/panekit/panekit/layout"
	"github.com/panekit/panekit/pnt"
	"github.com/panekit/panekit/render"
)

// Run parses flags, builds the scene and drives the main loop on the
// passed-in renderer.
func Run(renderer render.Renderer) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	pntFilePath := flag.String("file", "", "Path to a PNT file describing the pane tree (omit for the built-in split view)")
	width := flag.Int("width", 0, "Initial window width (0 for default)")
	height := flag.Int("height", 0, "Initial window height (0 for default)")
	title := flag.String("title", "", "Window title (empty for default)")
	flag.Parse()

	var root *layout.Node
	if *pntFilePath != "" {
		log.Printf("Loading PNT file: %s", *pntFilePath)

		file, err := os.Open(*pntFilePath)
		if err != nil {
			log.Fatalf("ERROR: Cannot open PNT file '%s': %v", *pntFilePath, err)
		}
		defer file.Close()

		doc, err := pnt.ReadDocument(file)
		if err != nil {
			log.Fatalf("ERROR: Failed to parse PNT file '%s': %v", *pntFilePath, err)
		}
		log.Printf("Parsed PNT OK - Ver=%d.%d Nodes=%d", doc.VersionMajor, doc.VersionMinor, doc.Header.NodeCount)

		root, err = doc.BuildTree()
		if err != nil {
			log.Fatalf("ERROR: Failed to build pane tree from '%s': %v", *pntFilePath, err)
		}
	} else {
		log.Println("No -file given, using the built-in split view.")
		root = DefaultTree()
	}

	scene := render.NewScene(root)
	log.Printf("Scene ready: %d panes.", root.Count())

	config := render.DefaultWindowConfig()
	if *width > 0 {
		config.Width = *width
	}
	if *height > 0 {
		config.Height = *height
	}
	if *title != "" {
		config.Title = *title
	}

	if err := renderer.Init(config); err != nil {
		renderer.Cleanup()
		log.Fatalf("ERROR: Failed to initialize renderer: %v", err)
	}
	defer renderer.Cleanup()

	log.Println("Entering main loop...")

	for !renderer.ShouldClose() {
		renderer.PollEvents()

		renderer.BeginFrame()
		renderer.RenderFrame(scene)
		renderer.EndFrame()
	}

	log.Println("Exiting.")
}

// DefaultTree builds the demo split view: a 200px sidebar holding four
// 40px items next to a body pane that takes the remaining width.
func DefaultTree() *layout.Node {
	sidebar := layout.NewNode(1, layout.Vertical, layout.Absolute(200))
	sidebar.AddChildren(
		layout.NewNode(2, layout.Vertical, layout.Absolute(40)),
		layout.NewNode(3, layout.Vertical, layout.Absolute(40)),
		layout.NewNode(4, layout.Vertical, layout.Absolute(40)),
		layout.NewNode(5, layout.Vertical, layout.Absolute(40)),
	)

	body := layout.NewNode(6, layout.Vertical, layout.Relative(1))

	wrapper := layout.NewNode(7, layout.Horizontal, layout.Relative(1))
	wrapper.AddChildren(sidebar, body)
	return wrapper
}
