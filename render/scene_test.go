package render

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panekit/panekit/layout"
)

func testTree() *layout.Node {
	root := layout.NewNode(1, layout.Horizontal, layout.Relative(1))
	root.AddChildren(
		layout.NewNode(2, layout.Vertical, layout.Absolute(200)),
		layout.NewNode(3, layout.Vertical, layout.Relative(1)),
	)
	return root
}

func TestSceneRelayoutReusesBuffer(t *testing.T) {
	scene := NewScene(testTree())

	first, err := scene.Relayout(800, 600)
	require.NoError(t, err)
	require.Len(t, first, 3)

	second, err := scene.Relayout(1024, 768)
	require.NoError(t, err)
	require.Len(t, second, 3)

	// Same backing storage across passes.
	assert.Same(t, &first[0], &second[0])
	assert.Equal(t, second, scene.Rects())
}

func TestSceneRelayoutGeometry(t *testing.T) {
	scene := NewScene(testTree())

	rects, err := scene.Relayout(500, 300)
	require.NoError(t, err)

	// Postorder: fixed pane, relative pane, root.
	assert.Equal(t, uint32(2), rects[0].ID)
	assert.InDelta(t, 200, rects[0].W, 1e-4)
	assert.Equal(t, uint32(3), rects[1].ID)
	assert.InDelta(t, 300, rects[1].W, 1e-4)
	assert.InDelta(t, 200, rects[1].X, 1e-4)
	assert.Equal(t, uint32(1), rects[2].ID)
	assert.InDelta(t, 0, rects[2].Layer, 1e-4)
}

func TestSceneRelayoutErrorKeepsPreviousRects(t *testing.T) {
	scene := NewScene(testTree())

	_, err := scene.Relayout(800, 600)
	require.NoError(t, err)
	prev := append([]layout.Rect(nil), scene.Rects()...)

	// 100px is less than the fixed pane needs.
	_, err = scene.Relayout(100, 600)
	var ise *layout.InsufficientSpaceError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, prev, scene.Rects())
}

func TestSceneStyles(t *testing.T) {
	scene := NewScene(testTree())
	scene.SetStyle(2, Style{Fill: rl.Maroon})

	style, ok := scene.StyleFor(2)
	assert.True(t, ok)
	assert.Equal(t, rl.Maroon, style.Fill)

	_, ok = scene.StyleFor(3)
	assert.False(t, ok)
}

func TestDefaultWindowConfig(t *testing.T) {
	config := DefaultWindowConfig()
	assert.Equal(t, 800, config.Width)
	assert.Equal(t, 600, config.Height)
	assert.True(t, config.Resizable)
}
