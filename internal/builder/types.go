package builder

import (
	"github.com/vk/landmarkgrid/internal/config"
	"github.com/vk/landmarkgrid/internal/layout"
	"github.com/vk/landmarkgrid/internal/scene"
	"github.com/vk/landmarkgrid/internal/wiring"
)

// Style holds the fixed visual parameters of the grid.
type Style struct {
	VariantA scene.SFColor
	VariantB scene.SFColor
	Text     scene.SFColor
	CellSize float64
	Scale    float64
}

// StyleFromConfig extracts the builder style from a generator config.
func StyleFromConfig(g *config.Generator) Style {
	return Style{
		VariantA: scene.SFColor(g.Appearance.VariantA),
		VariantB: scene.SFColor(g.Appearance.VariantB),
		Text:     scene.SFColor(g.Appearance.Text),
		CellSize: g.Layout.CellSize,
		Scale:    g.Layout.Scale,
	}
}

// Row label font settings.
var (
	FontSize    = scene.SFFloat(1.0)
	FontSpacing = scene.SFFloat(1.2)
	FontJustify = scene.MFString{"MIDDLE", "MIDDLE"}
)

// BuiltCell records what was created for one interactive cell.
type BuiltCell struct {
	Cell      layout.Cell
	Container scene.Handle
	Chain     wiring.Chain
	IDs       []string // sensor, selector, sequencer, trigger
}

// Stats counts what a build produced.
type Stats struct {
	Cells       int
	Routes      int
	RowLabels   int
	Identifiers int
}

// Result is the outcome of a successful build.
type Result struct {
	Cells []BuiltCell
	Stats Stats
}
