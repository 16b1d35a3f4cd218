package config

// Generator is the complete, resolved configuration for one generation run.
type Generator struct {
	Assets     Assets
	Label      LabelRule
	Appearance Appearance
	Layout     Layout
	Output     Output
}

// Assets selects which files under Root become grid columns.
type Assets struct {
	Root      string
	Prefix    string
	Extension string // matched case-insensitively against the file extension only
}

// LabelRule controls how a cell label is cut out of an asset's base name.
type LabelRule struct {
	StripLeading  int
	StripTrailing int
}

// Color is an RGB triple with components in [0,1].
type Color [3]float64

// Appearance holds the fixed material colors used by the generated scene.
type Appearance struct {
	VariantA Color // initial, unselected state
	VariantB Color // state shown after an odd number of activations
	Text     Color // row label text
}

// Layout describes the grid rows and cell geometry.
type Layout struct {
	CellSize   float64
	Scale      float64
	Sentinel   string
	Categories []string
}

// Output describes where and how the finished document is written.
type Output struct {
	Path     string // empty or "-" means the caller's writer
	Format   string
	Manifest string // optional YAML index path
}

// Supported output formats.
const (
	FormatXML  = "xml"
	FormatJSON = "json"
)

// Clone returns a deep copy so overlays never alias the defaults.
func (g *Generator) Clone() *Generator {
	c := *g
	c.Layout.Categories = append([]string(nil), g.Layout.Categories...)
	return &c
}
