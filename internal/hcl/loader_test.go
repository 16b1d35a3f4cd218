package hcl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/landmarkgrid/internal/config"
	"github.com/vk/landmarkgrid/internal/testutil"
)

func TestLoader_Parse_FullFile(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	src := `
assets {
  root      = "resources"
  prefix    = "Ann"
  extension = "X3D"
}

label {
  strip_leading  = 4
  strip_trailing = 5
}

appearance {
  variant_a = [0, 1, 0]
  variant_b = [1, 1, 0]
  text      = [0.5, 0.5, 0.5]
}

layout {
  cell_size  = 3
  scale      = 0.5
  sentinel   = "Everything"
  categories = ["Chin", "Glabella"]
}

output {
  path     = "out.x3dj"
  format   = "json"
  manifest = "out.yaml"
}
`
	cfg, err := NewLoader().Parse(ctx, []byte(src), filepath.Join("conf", "gen.hcl"), config.Default())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("conf", "resources"), cfg.Assets.Root)
	assert.Equal(t, "Ann", cfg.Assets.Prefix)
	assert.Equal(t, ".X3D", cfg.Assets.Extension)
	assert.Equal(t, config.LabelRule{StripLeading: 4, StripTrailing: 5}, cfg.Label)
	assert.Equal(t, config.Color{0, 1, 0}, cfg.Appearance.VariantA)
	assert.Equal(t, config.Color{1, 1, 0}, cfg.Appearance.VariantB)
	assert.Equal(t, config.Color{0.5, 0.5, 0.5}, cfg.Appearance.Text)
	assert.Equal(t, 3.0, cfg.Layout.CellSize)
	assert.Equal(t, 0.5, cfg.Layout.Scale)
	assert.Equal(t, "Everything", cfg.Layout.Sentinel)
	assert.Equal(t, []string{"Chin", "Glabella"}, cfg.Layout.Categories)
	assert.Equal(t, config.Output{Path: "out.x3dj", Format: "json", Manifest: "out.yaml"}, cfg.Output)
}

func TestLoader_Parse_PartialKeepsBase(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	base := config.Default()

	cfg, err := NewLoader().Parse(ctx, []byte(`assets { prefix = "Bob" }`), "gen.hcl", base)
	require.NoError(t, err)

	assert.Equal(t, "Bob", cfg.Assets.Prefix)
	assert.Equal(t, base.Assets.Extension, cfg.Assets.Extension)
	assert.Equal(t, base.Appearance, cfg.Appearance)
	assert.Equal(t, base.Layout.Categories, cfg.Layout.Categories)
	assert.Equal(t, "Jin", base.Assets.Prefix, "base must not be modified")
}

func TestLoader_Parse_AbsoluteRootUntouched(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	abs := t.TempDir()
	src := `assets { root = "` + filepath.ToSlash(abs) + `" }`

	cfg, err := NewLoader().Parse(ctx, []byte(src), filepath.Join("elsewhere", "gen.hcl"), config.Default())
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(abs), filepath.Clean(cfg.Assets.Root))
}

func TestLoader_Parse_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		contains string
	}{
		{name: "syntax error", src: `assets {`, contains: "failed to parse"},
		{name: "unknown block", src: `colours {}`, contains: "failed to decode"},
		{name: "unknown attribute", src: `assets { suffix = "x" }`, contains: "failed to decode"},
		{name: "color too short", src: `appearance { variant_a = [1, 0] }`, contains: "exactly 3 components"},
		{name: "color wrong type", src: `appearance { variant_b = "red" }`, contains: "Incorrect attribute value type"},
		{name: "categories wrong type", src: `layout { categories = "Chin" }`, contains: "Incorrect attribute value type"},
		{name: "strip not a number", src: `label { strip_leading = "three" }`, contains: "failed to decode"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := testutil.NewContext(t)
			_, err := NewLoader().Parse(ctx, []byte(tc.src), "gen.hcl", config.Default())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestLoader_Load_FromDisk(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "gen.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`assets { root = "assets" }`), 0o644))

	cfg, err := NewLoader().Load(ctx, path, config.Default())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "assets"), cfg.Assets.Root)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	_, err := NewLoader().Load(ctx, filepath.Join(t.TempDir(), "nope.hcl"), config.Default())
	require.Error(t, err)
}
