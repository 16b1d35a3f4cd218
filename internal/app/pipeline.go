package app

import (
	"context"
	"fmt"

	"github.com/vk/landmarkgrid/internal/builder"
	"github.com/vk/landmarkgrid/internal/config"
	"github.com/vk/landmarkgrid/internal/ctxlog"
	"github.com/vk/landmarkgrid/internal/fsutil"
	"github.com/vk/landmarkgrid/internal/interaction"
	"github.com/vk/landmarkgrid/internal/layout"
	"github.com/vk/landmarkgrid/internal/manifest"
	"github.com/vk/landmarkgrid/internal/registry"
	"github.com/vk/landmarkgrid/internal/scene"
	"github.com/vk/landmarkgrid/internal/session"
	"github.com/vk/landmarkgrid/internal/x3d"
)

// RootName is the DEF name of the shared root container.
const RootName = "shapeContainer"

// Options tune a single generation.
type Options struct {
	// Verify simulates two activations on every cell after building.
	Verify bool
}

// Output is everything one generation produced.
type Output struct {
	Assets   []string
	Plan     *layout.Plan
	Scene    *scene.Scene
	Registry *registry.Registry
	Result   *builder.Result
	Document []byte
	Manifest *manifest.Manifest
}

// Generate runs the staged pipeline scan, plan, build, verify and serialize
// for gen. Any stage failure aborts the remaining stages.
func Generate(ctx context.Context, gen *config.Generator, opts Options) (*Output, error) {
	logger := ctxlog.FromContext(ctx)
	if err := gen.Validate(); err != nil {
		return nil, err
	}

	assets, err := fsutil.ScanDir(ctx, gen.Assets.Root, fsutil.Filter{
		Prefix:    gen.Assets.Prefix,
		Extension: gen.Assets.Extension,
	})
	if err != nil {
		return nil, fmt.Errorf("scanning assets: %w", err)
	}
	if len(assets) == 0 {
		logger.Warn("No assets matched; the grid will hold row labels only.", "root", gen.Assets.Root)
	}

	categories := layout.Categories(gen.Layout.Categories, gen.Layout.Sentinel)
	plan, err := layout.NewPlanner(gen.Label).Plan(ctx, categories, assets)
	if err != nil {
		return nil, fmt.Errorf("planning grid: %w", err)
	}

	sess, err := session.New(ctx, RootName)
	if err != nil {
		return nil, err
	}
	res, err := builder.New(builder.StyleFromConfig(gen)).Build(ctx, sess, plan)
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}
	sc, reg := sess.Close()

	if opts.Verify {
		if err := interaction.VerifyAll(ctx, sc, res.Cells); err != nil {
			return nil, fmt.Errorf("verifying interaction: %w", err)
		}
	}

	doc, err := x3d.Marshal(sc, x3d.Format(gen.Output.Format), x3d.Options{Title: "Landmark grid"})
	if err != nil {
		return nil, fmt.Errorf("serializing scene: %w", err)
	}
	logger.Info("Scene serialized.", "format", gen.Output.Format, "bytes", len(doc))

	index, err := manifest.New(x3d.Generator, gen.Output.Path, plan.Columns, len(plan.Rows), res)
	if err != nil {
		return nil, err
	}

	return &Output{
		Assets:   assets,
		Plan:     plan,
		Scene:    sc,
		Registry: reg,
		Result:   res,
		Document: doc,
		Manifest: index,
	}, nil
}
