package builder

import (
	"context"
	"fmt"

	"github.com/vk/landmarkgrid/internal/ctxlog"
	"github.com/vk/landmarkgrid/internal/layout"
	"github.com/vk/landmarkgrid/internal/nodeid"
	"github.com/vk/landmarkgrid/internal/scene"
	"github.com/vk/landmarkgrid/internal/wiring"
)

// GridBuilder is the default Builder.
type GridBuilder struct {
	style Style
}

var _ Builder = (*GridBuilder)(nil)

// New creates a builder drawing cells with style.
func New(style Style) *GridBuilder {
	return &GridBuilder{style: style}
}

// Build implements the Builder interface.
func (b *GridBuilder) Build(ctx context.Context, sc scene.Context, plan *layout.Plan) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting scene construction.", "rows", len(plan.Rows), "columns", plan.Columns)

	wirer := wiring.NewWirer()
	res := &Result{Cells: make([]BuiltCell, 0, plan.CellCount())}

	for _, row := range plan.Rows {
		rowCtx := ctxlog.With(ctx, "row", row.Category.Index, "category", row.Category.Name)
		for _, cell := range row.Cells {
			built, err := b.buildCell(rowCtx, sc, wirer, cell)
			if err != nil {
				return nil, fmt.Errorf("building cell %q (row %d, column %d): %w", cell.Label, cell.Row, cell.Column, err)
			}
			res.Cells = append(res.Cells, built)
			res.Stats.Cells++
			res.Stats.Routes += 3
			res.Stats.Identifiers += len(built.IDs)
		}

		if err := b.buildRowLabel(sc, row.Label); err != nil {
			return nil, fmt.Errorf("building row label %q: %w", row.Label.Text, err)
		}
		res.Stats.RowLabels++
		ctxlog.FromContext(rowCtx).Debug("Build: Row complete.", "cells", len(row.Cells))
	}

	if wired := wirer.Chains(); wired != res.Stats.Cells {
		panic(fmt.Sprintf("builder: %d chains wired for %d cells", wired, res.Stats.Cells))
	}

	logger.Info("Build: Scene construction successful.",
		"cells", res.Stats.Cells,
		"routes", res.Stats.Routes,
		"row_labels", res.Stats.RowLabels,
		"identifiers", res.Stats.Identifiers,
	)
	return res, nil
}

// buildCell constructs one cell inside a savepoint and attaches it to the
// root only once every step has succeeded.
func (b *GridBuilder) buildCell(ctx context.Context, sc scene.Context, wirer *wiring.Wirer, cell layout.Cell) (built BuiltCell, err error) {
	logger := ctxlog.FromContext(ctx)
	mark := sc.Savepoint()
	var wired *wiring.Chain
	defer func() {
		if err == nil {
			return
		}
		if wired != nil {
			wirer.Release(*wired)
		}
		if rbErr := sc.Rollback(mark); rbErr != nil {
			err = fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		logger.Debug("Build: Cell discarded.", "label", cell.Label, "error", err)
	}()

	selector, err := create(sc, nodeSpec{
		kind:   scene.KindSwitch,
		fields: []scene.Field{field(scene.FieldWhichChoice, scene.SFInt32(0))},
		children: []nodeSpec{
			rectangleShape(b.style.CellSize, b.style.VariantA),
			rectangleShape(b.style.CellSize, b.style.VariantB),
		},
	})
	if err != nil {
		return BuiltCell{}, err
	}

	chain, err := wirer.NewChain(sc, selector, cell.Description)
	if err != nil {
		return BuiltCell{}, err
	}

	addrs := nodeid.ForCell(cell.Label)
	ids := make([]string, len(addrs))
	names := make([]scene.NamedHandle, len(addrs))
	for i, a := range addrs {
		ids[i] = a.String()
		names[i] = scene.NamedHandle{ID: ids[i], Handle: chain.Handle(a.Role)}
	}
	if err := sc.AddNamedNodes(names); err != nil {
		return BuiltCell{}, err
	}
	if !nodeid.Portable(ids[0]) {
		logger.Warn("Build: Identifier is not a portable X3D name.", "id", ids[0])
	}

	if _, err := wirer.Wire(sc, chain); err != nil {
		return BuiltCell{}, err
	}
	wired = &chain

	s := b.style.Scale
	container, err := create(sc, nodeSpec{
		kind: scene.KindTransform,
		fields: []scene.Field{
			field("translation", scene.SFVec3f{cell.Position.X, cell.Position.Y, 0}),
			field("scale", scene.SFVec3f{s, s, s}),
		},
	})
	if err != nil {
		return BuiltCell{}, err
	}
	for _, h := range []scene.Handle{chain.Sensor, chain.Trigger, chain.Sequencer, chain.Selector} {
		if err := sc.AppendChild(container, h); err != nil {
			return BuiltCell{}, err
		}
	}
	if err := sc.AppendChild(sc.Root(), container); err != nil {
		return BuiltCell{}, err
	}

	return BuiltCell{Cell: cell, Container: container, Chain: chain, IDs: ids}, nil
}

func (b *GridBuilder) buildRowLabel(sc scene.Context, label layout.RowLabel) error {
	h, err := create(sc, textLabel(label.Text, label.Position.X, label.Position.Y, b.style.Text))
	if err != nil {
		return err
	}
	return sc.AppendChild(sc.Root(), h)
}
