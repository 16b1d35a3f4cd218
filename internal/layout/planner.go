package layout

import (
	"context"
	"fmt"
	"path"

	"github.com/vk/landmarkgrid/internal/config"
	"github.com/vk/landmarkgrid/internal/ctxlog"
)

// Categories builds the ordered row list: the named categories followed by
// the sentinel.
func Categories(names []string, sentinel string) []Category {
	cats := make([]Category, 0, len(names)+1)
	for i, n := range names {
		cats = append(cats, Category{Index: i, Name: n})
	}
	return append(cats, Category{Index: len(names), Name: sentinel, Sentinel: true})
}

// StripCore removes the leading and trailing character counts from a base
// name. Counts are in runes and a name too short for both yields "".
func StripCore(base string, leading, trailing int) string {
	r := []rune(base)
	if leading+trailing >= len(r) {
		return ""
	}
	return string(r[leading : len(r)-trailing])
}

// Planner computes grid plans under a label rule.
type Planner struct {
	rule config.LabelRule
}

// NewPlanner creates a planner that cuts labels with rule.
func NewPlanner(rule config.LabelRule) *Planner {
	return &Planner{rule: rule}
}

func (p *Planner) core(asset string) string {
	return StripCore(path.Base(asset), p.rule.StripLeading, p.rule.StripTrailing)
}

// Label derives a cell label: the stripped asset base name followed by the
// category name.
func (p *Planner) Label(asset string, cat Category) string {
	return p.core(asset) + cat.Name
}

// Description derives the human-readable cell text shown by viewers.
func (p *Planner) Description(asset string, cat Category) string {
	return p.core(asset) + " " + cat.Name
}

// Plan lays out every (category, asset) pair. categories must already end
// with the sentinel (see Categories).
func (p *Planner) Plan(ctx context.Context, categories []Category, assets []string) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)
	if len(categories) == 0 {
		return nil, fmt.Errorf("layout: no categories to plan")
	}
	for i, c := range categories {
		if c.Index != i {
			return nil, fmt.Errorf("layout: category %q has index %d at position %d", c.Name, c.Index, i)
		}
	}
	if !categories[len(categories)-1].Sentinel {
		return nil, fmt.Errorf("layout: last category %q is not the sentinel", categories[len(categories)-1].Name)
	}

	n := len(assets)
	rows := len(categories)
	half := float64(n) / 2
	rowHalf := float64(rows) / 2

	plan := &Plan{Columns: n, Rows: make([]Row, 0, rows)}
	for r, cat := range categories {
		baseY := float64(r) - rowHalf
		row := Row{
			Category: cat,
			Cells:    make([]Cell, 0, n),
			Label: RowLabel{
				Row:      r,
				Text:     cat.Name,
				Position: Position{X: float64(n) - half, Y: baseY + 0.5},
			},
		}
		for c, asset := range assets {
			row.Cells = append(row.Cells, Cell{
				Row:         r,
				Column:      c,
				Category:    cat,
				Asset:       asset,
				Label:       p.Label(asset, cat),
				Description: p.Description(asset, cat),
				Position:    Position{X: float64(c) - half, Y: baseY},
			})
		}
		plan.Rows = append(plan.Rows, row)
	}

	logger.Debug("Grid planned.", "rows", rows, "columns", n, "cells", plan.CellCount())
	return plan, nil
}
