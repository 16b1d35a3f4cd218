package layout

// Category is one grid row.
type Category struct {
	Index    int
	Name     string
	Sentinel bool // the synthetic last row covering every landmark
}

// Position is a grid coordinate in scene units before container scaling.
type Position struct {
	X, Y float64
}

// Cell is one interactive (category, asset) pairing.
type Cell struct {
	Row      int
	Column   int
	Category Category
	Asset    string // forward-slash asset path
	Label    string
	// Description is the sensor tooltip: the stripped core and the category
	// name separated by a space.
	Description string
	Position    Position
}

// RowLabel is the non-interactive text placed after a row's last cell.
type RowLabel struct {
	Row      int
	Text     string
	Position Position
}

// Row groups a category's cells with its label.
type Row struct {
	Category Category
	Cells    []Cell
	Label    RowLabel
}

// Plan is the complete grid for one run.
type Plan struct {
	Columns int
	Rows    []Row
}

// CellCount returns the number of interactive cells.
func (p *Plan) CellCount() int {
	n := 0
	for _, r := range p.Rows {
		n += len(r.Cells)
	}
	return n
}

// Cells returns every cell in row-major order.
func (p *Plan) Cells() []Cell {
	cells := make([]Cell, 0, p.CellCount())
	for _, r := range p.Rows {
		cells = append(cells, r.Cells...)
	}
	return cells
}
