/*
Package layout plans the landmark grid: it turns the ordered category list and
the scanned asset list into rows of cells, each with a centered grid position
and a text label, plus one text-only row label per category.

Rows follow the category order with the sentinel row appended last; columns
follow the scanner's order. For R rows and N columns the cell at (r, c) sits at

	x = c - N/2
	y = r - R/2

using real division, and the row label of row r sits one column past the last
asset at (N - N/2, r - R/2 + 0.5). A plan is a pure function of its inputs.
*/
package layout
