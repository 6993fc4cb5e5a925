package models

// Coord addresses a cell. Both indexes are 0-based.
type Coord struct {
	Row int
	Col int
}

// Bounds is the bounding rectangle of all non-empty cells (inclusive).
type Bounds struct {
	MinRow int `json:"min_row"`
	MaxRow int `json:"max_row"`
	MinCol int `json:"min_col"`
	MaxCol int `json:"max_col"`
}

// Contains reports whether the coordinate lies inside the bounds.
func (b Bounds) Contains(row, col int) bool {
	return row >= b.MinRow && row <= b.MaxRow && col >= b.MinCol && col <= b.MaxCol
}

// Grid is a sparse 2-D cell grid. A missing coordinate reads as an empty cell.
type Grid struct {
	cells  map[Coord]Cell
	bounds Bounds
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{cells: make(map[Coord]Cell)}
}

// Set stores a cell and grows the bounds. Empty cells and negative
// coordinates are ignored.
func (g *Grid) Set(row, col int, c Cell) {
	if c.IsEmpty() || row < 0 || col < 0 {
		return
	}
	if len(g.cells) == 0 {
		g.bounds = Bounds{MinRow: row, MaxRow: row, MinCol: col, MaxCol: col}
	} else {
		g.bounds.MinRow = min(g.bounds.MinRow, row)
		g.bounds.MaxRow = max(g.bounds.MaxRow, row)
		g.bounds.MinCol = min(g.bounds.MinCol, col)
		g.bounds.MaxCol = max(g.bounds.MaxCol, col)
	}
	g.cells[Coord{Row: row, Col: col}] = c
}

// Cell returns the cell at (row, col).
func (g *Grid) Cell(row, col int) Cell {
	return g.cells[Coord{Row: row, Col: col}]
}

// Bounds returns the bounding rectangle and false when the grid is empty.
func (g *Grid) Bounds() (Bounds, bool) {
	if len(g.cells) == 0 {
		return Bounds{}, false
	}
	return g.bounds, true
}

// Len returns the number of non-empty cells.
func (g *Grid) Len() int {
	return len(g.cells)
}
