package engine

// Grid is a square, growable matrix of cells stored row-major.
// Copying a Grid shares its storage; use Clone for an independent copy.
type Grid struct {
	size  int
	cells []Cell
}

var neighbourDirections = [8][2]int{
	{-1, 0},  // N
	{-1, 1},  // NE
	{0, 1},   // E
	{1, 1},   // SE
	{1, 0},   // S
	{1, -1},  // SW
	{0, -1},  // W
	{-1, -1}, // NW
}

func NewGrid(size int) Grid {
	g := Grid{}
	g.Reset(size)
	return g
}

func (g *Grid) Reset(size int) {
	if size < 0 {
		size = 0
	}
	g.size = size
	g.cells = make([]Cell, size*size)
}

// GridFromRows builds a grid from row-major cell values. Rows must form a square.
func GridFromRows(rows [][]Cell) (Grid, bool) {
	size := len(rows)
	g := NewGrid(size)
	for r, row := range rows {
		if len(row) != size {
			return Grid{}, false
		}
		copy(g.cells[r*size:(r+1)*size], row)
	}
	return g, true
}

func (g Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.size)
	for r := 0; r < g.size; r++ {
		rows[r] = append([]Cell(nil), g.cells[r*g.size:(r+1)*g.size]...)
	}
	return rows
}

func (g Grid) Size() int {
	return g.size
}

func (g Grid) At(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < g.size && col < g.size
}

func (g Grid) IsEmpty(row, col int) bool {
	return g.InBounds(row, col) && g.At(row, col) == CellEmpty
}

// Place writes cell at (row, col) when the target is in range and empty.
func (g *Grid) Place(row, col int, cell Cell) bool {
	if !cell.IsMark() || !g.IsEmpty(row, col) {
		return false
	}
	g.cells[g.index(row, col)] = cell
	return true
}

// PlaceUnchecked writes without validation. Callers must pass generated moves.
func (g *Grid) PlaceUnchecked(row, col int, cell Cell) {
	g.cells[g.index(row, col)] = cell
}

func (g *Grid) Remove(row, col int) {
	g.cells[g.index(row, col)] = CellEmpty
}

func (g Grid) Stones() int {
	count := 0
	for _, cell := range g.cells {
		if cell != CellEmpty {
			count++
		}
	}
	return count
}

func (g Grid) Clone() Grid {
	clone := Grid{size: g.size}
	clone.cells = make([]Cell, len(g.cells))
	copy(clone.cells, g.cells)
	return clone
}

func (g Grid) Equal(other Grid) bool {
	if g.size != other.size {
		return false
	}
	for i, cell := range g.cells {
		if other.cells[i] != cell {
			return false
		}
	}
	return true
}

// CandidateMoves lists every empty cell touching at least one stone, in row-major order.
func (g Grid) CandidateMoves() []Move {
	return g.AppendCandidateMoves(nil)
}

func (g Grid) AppendCandidateMoves(moves []Move) []Move {
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[g.index(r, c)] != CellEmpty {
				continue
			}
			if g.hasStoneNeighbour(r, c) {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

func (g Grid) hasStoneNeighbour(row, col int) bool {
	for _, dir := range neighbourDirections {
		nr := row + dir[0]
		nc := col + dir[1]
		if g.InBounds(nr, nc) && g.cells[g.index(nr, nc)] != CellEmpty {
			return true
		}
	}
	return false
}

// Grow inserts empty rows and columns at the edges until at least margin empty
// cells surround around on every side. It returns around's coordinates after the
// insertion together with the number of lines added per side. The matrix stays
// square: any shortfall on one axis is padded at the bottom or right edge.
func (g *Grid) Grow(around Move, margin int) (Move, Growth) {
	if margin <= 0 {
		return around, Growth{}
	}
	growth := Growth{
		Top:    maxInt(0, margin-around.Row),
		Bottom: maxInt(0, around.Row+margin-(g.size-1)),
		Left:   maxInt(0, margin-around.Col),
		Right:  maxInt(0, around.Col+margin-(g.size-1)),
	}
	rows := g.size + growth.Top + growth.Bottom
	cols := g.size + growth.Left + growth.Right
	if rows > cols {
		growth.Right += rows - cols
	} else if cols > rows {
		growth.Bottom += cols - rows
	}
	if growth.IsZero() {
		return around, growth
	}

	newSize := g.size + growth.Top + growth.Bottom
	cells := make([]Cell, newSize*newSize)
	for r := 0; r < g.size; r++ {
		dst := (r+growth.Top)*newSize + growth.Left
		copy(cells[dst:dst+g.size], g.cells[r*g.size:(r+1)*g.size])
	}
	g.size = newSize
	g.cells = cells

	around.Row += growth.Top
	around.Col += growth.Left
	return around, growth
}

func (g Grid) index(row, col int) int {
	return row*g.size + col
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
