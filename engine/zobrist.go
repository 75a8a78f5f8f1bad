package engine

import "sync"

// zobristTable holds one random key per (cell, mark) of a size x size grid
// and a key xored in when the Bot is to move.
type zobristTable struct {
	size     int
	bot      []uint64
	opponent []uint64
	side     uint64
}

// zobristTables maps a grid side length to its *zobristTable. A grown grid
// moves on to the table of its new size.
var zobristTables sync.Map

func getZobrist(size int) *zobristTable {
	if table, ok := zobristTables.Load(size); ok {
		return table.(*zobristTable)
	}
	table, _ := zobristTables.LoadOrStore(size, newZobristTable(size))
	return table.(*zobristTable)
}

// newZobristTable is deterministic per size, so hashes are stable across runs.
func newZobristTable(size int) *zobristTable {
	state := 0x6a09e667f3bcc908 ^ uint64(size)*0x100000001b3
	table := &zobristTable{
		size:     size,
		bot:      make([]uint64, size*size),
		opponent: make([]uint64, size*size),
	}
	for i := range table.bot {
		table.bot[i] = splitmix(&state)
		table.opponent[i] = splitmix(&state)
	}
	table.side = splitmix(&state)
	return table
}

func (z *zobristTable) stone(row, col int, cell Cell) uint64 {
	idx := row*z.size + col
	if cell == CellBot {
		return z.bot[idx]
	}
	return z.opponent[idx]
}

// position keys the stones plus the side to move.
func (z *zobristTable) position(stones uint64, botToMove bool) uint64 {
	if botToMove {
		return stones ^ z.side
	}
	return stones
}

// Hash is the zobrist key of the grid contents. Keys of grids with different
// sizes come from different tables and are not comparable.
func (g Grid) Hash() uint64 {
	z := getZobrist(g.size)
	var hash uint64
	for idx, cell := range g.cells {
		if cell.IsMark() {
			hash ^= z.stone(idx/g.size, idx%g.size, cell)
		}
	}
	return hash
}

func splitmix(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
