package engine

import "fmt"

type Cell int

const (
	CellEmpty Cell = iota
	CellBot
	CellOpponent
)

func (c Cell) String() string {
	switch c {
	case CellBot:
		return "Bot"
	case CellOpponent:
		return "Opponent"
	default:
		return "Empty"
	}
}

// Other returns the opposing mark. Empty has no opponent.
func (c Cell) Other() Cell {
	switch c {
	case CellBot:
		return CellOpponent
	case CellOpponent:
		return CellBot
	default:
		return CellEmpty
	}
}

func (c Cell) IsMark() bool {
	return c == CellBot || c == CellOpponent
}

func CellFromInt(value int) (Cell, error) {
	switch value {
	case 0:
		return CellEmpty, nil
	case 1:
		return CellBot, nil
	case 2:
		return CellOpponent, nil
	default:
		return CellEmpty, fmt.Errorf("unknown cell value %d", value)
	}
}

func (c Cell) Int() int {
	return int(c)
}
