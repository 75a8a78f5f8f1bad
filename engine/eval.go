package engine

import "sync"

// WinScore is the rating of a completed five-in-a-row.
const WinScore = 1_000_000

const (
	openFourScore = 10 * WinScore
	overlineScore = 2 * WinScore
)

type lineCache struct {
	mu    sync.Mutex
	lines map[int][][]int
}

var cachedLines = &lineCache{lines: make(map[int][][]int)}

// getLinesForSize returns the flat cell indices of every row, column and
// diagonal of a size x size grid. Diagonals of any length are included.
func getLinesForSize(size int) [][]int {
	cachedLines.mu.Lock()
	defer cachedLines.mu.Unlock()
	if lines, ok := cachedLines.lines[size]; ok {
		return lines
	}
	lines := buildLines(size)
	cachedLines.lines[size] = lines
	return lines
}

func buildLines(size int) [][]int {
	lines := [][]int{}
	if size <= 0 {
		return lines
	}
	// Rows.
	for r := 0; r < size; r++ {
		line := make([]int, 0, size)
		for c := 0; c < size; c++ {
			line = append(line, r*size+c)
		}
		lines = append(lines, line)
	}
	// Cols.
	for c := 0; c < size; c++ {
		line := make([]int, 0, size)
		for r := 0; r < size; r++ {
			line = append(line, r*size+c)
		}
		lines = append(lines, line)
	}
	// Anti-diagonals (/), constant row+col.
	for k := 0; k <= 2*(size-1); k++ {
		rStart := maxInt(0, k-size+1)
		rEnd := minInt(size-1, k)
		line := make([]int, 0, rEnd-rStart+1)
		for r := rStart; r <= rEnd; r++ {
			line = append(line, r*size+(k-r))
		}
		lines = append(lines, line)
	}
	// Diagonals (\), constant row-col.
	for k := 1 - size; k < size; k++ {
		rStart := maxInt(0, k)
		rEnd := minInt(size+k-1, size-1)
		line := make([]int, 0, rEnd-rStart+1)
		for r := rStart; r <= rEnd; r++ {
			line = append(line, r*size+(r-k))
		}
		lines = append(lines, line)
	}
	return lines
}

// Score rates every run of mark on the grid. marksTurn reports whether mark is
// the side to move, which raises the value of open threes and twos.
func Score(g Grid, mark Cell, marksTurn bool) int {
	total := 0
	for _, line := range getLinesForSize(g.Size()) {
		total += scoreLine(g.cells, line, mark, marksTurn)
	}
	return total
}

// runScan carries the state of one line walk: the length of the current run of
// the scanned mark and how many of its ends are closed so far.
type runScan struct {
	run     int
	blocked int
	score   int
}

func scoreLine(cells []Cell, line []int, mark Cell, marksTurn bool) int {
	s := runScan{blocked: 2}
	for _, idx := range line {
		s.step(cells[idx], mark, marksTurn)
	}
	s.finish(marksTurn)
	return s.score
}

func (s *runScan) step(cell Cell, mark Cell, marksTurn bool) {
	switch cell {
	case mark:
		s.run++
	case CellEmpty:
		if s.run > 0 {
			s.blocked--
			s.score += rateRun(s.run, s.blocked, marksTurn)
			s.run = 0
		}
		s.blocked = 1
	default:
		if s.run > 0 {
			s.score += rateRun(s.run, s.blocked, marksTurn)
			s.run = 0
		}
		s.blocked = 2
	}
}

// finish closes a run that touches the end of the line; the boundary counts as
// a blocked end.
func (s *runScan) finish(marksTurn bool) {
	if s.run > 0 {
		s.score += rateRun(s.run, s.blocked, marksTurn)
	}
	s.run = 0
	s.blocked = 2
}

func rateRun(count, blocked int, currentTurn bool) int {
	if blocked == 2 && count < 5 {
		return 0
	}
	switch count {
	case 5:
		return WinScore
	case 4:
		if blocked == 0 {
			return openFourScore
		}
		return 200
	case 3:
		if blocked == 0 {
			if currentTurn {
				return 50000
			}
			return 200
		}
		if currentTurn {
			return 10
		}
		return 5
	case 2:
		if blocked == 0 {
			if currentTurn {
				return 7
			}
			return 5
		}
		return 3
	case 1:
		return 1
	}
	return overlineScore
}

// IsWin reports whether mark's position rates at or above WinScore.
func IsWin(g Grid, mark Cell, marksTurn bool) bool {
	return Score(g, mark, marksTurn) >= WinScore
}

// leafValue is the search utility: the bot's score over the opponent's, each
// rated with its own turn flag. A zero opponent score counts as one.
func leafValue(g Grid, botToMove bool) float64 {
	botScore := float64(Score(g, CellBot, botToMove))
	opponentScore := float64(Score(g, CellOpponent, !botToMove))
	if opponentScore == 0 {
		opponentScore = 1.0
	}
	return botScore / opponentScore
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
