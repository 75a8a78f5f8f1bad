package engine

import "testing"

func TestPlaceRejectsOccupiedAndOutOfRange(t *testing.T) {
	g := NewGrid(7)
	if !g.Place(3, 3, CellBot) {
		t.Fatalf("expected placement on empty cell to succeed")
	}
	if g.At(3, 3) != CellBot {
		t.Fatalf("expected Bot at (3,3), got %s", g.At(3, 3))
	}
	if g.Place(3, 3, CellOpponent) {
		t.Fatalf("expected second placement on the same cell to fail")
	}
	if g.At(3, 3) != CellBot {
		t.Fatalf("failed placement must not change the cell")
	}
	if g.Place(-1, 0, CellBot) || g.Place(0, 7, CellBot) {
		t.Fatalf("expected out of range placement to fail")
	}
	if g.Place(0, 0, CellEmpty) {
		t.Fatalf("expected placing Empty to fail")
	}
	if g.Stones() != 1 {
		t.Fatalf("expected 1 stone, got %d", g.Stones())
	}
}

func TestRemoveThenPlaceOtherMark(t *testing.T) {
	g := NewGrid(5)
	g.Place(2, 2, CellBot)
	g.Remove(2, 2)
	if !g.Place(2, 2, CellOpponent) {
		t.Fatalf("expected placement after removal to succeed")
	}
	if g.At(2, 2) != CellOpponent {
		t.Fatalf("expected Opponent at (2,2), got %s", g.At(2, 2))
	}
}

func TestCandidateMovesEmptyGrid(t *testing.T) {
	g := NewGrid(7)
	if moves := g.CandidateMoves(); len(moves) != 0 {
		t.Fatalf("expected no candidates on empty grid, got %v", moves)
	}
}

func TestCandidateMovesAroundSingleStone(t *testing.T) {
	g := NewGrid(7)
	g.Place(3, 3, CellOpponent)
	want := []Move{
		{2, 2}, {2, 3}, {2, 4},
		{3, 2}, {3, 4},
		{4, 2}, {4, 3}, {4, 4},
	}
	got := g.CandidateMoves()
	if len(got) != len(want) {
		t.Fatalf("expected %d candidates, got %v", len(want), got)
	}
	for i := range want {
		if !got[i].Equals(want[i]) {
			t.Fatalf("candidate %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestCandidateMovesCornerStone(t *testing.T) {
	g := NewGrid(7)
	g.Place(0, 0, CellBot)
	want := []Move{{0, 1}, {1, 0}, {1, 1}}
	got := g.CandidateMoves()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if !got[i].Equals(want[i]) {
			t.Fatalf("candidate %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestGrowAtTopEdge(t *testing.T) {
	g := NewGrid(7)
	g.Place(0, 3, CellBot)
	g.Place(6, 6, CellOpponent)

	moved, growth := g.Grow(Move{Row: 0, Col: 3}, 3)
	if growth.Top != 3 || growth.Left != 0 {
		t.Fatalf("expected 3 rows on top and none on the left, got %+v", growth)
	}
	if moved.Row != 3 || moved.Col != 3 {
		t.Fatalf("expected move to shift to (3,3), got %v", moved)
	}
	if g.Size() != 7+growth.Top+growth.Bottom || g.Size() != 7+growth.Left+growth.Right {
		t.Fatalf("grid must stay square: size %d growth %+v", g.Size(), growth)
	}
	if g.At(3, 3) != CellBot {
		t.Fatalf("expected Bot at shifted (3,3)")
	}
	if g.At(9, 6) != CellOpponent {
		t.Fatalf("expected Opponent at shifted (9,6)")
	}
	if g.Stones() != 2 {
		t.Fatalf("growth must not add or drop stones, got %d", g.Stones())
	}
}

func TestGrowCorner(t *testing.T) {
	g := NewGrid(7)
	g.Place(0, 0, CellBot)
	moved, growth := g.Grow(Move{}, 3)
	if (growth != Growth{Top: 3, Left: 3}) {
		t.Fatalf("unexpected growth %+v", growth)
	}
	if g.Size() != 10 || moved != (Move{Row: 3, Col: 3}) {
		t.Fatalf("unexpected size %d or move %v", g.Size(), moved)
	}
}

func TestGrowNoopWhenMarginAvailable(t *testing.T) {
	g := NewGrid(7)
	g.Place(3, 3, CellBot)
	before := g.Clone()
	moved, growth := g.Grow(Move{Row: 3, Col: 3}, 3)
	if !growth.IsZero() || moved != (Move{Row: 3, Col: 3}) {
		t.Fatalf("expected no growth, got %+v move %v", growth, moved)
	}
	if !g.Equal(before) {
		t.Fatalf("grid changed without growth")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(5)
	g.Place(1, 1, CellBot)
	c := g.Clone()
	c.Place(2, 2, CellOpponent)
	if g.At(2, 2) != CellEmpty {
		t.Fatalf("clone shares storage with source")
	}
}

func TestGridFromRowsRejectsNonSquare(t *testing.T) {
	if _, ok := GridFromRows([][]Cell{{0, 0}, {0}}); ok {
		t.Fatalf("expected ragged rows to be rejected")
	}
	g, ok := GridFromRows([][]Cell{{CellBot, 0}, {0, CellOpponent}})
	if !ok || g.At(0, 0) != CellBot || g.At(1, 1) != CellOpponent {
		t.Fatalf("unexpected grid from rows")
	}
}
