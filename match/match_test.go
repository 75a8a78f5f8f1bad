package match

import (
	"errors"
	"testing"

	"github.com/LilConsul/Endless-TicTacToe/engine"
)

func botSettings() Settings {
	settings := DefaultSettings()
	settings.Engine.Depth = 2
	return settings
}

func TestBotOpensInCentre(t *testing.T) {
	m := NewMatch(botSettings())
	if m.CurrentPlayerIsHuman() {
		t.Fatalf("expected bot to move first")
	}
	if _, err := m.SubmitHumanMove(engine.NewMove(0, 0)); !errors.Is(err, ErrNotHumanTurn) {
		t.Fatalf("expected ErrNotHumanTurn, got %v", err)
	}
	move, err := m.PlayBotMove()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if move != engine.NewMove(3, 3) {
		t.Fatalf("expected centre opening, got %v", move)
	}
	state := m.State()
	if state.ToMove != engine.CellOpponent || state.Grid.At(3, 3) != engine.CellBot {
		t.Fatalf("unexpected state after opening: %+v", state)
	}
	if _, err := m.PlayBotMove(); !errors.Is(err, ErrNotBotTurn) {
		t.Fatalf("expected ErrNotBotTurn, got %v", err)
	}
}

func TestHumanMoveGrowsGrid(t *testing.T) {
	m := NewMatch(botSettings())
	if _, err := m.PlayBotMove(); err != nil {
		t.Fatalf("opening failed: %v", err)
	}
	moved, err := m.SubmitHumanMove(engine.NewMove(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state := m.State()
	if moved != engine.NewMove(3, 3) || state.Grid.Size() != 10 {
		t.Fatalf("expected move at (3,3) on 10x10, got %v on %d", moved, state.Grid.Size())
	}
	if state.Grid.At(6, 6) != engine.CellBot || state.Grid.At(3, 3) != engine.CellOpponent {
		t.Fatalf("stones not shifted with growth")
	}
	last, ok := m.History().Last()
	if !ok || last.Move != engine.NewMove(0, 0) || (last.Growth != engine.Growth{Top: 3, Left: 3}) {
		t.Fatalf("unexpected history entry %+v", last)
	}
}

func TestIllegalHumanMove(t *testing.T) {
	m := NewMatch(botSettings())
	m.PlayBotMove()
	if _, err := m.SubmitHumanMove(engine.NewMove(3, 3)); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove on occupied cell, got %v", err)
	}
	if _, err := m.SubmitHumanMove(engine.NewMove(-1, 2)); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove out of range, got %v", err)
	}
	if !m.CurrentPlayerIsHuman() {
		t.Fatalf("illegal move must keep the turn")
	}
}

func TestBotRepliesAfterHuman(t *testing.T) {
	m := NewMatch(botSettings())
	m.PlayBotMove()
	if _, err := m.SubmitHumanMove(engine.NewMove(2, 2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	played, err := m.Tick()
	if err != nil || !played {
		t.Fatalf("expected bot to play on tick, got %v %v", played, err)
	}
	if m.History().Size() != 3 {
		t.Fatalf("expected 3 history entries, got %d", m.History().Size())
	}
	played, err = m.Tick()
	if err != nil || played {
		t.Fatalf("tick on human turn must do nothing")
	}
}

func TestTwoHumansAlternateAndWin(t *testing.T) {
	settings := DefaultSettings()
	settings.BotEnabled = false
	settings.GrowMargin = 0
	m := NewMatch(settings)
	if _, err := m.PlayBotMove(); !errors.Is(err, ErrBotDisabled) {
		t.Fatalf("expected ErrBotDisabled, got %v", err)
	}
	moves := []engine.Move{
		{Row: 0, Col: 0}, {Row: 1, Col: 0},
		{Row: 0, Col: 1}, {Row: 1, Col: 1},
		{Row: 0, Col: 2}, {Row: 1, Col: 2},
		{Row: 0, Col: 3}, {Row: 1, Col: 3},
		{Row: 0, Col: 4},
	}
	for i, move := range moves {
		if _, err := m.SubmitHumanMove(move); err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
	}
	state := m.State()
	if state.Grid.At(0, 0) != engine.CellOpponent || state.Grid.At(1, 0) != engine.CellBot {
		t.Fatalf("expected Opponent to start and marks to alternate")
	}
	if state.Status != StatusOpponentWon {
		t.Fatalf("expected opponent win, got %s", state.Status)
	}
	if _, err := m.SubmitHumanMove(engine.NewMove(5, 5)); !errors.Is(err, ErrMatchOver) {
		t.Fatalf("expected ErrMatchOver, got %v", err)
	}
}

func TestControllerReset(t *testing.T) {
	c := NewController(botSettings())
	first := c.State().ID
	if first != c.match.ID() {
		t.Fatalf("state id %q does not match match id %q", first, c.match.ID())
	}
	played, err := c.Tick()
	if err != nil || !played {
		t.Fatalf("expected bot opening on tick, got %v %v", played, err)
	}
	c.Reset(botSettings())
	state := c.State()
	if state.ID == first {
		t.Fatalf("expected a new match id after reset")
	}
	if state.Grid.Stones() != 0 || c.History().Size() != 0 {
		t.Fatalf("expected empty match after reset")
	}
	if _, ok := c.LatestHistoryEntry(); ok {
		t.Fatalf("expected no history entry")
	}
}

func TestBotMarkFiveWinsMatch(t *testing.T) {
	settings := DefaultSettings()
	settings.BotEnabled = false
	settings.GrowMargin = 0
	m := NewMatch(settings)
	moves := []engine.Move{
		{Row: 6, Col: 0}, {Row: 0, Col: 0},
		{Row: 6, Col: 2}, {Row: 0, Col: 1},
		{Row: 6, Col: 4}, {Row: 0, Col: 2},
		{Row: 6, Col: 6}, {Row: 0, Col: 3},
		{Row: 4, Col: 0}, {Row: 0, Col: 4},
	}
	for i, move := range moves {
		if _, err := m.SubmitHumanMove(move); err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
		if i < len(moves)-1 && m.State().Status != StatusRunning {
			t.Fatalf("match ended early after move %d: %s", i, m.State().Status)
		}
	}
	if status := m.State().Status; status != StatusBotWon {
		t.Fatalf("expected bot win, got %s", status)
	}
}

func TestOpenThreesAreNotABotWin(t *testing.T) {
	settings := DefaultSettings()
	settings.BoardSize = 30
	settings.BotEnabled = false
	settings.GrowMargin = 0
	m := NewMatch(settings)
	// Three separate 3x3 blocks: plenty of open threes, no five.
	for _, corner := range []int{2, 10, 18} {
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				m.grid.Place(2+r, corner+c, engine.CellBot)
			}
		}
	}
	if engine.Score(m.grid, engine.CellBot, true) < engine.WinScore {
		t.Fatalf("fixture should rate at WinScore on the bot's turn")
	}
	m.updateStatus()
	if m.status != StatusRunning {
		t.Fatalf("expected match to keep running without a five, got %s", m.status)
	}
}
