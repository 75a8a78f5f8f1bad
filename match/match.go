package match

import (
	"fmt"
	"log"
	"time"

	"github.com/LilConsul/Endless-TicTacToe/engine"
	"github.com/google/uuid"
)

type Status int

const (
	StatusRunning Status = iota
	StatusBotWon
	StatusOpponentWon
	StatusStalled
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusBotWon:
		return "bot won"
	case StatusOpponentWon:
		return "opponent won"
	case StatusStalled:
		return "stalled"
	default:
		return "unknown"
	}
}

// State is a snapshot of a match. Grid is an independent copy.
type State struct {
	ID          string      `json:"id"`
	Grid        engine.Grid `json:"-"`
	ToMove      engine.Cell `json:"to_move"`
	Status      Status      `json:"status"`
	HasLastMove bool        `json:"has_last_move"`
	LastMove    engine.Move `json:"last_move"`
}

// Match is one game between a human and the bot, or between two humans.
// It is not safe for concurrent use; Controller serializes access.
type Match struct {
	id             string
	settings       Settings
	grid           engine.Grid
	toMove         engine.Cell
	status         Status
	hasLastMove    bool
	lastMove       engine.Move
	history        MoveHistory
	botPlayer      Player
	opponentPlayer Player
	turnStart      time.Time
}

func NewMatch(settings Settings) *Match {
	m := &Match{}
	m.Reset(settings)
	return m
}

// Reset starts a fresh match. With the bot enabled the bot moves first and
// opens in the centre; between two humans the Opponent mark starts.
func (m *Match) Reset(settings Settings) {
	m.id = uuid.NewString()
	m.settings = settings
	m.grid = engine.NewGrid(settings.BoardSize)
	m.status = StatusRunning
	m.hasLastMove = false
	m.lastMove = engine.Move{}
	m.history.Clear()
	m.createPlayers()
	if settings.BotEnabled {
		m.toMove = engine.CellBot
	} else {
		m.toMove = engine.CellOpponent
	}
	m.turnStart = time.Now()
	m.logMatchup()
}

func (m *Match) ID() string {
	return m.id
}

func (m *Match) Settings() Settings {
	return m.settings
}

func (m *Match) State() State {
	return State{
		ID:          m.id,
		Grid:        m.grid.Clone(),
		ToMove:      m.toMove,
		Status:      m.status,
		HasLastMove: m.hasLastMove,
		LastMove:    m.lastMove,
	}
}

func (m *Match) History() MoveHistory {
	return m.history
}

func (m *Match) CurrentPlayerIsHuman() bool {
	player := m.currentPlayer()
	return player != nil && player.IsHuman()
}

// SubmitHumanMove places the human's stone for the side to move.
func (m *Match) SubmitHumanMove(move engine.Move) (engine.Move, error) {
	if m.status != StatusRunning {
		return engine.Move{}, ErrMatchOver
	}
	if !m.CurrentPlayerIsHuman() {
		return engine.Move{}, ErrNotHumanTurn
	}
	return m.tryApplyMove(move, Choice{Move: move}, false)
}

// PlayBotMove asks the bot for its move and applies it. ErrNoMove ends the
// match as stalled.
func (m *Match) PlayBotMove() (engine.Move, error) {
	if !m.settings.BotEnabled {
		return engine.Move{}, ErrBotDisabled
	}
	if m.status != StatusRunning {
		return engine.Move{}, ErrMatchOver
	}
	if m.CurrentPlayerIsHuman() {
		return engine.Move{}, ErrNotBotTurn
	}
	choice, ok := m.currentPlayer().ChooseMove(m.grid)
	if !ok {
		m.status = StatusStalled
		log.Printf("[match:%s] bot has no move, match stalled", m.id)
		return engine.Move{}, ErrNoMove
	}
	return m.tryApplyMove(choice.Move, choice, true)
}

// Tick lets a non-human side to move play. It reports whether a move was made.
func (m *Match) Tick() (bool, error) {
	if m.status != StatusRunning || m.CurrentPlayerIsHuman() {
		return false, nil
	}
	if _, err := m.PlayBotMove(); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Match) tryApplyMove(move engine.Move, choice Choice, isBot bool) (engine.Move, error) {
	mark := m.toMove
	if !m.grid.Place(move.Row, move.Col, mark) {
		return engine.Move{}, fmt.Errorf("%w: (%d, %d) on %dx%d grid", ErrIllegalMove, move.Row, move.Col, m.grid.Size(), m.grid.Size())
	}
	played := move
	moved, growth := m.grid.Grow(move, m.settings.GrowMargin)
	elapsedMs := float64(time.Since(m.turnStart).Microseconds()) / 1000.0
	m.history.Push(HistoryEntry{
		Move:      played,
		Mark:      mark,
		IsBot:     isBot,
		ElapsedMs: elapsedMs,
		Growth:    growth,
		Value:     choice.Value,
	})
	m.hasLastMove = true
	m.lastMove = moved
	m.logMovePlayed(played, mark, elapsedMs, growth)

	m.updateStatus()
	m.toMove = mark.Other()
	m.turnStart = time.Now()
	return moved, nil
}

// updateStatus checks the opponent before the bot, so a position where both
// rate at WinScore is scored for the opponent. Both marks are rated off turn:
// on-turn open threes are worth 50000 each and would add up to a false win.
func (m *Match) updateStatus() {
	switch {
	case engine.IsWin(m.grid, engine.CellOpponent, false):
		m.status = StatusOpponentWon
	case engine.IsWin(m.grid, engine.CellBot, false):
		m.status = StatusBotWon
	case m.grid.Stones() == m.grid.Size()*m.grid.Size():
		m.status = StatusStalled
	default:
		return
	}
	log.Printf("[match:%s] %s after %d moves", m.id, m.status, m.history.Size())
}

func (m *Match) currentPlayer() Player {
	return m.playerForMark(m.toMove)
}

func (m *Match) playerForMark(mark engine.Cell) Player {
	if mark == engine.CellBot {
		return m.botPlayer
	}
	return m.opponentPlayer
}

func (m *Match) createPlayers() {
	m.opponentPlayer = NewHumanPlayer()
	if m.settings.BotEnabled {
		m.botPlayer = NewBotPlayer(m.settings.Engine)
	} else {
		m.botPlayer = NewHumanPlayer()
	}
}

func (m *Match) logMatchup() {
	label := func(p Player) string {
		if p.IsHuman() {
			return "Human"
		}
		return "Bot"
	}
	log.Printf("[match:%s] X (%s) vs 0 (%s) on %dx%d, grow margin %d",
		m.id, label(m.botPlayer), label(m.opponentPlayer), m.settings.BoardSize, m.settings.BoardSize, m.settings.GrowMargin)
}

func (m *Match) logMovePlayed(move engine.Move, mark engine.Cell, elapsedMs float64, growth engine.Growth) {
	log.Printf("[match:%s] %s played (%d, %d) in %.1fms, grid %d growth %+v",
		m.id, mark, move.Row, move.Col, elapsedMs, m.grid.Size(), growth)
}
