package match

import "github.com/LilConsul/Endless-TicTacToe/engine"

type Player interface {
	IsHuman() bool
	ChooseMove(g engine.Grid) (Choice, bool)
}

// Choice is a move picked by a player together with the search value behind it.
type Choice struct {
	Move  engine.Move
	Value float64
}

type HumanPlayer struct{}

func NewHumanPlayer() *HumanPlayer {
	return &HumanPlayer{}
}

func (h *HumanPlayer) IsHuman() bool {
	return true
}

// ChooseMove never picks on its own; human moves arrive through SubmitHumanMove.
func (h *HumanPlayer) ChooseMove(engine.Grid) (Choice, bool) {
	return Choice{}, false
}

type BotPlayer struct {
	engine *engine.Engine
	depth  int
}

func NewBotPlayer(cfg engine.Config) *BotPlayer {
	return &BotPlayer{engine: engine.New(cfg), depth: cfg.Depth}
}

func (b *BotPlayer) IsHuman() bool {
	return false
}

// ChooseMove opens in the centre of an empty grid and searches otherwise.
func (b *BotPlayer) ChooseMove(g engine.Grid) (Choice, bool) {
	if g.Stones() == 0 {
		if g.Size() == 0 {
			return Choice{}, false
		}
		return Choice{Move: engine.NewMove(g.Size()/2, g.Size()/2)}, true
	}
	res := b.engine.Analyze(g, b.depth, nil)
	if !res.Found {
		return Choice{}, false
	}
	return Choice{Move: res.Move, Value: res.Value}, true
}
