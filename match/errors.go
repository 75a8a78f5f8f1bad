package match

import "errors"

var (
	// ErrIllegalMove reports a placement outside the grid or onto a stone.
	ErrIllegalMove  = errors.New("illegal move")
	ErrNoMove       = errors.New("no candidate move")
	ErrBotDisabled  = errors.New("bot is not enabled for this match")
	ErrNotBotTurn   = errors.New("not bot turn")
	ErrNotHumanTurn = errors.New("not human turn")
	ErrMatchOver    = errors.New("match is over")
)
