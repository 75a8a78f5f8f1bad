package match

import (
	"sync"

	"github.com/LilConsul/Endless-TicTacToe/engine"
)

// Controller guards a Match for callers on several goroutines.
type Controller struct {
	mu    sync.Mutex
	match *Match
}

func NewController(settings Settings) *Controller {
	return &Controller{match: NewMatch(settings)}
}

func (c *Controller) ApplyHumanMove(row, col int) (engine.Move, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.match.SubmitHumanMove(engine.NewMove(row, col))
}

func (c *Controller) PlayBotMove() (engine.Move, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.match.PlayBotMove()
}

func (c *Controller) Tick() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.match.Tick()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.match.State()
}

func (c *Controller) Settings() Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.match.Settings()
}

func (c *Controller) History() MoveHistory {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.match.History()
}

func (c *Controller) LatestHistoryEntry() (HistoryEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.match.History().Last()
}

func (c *Controller) CurrentPlayerIsHuman() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.match.CurrentPlayerIsHuman()
}

func (c *Controller) Reset(settings Settings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.match.Reset(settings)
}
