package main

import (
	"sync"

	"github.com/LilConsul/Endless-TicTacToe/engine"
)

// ConfigStore holds the engine configuration used by the analysis endpoints.
// Update swaps the engine too, so searches already running keep their config.
type ConfigStore struct {
	mu     sync.RWMutex
	config engine.Config
	engine *engine.Engine
}

func NewConfigStore(config engine.Config) *ConfigStore {
	eng := engine.New(config)
	return &ConfigStore{config: eng.Config(), engine: eng}
}

func (c *ConfigStore) Get() engine.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Engine() *engine.Engine {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.engine
}

func (c *ConfigStore) Update(newConfig engine.Config) engine.Config {
	eng := engine.New(newConfig)
	c.mu.Lock()
	c.config = eng.Config()
	c.engine = eng
	c.mu.Unlock()
	return eng.Config()
}
