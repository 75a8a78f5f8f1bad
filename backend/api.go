package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"runtime"

	"github.com/LilConsul/Endless-TicTacToe/engine"
	"github.com/google/uuid"
)

const (
	maxGridSize      = 64
	maxGrowMargin    = 16
	maxAnalysisDepth = 8
)

var errNonSquareGrid = errors.New("grid must be square")

type gridRequest struct {
	Grid [][]int `json:"grid"`
}

type scoreRequest struct {
	Grid      [][]int `json:"grid"`
	Mark      string  `json:"mark"`
	MarksTurn bool    `json:"marks_turn"`
}

type scoreResponse struct {
	Score int  `json:"score"`
	Win   bool `json:"win"`
}

type candidatesResponse struct {
	Moves []engine.Move `json:"moves"`
}

type growRequest struct {
	Grid   [][]int `json:"grid"`
	Row    int     `json:"row"`
	Col    int     `json:"col"`
	Margin int     `json:"margin"`
}

type growResponse struct {
	Grid   [][]int       `json:"grid"`
	Row    int           `json:"row"`
	Col    int           `json:"col"`
	Growth engine.Growth `json:"growth"`
}

type bestMoveRequest struct {
	Grid  [][]int `json:"grid"`
	Depth *int    `json:"depth"`
}

type bestMoveResponse struct {
	ID string `json:"id"`
	engine.SearchResult
}

type rootPayload struct {
	ID string `json:"id"`
	engine.RootEval
}

type apiError struct {
	Error string `json:"error"`
}

func gridFromInts(rows [][]int) (engine.Grid, error) {
	if len(rows) > maxGridSize {
		return engine.Grid{}, fmt.Errorf("grid larger than %d", maxGridSize)
	}
	cells := make([][]engine.Cell, len(rows))
	for r, row := range rows {
		if len(row) != len(rows) {
			return engine.Grid{}, errNonSquareGrid
		}
		cells[r] = make([]engine.Cell, len(row))
		for c, value := range row {
			cell, err := engine.CellFromInt(value)
			if err != nil {
				return engine.Grid{}, fmt.Errorf("cell (%d, %d): %w", r, c, err)
			}
			cells[r][c] = cell
		}
	}
	g, ok := engine.GridFromRows(cells)
	if !ok {
		return engine.Grid{}, errNonSquareGrid
	}
	return g, nil
}

func gridToInts(g engine.Grid) [][]int {
	rows := g.Rows()
	out := make([][]int, len(rows))
	for r, row := range rows {
		out[r] = make([]int, len(row))
		for c, cell := range row {
			out[r][c] = cell.Int()
		}
	}
	return out
}

func markFromString(value string) (engine.Cell, error) {
	switch value {
	case "bot", "x", "X":
		return engine.CellBot, nil
	case "opponent", "0", "o", "O":
		return engine.CellOpponent, nil
	default:
		return engine.CellEmpty, fmt.Errorf("unknown mark %q", value)
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid payload"})
		return false
	}
	return true
}

func handleScore(w http.ResponseWriter, r *http.Request) {
	var payload scoreRequest
	if !decode(w, r, &payload) {
		return
	}
	g, err := gridFromInts(payload.Grid)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}
	mark, err := markFromString(payload.Mark)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}
	score := engine.Score(g, mark, payload.MarksTurn)
	writeJSON(w, http.StatusOK, scoreResponse{Score: score, Win: score >= engine.WinScore})
}

func handleCandidates(w http.ResponseWriter, r *http.Request) {
	var payload gridRequest
	if !decode(w, r, &payload) {
		return
	}
	g, err := gridFromInts(payload.Grid)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}
	moves := g.CandidateMoves()
	if moves == nil {
		moves = []engine.Move{}
	}
	writeJSON(w, http.StatusOK, candidatesResponse{Moves: moves})
}

func handleGrow(w http.ResponseWriter, r *http.Request) {
	var payload growRequest
	if !decode(w, r, &payload) {
		return
	}
	g, err := gridFromInts(payload.Grid)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}
	if !g.InBounds(payload.Row, payload.Col) {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "position out of range"})
		return
	}
	if payload.Margin < 0 || payload.Margin > maxGrowMargin {
		writeJSON(w, http.StatusBadRequest, apiError{Error: fmt.Sprintf("margin must be between 0 and %d", maxGrowMargin)})
		return
	}
	moved, growth := g.Grow(engine.NewMove(payload.Row, payload.Col), payload.Margin)
	writeJSON(w, http.StatusOK, growResponse{Grid: gridToInts(g), Row: moved.Row, Col: moved.Col, Growth: growth})
}

func handleBestMove(configs *ConfigStore, hub *AnalysisHub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload bestMoveRequest
		if !decode(w, r, &payload) {
			return
		}
		g, err := gridFromInts(payload.Grid)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
			return
		}
		eng := configs.Engine()
		depth := eng.Config().Depth
		if payload.Depth != nil {
			depth = *payload.Depth
		}
		if depth < 0 || depth > maxAnalysisDepth {
			writeJSON(w, http.StatusBadRequest, apiError{Error: fmt.Sprintf("depth must be between 0 and %d", maxAnalysisDepth)})
			return
		}

		id := uuid.NewString()
		res := eng.Analyze(g, depth, func(ev engine.RootEval) {
			hub.Publish("root", rootPayload{ID: id, RootEval: ev})
		})
		out := bestMoveResponse{ID: id, SearchResult: res}
		hub.Publish("best", out)
		log.Printf("[backend] analysis %s depth=%d found=%v move=(%d, %d) value=%.3f nodes=%d in %s",
			id, depth, res.Found, res.Move.Row, res.Move.Col, res.Value, res.Stats.Nodes, res.Stats.Elapsed)
		writeJSON(w, http.StatusOK, out)
	}
}

func handleGetConfig(configs *ConfigStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, configs.Get())
	}
}

func handleUpdateConfig(configs *ConfigStore, hub *AnalysisHub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current := configs.Get()
		if !decode(w, r, &current) {
			return
		}
		if err := checkConfigBounds(current); err != nil {
			writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
			return
		}
		updated := configs.Update(current)
		hub.Publish("config", updated)
		writeJSON(w, http.StatusOK, updated)
	}
}

// checkConfigBounds rejects settings that would size the leaf caches or the
// worker pool past what the host can give.
func checkConfigBounds(c engine.Config) error {
	switch {
	case c.Depth > maxAnalysisDepth:
		return fmt.Errorf("depth must be at most %d", maxAnalysisDepth)
	case c.Workers > runtime.NumCPU():
		return fmt.Errorf("workers must be at most %d", runtime.NumCPU())
	case c.EvalCacheSize < 0 || c.EvalCacheSize > engine.MaxEvalCacheSize:
		return fmt.Errorf("eval_cache_size must be between 0 and %d", engine.MaxEvalCacheSize)
	case c.EvalCacheBuckets > engine.MaxEvalCacheBuckets:
		return fmt.Errorf("eval_cache_buckets must be at most %d", engine.MaxEvalCacheBuckets)
	}
	return nil
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
