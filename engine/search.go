package engine

import (
	"sync"
	"time"
)

// Engine picks moves for the Bot mark. It holds no per-search state and is
// safe for concurrent use; every search works on its own copy of the grid.
type Engine struct {
	cfg    Config
	caches sync.Pool
}

// RootEval is the value of one root move, reported while a search runs.
type RootEval struct {
	Move  Move    `json:"move"`
	Value float64 `json:"value"`
	Index int     `json:"index"`
	Total int     `json:"total"`
}

// SearchResult is the outcome of Analyze. Found is false when the position has
// no candidate move, or when depth 0 finds no immediate win.
type SearchResult struct {
	Move      Move        `json:"move"`
	Found     bool        `json:"found"`
	Value     float64     `json:"value"`
	Immediate bool        `json:"immediate"`
	Stats     SearchStats `json:"stats"`
}

func New(cfg Config) *Engine {
	e := &Engine{cfg: cfg.withDefaults()}
	if e.cfg.EvalCacheSize > 0 {
		sets := e.cfg.EvalCacheSize
		ways := e.cfg.EvalCacheBuckets
		e.caches.New = func() any {
			return newLeafCache(sets, ways)
		}
	}
	return e
}

func (e *Engine) Config() Config {
	return e.cfg
}

// FindBestMove returns the Bot's move on g. A negative depth selects the
// configured depth. g is not modified.
func (e *Engine) FindBestMove(g Grid, depth int) (Move, bool) {
	res := e.Analyze(g, depth, nil)
	return res.Move, res.Found
}

// Analyze runs FindBestMove and reports the full result. observe, when not nil,
// receives every root move's value as soon as it is known; with several
// workers the calls are serialized but arrive in completion order.
func (e *Engine) Analyze(g Grid, depth int, observe func(RootEval)) SearchResult {
	if depth < 0 {
		depth = e.cfg.Depth
	}
	stats := SearchStats{Start: time.Now(), Depth: depth, Workers: 1}
	work := g.Clone()
	moves := work.CandidateMoves()
	stats.RootCandidates = len(moves)

	res := SearchResult{}
	if len(moves) == 0 {
		return e.finish(res, stats)
	}

	if move, ok := immediateWin(&work, moves); ok {
		res.Move = move
		res.Found = true
		res.Value = WinScore
		res.Immediate = true
		return e.finish(res, stats)
	}

	var best searchNode
	if e.cfg.Workers > 1 && depth > 0 && len(moves) > 1 {
		best = e.searchParallel(work, moves, depth, observe, &stats)
	} else {
		s := e.newSearcher(work)
		s.rootDepth = depth
		s.rootMoves = moves
		s.observe = observe
		best = s.minimax(depth, true, -1.0, WinScore)
		e.releaseSearcher(s)
		stats.merge(s.stats)
	}
	res.Move = best.move
	res.Found = best.hasMove
	res.Value = best.value
	return e.finish(res, stats)
}

func (e *Engine) finish(res SearchResult, stats SearchStats) SearchResult {
	stats.Elapsed = time.Since(stats.Start)
	res.Stats = stats
	if e.cfg.LogSearchStats {
		logSearchStats("best", stats)
	}
	return res
}

// immediateWin returns the first candidate that lifts the Bot to WinScore.
func immediateWin(work *Grid, moves []Move) (Move, bool) {
	for _, m := range moves {
		work.PlaceUnchecked(m.Row, m.Col, CellBot)
		win := Score(*work, CellBot, true) >= WinScore
		work.Remove(m.Row, m.Col)
		if win {
			return m, true
		}
	}
	return Move{}, false
}

type searchNode struct {
	value   float64
	move    Move
	hasMove bool
}

// searcher owns one working grid. Every stone it places is removed again
// before the placing call returns.
type searcher struct {
	work  Grid
	zob   *zobristTable
	hash  uint64
	cache *leafCache
	stats SearchStats

	// moveBufs[d] holds the candidates of the node at remaining depth d.
	moveBufs [][]Move

	rootDepth int
	rootMoves []Move
	observe   func(RootEval)
}

func (e *Engine) newSearcher(work Grid) *searcher {
	s := &searcher{
		work: work,
		zob:  getZobrist(work.Size()),
		hash: work.Hash(),
	}
	if cache, ok := e.caches.Get().(*leafCache); ok && cache != nil {
		cache.newSearch()
		s.cache = cache
	}
	return s
}

func (e *Engine) releaseSearcher(s *searcher) {
	if s.cache != nil {
		e.caches.Put(s.cache)
		s.cache = nil
	}
}

func (s *searcher) candidates(depth int) []Move {
	if depth == s.rootDepth && s.rootMoves != nil {
		return s.rootMoves
	}
	for len(s.moveBufs) <= depth {
		s.moveBufs = append(s.moveBufs, nil)
	}
	s.moveBufs[depth] = s.work.AppendCandidateMoves(s.moveBufs[depth][:0])
	return s.moveBufs[depth]
}

func (s *searcher) minimax(depth int, maximizing bool, alpha, beta float64) searchNode {
	if depth == 0 {
		return searchNode{value: s.leaf(maximizing)}
	}
	moves := s.candidates(depth)
	if len(moves) == 0 {
		return searchNode{value: s.leaf(maximizing)}
	}
	s.stats.Nodes++

	if maximizing {
		best := searchNode{value: -1.0}
		for i, m := range moves {
			child := s.try(m, CellBot, depth-1, false, alpha, beta)
			if depth == s.rootDepth && s.observe != nil {
				s.observe(RootEval{Move: m, Value: child.value, Index: i, Total: len(moves)})
			}
			if child.value > alpha {
				alpha = child.value
			}
			if child.value >= beta {
				s.stats.Cutoffs++
				return searchNode{value: child.value, move: m, hasMove: true}
			}
			if child.value > best.value {
				best = searchNode{value: child.value, move: m, hasMove: true}
			}
		}
		return best
	}

	best := searchNode{value: WinScore, move: moves[0], hasMove: true}
	for _, m := range moves {
		child := s.try(m, CellOpponent, depth-1, true, alpha, beta)
		if child.value < beta {
			beta = child.value
		}
		if child.value <= alpha {
			s.stats.Cutoffs++
			return searchNode{value: child.value, move: m, hasMove: true}
		}
		if child.value < best.value {
			best = searchNode{value: child.value, move: m, hasMove: true}
		}
	}
	return best
}

// try plays m for mark, searches the reply and takes the stone back.
func (s *searcher) try(m Move, mark Cell, depth int, maximizing bool, alpha, beta float64) searchNode {
	key := s.zob.stone(m.Row, m.Col, mark)
	s.work.PlaceUnchecked(m.Row, m.Col, mark)
	s.hash ^= key
	child := s.minimax(depth, maximizing, alpha, beta)
	s.hash ^= key
	s.work.Remove(m.Row, m.Col)
	return child
}

func (s *searcher) leaf(botToMove bool) float64 {
	s.stats.Leaves++
	if s.cache == nil {
		return leafValue(s.work, botToMove)
	}
	key := s.zob.position(s.hash, botToMove)
	size := s.work.Size()
	s.stats.EvalCacheLookups++
	if v, ok := s.cache.lookup(key, size, botToMove); ok {
		s.stats.EvalCacheHits++
		return v
	}
	v := leafValue(s.work, botToMove)
	s.cache.store(key, size, botToMove, v)
	return v
}

type rootJob struct {
	index int
	move  Move
}

// searchParallel gives every root move its own grid and the full window, then
// picks the move the sequential search would have picked: the first one that
// reaches WinScore, else the first strict maximum.
func (e *Engine) searchParallel(work Grid, moves []Move, depth int, observe func(RootEval), stats *SearchStats) searchNode {
	workers := e.cfg.Workers
	if workers > len(moves) {
		workers = len(moves)
	}
	stats.Workers = workers

	values := make([]float64, len(moves))
	jobs := make(chan rootJob)
	var (
		wg      sync.WaitGroup
		statsMu sync.Mutex
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := e.newSearcher(work.Clone())
			defer e.releaseSearcher(s)
			for job := range jobs {
				child := s.try(job.move, CellBot, depth-1, false, -1.0, WinScore)
				values[job.index] = child.value
				statsMu.Lock()
				if observe != nil {
					observe(RootEval{Move: job.move, Value: child.value, Index: job.index, Total: len(moves)})
				}
				statsMu.Unlock()
			}
			statsMu.Lock()
			stats.merge(s.stats)
			statsMu.Unlock()
		}()
	}
	for i, m := range moves {
		jobs <- rootJob{index: i, move: m}
	}
	close(jobs)
	wg.Wait()
	stats.Nodes++

	best := searchNode{value: -1.0}
	for i, v := range values {
		if v >= WinScore {
			return searchNode{value: v, move: moves[i], hasMove: true}
		}
		if v > best.value {
			best = searchNode{value: v, move: moves[i], hasMove: true}
		}
	}
	return best
}
