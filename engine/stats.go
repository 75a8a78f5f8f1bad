package engine

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

// SearchStats counts the work done by one FindBestMove/Analyze call.
type SearchStats struct {
	Nodes           int64         `json:"nodes"`
	Leaves          int64         `json:"leaves"`
	Cutoffs         int64         `json:"cutoffs"`
	EvalCacheLookups int64         `json:"eval_cache_lookups"`
	EvalCacheHits   int64         `json:"eval_cache_hits"`
	RootCandidates  int           `json:"root_candidates"`
	Workers         int           `json:"workers"`
	Depth           int           `json:"depth"`
	Start           time.Time     `json:"-"`
	Elapsed         time.Duration `json:"elapsed_ns"`
}

func (s *SearchStats) merge(other SearchStats) {
	s.Nodes += other.Nodes
	s.Leaves += other.Leaves
	s.Cutoffs += other.Cutoffs
	s.EvalCacheLookups += other.EvalCacheLookups
	s.EvalCacheHits += other.EvalCacheHits
}

func logSearchStats(tag string, stats SearchStats) {
	elapsed := stats.Elapsed
	if elapsed == 0 && !stats.Start.IsZero() {
		elapsed = time.Since(stats.Start)
	}
	nps := 0.0
	if elapsed > 0 {
		nps = float64(stats.Nodes+stats.Leaves) / elapsed.Seconds()
	}
	evalHitRate := 0.0
	if stats.EvalCacheLookups > 0 {
		evalHitRate = float64(stats.EvalCacheHits) * 100.0 / float64(stats.EvalCacheLookups)
	}
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	log.Printf("[ai:%s] t=%dms depth=%d workers=%d root=%d nodes=%d leaves=%d nps=%.0f cutoffs=%d eval_lookups=%d eval_hit=%d eval_hit_rate=%.1f%% mem_alloc=%s",
		tag,
		elapsed.Milliseconds(),
		stats.Depth,
		stats.Workers,
		stats.RootCandidates,
		stats.Nodes,
		stats.Leaves,
		nps,
		stats.Cutoffs,
		stats.EvalCacheLookups,
		stats.EvalCacheHits,
		evalHitRate,
		formatBytes(mem.Alloc),
	)
}

func formatBytes(n uint64) string {
	const (
		kb = 1 << (10 * 1)
		mb = 1 << (10 * 2)
		gb = 1 << (10 * 3)
	)
	switch {
	case n >= gb:
		return fmt.Sprintf("%.2f GB", float64(n)/float64(gb))
	case n >= mb:
		return fmt.Sprintf("%.2f MB", float64(n)/float64(mb))
	case n >= kb:
		return fmt.Sprintf("%.2f kB", float64(n)/float64(kb))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
