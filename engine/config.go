package engine

// Upper bounds applied by withDefaults.
const (
	MaxEvalCacheSize    = maxLeafCacheSets
	MaxEvalCacheBuckets = 8
)

// Config is the immutable engine configuration. Depth 0 is a legal setting and
// only finds immediate wins; an EvalCacheSize of 0 disables the leaf cache.
type Config struct {
	Depth            int  `json:"depth"`
	Workers          int  `json:"workers"`
	EvalCacheSize    int  `json:"eval_cache_size"`
	EvalCacheBuckets int  `json:"eval_cache_buckets"`
	LogSearchStats   bool `json:"log_search_stats"`
}

func DefaultConfig() Config {
	return Config{
		Depth:   4,
		Workers: 1,

		// Leaf values depend only on the stones and the side to move.
		EvalCacheSize:    1 << 16,
		EvalCacheBuckets: 2,

		LogSearchStats: false,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Depth < 0 {
		c.Depth = def.Depth
	}
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}
	if c.EvalCacheBuckets <= 0 {
		c.EvalCacheBuckets = def.EvalCacheBuckets
	}
	if c.EvalCacheBuckets > MaxEvalCacheBuckets {
		c.EvalCacheBuckets = MaxEvalCacheBuckets
	}
	if c.EvalCacheSize < 0 {
		c.EvalCacheSize = 0
	}
	if c.EvalCacheSize > MaxEvalCacheSize {
		c.EvalCacheSize = MaxEvalCacheSize
	}
	return c
}
