package boardcache

import "github.com/puzpuzpuz/xsync/v3"

// Stats counts accessor outcomes. Counters are striped so hot read paths
// never contend on a single atomic.
type Stats struct {
	hits       *xsync.Counter
	misses     *xsync.Counter
	populates  *xsync.Counter
	degenerate *xsync.Counter
}

// NewStats returns a zeroed counter set.
func NewStats() *Stats {
	return &Stats{
		hits:       xsync.NewCounter(),
		misses:     xsync.NewCounter(),
		populates:  xsync.NewCounter(),
		degenerate: xsync.NewCounter(),
	}
}

// StatsSnapshot is a point-in-time copy of the counters.
type StatsSnapshot struct {
	Hits       int64 `json:"hits"`
	Misses     int64 `json:"misses"`
	Populates  int64 `json:"populates"`
	Degenerate int64 `json:"degenerate"`
}

// Snapshot reads the current counter values. Values may be skewed relative
// to each other under concurrent load; they are for observation, not
// accounting.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Hits:       s.hits.Value(),
		Misses:     s.misses.Value(),
		Populates:  s.populates.Value(),
		Degenerate: s.degenerate.Value(),
	}
}
