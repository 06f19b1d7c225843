package exchange

import "sync/atomic"

// Sequence hands out monotonically increasing identifiers. Inject one
// wherever unique ids are needed instead of reaching for a package
// level counter, so tests control exactly which values they see.
type Sequence struct {
	n atomic.Int64
}

func (s *Sequence) Next() int64 { return s.n.Add(1) }
