package lru

// Stats counts cache activity since construction.
type Stats struct {
	Hits       uint64
	Misses     uint64
	Promotions uint64 // old-generation hits moved into young
	Rotations  uint64
	Evictions  uint64 // entries discarded by rotations
}

// HitRatio is Hits / (Hits + Misses), or 0 before any lookup.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
