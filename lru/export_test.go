package lru

// Generations exposes the raw generation maps to external tests.
func Generations[K comparable, V any](c *Cache[K, V]) (young, old map[K]V) {
	return c.young, c.old
}

// Unwrap exposes the cache guarded by s.
func Unwrap[K comparable, V any](s *Synced[K, V]) *Cache[K, V] {
	return s.cache
}
