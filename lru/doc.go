// Package lru provides a two-generation approximation of a least-recently-used
// cache with amortized O(1) operations and no linked list.
//
// A Cache keeps a young and an old map. Writes land in young. When young
// reaches capacity the next write rotates the generations: old is dropped in
// bulk, young becomes old, and young starts empty. A Get that finds its key in
// old moves it back into young.
//
// An entry is evicted only after it sat in old for a whole epoch without being
// read. The cache never holds more than twice its capacity.
//
//	c, err := lru.New[string, int](128)
//	if err != nil {
//	    return err
//	}
//	c.Insert("a", 1)
//	if v, ok := c.Get("a"); ok {
//	    // use v
//	}
//
// Cache is single-threaded. Synced guards a Cache with one mutex so that a
// rotation is never observed half done, and Sharded spreads keys across
// several Synced caches.
package lru
