package internal

const defaultMaxCacheSize = 5

// LRU is a small least-recently-used cache. Evicted and replaced values are
// handed to onEvict so resources like GPU textures can be released.
// It is not safe for concurrent use; it lives on the UI thread.
type LRU[K comparable, V any] struct {
	values  map[K]V
	order   []K // tracks insertion order for LRU eviction
	maxSize int
	onEvict func(K, V)
}

func NewLRU[K comparable, V any](onEvict func(K, V)) *LRU[K, V] {
	return NewLRUWithSize[K, V](defaultMaxCacheSize, onEvict)
}

func NewLRUWithSize[K comparable, V any](maxSize int, onEvict func(K, V)) *LRU[K, V] {
	if maxSize < 1 {
		maxSize = 1
	}
	return &LRU[K, V]{
		values:  make(map[K]V),
		order:   make([]K, 0, maxSize),
		maxSize: maxSize,
		onEvict: onEvict,
	}
}

func (c *LRU[K, V]) Get(key K) (V, bool) {
	if value, exists := c.values[key]; exists {
		c.moveToEnd(key)
		return value, true
	}
	var zero V
	return zero, false
}

func (c *LRU[K, V]) Set(key K, value V) {
	if old, exists := c.values[key]; exists {
		c.values[key] = value
		c.moveToEnd(key)
		if c.onEvict != nil {
			c.onEvict(key, old)
		}
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.values[key] = value
	c.order = append(c.order, key)
}

func (c *LRU[K, V]) Len() int {
	return len(c.order)
}

func (c *LRU[K, V]) moveToEnd(key K) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *LRU[K, V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if value, exists := c.values[oldest]; exists {
		delete(c.values, oldest)
		if c.onEvict != nil {
			c.onEvict(oldest, value)
		}
	}
}

// Purge evicts every entry.
func (c *LRU[K, V]) Purge() {
	for _, key := range c.order {
		if c.onEvict != nil {
			c.onEvict(key, c.values[key])
		}
	}
	c.values = make(map[K]V)
	c.order = c.order[:0]
}
