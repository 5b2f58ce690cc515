package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const defaultJanitorInterval = 2 * time.Minute

// Stats счётчики с момента создания кэша
type Stats struct {
	Hits        uint64
	Misses      uint64
	Evictions   uint64
	Expirations uint64
}

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// LRUCache хранит байтовые снимки с общим TTL и вытесняет давно неиспользуемые.
// Нулевая ёмкость отключает кэш: Set ничего не сохраняет.
type LRUCache struct {
	mu    sync.Mutex
	order *list.List
	items map[string]*list.Element
	stats Stats

	capacity        int
	ttl             time.Duration
	janitorInterval time.Duration
	now             func() time.Time
}

type Option func(*LRUCache)

func WithClock(now func() time.Time) Option {
	return func(c *LRUCache) { c.now = now }
}

func WithJanitorInterval(d time.Duration) Option {
	return func(c *LRUCache) { c.janitorInterval = d }
}

func NewLRUCache(capacity int, ttl time.Duration, opts ...Option) *LRUCache {
	c := &LRUCache{
		order:           list.New(),
		items:           make(map[string]*list.Element),
		capacity:        capacity,
		ttl:             ttl,
		janitorInterval: defaultJanitorInterval,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		return nil, false
	}

	ent := el.Value.(*entry)
	if c.expired(ent, c.now()) {
		c.drop(el)
		c.stats.Expirations++
		c.stats.Misses++
		return nil, false
	}

	c.order.MoveToFront(el)
	c.stats.Hits++
	return ent.value, true
}

func (c *LRUCache) Set(key string, value []byte) {
	if c.capacity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		ent := el.Value.(*entry)
		ent.value, ent.expiresAt = value, expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&entry{key: key, value: value, expiresAt: expiresAt})
	for c.order.Len() > c.capacity {
		c.drop(c.order.Back())
		c.stats.Evictions++
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.drop(el)
	}
}

func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *LRUCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Start запускает фоновую очистку просроченных записей до отмены ctx
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(c.janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.purgeExpired()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (c *LRUCache) purgeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	purged := 0
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if c.expired(el.Value.(*entry), now) {
			c.drop(el)
			purged++
		}
		el = prev
	}
	c.stats.Expirations += uint64(purged)
	return purged
}

func (c *LRUCache) expired(ent *entry, now time.Time) bool {
	return !now.Before(ent.expiresAt)
}

func (c *LRUCache) drop(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}
