package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// LRUStore is an in-process Store with per-entry TTL and size-based eviction
type LRUStore struct {
	mu      sync.Mutex
	maxSize int
	items   map[string]*list.Element
	lru     *list.List
	closed  bool
	now     func() time.Time
}

type cacheItem struct {
	key       string
	data      []byte
	expiresAt time.Time
}

// NewLRUStore creates a store holding at most maxSize entries
func NewLRUStore(maxSize int) *LRUStore {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &LRUStore{
		maxSize: maxSize,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
		now:     time.Now,
	}
}

// WithClock replaces the time source, for tests
func (c *LRUStore) WithClock(now func() time.Time) *LRUStore {
	c.now = now
	return c
}

func (c *LRUStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, false, ErrClosed
	}

	elem, exists := c.items[key]
	if !exists {
		return nil, false, nil
	}

	item := elem.Value.(*cacheItem)
	if !c.now().Before(item.expiresAt) {
		c.removeElement(elem)
		return nil, false, nil
	}

	c.lru.MoveToFront(elem)

	data := make([]byte, len(item.data))
	copy(data, item.data)
	return data, true, nil
}

// Set stores a copy of value; a non-positive ttl is a no-op
func (c *LRUStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if ttl <= 0 {
		return nil
	}

	data := make([]byte, len(value))
	copy(data, value)

	item := &cacheItem{
		key:       key,
		data:      data,
		expiresAt: c.now().Add(ttl),
	}

	if elem, exists := c.items[key]; exists {
		elem.Value = item
		c.lru.MoveToFront(elem)
		return nil
	}

	elem := c.lru.PushFront(item)
	c.items[key] = elem

	if c.lru.Len() > c.maxSize {
		if oldest := c.lru.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	return nil
}

func (c *LRUStore) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, exists := c.items[key]; exists {
		c.removeElement(elem)
	}
	return nil
}

func (c *LRUStore) removeElement(elem *list.Element) {
	item := elem.Value.(*cacheItem)
	delete(c.items, item.key)
	c.lru.Remove(elem)
}

// CleanExpired removes all expired entries and returns count of removed items
func (c *LRUStore) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var toRemove []*list.Element

	for elem := c.lru.Front(); elem != nil; elem = elem.Next() {
		if !now.Before(elem.Value.(*cacheItem).expiresAt) {
			toRemove = append(toRemove, elem)
		}
	}

	for _, elem := range toRemove {
		c.removeElement(elem)
	}

	return len(toRemove)
}

// Size returns the current number of items in the cache
func (c *LRUStore) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Close drops every entry; later calls fail with ErrClosed
func (c *LRUStore) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.items = make(map[string]*list.Element)
	c.lru.Init()
}
