// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// lruCache is a fixed-size least-recently-used cache, guarded by a mutex
// so it can back concurrent Scheme.ParseVersion calls.
type lruCache[K comparable, V any] struct {
	mu      sync.Mutex
	m       map[K]*lruNode[K, V]
	head    *lruNode[K, V]
	tail    *lruNode[K, V]
	maxSize int
}

type lruNode[K comparable, V any] struct {
	k          K
	v          V
	prev, next *lruNode[K, V]
}

func newLRUCache[K comparable, V any](size int) *lruCache[K, V] {
	return &lruCache[K, V]{
		m:       make(map[K]*lruNode[K, V], size+1),
		maxSize: size,
	}
}

func (c *lruCache[K, V]) add(k K, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n, ok := c.m[k]; ok {
		n.v = v
		c.moveToFront(n)
		return
	}
	if len(c.m) < c.maxSize || c.maxSize <= 0 {
		n := &lruNode[K, V]{k: k, v: v}
		c.pushFront(n)
		c.m[k] = n
		return
	}
	n := c.tail
	delete(c.m, n.k)
	n.k, n.v = k, v
	c.m[k] = n
	c.moveToFront(n)
}

func (c *lruCache[K, V]) get(k K) (v V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.m[k]
	if !ok {
		return v, false
	}
	c.moveToFront(n)
	return n.v, true
}

func (c *lruCache[K, V]) pushFront(n *lruNode[K, V]) {
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *lruCache[K, V]) moveToFront(n *lruNode[K, V]) {
	if n == c.head {
		return
	}
	if n == c.tail {
		c.tail = n.prev
	}
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
}

// parseCache memoizes ParseVersion, deduplicating concurrent parses of the
// same string with a singleflight group so that many goroutines racing to
// parse an identical version string (a common pattern when a selector and
// the manager both dereference the same requirement) pay for one parse.
type parseCache struct {
	cache *lruCache[string, *Version]
	group singleflight.Group
}

// defaultCacheSize bounds the parse cache at a size generous enough for a
// single resolution run's distinct version strings without growing
// unbounded for pathological inputs.
const defaultCacheSize = 4096

func newParseCache(size int) *parseCache {
	if size <= 0 {
		size = defaultCacheSize
	}
	return &parseCache{cache: newLRUCache[string, *Version](size)}
}

func (c *parseCache) parse(s string) (*Version, error) {
	if v, ok := c.cache.get(s); ok {
		return v, nil
	}
	v, err, _ := c.group.Do(s, func() (any, error) {
		if v, ok := c.cache.get(s); ok {
			return v, nil
		}
		v, err := ParseVersion(s)
		if err != nil {
			return nil, err
		}
		c.cache.add(s, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Version), nil
}
