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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLRUCacheEviction(t *testing.T) {
	c := newLRUCache[string, int](2)
	c.add("a", 1)
	c.add("b", 2)
	c.add("c", 3) // evicts "a", the least recently used.

	_, ok := c.get("a")
	require.False(t, ok)

	v, ok := c.get("b")
	require.True(t, ok)
	require.Equal(t, 2, v)

	v, ok = c.get("c")
	require.True(t, ok)
	require.Equal(t, 3, v)
}

func TestLRUCacheGetRefreshesRecency(t *testing.T) {
	c := newLRUCache[string, int](2)
	c.add("a", 1)
	c.add("b", 2)
	c.get("a")       // "a" is now most recently used.
	c.add("c", 3)    // evicts "b", not "a".

	_, ok := c.get("b")
	require.False(t, ok)
	_, ok = c.get("a")
	require.True(t, ok)
}

func TestParseCacheReturnsEqualVersions(t *testing.T) {
	pc := newParseCache(16)
	v1, err := pc.parse("1.2.3")
	require.NoError(t, err)
	v2, err := pc.parse("1.2.3")
	require.NoError(t, err)
	require.True(t, v1.Equal(v2))
}

func TestParseCacheConcurrentAccess(t *testing.T) {
	pc := newParseCache(16)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := pc.parse("1.2.3-beta")
			require.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestSchemeSharesCache(t *testing.T) {
	s := NewScheme(0)
	c, err := s.Compare("1.0", "2.0")
	require.NoError(t, err)
	require.Equal(t, -1, c)

	v1, err := s.ParseVersion("1.0")
	require.NoError(t, err)
	v2, err := s.ParseVersion("1.0")
	require.NoError(t, err)
	require.Same(t, v1, v2)
}
