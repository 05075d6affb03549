// Copyright 2025 Naren Yellavula
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

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Clean up expired definition pages every 5 minutes
const definitionCacheCleanup = 5 * time.Minute

// NewDefinitionCache creates a cache for rendered definition pages
func NewDefinitionCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, definitionCacheCleanup)
}

func CacheDefinitionPage(c *cache.Cache, word string, page string) {
	// Set overwrites, a re-rendered page replaces the stale one
	c.Set(word, page, cache.DefaultExpiration)
}

func GetDefinitionPage(c *cache.Cache, word string) string {
	val, ok := c.Get(word)
	if !ok {
		return ""
	}
	return val.(string)
}

func EvictDefinitionPage(c *cache.Cache, word string) {
	c.Delete(word)
}
