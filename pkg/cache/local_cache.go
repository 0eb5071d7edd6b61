/*
 * Copyright 2024 caiflower Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// LocalCache 基于github.com/patrickmn/go-cache的本地cache
// 默认的清理内存中超时key的时间间隔是1min

type LocalCache struct {
	c *cache.Cache
}

func NewLocalCache(ttl time.Duration) *LocalCache {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &LocalCache{c: cache.New(ttl, 1*time.Minute)}
}

func (lc *LocalCache) Get(key string) (interface{}, bool) {
	return lc.c.Get(key)
}

func (lc *LocalCache) Set(key string, value interface{}) {
	lc.c.SetDefault(key, value)
}

func (lc *LocalCache) Delete(key string) {
	lc.c.Delete(key)
}

func (lc *LocalCache) Size() int {
	return lc.c.ItemCount()
}
