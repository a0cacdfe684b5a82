/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGetExpire(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	c := NewCache(time.Minute)
	c.now = func() time.Time { return now }

	c.Set("total", int64(42))
	value, ok := c.Get("total")
	assert.True(t, ok)
	assert.Equal(t, int64(42), value)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("total")
	assert.False(t, ok)
	assert.Empty(t, c.items)
}

func TestCache_Delete(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("key", "value")
	c.Delete("key")

	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestCache_DisabledWithoutTTL(t *testing.T) {
	c := NewCache(0)
	assert.False(t, c.Enabled())

	c.Set("key", "value")
	_, ok := c.Get("key")
	assert.False(t, ok)
}
