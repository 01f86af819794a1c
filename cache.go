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
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered help pages only change with the terminal width
	helpCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	helpCacheCleanup = 5 * time.Minute
)

// NewHelpCache creates a cache for rendered help pages
func NewHelpCache() *cache.Cache {
	return cache.New(helpCacheExpiration, helpCacheCleanup)
}

func helpCacheKey(width int) string {
	return "help:" + strconv.Itoa(width)
}

func CacheHelpPage(c *cache.Cache, width int, page string) {
	c.Set(helpCacheKey(width), page, helpCacheExpiration)
}

func GetHelpPage(c *cache.Cache, width int) string {
	val, ok := c.Get(helpCacheKey(width))
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrRenderHelpPage returns the cached page for width, rendering and
// caching it on a miss. A failed render falls back to the raw markdown.
func GetOrRenderHelpPage(c *cache.Cache, width int, render func(string) (string, error)) string {
	if page := GetHelpPage(c, width); page != "" {
		return page
	}

	page, err := render(gameHelpMarkdown)
	if err != nil {
		page = gameHelpMarkdown
	}
	CacheHelpPage(c, width, page)
	return page
}
