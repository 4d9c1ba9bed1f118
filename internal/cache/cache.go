// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache holds short-lived results of backend reads on the client.
//
// Entries expire after a fixed TTL and are never refreshed in the
// background. Writes through the client services invalidate the keys they
// affect and logout clears everything.
package cache

import (
	"context"
	"sync"
	"time"
)

// Well-known query keys.
const (
	KeyProfile          = "profile"
	KeyStaticMessage    = "static-message"
	KeyAssistantMessage = "static-assistant-message"
	KeyLocales          = "locales"
	KeyCurrentLocale    = "current-locale"
	KeyRole             = "role"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// QueryCache is a TTL map safe for concurrent use.
type QueryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

// New returns a cache whose entries live for ttl.
func New(ttl time.Duration) *QueryCache {
	return &QueryCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// Get returns the live value stored under key.
func (c *QueryCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for one TTL.
func (c *QueryCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, expiresAt: c.now().Add(c.ttl)}
}

// Invalidate drops the given keys.
func (c *QueryCache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, k := range keys {
		delete(c.entries, k)
	}
}

// Clear drops every entry.
func (c *QueryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
}

// Len reports the number of stored entries, expired ones included.
func (c *QueryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Fetch returns the cached value for key or calls load and caches its
// result. Errors are not cached.
func Fetch[T any](ctx context.Context, c *QueryCache, key string, load func(context.Context) (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	c.Set(key, v)
	return v, nil
}
