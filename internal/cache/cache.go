// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/apex/log"
)

// Fetcher is the one-method contract a memoized operation implements.
type Fetcher[T any] interface {
	Fetch(ctx context.Context, key Key) (T, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc[T any] func(ctx context.Context, key Key) (T, error)

func (f FetcherFunc[T]) Fetch(ctx context.Context, key Key) (T, error) {
	return f(ctx, key)
}

// Config is the per-operation cache policy. It is copied at construction and
// never mutated afterwards.
type Config[T any] struct {
	// TTL is the maximum age, measured from the freshness timestamp to now,
	// before an entry is considered expired.
	TTL time.Duration
	// Freshness extracts the data's own notion of currency from a successful
	// result, e.g. the source's lastUpdate field.
	Freshness func(T) time.Time
	// Fallback lists the error kinds (matched with errors.Is) for which a
	// stale cached value may be served instead of the failed fetch.
	Fallback []error
	// Now is the clock; nil means time.Now. Tests inject a fixed clock.
	Now func() time.Time
}

// Cache memoizes one operation shape against a Store. Each Get fully owns
// the store for its duration: load, decide, optionally fetch, save.
type Cache[T any] struct {
	store     *Store
	ttl       time.Duration
	freshness func(T) time.Time
	fallback  []error
	now       func() time.Time
}

// New builds a Cache over the given store. TTL must be positive and a
// freshness extractor is required.
func New[T any](store *Store, cfg Config[T]) (*Cache[T], error) {
	if store == nil {
		return nil, errors.New("cache requires a store")
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("cache requires a positive TTL")
	}
	if cfg.Freshness == nil {
		return nil, errors.New("cache requires a freshness extractor")
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	c := &Cache[T]{
		store:     store,
		ttl:       cfg.TTL,
		freshness: cfg.Freshness,
		now:       now,
	}
	c.fallback = append(c.fallback, cfg.Fallback...)
	return c, nil
}

// Get returns the cached value for key if it is still fresh, otherwise
// invokes the fetcher. On a fetch failure of a fallback-eligible kind a
// prior (stale) entry is served with its timestamp left untouched, so the
// next call retries the fetch immediately. A fallback with no prior entry
// fails with *MissError; any other error propagates unchanged and the store
// is not rewritten.
func (c *Cache[T]) Get(ctx context.Context, key Key, f Fetcher[T]) (T, error) {
	var zero T

	ck := key.String()
	entries := c.store.Load()
	prior, havePrior := entries[ck]

	if havePrior {
		age := c.now().Sub(prior.Timestamp)
		if age < c.ttl {
			var v T
			if err := json.Unmarshal(prior.Value, &v); err == nil {
				log.Debugf("cache hit: %s (age %s)", ck, age)
				c.persist(entries)
				return v, nil
			}
			// Entry bytes don't decode as T anymore. Refetch.
			log.Warnf("cache entry undecodable, refetching: %s", ck)
			havePrior = false
		} else {
			log.Debugf("cache expired: %s (age %s, ttl %s)", ck, age, c.ttl)
		}
	}

	result, err := f.Fetch(ctx, key)
	if err != nil {
		if !c.eligible(err) {
			return zero, err
		}
		if !havePrior {
			return zero, &MissError{Key: key, Err: err}
		}
		var v T
		if uerr := json.Unmarshal(prior.Value, &v); uerr != nil {
			return zero, &MissError{Key: key, Err: err}
		}
		// Serve stale. The stored timestamp is deliberately not refreshed:
		// the entry stays expired and the next call retries the fetch.
		log.Warnf("fetch failed, serving stale cache for %s: %v", ck, err)
		c.persist(entries)
		return v, nil
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return zero, fmt.Errorf("failed to marshal result for cache: %w", err)
	}
	entries[ck] = Entry{Timestamp: c.freshness(result), Value: raw}
	c.persist(entries)

	return result, nil
}

// eligible reports whether err matches one of the configured fallback kinds.
func (c *Cache[T]) eligible(err error) bool {
	for _, kind := range c.fallback {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// persist writes the full mapping back. A write failure costs us the cache
// update, not the command, so it is logged and swallowed.
func (c *Cache[T]) persist(entries map[string]Entry) {
	if err := c.store.Save(entries); err != nil {
		log.WithError(err).Warnf("failed to write cache store %s", c.store.Path())
	}
}
