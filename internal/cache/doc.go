// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cache memoizes data-fetching operations in a whole-file persisted
// store. Expiry is measured against a freshness timestamp extracted from the
// fetched data itself rather than the wall-clock fetch time, and a configured
// class of fetch errors may be answered with a stale cached value instead.
//
// The backing file is read and rewritten in full on every invocation and is
// not locked: two concurrent processes that both read-then-write it race,
// last writer wins on the whole blob. Known limitation.
package cache
