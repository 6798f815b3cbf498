// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"strconv"
	"strings"
)

// KV is a single keyword argument of a memoized operation. Order matters:
// the same pairs in a different order produce a different Key.
type KV struct {
	Name  string
	Value string
}

// Key identifies one memoized invocation: the operation plus its positional
// and keyword arguments. Keys are value types and must not be mutated after
// construction.
type Key struct {
	op   string
	args []string
	kw   []KV
}

// NewKey builds a Key from an operation identity and its arguments. Two
// invocations with the same operation and equal arguments in equal order
// yield equal keys, which is what lets a TTL be shared across calls.
func NewKey(op string, args []string, kw ...KV) Key {
	k := Key{op: op}
	k.args = append(k.args, args...)
	k.kw = append(k.kw, kw...)
	return k
}

// String renders the canonical form used to index the store. Every argument
// is quoted so that values containing separators cannot collide.
func (k Key) String() string {
	parts := make([]string, 0, 1+len(k.args)+len(k.kw))
	parts = append(parts, k.op)
	for _, a := range k.args {
		parts = append(parts, strconv.Quote(a))
	}
	for _, kv := range k.kw {
		parts = append(parts, kv.Name+"="+strconv.Quote(kv.Value))
	}
	return strings.Join(parts, "|")
}
