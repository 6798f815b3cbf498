// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import "fmt"

// MissError reports that a fetch failed with a fallback-eligible error but
// no prior entry existed to serve stale. It always propagates to the caller.
type MissError struct {
	Key Key
	Err error
}

func (e *MissError) Error() string {
	return fmt.Sprintf("no cached value to fall back on for %s: %v", e.Key, e.Err)
}

func (e *MissError) Unwrap() error {
	return e.Err
}
