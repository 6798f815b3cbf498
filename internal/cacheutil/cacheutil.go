// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"os"
	"path/filepath"

	"github.com/apex/log"
)

// StoreFileName is the single backing file that holds the whole cache
// mapping. The store round-trips it as one blob, so there is exactly one.
const StoreFileName = "cache.json"

// Dir resolves the base cache directory.
// Precedence:
//  1. CORONACTL_CACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()/coronactl
//
// Returns ("", false) if a base cannot be resolved (treat as disabled).
func Dir() (string, bool) {
	if c, ok := os.LookupEnv("CORONACTL_CACHE_DIR"); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "coronactl"), true
	}
	return "", false
}

// StoreFile resolves the backing file for the cache store.
// Precedence:
//  1. the explicit override (--cache-file flag), if non-empty
//  2. CORONACTL_CACHE_FILE, if set and non-empty
//  3. StoreFileName under Dir()
//
// Returns ("", false) if nothing can be resolved (treat as disabled).
func StoreFile(override string) (string, bool) {
	if override != "" {
		return override, true
	}
	if f, ok := os.LookupEnv("CORONACTL_CACHE_FILE"); ok && f != "" {
		return f, true
	}
	if base, ok := Dir(); ok {
		return filepath.Join(base, StoreFileName), true
	}
	return "", false
}

// Enabled returns true unless CORONACTL_CACHE explicitly disables it
// ("0"/"false").
func Enabled() bool {
	enabled, _ := os.LookupEnv("CORONACTL_CACHE")
	return enabled == "" || (enabled != "0" && enabled != "false")
}

// EnsureBaseDir creates the base cache directory if caching is enabled and
// a base path can be resolved. Returns the path, whether it is usable, and an
// error if creation failed.
func EnsureBaseDir() (string, bool, error) {
	if !Enabled() {
		return "", false, nil
	}
	base, ok := Dir()
	if !ok {
		return "", false, nil
	}
	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		log.WithError(err).Debugf("failed to create cache base directory %s", base)
		return base, false, err
	}
	return base, true, nil
}
