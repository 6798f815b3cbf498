// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/coronactl/internal/cache"
	"github.com/staranto/coronactl/internal/cacheutil"
	"github.com/staranto/coronactl/internal/meta"
	"github.com/staranto/coronactl/internal/render"
	"github.com/staranto/coronactl/internal/rki"
)

// plotRows is the cell height of braille plots.
const plotRows = 4

// PlotSeries renders values per the --plot flag, sized to the terminal.
func PlotSeries(values []float64, cmd *cli.Command) string {
	width := render.Width(80) //nolint:mnd
	if cmd.String("plot") == "braille" {
		return render.Braille(values, width, plotRows)
	}
	return render.Sparkline(values, width)
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// CachedFetch wires one remote operation through the result cache, honoring
// the cache flags. Remote failures fall back to a stale cached value; a
// malformed payload does not.
func CachedFetch[T any](
	ctx context.Context,
	cmd *cli.Command,
	key cache.Key,
	freshness func(T) time.Time,
	f cache.Fetcher[T],
) (T, error) {
	var zero T

	if cmd.Bool("no-cache") || !cacheutil.Enabled() {
		log.Debugf("cache disabled, fetching %s", key)
		return f.Fetch(ctx, key)
	}

	path, ok := cacheutil.StoreFile(cmd.String("cache-file"))
	if !ok {
		log.Debug("no cache location resolvable, fetching uncached")
		return f.Fetch(ctx, key)
	}

	store, err := cache.NewStore(path)
	if err != nil {
		return zero, err
	}

	c, err := cache.New(store, cache.Config[T]{
		TTL:       time.Duration(cmd.Int("ttl")) * time.Hour,
		Freshness: freshness,
		Fallback:  []error{rki.ErrRemote},
	})
	if err != nil {
		return zero, err
	}

	return c.Get(ctx, key, f)
}
