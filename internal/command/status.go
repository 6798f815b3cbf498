// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/coronactl/internal/cache"
	mylog "github.com/staranto/coronactl/internal/log"
	"github.com/staranto/coronactl/internal/meta"
	"github.com/staranto/coronactl/internal/output"
	"github.com/staranto/coronactl/internal/rki"
)

func StatusCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	log.Debugf("Executing action for %v", meta.Args[1:])

	mylog.SetLevel(cmd.String("loglevel"))

	ags := cmd.Args().First()
	client := rki.NewClient(cmd.String("host"))

	resp, err := CachedFetch(ctx, cmd,
		cache.NewKey("fetch_region", []string{ags}),
		func(r rki.DistrictResponse) time.Time { return r.Meta.LastUpdate },
		cache.FetcherFunc[rki.DistrictResponse](
			func(ctx context.Context, _ cache.Key) (rki.DistrictResponse, error) {
				return client.District(ctx, ags)
			}))
	if err != nil {
		return err
	}

	if err := output.Status(resp, cmd, os.Stdout); err != nil {
		return err
	}

	// In text mode, append a recent-cases plot under the summary.
	days := cmd.Int("days")
	if cmd.String("output") != "text" || days <= 0 {
		return nil
	}

	hist, err := CachedFetch(ctx, cmd,
		cache.NewKey("fetch_history", []string{ags},
			cache.KV{Name: "metric", Value: string(rki.MetricCases)},
			cache.KV{Name: "days", Value: strconv.Itoa(days)}),
		func(r rki.HistoryResponse) time.Time { return r.Meta.LastUpdate },
		cache.FetcherFunc[rki.HistoryResponse](
			func(ctx context.Context, _ cache.Key) (rki.HistoryResponse, error) {
				return client.History(ctx, ags, rki.MetricCases, days)
			}))
	if err != nil {
		return err
	}

	values := make([]float64, 0, len(hist.Points))
	for _, p := range hist.Points {
		values = append(values, p.Value)
	}

	fmt.Printf("cases, last %d days\n", days)
	fmt.Println(PlotSeries(values, cmd))
	output.HistoryDetail(hist, cmd.Int("full"), cmd, os.Stdout)

	return nil
}

func StatusCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "region status query",
		UsageText: `coronactl status <ags> [options]`,
		ArgsUsage: "<ags>",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:    "days",
				Aliases: []string{"d"},
				Usage:   "lookback window for the recent-cases plot",
				Value:   28, //nolint:mnd
			},
			&cli.IntFlag{
				Name:    "full",
				Aliases: []string{"f"},
				Usage:   "number of most recent days to print in detail",
				Value:   3, //nolint:mnd
			},
			NewPlotFlag("status", meta.Config.Source),
			NewHostFlag("status", meta.Config.Source),
		}, NewGlobalFlags("status")...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := StatusCommandValidator(ctx, c); err != nil {
				return err
			}
			return StatusCommandAction(ctx, c)
		},
	}
}

func StatusCommandValidator(_ context.Context, cmd *cli.Command) error {
	return AGSValidator(cmd.Args().First())
}
