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

func HistoryCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	log.Debugf("Executing action for %v", meta.Args[1:])

	mylog.SetLevel(cmd.String("loglevel"))

	ags := cmd.Args().First()
	days := cmd.Int("days")

	metric, err := rki.ParseMetric(cmd.String("metric"))
	if err != nil {
		return err
	}

	client := rki.NewClient(cmd.String("host"))

	hist, err := CachedFetch(ctx, cmd,
		cache.NewKey("fetch_history", []string{ags},
			cache.KV{Name: "metric", Value: string(metric)},
			cache.KV{Name: "days", Value: strconv.Itoa(days)}),
		func(r rki.HistoryResponse) time.Time { return r.Meta.LastUpdate },
		cache.FetcherFunc[rki.HistoryResponse](
			func(ctx context.Context, _ cache.Key) (rki.HistoryResponse, error) {
				return client.History(ctx, ags, metric, days)
			}))
	if err != nil {
		return err
	}

	if cmd.String("output") != "text" {
		return output.History(hist, cmd, os.Stdout)
	}

	values := make([]float64, 0, len(hist.Points))
	for _, p := range hist.Points {
		values = append(values, p.Value)
	}

	fmt.Printf("%s (%s)  %s, last %d days\n", hist.Name, hist.AGS, metric, days)
	fmt.Println(PlotSeries(values, cmd))
	output.HistoryDetail(hist, cmd.Int("full"), cmd, os.Stdout)
	output.LastUpdated(hist.Meta, os.Stdout)

	return nil
}

func HistoryCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "history",
		Usage:     "historical series query",
		UsageText: `coronactl history <ags> [options]`,
		ArgsUsage: "<ags>",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:    "days",
				Aliases: []string{"d"},
				Usage:   "lookback window length in days",
				Value:   28, //nolint:mnd
			},
			&cli.IntFlag{
				Name:    "full",
				Aliases: []string{"f"},
				Usage:   "number of most recent days to print in detail",
				Value:   7, //nolint:mnd
			},
			&cli.StringFlag{
				Name:    "metric",
				Aliases: []string{"m"},
				Usage:   "series to fetch (cases, deaths, incidence, recovered)",
				Value:   "cases",
			},
			NewPlotFlag("history", meta.Config.Source),
			NewHostFlag("history", meta.Config.Source),
		}, NewGlobalFlags("history")...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := HistoryCommandValidator(ctx, c); err != nil {
				return err
			}
			return HistoryCommandAction(ctx, c)
		},
	}
}

func HistoryCommandValidator(_ context.Context, cmd *cli.Command) error {
	return AGSValidator(cmd.Args().First())
}
