// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package rki

import (
	"fmt"
	"time"
)

// Meta is the provenance block every API response carries. LastUpdate is the
// source's own "data current as of" timestamp and is what the cache layer
// uses for freshness, not the time we happened to fetch.
type Meta struct {
	Source               string    `json:"source"`
	Contact              string    `json:"contact"`
	Info                 string    `json:"info"`
	LastUpdate           time.Time `json:"lastUpdate"`
	LastCheckedForUpdate time.Time `json:"lastCheckedForUpdate"`
}

// Delta is the day-over-day change block of a district record.
type Delta struct {
	Cases     int `json:"cases"`
	Deaths    int `json:"deaths"`
	Recovered int `json:"recovered"`
}

// District is one regional record keyed by AGS (Allgemeiner
// Gemeindeschluessel, the official municipality key).
type District struct {
	AGS           string  `json:"ags"`
	Name          string  `json:"name"`
	County        string  `json:"county"`
	Population    int     `json:"population"`
	Cases         int     `json:"cases"`
	Deaths        int     `json:"deaths"`
	CasesPerWeek  int     `json:"casesPerWeek"`
	DeathsPerWeek int     `json:"deathsPerWeek"`
	Recovered     int     `json:"recovered"`
	WeekIncidence float64 `json:"weekIncidence"`
	CasesPer100k  float64 `json:"casesPer100k"`
	Delta         Delta   `json:"delta"`
}

// DistrictResponse is a single-region fetch result.
type DistrictResponse struct {
	District District `json:"district"`
	Meta     Meta     `json:"meta"`
}

// HistoryPoint is one day of a historical series.
type HistoryPoint struct {
	Value float64   `json:"value"`
	Date  time.Time `json:"date"`
}

// HistoryResponse is a historical-series fetch result.
type HistoryResponse struct {
	AGS    string         `json:"ags"`
	Name   string         `json:"name"`
	Points []HistoryPoint `json:"points"`
	Meta   Meta           `json:"meta"`
}

// Metric selects which historical series to fetch.
type Metric string

const (
	MetricCases     Metric = "cases"
	MetricDeaths    Metric = "deaths"
	MetricIncidence Metric = "incidence"
	MetricRecovered Metric = "recovered"
)

// ParseMetric validates a user-supplied metric name.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricCases, MetricDeaths, MetricIncidence, MetricRecovered:
		return Metric(s), nil
	}
	return "", fmt.Errorf("unknown metric %q (want cases, deaths, incidence or recovered)", s)
}

// field returns the JSON key carrying the metric's value in a history item.
func (m Metric) field() string {
	if m == MetricIncidence {
		return "weekIncidence"
	}
	return string(m)
}
