// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/staranto/coronactl/internal/config"
	"github.com/staranto/coronactl/internal/rki"
)

// Status renders a single-region summary honoring --output.
func Status(resp rki.DistrictResponse, cmd *cli.Command, w io.Writer) error {
	switch cmd.String("output") {
	case "json":
		return emitJSON(resp, w)
	case "yaml":
		return emitYAML(resp, w)
	}

	d := resp.District
	fmt.Fprintf(w, "%s (%s)  ags %s  population %s\n",
		d.Name, d.County, d.AGS, humanize.Comma(int64(d.Population)))
	fmt.Fprintf(w, "week incidence %.1f (%s cases/week)\n",
		d.WeekIncidence, humanize.Comma(int64(d.CasesPerWeek)))

	rows := [][]string{
		{"cases", humanize.Comma(int64(d.Cases)), delta(d.Delta.Cases)},
		{"deaths", humanize.Comma(int64(d.Deaths)), delta(d.Delta.Deaths)},
		{"recovered", humanize.Comma(int64(d.Recovered)), delta(d.Delta.Recovered)},
	}
	TableWriter(rows, []string{"metric", "total", "today"}, cmd, w)

	LastUpdated(resp.Meta, w)
	return nil
}

// HistoryDetail renders the most recent full days of a series as a table
// with day-over-day deltas.
func HistoryDetail(resp rki.HistoryResponse, full int, cmd *cli.Command, w io.Writer) {
	points := resp.Points
	if full <= 0 || len(points) == 0 {
		return
	}
	start := len(points) - full
	if start < 0 {
		start = 0
	}

	var rows [][]string
	for i := start; i < len(points); i++ {
		p := points[i]
		change := "-"
		if i > 0 {
			change = delta(int(p.Value - points[i-1].Value))
		}
		rows = append(rows, []string{
			p.Date.Format("2006-01-02"),
			strconv.FormatFloat(p.Value, 'f', -1, 64),
			change,
		})
	}
	TableWriter(rows, []string{"date", "value", "change"}, cmd, w)
}

// History renders a full series response for --output json/yaml. Text
// rendering is composed by the command from the plot and HistoryDetail.
func History(resp rki.HistoryResponse, cmd *cli.Command, w io.Writer) error {
	switch cmd.String("output") {
	case "json":
		return emitJSON(resp, w)
	case "yaml":
		return emitYAML(resp, w)
	}
	return nil
}

// TableWriter renders rows in a tabular form honoring color, titles and
// padding options.
func TableWriter(rows [][]string, headers []string, cmd *cli.Command, w io.Writer) {
	if len(rows) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if cmd.Bool("color") {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {

			pad, _ := config.GetInt("padding", 0)

			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if cmd.Bool("titles") {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// LastUpdated renders the provenance trailer shared by text outputs.
func LastUpdated(meta rki.Meta, w io.Writer) {
	fmt.Fprintf(w, "last updated %s (%s)\n", humanize.Time(meta.LastUpdate), meta.Source)
}

func emitJSON(v any, w io.Writer) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.WithError(err).Error("failed to marshal json output")
		return err
	}
	_, _ = w.Write(append(out, '\n'))
	return nil
}

func emitYAML(v any, w io.Writer) error {
	// yaml.v2 keeps map ordering stable enough for our flat structs.
	out, err := yaml.Marshal(v)
	if err != nil {
		log.WithError(err).Error("failed to marshal yaml output")
		return err
	}
	_, _ = w.Write(out)
	return nil
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

func delta(n int) string {
	if n >= 0 {
		return "+" + humanize.Comma(int64(n))
	}
	return humanize.Comma(int64(n))
}
